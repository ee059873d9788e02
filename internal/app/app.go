// Package app wires the screens, the navigator and the session guard into the
// terminal interaction loop.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mpawlak/zakupnik/internal/auth"
	"github.com/mpawlak/zakupnik/internal/models"
	"github.com/mpawlak/zakupnik/internal/nav"
	"github.com/mpawlak/zakupnik/internal/screen"
	"github.com/mpawlak/zakupnik/internal/service"
	"github.com/mpawlak/zakupnik/internal/session"
	"github.com/mpawlak/zakupnik/internal/storage"
	"github.com/mpawlak/zakupnik/internal/ui"
)

// App owns the navigation stack, the screens and the active identity.
//
// The identity is set once at login and handed to each screen explicitly; no
// screen reads it from ambient state. Logout clears it.
type App struct {
	navigator    *nav.Navigator
	login        *screen.LoginScreen
	registration *screen.RegistrationScreen
	dashboard    *screen.DashboardScreen
	products     *screen.ProductsScreen

	user *models.User
}

// New assembles the application over the given stores.
func New(store storage.Store, sessions session.Store, tokens *auth.TokenManager, terminal ui.UI, logger *slog.Logger) *App {
	navigator := nav.New()
	guard := nav.NewGuard(sessions, logger)

	authService := service.NewAuthService(auth.NewAuthenticator(store), tokens, sessions, logger)
	productService := service.NewProductService(store)
	list := service.NewShoppingList(store)

	a := &App{navigator: navigator}
	a.login = screen.NewLoginScreen(guard, navigator, authService, terminal)
	a.registration = screen.NewRegistrationScreen(guard, navigator, authService, terminal)
	a.dashboard = screen.NewDashboardScreen(guard, navigator, authService, productService, list, sessions, terminal, a.clearUser)
	a.products = screen.NewProductsScreen(guard, navigator, productService, terminal)
	return a
}

// Run drives the interaction loop until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	// Zero value differs from every real route, so the first round counts
	// as a mount.
	var previous nav.Route

	for {
		route := a.navigator.Current()
		mounted := route != previous
		previous = route

		var err error
		switch route {
		case nav.RouteLogin:
			var user *models.User
			user, err = a.login.Show(ctx)
			if user != nil {
				a.user = user
			}
		case nav.RouteRegistration:
			err = a.registration.Show(ctx)
		case nav.RouteDashboard:
			err = a.dashboard.Show(ctx, a.user, mounted)
		case nav.RouteProducts:
			err = a.products.Show(ctx, a.user, mounted)
		}

		if errors.Is(err, screen.ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) clearUser() {
	a.user = nil
}
