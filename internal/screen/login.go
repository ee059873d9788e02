package screen

import (
	"context"
	"errors"

	"github.com/mpawlak/zakupnik/internal/auth"
	"github.com/mpawlak/zakupnik/internal/models"
	"github.com/mpawlak/zakupnik/internal/nav"
	"github.com/mpawlak/zakupnik/internal/service"
	"github.com/mpawlak/zakupnik/internal/ui"
)

// LoginScreen authenticates the user and hands the identity to the app.
type LoginScreen struct {
	guard     *nav.Guard
	navigator *nav.Navigator
	auth      *service.AuthService
	ui        ui.UI
}

// NewLoginScreen creates the login screen.
func NewLoginScreen(guard *nav.Guard, navigator *nav.Navigator, authService *service.AuthService, ui ui.UI) *LoginScreen {
	return &LoginScreen{guard: guard, navigator: navigator, auth: authService, ui: ui}
}

// Show runs one interaction round. On a successful login it resets navigation
// to the Dashboard and returns the logged-in user; otherwise it returns nil.
func (s *LoginScreen) Show(ctx context.Context) (*models.User, error) {
	s.guard.CheckSession(s.navigator, true)
	if s.navigator.Current() != nav.RouteLogin {
		return nil, nil
	}

	s.ui.Print("== Logowanie ==")
	choice, err := s.ui.Prompt("1 - Logowanie, 2 - Rejestracja, q - Wyjście")
	if err != nil {
		return nil, ErrQuit
	}

	switch choice {
	case "1":
		return s.handleLogin(ctx)
	case "2":
		s.navigator.Navigate(nav.RouteRegistration)
	case "q":
		return nil, ErrQuit
	}
	return nil, nil
}

func (s *LoginScreen) handleLogin(ctx context.Context) (*models.User, error) {
	username, err := s.ui.Prompt("Nazwa użytkownika")
	if err != nil {
		return nil, ErrQuit
	}
	password, err := s.ui.Prompt("Hasło")
	if err != nil {
		return nil, ErrQuit
	}

	user, err := s.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.ui.Alert("Błąd", "Podane dane logowania są nieprawidłowe. Spróbuj ponownie.")
		} else {
			s.ui.Alert("Błąd", "Wystąpił błąd podczas logowania. Spróbuj ponownie.")
		}
		return nil, nil
	}

	s.navigator.Reset(nav.RouteDashboard)
	return user, nil
}
