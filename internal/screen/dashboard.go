package screen

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/mpawlak/zakupnik/internal/models"
	"github.com/mpawlak/zakupnik/internal/nav"
	"github.com/mpawlak/zakupnik/internal/service"
	"github.com/mpawlak/zakupnik/internal/session"
	"github.com/mpawlak/zakupnik/internal/ui"
)

// DashboardScreen shows the shopping list and the product picker.
type DashboardScreen struct {
	guard     *nav.Guard
	navigator *nav.Navigator
	auth      *service.AuthService
	products  *service.ProductService
	list      *service.ShoppingList
	sessions  session.Store
	ui        ui.UI

	// onLogout lets the app drop the in-memory identity when the user logs
	// out here.
	onLogout func()
}

// NewDashboardScreen creates the dashboard.
func NewDashboardScreen(
	guard *nav.Guard,
	navigator *nav.Navigator,
	authService *service.AuthService,
	products *service.ProductService,
	list *service.ShoppingList,
	sessions session.Store,
	ui ui.UI,
	onLogout func(),
) *DashboardScreen {
	return &DashboardScreen{
		guard:     guard,
		navigator: navigator,
		auth:      authService,
		products:  products,
		list:      list,
		sessions:  sessions,
		ui:        ui,
		onLogout:  onLogout,
	}
}

// Show runs one interaction round. mounted is true on the round right after
// navigation landed here; that is when the list is fetched, like the original
// screen's mount effect.
func (s *DashboardScreen) Show(ctx context.Context, user *models.User, mounted bool) error {
	s.guard.CheckSession(s.navigator, false)
	if s.navigator.Current() != nav.RouteDashboard {
		return nil
	}

	if mounted {
		s.logSessionKey()
		// Fetch failure is logged by the service; the screen just shows
		// whatever working copy it has.
		_ = s.list.Load(ctx, userID(user))
	}

	s.render()

	choice, err := s.ui.Prompt("p - Moje produkty, w - Wstaw produkt, k - Kupiony/Cofnij, u - Usuń, z - Zakończ zakupy, o - Wyloguj, q - Wyjście")
	if err != nil {
		return ErrQuit
	}

	switch choice {
	case "p":
		s.navigator.Navigate(nav.RouteProducts)
	case "w":
		return s.handleAdd(ctx, user)
	case "k":
		s.handleToggle(ctx)
	case "u":
		s.handleRemove(ctx)
	case "z":
		return s.handleFinish(ctx)
	case "o":
		s.handleLogout()
	case "q":
		return ErrQuit
	}
	return nil
}

func (s *DashboardScreen) logSessionKey() {
	token, err := s.sessions.Token()
	if err != nil {
		slog.Error("Failed to read session key", "error", err)
		return
	}
	slog.Debug("Session key loaded", "session", token)
}

func (s *DashboardScreen) render() {
	s.ui.Print("== Moja lista zakupów ==")

	items := s.list.Items()
	if len(items) == 0 {
		s.ui.Print("Twoja lista zakupowa jest pusta. Dodaj produkt do listy.")
		return
	}
	for i, item := range items {
		status := ""
		if item.Purchased {
			status = " [kupiony]"
		}
		s.ui.Print("%d. %s | Cena: %.2f | Ilość: %d%s", i+1, item.ProductName, item.Price, item.Quantity, status)
	}
}

// handleAdd shows the product picker and puts the chosen product on the list.
func (s *DashboardScreen) handleAdd(ctx context.Context, user *models.User) error {
	products, err := s.products.List(ctx, userID(user))
	if err != nil {
		// Logged by the service; the picker simply has nothing to show.
		return nil
	}
	if len(products) == 0 {
		s.ui.Print("Lista produktów jest pusta. Dodaj nowy produkt, aby kontynuować.")
		return nil
	}

	for i, p := range products {
		s.ui.Print("%d. Nazwa produktu: %s | Cena: %.2f | Sklep: %s", i+1, p.Name, p.Price, p.Shop)
	}

	product, ok, err := s.pickProduct(products)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	input, err := s.ui.Prompt("Ilość")
	if err != nil {
		return ErrQuit
	}
	if input == "" {
		input = "1" // picker default
	}

	quantity, err := service.ParseQuantity(input)
	if err != nil {
		s.ui.Alert("Błąd", "Proszę wprowadzić poprawną ilość produktu.")
		return nil
	}

	if err := s.list.Add(ctx, product, quantity); err != nil && errors.Is(err, service.ErrInvalidQuantity) {
		s.ui.Alert("Błąd", "Proszę wprowadzić poprawną ilość produktu.")
	}
	// Store failures are logged by the service and not surfaced here.
	return nil
}

func (s *DashboardScreen) pickProduct(products []models.Product) (models.Product, bool, error) {
	input, err := s.ui.Prompt("Numer produktu")
	if err != nil {
		return models.Product{}, false, ErrQuit
	}

	i, err := strconv.Atoi(input)
	if err != nil || i < 1 || i > len(products) {
		s.ui.Print("Nieprawidłowy numer produktu.")
		return models.Product{}, false, nil
	}
	return products[i-1], true, nil
}

func (s *DashboardScreen) handleToggle(ctx context.Context) {
	item, ok := s.pickItem()
	if !ok {
		return
	}
	// Failures log only; the list stays as fetched last.
	_ = s.list.TogglePurchased(ctx, item.ID, !item.Purchased)
}

func (s *DashboardScreen) handleRemove(ctx context.Context) {
	item, ok := s.pickItem()
	if !ok {
		return
	}
	_ = s.list.Remove(ctx, item.ID)
}

func (s *DashboardScreen) pickItem() (models.ShoppingListItem, bool) {
	items := s.list.Items()
	if len(items) == 0 {
		s.ui.Print("Twoja lista zakupowa jest pusta. Dodaj produkt do listy.")
		return models.ShoppingListItem{}, false
	}

	input, err := s.ui.Prompt("Numer pozycji")
	if err != nil {
		return models.ShoppingListItem{}, false
	}

	i, err := strconv.Atoi(input)
	if err != nil || i < 1 || i > len(items) {
		s.ui.Print("Nieprawidłowy numer pozycji.")
		return models.ShoppingListItem{}, false
	}
	return items[i-1], true
}

func (s *DashboardScreen) handleFinish(ctx context.Context) error {
	confirmed, err := s.ui.Confirm(
		"Zakończ zakupy",
		"Czy na pewno chcesz zakończyć zakupy i usunąć wszystkie produkty z listy zakupów?",
		"Anuluj",
		"Potwierdź",
	)
	if err != nil {
		return ErrQuit
	}
	if !confirmed {
		return nil
	}

	if err := s.list.Finish(ctx); err != nil {
		// Logged by the service; the list keeps its last state.
		return nil
	}
	s.ui.Print("Lista zakupów została wyczyszczona.")
	return nil
}

func (s *DashboardScreen) handleLogout() {
	if err := s.auth.Logout(); err != nil {
		// Logged by the service; stay on the dashboard.
		return
	}
	if s.onLogout != nil {
		s.onLogout()
	}
	s.navigator.Reset(nav.RouteLogin)
}
