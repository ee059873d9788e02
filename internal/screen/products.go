package screen

import (
	"context"
	"errors"
	"strconv"

	"github.com/mpawlak/zakupnik/internal/models"
	"github.com/mpawlak/zakupnik/internal/nav"
	"github.com/mpawlak/zakupnik/internal/service"
	"github.com/mpawlak/zakupnik/internal/ui"
)

// ProductsScreen manages the user's product catalog.
//
// Searching filters the list loaded at mount in memory; it never re-queries
// the store. Any create/edit/delete reloads both the full list and the view.
type ProductsScreen struct {
	guard     *nav.Guard
	navigator *nav.Navigator
	products  *service.ProductService
	ui        ui.UI

	all     []models.Product // full list as last loaded
	visible []models.Product // what the search currently shows
}

// NewProductsScreen creates the products screen.
func NewProductsScreen(guard *nav.Guard, navigator *nav.Navigator, products *service.ProductService, ui ui.UI) *ProductsScreen {
	return &ProductsScreen{guard: guard, navigator: navigator, products: products, ui: ui}
}

// Show runs one interaction round. mounted is true right after navigation
// landed here; the catalog is loaded then.
func (s *ProductsScreen) Show(ctx context.Context, user *models.User, mounted bool) error {
	s.guard.CheckSession(s.navigator, false)
	if s.navigator.Current() != nav.RouteProducts {
		return nil
	}

	if mounted {
		s.load(ctx, user)
	}

	s.render()

	choice, err := s.ui.Prompt("d - Dodaj produkt, e - Edytuj, x - Usuń, s - Szukaj, w - Wróć, q - Wyjście")
	if err != nil {
		return ErrQuit
	}

	switch choice {
	case "d":
		return s.handleSave(ctx, user, nil)
	case "e":
		return s.handleEdit(ctx, user)
	case "x":
		return s.handleDelete(ctx, user)
	case "s":
		return s.handleSearch()
	case "w":
		s.navigator.Back()
	case "q":
		return ErrQuit
	}
	return nil
}

func (s *ProductsScreen) load(ctx context.Context, user *models.User) {
	products, err := s.products.List(ctx, userID(user))
	if err != nil {
		// Logged by the service; show an empty catalog.
		products = nil
	}
	s.all = products
	s.visible = products
}

func (s *ProductsScreen) render() {
	s.ui.Print("== Moje produkty ==")

	if len(s.visible) == 0 {
		s.ui.Print("Brak zapisanych produktów.")
		return
	}
	for i, p := range s.visible {
		s.ui.Print("%d. %s | %.2f | %s", i+1, p.Name, p.Price, p.Shop)
	}
}

// handleSave prompts for product fields and creates a new product, or updates
// existing when non-nil. The same form serves both paths, as in the original
// screen's modal.
func (s *ProductsScreen) handleSave(ctx context.Context, user *models.User, existing *models.Product) error {
	name, err := s.ui.Prompt("Nazwa produktu")
	if err != nil {
		return ErrQuit
	}
	priceInput, err := s.ui.Prompt("Cena")
	if err != nil {
		return ErrQuit
	}
	description, err := s.ui.Prompt("Opis")
	if err != nil {
		return ErrQuit
	}
	shop, err := s.ui.Prompt("Sklep")
	if err != nil {
		return ErrQuit
	}

	// Unparseable prices are stored as zero; the form never validated price.
	price, _ := strconv.ParseFloat(priceInput, 64)

	if existing != nil {
		err = s.products.Update(ctx, existing.ID, name, price, description, shop)
	} else {
		_, err = s.products.Create(ctx, userID(user), name, price, description, shop)
	}

	if errors.Is(err, service.ErrNameRequired) {
		s.ui.Alert("Błąd", "Nazwa produktu jest wymagana.")
		return nil
	}
	if err != nil {
		// Store failures are logged by the service only.
		return nil
	}

	s.load(ctx, user)
	return nil
}

func (s *ProductsScreen) handleEdit(ctx context.Context, user *models.User) error {
	product, ok, err := s.pick()
	if err != nil || !ok {
		return err
	}
	return s.handleSave(ctx, user, &product)
}

func (s *ProductsScreen) handleDelete(ctx context.Context, user *models.User) error {
	product, ok, err := s.pick()
	if err != nil || !ok {
		return err
	}

	if err := s.products.Delete(ctx, product.ID); err != nil {
		// Logged by the service; keep the current view.
		return nil
	}
	s.load(ctx, user)
	return nil
}

func (s *ProductsScreen) handleSearch() error {
	term, err := s.ui.Prompt("Szukaj produktu")
	if err != nil {
		return ErrQuit
	}
	s.visible = service.Filter(term, s.all)
	return nil
}

func (s *ProductsScreen) pick() (models.Product, bool, error) {
	if len(s.visible) == 0 {
		s.ui.Print("Brak zapisanych produktów.")
		return models.Product{}, false, nil
	}

	input, err := s.ui.Prompt("Numer produktu")
	if err != nil {
		return models.Product{}, false, ErrQuit
	}

	i, err := strconv.Atoi(input)
	if err != nil || i < 1 || i > len(s.visible) {
		s.ui.Print("Nieprawidłowy numer produktu.")
		return models.Product{}, false, nil
	}
	return s.visible[i-1], true, nil
}
