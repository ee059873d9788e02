package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mpawlak/zakupnik/internal/models"
	"github.com/mpawlak/zakupnik/internal/storage"
)

// ErrNameRequired is returned when a product is saved without a name.
var ErrNameRequired = errors.New("product name is required")

// ProductService implements the catalog CRUD operations of the Products screen.
type ProductService struct {
	store storage.Store
}

// NewProductService creates a new ProductService with the given storage backend.
func NewProductService(store storage.Store) *ProductService {
	return &ProductService{store: store}
}

// List returns all products owned by the user.
func (s *ProductService) List(ctx context.Context, userID int64) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx, userID)
	if err != nil {
		slog.Error("Failed to load products", "user_id", userID, "error", err)
		return nil, err
	}
	return products, nil
}

// Create validates the name and inserts a new product for the user.
func (s *ProductService) Create(ctx context.Context, userID int64, name string, price float64, description, shop string) (*models.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	product := &models.Product{
		UserID:      userID,
		Name:        name,
		Price:       price,
		Description: description,
		Shop:        shop,
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		slog.Error("Failed to create product", "user_id", userID, "error", err)
		return nil, err
	}

	slog.Info("Product created", "product_id", product.ID, "user_id", userID, "name", name)
	return product, nil
}

// Update overwrites all mutable fields of an existing product. There is no
// concurrency check: last write wins.
func (s *ProductService) Update(ctx context.Context, id int64, name string, price float64, description, shop string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	product := &models.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Description: description,
		Shop:        shop,
	}
	if err := s.store.UpdateProduct(ctx, product); err != nil {
		slog.Error("Failed to update product", "product_id", id, "error", err)
		return err
	}

	slog.Info("Product updated", "product_id", id, "name", name)
	return nil
}

// Delete removes a product unconditionally. Shopping-list items that copied its
// data keep their snapshots.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		slog.Error("Failed to delete product", "product_id", id, "error", err)
		return err
	}

	slog.Info("Product deleted", "product_id", id)
	return nil
}

// Filter returns the products whose name contains the search term,
// case-insensitively. It works on the caller's already-loaded list, never the
// store; an empty or whitespace-only term returns the full source list.
func Filter(searchTerm string, source []models.Product) []models.Product {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	if term == "" {
		return source
	}

	var filtered []models.Product
	for _, p := range source {
		if strings.Contains(strings.ToLower(p.Name), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
