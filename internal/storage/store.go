// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mpawlak/zakupnik/internal/models"
)

// Store is the single query interface every screen goes through. It covers the
// three tables (users, products, shopping_list); implementations serialize
// writes internally, so callers never coordinate access themselves.
type Store interface {
	// CreateUser persists a new user and populates user.ID.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by login name.
	// Returns (nil, nil) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByCredentials retrieves the user matching username and password
	// exactly. Returns (nil, nil) on no match.
	GetUserByCredentials(ctx context.Context, username, password string) (*models.User, error)

	// ListProducts returns all catalog products owned by the user.
	ListProducts(ctx context.Context, userID int64) ([]models.Product, error)

	// CreateProduct persists a new product and populates product.ID.
	CreateProduct(ctx context.Context, product *models.Product) error

	// UpdateProduct overwrites name, price, description and shop of the row
	// with product.ID. No concurrency check.
	UpdateProduct(ctx context.Context, product *models.Product) error

	// DeleteProduct removes a product row. Shopping-list snapshots that were
	// copied from it are left untouched.
	DeleteProduct(ctx context.Context, id int64) error

	// ListShoppingItems returns the user's shopping list, unpurchased items
	// first. Ties keep storage order.
	ListShoppingItems(ctx context.Context, userID int64) ([]models.ShoppingListItem, error)

	// InsertShoppingItem persists a new list item and populates item.ID.
	InsertShoppingItem(ctx context.Context, item *models.ShoppingListItem) error

	// UpdateShoppingItemQuantity sets the quantity of an existing item.
	UpdateShoppingItemQuantity(ctx context.Context, id int64, quantity int) error

	// SetShoppingItemPurchased sets the purchased flag of an existing item.
	SetShoppingItemPurchased(ctx context.Context, id int64, purchased bool) error

	// DeleteShoppingItem removes a single list item.
	DeleteShoppingItem(ctx context.Context, id int64) error

	// ClearShoppingList removes every list item belonging to the user.
	ClearShoppingList(ctx context.Context, userID int64) error

	// Close releases any resources held by the store.
	Close() error
}
