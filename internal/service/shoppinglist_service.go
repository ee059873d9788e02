package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mpawlak/zakupnik/internal/models"
	"github.com/mpawlak/zakupnik/internal/storage"
)

// ErrInvalidQuantity is returned when an add uses a non-numeric or non-positive
// quantity. Nothing is written in that case.
var ErrInvalidQuantity = errors.New("quantity must be a positive number")

// ParseQuantity converts user input into a quantity, rejecting anything that is
// not a positive integer.
func ParseQuantity(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n <= 0 {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

// ShoppingList holds a user's working copy of the shopping list and keeps it in
// step with storage.
//
// Adds that merge into an existing item update the working copy in place with
// no re-fetch; every other mutation re-fetches the list, which also re-applies
// the unpurchased-first ordering.
type ShoppingList struct {
	store  storage.Store
	userID int64
	items  []models.ShoppingListItem
}

// NewShoppingList creates an empty working list over the given storage backend.
func NewShoppingList(store storage.Store) *ShoppingList {
	return &ShoppingList{store: store}
}

// Load fetches the user's list from storage and makes it the working copy.
// The previous copy is dropped first: a failed fetch leaves an empty list, never
// another user's items.
func (l *ShoppingList) Load(ctx context.Context, userID int64) error {
	l.userID = userID
	l.items = nil
	return l.refresh(ctx)
}

// Items returns the current working copy, unpurchased items first.
func (l *ShoppingList) Items() []models.ShoppingListItem {
	return l.items
}

// Add puts quantity units of the product on the list. If an item for the same
// product already exists, its quantity is incremented instead of inserting a
// duplicate row. The product fields are copied into the item as a snapshot.
func (l *ShoppingList) Add(ctx context.Context, product models.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i := range l.items {
		if l.items[i].ProductID == product.ID {
			newQuantity := l.items[i].Quantity + quantity
			if err := l.store.UpdateShoppingItemQuantity(ctx, l.items[i].ID, newQuantity); err != nil {
				slog.Error("Failed to merge shopping item", "item_id", l.items[i].ID, "error", err)
				return err
			}
			l.items[i].Quantity = newQuantity
			slog.Info("Shopping item merged", "item_id", l.items[i].ID, "quantity", newQuantity)
			return nil
		}
	}

	item := &models.ShoppingListItem{
		UserID:      l.userID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Shop:        product.Shop,
		Quantity:    quantity,
		Purchased:   false,
	}
	if err := l.store.InsertShoppingItem(ctx, item); err != nil {
		slog.Error("Failed to insert shopping item", "product_id", product.ID, "error", err)
		return err
	}

	slog.Info("Shopping item added", "item_id", item.ID, "product_id", product.ID, "quantity", quantity)
	return l.refresh(ctx)
}

// TogglePurchased sets the purchased flag on one item and re-fetches the list,
// moving purchased items to the end.
func (l *ShoppingList) TogglePurchased(ctx context.Context, itemID int64, purchased bool) error {
	if err := l.store.SetShoppingItemPurchased(ctx, itemID, purchased); err != nil {
		slog.Error("Failed to toggle purchased flag", "item_id", itemID, "error", err)
		return err
	}
	return l.refresh(ctx)
}

// Remove deletes one item and re-fetches the list.
func (l *ShoppingList) Remove(ctx context.Context, itemID int64) error {
	if err := l.store.DeleteShoppingItem(ctx, itemID); err != nil {
		slog.Error("Failed to remove shopping item", "item_id", itemID, "error", err)
		return err
	}
	return l.refresh(ctx)
}

// Finish deletes every item belonging to the loaded user and empties the
// working copy. Confirmation is the caller's responsibility.
func (l *ShoppingList) Finish(ctx context.Context) error {
	if err := l.store.ClearShoppingList(ctx, l.userID); err != nil {
		slog.Error("Failed to clear shopping list", "user_id", l.userID, "error", err)
		return err
	}

	l.items = nil
	slog.Info("Shopping list cleared", "user_id", l.userID)
	return nil
}

func (l *ShoppingList) refresh(ctx context.Context) error {
	items, err := l.store.ListShoppingItems(ctx, l.userID)
	if err != nil {
		slog.Error("Failed to load shopping list", "user_id", l.userID, "error", err)
		return err
	}
	l.items = items
	return nil
}
