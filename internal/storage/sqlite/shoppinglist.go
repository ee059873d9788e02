package sqlite

import (
	"context"
	"fmt"

	"github.com/mpawlak/zakupnik/internal/models"
)

// ListShoppingItems returns the user's shopping list with unpurchased items
// first. No secondary sort key: ties keep storage order.
func (s *SQLiteStore) ListShoppingItems(ctx context.Context, userID int64) ([]models.ShoppingListItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, userId, productId, productName, price, shop, quantity, purchased
		 FROM shopping_list WHERE userId = ? ORDER BY purchased ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	var items []models.ShoppingListItem
	for rows.Next() {
		var item models.ShoppingListItem
		var purchased int
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.ProductName,
			&item.Price, &item.Shop, &item.Quantity, &purchased,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		item.Purchased = purchased != 0
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shopping items: %w", err)
	}

	return items, nil
}

// InsertShoppingItem persists a new list item and populates item.ID.
func (s *SQLiteStore) InsertShoppingItem(ctx context.Context, item *models.ShoppingListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchased := 0
	if item.Purchased {
		purchased = 1
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO shopping_list (userId, productId, productName, price, shop, quantity, purchased)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.UserID, item.ProductID, item.ProductName, item.Price, item.Shop, item.Quantity, purchased,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shopping item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read shopping item id: %w", err)
	}
	item.ID = id

	return nil
}

// UpdateShoppingItemQuantity sets the quantity of an existing item.
func (s *SQLiteStore) UpdateShoppingItemQuantity(ctx context.Context, id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"UPDATE shopping_list SET quantity = ? WHERE id = ?",
		quantity, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update shopping item quantity: %w", err)
	}

	return nil
}

// SetShoppingItemPurchased sets the purchased flag of an existing item.
func (s *SQLiteStore) SetShoppingItemPurchased(ctx context.Context, id int64, purchased bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flag := 0
	if purchased {
		flag = 1
	}

	_, err := s.db.ExecContext(ctx,
		"UPDATE shopping_list SET purchased = ? WHERE id = ?",
		flag, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set purchased flag: %w", err)
	}

	return nil
}

// DeleteShoppingItem removes a single list item.
func (s *SQLiteStore) DeleteShoppingItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM shopping_list WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}

	return nil
}

// ClearShoppingList removes every list item belonging to the user.
func (s *SQLiteStore) ClearShoppingList(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM shopping_list WHERE userId = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to clear shopping list: %w", err)
	}

	return nil
}
