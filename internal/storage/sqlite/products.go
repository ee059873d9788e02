package sqlite

import (
	"context"
	"fmt"

	"github.com/mpawlak/zakupnik/internal/models"
)

// ListProducts returns all catalog products owned by the user, in row order.
func (s *SQLiteStore) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, userId, name, price, description, shop FROM products WHERE userId = ?",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Price, &p.Description, &p.Shop); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// CreateProduct inserts a new product and populates product.ID.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO products (name, price, description, shop, userId) VALUES (?, ?, ?, ?, ?)",
		product.Name, product.Price, product.Description, product.Shop, product.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read product id: %w", err)
	}
	product.ID = id

	return nil
}

// UpdateProduct overwrites all mutable fields of the product row.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"UPDATE products SET name = ?, price = ?, description = ?, shop = ? WHERE id = ?",
		product.Name, product.Price, product.Description, product.Shop, product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// DeleteProduct removes a product row. Existing shopping-list snapshots keep
// their copied data.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
