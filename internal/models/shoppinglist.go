package models

// ShoppingListItem is one entry on a user's active shopping list.
//
// ProductName, Price and Shop are snapshots copied from the Product when the item
// was added. ProductID is kept only to merge repeated adds of the same product into
// one row; it is not a foreign key and may point at a deleted Product.
type ShoppingListItem struct {
	// ID is the auto-assigned row ID.
	ID int64

	// UserID is the owning user.
	UserID int64

	// ProductID references the catalog product this item was created from.
	ProductID int64

	// ProductName is the product name at the time of adding.
	ProductName string

	// Price is the product price at the time of adding.
	Price float64

	// Shop is the product's shop at the time of adding.
	Shop string

	// Quantity is how many to buy. Always >= 1; adds with a non-positive
	// quantity are rejected before any write.
	Quantity int

	// Purchased marks the item as already in the basket. The list is always
	// fetched with unpurchased items first.
	Purchased bool
}
