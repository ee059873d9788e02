package models

// Product is a catalog template owned by a single user. It is not a shopping-list
// entry: adding it to the list copies its fields into a ShoppingListItem.
type Product struct {
	// ID is the auto-assigned row ID.
	ID int64

	// UserID is the owning user. All catalog queries are scoped by it.
	UserID int64

	// Name is the product name. Required; the only validated field.
	Name string

	// Price is the expected price. Free-form, no currency handling.
	Price float64

	// Description is an optional note about the product.
	Description string

	// Shop is the store the user usually buys this product in.
	Shop string
}
