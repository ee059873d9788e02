// Package models defines the core domain models for Zakupnik.
//
// # Models
//
//   - User: a registered account; owns products and shopping-list items
//   - Product: a catalog template describing something the user buys
//   - ShoppingListItem: an entry on the active shopping list
//
// # Design Principles
//
//  1. **Rows, not documents**: every model maps 1:1 to a SQLite table row with an
//     auto-assigned integer ID.
//  2. **User scoping**: Product and ShoppingListItem carry the owning UserID; every
//     query filters on it so users never see each other's data.
//  3. **Snapshot, not foreign-key join**: ShoppingListItem copies ProductName, Price
//     and Shop from the Product at the moment of adding. Editing or deleting the
//     Product later does not touch existing list items; the list is a record of
//     what the user decided to buy, not a live view of the catalog.
package models
