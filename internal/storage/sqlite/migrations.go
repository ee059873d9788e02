package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure tables exist; all statements are idempotent.
//
// users has no UNIQUE constraint on username: uniqueness is checked at the
// application level before insert, matching the behavior the data was created
// under. shopping_list.productId is deliberately not a foreign key; list items
// are snapshots that outlive their catalog product.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT,
    password TEXT
);

CREATE TABLE IF NOT EXISTS products (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    userId INTEGER,
    name TEXT,
    price REAL,
    description TEXT,
    shop TEXT
);

CREATE TABLE IF NOT EXISTS shopping_list (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    userId INTEGER,
    productId INTEGER,
    productName TEXT,
    price REAL,
    shop TEXT,
    quantity INTEGER,
    purchased INTEGER
);

CREATE INDEX IF NOT EXISTS idx_products_user_id ON products(userId);
CREATE INDEX IF NOT EXISTS idx_shopping_list_user_id ON shopping_list(userId);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
