package testutil

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB connects to the integration test database. Tests that call
// it are skipped when no database is reachable, so the unit suite stays
// runnable without infrastructure.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "root:@tcp(localhost:3306)/dacsanviet_test?parseTime=true&charset=utf8mb4"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: test database not reachable: %v", err)
	}

	return db
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	t.Helper()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS Product (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price DOUBLE NOT NULL DEFAULT 0,
			imageUrl VARCHAR(512) NOT NULL DEFAULT '',
			categoryName VARCHAR(255) NOT NULL DEFAULT '',
			isActive BOOLEAN NOT NULL DEFAULT TRUE,
			stockQuantity INT NOT NULL DEFAULT 0,
			createdAt TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updatedAt TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS Orders (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			orderNumber VARCHAR(32) NOT NULL UNIQUE,
			userId BIGINT UNSIGNED NULL,
			customerName VARCHAR(255) NOT NULL,
			customerPhone VARCHAR(32) NOT NULL,
			customerEmail VARCHAR(255) NOT NULL DEFAULT '',
			shippingAddress VARCHAR(512) NOT NULL,
			totalAmount DOUBLE NOT NULL DEFAULT 0,
			shippingFee DOUBLE NOT NULL DEFAULT 0,
			taxAmount DOUBLE NOT NULL DEFAULT 0,
			status VARCHAR(32) NOT NULL,
			paymentMethod VARCHAR(32) NOT NULL,
			paymentStatus VARCHAR(32) NOT NULL,
			trackingNumber VARCHAR(64) NULL,
			notes TEXT,
			orderDate TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			shippedDate TIMESTAMP NULL,
			deliveredDate TIMESTAMP NULL,
			deliveryConfirmedAt TIMESTAMP NULL,
			createdAt TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updatedAt TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS OrderItems (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			orderId BIGINT UNSIGNED NOT NULL,
			productId BIGINT UNSIGNED NOT NULL,
			productName VARCHAR(255) NOT NULL,
			productDescription TEXT,
			categoryName VARCHAR(255) NOT NULL DEFAULT '',
			productImageUrl VARCHAR(512) NOT NULL DEFAULT '',
			quantity INT NOT NULL,
			unitPrice DOUBLE NOT NULL,
			createdAt TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_order_items_order (orderId)
		)`,
		`CREATE TABLE IF NOT EXISTS CartItems (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			userId BIGINT UNSIGNED NOT NULL,
			productId BIGINT UNSIGNED NOT NULL,
			quantity INT NOT NULL,
			addedDate TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_cart_items_user (userId)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("creating test tables: %v", err)
		}
	}
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, table := range []string{"OrderItems", "Orders", "CartItems", "Product"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("cleaning table %s: %v", table, err)
		}
	}
}
