package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS menus (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			description TEXT,
			image TEXT,
			sizes TEXT[],
			price BIGINT NOT NULL CHECK (price > 0),
			half_price BIGINT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			order_number VARCHAR(50) NOT NULL UNIQUE,
			customer_name VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(50) NOT NULL,
			customer_email VARCHAR(255),
			delivery_address VARCHAR(500) NOT NULL,
			delivery_detail_address VARCHAR(500) NOT NULL DEFAULT '',
			delivery_zip_code VARCHAR(20) NOT NULL DEFAULT '',
			delivery_date DATE NOT NULL,
			delivery_time VARCHAR(50) NOT NULL DEFAULT '',
			total_amount BIGINT NOT NULL CHECK (total_amount >= 0),
			delivery_fee BIGINT NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
			payment_id VARCHAR(100),
			payment_method VARCHAR(50),
			paid_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_id VARCHAR(100) NOT NULL,
			menu_name VARCHAR(255) NOT NULL,
			menu_category VARCHAR(100) NOT NULL DEFAULT '',
			price BIGINT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0)
		);

		CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number);
		CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedMenus inserts test menu data into the database.
func SeedMenus(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	halfPrice := func(v int64) *int64 { return &v }

	menus := []struct {
		id        string
		name      string
		category  string
		sizes     []string
		price     int64
		halfPrice *int64
		available bool
	}{
		{"sandwich-1", "클럽 샌드위치", "sandwiches", nil, 7000, nil, true},
		{"sandwich-2", "햄치즈 샌드위치", "sandwiches", nil, 6500, nil, true},
		{"salad-1", "시저 샐러드", "salads", []string{"Full", "Half"}, 9500, halfPrice(5500), true},
		{"salad-2", "리코타 샐러드", "salads", nil, 10000, nil, false},
		{"drink-1", "아메리카노", "beverages", nil, 3000, nil, true},
	}

	for _, m := range menus {
		_, err := pool.Exec(ctx,
			`INSERT INTO menus (id, name, category, sizes, price, half_price, is_available)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			m.id, m.name, m.category, m.sizes, m.price, m.halfPrice, m.available,
		)
		if err != nil {
			t.Fatalf("failed to seed menu %s: %v", m.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "menus"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
