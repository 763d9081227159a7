package repository

import (
	"context"
	"time"

	"ezysalad/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MenuRepository defines the interface for menu data access operations.
type MenuRepository interface {
	// GetAll retrieves menu items ordered the way the storefront displays
	// them (category descending, then name). When onlyAvailable is true,
	// items hidden by the back office are excluded.
	GetAll(ctx context.Context, onlyAvailable bool) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by its ID. Returns nil when the
	// item does not exist.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// Create inserts a new menu item.
	Create(ctx context.Context, item *model.MenuItem) error

	// Update replaces an existing menu item. Returns false when no row
	// matched the ID.
	Update(ctx context.Context, item *model.MenuItem) (bool, error)

	// Delete removes a menu item. Returns false when no row matched.
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns
	// (nil, nil, nil) when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// GetByNumberAndPhone retrieves an order for the customer self-service
	// lookup. Both the order number and the phone must match the same row.
	GetByNumberAndPhone(ctx context.Context, orderNumber, phone string) (*model.Order, []model.OrderItem, error)

	// MarkPaid finalizes an order in a single conditional write: status,
	// payment status, payment id, method and paid-at are set together, and
	// only while the order is still pending. Returns false when the order
	// had already reached a terminal state.
	MarkPaid(ctx context.Context, id uuid.UUID, paymentID, method string, paidAt time.Time) (bool, error)

	// MarkCancelled records a failed verification, only while the order is
	// still pending. Returns false when the order had already reached a
	// terminal state.
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)

	// UpdateStatus sets an order's status unconditionally (back-office use).
	// Returns nil when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}
