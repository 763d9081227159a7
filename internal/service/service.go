package service

import (
	"context"

	"ezysalad/internal/model"

	"github.com/google/uuid"
)

// MenuService defines operations for the menu catalog.
type MenuService interface {
	// GetCategories retrieves available menu items grouped by category with
	// display names, in storefront order.
	GetCategories(ctx context.Context) ([]model.MenuCategory, error)

	// GetAll retrieves all menu items, including ones hidden from the
	// storefront (back-office listing).
	GetAll(ctx context.Context) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by ID.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// Create adds a new menu item (back office).
	Create(ctx context.Context, req *model.MenuRequest) (*model.MenuItem, error)

	// Update replaces an existing menu item (back office).
	Update(ctx context.Context, id string, req *model.MenuRequest) (*model.MenuItem, error)

	// Delete removes a menu item (back office).
	Delete(ctx context.Context, id string) error
}

// OrderService defines operations for order intake and lookup.
type OrderService interface {
	// CreateOrder validates the cart and delivery info, computes the total
	// server-side and persists the order with its line items.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// Lookup retrieves an order by (order number, phone) for customer
	// self-service. A correct number with the wrong phone is not found.
	Lookup(ctx context.Context, orderNumber, phone string) (*model.OrderLookupResponse, error)

	// UpdateStatus sets an order's status (back office).
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
}

// PaymentService defines operations around the payment provider boundary.
type PaymentService interface {
	// CheckoutConfig returns the identifiers the browser needs to open the
	// payment widget, including a freshly generated payment id.
	CheckoutConfig() (*model.CheckoutConfig, error)

	// Complete verifies a claimed payment against the provider's record and
	// finalizes the order. Safe to call more than once for the same order.
	Complete(ctx context.Context, req *model.CompletePaymentRequest) (*model.PaymentResult, error)
}
