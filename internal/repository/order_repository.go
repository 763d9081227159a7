package repository

import (
	"context"
	"fmt"
	"time"

	"ezysalad/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

const orderColumns = `id, order_number, customer_name, customer_phone, customer_email,
		delivery_address, delivery_detail_address, delivery_zip_code,
		delivery_date::text, delivery_time, total_amount, delivery_fee,
		status, payment_status, payment_id, payment_method, paid_at,
		created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.CustomerEmail,
		&o.DeliveryAddress,
		&o.DeliveryDetailAddress,
		&o.DeliveryZipCode,
		&o.DeliveryDate,
		&o.DeliveryTime,
		&o.TotalAmount,
		&o.DeliveryFee,
		&o.Status,
		&o.PaymentStatus,
		&o.PaymentID,
		&o.PaymentMethod,
		&o.PaidAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (
			id, order_number, customer_name, customer_phone, customer_email,
			delivery_address, delivery_detail_address, delivery_zip_code,
			delivery_date, delivery_time, total_amount, delivery_fee,
			status, payment_status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::date, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := tx.Exec(ctx, query,
		order.ID,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerPhone,
		order.CustomerEmail,
		order.DeliveryAddress,
		order.DeliveryDetailAddress,
		order.DeliveryZipCode,
		order.DeliveryDate,
		order.DeliveryTime,
		order.TotalAmount,
		order.DeliveryFee,
		order.Status,
		order.PaymentStatus,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts multiple order items within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, menu_id, menu_name, menu_category, price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.OrderID, item.MenuID, item.MenuName, item.MenuCategory, item.Price, item.Quantity)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", items[i].OrderID.String()).
				Str("menu_id", items[i].MenuID).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	items, err := r.getItems(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

// GetByNumberAndPhone retrieves an order for the customer self-service lookup.
func (r *orderRepository) GetByNumberAndPhone(ctx context.Context, orderNumber, phone string) (*model.Order, []model.OrderItem, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_number = $1 AND customer_phone = $2
	`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, orderNumber, phone))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_number", orderNumber).Msg("order not found for number/phone pair")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_number", orderNumber).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	items, err := r.getItems(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

func (r *orderRepository) getItems(ctx context.Context, orderID uuid.UUID) ([]model.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_id, menu_name, menu_category, price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", orderID.String()).
			Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.MenuID, &item.MenuName, &item.MenuCategory, &item.Price, &item.Quantity)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

// MarkPaid finalizes an order with a single conditional write. All payment
// fields change together, and only while the order is still pending, so a
// partially-finalized order is never observable and two racing verifications
// cannot both finalize.
func (r *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID, paymentID, method string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2,
		    payment_status = $3,
		    payment_id = $4,
		    payment_method = $5,
		    paid_at = $6,
		    updated_at = $7
		WHERE id = $1 AND status = $8
	`

	tag, err := r.pool.Exec(ctx, query,
		id,
		model.OrderStatusPaid,
		model.PaymentStatusPaid,
		paymentID,
		method,
		paidAt,
		time.Now(),
		model.OrderStatusPending,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to mark order paid")
		return false, fmt.Errorf("failed to mark order paid: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// MarkCancelled records a failed verification, only while the order is still pending.
func (r *orderRepository) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE orders
		SET status = $2,
		    payment_status = $3,
		    updated_at = $4
		WHERE id = $1 AND status = $5
	`

	tag, err := r.pool.Exec(ctx, query,
		id,
		model.OrderStatusCancelled,
		model.PaymentStatusFailed,
		time.Now(),
		model.OrderStatusPending,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to mark order cancelled")
		return false, fmt.Errorf("failed to mark order cancelled: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// UpdateStatus sets an order's status unconditionally (back-office use).
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + orderColumns + `
	`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id, status, time.Now()))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return order, nil
}
