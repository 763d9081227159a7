package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ezysalad/internal/config"
	"ezysalad/internal/model"
	"ezysalad/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// deliveryDateLayout is the wire format for delivery dates.
const deliveryDateLayout = "2006-01-02"

// orderService implements OrderService.
type orderService struct {
	repo   repository.OrderRepository
	cfg    config.OrderConfig
	logger zerolog.Logger
	now    func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, cfg config.OrderConfig, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		cfg:    cfg,
		logger: logger.With().Str("service", "order").Logger(),
		now:    time.Now,
	}
}

// CreateOrder validates the cart and delivery info, computes the total
// server-side and persists the order with its line items in one transaction.
// No payment or mail happens here; a created order is a pure reservation in
// pending status.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (resp *model.OrderResponse, err error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	// The client's totalAmount/deliveryFee are display echoes only.
	var subtotal int64
	for _, item := range req.Items {
		subtotal += item.Price * int64(item.Quantity)
	}
	total := subtotal + s.cfg.DeliveryFee

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := s.now()
	order := &model.Order{
		ID:                    uuid.New(),
		OrderNumber:           s.generateOrderNumber(now),
		CustomerName:          req.DeliveryInfo.Name,
		CustomerPhone:         req.DeliveryInfo.Phone,
		CustomerEmail:         req.DeliveryInfo.Email,
		DeliveryAddress:       req.DeliveryInfo.Address,
		DeliveryDetailAddress: req.DeliveryInfo.DetailAddress,
		DeliveryZipCode:       req.DeliveryInfo.ZipCode,
		DeliveryDate:          req.DeliveryInfo.DeliveryDate,
		DeliveryTime:          req.DeliveryInfo.DeliveryTime,
		TotalAmount:           total,
		DeliveryFee:           s.cfg.DeliveryFee,
		Status:                model.OrderStatusPending,
		PaymentStatus:         model.PaymentStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err = s.repo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			ID:           uuid.New(),
			OrderID:      order.ID,
			MenuID:       item.ID,
			MenuName:     item.Name,
			MenuCategory: item.Category,
			Price:        item.Price,
			Quantity:     item.Quantity,
		}
	}

	if err = s.repo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Int64("total_amount", total).
		Int("item_count", len(orderItems)).
		Msg("order created successfully")

	return &model.OrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		DeliveryFee:  order.DeliveryFee,
		DeliveryDate: order.DeliveryDate,
		DeliveryTime: order.DeliveryTime,
	}, nil
}

// Lookup retrieves an order by (order number, phone) for customer self-service.
func (s *orderService) Lookup(ctx context.Context, orderNumber, phone string) (*model.OrderLookupResponse, error) {
	if orderNumber == "" || phone == "" {
		return nil, model.ErrMissingField
	}

	order, items, err := s.repo.GetByNumberAndPhone(ctx, orderNumber, phone)
	if err != nil {
		s.logger.Error().Err(err).Str("order_number", orderNumber).Msg("failed to look up order")
		return nil, fmt.Errorf("failed to look up order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderLookupResponse{Order: order, Items: items}, nil
}

// UpdateStatus sets an order's status (back office).
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	if status == "" {
		return nil, model.ErrMissingField
	}

	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().Str("order_id", id.String()).Str("status", status).Msg("order status updated")
	return order, nil
}

// validateOrderRequest applies the intake rules. First failure wins.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return model.ErrEmptyCart
	}

	info := req.DeliveryInfo
	if info.Name == "" || info.Phone == "" || info.Address == "" ||
		info.DeliveryDate == "" || info.DeliveryTime == "" {
		return model.ErrMissingField
	}

	deliveryDate, err := time.ParseInLocation(deliveryDateLayout, info.DeliveryDate, time.Local)
	if err != nil {
		return model.ErrLeadTime
	}

	// Same-day or next-day delivery is never permitted, regardless of the
	// time of day at submission: compare at midnight granularity.
	now := s.now()
	minDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).
		AddDate(0, 0, s.cfg.LeadTimeDays)
	if deliveryDate.Before(minDate) {
		return model.ErrLeadTime
	}

	for i, item := range req.Items {
		if item.ID == "" || item.Name == "" {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("Item %d is missing its menu reference", i))
		}
		if item.Quantity < 1 {
			return model.ErrInvalidQuantity
		}
		if item.Price < 0 {
			return model.NewDomainError(model.ErrCodeMissingField, fmt.Sprintf("Item %d has a negative price", i))
		}
	}

	return nil
}

// generateOrderNumber builds a human-readable unique order number, e.g.
// "20260828-3F0A1C". Generated before the insert so the number can be
// returned from the same round-trip.
func (s *orderService) generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s", now.Format("20060102"), suffix)
}
