package service

import (
	"context"
	"fmt"

	"ezysalad/internal/config"
	"ezysalad/internal/mailer"
	"ezysalad/internal/model"
	"ezysalad/internal/payment"
	"ezysalad/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Result statuses for the verification endpoint, mirroring the provider's
// vocabulary so redirect pages can branch on one field.
const (
	ResultPaid   = "PAID"
	ResultFailed = "FAILED"
)

// paymentService implements PaymentService. It reconciles three sources of
// truth: the client's claim, the stored order and the provider's record. Only
// the provider's record decides whether money moved.
type paymentService struct {
	orders   repository.OrderRepository
	provider payment.Client
	sender   mailer.Sender
	cfg      config.PaymentConfig
	operator string
	logger   zerolog.Logger
}

// NewPaymentService creates a new payment service. operatorEmail receives the
// new-order alert; leave it empty to disable.
func NewPaymentService(
	orders repository.OrderRepository,
	provider payment.Client,
	sender mailer.Sender,
	cfg config.PaymentConfig,
	operatorEmail string,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		orders:   orders,
		provider: provider,
		sender:   sender,
		cfg:      cfg,
		operator: operatorEmail,
		logger:   logger.With().Str("service", "payment").Logger(),
	}
}

// CheckoutConfig returns the widget identifiers plus a fresh payment id.
func (s *paymentService) CheckoutConfig() (*model.CheckoutConfig, error) {
	paymentID, err := payment.NewPaymentID()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to generate payment id")
		return nil, fmt.Errorf("failed to generate payment id: %w", err)
	}

	return &model.CheckoutConfig{
		StoreID:    s.cfg.StoreID,
		ChannelKey: s.cfg.ChannelKey,
		PaymentID:  paymentID,
		Currency:   s.cfg.Currency,
	}, nil
}

// Complete verifies a claimed payment and finalizes the order.
//
// The operation is idempotent: the provider's redirect flow and the explicit
// client confirmation can both call it for the same transaction, and only the
// first success finalizes and sends mail. Replays return the stored result.
func (s *paymentService) Complete(ctx context.Context, req *model.CompletePaymentRequest) (*model.PaymentResult, error) {
	if req.PaymentID == "" || req.OrderID == "" {
		return nil, model.ErrMissingField
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, model.ErrOrderNotFound
	}

	order, items, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if order.PaymentStatus == model.PaymentStatusPaid {
		s.logger.Info().
			Str("order_id", order.ID.String()).
			Str("payment_id", req.PaymentID).
			Msg("verification replay for already-paid order")
		return s.paidResult(order, "이미 처리된 주문입니다."), nil
	}

	// The stored total is the expected amount unless the client supplied
	// one (the redirect transport omits it). Either way only the provider's
	// number decides pass/fail, and only the stored total is persisted.
	expected := order.TotalAmount
	if req.Amount != nil {
		expected = *req.Amount
	}

	providerPayment, err := s.provider.GetPayment(ctx, req.PaymentID)
	if err != nil {
		// Ambiguous provider state (timeout, error) is a failure; never
		// finalize on an unconfirmed payment.
		s.logger.Warn().
			Err(err).
			Str("order_id", order.ID.String()).
			Str("payment_id", req.PaymentID).
			Msg("provider lookup failed")
		return s.failVerification(ctx, order, "결제 정보 조회에 실패했습니다.")
	}

	if providerPayment.Status != payment.StatusPaid {
		s.logger.Warn().
			Str("order_id", order.ID.String()).
			Str("provider_status", providerPayment.Status).
			Msg("payment not completed at provider")
		return s.failVerification(ctx, order, "결제가 완료되지 않았습니다.")
	}

	if providerPayment.Amount != expected {
		s.logger.Warn().
			Str("order_id", order.ID.String()).
			Int64("provider_amount", providerPayment.Amount).
			Int64("expected_amount", expected).
			Msg("payment amount mismatch")
		return s.failVerification(ctx, order, "결제 금액이 일치하지 않습니다.")
	}

	finalized, err := s.orders.MarkPaid(ctx, order.ID, req.PaymentID, providerPayment.Method, providerPayment.PaidAt)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize order: %w", err)
	}

	if !finalized {
		// Lost the race against a concurrent verification; report whatever
		// terminal state won.
		current, _, err := s.orders.GetByID(ctx, order.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload order: %w", err)
		}
		if current != nil && current.PaymentStatus == model.PaymentStatusPaid {
			return s.paidResult(current, "이미 처리된 주문입니다."), nil
		}
		return &model.PaymentResult{
			Status:  ResultFailed,
			Message: "결제 검증에 실패했습니다.",
		}, nil
	}

	order, items, err = s.orders.GetByID(ctx, order.ID)
	if err != nil || order == nil {
		return nil, fmt.Errorf("failed to reload finalized order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("payment_id", req.PaymentID).
		Int64("amount", order.TotalAmount).
		Msg("payment verified, order finalized")

	// Mail is best-effort and strictly after the committed write; a failed
	// send never rolls back a paid order.
	s.sendNotifications(order, items, req.PaymentID)

	return s.paidResult(order, ""), nil
}

// failVerification cancels the order and reports a structured failure. The
// cancel is conditional on the order still being pending; losing that race to
// a successful verification leaves the paid state untouched.
func (s *paymentService) failVerification(ctx context.Context, order *model.Order, reason string) (*model.PaymentResult, error) {
	cancelled, err := s.orders.MarkCancelled(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	if !cancelled {
		current, _, err := s.orders.GetByID(ctx, order.ID)
		if err == nil && current != nil && current.PaymentStatus == model.PaymentStatusPaid {
			return s.paidResult(current, "이미 처리된 주문입니다."), nil
		}
	}

	return &model.PaymentResult{
		Status:  ResultFailed,
		Message: reason,
	}, nil
}

// sendNotifications sends the customer confirmation and the operator alert.
// Each failure is logged independently; one failing must not stop the other.
func (s *paymentService) sendNotifications(order *model.Order, items []model.OrderItem, paymentID string) {
	body := mailer.BuildOrderConfirmationBody(order, items, paymentID)

	if order.CustomerEmail != nil && *order.CustomerEmail != "" {
		if err := s.sender.Send(*order.CustomerEmail, mailer.OrderConfirmationSubject(order.OrderNumber), body); err != nil {
			s.logger.Error().
				Err(err).
				Str("order_number", order.OrderNumber).
				Msg("failed to send customer confirmation email")
		}
	}

	if s.operator != "" {
		if err := s.sender.Send(s.operator, mailer.NewOrderAlertSubject(order.OrderNumber, order.CustomerName), body); err != nil {
			s.logger.Error().
				Err(err).
				Str("order_number", order.OrderNumber).
				Msg("failed to send operator alert email")
		}
	}
}

func (s *paymentService) paidResult(order *model.Order, message string) *model.PaymentResult {
	paymentID := ""
	if order.PaymentID != nil {
		paymentID = *order.PaymentID
	}

	return &model.PaymentResult{
		Status:      ResultPaid,
		Message:     message,
		OrderNumber: order.OrderNumber,
		Order: &model.PaymentResultOrder{
			ID:            order.ID.String(),
			OrderNumber:   order.OrderNumber,
			PaymentID:     paymentID,
			Status:        order.Status,
			PaymentStatus: order.PaymentStatus,
			TotalAmount:   order.TotalAmount,
			PaidAt:        order.PaidAt,
		},
	}
}
