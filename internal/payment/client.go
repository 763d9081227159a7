// Package payment talks to the PortOne V2 payments API. The provider's
// record is the only source of truth for whether money actually moved;
// nothing in this package trusts client-supplied payment state.
package payment

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// StatusPaid is the provider status for a fully completed payment. Anything
// else, including partial states, fails verification.
const StatusPaid = "PAID"

// Payment is the provider's authoritative record of one transaction.
type Payment struct {
	ID            string
	TransactionID string
	Status        string
	Amount        int64
	Method        string
	PaidAt        time.Time
	ReceiptURL    string
}

// Client looks up payments on the provider.
type Client interface {
	// GetPayment fetches the provider's record for the given payment id.
	// Errors (including timeouts) mean the payment state is unknown and
	// must never be treated as success.
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)
}

// portOneClient implements Client against the PortOne V2 REST API.
type portOneClient struct {
	baseURL    string
	apiSecret  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewPortOneClient creates a PortOne V2 API client. The timeout bounds the
// whole lookup; an ambiguous provider response is a verification failure.
func NewPortOneClient(baseURL, apiSecret string, timeout time.Duration, logger zerolog.Logger) Client {
	return &portOneClient{
		baseURL:   baseURL,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "portone-client").Logger(),
	}
}

// portOnePayment mirrors the fields of the PortOne V2 payment resource that
// verification needs.
type portOnePayment struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Amount        struct {
		Total int64 `json:"total"`
	} `json:"amount"`
	Method *struct {
		Type string `json:"type"`
	} `json:"method"`
	PaidAt     string `json:"paidAt"`
	ReceiptURL string `json:"receiptUrl"`
}

// GetPayment fetches the provider's record for the given payment id.
func (c *portOneClient) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	url := fmt.Sprintf("%s/payments/%s", c.baseURL, paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment lookup request: %w", err)
	}
	req.Header.Set("Authorization", "PortOne "+c.apiSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("payment_id", paymentID).Msg("payment lookup failed")
		return nil, fmt.Errorf("payment lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("payment_id", paymentID).
			Msg("provider returned non-OK status for payment lookup")
		return nil, fmt.Errorf("payment lookup returned status %d", resp.StatusCode)
	}

	var p portOnePayment
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}

	result := &Payment{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		Amount:        p.Amount.Total,
		ReceiptURL:    p.ReceiptURL,
	}
	if p.Method != nil {
		result.Method = p.Method.Type
	}
	if p.PaidAt != "" {
		paidAt, err := time.Parse(time.RFC3339, p.PaidAt)
		if err != nil {
			c.logger.Warn().Str("paid_at", p.PaidAt).Msg("unparseable paidAt from provider")
		} else {
			result.PaidAt = paidAt
		}
	}

	return result, nil
}

// NewPaymentID generates a fresh payment id for one checkout attempt:
// 128 bits from crypto/rand, hex encoded. Never reused across attempts.
func NewPaymentID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate payment id: %w", err)
	}
	return "payment-" + hex.EncodeToString(buf), nil
}
