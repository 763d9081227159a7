package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortOneClient_GetPayment(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/payments/payment-abc123", r.URL.Path)
			assert.Equal(t, "PortOne test-secret", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "payment-abc123",
				"transactionId": "tx-001",
				"status": "PAID",
				"amount": {"total": 17000, "paid": 17000},
				"method": {"type": "PaymentMethodCard"},
				"paidAt": "2026-08-28T12:00:00Z",
				"receiptUrl": "https://receipts.example.com/tx-001"
			}`))
		}))
		defer server.Close()

		client := NewPortOneClient(server.URL, "test-secret", 5*time.Second, logger)

		p, err := client.GetPayment(context.Background(), "payment-abc123")

		require.NoError(t, err)
		assert.Equal(t, "payment-abc123", p.ID)
		assert.Equal(t, "tx-001", p.TransactionID)
		assert.Equal(t, StatusPaid, p.Status)
		assert.Equal(t, int64(17000), p.Amount)
		assert.Equal(t, "PaymentMethodCard", p.Method)
		assert.Equal(t, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), p.PaidAt)
		assert.Equal(t, "https://receipts.example.com/tx-001", p.ReceiptURL)
	})

	t.Run("Unpaid payment without method", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "payment-abc123", "status": "READY", "amount": {"total": 17000}}`))
		}))
		defer server.Close()

		client := NewPortOneClient(server.URL, "test-secret", 5*time.Second, logger)

		p, err := client.GetPayment(context.Background(), "payment-abc123")

		require.NoError(t, err)
		assert.Equal(t, "READY", p.Status)
		assert.Empty(t, p.Method)
		assert.True(t, p.PaidAt.IsZero())
	})

	t.Run("Provider error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"type": "PAYMENT_NOT_FOUND"}`, http.StatusNotFound)
		}))
		defer server.Close()

		client := NewPortOneClient(server.URL, "test-secret", 5*time.Second, logger)

		_, err := client.GetPayment(context.Background(), "payment-missing")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("Malformed response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewPortOneClient(server.URL, "test-secret", 5*time.Second, logger)

		_, err := client.GetPayment(context.Background(), "payment-abc123")

		require.Error(t, err)
	})

	t.Run("Context cancelled", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		client := NewPortOneClient(server.URL, "test-secret", 5*time.Second, logger)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetPayment(ctx, "payment-abc123")

		require.Error(t, err)
	})
}

func TestNewPaymentID(t *testing.T) {
	first, err := NewPaymentID()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first, "payment-"))
	// "payment-" plus 16 bytes hex encoded.
	assert.Len(t, first, len("payment-")+32)

	second, err := NewPaymentID()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
