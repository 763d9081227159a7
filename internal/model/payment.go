package model

import "time"

// CompletePaymentRequest is the client's claim that a payment finished. Only
// paymentId and orderId are trusted as identifiers; amount is optional (the
// provider redirect flow omits it) and the stored order total is used when it
// is missing. The financial decision always comes from the provider lookup.
type CompletePaymentRequest struct {
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Amount    *int64 `json:"amount,omitempty"`
}

// PaymentResult is the verification endpoint's response.
type PaymentResult struct {
	Status      string              `json:"status"`
	Message     string              `json:"message,omitempty"`
	OrderNumber string              `json:"orderNumber,omitempty"`
	Order       *PaymentResultOrder `json:"order,omitempty"`
}

// PaymentResultOrder summarizes the finalized order inside a PaymentResult.
type PaymentResultOrder struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"orderNumber"`
	PaymentID     string     `json:"paymentId"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"paymentStatus"`
	TotalAmount   int64      `json:"totalAmount"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

// CheckoutConfig is handed to the browser before it opens the payment widget.
// PaymentID is freshly generated per call and never reused across attempts.
type CheckoutConfig struct {
	StoreID    string `json:"storeId"`
	ChannelKey string `json:"channelKey"`
	PaymentID  string `json:"paymentId"`
	Currency   string `json:"currency"`
}
