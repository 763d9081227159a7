package model

import (
	"time"

	"github.com/google/uuid"
)

// Order status values. Paid and cancelled are terminal.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Payment status values on an order.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Order represents a customer purchase attempt from intake through its
// terminal payment outcome.
type Order struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	OrderNumber           string     `json:"orderNumber" db:"order_number"`
	CustomerName          string     `json:"customerName" db:"customer_name"`
	CustomerPhone         string     `json:"customerPhone" db:"customer_phone"`
	CustomerEmail         *string    `json:"customerEmail,omitempty" db:"customer_email"`
	DeliveryAddress       string     `json:"deliveryAddress" db:"delivery_address"`
	DeliveryDetailAddress string     `json:"deliveryDetailAddress" db:"delivery_detail_address"`
	DeliveryZipCode       string     `json:"deliveryZipCode" db:"delivery_zip_code"`
	DeliveryDate          string     `json:"deliveryDate" db:"delivery_date"`
	DeliveryTime          string     `json:"deliveryTime" db:"delivery_time"`
	TotalAmount           int64      `json:"totalAmount" db:"total_amount"`
	DeliveryFee           int64      `json:"deliveryFee" db:"delivery_fee"`
	Status                string     `json:"status" db:"status"`
	PaymentStatus         string     `json:"paymentStatus" db:"payment_status"`
	PaymentID             *string    `json:"paymentId,omitempty" db:"payment_id"`
	PaymentMethod         *string    `json:"paymentMethod,omitempty" db:"payment_method"`
	PaidAt                *time.Time `json:"paidAt,omitempty" db:"paid_at"`
	CreatedAt             time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time  `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a denormalized snapshot of a menu item at order time. Catalog
// prices may change later; the order stays historically accurate.
type OrderItem struct {
	ID           uuid.UUID `json:"-" db:"id"`
	OrderID      uuid.UUID `json:"-" db:"order_id"`
	MenuID       string    `json:"menuId" db:"menu_id"`
	MenuName     string    `json:"menuName" db:"menu_name"`
	MenuCategory string    `json:"menuCategory" db:"menu_category"`
	Price        int64     `json:"price" db:"price"`
	Quantity     int       `json:"quantity" db:"quantity"`
}

// DeliveryInfo carries the delivery details submitted at checkout.
type DeliveryInfo struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email,omitempty"`
	Address       string  `json:"address"`
	DetailAddress string  `json:"detailAddress"`
	ZipCode       string  `json:"zipCode"`
	DeliveryDate  string  `json:"deliveryDate"`
	DeliveryTime  string  `json:"deliveryTime"`
}

// OrderRequest represents the request payload for creating an order.
// TotalAmount and DeliveryFee are client echoes for display only; the server
// recomputes both and never trusts them.
type OrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	DeliveryInfo DeliveryInfo       `json:"deliveryInfo"`
	TotalAmount  int64              `json:"totalAmount"`
	DeliveryFee  int64              `json:"deliveryFee"`
}

// OrderItemRequest represents a single cart line in an order request.
type OrderItemRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderResponse represents the response payload after order creation.
type OrderResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	Status       string    `json:"status"`
	TotalAmount  int64     `json:"totalAmount"`
	DeliveryFee  int64     `json:"deliveryFee"`
	DeliveryDate string    `json:"deliveryDate"`
	DeliveryTime string    `json:"deliveryTime"`
}

// OrderLookupResponse is returned by the customer self-service lookup.
type OrderLookupResponse struct {
	Order *Order      `json:"order"`
	Items []OrderItem `json:"items"`
}
