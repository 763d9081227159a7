package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeLeadTimeViolation  = "LEAD_TIME_VIOLATION"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeMenuNotFound       = "MENU_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeVerificationFailed = "VERIFICATION_FAILED"
	ErrCodeInvalidHalfPrice   = "INVALID_HALF_PRICE"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure with a stable reason code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart        = NewDomainError(ErrCodeEmptyCart, "Order must contain at least one item")
	ErrMissingField     = NewDomainError(ErrCodeMissingField, "Required delivery information is missing")
	ErrLeadTime         = NewDomainError(ErrCodeLeadTimeViolation, "Delivery date must be at least 2 days after the order date")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrMenuNotFound     = NewDomainError(ErrCodeMenuNotFound, "Menu item not found")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidHalfPrice = NewDomainError(ErrCodeInvalidHalfPrice, "Half price must be lower than the full price and declare both sizes")
)

// NewVerificationError reports a payment verification failure with a
// human-readable reason. It is terminal for the order it describes.
func NewVerificationError(reason string) *DomainError {
	return NewDomainError(ErrCodeVerificationFailed, reason)
}
