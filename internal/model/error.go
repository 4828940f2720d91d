package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidPrice       = "INVALID_PRICE"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodePersistence        = "PERSISTENCE_ERROR"
	ErrCodeGateway            = "GATEWAY_ERROR"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeInvalidStoreStatus = "INVALID_STORE_STATUS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError carries a stable machine-readable code alongside a human
// message. Err, when set, is the underlying cause.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidPriceError reports a malformed monetary value, naming the
// offending product.
func NewInvalidPriceError(productName string) *DomainError {
	return NewDomainError(ErrCodeInvalidPrice, fmt.Sprintf("Invalid price for product: %s", productName))
}

// NewPersistenceError wraps a storage failure.
func NewPersistenceError(err error) *DomainError {
	return &DomainError{Code: ErrCodePersistence, Message: "order persistence failed", Err: err}
}

// NewGatewayError wraps a payment processor failure.
func NewGatewayError(err error) *DomainError {
	return &DomainError{Code: ErrCodeGateway, Message: "checkout session creation failed", Err: err}
}

// Common domain errors
var (
	ErrMissingCheckoutData = NewDomainError(ErrCodeValidation, "Missing required data")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidStoreStatus  = NewDomainError(ErrCodeInvalidStoreStatus, "Invalid status value")
)
