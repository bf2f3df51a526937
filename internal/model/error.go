package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInvalidName     = "INVALID_NAME"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeInvalidSize     = "INVALID_SIZE"
	ErrCodeInvalidStock    = "INVALID_STOCK"
	ErrCodeInvalidUser     = "INVALID_USER"
	ErrCodeEmptyOrder      = "EMPTY_ORDER"
	ErrCodeInvalidProduct  = "INVALID_PRODUCT"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
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
	ErrInvalidName     = NewDomainError(ErrCodeInvalidName, "Product name must not be empty")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Product price must not be negative")
	ErrInvalidSize     = NewDomainError(ErrCodeInvalidSize, "Size label must not be empty")
	ErrInvalidStock    = NewDomainError(ErrCodeInvalidStock, "Size stock must not be negative")
	ErrInvalidUser     = NewDomainError(ErrCodeInvalidUser, "Order userId must not be empty")
	ErrEmptyOrder      = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrInvalidProduct  = NewDomainError(ErrCodeInvalidProduct, "Order item productId must not be empty")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
)
