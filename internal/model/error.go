package model

// Standard error codes for API responses
const (
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeReservationFailed = "RESERVATION_FAILED"
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
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrReservationFailed = NewDomainError(ErrCodeReservationFailed, "Code reservation failed, please try again")
)
