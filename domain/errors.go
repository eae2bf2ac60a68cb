package domain

import "fmt"

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	ErrInsufficientQuantity = NewDomainError("not enough of the denomination")
	ErrInvalidAmount        = NewDomainError("invalid amount")
	ErrNegativeAmount       = NewDomainError("amount cannot be negative")
	ErrInvalidDenomination  = NewDomainError("invalid denomination")
	ErrUnknownDenomination  = NewDomainError("unknown denomination")
	ErrInvalidCatalog       = NewDomainError("invalid denomination catalog")
	ErrPurseExists          = NewDomainError("purse already exists")
	ErrPurseNotFound        = NewDomainError("purse not found")
)
