package service

import (
	"errors"
	"fmt"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
)

var (
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrKitchenConflict       = errors.New("cart already holds items from another kitchen")
	ErrEmptyOrder            = errors.New("order has no items")
	ErrOrderNotFound         = errors.New("order not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrSignInRequired        = errors.New("sign in required")
	ErrNotLoggedIn           = errors.New("no user is signed in")
	ErrAddressNotFound       = errors.New("address not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrKitchenNotFound       = errors.New("kitchen not found")
	ErrAddressRequired       = errors.New("delivery address required")
	ErrPaymentRequired       = errors.New("payment method required")
	ErrCartChanged           = errors.New("cart changed during checkout")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// TransitionError is returned when an order cannot move to the requested status.
type TransitionError struct {
	OrderID string
	From    domain.OrderStatus
	To      domain.OrderStatus
}

func (e *TransitionError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("order %s cannot advance from %s", e.OrderID, e.From)
	}
	return fmt.Sprintf("order %s cannot move from %s to %s", e.OrderID, e.From, e.To)
}
