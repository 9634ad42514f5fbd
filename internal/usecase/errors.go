package usecase

import (
	"errors"
	"fmt"

	"bookmarket/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrBookNotFound              = errors.New("book not found")
	ErrPurchaseNotFound          = errors.New("purchase not found")
	ErrAddressNotFound           = errors.New("shipping address not found")
	ErrCategoryNotFound          = errors.New("category not found")
	ErrCategoryAlreadyExists     = errors.New("category already exists")
	ErrValidation                = errors.New("invalid input")
	ErrBookNotAvailable          = errors.New("book not available in requested quantity")
	ErrPriceMismatch             = errors.New("purchase price does not match current book price")
	ErrPurchaseNotPending        = errors.New("only pending purchases can change status")
	ErrBookHasPurchases          = errors.New("book has purchase history")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// ValidationError names the offending field. errors.Is(err, ErrValidation)
// matches it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StockError carries the stock levels behind an insufficient-stock failure.
// Available is the last-read quantity and may be stale under contention; the
// failed conditional update is what actually decided the outcome.
type StockError struct {
	BookID    string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("book %s not available in requested quantity: available=%d requested=%d", e.BookID, e.Available, e.Requested)
}

func (e *StockError) Is(target error) bool { return target == ErrBookNotAvailable }

// PriceMismatchError carries the current and proposed unit prices.
type PriceMismatchError struct {
	Current  decimal.Decimal
	Proposed decimal.Decimal
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("purchase price does not match current book price: current=%s proposed=%s", e.Current, e.Proposed)
}

func (e *PriceMismatchError) Is(target error) bool { return target == ErrPriceMismatch }

// StateError reports an illegal status transition attempt.
type StateError struct {
	PurchaseID string
	Current    entities.PurchaseStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("purchase %s is %s: only pending purchases can change status", e.PurchaseID, e.Current)
}

func (e *StateError) Is(target error) bool { return target == ErrPurchaseNotPending }
