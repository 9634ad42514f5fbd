package handlers

import (
	"errors"
	"net/http"

	"bookmarket/internal/usecase"
	"bookmarket/pkg"
)

// mapDomainError translates use case errors into transport errors. Conflict
// outcomes (stock, price drift, illegal transitions) all map to 409 so
// clients can retry with fresh state.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookNotFound):
		return pkg.NewDomainErrorSimple("BOOK_NOT_FOUND", "Book not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Shipping address not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryAlreadyExists):
		return pkg.NewDomainErrorSimple("CATEGORY_ALREADY_EXISTS", "Category already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookNotAvailable):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPriceMismatch):
		return pkg.NewDomainErrorSimple("PRICE_MISMATCH", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPurchaseNotPending):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_PENDING", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrBookHasPurchases):
		return pkg.NewDomainErrorSimple("BOOK_HAS_PURCHASES", "Book has purchase history and cannot be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
