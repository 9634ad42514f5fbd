package interfaces

import (
	"context"
	"time"

	"bookmarket/internal/domain/entities"
)

// IPurchaseRepository abstracts DynamoDB persistence for BookPurchase.
//
// Read methods return the zero-value BookPurchase (ID == "") when no record
// matches.
//
// UpdateStatus must be conditional on the stored status still being
// "pending" and return the zero value when the condition fails; callers
// re-read to tell "not found" from "already terminal".
type IPurchaseRepository interface {
	Create(ctx context.Context, p entities.BookPurchase) (entities.BookPurchase, error)
	GetByID(ctx context.Context, id string) (entities.BookPurchase, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entities.BookPurchase, error)
	UpdateStatus(ctx context.Context, id string, status entities.PurchaseStatus, transactionID string, completedAt *time.Time) (entities.BookPurchase, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]entities.BookPurchase, error)
	ListBySeller(ctx context.Context, sellerID string) ([]entities.BookPurchase, error)
	ListByBook(ctx context.Context, bookID string) ([]entities.BookPurchase, error)
	ListByStatus(ctx context.Context, status entities.PurchaseStatus) ([]entities.BookPurchase, error)
	ListWithFilters(ctx context.Context, f entities.PurchaseFilters) ([]entities.BookPurchase, error)
	ListRecentCompleted(ctx context.Context, limit int) ([]entities.BookPurchase, error)
}
