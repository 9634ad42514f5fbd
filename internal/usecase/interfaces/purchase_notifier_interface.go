package interfaces

import (
	"context"

	"bookmarket/internal/domain/entities"
)

// IPurchaseNotifier publishes purchase lifecycle events to the notification
// hub. Delivery is best-effort: the workflow logs failures but never fails a
// state change because a notification could not be sent.
type IPurchaseNotifier interface {
	PurchaseCreated(ctx context.Context, p entities.BookPurchase) error
	PurchaseCompleted(ctx context.Context, p entities.BookPurchase) error
	PurchaseCancelled(ctx context.Context, p entities.BookPurchase) error
}
