package interfaces

import (
	"context"

	"bookmarket/internal/domain/entities"
)

// IShippingAddressRepository abstracts DynamoDB persistence for
// ShippingAddress. ClearDefault unsets IsDefault on every address of the
// user; callers invoke it before persisting a new default.
type IShippingAddressRepository interface {
	Create(ctx context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error)
	GetByID(ctx context.Context, id string) (entities.ShippingAddress, error)
	Update(ctx context.Context, a entities.ShippingAddress) (entities.ShippingAddress, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]entities.ShippingAddress, error)
	ClearDefault(ctx context.Context, userID string) error
}
