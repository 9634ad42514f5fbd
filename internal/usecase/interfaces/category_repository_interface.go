package interfaces

import (
	"context"

	"bookmarket/internal/domain/entities"
)

// ICategoryRepository abstracts DynamoDB persistence for Category.
type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id string) (entities.Category, error)
	GetByName(ctx context.Context, name string) (entities.Category, error)
	List(ctx context.Context) ([]entities.Category, error)
	Delete(ctx context.Context, id string) error
}
