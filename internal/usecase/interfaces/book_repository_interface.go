package interfaces

import (
	"context"

	"bookmarket/internal/domain/entities"
)

// IBookRepository abstracts DynamoDB persistence for Book.
//
// Read methods return the zero-value Book (ID == "") when no record matches;
// they reserve errors for storage failures.
//
// DecreaseQuantity is the only legal way to take stock: it must be a single
// conditional update ("quantity >= amount") and return the zero-value Book
// when the condition fails, so concurrent purchases of the last unit cannot
// both succeed. IncreaseQuantity is its restock counterpart.
type IBookRepository interface {
	Create(ctx context.Context, b entities.Book) (entities.Book, error)
	GetByID(ctx context.Context, id string) (entities.Book, error)
	Update(ctx context.Context, b entities.Book) (entities.Book, error)
	Delete(ctx context.Context, id string) error
	DecreaseQuantity(ctx context.Context, id string, amount int) (entities.Book, error)
	IncreaseQuantity(ctx context.Context, id string, amount int) (entities.Book, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Book, error)
	ListWithFilters(ctx context.Context, f entities.BookFilters) ([]entities.Book, error)
	ListCategories(ctx context.Context) ([]string, error)
}
