package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookCommand carries the fields for a new listing.
type CreateBookCommand struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Quantity    int
	CoverImage  string
	Category    string
	OwnerID     string
	OwnerName   string
}

// UpdateBookCommand is a partial update; nil fields are left untouched.
type UpdateBookCommand struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	CoverImage  *string
	Category    *string
	OwnerName   *string
}

// IBookUseCase exposes catalog operations.
//
// All stock mutation goes through Restock here or through the purchase
// workflow's atomic decrement; nothing else writes quantity.
type IBookUseCase interface {
	CreateBook(ctx context.Context, cmd CreateBookCommand) (entities.Book, error)
	UpdateBook(ctx context.Context, id string, cmd UpdateBookCommand) (entities.Book, error)
	GetByID(ctx context.Context, id string) (entities.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListBooks(ctx context.Context, f entities.BookFilters) ([]entities.Book, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Book, error)
	ListCategories(ctx context.Context) ([]string, error)
	Restock(ctx context.Context, id string, amount int) (entities.Book, error)
	OwnerStatistics(ctx context.Context, ownerID string) (entities.OwnerStatistics, error)
}

type BookUseCase struct {
	repo      interfaces.IBookRepository
	purchases interfaces.IPurchaseRepository
}

var _ IBookUseCase = (*BookUseCase)(nil)

func NewBookUseCase(repo interfaces.IBookRepository, purchases interfaces.IPurchaseRepository) *BookUseCase {
	return &BookUseCase{repo: repo, purchases: purchases}
}

func (u *BookUseCase) CreateBook(ctx context.Context, cmd CreateBookCommand) (entities.Book, error) {
	cmd.Title = strings.TrimSpace(cmd.Title)
	cmd.OwnerID = strings.TrimSpace(cmd.OwnerID)
	cmd.OwnerName = strings.TrimSpace(cmd.OwnerName)

	if err := validateBookFields(cmd.Title, cmd.Description, cmd.Price, cmd.Quantity); err != nil {
		return entities.Book{}, err
	}
	if cmd.OwnerID == "" {
		return entities.Book{}, newValidationError("owner_id", "is required")
	}
	if cmd.OwnerName == "" {
		return entities.Book{}, newValidationError("owner_name", "is required")
	}

	now := time.Now().UTC()
	b := entities.Book{
		ID:          uuid.NewString(),
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		Quantity:    cmd.Quantity,
		CoverImage:  cmd.CoverImage,
		Category:    strings.TrimSpace(cmd.Category),
		OwnerID:     cmd.OwnerID,
		OwnerName:   cmd.OwnerName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[book][usecase] create failed owner_id=%s err=%v", cmd.OwnerID, err)
		return entities.Book{}, err
	}
	log.Printf("[book][usecase] create success book_id=%s owner_id=%s", created.ID, created.OwnerID)
	return created, nil
}

func (u *BookUseCase) UpdateBook(ctx context.Context, id string, cmd UpdateBookCommand) (entities.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Book{}, newValidationError("id", "is required")
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Book{}, err
	}
	if b.ID == "" {
		return entities.Book{}, ErrBookNotFound
	}

	if cmd.Title != nil {
		b.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		b.Description = *cmd.Description
	}
	if cmd.Price != nil {
		b.Price = *cmd.Price
	}
	if cmd.Quantity != nil {
		b.Quantity = *cmd.Quantity
	}
	if cmd.CoverImage != nil {
		b.CoverImage = *cmd.CoverImage
	}
	if cmd.Category != nil {
		b.Category = strings.TrimSpace(*cmd.Category)
	}
	if cmd.OwnerName != nil {
		b.OwnerName = strings.TrimSpace(*cmd.OwnerName)
	}

	if err := validateBookFields(b.Title, b.Description, b.Price, b.Quantity); err != nil {
		return entities.Book{}, err
	}

	b.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		log.Printf("[book][usecase] update failed book_id=%s err=%v", id, err)
		return entities.Book{}, err
	}
	if updated.ID == "" {
		return entities.Book{}, ErrBookNotFound
	}
	return updated, nil
}

func (u *BookUseCase) GetByID(ctx context.Context, id string) (entities.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Book{}, newValidationError("id", "is required")
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Book{}, err
	}
	if b.ID == "" {
		return entities.Book{}, ErrBookNotFound
	}
	return b, nil
}

// DeleteBook removes a listing. Books referenced by ledger records are never
// deleted; the history must stay resolvable.
func (u *BookUseCase) DeleteBook(ctx context.Context, id string) error {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	history, err := u.purchases.ListByBook(ctx, b.ID)
	if err != nil {
		return err
	}
	if len(history) > 0 {
		log.Printf("[book][usecase] delete rejected book_id=%s purchases=%d", b.ID, len(history))
		return ErrBookHasPurchases
	}

	if err := u.repo.Delete(ctx, b.ID); err != nil {
		log.Printf("[book][usecase] delete failed book_id=%s err=%v", b.ID, err)
		return err
	}
	log.Printf("[book][usecase] delete success book_id=%s", b.ID)
	return nil
}

func (u *BookUseCase) ListBooks(ctx context.Context, f entities.BookFilters) ([]entities.Book, error) {
	return u.repo.ListWithFilters(ctx, f)
}

func (u *BookUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Book, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, newValidationError("owner_id", "is required")
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

func (u *BookUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return u.repo.ListCategories(ctx)
}

// Restock adds stock back to a listing. This is the only path that returns
// units to inventory; cancelling a purchase deliberately does not.
// The 999 creation cap is not re-checked here.
func (u *BookUseCase) Restock(ctx context.Context, id string, amount int) (entities.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Book{}, newValidationError("id", "is required")
	}
	if amount <= 0 {
		return entities.Book{}, newValidationError("amount", "must be positive")
	}

	b, err := u.repo.IncreaseQuantity(ctx, id, amount)
	if err != nil {
		log.Printf("[book][usecase] restock failed book_id=%s amount=%d err=%v", id, amount, err)
		return entities.Book{}, err
	}
	if b.ID == "" {
		return entities.Book{}, ErrBookNotFound
	}
	log.Printf("[book][usecase] restock success book_id=%s amount=%d quantity=%d", id, amount, b.Quantity)
	return b, nil
}

func (u *BookUseCase) OwnerStatistics(ctx context.Context, ownerID string) (entities.OwnerStatistics, error) {
	books, err := u.ListByOwner(ctx, ownerID)
	if err != nil {
		return entities.OwnerStatistics{}, err
	}

	stats := entities.OwnerStatistics{InventoryValue: decimal.Zero}
	for _, b := range books {
		stats.TotalListings++
		stats.UnitsInStock += b.Quantity
		stats.InventoryValue = stats.InventoryValue.Add(b.Price.Mul(decimal.NewFromInt(int64(b.Quantity))))
	}
	return stats, nil
}

func validateBookFields(title, description string, price decimal.Decimal, quantity int) error {
	if title == "" {
		return newValidationError("title", "is required")
	}
	if len(title) > entities.BookTitleMaxLen {
		return newValidationError("title", "exceeds 255 characters")
	}
	if len(description) > entities.BookDescriptionMaxLen {
		return newValidationError("description", "exceeds 1000 characters")
	}
	if !price.IsPositive() {
		return newValidationError("price", "must be positive")
	}
	if price.GreaterThan(entities.MaxBookPrice) {
		return newValidationError("price", "exceeds 9999.99")
	}
	if quantity < 0 {
		return newValidationError("quantity", "must not be negative")
	}
	if quantity > entities.BookQuantityMax {
		return newValidationError("quantity", "exceeds 999")
	}
	return nil
}
