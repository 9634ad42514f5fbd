package usecase

import (
	"context"
	"strings"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ICategoryUseCase exposes the category reference list.
type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, name, description string) (entities.Category, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) CreateCategory(ctx context.Context, name, description string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, newValidationError("name", "is required")
	}

	existing, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.Category{}, err
	}
	if existing.ID != "" {
		return entities.Category{}, ErrCategoryAlreadyExists
	}

	c := entities.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, c)
}

func (u *CategoryUseCase) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return u.repo.List(ctx)
}

func (u *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return newValidationError("id", "is required")
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrCategoryNotFound
	}
	return u.repo.Delete(ctx, c.ID)
}
