package request

import (
	"strings"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateBookRequest is the payload for listing a book for sale.
type CreateBookRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	CoverImage  string          `json:"cover_image"`
	Category    string          `json:"category"`
	OwnerID     string          `json:"owner_id" binding:"required"`
	OwnerName   string          `json:"owner_name"`
}

func (r CreateBookRequest) ToCommand() usecase.CreateBookCommand {
	return usecase.CreateBookCommand{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		CoverImage:  r.CoverImage,
		Category:    r.Category,
		OwnerID:     r.OwnerID,
		OwnerName:   r.OwnerName,
	}
}

// UpdateBookRequest carries a partial update; absent fields stay untouched.
type UpdateBookRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	CoverImage  *string          `json:"cover_image"`
	Category    *string          `json:"category"`
	OwnerName   *string          `json:"owner_name"`
}

func (r UpdateBookRequest) ToCommand() usecase.UpdateBookCommand {
	return usecase.UpdateBookCommand{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		CoverImage:  r.CoverImage,
		Category:    r.Category,
		OwnerName:   r.OwnerName,
	}
}

// RestockRequest adds units back to a listing.
type RestockRequest struct {
	Amount int `json:"amount" binding:"required"`
}

// BookListQuery collects the catalog listing query parameters.
type BookListQuery struct {
	Search        string `form:"search"`
	Category      string `form:"category"`
	OwnerID       string `form:"owner_id"`
	ExcludeOwner  string `form:"exclude_owner"`
	AvailableOnly bool   `form:"available_only"`
	PriceMin      string `form:"price_min"`
	PriceMax      string `form:"price_max"`
	SortBy        string `form:"sort_by"`
	SortOrder     string `form:"sort_order"`
	Limit         int    `form:"limit"`
}

func (q BookListQuery) ToFilters() (entities.BookFilters, error) {
	f := entities.BookFilters{
		Search:        strings.TrimSpace(q.Search),
		Category:      strings.TrimSpace(q.Category),
		OwnerID:       strings.TrimSpace(q.OwnerID),
		ExcludeOwner:  strings.TrimSpace(q.ExcludeOwner),
		AvailableOnly: q.AvailableOnly,
		SortBy:        q.SortBy,
		SortOrder:     q.SortOrder,
		Limit:         q.Limit,
	}
	if v := strings.TrimSpace(q.PriceMin); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entities.BookFilters{}, err
		}
		f.PriceMin = &d
	}
	if v := strings.TrimSpace(q.PriceMax); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entities.BookFilters{}, err
		}
		f.PriceMax = &d
	}
	return f, nil
}
