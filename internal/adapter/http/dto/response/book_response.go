package response

import (
	"time"

	"bookmarket/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BookResponse struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description,omitempty"`
	Price              decimal.Decimal `json:"price"`
	Quantity           int             `json:"quantity"`
	AvailabilityStatus string          `json:"availability_status"`
	CoverImage         string          `json:"cover_image,omitempty"`
	Category           string          `json:"category,omitempty"`
	OwnerID            string          `json:"owner_id"`
	OwnerName          string          `json:"owner_name,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func FromBook(b entities.Book) BookResponse {
	return BookResponse{
		ID:                 b.ID,
		Title:              b.Title,
		Description:        b.Description,
		Price:              b.Price,
		Quantity:           b.Quantity,
		AvailabilityStatus: b.AvailabilityStatus(),
		CoverImage:         b.CoverImage,
		Category:           b.Category,
		OwnerID:            b.OwnerID,
		OwnerName:          b.OwnerName,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func FromBooks(books []entities.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, FromBook(b))
	}
	return out
}
