package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field bounds enforced on catalog writes.
const (
	BookTitleMaxLen       = 255
	BookDescriptionMaxLen = 1000
	BookQuantityMax       = 999
)

// MaxBookPrice is the catalog price ceiling (9999.99).
var MaxBookPrice = decimal.RequireFromString("9999.99")

// LowStockThreshold marks listings that are about to sell out.
const LowStockThreshold = 3

// Book is a sellable listing persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//
// Monetary representation:
//   - Price is an exact decimal; it is stored as a string attribute and must
//     never round-trip through float64.
type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CoverImage  string          `json:"cover_image,omitempty"`
	Category    string          `json:"category,omitempty"`
	OwnerID     string          `json:"owner_id"`
	OwnerName   string          `json:"owner_name"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsAvailable reports whether at least one unit is in stock.
func (b Book) IsAvailable() bool {
	return b.Quantity > 0
}

// AvailabilityStatus classifies the listing for storefront display.
func (b Book) AvailabilityStatus() string {
	switch {
	case b.Quantity == 0:
		return "unavailable"
	case b.Quantity <= LowStockThreshold:
		return "low"
	default:
		return "available"
	}
}

// BookFilters enumerates the recognized catalog query filters. Zero values
// mean "not set"; filters combine conjunctively.
type BookFilters struct {
	Search        string
	Category      string
	OwnerID       string
	ExcludeOwner  string
	AvailableOnly bool
	PriceMin      *decimal.Decimal
	PriceMax      *decimal.Decimal
	SortBy        string // title | price | quantity | created_at (default)
	SortOrder     string // ASC | DESC (default)
	Limit         int
}
