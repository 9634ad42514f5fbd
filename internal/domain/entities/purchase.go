package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the purchase-order lifecycle.
//
// Transitions are one-directional: pending may become completed or
// cancelled; both of those are terminal.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

// ValidPurchaseStatuses lists every status accepted on input.
func ValidPurchaseStatuses() []PurchaseStatus {
	return []PurchaseStatus{PurchaseStatusPending, PurchaseStatusCompleted, PurchaseStatusCancelled}
}

// IsValid reports whether s is a known status value.
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusCompleted, PurchaseStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is legal from s.
func (s PurchaseStatus) IsTerminal() bool {
	return s == PurchaseStatusCompleted || s == PurchaseStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s PurchaseStatus) CanTransitionTo(next PurchaseStatus) bool {
	if s != PurchaseStatusPending {
		return false
	}
	return next == PurchaseStatusCompleted || next == PurchaseStatusCancelled
}

// PriceTolerancePercent is the allowed relative deviation between a proposed
// purchase price and the book's current price (1%).
var PriceTolerancePercent = decimal.RequireFromString("0.01")

// BookPurchase is a purchase order against a Book, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//   - GSI2 (seller_id-index): seller_id
//   - GSI3 (book_id-index): book_id
//   - GSI4 (status-index): status
//
// SellerID and BookTitle are denormalized from the book at creation time so
// seller-side queries never need a join. Price is the agreed unit price
// captured at creation; later book price changes do not affect it.
type BookPurchase struct {
	ID            string          `json:"id"`
	BookID        string          `json:"book_id"`
	BookTitle     string          `json:"book_title"`
	SellerID      string          `json:"seller_id"`
	BuyerID       string          `json:"buyer_id"`
	BuyerName     string          `json:"buyer_name"`
	BuyerEmail    string          `json:"buyer_email"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Status        PurchaseStatus  `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// TotalPrice is quantity times the agreed unit price.
func (p BookPurchase) TotalPrice() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// PurchaseFilters enumerates the recognized ledger query filters. Zero
// values mean "not set"; filters combine conjunctively.
type PurchaseFilters struct {
	BuyerID   string
	SellerID  string
	BookID    string
	Status    PurchaseStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	SortBy    string // total_price | quantity | status | created_at (default)
	SortOrder string // ASC | DESC (default)
	Limit     int
}
