package response

import (
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase"

	"github.com/shopspring/decimal"
)

type PurchaseResponse struct {
	ID            string          `json:"id"`
	BookID        string          `json:"book_id"`
	BookTitle     string          `json:"book_title,omitempty"`
	SellerID      string          `json:"seller_id"`
	BuyerID       string          `json:"buyer_id"`
	BuyerName     string          `json:"buyer_name,omitempty"`
	BuyerEmail    string          `json:"buyer_email,omitempty"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

func FromPurchase(p entities.BookPurchase) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.ID,
		BookID:        p.BookID,
		BookTitle:     p.BookTitle,
		SellerID:      p.SellerID,
		BuyerID:       p.BuyerID,
		BuyerName:     p.BuyerName,
		BuyerEmail:    p.BuyerEmail,
		Quantity:      p.Quantity,
		Price:         p.Price,
		TotalPrice:    p.TotalPrice(),
		Status:        string(p.Status),
		Notes:         p.Notes,
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		CompletedAt:   p.CompletedAt,
	}
}

func FromPurchases(purchases []entities.BookPurchase) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, FromPurchase(p))
	}
	return out
}

// BulkCompleteResponse reports per-purchase outcomes of a batch completion.
type BulkCompleteResponse struct {
	Completed []PurchaseResponse `json:"completed"`
	Errors    map[string]string  `json:"errors,omitempty"`
}

func FromBulkCompletion(res usecase.BulkCompletionResult) BulkCompleteResponse {
	return BulkCompleteResponse{
		Completed: FromPurchases(res.Completed),
		Errors:    res.Errors,
	}
}
