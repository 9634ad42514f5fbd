package request

import (
	"strings"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest is the payload for placing a purchase order.
//
// Price is the unit price the buyer saw in the storefront; the workflow
// rejects it when it drifts from the current catalog price.
type CreatePurchaseRequest struct {
	BookID        string          `json:"book_id" binding:"required"`
	BuyerID       string          `json:"buyer_id" binding:"required"`
	BuyerName     string          `json:"buyer_name"`
	BuyerEmail    string          `json:"buyer_email"`
	Quantity      int             `json:"quantity" binding:"required"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
}

func (r CreatePurchaseRequest) ToCommand() usecase.CreatePurchaseCommand {
	return usecase.CreatePurchaseCommand{
		BookID:        r.BookID,
		BuyerID:       r.BuyerID,
		BuyerName:     r.BuyerName,
		BuyerEmail:    r.BuyerEmail,
		Quantity:      r.Quantity,
		Price:         r.Price,
		Status:        r.Status,
		Notes:         r.Notes,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
	}
}

// CompletePurchaseRequest optionally attaches the provider transaction ID.
type CompletePurchaseRequest struct {
	TransactionID string `json:"transaction_id"`
}

// BulkCompleteRequest completes a batch of pending purchases.
type BulkCompleteRequest struct {
	PurchaseIDs []string `json:"purchase_ids" binding:"required"`
}

// PurchaseListQuery collects the ledger listing query parameters.
type PurchaseListQuery struct {
	BuyerID   string `form:"buyer_id"`
	SellerID  string `form:"seller_id"`
	BookID    string `form:"book_id"`
	Status    string `form:"status"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	PriceMin  string `form:"price_min"`
	PriceMax  string `form:"price_max"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Limit     int    `form:"limit"`
}

func (q PurchaseListQuery) ToFilters() (entities.PurchaseFilters, error) {
	f := entities.PurchaseFilters{
		BuyerID:   strings.TrimSpace(q.BuyerID),
		SellerID:  strings.TrimSpace(q.SellerID),
		BookID:    strings.TrimSpace(q.BookID),
		Status:    entities.PurchaseStatus(strings.TrimSpace(q.Status)),
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     q.Limit,
	}
	if v := strings.TrimSpace(q.DateFrom); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return entities.PurchaseFilters{}, err
		}
		f.DateFrom = &t
	}
	if v := strings.TrimSpace(q.DateTo); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return entities.PurchaseFilters{}, err
		}
		f.DateTo = &t
	}
	if v := strings.TrimSpace(q.PriceMin); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entities.PurchaseFilters{}, err
		}
		f.PriceMin = &d
	}
	if v := strings.TrimSpace(q.PriceMax); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return entities.PurchaseFilters{}, err
		}
		f.PriceMax = &d
	}
	return f, nil
}
