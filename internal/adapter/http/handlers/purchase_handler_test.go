package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookmarket/internal/adapter/http/handlers/mocks"
	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func samplePurchase(status entities.PurchaseStatus) entities.BookPurchase {
	now := time.Now().UTC()
	return entities.BookPurchase{
		ID:         "purchase-1",
		BookID:     "book-1",
		BookTitle:  "Clean Architecture",
		SellerID:   "seller-1",
		BuyerID:    "buyer-1",
		BuyerName:  "Maria Souza",
		BuyerEmail: "maria@example.com",
		Quantity:   2,
		Price:      decimal.RequireFromString("100.00"),
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPurchaseHandler_CreatePurchase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases", h.CreatePurchase)

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases", h.CreatePurchase)

		uc.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
			Return(entities.BookPurchase{}, &usecase.StockError{BookID: "book-1", Available: 1, Requested: 2})

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString(`{"book_id":"book-1","buyer_id":"buyer-1","buyer_name":"Maria","buyer_email":"maria@example.com","quantity":2,"price":"100.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INSUFFICIENT_STOCK" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("price mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases", h.CreatePurchase)

		uc.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
			Return(entities.BookPurchase{}, &usecase.PriceMismatchError{
				Current:  decimal.RequireFromString("100.00"),
				Proposed: decimal.RequireFromString("80.00"),
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString(`{"book_id":"book-1","buyer_id":"buyer-1","buyer_name":"Maria","buyer_email":"maria@example.com","quantity":2,"price":"80.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases", h.CreatePurchase)

		uc.EXPECT().CreatePurchase(gomock.Any(), gomock.Any()).
			Return(samplePurchase(entities.PurchaseStatusPending), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases", bytes.NewBufferString(`{"book_id":"book-1","buyer_id":"buyer-1","buyer_name":"Maria Souza","buyer_email":"maria@example.com","quantity":2,"price":"100.00"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["total_price"] != "200" {
			t.Fatalf("unexpected total price: %v", body["total_price"])
		}
	})
}

func TestPurchaseHandler_CompletePurchase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body completes without transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/purchases/:id/complete", h.CompletePurchase)

		uc.EXPECT().CompletePurchase(gomock.Any(), "purchase-1", "").
			Return(samplePurchase(entities.PurchaseStatusCompleted), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchases/purchase-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("body forwards transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/purchases/:id/complete", h.CompletePurchase)

		uc.EXPECT().CompletePurchase(gomock.Any(), "purchase-1", "tx-99").
			Return(samplePurchase(entities.PurchaseStatusCompleted), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchases/purchase-1/complete", bytes.NewBufferString(`{"transaction_id":"tx-99"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/purchases/:id/complete", h.CompletePurchase)

		uc.EXPECT().CompletePurchase(gomock.Any(), "purchase-1", "").
			Return(entities.BookPurchase{}, &usecase.StateError{PurchaseID: "purchase-1", Current: entities.PurchaseStatusCancelled})

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchases/purchase-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.PATCH("/v1/purchases/:id/complete", h.CompletePurchase)

		uc.EXPECT().CompletePurchase(gomock.Any(), "missing", "").
			Return(entities.BookPurchase{}, usecase.ErrPurchaseNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchases/missing/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPurchaseHandler_PayPurchase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases/:id/pay", h.PayPurchase)

		uc.EXPECT().PayAndComplete(gomock.Any(), "purchase-1").
			Return(entities.BookPurchase{}, usecase.ErrPaymentGatewayUnavailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases/purchase-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases/:id/pay", h.PayPurchase)

		paid := samplePurchase(entities.PurchaseStatusCompleted)
		paid.TransactionID = "mp-123"
		uc.EXPECT().PayAndComplete(gomock.Any(), "purchase-1").Return(paid, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases/purchase-1/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["transaction_id"] != "mp-123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPurchaseHandler_BulkComplete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases/bulk-complete", h.BulkComplete)

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases/bulk-complete", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial failure still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.POST("/v1/purchases/bulk-complete", h.BulkComplete)

		uc.EXPECT().BulkComplete(gomock.Any(), []string{"purchase-1", "purchase-2"}).
			Return(usecase.BulkCompletionResult{
				Completed: []entities.BookPurchase{samplePurchase(entities.PurchaseStatusCompleted)},
				Errors:    map[string]string{"purchase-2": "purchase not found"},
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/purchases/bulk-complete", bytes.NewBufferString(`{"purchase_ids":["purchase-1","purchase-2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if errs, ok := body["errors"].(map[string]any); !ok || errs["purchase-2"] == nil {
			t.Fatalf("expected per-id errors, got body: %s", w.Body.String())
		}
	})
}

func TestPurchaseHandler_ListPurchasesByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.GET("/v1/purchases/status/:status", h.ListPurchasesByStatus)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.PurchaseStatus("shipped")).
			Return(nil, usecase.ErrValidation)

		req := httptest.NewRequest(http.MethodGet, "/v1/purchases/status/shipped", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPurchaseUseCase(ctrl)
		h := NewPurchaseHandler(uc)

		r := gin.New()
		r.GET("/v1/purchases/status/:status", h.ListPurchasesByStatus)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.PurchaseStatusPending).
			Return([]entities.BookPurchase{samplePurchase(entities.PurchaseStatusPending)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/purchases/status/pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPurchaseHandler_ListRecentPurchases(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPurchaseUseCase(ctrl)
	h := NewPurchaseHandler(uc)

	r := gin.New()
	r.GET("/v1/purchases/recent", h.ListRecentPurchases)

	uc.EXPECT().ListRecent(gomock.Any(), 5).
		Return([]entities.BookPurchase{samplePurchase(entities.PurchaseStatusCompleted)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/purchases/recent?limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
