package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"bookmarket/internal/domain/entities"
	mock_interfaces "bookmarket/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pendingPurchase(id string) entities.BookPurchase {
	now := time.Now().UTC()
	return entities.BookPurchase{
		ID:         id,
		BookID:     "book-1",
		BookTitle:  "Clean Architecture",
		SellerID:   "seller-1",
		BuyerID:    "buyer-1",
		BuyerName:  "Maria Souza",
		BuyerEmail: "maria@example.com",
		Quantity:   2,
		Price:      decimal.RequireFromString("100.00"),
		Status:     entities.PurchaseStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func catalogBook(quantity int) entities.Book {
	now := time.Now().UTC()
	return entities.Book{
		ID:        "book-1",
		Title:     "Clean Architecture",
		Price:     decimal.RequireFromString("100.00"),
		Quantity:  quantity,
		OwnerID:   "seller-1",
		OwnerName: "João Lima",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func validPurchaseCommand() CreatePurchaseCommand {
	return CreatePurchaseCommand{
		BookID:     "book-1",
		BuyerID:    "buyer-1",
		BuyerName:  "Maria Souza",
		BuyerEmail: "maria@example.com",
		Quantity:   2,
		Price:      decimal.RequireFromString("100.00"),
	}
}

func TestCreatePurchaseValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	cases := []struct {
		name   string
		mutate func(*CreatePurchaseCommand)
	}{
		{"missing book id", func(c *CreatePurchaseCommand) { c.BookID = " " }},
		{"missing buyer id", func(c *CreatePurchaseCommand) { c.BuyerID = "" }},
		{"missing buyer name", func(c *CreatePurchaseCommand) { c.BuyerName = "" }},
		{"missing buyer email", func(c *CreatePurchaseCommand) { c.BuyerEmail = "" }},
		{"zero quantity", func(c *CreatePurchaseCommand) { c.Quantity = 0 }},
		{"negative quantity", func(c *CreatePurchaseCommand) { c.Quantity = -1 }},
		{"zero price", func(c *CreatePurchaseCommand) { c.Price = decimal.Zero }},
		{"non-pending initial status", func(c *CreatePurchaseCommand) { c.Status = "completed" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validPurchaseCommand()
			tc.mutate(&cmd)

			_, err := uc.CreatePurchase(context.Background(), cmd)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreatePurchaseBookNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	books.EXPECT().GetByID(gomock.Any(), "book-1").Return(entities.Book{}, nil)

	_, err := uc.CreatePurchase(context.Background(), validPurchaseCommand())
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestCreatePurchasePriceTolerance(t *testing.T) {
	cases := []struct {
		name     string
		proposed string
		wantErr  bool
	}{
		{"exact price", "100.00", false},
		{"at tolerance above", "101.00", false},
		{"at tolerance below", "99.00", false},
		{"just over tolerance", "101.01", true},
		{"just under tolerance", "98.99", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
			books := mock_interfaces.NewMockIBookRepository(ctrl)
			uc := NewPurchaseUseCase(repo, books, nil, nil)

			books.EXPECT().GetByID(gomock.Any(), "book-1").Return(catalogBook(10), nil)
			if !tc.wantErr {
				books.EXPECT().DecreaseQuantity(gomock.Any(), "book-1", 2).Return(catalogBook(8), nil)
				repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BookPurchase{})).
					DoAndReturn(func(_ context.Context, p entities.BookPurchase) (entities.BookPurchase, error) {
						return p, nil
					})
			}

			cmd := validPurchaseCommand()
			cmd.Price = decimal.RequireFromString(tc.proposed)

			_, err := uc.CreatePurchase(context.Background(), cmd)
			if tc.wantErr {
				if !errors.Is(err, ErrPriceMismatch) {
					t.Fatalf("expected ErrPriceMismatch, got %v", err)
				}
				var pmErr *PriceMismatchError
				if !errors.As(err, &pmErr) {
					t.Fatalf("expected *PriceMismatchError, got %T", err)
				}
				if !pmErr.Current.Equal(decimal.RequireFromString("100.00")) {
					t.Fatalf("unexpected current price in error: %s", pmErr.Current)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreatePurchaseInsufficientStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	books.EXPECT().GetByID(gomock.Any(), "book-1").Return(catalogBook(1), nil)
	books.EXPECT().DecreaseQuantity(gomock.Any(), "book-1", 2).Return(entities.Book{}, nil)

	_, err := uc.CreatePurchase(context.Background(), validPurchaseCommand())
	if !errors.Is(err, ErrBookNotAvailable) {
		t.Fatalf("expected ErrBookNotAvailable, got %v", err)
	}

	var stockErr *StockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected *StockError, got %T", err)
	}
	if stockErr.Available != 1 || stockErr.Requested != 2 {
		t.Fatalf("unexpected stock error detail: %+v", stockErr)
	}
}

func TestCreatePurchaseDuplicateTransactionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	existing := pendingPurchase("purchase-1")
	existing.TransactionID = "tx-1"

	// No DecreaseQuantity expectation: a resubmission must not touch stock.
	repo.EXPECT().GetByTransactionID(gomock.Any(), "tx-1").Return(existing, nil)

	cmd := validPurchaseCommand()
	cmd.TransactionID = "tx-1"

	got, err := uc.CreatePurchase(context.Background(), cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "purchase-1" {
		t.Fatalf("expected existing purchase returned, got %+v", got)
	}
}

func TestCreatePurchaseCompensatesStockOnInsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	insertErr := errors.New("conditional check failed")

	books.EXPECT().GetByID(gomock.Any(), "book-1").Return(catalogBook(10), nil)
	books.EXPECT().DecreaseQuantity(gomock.Any(), "book-1", 2).Return(catalogBook(8), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BookPurchase{}, insertErr)
	books.EXPECT().IncreaseQuantity(gomock.Any(), "book-1", 2).Return(catalogBook(10), nil)

	_, err := uc.CreatePurchase(context.Background(), validPurchaseCommand())
	if !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
}

func TestCreatePurchaseSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	notifier := mock_interfaces.NewMockIPurchaseNotifier(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, notifier)

	books.EXPECT().GetByID(gomock.Any(), "book-1").Return(catalogBook(10), nil)
	books.EXPECT().DecreaseQuantity(gomock.Any(), "book-1", 2).Return(catalogBook(8), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BookPurchase{})).
		DoAndReturn(func(_ context.Context, p entities.BookPurchase) (entities.BookPurchase, error) {
			if p.ID == "" {
				t.Fatal("expected generated purchase id")
			}
			if p.Status != entities.PurchaseStatusPending {
				t.Fatalf("expected pending status, got %s", p.Status)
			}
			if p.SellerID != "seller-1" || p.BookTitle != "Clean Architecture" {
				t.Fatalf("expected denormalized seller fields, got %+v", p)
			}
			return p, nil
		})
	notifier.EXPECT().PurchaseCreated(gomock.Any(), gomock.Any()).Return(nil)

	created, err := uc.CreatePurchase(context.Background(), validPurchaseCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.TotalPrice().Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("unexpected total price: %s", created.TotalPrice())
	}
}

func TestCreatePurchaseNotifierFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	notifier := mock_interfaces.NewMockIPurchaseNotifier(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, notifier)

	books.EXPECT().GetByID(gomock.Any(), "book-1").Return(catalogBook(10), nil)
	books.EXPECT().DecreaseQuantity(gomock.Any(), "book-1", 2).Return(catalogBook(8), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entities.BookPurchase) (entities.BookPurchase, error) {
			return p, nil
		})
	notifier.EXPECT().PurchaseCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	if _, err := uc.CreatePurchase(context.Background(), validPurchaseCommand()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCompletePurchase(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		notifier := mock_interfaces.NewMockIPurchaseNotifier(ctrl)
		uc := NewPurchaseUseCase(repo, books, nil, notifier)

		completed := pendingPurchase("purchase-1")
		completed.Status = entities.PurchaseStatusCompleted
		completedAt := time.Now().UTC()
		completed.CompletedAt = &completedAt

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "purchase-1", entities.PurchaseStatusCompleted, "tx-99", gomock.Any()).
			Return(completed, nil)
		notifier.EXPECT().PurchaseCompleted(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.CompletePurchase(context.Background(), "purchase-1", "tx-99")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PurchaseStatusCompleted {
			t.Fatalf("expected completed status, got %s", got.Status)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		uc := NewPurchaseUseCase(repo, books, nil, nil)

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "purchase-1", entities.PurchaseStatusCompleted, "", gomock.Any()).
			Return(entities.BookPurchase{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(entities.BookPurchase{}, nil)

		_, err := uc.CompletePurchase(context.Background(), "purchase-1", "")
		if !errors.Is(err, ErrPurchaseNotFound) {
			t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
		}
	})

	t.Run("already terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		uc := NewPurchaseUseCase(repo, books, nil, nil)

		cancelled := pendingPurchase("purchase-1")
		cancelled.Status = entities.PurchaseStatusCancelled

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "purchase-1", entities.PurchaseStatusCompleted, "", gomock.Any()).
			Return(entities.BookPurchase{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(cancelled, nil)

		_, err := uc.CompletePurchase(context.Background(), "purchase-1", "")
		if !errors.Is(err, ErrPurchaseNotPending) {
			t.Fatalf("expected ErrPurchaseNotPending, got %v", err)
		}

		var stateErr *StateError
		if !errors.As(err, &stateErr) {
			t.Fatalf("expected *StateError, got %T", err)
		}
		if stateErr.Current != entities.PurchaseStatusCancelled {
			t.Fatalf("unexpected current status in error: %s", stateErr.Current)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		uc := NewPurchaseUseCase(repo, books, nil, nil)

		_, err := uc.CompletePurchase(context.Background(), "  ", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestCancelPurchase(t *testing.T) {
	t.Run("success without restock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		notifier := mock_interfaces.NewMockIPurchaseNotifier(ctrl)
		uc := NewPurchaseUseCase(repo, books, nil, notifier)

		cancelled := pendingPurchase("purchase-1")
		cancelled.Status = entities.PurchaseStatusCancelled

		// No IncreaseQuantity expectation: cancellation must not touch stock.
		repo.EXPECT().
			UpdateStatus(gomock.Any(), "purchase-1", entities.PurchaseStatusCancelled, "", nil).
			Return(cancelled, nil)
		notifier.EXPECT().PurchaseCancelled(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.CancelPurchase(context.Background(), "purchase-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PurchaseStatusCancelled {
			t.Fatalf("expected cancelled status, got %s", got.Status)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		uc := NewPurchaseUseCase(repo, books, nil, nil)

		completed := pendingPurchase("purchase-1")
		completed.Status = entities.PurchaseStatusCompleted

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "purchase-1", entities.PurchaseStatusCancelled, "", nil).
			Return(entities.BookPurchase{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(completed, nil)

		_, err := uc.CancelPurchase(context.Background(), "purchase-1")
		if !errors.Is(err, ErrPurchaseNotPending) {
			t.Fatalf("expected ErrPurchaseNotPending, got %v", err)
		}
	})
}

func TestPayAndComplete(t *testing.T) {
	t.Run("no gateway configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		uc := NewPurchaseUseCase(repo, books, nil, nil)

		_, err := uc.PayAndComplete(context.Background(), "purchase-1")
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("purchase not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(repo, books, gateway, nil)

		completed := pendingPurchase("purchase-1")
		completed.Status = entities.PurchaseStatusCompleted
		repo.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(completed, nil)

		_, err := uc.PayAndComplete(context.Background(), "purchase-1")
		if !errors.Is(err, ErrPurchaseNotPending) {
			t.Fatalf("expected ErrPurchaseNotPending, got %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(repo, books, gateway, nil)

		gatewayErr := errors.New("provider timeout")
		repo.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(pendingPurchase("purchase-1"), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, gatewayErr)

		_, err := uc.PayAndComplete(context.Background(), "purchase-1")
		if !errors.Is(err, gatewayErr) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("success completes with provider payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		books := mock_interfaces.NewMockIBookRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(repo, books, gateway, nil)

		p := pendingPurchase("purchase-1")
		completed := p
		completed.Status = entities.PurchaseStatusCompleted
		completed.TransactionID = "mp-123"

		repo.EXPECT().GetByID(gomock.Any(), "purchase-1").Return(p, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("invalid payment payload: %v", err)
				}
				if body["transaction_amount"] != 200.0 {
					t.Fatalf("unexpected transaction amount: %v", body["transaction_amount"])
				}
				if body["external_reference"] != "purchase-1" {
					t.Fatalf("unexpected external reference: %v", body["external_reference"])
				}
				return "mp-123", "approved", nil, nil
			})
		repo.EXPECT().
			UpdateStatus(gomock.Any(), "purchase-1", entities.PurchaseStatusCompleted, "mp-123", gomock.Any()).
			Return(completed, nil)

		got, err := uc.PayAndComplete(context.Background(), "purchase-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TransactionID != "mp-123" {
			t.Fatalf("expected provider transaction id, got %q", got.TransactionID)
		}
	})
}

func TestBulkCompletePartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	ok := pendingPurchase("purchase-1")
	ok.Status = entities.PurchaseStatusCompleted

	cancelled := pendingPurchase("purchase-2")
	cancelled.Status = entities.PurchaseStatusCancelled

	repo.EXPECT().
		UpdateStatus(gomock.Any(), "purchase-1", entities.PurchaseStatusCompleted, "", gomock.Any()).
		Return(ok, nil)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), "purchase-2", entities.PurchaseStatusCompleted, "", gomock.Any()).
		Return(entities.BookPurchase{}, nil)
	repo.EXPECT().GetByID(gomock.Any(), "purchase-2").Return(cancelled, nil)

	result := uc.BulkComplete(context.Background(), []string{"purchase-1", "purchase-2"})
	if len(result.Completed) != 1 || result.Completed[0].ID != "purchase-1" {
		t.Fatalf("expected one completed purchase, got %+v", result.Completed)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected one failure, got %+v", result.Errors)
	}
	if _, ok := result.Errors["purchase-2"]; !ok {
		t.Fatalf("expected failure recorded for purchase-2, got %+v", result.Errors)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.BookPurchase{}, nil)

	_, err := uc.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrPurchaseNotFound) {
		t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
	}
}

func TestListByStatusRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	books := mock_interfaces.NewMockIBookRepository(ctrl)
	uc := NewPurchaseUseCase(repo, books, nil, nil)

	_, err := uc.ListByStatus(context.Background(), "shipped")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// stockFakeBookRepository mimics the conditional-update semantics of the
// DynamoDB repository: DecreaseQuantity succeeds only while quantity covers
// the amount, under a lock, so racing purchases contend the way they would
// against the real table.
type stockFakeBookRepository struct {
	mu   sync.Mutex
	book entities.Book
}

func (f *stockFakeBookRepository) GetByID(ctx context.Context, id string) (entities.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.book.ID {
		return entities.Book{}, nil
	}
	return f.book, nil
}

func (f *stockFakeBookRepository) DecreaseQuantity(ctx context.Context, id string, amount int) (entities.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.book.ID || f.book.Quantity < amount {
		return entities.Book{}, nil
	}
	f.book.Quantity -= amount
	return f.book, nil
}

func (f *stockFakeBookRepository) IncreaseQuantity(ctx context.Context, id string, amount int) (entities.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.book.ID {
		return entities.Book{}, nil
	}
	f.book.Quantity += amount
	return f.book, nil
}

func (f *stockFakeBookRepository) Create(ctx context.Context, b entities.Book) (entities.Book, error) {
	return b, nil
}

func (f *stockFakeBookRepository) Update(ctx context.Context, b entities.Book) (entities.Book, error) {
	return b, nil
}

func (f *stockFakeBookRepository) Delete(ctx context.Context, id string) error { return nil }

func (f *stockFakeBookRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Book, error) {
	return nil, nil
}

func (f *stockFakeBookRepository) ListWithFilters(ctx context.Context, fl entities.BookFilters) ([]entities.Book, error) {
	return nil, nil
}

func (f *stockFakeBookRepository) ListCategories(ctx context.Context) ([]string, error) {
	return nil, nil
}

type recordingPurchaseRepository struct {
	mu      sync.Mutex
	created []entities.BookPurchase
}

func (r *recordingPurchaseRepository) Create(ctx context.Context, p entities.BookPurchase) (entities.BookPurchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, p)
	return p, nil
}

func (r *recordingPurchaseRepository) GetByID(ctx context.Context, id string) (entities.BookPurchase, error) {
	return entities.BookPurchase{}, nil
}

func (r *recordingPurchaseRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.BookPurchase, error) {
	return entities.BookPurchase{}, nil
}

func (r *recordingPurchaseRepository) UpdateStatus(ctx context.Context, id string, status entities.PurchaseStatus, transactionID string, completedAt *time.Time) (entities.BookPurchase, error) {
	return entities.BookPurchase{}, nil
}

func (r *recordingPurchaseRepository) ListByBuyer(ctx context.Context, buyerID string) ([]entities.BookPurchase, error) {
	return nil, nil
}

func (r *recordingPurchaseRepository) ListBySeller(ctx context.Context, sellerID string) ([]entities.BookPurchase, error) {
	return nil, nil
}

func (r *recordingPurchaseRepository) ListByBook(ctx context.Context, bookID string) ([]entities.BookPurchase, error) {
	return nil, nil
}

func (r *recordingPurchaseRepository) ListByStatus(ctx context.Context, status entities.PurchaseStatus) ([]entities.BookPurchase, error) {
	return nil, nil
}

func (r *recordingPurchaseRepository) ListWithFilters(ctx context.Context, f entities.PurchaseFilters) ([]entities.BookPurchase, error) {
	return nil, nil
}

func (r *recordingPurchaseRepository) ListRecentCompleted(ctx context.Context, limit int) ([]entities.BookPurchase, error) {
	return nil, nil
}

func TestCreatePurchaseConcurrentLastUnit(t *testing.T) {
	books := &stockFakeBookRepository{book: catalogBook(1)}
	purchases := &recordingPurchaseRepository{}
	uc := NewPurchaseUseCase(purchases, books, nil, nil)

	const buyers = 8
	var wg sync.WaitGroup
	errs := make(chan error, buyers)

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd := validPurchaseCommand()
			cmd.Quantity = 1
			_, err := uc.CreatePurchase(context.Background(), cmd)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, outOfStock int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrBookNotAvailable):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Fatalf("expected exactly one buyer to win the last unit, got %d", succeeded)
	}
	if outOfStock != buyers-1 {
		t.Fatalf("expected %d out-of-stock failures, got %d", buyers-1, outOfStock)
	}
	if len(purchases.created) != 1 {
		t.Fatalf("expected one ledger record, got %d", len(purchases.created))
	}
	if books.book.Quantity != 0 {
		t.Fatalf("expected zero stock after sellout, got %d", books.book.Quantity)
	}
}
