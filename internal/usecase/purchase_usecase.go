package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePurchaseCommand carries the fields for a new purchase order.
type CreatePurchaseCommand struct {
	BookID        string
	BuyerID       string
	BuyerName     string
	BuyerEmail    string
	Quantity      int
	Price         decimal.Decimal
	Status        string
	Notes         string
	PaymentMethod string
	TransactionID string
}

// BulkCompletionResult collects per-identifier outcomes of a best-effort
// batch; one bad record never aborts the rest.
type BulkCompletionResult struct {
	Completed []entities.BookPurchase
	Errors    map[string]string
}

// IPurchaseUseCase is the single authority for state changes that must keep
// the catalog and the purchase ledger consistent.
type IPurchaseUseCase interface {
	CreatePurchase(ctx context.Context, cmd CreatePurchaseCommand) (entities.BookPurchase, error)
	CompletePurchase(ctx context.Context, id, transactionID string) (entities.BookPurchase, error)
	CancelPurchase(ctx context.Context, id string) (entities.BookPurchase, error)
	PayAndComplete(ctx context.Context, id string) (entities.BookPurchase, error)
	BulkComplete(ctx context.Context, ids []string) BulkCompletionResult
	GetByID(ctx context.Context, id string) (entities.BookPurchase, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]entities.BookPurchase, error)
	ListBySeller(ctx context.Context, sellerID string) ([]entities.BookPurchase, error)
	ListByBook(ctx context.Context, bookID string) ([]entities.BookPurchase, error)
	ListByStatus(ctx context.Context, status entities.PurchaseStatus) ([]entities.BookPurchase, error)
	ListWithFilters(ctx context.Context, f entities.PurchaseFilters) ([]entities.BookPurchase, error)
	ListRecent(ctx context.Context, limit int) ([]entities.BookPurchase, error)
}

type PurchaseUseCase struct {
	repo     interfaces.IPurchaseRepository
	books    interfaces.IBookRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.IPurchaseNotifier
}

var _ IPurchaseUseCase = (*PurchaseUseCase)(nil)

func NewPurchaseUseCase(repo interfaces.IPurchaseRepository, books interfaces.IBookRepository, gateway interfaces.IPaymentGateway, notifier interfaces.IPurchaseNotifier) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, books: books, gateway: gateway, notifier: notifier}
}

// CreatePurchase validates the order, takes stock atomically and inserts the
// ledger record in pending state. The stock decrement and the insert form one
// unit: if the insert fails the decrement is compensated.
//
// The conditional decrement is the authoritative stock check. The earlier
// read only shapes the error detail; two orders racing for the last unit are
// decided by whose update satisfies "quantity >= amount".
func (u *PurchaseUseCase) CreatePurchase(ctx context.Context, cmd CreatePurchaseCommand) (entities.BookPurchase, error) {
	cmd.BookID = strings.TrimSpace(cmd.BookID)
	cmd.BuyerID = strings.TrimSpace(cmd.BuyerID)
	cmd.BuyerName = strings.TrimSpace(cmd.BuyerName)
	cmd.BuyerEmail = strings.TrimSpace(cmd.BuyerEmail)

	if err := validatePurchaseCommand(cmd); err != nil {
		return entities.BookPurchase{}, err
	}

	log.Printf("[purchase][usecase] create start book_id=%s buyer_id=%s quantity=%d", cmd.BookID, cmd.BuyerID, cmd.Quantity)

	// A resubmitted order carrying the same transaction id must not take
	// stock twice.
	if cmd.TransactionID != "" {
		existing, err := u.repo.GetByTransactionID(ctx, cmd.TransactionID)
		if err != nil {
			return entities.BookPurchase{}, err
		}
		if existing.ID != "" {
			log.Printf("[purchase][usecase] duplicate submission transaction_id=%s purchase_id=%s", cmd.TransactionID, existing.ID)
			return existing, nil
		}
	}

	book, err := u.books.GetByID(ctx, cmd.BookID)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if book.ID == "" {
		return entities.BookPurchase{}, ErrBookNotFound
	}

	diff := book.Price.Sub(cmd.Price).Abs()
	tolerance := book.Price.Mul(entities.PriceTolerancePercent)
	if diff.GreaterThan(tolerance) {
		log.Printf("[purchase][usecase] price mismatch book_id=%s current=%s proposed=%s", book.ID, book.Price, cmd.Price)
		return entities.BookPurchase{}, &PriceMismatchError{Current: book.Price, Proposed: cmd.Price}
	}

	decremented, err := u.books.DecreaseQuantity(ctx, book.ID, cmd.Quantity)
	if err != nil {
		log.Printf("[purchase][usecase] stock decrement failed book_id=%s err=%v", book.ID, err)
		return entities.BookPurchase{}, err
	}
	if decremented.ID == "" {
		log.Printf("[purchase][usecase] insufficient stock book_id=%s available=%d requested=%d", book.ID, book.Quantity, cmd.Quantity)
		return entities.BookPurchase{}, &StockError{BookID: book.ID, Available: book.Quantity, Requested: cmd.Quantity}
	}

	now := time.Now().UTC()
	p := entities.BookPurchase{
		ID:            uuid.NewString(),
		BookID:        book.ID,
		BookTitle:     book.Title,
		SellerID:      book.OwnerID,
		BuyerID:       cmd.BuyerID,
		BuyerName:     cmd.BuyerName,
		BuyerEmail:    cmd.BuyerEmail,
		Quantity:      cmd.Quantity,
		Price:         cmd.Price,
		Status:        entities.PurchaseStatusPending,
		Notes:         cmd.Notes,
		PaymentMethod: cmd.PaymentMethod,
		TransactionID: cmd.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[purchase][usecase] ledger insert failed book_id=%s err=%v; compensating stock", book.ID, err)
		if _, cErr := u.books.IncreaseQuantity(ctx, book.ID, cmd.Quantity); cErr != nil {
			log.Printf("[purchase][usecase] stock compensation failed book_id=%s amount=%d err=%v", book.ID, cmd.Quantity, cErr)
		}
		return entities.BookPurchase{}, err
	}

	u.notify(ctx, "created", created, func(n interfaces.IPurchaseNotifier) error {
		return n.PurchaseCreated(ctx, created)
	})
	log.Printf("[purchase][usecase] create success purchase_id=%s book_id=%s remaining_stock=%d", created.ID, book.ID, decremented.Quantity)
	return created, nil
}

// CompletePurchase moves a pending purchase to completed, stamping
// completed_at and optionally recording a transaction id.
func (u *PurchaseUseCase) CompletePurchase(ctx context.Context, id, transactionID string) (entities.BookPurchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookPurchase{}, newValidationError("id", "is required")
	}

	now := time.Now().UTC()
	updated, err := u.repo.UpdateStatus(ctx, id, entities.PurchaseStatusCompleted, strings.TrimSpace(transactionID), &now)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if updated.ID == "" {
		return entities.BookPurchase{}, u.transitionFailure(ctx, id)
	}

	u.notify(ctx, "completed", updated, func(n interfaces.IPurchaseNotifier) error {
		return n.PurchaseCompleted(ctx, updated)
	})
	log.Printf("[purchase][usecase] complete success purchase_id=%s", updated.ID)
	return updated, nil
}

// CancelPurchase moves a pending purchase to cancelled. Stock is NOT
// returned to the catalog; restocking is an explicit catalog operation.
func (u *PurchaseUseCase) CancelPurchase(ctx context.Context, id string) (entities.BookPurchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookPurchase{}, newValidationError("id", "is required")
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.PurchaseStatusCancelled, "", nil)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if updated.ID == "" {
		return entities.BookPurchase{}, u.transitionFailure(ctx, id)
	}

	u.notify(ctx, "cancelled", updated, func(n interfaces.IPurchaseNotifier) error {
		return n.PurchaseCancelled(ctx, updated)
	})
	log.Printf("[purchase][usecase] cancel success purchase_id=%s", updated.ID)
	return updated, nil
}

// PayAndComplete charges the agreed total through the payment gateway and
// completes the purchase with the provider payment id as transaction id.
func (u *PurchaseUseCase) PayAndComplete(ctx context.Context, id string) (entities.BookPurchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookPurchase{}, newValidationError("id", "is required")
	}
	if u.gateway == nil {
		return entities.BookPurchase{}, ErrPaymentGatewayUnavailable
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if p.Status != entities.PurchaseStatusPending {
		return entities.BookPurchase{}, &StateError{PurchaseID: p.ID, Current: p.Status}
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": p.TotalPrice().InexactFloat64(),
		"description":        fmt.Sprintf("Purchase of %s", p.BookTitle),
		"external_reference": p.ID,
		"payment_method_id":  p.PaymentMethod,
		"payer":              map[string]any{"email": p.BuyerEmail},
	})
	if err != nil {
		return entities.BookPurchase{}, err
	}

	log.Printf("[purchase][usecase] pay start purchase_id=%s amount=%s", p.ID, p.TotalPrice())
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[purchase][usecase] payment gateway failed purchase_id=%s err=%v", p.ID, err)
		return entities.BookPurchase{}, err
	}
	log.Printf("[purchase][usecase] payment gateway success purchase_id=%s provider_payment_id=%s provider_status=%s", p.ID, providerPaymentID, providerStatus)

	return u.CompletePurchase(ctx, p.ID, providerPaymentID)
}

// BulkComplete applies CompletePurchase to each id independently.
func (u *PurchaseUseCase) BulkComplete(ctx context.Context, ids []string) BulkCompletionResult {
	result := BulkCompletionResult{Errors: map[string]string{}}
	for _, id := range ids {
		p, err := u.CompletePurchase(ctx, id, "")
		if err != nil {
			result.Errors[id] = err.Error()
			continue
		}
		result.Completed = append(result.Completed, p)
	}
	log.Printf("[purchase][usecase] bulk complete done total=%d completed=%d failed=%d", len(ids), len(result.Completed), len(result.Errors))
	return result
}

func (u *PurchaseUseCase) GetByID(ctx context.Context, id string) (entities.BookPurchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookPurchase{}, newValidationError("id", "is required")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if p.ID == "" {
		return entities.BookPurchase{}, ErrPurchaseNotFound
	}
	return p, nil
}

func (u *PurchaseUseCase) ListByBuyer(ctx context.Context, buyerID string) ([]entities.BookPurchase, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return nil, newValidationError("buyer_id", "is required")
	}
	return u.repo.ListByBuyer(ctx, buyerID)
}

func (u *PurchaseUseCase) ListBySeller(ctx context.Context, sellerID string) ([]entities.BookPurchase, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return nil, newValidationError("seller_id", "is required")
	}
	return u.repo.ListBySeller(ctx, sellerID)
}

func (u *PurchaseUseCase) ListByBook(ctx context.Context, bookID string) ([]entities.BookPurchase, error) {
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return nil, newValidationError("book_id", "is required")
	}
	return u.repo.ListByBook(ctx, bookID)
}

func (u *PurchaseUseCase) ListByStatus(ctx context.Context, status entities.PurchaseStatus) ([]entities.BookPurchase, error) {
	if !status.IsValid() {
		return nil, newValidationError("status", "unknown status value")
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *PurchaseUseCase) ListWithFilters(ctx context.Context, f entities.PurchaseFilters) ([]entities.BookPurchase, error) {
	if f.Status != "" && !f.Status.IsValid() {
		return nil, newValidationError("status", "unknown status value")
	}
	return u.repo.ListWithFilters(ctx, f)
}

func (u *PurchaseUseCase) ListRecent(ctx context.Context, limit int) ([]entities.BookPurchase, error) {
	if limit <= 0 {
		limit = 10
	}
	return u.repo.ListRecentCompleted(ctx, limit)
}

// transitionFailure resolves why a conditional status update matched nothing.
func (u *PurchaseUseCase) transitionFailure(ctx context.Context, id string) error {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPurchaseNotFound
	}
	log.Printf("[purchase][usecase] illegal transition purchase_id=%s status=%s", p.ID, p.Status)
	return &StateError{PurchaseID: p.ID, Current: p.Status}
}

func (u *PurchaseUseCase) notify(ctx context.Context, event string, p entities.BookPurchase, publish func(interfaces.IPurchaseNotifier) error) {
	if u.notifier == nil {
		return
	}
	if err := publish(u.notifier); err != nil {
		log.Printf("[purchase][usecase] notify %s failed purchase_id=%s err=%v", event, p.ID, err)
	}
}

func validatePurchaseCommand(cmd CreatePurchaseCommand) error {
	if cmd.BookID == "" {
		return newValidationError("book_id", "is required")
	}
	if cmd.BuyerID == "" {
		return newValidationError("buyer_id", "is required")
	}
	if cmd.BuyerName == "" {
		return newValidationError("buyer_name", "is required")
	}
	if cmd.BuyerEmail == "" {
		return newValidationError("buyer_email", "is required")
	}
	if cmd.Quantity <= 0 {
		return newValidationError("quantity", "must be positive")
	}
	if !cmd.Price.IsPositive() {
		return newValidationError("price", "must be positive")
	}
	// Orders always start pending; any other requested status is rejected.
	if cmd.Status != "" && cmd.Status != string(entities.PurchaseStatusPending) {
		return newValidationError("status", "new purchases must start pending")
	}
	return nil
}
