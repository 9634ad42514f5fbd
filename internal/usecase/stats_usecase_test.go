package usecase

import (
	"context"
	"errors"
	"testing"

	"bookmarket/internal/domain/entities"
	mock_interfaces "bookmarket/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func ledgerFixture() []entities.BookPurchase {
	completed := pendingPurchase("purchase-1")
	completed.Status = entities.PurchaseStatusCompleted
	completed.Quantity = 2
	completed.Price = decimal.RequireFromString("50.00")

	pending := pendingPurchase("purchase-2")
	pending.Quantity = 1
	pending.Price = decimal.RequireFromString("30.00")

	cancelled := pendingPurchase("purchase-3")
	cancelled.Status = entities.PurchaseStatusCancelled
	cancelled.BuyerID = "buyer-2"
	cancelled.Quantity = 3
	cancelled.Price = decimal.RequireFromString("10.00")

	return []entities.BookPurchase{completed, pending, cancelled}
}

func TestBuyerStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	uc := NewStatsUseCase(purchases)

	purchases.EXPECT().ListByBuyer(gomock.Any(), "buyer-1").Return(ledgerFixture(), nil)

	stats, err := uc.BuyerStatistics(context.Background(), "buyer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPurchases != 3 || stats.CompletedPurchases != 1 || stats.PendingPurchases != 1 {
		t.Fatalf("unexpected purchase counts: %+v", stats)
	}
	if stats.TotalBooks != 6 {
		t.Fatalf("unexpected total books: %d", stats.TotalBooks)
	}
	if !stats.TotalSpent.Equal(decimal.RequireFromString("160.00")) {
		t.Fatalf("unexpected total spent: %s", stats.TotalSpent)
	}
}

func TestBuyerStatisticsEmptyScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	uc := NewStatsUseCase(purchases)

	purchases.EXPECT().ListByBuyer(gomock.Any(), "buyer-9").Return(nil, nil)

	stats, err := uc.BuyerStatistics(context.Background(), "buyer-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPurchases != 0 || !stats.TotalSpent.Equal(decimal.Zero) {
		t.Fatalf("expected zeroed aggregates, got %+v", stats)
	}
}

func TestBuyerStatisticsRequiresBuyerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	uc := NewStatsUseCase(purchases)

	_, err := uc.BuyerStatistics(context.Background(), "  ")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSellerStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	uc := NewStatsUseCase(purchases)

	purchases.EXPECT().ListBySeller(gomock.Any(), "seller-1").Return(ledgerFixture(), nil)

	stats, err := uc.SellerStatistics(context.Background(), "seller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalSales != 3 || stats.CompletedSales != 1 || stats.PendingSales != 1 {
		t.Fatalf("unexpected sale counts: %+v", stats)
	}
	if stats.TotalBooksSold != 6 {
		t.Fatalf("unexpected books sold: %d", stats.TotalBooksSold)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("160.00")) {
		t.Fatalf("unexpected revenue: %s", stats.TotalRevenue)
	}
}

func TestPlatformStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	uc := NewStatsUseCase(purchases)

	purchases.EXPECT().ListWithFilters(gomock.Any(), entities.PurchaseFilters{}).Return(ledgerFixture(), nil)

	stats, err := uc.PlatformStatistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPurchases != 3 || stats.CompletedPurchases != 1 || stats.PendingPurchases != 1 || stats.CancelledPurchases != 1 {
		t.Fatalf("unexpected purchase counts: %+v", stats)
	}
	if stats.TotalBuyers != 2 {
		t.Fatalf("expected distinct buyer count 2, got %d", stats.TotalBuyers)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("160.00")) {
		t.Fatalf("unexpected revenue: %s", stats.TotalRevenue)
	}
}
