package usecase

import (
	"context"
	"strings"

	"bookmarket/internal/domain/entities"
	"bookmarket/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IStatsUseCase exposes read-only rollups over the purchase ledger. Scopes
// with no matching records yield zeroed aggregates, never an error.
type IStatsUseCase interface {
	BuyerStatistics(ctx context.Context, buyerID string) (entities.BuyerStatistics, error)
	SellerStatistics(ctx context.Context, sellerID string) (entities.SellerStatistics, error)
	PlatformStatistics(ctx context.Context) (entities.PlatformStatistics, error)
}

type StatsUseCase struct {
	purchases interfaces.IPurchaseRepository
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(purchases interfaces.IPurchaseRepository) *StatsUseCase {
	return &StatsUseCase{purchases: purchases}
}

func (u *StatsUseCase) BuyerStatistics(ctx context.Context, buyerID string) (entities.BuyerStatistics, error) {
	buyerID = strings.TrimSpace(buyerID)
	if buyerID == "" {
		return entities.BuyerStatistics{}, newValidationError("buyer_id", "is required")
	}

	records, err := u.purchases.ListByBuyer(ctx, buyerID)
	if err != nil {
		return entities.BuyerStatistics{}, err
	}

	stats := entities.BuyerStatistics{TotalSpent: decimal.Zero}
	for _, p := range records {
		stats.TotalPurchases++
		stats.TotalBooks += p.Quantity
		stats.TotalSpent = stats.TotalSpent.Add(p.TotalPrice())
		switch p.Status {
		case entities.PurchaseStatusCompleted:
			stats.CompletedPurchases++
		case entities.PurchaseStatusPending:
			stats.PendingPurchases++
		}
	}
	return stats, nil
}

func (u *StatsUseCase) SellerStatistics(ctx context.Context, sellerID string) (entities.SellerStatistics, error) {
	sellerID = strings.TrimSpace(sellerID)
	if sellerID == "" {
		return entities.SellerStatistics{}, newValidationError("seller_id", "is required")
	}

	records, err := u.purchases.ListBySeller(ctx, sellerID)
	if err != nil {
		return entities.SellerStatistics{}, err
	}

	stats := entities.SellerStatistics{TotalRevenue: decimal.Zero}
	for _, p := range records {
		stats.TotalSales++
		stats.TotalBooksSold += p.Quantity
		stats.TotalRevenue = stats.TotalRevenue.Add(p.TotalPrice())
		switch p.Status {
		case entities.PurchaseStatusCompleted:
			stats.CompletedSales++
		case entities.PurchaseStatusPending:
			stats.PendingSales++
		}
	}
	return stats, nil
}

func (u *StatsUseCase) PlatformStatistics(ctx context.Context) (entities.PlatformStatistics, error) {
	records, err := u.purchases.ListWithFilters(ctx, entities.PurchaseFilters{})
	if err != nil {
		return entities.PlatformStatistics{}, err
	}

	stats := entities.PlatformStatistics{TotalRevenue: decimal.Zero}
	buyers := map[string]struct{}{}
	for _, p := range records {
		stats.TotalPurchases++
		stats.TotalBooks += p.Quantity
		stats.TotalRevenue = stats.TotalRevenue.Add(p.TotalPrice())
		buyers[p.BuyerID] = struct{}{}
		switch p.Status {
		case entities.PurchaseStatusCompleted:
			stats.CompletedPurchases++
		case entities.PurchaseStatusPending:
			stats.PendingPurchases++
		case entities.PurchaseStatusCancelled:
			stats.CancelledPurchases++
		}
	}
	stats.TotalBuyers = len(buyers)
	return stats, nil
}
