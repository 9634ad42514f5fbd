package entities

import "github.com/shopspring/decimal"

// Read-side aggregates over the purchase ledger. Scopes with no matching
// records produce zeroed values, never errors.

type BuyerStatistics struct {
	TotalPurchases     int             `json:"total_purchases"`
	TotalBooks         int             `json:"total_books"`
	TotalSpent         decimal.Decimal `json:"total_spent"`
	CompletedPurchases int             `json:"completed_purchases"`
	PendingPurchases   int             `json:"pending_purchases"`
}

type SellerStatistics struct {
	TotalSales     int             `json:"total_sales"`
	TotalBooksSold int             `json:"total_books_sold"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	CompletedSales int             `json:"completed_sales"`
	PendingSales   int             `json:"pending_sales"`
}

type PlatformStatistics struct {
	TotalPurchases     int             `json:"total_purchases"`
	TotalBooks         int             `json:"total_books"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	CompletedPurchases int             `json:"completed_purchases"`
	PendingPurchases   int             `json:"pending_purchases"`
	CancelledPurchases int             `json:"cancelled_purchases"`
	TotalBuyers        int             `json:"total_buyers"`
}

// OwnerStatistics summarizes a seller's current catalog.
type OwnerStatistics struct {
	TotalListings  int             `json:"total_listings"`
	UnitsInStock   int             `json:"units_in_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
}
