package routes

import (
	"bookmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBooks      = "/books"
	PathPurchases  = "/purchases"
	PathOwners     = "/owners"
	PathBuyers     = "/buyers"
	PathSellers    = "/sellers"
	PathUsers      = "/users"
	PathAddresses  = "/addresses"
	PathCategories = "/categories"
	PathStatistics = "/statistics"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	bookHandler *handlers.BookHandler,
	purchaseHandler *handlers.PurchaseHandler,
	statsHandler *handlers.StatsHandler,
	addressHandler *handlers.ShippingAddressHandler,
	categoryHandler *handlers.CategoryHandler,
) {
	books := rg.Group(PathBooks)
	{
		books.POST("", bookHandler.CreateBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/categories", bookHandler.ListBookCategories)
		books.GET("/:id", bookHandler.GetBook)
		books.PATCH("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
		books.POST("/:id/restock", bookHandler.RestockBook)
		books.GET("/:id/purchases", purchaseHandler.ListPurchasesByBook)
	}

	purchases := rg.Group(PathPurchases)
	{
		purchases.POST("", purchaseHandler.CreatePurchase)
		purchases.GET("", purchaseHandler.ListPurchases)
		purchases.GET("/recent", purchaseHandler.ListRecentPurchases)
		purchases.GET("/status/:status", purchaseHandler.ListPurchasesByStatus)
		purchases.POST("/bulk-complete", purchaseHandler.BulkComplete)
		purchases.GET("/:id", purchaseHandler.GetPurchase)
		purchases.PATCH("/:id/complete", purchaseHandler.CompletePurchase)
		purchases.PATCH("/:id/cancel", purchaseHandler.CancelPurchase)
		purchases.POST("/:id/pay", purchaseHandler.PayPurchase)
	}

	owners := rg.Group(PathOwners)
	{
		owners.GET("/:owner_id/books", bookHandler.ListBooksByOwner)
		owners.GET("/:owner_id/statistics", bookHandler.GetOwnerStatistics)
	}

	buyers := rg.Group(PathBuyers)
	{
		buyers.GET("/:buyer_id/purchases", purchaseHandler.ListPurchasesByBuyer)
		buyers.GET("/:buyer_id/statistics", statsHandler.GetBuyerStatistics)
	}

	sellers := rg.Group(PathSellers)
	{
		sellers.GET("/:seller_id/sales", purchaseHandler.ListPurchasesBySeller)
		sellers.GET("/:seller_id/statistics", statsHandler.GetSellerStatistics)
	}

	addresses := rg.Group(PathAddresses)
	{
		addresses.POST("", addressHandler.CreateAddress)
		addresses.GET("/:id", addressHandler.GetAddress)
		addresses.PATCH("/:id", addressHandler.UpdateAddress)
		addresses.DELETE("/:id", addressHandler.DeleteAddress)
		addresses.PATCH("/:id/default", addressHandler.SetDefaultAddress)
	}
	rg.GET(PathUsers+"/:user_id/addresses", addressHandler.ListAddressesByUser)

	categories := rg.Group(PathCategories)
	{
		categories.POST("", categoryHandler.CreateCategory)
		categories.GET("", categoryHandler.ListCategories)
		categories.DELETE("/:id", categoryHandler.DeleteCategory)
	}

	rg.GET(PathStatistics, statsHandler.GetPlatformStatistics)
}
