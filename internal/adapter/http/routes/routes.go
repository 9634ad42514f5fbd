package routes

import (
	"log"
	"os"
	"strconv"

	_ "bookmarket/docs" // swagger docs registration
	"bookmarket/internal/adapter/http/handlers"
	"bookmarket/internal/adapter/persistence/repository"
	"bookmarket/internal/infrastructure/database"
	"bookmarket/internal/infrastructure/notifications"
	"bookmarket/internal/infrastructure/payments"
	"bookmarket/internal/usecase"
	"bookmarket/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	bookRepo := repository.NewBookDynamoRepository(ddb)
	purchaseRepo := repository.NewPurchaseDynamoRepository(ddb)
	addressRepo := repository.NewShippingAddressDynamoRepository(ddb)
	categoryRepo := repository.NewCategoryDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var notifier interfaces.IPurchaseNotifier
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitNotifier, err := notifications.NewRabbitPurchaseNotifier(url)
		if err != nil {
			log.Printf("RabbitMQ notifier not configured: %v", err)
		} else {
			notifier = rabbitNotifier
		}
	}

	bookUseCase := usecase.NewBookUseCase(bookRepo, purchaseRepo)
	purchaseUseCase := usecase.NewPurchaseUseCase(purchaseRepo, bookRepo, paymentGateway, notifier)
	statsUseCase := usecase.NewStatsUseCase(purchaseRepo)
	addressUseCase := usecase.NewShippingAddressUseCase(addressRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo)

	bookHandler := handlers.NewBookHandler(bookUseCase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUseCase)
	statsHandler := handlers.NewStatsHandler(statsUseCase)
	addressHandler := handlers.NewShippingAddressHandler(addressUseCase)
	categoryHandler := handlers.NewCategoryHandler(categoryUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, bookHandler, purchaseHandler, statsHandler, addressHandler, categoryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
