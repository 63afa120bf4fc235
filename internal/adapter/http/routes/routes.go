package routes

import (
	"log"
	"os"
	"strconv"

	_ "greetpage/docs" // This will be auto-generated
	"greetpage/internal/adapter/http/handlers"
	repository2 "greetpage/internal/adapter/persistence/repository"
	"greetpage/internal/domain/entities"
	"greetpage/internal/infrastructure/database"
	"greetpage/internal/infrastructure/payments"
	"greetpage/internal/usecase"
	"greetpage/internal/usecase/interfaces"

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

	userRepo := repository2.NewUserEntitlementDynamoRepository(ddb)

	providers := map[entities.PaymentProvider]interfaces.IPaymentProvider{}

	mpProvider, err := payments.NewMercadoPagoProvider(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago provider not configured: %v", err)
	} else {
		providers[entities.ProviderMercadoPago] = mpProvider
	}

	var paypalVerifier interfaces.IWebhookVerifier
	var paypalNormalizer interfaces.ICaptureEventNormalizer
	paypalProvider, err := payments.NewPayPalProvider(os.Getenv("PAYPAL_CLIENT_ID"), os.Getenv("PAYPAL_CLIENT_SECRET"))
	if err != nil {
		log.Printf("PayPal provider not configured: %v", err)
	} else {
		providers[entities.ProviderPayPal] = paypalProvider
		paypalVerifier = paypalProvider
		paypalNormalizer = paypalProvider
	}

	reconcileUseCase := usecase.NewReconcileUseCase(userRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(userRepo, providers, reconcileUseCase)
	webhookUseCase := usecase.NewWebhookUseCase(providers, reconcileUseCase)

	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, paypalVerifier, paypalNormalizer)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
