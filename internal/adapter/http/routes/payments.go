package routes

import (
	"greetpage/internal/adapter/http/handlers"
	"greetpage/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	payments.Use(middleware.CallerIdentity())
	{
		payments.GET("/me", paymentHandler.History)
		payments.POST("/:provider/checkout", paymentHandler.CreateCheckout)
		payments.POST("/:provider/capture/:order_id", paymentHandler.ConfirmCapture)
		payments.GET("/:provider/:payment_id/status", paymentHandler.PaymentStatus)
	}

	// Unauthenticated: providers authenticate via signature verification,
	// and the receiver always acks before processing.
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.MercadoPago)
		webhooks.POST("/paypal", webhookHandler.PayPal)
	}
}
