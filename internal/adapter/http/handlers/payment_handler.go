package handlers

import (
	"errors"
	"log"
	"net/http"

	"greetpage/internal/adapter/http/middleware"
	response "greetpage/internal/adapter/http/dto/response"
	"greetpage/internal/domain/entities"
	"greetpage/internal/usecase"
	"greetpage/internal/usecase/interfaces"
	"greetpage/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the authenticated, client-driven half of the payment
// flow: checkout creation, synchronous capture confirmation and status.

type PaymentHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewPaymentHandler(uc usecase.ICheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary  Start a PRO checkout with the chosen provider
// @Tags     payments
// @Param    provider  path  string  true  "mercadopago or paypal"
// @Success  200  {object}  response.CheckoutIntentResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /payments/{provider}/checkout [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	callerID := middleware.CallerID(c)
	provider := entities.PaymentProvider(c.Param("provider"))
	log.Printf("[payment][handler] checkout start caller_id=%s provider=%s", callerID, provider)

	intent, err := h.usecase.CreateIntent(c.Request.Context(), callerID, provider)
	if err != nil {
		log.Printf("[payment][handler] checkout failed caller_id=%s provider=%s err=%v", callerID, provider, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] checkout success caller_id=%s provider=%s order_id=%s", callerID, provider, intent.ProviderOrderID)
	c.JSON(http.StatusOK, response.FromCheckoutIntent(intent))
}

// ConfirmCapture godoc
// @Summary  Confirm a completed checkout and apply the PRO upgrade
// @Tags     payments
// @Param    provider  path  string  true  "mercadopago or paypal"
// @Param    order_id  path  string  true  "provider order id"
// @Success  200  {object}  response.CaptureResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  403  {object}  pkg.HTTPError
// @Router   /payments/{provider}/capture/{order_id} [post]
func (h *PaymentHandler) ConfirmCapture(c *gin.Context) {
	callerID := middleware.CallerID(c)
	provider := entities.PaymentProvider(c.Param("provider"))
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] capture start caller_id=%s provider=%s order_id=%s", callerID, provider, orderID)

	user, record, err := h.usecase.ConfirmCapture(c.Request.Context(), callerID, provider, orderID)
	if err != nil {
		log.Printf("[payment][handler] capture failed caller_id=%s order_id=%s err=%v", callerID, orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] capture success caller_id=%s order_id=%s payment_id=%s", callerID, orderID, record.PaymentID)
	c.JSON(http.StatusOK, response.CaptureResponse{IsPro: user.IsPro, Payment: response.FromPaymentRecord(record)})
}

// PaymentStatus godoc
// @Summary  Read-only provider status for a payment, with the finality verdict
// @Tags     payments
// @Param    provider    path  string  true  "mercadopago or paypal"
// @Param    payment_id  path  string  true  "provider payment id"
// @Success  200  {object}  response.PaymentStatusResponse
// @Failure  403  {object}  pkg.HTTPError
// @Router   /payments/{provider}/{payment_id}/status [get]
func (h *PaymentHandler) PaymentStatus(c *gin.Context) {
	callerID := middleware.CallerID(c)
	provider := entities.PaymentProvider(c.Param("provider"))
	paymentID := c.Param("payment_id")

	record, final, err := h.usecase.PaymentStatus(c.Request.Context(), callerID, provider, paymentID)
	if err != nil {
		log.Printf("[payment][handler] status failed caller_id=%s payment_id=%s err=%v", callerID, paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentStatusResponse{Payment: response.FromPaymentRecord(record), Final: final})
}

// History godoc
// @Summary  The caller's entitlement record with its payment trail
// @Tags     payments
// @Success  200  {object}  response.EntitlementResponse
// @Router   /payments/me [get]
func (h *PaymentHandler) History(c *gin.Context) {
	callerID := middleware.CallerID(c)

	user, err := h.usecase.History(c.Request.Context(), callerID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUserEntitlement(user))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrUnknownProvider):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlreadyPro):
		return pkg.NewDomainErrorSimple("ALREADY_PRO", "User already has the PRO upgrade", http.StatusConflict)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Payment is not attributed to the caller", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentNotCompleted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_COMPLETED", "Payment has not completed at the provider; finish checkout and retry", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrCaptureConflict):
		return pkg.NewDomainErrorSimple("CAPTURE_CONFLICT", "Order is not in a capturable state", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found at the provider", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrProviderUnavailable):
		return pkg.NewDomainErrorSimple("PROVIDER_UNAVAILABLE", "Payment setup failed, try again later", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
