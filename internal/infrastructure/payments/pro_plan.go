package payments

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"greetpage/internal/domain/entities"
)

const defaultProPrice = 4.99

// ProPlan is the single fixed-price product this service sells: the perpetual
// PRO upgrade. Each provider charges it in its own configured currency.
type ProPlan struct {
	Title       string
	Description string
	Price       float64
	Currency    string
	ReturnURL   string
	CancelURL   string
	NotifyURL   string
}

func proPlanFromEnv(currencyKey, defaultCurrency string) ProPlan {
	price := defaultProPrice
	if v := strings.TrimSpace(os.Getenv("PRO_PRICE")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			price = parsed
		}
	}
	return ProPlan{
		Title:       "Greeting Page PRO",
		Description: "Perpetual PRO upgrade for your greeting page",
		Price:       price,
		Currency:    getenvDefault(currencyKey, defaultCurrency),
		ReturnURL:   getenvDefault("CHECKOUT_RETURN_URL", "https://greetpage.app/checkout/return"),
		CancelURL:   getenvDefault("CHECKOUT_CANCEL_URL", "https://greetpage.app/checkout/cancel"),
		NotifyURL:   strings.TrimSpace(os.Getenv("WEBHOOK_BASE_URL")),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// Mock mode synthesizes order ids that embed the user attribution, so the
// capture and status paths work end to end without a real gateway.

const mockOrderPrefix = "sim-"

func mockOrderID(userID string) string {
	return fmt.Sprintf("%s%s-%d", mockOrderPrefix, userID, time.Now().UTC().UnixNano())
}

func mockUserIDFromOrder(orderID string) string {
	if !strings.HasPrefix(orderID, mockOrderPrefix) {
		return ""
	}
	rest := strings.TrimPrefix(orderID, mockOrderPrefix)
	if i := strings.LastIndex(rest, "-"); i > 0 {
		return rest[:i]
	}
	return rest
}

func mockRecord(orderID string, plan ProPlan, status, detail string) entities.PaymentRecord {
	return entities.PaymentRecord{
		PaymentID:       orderID,
		ProviderOrderID: orderID,
		Provider:        entities.ProviderSimulation,
		Amount:          plan.Price,
		Currency:        plan.Currency,
		Status:          status,
		StatusDetail:    detail,
		PaymentMethod:   "simulation",
		PaymentType:     "simulation",
		UserID:          mockUserIDFromOrder(orderID),
		Date:            time.Now().UTC(),
	}
}
