package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Routing keys for the booking exchange.
const (
	EventOrderCreated    = "order.created"
	EventPaymentCaptured = "payment.captured"
)

type OrderCreatedEvent struct {
	OrderID   uint64          `json:"orderId"`
	FlightID  uint64          `json:"flightId"`
	Email     string          `json:"email"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

type PaymentCapturedEvent struct {
	PaymentID uint64    `json:"paymentId"`
	OrderID   uint64    `json:"orderId"`
	CreatedAt time.Time `json:"createdAt"`
}
