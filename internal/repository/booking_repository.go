package repository

import (
	"booking-service/internal/domain"
)

// BookingRepository covers the order/payment capture chain. Writes are
// single-row inserts, never transactional: the workflow issues independent
// writes and accepts whatever the storage already committed on failure.
type BookingRepository interface {
	FindFlightByID(id uint64) (*domain.Flight, error)
	CreateOrder(order *domain.Order) error
	FindOrderByID(id uint64) (*domain.Order, error)
	// CreatePayment does not check that order_id references an existing
	// order; dangling payments are accepted.
	CreatePayment(payment *domain.Payment) error
	FindPaymentByID(id uint64) (*domain.Payment, error)
}
