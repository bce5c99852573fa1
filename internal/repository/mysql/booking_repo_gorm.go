package mysql

import (
	"errors"
	"log"

	"booking-service/internal/domain"
	"booking-service/internal/repository"

	"gorm.io/gorm"
)

type bookingRepo struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) FindFlightByID(id uint64) (*domain.Flight, error) {
	var f domain.Flight
	if err := r.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindFlightByID error: %v", err)
		return nil, err
	}
	return &f, nil
}

func (r *bookingRepo) CreateOrder(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("CreateOrder error: %v", result.Error)
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *bookingRepo) FindOrderByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Flight").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindOrderByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *bookingRepo) CreatePayment(payment *domain.Payment) error {
	result := r.db.Create(payment)
	if result.Error != nil {
		log.Printf("CreatePayment error: %v", result.Error)
		return result.Error
	}
	if payment.ID == 0 {
		return errors.New("failed to assign payment ID")
	}
	return nil
}

func (r *bookingRepo) FindPaymentByID(id uint64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.Preload("Order").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindPaymentByID error: %v", err)
		return nil, err
	}
	return &p, nil
}
