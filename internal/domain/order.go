package domain

import "time"

// Order is a passenger's booking request against one flight. Rows are
// append-only: there is no status column, booking progress is inferred
// from which order/payment rows exist.
type Order struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	FlightID       uint64    `json:"flight_id" gorm:"not null;index"`
	Firstname      string    `json:"firstname" gorm:"size:50;not null"`
	Lastname       string    `json:"lastname" gorm:"size:50;not null"`
	Surname        string    `json:"surname" gorm:"size:50;not null"`
	Email          string    `json:"email" gorm:"size:50;not null"`
	Phone          string    `json:"phone" gorm:"size:50;not null"`
	Gender         string    `json:"gender" gorm:"size:50;not null"`
	DateOfBirth    string    `json:"date_of_birth" gorm:"size:50;not null"`
	Document       string    `json:"document" gorm:"size:50;not null"`
	DocumentNumber string    `json:"document_number" gorm:"size:50;not null"`
	Nationality    string    `json:"nationality" gorm:"size:50;not null"`
	Date           string    `json:"date" gorm:"size:50;not null"`
	PaymentMethod  string    `json:"payment_method" gorm:"size:50;not null"`
	Flight         *Flight   `json:"flight,omitempty" gorm:"foreignKey:FlightID"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }
