package domain

import "time"

// Payment is a raw card-detail submission. order_id carries no foreign key
// constraint: a payment pointing at a nonexistent order is accepted.
type Payment struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64    `json:"order_id" gorm:"not null;index"`
	Pan       string    `json:"pan" gorm:"size:50;not null"`
	Expiry    string    `json:"expiry" gorm:"size:50;not null"`
	Cvc       string    `json:"cvc" gorm:"size:50;not null"`
	Order     *Order    `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Payment) TableName() string { return "payments" }
