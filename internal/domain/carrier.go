package domain

import "time"

// Carrier is a transport operator. Rating and votes are kept as text,
// matching the legacy schema.
type Carrier struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Rating    string    `json:"rating" gorm:"size:255;not null;default:0"`
	Votes     string    `json:"votes" gorm:"size:255;not null;default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Carrier) TableName() string { return "carriers" }
