package domain

import "time"

// Flight is one scheduled route instance. Times, duration and price are
// free-text columns in the legacy schema and stay that way here.
type Flight struct {
	ID              uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	CarriersID      uint64    `json:"carriers_id" gorm:"column:carriers_id;not null;index"`
	From            string    `json:"from" gorm:"column:from;size:255;not null"`
	FromFullAddress string    `json:"from_full_address" gorm:"size:255;not null"`
	To              string    `json:"to" gorm:"column:to;size:255;not null"`
	ToFullAddress   string    `json:"to_full_address" gorm:"size:255;not null"`
	TimeDeparture   string    `json:"time_departure" gorm:"size:255;not null"`
	TimeArrival     string    `json:"time_arrival" gorm:"size:255;not null"`
	Duration        string    `json:"duration" gorm:"size:255;not null"`
	FlightFrequency string    `json:"flight_frequency" gorm:"size:255;not null"`
	Price           string    `json:"price" gorm:"size:255;not null"`
	Bus             string    `json:"bus" gorm:"size:255;not null"`
	BusPhoto        []byte    `json:"bus_photo" gorm:"type:blob;not null"`
	Carrier         *Carrier  `json:"carrier,omitempty" gorm:"foreignKey:CarriersID"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Flight) TableName() string { return "flights" }
