package models

import (
	"time"
)

// DutyType marks a flight as combat or training duty.
type DutyType string

const (
	DutyCombat   DutyType = "Combat"
	DutyTraining DutyType = "Training"
)

// TimeOfDay marks a flight as flown by day or by night.
type TimeOfDay string

const (
	TimeDay   TimeOfDay = "Day"
	TimeNight TimeOfDay = "Night"
)

// FlightRecord is a single logged flight-training event. Records are
// immutable once written; the only mutations are removing the most
// recent record or clearing the whole log.
type FlightRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   int64  `gorm:"not null;index" json:"user_id"`
	Date     string `gorm:"not null" json:"date"` // YYYY-MM-DD, parsed at aggregation time
	Exercise int    `gorm:"not null" json:"exercise"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`

	FlightKind string    `json:"flight_kind"`
	TimeOfDay  TimeOfDay `json:"time_of_day"`
	DutyType   DutyType  `json:"duty_type"`
}

// Pilot marks that a user's flight log exists, even when it holds no
// records yet. Lets "no log" and "empty log" give different answers.
type Pilot struct {
	UserID    int64     `gorm:"primarykey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
