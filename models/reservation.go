package models

import (
	"fmt"
	"time"
)

// Reservation is one booked window of lab equipment.
type Reservation struct {
	ID        string    `bson:"id" json:"id,omitempty"`              // Server-assigned identifier (UUID)
	Name      string    `bson:"name" json:"name"`                    // Requester name
	Date      string    `bson:"date" json:"date"`                    // "YYYY-MM-DD"
	StartTime string    `bson:"startTime" json:"startTime"`          // "HH:MM", local time
	EndTime   string    `bson:"endTime" json:"endTime"`              // "HH:MM", local time
	Equipment string    `bson:"equipment" json:"equipment"`          // Comma-joined names or free-text override
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"` // Set by the store on insert
}

// Line renders the reservation as it appears in the reserved-slot list.
func (r Reservation) Line() string {
	return fmt.Sprintf("%s reserved %s on %s from %s to %s", r.Name, r.Equipment, r.Date, r.StartTime, r.EndTime)
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Widget-level bounds of the date picker.
const (
	MinReservationDate = "2024-01-01"
	MaxReservationDate = "2025-12-31"
)

// DateInRange reports whether date lies within the picker bounds. Both bounds are
// inclusive and ISO dates compare correctly as strings.
func DateInRange(date string) bool {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return false
	}
	return date >= MinReservationDate && date <= MaxReservationDate
}
