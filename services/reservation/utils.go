package reservation

import (
	"time"

	"labreserve/models"
)

// validateReservation checks the payload shape only. Time ordering and date bounds are
// left to the client, and so is conflict detection.
func validateReservation(r models.Reservation) error {
	if r.Name == "" {
		return newValidationError("name", "is required")
	}
	if r.Date == "" {
		return newValidationError("date", "is required")
	}
	if _, err := time.Parse(models.DateLayout, r.Date); err != nil {
		return newValidationError("date", "must be formatted as YYYY-MM-DD")
	}
	if r.StartTime == "" {
		return newValidationError("startTime", "is required")
	}
	if !validClock(r.StartTime) {
		return newValidationError("startTime", "must be formatted as HH:MM")
	}
	if r.EndTime == "" {
		return newValidationError("endTime", "is required")
	}
	if !validClock(r.EndTime) {
		return newValidationError("endTime", "must be formatted as HH:MM")
	}
	if r.Equipment == "" {
		return newValidationError("equipment", "is required")
	}
	return nil
}

func validClock(s string) bool {
	if _, err := time.Parse(models.TimeLayout, s); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", s)
	return err == nil
}
