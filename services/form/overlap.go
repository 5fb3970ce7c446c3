package form

import (
	"strings"
	"time"

	"labreserve/models"
)

// time inputs may carry seconds.
var instantLayouts = []string{
	models.DateLayout + "T" + models.TimeLayout,
	models.DateLayout + "T15:04:05",
}

// instant combines a date and a time of day into one local timestamp.
func instant(date, clock string) (time.Time, bool) {
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, date+"T"+clock, time.Local)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect. Ranges that only
// touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// mentionsAny reports whether any selected name occurs in the stored equipment text.
// The stored value is free text, so this is a substring test.
func mentionsAny(equipment string, selected []string) bool {
	for _, name := range selected {
		if strings.Contains(equipment, name) {
			return true
		}
	}
	return false
}

// FindConflict returns the first stored reservation that the draft collides with: same
// date, at least one selected name mentioned in its equipment, and an overlapping time
// range. Unparseable times never collide.
func FindConflict(d models.Draft, existing []models.Reservation) (models.Reservation, bool) {
	start, okStart := instant(d.Date, d.StartTime)
	end, okEnd := instant(d.Date, d.EndTime)

	for _, r := range existing {
		if r.Date != d.Date {
			continue
		}
		if !mentionsAny(r.Equipment, d.Equipment) {
			continue
		}
		exStart, okExStart := instant(r.Date, r.StartTime)
		exEnd, okExEnd := instant(r.Date, r.EndTime)
		if !(okStart && okEnd && okExStart && okExEnd) {
			continue
		}
		if Overlaps(start, end, exStart, exEnd) {
			return r, true
		}
	}
	return models.Reservation{}, false
}
