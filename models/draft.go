package models

import (
	"slices"
	"strings"
)

// Draft is the editable, not yet submitted reservation request.
type Draft struct {
	Name           string   `json:"name"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Equipment      []string `json:"multipleEquipments"`
	OtherEquipment string   `json:"otherEquipment"`
}

// Complete reports whether every required field is filled and something is selected.
func (d Draft) Complete() bool {
	return d.Name != "" && d.Date != "" && d.StartTime != "" && d.EndTime != "" && len(d.Equipment) > 0
}

// EquipmentText is the value stored for the selection. Choosing "Others" uses the
// free text verbatim and drops every other selected name.
func (d Draft) EquipmentText() string {
	if slices.Contains(d.Equipment, OtherEquipment) {
		return d.OtherEquipment
	}
	return strings.Join(d.Equipment, ", ")
}

// Reservation builds the outgoing record for this draft.
func (d Draft) Reservation() Reservation {
	return Reservation{
		Name:      d.Name,
		Date:      d.Date,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Equipment: d.EquipmentText(),
	}
}

// Clone returns a copy that does not share the selection slice.
func (d Draft) Clone() Draft {
	d.Equipment = slices.Clone(d.Equipment)
	return d
}
