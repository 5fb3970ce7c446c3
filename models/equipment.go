package models

// OtherEquipment is the catalog entry that replaces the selection with free text.
const OtherEquipment = "Others"

// EquipmentOption is one selectable entry of the equipment list.
type EquipmentOption struct {
	Label string `json:"label"` // Letter shown next to the option
	Value string `json:"value"` // Name stored in reservations
}

// EquipmentCatalog lists the lab instruments in display order.
var EquipmentCatalog = []EquipmentOption{
	{Label: "A", Value: "High-Speed Camera"},
	{Label: "B", Value: "Glove Box"},
	{Label: "C", Value: "Chamber"},
	{Label: "D", Value: "1st Power Supply"},
	{Label: "E", Value: "2nd Power Supply"},
	{Label: "F", Value: "Compressing Machine"},
	{Label: "G", Value: OtherEquipment},
}

// LookupEquipment resolves either a catalog value or its letter label.
func LookupEquipment(s string) (EquipmentOption, bool) {
	for _, opt := range EquipmentCatalog {
		if opt.Value == s || opt.Label == s {
			return opt, true
		}
	}
	return EquipmentOption{}, false
}
