package form

import (
	"fmt"
	"io"

	"labreserve/models"
)

// EmptyListMessage is printed when nothing has been reserved yet.
const EmptyListMessage = "No slots reserved yet."

// RenderReservations writes the reserved-slot list in arrival order, one line each.
func RenderReservations(w io.Writer, list []models.Reservation) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, EmptyListMessage)
		return err
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, r.Line()); err != nil {
			return err
		}
	}
	return nil
}
