package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"labreserve/services/form"
	"labreserve/services/store"
	"labreserve/utils"
)

// newController returns a form controller talking to the configured store.
func newController(ctx context.Context, opts *options) *form.Controller {
	logger := utils.GetLogger()
	client := store.NewClient(opts.storeURL, opts.timeout, logger)
	return form.NewController(ctx, client, logger)
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printReservations writes the reserved-slot section.
func printReservations(w io.Writer, s form.State) error {
	if _, err := headingColor.Fprintln(w, "Reserved Slots"); err != nil {
		return err
	}
	return form.RenderReservations(w, s.Reservations)
}

// printErrorRegion writes the inline error message, if any.
func printErrorRegion(w io.Writer, s form.State) {
	if s.Error == "" {
		return
	}
	_, _ = errorColor.Fprintln(w, s.Error)
	fmt.Fprintln(w)
}
