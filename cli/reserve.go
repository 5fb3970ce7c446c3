package cli

import (
	"errors"
	"fmt"

	"labreserve/models"
	"labreserve/services/form"
	"labreserve/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNotReserved is returned after the command already printed why.
var errNotReserved = errors.New("reservation not saved")

type reserveFlags struct {
	name      string
	date      string
	start     string
	end       string
	equipment []string
	other     string
}

func newReserveCmd(opts *options) *cobra.Command {
	f := &reserveFlags{}

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Reserve equipment for a time range",
		Long: `Reserve one or more pieces of equipment on a date.

Equipment may be given by name or by its letter from "labreserve equipment".
Selecting Others stores the --other text instead of the selected names.`,
		Example: `  labreserve reserve --name "Ada" --date 2024-06-01 --start 09:00 --end 10:00 --equipment "Glove Box"
  labreserve reserve --name "Ada" --date 2024-06-01 --start 09:00 --end 10:00 -e G --other "Tube furnace"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReserve(cmd, opts, f)
		},
	}

	cmd.Flags().StringVar(&f.name, "name", "", "Your name")
	cmd.Flags().StringVar(&f.date, "date", "", fmt.Sprintf("Date (YYYY-MM-DD, %s to %s)", models.MinReservationDate, models.MaxReservationDate))
	cmd.Flags().StringVar(&f.start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&f.end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringArrayVarP(&f.equipment, "equipment", "e", nil, "Equipment name or letter (repeatable)")
	cmd.Flags().StringVar(&f.other, "other", "", "Free-text equipment when Others is selected")
	return cmd
}

// resolveEquipment maps names or letters to catalog values, keeping the given order.
func resolveEquipment(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		opt, ok := models.LookupEquipment(s)
		if !ok {
			return nil, fmt.Errorf("unknown equipment %q (see \"labreserve equipment\")", s)
		}
		out = append(out, opt.Value)
	}
	return out, nil
}

func runReserve(cmd *cobra.Command, opts *options, f *reserveFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// The date picker bounds the input; the controller does not re-check it.
	if f.date != "" && !models.DateInRange(f.date) {
		return fmt.Errorf("date must be between %s and %s", models.MinReservationDate, models.MaxReservationDate)
	}
	equipment, err := resolveEquipment(f.equipment)
	if err != nil {
		return err
	}

	c := newController(ctx, opts)
	defer c.Close()

	if err := c.Load(ctx); err != nil {
		// Conflicts can only be checked against what was fetched.
		utils.GetLogger().Warn("Continuing without existing reservations", zap.Error(err))
	}

	for field, value := range map[string]string{
		form.FieldName:           f.name,
		form.FieldDate:           f.date,
		form.FieldStartTime:      f.start,
		form.FieldEndTime:        f.end,
		form.FieldOtherEquipment: f.other,
	} {
		if err := c.UpdateField(field, value); err != nil {
			return err
		}
	}
	c.UpdateEquipment(equipment)

	submitErr := c.Submit(ctx)
	s := c.Snapshot()

	if opts.jsonOutput {
		if err := writeJSON(out, s); err != nil {
			return err
		}
	} else {
		printErrorRegion(out, s)
		if submitErr == nil {
			fmt.Fprintln(out, "Reservation saved.")
			fmt.Fprintln(out)
		}
		if err := printReservations(out, s); err != nil {
			return err
		}
	}

	switch {
	case submitErr == nil:
		return nil
	case errors.Is(submitErr, form.ErrIncomplete):
		return fmt.Errorf("%w: name, date, start, end and at least one equipment are required", errNotReserved)
	case errors.Is(submitErr, form.ErrConflict):
		return errNotReserved
	default:
		return fmt.Errorf("%w: %v", errNotReserved, submitErr)
	}
}
