package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/readcal/internal/activity"
	"github.com/alexanderramin/readcal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultCalendarMonths = 2

func newCalendarCmd(app *App) *cobra.Command {
	var month string
	var months int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show reading sessions month by month",
		Long: `Show merged reading sessions grouped by month.

Without --month the window ends with the month of the most recent session.
With --month it starts at that month and spans one month unless --months
is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if months < 1 {
				return fmt.Errorf("--months must be at least 1, got %d", months)
			}

			lib, err := loadLibrary(cmd, app)
			if err != nil {
				return err
			}

			var from, to time.Time
			if month != "" {
				start, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q (want YYYY-MM): %w", month, err)
				}
				span := 1
				if cmd.Flags().Changed("months") {
					span = months
				}
				from = activity.MonthStart(start)
				to = from.AddDate(0, span, 0)
			} else {
				var ok bool
				from, to, ok = activity.DefaultWindow(lib.Events, months)
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "No reading sessions found.")
					return nil
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(lib.Events, from, to))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "First month to show (YYYY-MM)")
	cmd.Flags().IntVar(&months, "months", defaultCalendarMonths, "Number of months to show")

	return cmd
}
