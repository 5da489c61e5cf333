package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/readcal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBookCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "book [TITLE]",
		Short: "Show one book's history and annotations",
		Long: `Show totals, day-by-day reading history and annotations for one book.

When TITLE is omitted on an interactive terminal a picker is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !app.interactive() {
				return errors.New("a book title is required when not running interactively")
			}

			lib, err := loadLibrary(cmd, app)
			if err != nil {
				return err
			}

			var title string
			if len(args) == 1 {
				title = args[0]
			} else {
				title, err = app.PickBook(lib.Titles())
				if err != nil {
					return err
				}
			}

			bk, err := findBook(lib, title)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBookDetail(bk))
			return nil
		},
	}
}
