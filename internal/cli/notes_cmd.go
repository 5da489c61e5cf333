package cli

import (
	"fmt"

	"github.com/alexanderramin/readcal/internal/cli/formatter"
	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List highlights, notes and bookmarks grouped by book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(cmd, app)
			if err != nil {
				return err
			}

			books := lib.Books
			if title != "" {
				bk, err := findBook(lib, title)
				if err != nil {
					return err
				}
				books = []domain.BookAggregate{bk}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotes(books))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Only show annotations for this book")

	return cmd
}
