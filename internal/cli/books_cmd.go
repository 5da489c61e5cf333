package cli

import (
	"fmt"

	"github.com/alexanderramin/readcal/internal/activity"
	"github.com/alexanderramin/readcal/internal/cli/formatter"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

func newBooksCmd(app *App) *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List books with reading totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := activity.ParseBookOrder(sortBy)
			if err != nil {
				return err
			}

			lib, err := loadLibrary(cmd, app)
			if err != nil {
				return err
			}

			books := activity.SortBooks(lib.Books, order, app.collationTag())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBookList(books))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: title, minutes, recent (default: first read)")

	return cmd
}

// collationTag is the configured language, or English when the App was
// built without config.Load.
func (a *App) collationTag() language.Tag {
	if a.Config.Language == language.Und {
		return language.English
	}
	return a.Config.Language
}
