package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/alexanderramin/readcal/internal/service"
	"github.com/spf13/cobra"
)

// ErrBookNotFound indicates a title with no reading sessions in the snapshot.
var ErrBookNotFound = errors.New("book not found")

// loadLibrary uploads the snapshot selected by --db into the workspace and
// returns the committed library.
func loadLibrary(cmd *cobra.Command, app *App) (*service.Library, error) {
	lib, err := app.Workspace.Upload(cmd.Context(), app.snapshotPath)
	if err != nil {
		return nil, err
	}
	if lib.SkippedNotes > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipped %d annotations for books with no reading sessions\n", lib.SkippedNotes)
	}
	return lib, nil
}

func findBook(lib *service.Library, title string) (domain.BookAggregate, error) {
	bk, ok := lib.Book(title)
	if !ok {
		return domain.BookAggregate{}, fmt.Errorf("%q: %w", title, ErrBookNotFound)
	}
	return bk, nil
}
