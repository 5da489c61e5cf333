package cli

import (
	"github.com/alexanderramin/readcal/internal/config"
	"github.com/alexanderramin/readcal/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the configuration and services used by CLI commands.
type App struct {
	Config    config.Config
	Workspace *service.Workspace

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// PickBook prompts for one of titles. Defaults to a huh select form.
	PickBook func(titles []string) (string, error)

	snapshotPath string
	noColor      bool
}

// NewRootCmd creates the top-level "readcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.PickBook == nil {
		app.PickBook = pickBook
	}

	root := &cobra.Command{
		Use:           "readcal",
		Short:         "Reading calendar and annotations from an e-reader snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if app.noColor || app.Config.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
	}

	addGlobalFlags(root.PersistentFlags(), app)

	root.AddCommand(
		newCalendarCmd(app),
		newBooksCmd(app),
		newBookCmd(app),
		newNotesCmd(app),
		newExportCmd(app),
	)

	return root
}

func addGlobalFlags(fs *pflag.FlagSet, app *App) {
	fs.StringVar(&app.snapshotPath, "db", app.Config.SnapshotPath, "Path to the KoboReader.sqlite snapshot")
	fs.BoolVar(&app.noColor, "no-color", false, "Disable colored output")
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
