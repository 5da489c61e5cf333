package cli

import (
	"errors"

	"github.com/alexanderramin/readcal/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func readcalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// bookSelectForm returns a themed select over titles writing into result.
func bookSelectForm(titles []string, result *string) *huh.Form {
	opts := make([]huh.Option[string], len(titles))
	for i, title := range titles {
		opts[i] = huh.NewOption(title, title)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select Book").
				Options(opts...).
				Height(12).
				Value(result),
		),
	).WithTheme(readcalHuhTheme()).WithShowHelp(false)
}

func pickBook(titles []string) (string, error) {
	if len(titles) == 0 {
		return "", errors.New("no books to choose from")
	}
	var title string
	if err := bookSelectForm(titles, &title).Run(); err != nil {
		return "", err
	}
	return title, nil
}
