package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/alexanderramin/readcal/internal/service"
	"github.com/spf13/cobra"
)

type exportDoc struct {
	UploadID string        `json:"uploadId"`
	Source   string        `json:"source"`
	LoadedAt time.Time     `json:"loadedAt"`
	Events   []exportEvent `json:"events"`
	Books    []exportBook  `json:"books"`
}

type exportEvent struct {
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DisplayEnd      string  `json:"displayEnd"`
	Minutes         float64 `json:"minutes"`
	TimeLabel       string  `json:"timeLabel"`
	BackgroundColor string  `json:"backgroundColor"`
	BorderColor     string  `json:"borderColor"`
}

type exportDay struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}

type exportNote struct {
	Type          domain.NoteType `json:"type"`
	Text          string          `json:"text,omitempty"`
	Annotation    string          `json:"annotation,omitempty"`
	ISODate       time.Time       `json:"isoDate"`
	LocalizedDate string          `json:"localizedDate"`
}

type exportBook struct {
	Title        string       `json:"title"`
	Author       string       `json:"author"`
	TotalMinutes float64      `json:"totalMinutes"`
	StartDate    string       `json:"startDate"`
	LastDate     string       `json:"lastDate"`
	DaysCount    int          `json:"daysCount"`
	Color        string       `json:"color"`
	Border       string       `json:"border"`
	DailyHistory []exportDay  `json:"dailyHistory"`
	Notes        []exportNote `json:"notes"`
}

func newExportDoc(lib *service.Library) exportDoc {
	doc := exportDoc{
		UploadID: lib.UploadID,
		Source:   lib.Source,
		LoadedAt: lib.LoadedAt,
		Events:   make([]exportEvent, 0, len(lib.Events)),
		Books:    make([]exportBook, 0, len(lib.Books)),
	}
	for _, ev := range lib.Events {
		doc.Events = append(doc.Events, exportEvent{
			Title:           ev.Title,
			Author:          ev.Author,
			Start:           domain.FormatDay(ev.Start),
			End:             domain.FormatDay(ev.End),
			DisplayEnd:      domain.FormatDay(ev.DisplayEnd),
			Minutes:         ev.Minutes,
			TimeLabel:       ev.TimeLabel,
			BackgroundColor: ev.BackgroundColor,
			BorderColor:     ev.BorderColor,
		})
	}
	for _, bk := range lib.Books {
		out := exportBook{
			Title:        bk.Title,
			Author:       bk.Author,
			TotalMinutes: bk.TotalMinutes,
			StartDate:    domain.FormatDay(bk.StartDate),
			LastDate:     domain.FormatDay(bk.LastDate),
			DaysCount:    bk.DaysCount,
			Color:        bk.Color,
			Border:       bk.Border,
			DailyHistory: make([]exportDay, 0, len(bk.DailyHistory)),
			Notes:        make([]exportNote, 0, len(bk.Notes)),
		}
		for _, d := range bk.DailyHistory {
			out.DailyHistory = append(out.DailyHistory, exportDay{Date: domain.FormatDay(d.Date), Minutes: d.Minutes})
		}
		for _, n := range bk.Notes {
			out.Notes = append(out.Notes, exportNote{
				Type:          n.Type,
				Text:          n.Text,
				Annotation:    n.Annotation,
				ISODate:       n.ISODate,
				LocalizedDate: n.LocalizedDate,
			})
		}
		doc.Books = append(doc.Books, out)
	}
	return doc
}

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions, books and annotations as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary(cmd, app)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(newExportDoc(lib), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}
			data = append(data, '\n')

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events and %d books to %s\n",
				len(lib.Events), len(lib.Books), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write JSON to this file instead of stdout")

	return cmd
}
