package activity

import (
	"math"
	"testing"

	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/alexanderramin/readcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_MergesAdjacentDaysAndSplitsOnGap(t *testing.T) {
	rows := []domain.RawSessionRow{
		testutil.NewSessionRow("2024-01-01", "BookA", 30, testutil.WithAuthor("Auth")),
		testutil.NewSessionRow("2024-01-02", "BookA", 45, testutil.WithAuthor("Auth")),
		testutil.NewSessionRow("2024-01-10", "BookA", 20, testutil.WithAuthor("Auth")),
	}

	res, err := Aggregate(rows, domain.DefaultPalette())
	require.NoError(t, err)
	require.Len(t, res.Events, 2)

	first := res.Events[0]
	assert.Equal(t, testutil.MustDay("2024-01-01"), first.Start)
	assert.Equal(t, testutil.MustDay("2024-01-02"), first.End)
	assert.Equal(t, testutil.MustDay("2024-01-03"), first.DisplayEnd)
	assert.Equal(t, 75.0, first.Minutes)
	assert.Equal(t, "1h 15m", first.TimeLabel)

	second := res.Events[1]
	assert.Equal(t, testutil.MustDay("2024-01-10"), second.Start)
	assert.Equal(t, testutil.MustDay("2024-01-10"), second.End)
	assert.Equal(t, testutil.MustDay("2024-01-11"), second.DisplayEnd)
	assert.Equal(t, 20.0, second.Minutes)

	require.Len(t, res.Books, 1)
	book := res.Books[0]
	assert.Equal(t, "BookA", book.Title)
	assert.Equal(t, "Auth", book.Author)
	assert.Equal(t, 95.0, book.TotalMinutes)
	assert.Equal(t, 3, book.DaysCount)
	assert.Equal(t, testutil.MustDay("2024-01-01"), book.StartDate)
	assert.Equal(t, testutil.MustDay("2024-01-10"), book.LastDate)
	assert.Len(t, book.DailyHistory, 3)
	assert.Equal(t, domain.BookIndexMap{"BookA": 0}, res.Index)
}

func TestAggregate_EmptyInput(t *testing.T) {
	res, err := Aggregate(nil, domain.DefaultPalette())
	require.NoError(t, err)
	assert.Empty(t, res.Events)
	assert.Empty(t, res.Books)
	assert.Empty(t, res.Index)

	books, err := AttachNotes([]domain.RawNoteRow{testutil.NewNoteRow("Anything", "text")}, res.Books, res.Index)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestAggregate_DayGapBoundary(t *testing.T) {
	tests := []struct {
		name       string
		second     domain.RawSessionRow
		wantEvents int
	}{
		{
			name:       "same day merges",
			second:     testutil.NewSessionRow("2024-03-01", "B", 10),
			wantEvents: 1,
		},
		{
			name:       "exactly one day merges",
			second:     testutil.NewSessionRow("2024-03-02", "B", 10),
			wantEvents: 1,
		},
		{
			name: "one day plus one second merges at day granularity",
			second: domain.RawSessionRow{
				Date:    domain.Day(testutil.MustTimestamp("2024-03-02T00:00:01")),
				Title:   "B",
				Minutes: 10,
			},
			wantEvents: 1,
		},
		{
			name:       "two days starts a new session",
			second:     testutil.NewSessionRow("2024-03-03", "B", 10),
			wantEvents: 2,
		},
		{
			name:       "earlier day starts a new session",
			second:     testutil.NewSessionRow("2024-02-28", "B", 10),
			wantEvents: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []domain.RawSessionRow{testutil.NewSessionRow("2024-03-01", "B", 5), tt.second}
			res, err := Aggregate(rows, domain.DefaultPalette())
			require.NoError(t, err)
			assert.Len(t, res.Events, tt.wantEvents)
		})
	}
}

func TestAggregate_MergesAcrossMonthAndDST(t *testing.T) {
	rows := []domain.RawSessionRow{
		testutil.NewSessionRow("2024-03-09", "B", 5),
		testutil.NewSessionRow("2024-03-10", "B", 5),
		testutil.NewSessionRow("2024-03-11", "B", 5),
		testutil.NewSessionRow("2024-03-31", "C", 5),
		testutil.NewSessionRow("2024-04-01", "C", 5),
	}
	res, err := Aggregate(rows, domain.DefaultPalette())
	require.NoError(t, err)
	require.Len(t, res.Events, 2)
	assert.Equal(t, testutil.MustDay("2024-03-12"), res.Events[0].DisplayEnd)
	assert.Equal(t, testutil.MustDay("2024-04-02"), res.Events[1].DisplayEnd)
}

func TestAggregate_OnlyNearestPriorEventIsConsidered(t *testing.T) {
	// The 01-11 row is adjacent to the latest BookA event (01-10), and the
	// 01-02 row is adjacent to nothing once 01-10 has been appended.
	rows := []domain.RawSessionRow{
		testutil.NewSessionRow("2024-01-01", "BookA", 10),
		testutil.NewSessionRow("2024-01-10", "BookA", 10),
		testutil.NewSessionRow("2024-01-02", "BookA", 10),
		testutil.NewSessionRow("2024-01-03", "BookA", 10),
	}
	res, err := Aggregate(rows, domain.DefaultPalette())
	require.NoError(t, err)
	require.Len(t, res.Events, 3)
	assert.Equal(t, testutil.MustDay("2024-01-02"), res.Events[2].Start)
	assert.Equal(t, testutil.MustDay("2024-01-03"), res.Events[2].End)
	assert.Equal(t, 20.0, res.Events[2].Minutes)
}

func TestAggregate_InterleavedTitlesMergeIndependently(t *testing.T) {
	rows := []domain.RawSessionRow{
		testutil.NewSessionRow("2024-01-01", "A", 10),
		testutil.NewSessionRow("2024-01-01", "B", 20),
		testutil.NewSessionRow("2024-01-02", "A", 10),
		testutil.NewSessionRow("2024-01-02", "B", 20),
	}
	res, err := Aggregate(rows, domain.DefaultPalette())
	require.NoError(t, err)
	require.Len(t, res.Events, 2)
	assert.Equal(t, "A", res.Events[0].Title)
	assert.Equal(t, 20.0, res.Events[0].Minutes)
	assert.Equal(t, "B", res.Events[1].Title)
	assert.Equal(t, 40.0, res.Events[1].Minutes)
	assert.Equal(t, domain.BookIndexMap{"A": 0, "B": 1}, res.Index)
}

func TestAggregate_NonPositiveMinutesCountAsZero(t *testing.T) {
	rows := []domain.RawSessionRow{
		testutil.NewSessionRow("2024-01-01", "A", 10),
		testutil.NewSessionRow("2024-01-02", "A", -5),
		testutil.NewSessionRow("2024-01-03", "A", 0),
	}
	res, err := Aggregate(rows, domain.DefaultPalette())
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, 10.0, res.Events[0].Minutes)
	assert.Equal(t, testutil.MustDay("2024-01-03"), res.Events[0].End)
	assert.Equal(t, 3, res.Books[0].DaysCount)
	assert.Equal(t, 0.0, res.Books[0].DailyHistory[1].Minutes)
}

func TestAggregate_MalformedRowFailsWholePass(t *testing.T) {
	tests := []struct {
		name string
		bad  domain.RawSessionRow
	}{
		{"missing title", domain.RawSessionRow{Date: testutil.MustDay("2024-01-02"), Minutes: 5}},
		{"missing date", domain.RawSessionRow{Title: "A", Minutes: 5}},
		{"NaN minutes", domain.RawSessionRow{Date: testutil.MustDay("2024-01-02"), Title: "A", Minutes: math.NaN()}},
		{"infinite minutes", domain.RawSessionRow{Date: testutil.MustDay("2024-01-02"), Title: "A", Minutes: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []domain.RawSessionRow{testutil.NewSessionRow("2024-01-01", "A", 10), tt.bad}
			res, err := Aggregate(rows, domain.DefaultPalette())
			assert.Nil(t, res)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedRow)

			var rowErr *domain.RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, 2, rowErr.Row)
		})
	}
}

func TestAggregate_EmptyPalette(t *testing.T) {
	_, err := Aggregate([]domain.RawSessionRow{testutil.NewSessionRow("2024-01-01", "A", 1)}, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPalette)
}

func TestAggregate_EventAndBookColorsMatch(t *testing.T) {
	rows := []domain.RawSessionRow{
		testutil.NewSessionRow("2024-01-01", "A", 10),
		testutil.NewSessionRow("2024-01-01", "B", 10),
		testutil.NewSessionRow("2024-01-05", "A", 10),
		testutil.NewSessionRow("2024-01-09", "B", 10),
	}
	res, err := Aggregate(rows, domain.DefaultPalette())
	require.NoError(t, err)

	for _, ev := range res.Events {
		book := res.Books[res.Index[ev.Title]]
		assert.Equal(t, book.Color, ev.BackgroundColor, ev.Title)
		assert.Equal(t, book.Border, ev.BorderColor, ev.Title)
	}
	assert.NotEqual(t, res.Books[0].Color, res.Books[1].Color)
}

func TestAggregate_PassesDoNotShareColorState(t *testing.T) {
	palette := domain.DefaultPalette()
	first, err := Aggregate([]domain.RawSessionRow{
		testutil.NewSessionRow("2024-01-01", "A", 1),
		testutil.NewSessionRow("2024-01-01", "B", 1),
	}, palette)
	require.NoError(t, err)

	second, err := Aggregate([]domain.RawSessionRow{
		testutil.NewSessionRow("2024-01-01", "C", 1),
	}, palette)
	require.NoError(t, err)

	assert.Equal(t, palette[1].Background, first.Books[1].Color)
	assert.Equal(t, palette[0].Background, second.Books[0].Color)
}
