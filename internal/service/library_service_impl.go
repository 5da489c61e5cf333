package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/readcal/internal/activity"
	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type libraryService struct {
	open     SourceOpener
	palette  domain.Palette
	observer UseCaseObserver
	now      func() time.Time
}

func NewLibraryService(open SourceOpener, palette domain.Palette, observers ...UseCaseObserver) LibraryService {
	return &libraryService{
		open:     open,
		palette:  palette,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

// Load opens the snapshot at path and runs the aggregation and note
// passes for it. Session and note rows are fetched concurrently; notes are
// attached only once the aggregate pass has produced this upload's index.
func (s *libraryService) Load(ctx context.Context, path string) (*Library, error) {
	started := s.now()
	uploadID := uuid.New().String()

	lib, err := s.load(ctx, uploadID, path)

	event := UseCaseEvent{
		Name:      "library.load",
		UploadID:  uploadID,
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields:    map[string]any{"source": path},
	}
	if lib != nil {
		event.Fields["events"] = len(lib.Events)
		event.Fields["books"] = len(lib.Books)
		event.Fields["notes"] = lib.NoteCount
		event.Fields["skipped_notes"] = lib.SkippedNotes
	}
	s.observer.ObserveUseCase(ctx, event)

	if err != nil {
		return nil, err
	}
	return lib, nil
}

func (s *libraryService) load(ctx context.Context, uploadID, path string) (*Library, error) {
	src, err := s.open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	defer src.Close()

	var (
		result   *activity.Result
		noteRows []domain.RawNoteRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := src.SessionRows(gctx)
		if err != nil {
			return err
		}
		result, err = activity.Aggregate(rows, s.palette)
		return err
	})
	g.Go(func() error {
		var err error
		noteRows, err = src.NoteRows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	books, err := activity.AttachNotes(noteRows, result.Books, result.Index)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	attached := 0
	for _, b := range books {
		attached += len(b.Notes)
	}

	return &Library{
		UploadID:     uploadID,
		Source:       path,
		LoadedAt:     s.now().UTC(),
		Events:       result.Events,
		Books:        books,
		Index:        result.Index,
		NoteCount:    attached,
		SkippedNotes: len(noteRows) - attached,
	}, nil
}
