package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/alexanderramin/readcal/internal/repository"
)

// ErrSuperseded indicates a newer upload started before this one could be
// committed; its result was discarded.
var ErrSuperseded = errors.New("upload superseded by a newer one")

// Library is everything derived from one uploaded snapshot. A Library is
// never modified after it is returned; callers must treat it as read-only.
type Library struct {
	UploadID     string
	Source       string
	LoadedAt     time.Time
	Events       []domain.MergedSessionEvent
	Books        []domain.BookAggregate
	Index        domain.BookIndexMap
	NoteCount    int
	SkippedNotes int
}

// Book returns a copy of the aggregate for title.
func (l *Library) Book(title string) (domain.BookAggregate, bool) {
	if l == nil {
		return domain.BookAggregate{}, false
	}
	i, ok := l.Index[title]
	if !ok {
		return domain.BookAggregate{}, false
	}
	return l.Books[i].Clone(), true
}

// Titles lists book titles in pass order.
func (l *Library) Titles() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.Books))
	for i, b := range l.Books {
		out[i] = b.Title
	}
	return out
}

// SnapshotSource is an open snapshot that can supply both row sets.
type SnapshotSource interface {
	repository.SessionRowSource
	repository.NoteRowSource
	Close() error
}

// SourceOpener opens the snapshot at path.
type SourceOpener func(ctx context.Context, path string) (SnapshotSource, error)

type LibraryService interface {
	Load(ctx context.Context, path string) (*Library, error)
}
