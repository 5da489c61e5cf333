package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Workspace holds the library currently on display and swaps in new
// uploads. Only the most recently started upload may commit; results of
// older uploads that finish late are discarded. Readers get the committed
// *Library and keep a consistent view even while a newer one loads.
type Workspace struct {
	loader LibraryService

	mu      sync.Mutex
	latest  uint64
	current atomic.Pointer[Library]
}

func NewWorkspace(loader LibraryService) *Workspace {
	return &Workspace{loader: loader}
}

// Upload loads the snapshot at path and, if no newer upload has started in
// the meantime, makes it the current library. On any failure the current
// library is left untouched.
func (w *Workspace) Upload(ctx context.Context, path string) (*Library, error) {
	w.mu.Lock()
	w.latest++
	gen := w.latest
	w.mu.Unlock()

	lib, err := w.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.latest {
		return nil, fmt.Errorf("upload %s: %w", lib.UploadID, ErrSuperseded)
	}
	w.current.Store(lib)
	return lib, nil
}

// Current returns the committed library, or nil before the first upload.
func (w *Workspace) Current() *Library {
	return w.current.Load()
}
