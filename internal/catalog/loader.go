package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/model"
)

// Snapshot is the loader state handed to the UI
type Snapshot struct {
	Status  model.CatalogStatus
	Entries []model.CatalogEntry
	Err     error
}

// Loader owns the catalog fetch lifecycle
type Loader struct {
	source Source
	logger zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	status     model.CatalogStatus
	entries    []model.CatalogEntry
	err        error
	generation uint64
	closed     bool
	inflight   context.CancelFunc
	onUpdate   func(Snapshot) // callback for UI updates
}

// NewLoader creates a loader for the given source. Nothing is fetched until Load.
func NewLoader(source Source) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader{
		source: source,
		logger: applog.WithComponent("catalog"),
		ctx:    ctx,
		cancel: cancel,
		status: model.CatalogStatusLoading,
	}
}

// SetLogger overrides the loader logger
func (l *Loader) SetLogger(logger zerolog.Logger) {
	l.logger = logger
}

// SetUpdateCallback sets the callback invoked after each transition
func (l *Loader) SetUpdateCallback(callback func(Snapshot)) {
	l.mu.Lock()
	l.onUpdate = callback
	l.mu.Unlock()
}

// Load starts a fetch. A fetch already in flight is superseded.
func (l *Loader) Load() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.inflight != nil {
		l.inflight()
	}
	ctx, cancel := context.WithCancel(l.ctx)
	l.inflight = cancel
	l.generation++
	gen := l.generation
	l.status = model.CatalogStatusLoading
	l.entries = nil
	l.err = nil
	snapshot := l.snapshotLocked()
	callback := l.onUpdate
	l.wg.Add(1)
	l.mu.Unlock()

	notify(callback, snapshot)
	go l.fetch(ctx, gen)
}

// Retry clears the error and fetches again
func (l *Loader) Retry() {
	l.logger.Info().Msg("retrying catalog fetch")
	l.Load()
}

// Close tears the loader down. Results delivered afterwards are discarded.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.cancel()
	l.wg.Wait()
}

// Snapshot returns the current state
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Entry looks up a loaded entry by ID
func (l *Loader) Entry(id string) (model.CatalogEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return model.FindEntry(l.entries, id)
}

func (l *Loader) fetch(ctx context.Context, gen uint64) {
	defer l.wg.Done()

	entries, err := l.source.Fetch(ctx)
	if err == nil {
		err = Validate(entries)
	}

	l.mu.Lock()
	if l.closed || gen != l.generation {
		l.mu.Unlock()
		l.logger.Debug().Uint64("generation", gen).Msg("discarding stale catalog result")
		return
	}

	if err != nil {
		l.status = model.CatalogStatusError
		l.entries = nil
		l.err = wrapLoadError(err)
	} else {
		l.status = model.CatalogStatusLoaded
		l.entries = cloneEntries(entries)
		l.err = nil
	}
	snapshot := l.snapshotLocked()
	callback := l.onUpdate
	l.mu.Unlock()

	if err != nil {
		l.logger.Error().Err(err).Msg("catalog fetch failed")
	} else {
		l.logger.Info().Int("entries", len(entries)).Msg("catalog loaded")
	}
	notify(callback, snapshot)
}

func (l *Loader) snapshotLocked() Snapshot {
	return Snapshot{
		Status:  l.status,
		Entries: cloneEntries(l.entries),
		Err:     l.err,
	}
}

func wrapLoadError(err error) error {
	if errors.Is(err, ErrCatalogLoad) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCatalogLoad, err)
}

// notify calls the update callback if set
func notify(callback func(Snapshot), snapshot Snapshot) {
	if callback != nil {
		callback(snapshot)
	}
}
