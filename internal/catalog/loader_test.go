package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ytget/video-catalog/internal/model"
)

type fetchResult struct {
	entries []model.CatalogEntry
	err     error
}

// scriptedSource hands out one result per Fetch call. When honourCtx is false
// it keeps waiting for its result after cancellation.
type scriptedSource struct {
	results   chan fetchResult
	honourCtx bool
}

func newScriptedSource(honourCtx bool) *scriptedSource {
	return &scriptedSource{results: make(chan fetchResult, 4), honourCtx: honourCtx}
}

func (s *scriptedSource) Fetch(ctx context.Context) ([]model.CatalogEntry, error) {
	if !s.honourCtx {
		r := <-s.results
		return r.entries, r.err
	}
	select {
	case r := <-s.results:
		return r.entries, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type recorder struct {
	mu        sync.Mutex
	snapshots []Snapshot
}

func (r *recorder) record(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
}

func (r *recorder) last() (Snapshot, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snapshots) == 0 {
		return Snapshot{}, 0
	}
	return r.snapshots[len(r.snapshots)-1], len(r.snapshots)
}

func newTestLoader(source Source) (*Loader, *recorder) {
	l := NewLoader(source)
	l.SetLogger(zerolog.Nop())
	rec := &recorder{}
	l.SetUpdateCallback(rec.record)
	return l, rec
}

func waitForStatus(t *testing.T, l *Loader, status model.CatalogStatus) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return l.Snapshot().Status == status
	}, 2*time.Second, 5*time.Millisecond)
	return l.Snapshot()
}

func TestLoader_LoadsEntries(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	l, rec := newTestLoader(NewStaticSource(DemoEntries(), 0))
	defer l.Close()

	assert.Equal(t, model.CatalogStatusLoading, l.Snapshot().Status)
	l.Load()

	snap := waitForStatus(t, l, model.CatalogStatusLoaded)
	assert.Len(t, snap.Entries, 6)
	assert.NoError(t, snap.Err)

	entry, ok := l.Entry("tears-hls")
	require.True(t, ok)
	assert.Equal(t, "Tears of Steel (HLS)", entry.Title)

	_, ok = l.Entry("missing")
	assert.False(t, ok)

	last, _ := rec.last()
	assert.Equal(t, model.CatalogStatusLoaded, last.Status)
}

func TestLoader_ErrorThenRetrySucceeds(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	source := newScriptedSource(true)
	l, rec := newTestLoader(source)
	defer l.Close()

	source.results <- fetchResult{err: errors.New("network unreachable")}
	l.Load()

	snap := waitForStatus(t, l, model.CatalogStatusError)
	assert.ErrorIs(t, snap.Err, ErrCatalogLoad)
	assert.Empty(t, snap.Entries)

	source.results <- fetchResult{entries: DemoEntries()}
	l.Retry()

	snap = waitForStatus(t, l, model.CatalogStatusLoaded)
	assert.NoError(t, snap.Err)
	assert.Len(t, snap.Entries, 6)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	statuses := make([]model.CatalogStatus, 0, len(rec.snapshots))
	for _, s := range rec.snapshots {
		statuses = append(statuses, s.Status)
	}
	assert.Equal(t, []model.CatalogStatus{
		model.CatalogStatusLoading,
		model.CatalogStatusError,
		model.CatalogStatusLoading,
		model.CatalogStatusLoaded,
	}, statuses)
}

func TestLoader_InvalidCatalogIsLoadError(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	entries := []model.CatalogEntry{
		{ID: "a", StreamURL: "a.mp4"},
		{ID: "a", StreamURL: "b.mp4"},
	}
	l, _ := newTestLoader(NewStaticSource(entries, 0))
	defer l.Close()

	l.Load()
	snap := waitForStatus(t, l, model.CatalogStatusError)
	assert.ErrorIs(t, snap.Err, ErrCatalogLoad)
}

func TestLoader_FailureAfterCloseIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	source := newScriptedSource(false)
	l, rec := newTestLoader(source)
	l.Load()

	before := l.Snapshot()
	_, calls := rec.last()

	closed := make(chan struct{})
	go func() {
		l.Close()
		close(closed)
	}()

	// wait until Close has marked the loader torn down
	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.closed
	}, time.Second, time.Millisecond)

	source.results <- fetchResult{err: errors.New("late failure")}
	<-closed

	assert.Equal(t, before, l.Snapshot())
	_, callsAfter := rec.last()
	assert.Equal(t, calls, callsAfter, "no update after teardown")
}

func TestLoader_CloseCancelsInflightFetch(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	l, _ := newTestLoader(NewStaticSource(DemoEntries(), time.Hour))
	l.Load()
	l.Close()

	assert.Equal(t, model.CatalogStatusLoading, l.Snapshot().Status)

	// Load after Close is a no-op
	l.Load()
	assert.Equal(t, model.CatalogStatusLoading, l.Snapshot().Status)
}

func TestLoader_SupersededFetchIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	source := newScriptedSource(false)
	l, _ := newTestLoader(source)
	defer l.Close()

	l.Load() // generation 1
	l.Load() // generation 2

	// the first result is picked up by one of the two fetches; whichever
	// generation receives the failure, only generation 2 may apply it
	source.results <- fetchResult{entries: []model.CatalogEntry{{ID: "x", StreamURL: "x.mp4"}}}
	source.results <- fetchResult{entries: DemoEntries()}

	snap := waitForStatus(t, l, model.CatalogStatusLoaded)
	assert.NotEmpty(t, snap.Entries)
	l.mu.Lock()
	assert.Equal(t, uint64(2), l.generation)
	l.mu.Unlock()
}
