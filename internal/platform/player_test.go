package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type signal struct {
	kind   string
	source string
	cause  error
}

type signalRecorder struct {
	ch chan signal
}

func newSignalRecorder() *signalRecorder {
	return &signalRecorder{ch: make(chan signal, 8)}
}

func (r *signalRecorder) LoadStarted(source string) { r.ch <- signal{kind: "started", source: source} }
func (r *signalRecorder) Loaded(source string)      { r.ch <- signal{kind: "loaded", source: source} }
func (r *signalRecorder) LoadFailed(source string, cause error) {
	r.ch <- signal{kind: "failed", source: source, cause: cause}
}

func (r *signalRecorder) next(t *testing.T) signal {
	t.Helper()
	select {
	case s := <-r.ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for player signal")
		return signal{}
	}
}

func newMediaServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.m3u8", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
		_, _ = w.Write([]byte("#EXTM3U\n#EXT-X-VERSION:3\n"))
	})
	mux.HandleFunc("/bad.m3u8", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not a manifest</html>"))
	})
	mux.HandleFunc("/video.mp4", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte{0, 0, 0, 0x18})
	})
	mux.HandleFunc("/page", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/slow.mp4", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	return httptest.NewServer(mux)
}

func newTestPlayer(srv *httptest.Server) *ExternalPlayer {
	p := NewExternalPlayer(srv.Client())
	p.SetLogger(zerolog.Nop())
	return p
}

func TestExternalPlayer_Check(t *testing.T) {
	srv := newMediaServer()
	defer srv.Close()
	p := newTestPlayer(srv)

	tests := []struct {
		name    string
		source  string
		wantErr error
	}{
		{"hls manifest", srv.URL + "/ok.m3u8", nil},
		{"mp4", srv.URL + "/video.mp4", nil},
		{"manifest without header", srv.URL + "/bad.m3u8", ErrUnsupportedMedia},
		{"html page", srv.URL + "/page", ErrUnsupportedMedia},
		{"not found", srv.URL + "/missing.mp4", ErrSourceUnavailable},
		{"unsupported scheme", "rtsp://camera.local/stream", ErrUnsupportedMedia},
		{"page host", "https://www.youtube.com/watch?v=aqz-KE-bpKQ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Check(context.Background(), tt.source)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExternalPlayer_CheckLocalFile(t *testing.T) {
	p := NewExternalPlayer(nil)
	dir := t.TempDir()
	file := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	assert.NoError(t, p.Check(context.Background(), file))
	assert.NoError(t, p.Check(context.Background(), "file://"+file))
	assert.ErrorIs(t, p.Check(context.Background(), dir), ErrUnsupportedMedia)
	assert.ErrorIs(t, p.Check(context.Background(), filepath.Join(dir, "missing.mp4")), ErrSourceUnavailable)
}

func TestExternalPlayer_LoadSignalsAndPlay(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := newMediaServer()
	defer srv.Close()
	defer srv.CloseClientConnections()

	p := newTestPlayer(srv)
	defer p.Close()

	var opened string
	p.SetOpener(func(_ context.Context, uri string) error {
		opened = uri
		return nil
	})

	assert.ErrorIs(t, p.Play(context.Background()), ErrNothingLoaded)

	source := srv.URL + "/ok.m3u8"
	rec := newSignalRecorder()
	p.Load(source, rec)

	assert.Equal(t, signal{kind: "started", source: source}, rec.next(t))
	assert.Equal(t, signal{kind: "loaded", source: source}, rec.next(t))

	require.NoError(t, p.Play(context.Background()))
	assert.Equal(t, source, opened)
}

func TestExternalPlayer_LoadFailure(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := newMediaServer()
	defer srv.Close()
	defer srv.CloseClientConnections()

	p := newTestPlayer(srv)
	defer p.Close()

	source := srv.URL + "/bad.m3u8"
	rec := newSignalRecorder()
	p.Load(source, rec)

	assert.Equal(t, "started", rec.next(t).kind)
	failed := rec.next(t)
	assert.Equal(t, "failed", failed.kind)
	assert.Equal(t, source, failed.source)
	assert.ErrorIs(t, failed.cause, ErrUnsupportedMedia)

	assert.ErrorIs(t, p.Play(context.Background()), ErrNothingLoaded)
}

func TestExternalPlayer_StopCancelsProbe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := newMediaServer()
	defer srv.Close()
	defer srv.CloseClientConnections()

	p := newTestPlayer(srv)
	rec := newSignalRecorder()
	p.Load(srv.URL+"/slow.mp4", rec)
	assert.Equal(t, "started", rec.next(t).kind)

	p.Stop()
	p.Close()

	select {
	case s := <-rec.ch:
		t.Fatalf("unexpected signal after stop: %+v", s)
	default:
	}
}

func TestExternalPlayer_SupersededProbeStaysSilent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := newMediaServer()
	defer srv.Close()
	defer srv.CloseClientConnections()

	p := newTestPlayer(srv)
	source := srv.URL + "/video.mp4"

	p.mu.Lock()
	stale := p.generation + 1
	p.mu.Unlock()

	first := newSignalRecorder()
	p.Load(source, first)
	assert.Equal(t, "started", first.next(t).kind)
	assert.Equal(t, "loaded", first.next(t).kind)
	p.Stop()

	// a probe of the stopped generation whose context was never cancelled
	p.wg.Add(1)
	p.probe(context.Background(), stale, source, first)
	select {
	case s := <-first.ch:
		t.Fatalf("unexpected signal from superseded probe: %+v", s)
	default:
	}
	assert.ErrorIs(t, p.Play(context.Background()), ErrNothingLoaded)

	second := newSignalRecorder()
	p.Load(source, second)
	assert.Equal(t, "started", second.next(t).kind)
	assert.Equal(t, "loaded", second.next(t).kind)
	p.Close()
}

func TestExternalPlayer_PlayError(t *testing.T) {
	p := NewExternalPlayer(nil)
	p.SetLogger(zerolog.Nop())
	p.SetOpener(func(context.Context, string) error { return errors.New("no handler") })

	dir := t.TempDir()
	file := filepath.Join(dir, "clip.mp4")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	rec := newSignalRecorder()
	p.Load(file, rec)
	rec.next(t)
	require.Equal(t, "loaded", rec.next(t).kind)

	err := p.Play(context.Background())
	assert.ErrorContains(t, err, "no handler")
	p.Close()
}

func TestOpenURI_Empty(t *testing.T) {
	assert.Error(t, OpenURI(context.Background(), ""))
}
