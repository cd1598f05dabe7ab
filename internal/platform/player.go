package platform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/playback"
)

// Probe constants
const (
	DefaultProbeTimeout = 10 * time.Second
	HLSExtension        = ".m3u8"
	HLSHeader           = "#EXTM3U"
	hlsPeekBytes        = 512
)

// Hosts whose pages are handed to the system handler without a media probe
var PageHosts = []string{"youtube.com", "www.youtube.com", "m.youtube.com", "youtu.be"}

var (
	// ErrSourceUnavailable is returned when a source cannot be reached or answers non-2xx
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrUnsupportedMedia is returned when a source does not look like playable media
	ErrUnsupportedMedia = errors.New("unsupported media")
	// ErrNothingLoaded is returned by Play before a source is loaded
	ErrNothingLoaded = errors.New("no source loaded")
)

// ExternalPlayer implements playback.Player. Load probes the source over
// HTTP; Play hands it to the system media handler.
type ExternalPlayer struct {
	client  *http.Client
	timeout time.Duration
	open    Opener
	logger  zerolog.Logger

	mu         sync.Mutex
	source     string
	loaded     bool
	generation uint64 // bumped by Load and Stop; probes of older generations stay silent
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

var _ playback.Player = (*ExternalPlayer)(nil)

// NewExternalPlayer creates a player. A nil client gets a default one.
func NewExternalPlayer(client *http.Client) *ExternalPlayer {
	if client == nil {
		client = &http.Client{}
	}
	return &ExternalPlayer{
		client:  client,
		timeout: DefaultProbeTimeout,
		open:    OpenURI,
		logger:  applog.WithComponent("player"),
	}
}

// SetOpener replaces the system handler
func (p *ExternalPlayer) SetOpener(open Opener) {
	p.open = open
}

// SetTimeout sets the probe timeout
func (p *ExternalPlayer) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// SetLogger overrides the player logger
func (p *ExternalPlayer) SetLogger(logger zerolog.Logger) {
	p.logger = logger
}

// Load abandons the current source and starts probing the new one
func (p *ExternalPlayer) Load(source string, signals playback.Signals) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.source = source
	p.loaded = false
	p.generation++
	gen := p.generation
	p.wg.Add(1)
	p.mu.Unlock()

	go p.probe(ctx, gen, source, signals)
}

// Play opens the loaded source with the system handler
func (p *ExternalPlayer) Play(ctx context.Context) error {
	p.mu.Lock()
	source, loaded := p.source, p.loaded
	p.mu.Unlock()

	if !loaded {
		return ErrNothingLoaded
	}
	if err := p.open(ctx, source); err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	p.logger.Info().Str("source", source).Msg("handed source to system player")
	return nil
}

// Stop cancels an in-flight probe and forgets the source
func (p *ExternalPlayer) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.source = ""
	p.loaded = false
	p.generation++
	p.mu.Unlock()
}

// Close stops the player and waits for probes to finish
func (p *ExternalPlayer) Close() {
	p.Stop()
	p.wg.Wait()
}

func (p *ExternalPlayer) probe(ctx context.Context, gen uint64, source string, signals playback.Signals) {
	defer p.wg.Done()

	if !p.isCurrent(gen) {
		return
	}
	signals.LoadStarted(source)

	err := p.Check(ctx, source)
	if ctx.Err() != nil {
		// stopped or superseded
		return
	}

	if err != nil {
		if !p.isCurrent(gen) {
			return
		}
		p.logger.Warn().Err(err).Str("source", source).Msg("source probe failed")
		signals.LoadFailed(source, err)
		return
	}

	p.mu.Lock()
	if p.generation != gen {
		p.mu.Unlock()
		p.logger.Debug().Str("source", source).Msg("dropping result of superseded probe")
		return
	}
	p.loaded = true
	p.mu.Unlock()
	signals.Loaded(source)
}

// isCurrent reports whether no Load or Stop happened since generation gen started
func (p *ExternalPlayer) isCurrent(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation == gen
}

// Check verifies that a source is reachable and looks like playable media
func (p *ExternalPlayer) Check(ctx context.Context, source string) error {
	u, err := url.Parse(strings.TrimSpace(source))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	switch u.Scheme {
	case "", "file":
		return checkLocalFile(u)
	case "http", "https":
	default:
		return fmt.Errorf("%w: scheme %q", ErrUnsupportedMedia, u.Scheme)
	}

	if isPageHost(u.Hostname()) {
		return nil
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fmt.Errorf("%w: timeout", ErrSourceUnavailable)
		}
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if isHLS(u, mediaType) {
		return checkHLSHeader(resp.Body)
	}
	if !isMediaType(mediaType) {
		return fmt.Errorf("%w: content type %q", ErrUnsupportedMedia, mediaType)
	}
	return nil
}

func checkLocalFile(u *url.URL) error {
	filePath := u.Path
	if u.Scheme == "" {
		filePath = u.String()
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrUnsupportedMedia, filePath)
	}
	return nil
}

// checkHLSHeader requires the first non-empty line of a manifest to be #EXTM3U
func checkHLSHeader(body io.Reader) error {
	scanner := bufio.NewScanner(io.LimitReader(body, hlsPeekBytes))
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, HLSHeader) {
			return nil
		}
		break
	}
	return fmt.Errorf("%w: manifest does not start with %s", ErrUnsupportedMedia, HLSHeader)
}

func isHLS(u *url.URL, mediaType string) bool {
	if strings.EqualFold(path.Ext(u.Path), HLSExtension) {
		return true
	}
	switch mediaType {
	case "application/vnd.apple.mpegurl", "application/x-mpegurl", "audio/mpegurl", "audio/x-mpegurl":
		return true
	}
	return false
}

func isMediaType(mediaType string) bool {
	return strings.HasPrefix(mediaType, "video/") ||
		strings.HasPrefix(mediaType, "audio/") ||
		mediaType == "application/octet-stream"
}

func isPageHost(host string) bool {
	host = strings.ToLower(host)
	for _, h := range PageHosts {
		if host == h {
			return true
		}
	}
	return false
}
