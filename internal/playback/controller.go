package playback

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/model"
)

// ErrNoSource is returned by Open when the request has no primary source
var ErrNoSource = errors.New("playback request has no source")

// Request describes what the user asked to play
type Request struct {
	StreamURL   string
	FallbackURL string
	Title       string
}

// RequestFor builds a playback request from a catalog entry
func RequestFor(entry model.CatalogEntry) Request {
	return Request{
		StreamURL:   entry.StreamURL,
		FallbackURL: entry.FallbackURL,
		Title:       entry.Title,
	}
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger overrides the controller logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithClock overrides the session timestamp source
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller is the playback state machine. All signals are serialised under
// one mutex; player calls are made outside of it.
type Controller struct {
	player Player
	logger zerolog.Logger
	now    func() time.Time

	mu       sync.Mutex
	session  *model.PlaybackSession
	attempts []string // sources tried in the current lineage, in order
	ctx      context.Context
	cancel   context.CancelFunc
	onUpdate func(model.PlaybackSession) // callback for UI updates
}

// NewController creates a controller around the given player
func NewController(player Player, opts ...Option) *Controller {
	c := &Controller{
		player: player,
		logger: applog.WithComponent("playback"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUpdateCallback sets the callback invoked with a snapshot after every transition
func (c *Controller) SetUpdateCallback(callback func(model.PlaybackSession)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// Open destroys the current session, if any, and starts a new lineage in Loading
func (c *Controller) Open(req Request) (model.PlaybackSession, error) {
	if req.StreamURL == "" {
		return model.PlaybackSession{}, ErrNoSource
	}

	c.mu.Lock()
	hadSession := c.teardownLocked()

	ctx, cancel := context.WithCancel(context.Background())
	c.ctx = ctx
	c.cancel = cancel

	lineage := uuid.NewString()
	c.session = &model.PlaybackSession{
		ID:          lineage,
		LineageID:   lineage,
		SourceURL:   req.StreamURL,
		FallbackURL: req.FallbackURL,
		Title:       req.Title,
		State:       model.PlaybackStateLoading,
		Buffering:   true,
		StartedAt:   c.now(),
	}
	c.attempts = []string{req.StreamURL}
	snapshot := *c.session
	callback := c.onUpdate
	c.mu.Unlock()

	if hadSession {
		c.player.Stop()
	}

	c.logger.Info().
		Str("session", snapshot.ID).
		Str("source", snapshot.SourceURL).
		Bool("has_fallback", snapshot.CanFallback()).
		Msg("playback session opened")

	notify(callback, snapshot)
	c.player.Load(snapshot.SourceURL, c)
	return snapshot, nil
}

// LoadStarted handles the player's load-start signal
func (c *Controller) LoadStarted(source string) {
	c.mu.Lock()
	if !c.acceptsLocked(source) || c.session.State != model.PlaybackStateLoading {
		c.mu.Unlock()
		return
	}
	c.session.Buffering = true
	snapshot := *c.session
	callback := c.onUpdate
	c.mu.Unlock()

	notify(callback, snapshot)
}

// Loaded handles the player's load-success signal: Loading -> Playing and a
// fire-and-forget play command.
func (c *Controller) Loaded(source string) {
	c.mu.Lock()
	if !c.acceptsLocked(source) || c.session.State != model.PlaybackStateLoading {
		c.mu.Unlock()
		c.logger.Debug().Str("source", source).Msg("ignoring load signal for inactive source")
		return
	}
	c.session.State = model.PlaybackStatePlaying
	c.session.Buffering = false
	snapshot := *c.session
	callback := c.onUpdate
	ctx := c.ctx
	c.mu.Unlock()

	notify(callback, snapshot)
	go c.play(ctx, snapshot)
}

// LoadFailed handles the player's load-error signal. The fallback source is
// tried once per lineage; after that the session fails.
func (c *Controller) LoadFailed(source string, cause error) {
	c.mu.Lock()
	if !c.acceptsLocked(source) || !c.session.State.IsActive() {
		c.mu.Unlock()
		c.logger.Debug().Str("source", source).Msg("ignoring load error for inactive source")
		return
	}

	c.logger.Error().
		Err(cause).
		Str("session", c.session.ID).
		Str("source", source).
		Msg("video error")

	if c.session.CanFallback() && !c.attemptedLocked(c.session.FallbackURL) {
		next := &model.PlaybackSession{
			ID:          uuid.NewString(),
			LineageID:   c.session.LineageID,
			SourceURL:   c.session.FallbackURL,
			FallbackURL: c.session.FallbackURL,
			Title:       c.session.Title + model.FallbackTitleSuffix,
			State:       model.PlaybackStateLoading,
			Buffering:   true,
			StartedAt:   c.now(),
		}
		c.session = next
		c.attempts = append(c.attempts, next.SourceURL)
		snapshot := *next
		callback := c.onUpdate
		c.mu.Unlock()

		c.logger.Info().
			Str("session", snapshot.ID).
			Str("source", snapshot.SourceURL).
			Msg("switching to fallback source")

		notify(callback, snapshot)
		c.player.Load(snapshot.SourceURL, c)
		return
	}

	c.session.State = model.PlaybackStateFailed
	c.session.Buffering = false
	c.session.LastError = model.PlaybackErrorMessage
	snapshot := *c.session
	callback := c.onUpdate
	c.mu.Unlock()

	notify(callback, snapshot)
}

// Close destroys the session; later signals are ignored
func (c *Controller) Close() {
	c.mu.Lock()
	hadSession := c.teardownLocked()
	callback := c.onUpdate
	c.mu.Unlock()

	if !hadSession {
		return
	}
	c.player.Stop()
	c.logger.Debug().Msg("playback session closed")
	notify(callback, model.PlaybackSession{State: model.PlaybackStateIdle})
}

// Session returns a snapshot of the active session
func (c *Controller) Session() (model.PlaybackSession, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return model.PlaybackSession{}, false
	}
	return *c.session, true
}

// State returns the current lifecycle state
func (c *Controller) State() model.PlaybackState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return model.PlaybackStateIdle
	}
	return c.session.State
}

// Attempts returns the sources loaded so far in the current lineage
func (c *Controller) Attempts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.attempts))
	copy(out, c.attempts)
	return out
}

// play issues the play command. A rejection is logged and otherwise ignored:
// the native player controls stay usable.
func (c *Controller) play(ctx context.Context, session model.PlaybackSession) {
	if err := c.player.Play(ctx); err != nil {
		c.logger.Warn().
			Err(err).
			Str("session", session.ID).
			Str("source", session.SourceURL).
			Msg("play command failed")
	}
}

func (c *Controller) acceptsLocked(source string) bool {
	return c.session != nil && c.session.SourceURL == source
}

func (c *Controller) attemptedLocked(source string) bool {
	for _, s := range c.attempts {
		if s == source {
			return true
		}
	}
	return false
}

func (c *Controller) teardownLocked() bool {
	if c.session == nil {
		return false
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.session = nil
	c.attempts = nil
	c.ctx = nil
	c.cancel = nil
	return true
}

// notify calls the update callback if set
func notify(callback func(model.PlaybackSession), session model.PlaybackSession) {
	if callback != nil {
		callback(session)
	}
}
