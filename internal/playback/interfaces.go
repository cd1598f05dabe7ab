package playback

import (
	"context"

	"github.com/ytget/video-catalog/internal/model"
)

// Signals receives load notifications from a Player. Every signal names the
// source it refers to so signals from a replaced source can be told apart.
type Signals interface {
	LoadStarted(source string)
	Loaded(source string)
	LoadFailed(source string, cause error)
}

// Player defines the media player collaborator. Stream formats are the
// player's business; the controller only sees signals.
type Player interface {
	// Load starts loading source and reports progress through signals.
	Load(source string, signals Signals)

	// Play asks the player to start playback. Its result may be ignored.
	Play(ctx context.Context) error

	// Stop abandons the current source.
	Stop()
}

// Driver is the controller surface used by screens.
type Driver interface {
	Signals
	SetUpdateCallback(func(model.PlaybackSession))
	Open(req Request) (model.PlaybackSession, error)
	Session() (model.PlaybackSession, bool)
	State() model.PlaybackState
	Close()
}
