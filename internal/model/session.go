package model

import (
	"time"
)

// FallbackTitleSuffix is appended to the title of a session started from a fallback source
const FallbackTitleSuffix = " (Fallback)"

// PlaybackErrorMessage is the user-visible message once every source failed
const PlaybackErrorMessage = "Unable to play this stream."

// PlaybackSession is the live state of one playback attempt
type PlaybackSession struct {
	ID          string
	LineageID   string // shared by a session and the fallback session that replaced it
	SourceURL   string
	FallbackURL string
	Title       string
	State       PlaybackState
	LastError   string
	Buffering   bool
	StartedAt   time.Time
}

// FallbackExhausted returns true when the active source already is the fallback
// or when there never was one.
func (s *PlaybackSession) FallbackExhausted() bool {
	return s.FallbackURL == "" || s.SourceURL == s.FallbackURL
}

// CanFallback returns true if a load error on the active source may switch to the fallback
func (s *PlaybackSession) CanFallback() bool {
	return !s.FallbackExhausted()
}

// IsFallback returns true if the session plays the fallback source of its lineage
func (s *PlaybackSession) IsFallback() bool {
	return s.FallbackURL != "" && s.SourceURL == s.FallbackURL
}
