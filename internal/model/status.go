package model

// PlaybackState represents the lifecycle state of a playback session
type PlaybackState string

const (
	// PlaybackStateIdle means no session exists
	PlaybackStateIdle PlaybackState = "Idle"

	// PlaybackStateLoading means the player is loading the session source
	PlaybackStateLoading PlaybackState = "Loading"

	// PlaybackStatePlaying means the source loaded and a play command was issued
	PlaybackStatePlaying PlaybackState = "Playing"

	// PlaybackStateFailed means every available source failed to load
	PlaybackStateFailed PlaybackState = "Failed"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if the session still reacts to player signals
func (ps PlaybackState) IsActive() bool {
	return ps == PlaybackStateLoading || ps == PlaybackStatePlaying
}

// IsFinished returns true if no further transition can happen without a new session
func (ps PlaybackState) IsFinished() bool {
	return ps == PlaybackStateFailed
}

// CatalogStatus represents the state of the catalog fetch
type CatalogStatus string

const (
	CatalogStatusLoading CatalogStatus = "Loading"
	CatalogStatusLoaded  CatalogStatus = "Loaded"
	CatalogStatusError   CatalogStatus = "Error"
)

// String returns the string representation of CatalogStatus
func (cs CatalogStatus) String() string {
	return string(cs)
}
