package playback

// Package playback drives a video screen through its lifecycle. The Controller
// owns one session lineage at a time, consumes load signals from a Player and
// decides, on a load error, whether to retry once with the fallback source or
// surface a user-visible error.
