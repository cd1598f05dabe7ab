package model

// Package model defines domain data structures used across the app: catalog
// entries, playback sessions, and the status enums that drive the screens.
// Structures are plain values so the UI can render snapshots directly.
