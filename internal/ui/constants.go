package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconInfo     = "ℹ"
	IconBack     = "←"
	IconError    = "❌"
	IconWarning  = "⚠"
	IconRetry    = "↻"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	Ellipsis           = "…"
)

// Layout sizing
const (
	ThumbnailAspect    float32 = 16.0 / 9.0
	TileCornerRadius   float32 = 8
	DetailsMaxWidth    float32 = 720
	PlayerSurfaceMinH  float32 = 220
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	// Base font sizes, scaled by GridMetrics.ScaledFont
	TileTitleFont     float32 = 14
	TileMetaFont      float32 = 11
	DetailsTitleFont  float32 = 24
	DetailsBodyFont   float32 = 16
	DetailsInfoFont   float32 = 14
	PlayerTitleFont   float32 = 18
	PlayerMessageFont float32 = 14
)

// Window defaults
const (
	WindowWidth  = 1080
	WindowHeight = 720
)

// Notification behaviour
const (
	NotificationAutoHide = 3 * time.Second
)
