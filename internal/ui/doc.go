package ui

// Package ui contains the Fyne user interface: the catalog grid, the details
// view and the player view. Screens are rendered from the navigation stack;
// catalog and playback state arrive through update callbacks and are applied
// on the Fyne thread. All UI strings are localized via Localization.
