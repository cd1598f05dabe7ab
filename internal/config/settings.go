package config

import (
	"os"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
)

// SourceKind selects where the catalog comes from
type SourceKind string

const (
	SourceDemo     SourceKind = "demo"
	SourceFile     SourceKind = "file"
	SourcePlaylist SourceKind = "playlist"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogSource  = "catalog_source"
	KeyCatalogFile    = "catalog_file"
	KeyPlaylistID     = "catalog_playlist"
	KeyFetchDelayMS   = "fetch_delay_ms"
	KeyLanguage       = "app_language"
	KeyLogLevel       = "log_level"
	KeyProbeDurations = "probe_durations"
)

// Environment variables that override preferences for the current run
const (
	EnvCatalogSource = "VIDEO_CATALOG_SOURCE"
	EnvCatalogFile   = "VIDEO_CATALOG_FILE"
	EnvPlaylist      = "VIDEO_CATALOG_PLAYLIST"
	EnvLogLevel      = "LOG_LEVEL"
)

// Default values
const (
	DefaultCatalogSource  = SourceDemo
	DefaultFetchDelayMS   = 300
	MaxFetchDelayMS       = 10000
	DefaultLanguage       = "system"
	DefaultLogLevel       = "info"
	DefaultProbeDurations = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App

	mu        sync.RWMutex
	overrides map[string]string
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{
		app:       app,
		overrides: make(map[string]string),
	}
}

// ApplyEnv reads environment overrides. Overrides are not persisted.
func (s *Settings) ApplyEnv() {
	s.applyEnv(os.LookupEnv)
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) {
	pairs := map[string]string{
		EnvCatalogSource: KeyCatalogSource,
		EnvCatalogFile:   KeyCatalogFile,
		EnvPlaylist:      KeyPlaylistID,
		EnvLogLevel:      KeyLogLevel,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for env, key := range pairs {
		if value, ok := lookup(env); ok && strings.TrimSpace(value) != "" {
			s.overrides[key] = strings.TrimSpace(value)
		}
	}
}

func (s *Settings) override(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.overrides[key]
	return value, ok
}

func (s *Settings) clearOverride(key string) {
	s.mu.Lock()
	delete(s.overrides, key)
	s.mu.Unlock()
}

// GetCatalogSource returns the configured catalog source kind
func (s *Settings) GetCatalogSource() SourceKind {
	if value, ok := s.override(KeyCatalogSource); ok && isSourceKind(value) {
		return SourceKind(value)
	}
	kind := s.app.Preferences().String(KeyCatalogSource)
	if !isSourceKind(kind) {
		s.SetCatalogSource(DefaultCatalogSource)
		return DefaultCatalogSource
	}
	return SourceKind(kind)
}

// SetCatalogSource sets the catalog source kind. Unknown kinds fall back to demo.
func (s *Settings) SetCatalogSource(kind SourceKind) {
	if !isSourceKind(string(kind)) {
		kind = DefaultCatalogSource
	}
	s.clearOverride(KeyCatalogSource)
	s.app.Preferences().SetString(KeyCatalogSource, string(kind))
}

// GetCatalogFile returns the YAML catalog path
func (s *Settings) GetCatalogFile() string {
	if value, ok := s.override(KeyCatalogFile); ok {
		return value
	}
	return s.app.Preferences().String(KeyCatalogFile)
}

// SetCatalogFile sets the YAML catalog path
func (s *Settings) SetCatalogFile(path string) {
	s.clearOverride(KeyCatalogFile)
	s.app.Preferences().SetString(KeyCatalogFile, strings.TrimSpace(path))
}

// GetPlaylistID returns the playlist URL or ID to import
func (s *Settings) GetPlaylistID() string {
	if value, ok := s.override(KeyPlaylistID); ok {
		return value
	}
	return s.app.Preferences().String(KeyPlaylistID)
}

// SetPlaylistID sets the playlist URL or ID
func (s *Settings) SetPlaylistID(playlist string) {
	s.clearOverride(KeyPlaylistID)
	s.app.Preferences().SetString(KeyPlaylistID, strings.TrimSpace(playlist))
}

// GetFetchDelayMS returns the simulated demo fetch delay in milliseconds
func (s *Settings) GetFetchDelayMS() int {
	return s.app.Preferences().IntWithFallback(KeyFetchDelayMS, DefaultFetchDelayMS)
}

// SetFetchDelayMS sets the demo fetch delay
func (s *Settings) SetFetchDelayMS(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxFetchDelayMS {
		ms = MaxFetchDelayMS
	}
	s.app.Preferences().SetInt(KeyFetchDelayMS, ms)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	if value, ok := s.override(KeyLogLevel); ok {
		return strings.ToLower(value)
	}
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = DefaultLogLevel
	}
	s.clearOverride(KeyLogLevel)
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetProbeDurations returns whether unknown durations are looked up with ffprobe
func (s *Settings) GetProbeDurations() bool {
	return s.app.Preferences().BoolWithFallback(KeyProbeDurations, DefaultProbeDurations)
}

// SetProbeDurations sets whether unknown durations are looked up with ffprobe
func (s *Settings) SetProbeDurations(probe bool) {
	s.app.Preferences().SetBool(KeyProbeDurations, probe)
}

// GetSourceOptions returns available catalog source kinds
func (s *Settings) GetSourceOptions() []SourceKind {
	return []SourceKind{SourceDemo, SourceFile, SourcePlaylist}
}

// GetLogLevelOptions returns available log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func isSourceKind(kind string) bool {
	switch SourceKind(kind) {
	case SourceDemo, SourceFile, SourcePlaylist:
		return true
	}
	return false
}
