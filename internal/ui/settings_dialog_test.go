package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/video-catalog/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), window, nil)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialog_NoChange(t *testing.T) {
	sd, _ := newTestSettingsDialog(t)

	change := sd.apply()
	assert.False(t, change.Any())
}

func TestSettingsDialog_SourceChange(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.sourceSelect.SetSelected(string(config.SourcePlaylist))
	sd.playlistEntry.SetText("PL123")

	change := sd.apply()
	assert.True(t, change.Source)
	assert.False(t, change.Language)
	assert.Equal(t, config.SourcePlaylist, settings.GetCatalogSource())
	assert.Equal(t, "PL123", settings.GetPlaylistID())
}

func TestSettingsDialog_DelayIgnoresGarbage(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	before := settings.GetFetchDelayMS()

	sd.delayEntry.SetText("soon")
	assert.False(t, sd.apply().Any())
	assert.Equal(t, before, settings.GetFetchDelayMS())

	sd.delayEntry.SetText("0")
	assert.True(t, sd.apply().Source)
	assert.Equal(t, 0, settings.GetFetchDelayMS())
}

func TestSettingsDialog_LanguageAndLogLevel(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	sd.languageSelect.SetSelected("ru")
	sd.logLevelSelect.SetSelected("debug")

	change := sd.apply()
	assert.Equal(t, SettingsChange{Language: true, LogLevel: true}, change)
	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, "debug", settings.GetLogLevel())
}

func TestSettingsDialog_SaveNotifies(t *testing.T) {
	sd, _ := newTestSettingsDialog(t)
	var got []SettingsChange
	sd.onSaved = func(change SettingsChange) { got = append(got, change) }

	sd.onSave(false)
	sd.onSave(true)
	assert.Empty(t, got)

	sd.logLevelSelect.SetSelected("warn")
	sd.onSave(true)
	assert.Equal(t, []SettingsChange{{LogLevel: true}}, got)
}
