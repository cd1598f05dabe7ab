package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-catalog/internal/config"
)

// SettingsChange tells the caller which groups of settings were modified
type SettingsChange struct {
	Source   bool
	Language bool
	LogLevel bool
}

// Any reports whether anything changed
func (c SettingsChange) Any() bool {
	return c.Source || c.Language || c.LogLevel
}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChange)

	// UI components
	sourceSelect   *widget.Select
	fileEntry      *widget.Entry
	playlistEntry  *widget.Entry
	delayEntry     *widget.Entry
	probeCheck     *widget.Check
	languageSelect *widget.Select
	logLevelSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsChange)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sourceOptions := []string{}
	for _, kind := range sd.settings.GetSourceOptions() {
		sourceOptions = append(sourceOptions, string(kind))
	}
	sd.sourceSelect = widget.NewSelect(sourceOptions, nil)

	sd.fileEntry = widget.NewEntry()
	sd.fileEntry.SetPlaceHolder("/path/to/catalog.yaml")
	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseFile)
	fileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.fileEntry)

	sd.playlistEntry = widget.NewEntry()
	sd.playlistEntry.SetPlaceHolder("https://www.youtube.com/playlist?list=...")

	sd.delayEntry = widget.NewEntry()
	sd.delayEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxFetchDelayMS))

	sd.probeCheck = widget.NewCheck(text(KeyProbeDurations), nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyCatalogSource)+":"),
		sd.sourceSelect,

		widget.NewLabel(text(KeyCatalogFile)+":"),
		fileRow,
		sd.probeCheck,

		widget.NewLabel(text(KeyPlaylist)+":"),
		sd.playlistEntry,

		widget.NewLabel(text(KeyFetchDelay)+":"),
		sd.delayEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(text(KeyLogLevel)+":"),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 520))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.sourceSelect.SetSelected(string(sd.settings.GetCatalogSource()))
	sd.fileEntry.SetText(sd.settings.GetCatalogFile())
	sd.playlistEntry.SetText(sd.settings.GetPlaylistID())
	sd.delayEntry.SetText(strconv.Itoa(sd.settings.GetFetchDelayMS()))
	sd.probeCheck.SetChecked(sd.settings.GetProbeDurations())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onBrowseFile lets the user pick a catalog file
func (sd *SettingsDialog) onBrowseFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.fileEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	change := sd.apply()
	if sd.onSaved != nil && change.Any() {
		sd.onSaved(change)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form into settings and reports what changed
func (sd *SettingsDialog) apply() SettingsChange {
	var change SettingsChange

	if kind := config.SourceKind(sd.sourceSelect.Selected); kind != "" && kind != sd.settings.GetCatalogSource() {
		sd.settings.SetCatalogSource(kind)
		change.Source = true
	}

	if sd.fileEntry.Text != sd.settings.GetCatalogFile() {
		sd.settings.SetCatalogFile(sd.fileEntry.Text)
		change.Source = true
	}

	if sd.playlistEntry.Text != sd.settings.GetPlaylistID() {
		sd.settings.SetPlaylistID(sd.playlistEntry.Text)
		change.Source = true
	}

	if sd.probeCheck.Checked != sd.settings.GetProbeDurations() {
		sd.settings.SetProbeDurations(sd.probeCheck.Checked)
		change.Source = true
	}

	if delay, err := strconv.Atoi(sd.delayEntry.Text); err == nil && delay != sd.settings.GetFetchDelayMS() {
		sd.settings.SetFetchDelayMS(delay)
		change.Source = true
	}

	if lang := sd.languageSelect.Selected; lang != "" && lang != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(lang)
		change.Language = true
	}

	if level := sd.logLevelSelect.Selected; level != "" && level != sd.settings.GetLogLevel() {
		sd.settings.SetLogLevel(level)
		change.LogLevel = true
	}

	return change
}
