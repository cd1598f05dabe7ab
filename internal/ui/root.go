package ui

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/video-catalog/internal/catalog"
	"github.com/ytget/video-catalog/internal/config"
	applog "github.com/ytget/video-catalog/internal/log"
	"github.com/ytget/video-catalog/internal/model"
	"github.com/ytget/video-catalog/internal/navigation"
	"github.com/ytget/video-catalog/internal/playback"
)

// SourceFactory builds the catalog source from the current settings
type SourceFactory func() (catalog.Source, error)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	logger       zerolog.Logger

	controller playback.Driver
	newSource  SourceFactory
	nav        *navigation.Navigator

	loaderMu sync.Mutex
	loader   *catalog.Loader

	// Screens
	header  *fyne.Container
	body    *fyne.Container
	home    *CatalogScreen
	player  *PlayerScreen
	details *DetailsScreen
	current navigation.Screen

	titleLabel  *widget.Label
	settingsBtn *widget.Button
}

// NewRootUI creates and initializes the main UI. The catalog is not fetched
// until Start.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, controller playback.Driver, newSource SourceFactory) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		logger:       applog.WithComponent("ui"),
		controller:   controller,
		newSource:    newSource,
		nav:          navigation.NewNavigator(),
		current:      navigation.Home{},
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.controller.SetUpdateCallback(ui.onSessionUpdate)
	ui.nav.SetOnChange(ui.render)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.home = NewCatalogScreen(ui.localization, ui.onPlay, ui.onDetails, ui.onRetry)
	ui.player = NewPlayerScreen(ui.localization, ui.onPlayerBack)

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(ui.settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, ui.settingsBtn)
	}
	ui.header = container.NewBorder(nil, nil, left, nil, ui.titleLabel)

	ui.body = container.NewStack(ui.home.Content())
	padding := ui.mobile.GetPadding()
	content := container.NewBorder(ui.header, nil, nil, nil, container.New(layout.NewCustomPaddedLayout(padding, padding, padding, padding), ui.body))

	ui.window.SetContent(container.NewStack(canvas.NewRectangle(ColorBackground), content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReloadCatalog), ui.ReloadCatalog)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, reloadItem),
		languageMenu,
	))
}

// Start fetches the catalog
func (ui *RootUI) Start() {
	ui.ReloadCatalog()
}

// Shutdown stops playback and discards any in-flight catalog fetch
func (ui *RootUI) Shutdown() {
	ui.controller.Close()

	ui.loaderMu.Lock()
	loader := ui.loader
	ui.loader = nil
	ui.loaderMu.Unlock()

	if loader != nil {
		loader.Close()
	}
}

// ReloadCatalog rebuilds the source from settings and fetches again
func (ui *RootUI) ReloadCatalog() {
	source, err := ui.newSource()
	if err != nil {
		ui.logger.Error().Err(err).Msg("failed to build catalog source")
		source = failedSource{err: err}
	}

	loader := catalog.NewLoader(source)
	loader.SetUpdateCallback(func(snapshot catalog.Snapshot) {
		fyne.Do(func() {
			ui.home.Update(snapshot)
		})
	})

	ui.loaderMu.Lock()
	previous := ui.loader
	ui.loader = loader
	ui.loaderMu.Unlock()

	if previous != nil {
		previous.Close()
	}
	loader.Load()
}

// Navigator returns the navigation stack
func (ui *RootUI) Navigator() *navigation.Navigator {
	return ui.nav
}

// Home returns the catalog screen
func (ui *RootUI) Home() *CatalogScreen {
	return ui.home
}

// Player returns the player screen
func (ui *RootUI) Player() *PlayerScreen {
	return ui.player
}

// Details returns the last details screen, nil before the first one
func (ui *RootUI) Details() *DetailsScreen {
	return ui.details
}

func (ui *RootUI) currentLoader() *catalog.Loader {
	ui.loaderMu.Lock()
	defer ui.loaderMu.Unlock()
	return ui.loader
}

// render shows a screen. Navigation happens on the Fyne thread.
func (ui *RootUI) render(screen navigation.Screen) {
	previous := ui.current
	ui.current = screen

	if previous.Kind() == navigation.ScreenPlayer && screen.Kind() != navigation.ScreenPlayer {
		ui.controller.Close()
	}

	var content fyne.CanvasObject
	switch s := screen.(type) {
	case navigation.Home:
		content = ui.home.Content()
	case navigation.Details:
		content = ui.renderDetails(s)
	case navigation.Player:
		content = ui.renderPlayer(s)
	default:
		ui.logger.Warn().Str("screen", screen.Kind().String()).Msg("unknown screen")
		return
	}

	ui.logger.Debug().Str("screen", screen.Kind().String()).Msg("navigate")
	ui.body.Objects = []fyne.CanvasObject{content}
	ui.body.Refresh()
}

func (ui *RootUI) renderDetails(s navigation.Details) fyne.CanvasObject {
	var (
		entry model.CatalogEntry
		found bool
	)
	if loader := ui.currentLoader(); loader != nil {
		entry, found = loader.Entry(s.ItemID)
	}
	if !found {
		ui.logger.Warn().Str("item_id", s.ItemID).Msg("details requested for unknown entry")
	}

	metrics := ComputeGridMetrics(ui.window.Canvas().Size().Width)
	ui.details = NewDetailsScreen(entry, found, ui.localization, metrics, ui.onPlay, ui.onBack)
	return NewBackSwipeArea(ui.details.Content(), ui.onBack)
}

func (ui *RootUI) renderPlayer(s navigation.Player) fyne.CanvasObject {
	req := playback.Request{
		StreamURL:   s.StreamURL,
		FallbackURL: s.FallbackURL,
		Title:       s.Title,
	}
	if _, err := ui.controller.Open(req); err != nil {
		ui.logger.Error().Err(err).Str("title", s.Title).Msg("cannot open player")
		ui.player.ShowError(s.Title, err.Error())
	}
	return NewBackSwipeArea(ui.player.Content(), ui.onPlayerBack)
}

// onSessionUpdate receives controller snapshots from any goroutine
func (ui *RootUI) onSessionUpdate(session model.PlaybackSession) {
	fyne.Do(func() {
		if ui.current.Kind() != navigation.ScreenPlayer {
			return
		}
		if !ui.isActiveSnapshot(session) {
			ui.logger.Debug().Str("session_id", session.ID).Str("state", session.State.String()).Msg("dropping stale session update")
			return
		}
		ui.player.Update(session)
	})
}

// isActiveSnapshot reports whether a snapshot still describes the controller's
// session. Snapshots may be delivered after Close and Open already replaced it.
func (ui *RootUI) isActiveSnapshot(session model.PlaybackSession) bool {
	active, ok := ui.controller.Session()
	if session.State == model.PlaybackStateIdle {
		return !ok
	}
	return ok && active.ID == session.ID
}

func (ui *RootUI) onPlay(entry model.CatalogEntry) {
	ui.nav.Push(navigation.PlayerFor(entry))
}

func (ui *RootUI) onDetails(entry model.CatalogEntry) {
	ui.nav.Push(navigation.DetailsFor(entry))
}

func (ui *RootUI) onBack() {
	ui.nav.Back()
}

// onPlayerBack returns straight to the grid
func (ui *RootUI) onPlayerBack() {
	ui.nav.Reset()
}

func (ui *RootUI) onRetry() {
	if loader := ui.currentLoader(); loader != nil {
		loader.Retry()
		return
	}
	ui.ReloadCatalog()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved(change SettingsChange) {
	if change.Language {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}
	if change.LogLevel {
		if err := applog.SetLevel(ui.settings.GetLogLevel()); err != nil {
			ui.logger.Warn().Err(err).Msg("invalid log level")
		}
	}
	if change.Source {
		ui.nav.Reset()
		ui.ReloadCatalog()
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.home.RefreshTexts()
	ui.player.RefreshTexts()

	// tiles carry labels too; rebuild them from the current snapshot
	if loader := ui.currentLoader(); loader != nil {
		ui.home.Update(loader.Snapshot())
	}
	if ui.current.Kind() == navigation.ScreenDetails {
		ui.render(ui.current)
	}
}

// failedSource reports a source construction error through the loader
type failedSource struct {
	err error
}

func (s failedSource) Fetch(_ context.Context) ([]model.CatalogEntry, error) {
	return nil, s.err
}
