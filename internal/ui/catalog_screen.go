package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-catalog/internal/catalog"
	"github.com/ytget/video-catalog/internal/model"
)

// CatalogScreen is the home grid with its loading and error states
type CatalogScreen struct {
	localization *Localization
	status       model.CatalogStatus

	// UI components
	content      *fyne.Container
	loadingView  *fyne.Container
	loadingLabel *widget.Label
	spinner      *widget.ProgressBarInfinite
	errorView    *fyne.Container
	errorLabel   *widget.Label
	retryBtn     *widget.Button
	emptyLabel   *widget.Label
	grid         *fyne.Container
	gridView     *container.Scroll
	tiles        []*VideoTile
	metrics      GridMetrics

	// Callbacks
	onPlay    func(model.CatalogEntry)
	onDetails func(model.CatalogEntry)
	onRetry   func()
}

// NewCatalogScreen creates the home screen in the loading state
func NewCatalogScreen(localization *Localization, onPlay, onDetails func(model.CatalogEntry), onRetry func()) *CatalogScreen {
	s := &CatalogScreen{
		localization: localization,
		status:       model.CatalogStatusLoading,
		onPlay:       onPlay,
		onDetails:    onDetails,
		onRetry:      onRetry,
		metrics:      ComputeGridMetrics(WindowWidth),
	}
	s.createUI()
	s.showStatus(model.CatalogStatusLoading)
	return s
}

func (s *CatalogScreen) createUI() {
	s.spinner = widget.NewProgressBarInfinite()
	s.loadingLabel = widget.NewLabel(s.localization.GetText(KeyLoadingCatalog))
	s.loadingLabel.Alignment = fyne.TextAlignCenter
	s.loadingView = container.NewCenter(container.NewVBox(s.spinner, s.loadingLabel))

	s.errorLabel = widget.NewLabel(s.localization.GetText(KeyCatalogLoadFailed))
	s.errorLabel.Alignment = fyne.TextAlignCenter
	s.errorLabel.Importance = widget.DangerImportance
	s.retryBtn = widget.NewButton(IconRetry+" "+s.localization.GetText(KeyRetry), func() {
		if s.onRetry != nil {
			s.onRetry()
		}
	})
	s.retryBtn.Importance = widget.HighImportance
	s.errorView = container.NewCenter(container.NewVBox(s.errorLabel, container.NewHBox(layout.NewSpacer(), s.retryBtn, layout.NewSpacer())))

	s.emptyLabel = widget.NewLabel(s.localization.GetText(KeyEmptyCatalog))
	s.emptyLabel.Alignment = fyne.TextAlignCenter

	s.grid = container.New(newCatalogGridLayout(s.applyMetrics))
	s.gridView = container.NewVScroll(container.NewVBox(s.grid, s.emptyLabel))

	s.content = container.NewStack(s.loadingView, s.errorView, s.gridView)
}

// Content returns the screen root
func (s *CatalogScreen) Content() fyne.CanvasObject {
	return s.content
}

// Status returns the status currently displayed
func (s *CatalogScreen) Status() model.CatalogStatus {
	return s.status
}

// Tiles returns the tiles currently displayed
func (s *CatalogScreen) Tiles() []*VideoTile {
	return s.tiles
}

// Update renders a loader snapshot. Must run on the Fyne thread.
func (s *CatalogScreen) Update(snapshot catalog.Snapshot) {
	if snapshot.Status == model.CatalogStatusLoaded {
		s.setEntries(snapshot.Entries)
	}
	s.showStatus(snapshot.Status)
}

// RefreshTexts re-reads localized strings
func (s *CatalogScreen) RefreshTexts() {
	s.loadingLabel.SetText(s.localization.GetText(KeyLoadingCatalog))
	s.errorLabel.SetText(s.localization.GetText(KeyCatalogLoadFailed))
	s.retryBtn.SetText(IconRetry + " " + s.localization.GetText(KeyRetry))
	s.emptyLabel.SetText(s.localization.GetText(KeyEmptyCatalog))
}

func (s *CatalogScreen) setEntries(entries []model.CatalogEntry) {
	s.tiles = make([]*VideoTile, 0, len(entries))
	objects := make([]fyne.CanvasObject, 0, len(entries))
	for _, entry := range entries {
		tile := NewVideoTile(entry, s.localization, s.onPlay, s.onDetails)
		tile.SetMetrics(s.metrics)
		s.tiles = append(s.tiles, tile)
		objects = append(objects, tile)
	}
	s.grid.Objects = objects
	s.grid.Refresh()

	if len(entries) == 0 {
		s.emptyLabel.Show()
	} else {
		s.emptyLabel.Hide()
	}
}

func (s *CatalogScreen) applyMetrics(m GridMetrics) {
	s.metrics = m
	for _, tile := range s.tiles {
		tile.SetMetrics(m)
	}
}

func (s *CatalogScreen) showStatus(status model.CatalogStatus) {
	s.status = status
	s.loadingView.Hide()
	s.errorView.Hide()
	s.gridView.Hide()
	s.spinner.Stop()

	switch status {
	case model.CatalogStatusLoading:
		s.spinner.Start()
		s.loadingView.Show()
	case model.CatalogStatusError:
		s.errorView.Show()
	case model.CatalogStatusLoaded:
		s.gridView.Show()
	}
}
