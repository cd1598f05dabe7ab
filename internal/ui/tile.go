package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-catalog/internal/model"
)

// VideoTile is one catalog grid cell
type VideoTile struct {
	widget.BaseWidget

	entry        model.CatalogEntry
	localization *Localization

	// UI components
	thumbnail  *canvas.Rectangle
	badge      *canvas.Text
	titleLabel *widget.Label
	metaText   *canvas.Text
	playBtn    *widget.Button
	detailsBtn *widget.Button

	// Callbacks
	onPlay    func(model.CatalogEntry)
	onDetails func(model.CatalogEntry)
}

var _ fyne.Tappable = (*VideoTile)(nil)

// NewVideoTile creates a tile for an entry
func NewVideoTile(entry model.CatalogEntry, localization *Localization, onPlay, onDetails func(model.CatalogEntry)) *VideoTile {
	t := &VideoTile{
		entry:        entry,
		localization: localization,
		onPlay:       onPlay,
		onDetails:    onDetails,
	}
	t.ExtendBaseWidget(t)
	t.createUI()
	return t
}

// Entry returns the entry shown by the tile
func (t *VideoTile) Entry() model.CatalogEntry {
	return t.entry
}

func (t *VideoTile) createUI() {
	t.thumbnail = canvas.NewRectangle(ColorButton)
	t.thumbnail.CornerRadius = TileCornerRadius

	t.badge = canvas.NewText(IconPlay, ColorMuted)
	t.badge.Alignment = fyne.TextAlignCenter
	t.badge.TextSize = DetailsTitleFont

	t.titleLabel = widget.NewLabel(t.entry.Title)
	t.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	t.titleLabel.Truncation = fyne.TextTruncateEllipsis

	t.metaText = canvas.NewText(t.entry.DurationLabel(), ColorMuted)
	t.metaText.TextSize = TileMetaFont

	t.playBtn = widget.NewButton(IconPlay+" "+t.localization.GetText(KeyPlay), func() {
		if t.onPlay != nil {
			t.onPlay(t.entry)
		}
	})
	t.playBtn.Importance = widget.HighImportance

	t.detailsBtn = widget.NewButton(IconInfo+" "+t.localization.GetText(KeyDetails), func() {
		if t.onDetails != nil {
			t.onDetails(t.entry)
		}
	})
	t.detailsBtn.Importance = widget.MediumImportance
}

// SetMetrics applies the grid geometry to the tile
func (t *VideoTile) SetMetrics(m GridMetrics) {
	t.thumbnail.SetMinSize(fyne.NewSize(0, m.TileWidth/ThumbnailAspect))
	t.metaText.TextSize = m.ScaledFont(TileMetaFont)
	t.badge.TextSize = m.ScaledFont(DetailsTitleFont)
	t.metaText.Refresh()
	t.Refresh()
}

// Tapped opens the details of the entry
func (t *VideoTile) Tapped(*fyne.PointEvent) {
	if t.onDetails != nil {
		t.onDetails(t.entry)
	}
}

// CreateRenderer implements fyne.Widget
func (t *VideoTile) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(ColorSurface)
	background.CornerRadius = TileCornerRadius

	thumb := container.NewStack(t.thumbnail, container.NewCenter(t.badge))
	buttons := container.NewHBox(layout.NewSpacer(), t.playBtn, t.detailsBtn, layout.NewSpacer())
	body := container.NewVBox(
		thumb,
		t.titleLabel,
		container.NewPadded(t.metaText),
		buttons,
	)
	return widget.NewSimpleRenderer(container.NewStack(background, container.NewPadded(body)))
}
