package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-catalog/internal/model"
)

// DetailsScreen shows a single entry, or a not-found message
type DetailsScreen struct {
	entry model.CatalogEntry
	found bool

	titleText   *canvas.Text
	description *widget.Label
	infoText    *canvas.Text
	playBtn     *widget.Button
	backBtn     *widget.Button
	content     fyne.CanvasObject
}

// NewDetailsScreen builds the details view for an entry lookup result
func NewDetailsScreen(entry model.CatalogEntry, found bool, localization *Localization, metrics GridMetrics,
	onPlay func(model.CatalogEntry), onBack func()) *DetailsScreen {
	d := &DetailsScreen{entry: entry, found: found}

	d.backBtn = widget.NewButton(IconBack+" "+localization.GetText(KeyBack), onBack)
	d.backBtn.Importance = widget.MediumImportance

	if !found {
		message := widget.NewLabel(IconError + " " + localization.GetText(KeyVideoNotFound))
		message.Alignment = fyne.TextAlignCenter
		message.Importance = widget.DangerImportance
		d.content = container.NewCenter(container.NewVBox(message, container.NewCenter(d.backBtn)))
		return d
	}

	thumbnail := canvas.NewRectangle(ColorButton)
	thumbnail.CornerRadius = TileCornerRadius
	thumbnail.SetMinSize(fyne.NewSize(0, min(metrics.Width, DetailsMaxWidth)/ThumbnailAspect))

	d.titleText = canvas.NewText(entry.Title, color.White)
	d.titleText.TextStyle = fyne.TextStyle{Bold: true}
	d.titleText.TextSize = metrics.ScaledFont(DetailsTitleFont)

	d.description = widget.NewLabel(entry.Description)
	d.description.Wrapping = fyne.TextWrapWord

	d.infoText = canvas.NewText(localization.GetText(KeyDuration)+": "+entry.DurationLabel(), ColorMuted)
	d.infoText.TextSize = metrics.ScaledFont(DetailsInfoFont)

	d.playBtn = widget.NewButton(IconPlay+" "+localization.GetText(KeyPlayVideo), func() {
		if onPlay != nil {
			onPlay(entry)
		}
	})
	d.playBtn.Importance = widget.HighImportance

	body := container.NewVBox(
		container.NewStack(thumbnail, container.NewCenter(canvas.NewText(IconPlay, ColorMuted))),
		d.titleText,
		d.description,
		d.infoText,
		layout.NewSpacer(),
		d.playBtn,
		d.backBtn,
	)
	d.content = container.NewVScroll(container.NewPadded(body))
	return d
}

// Found reports whether the entry exists
func (d *DetailsScreen) Found() bool {
	return d.found
}

// Content returns the screen root
func (d *DetailsScreen) Content() fyne.CanvasObject {
	return d.content
}
