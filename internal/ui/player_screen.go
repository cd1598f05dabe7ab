package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-catalog/internal/model"
)

// PlayerScreen renders a playback session: title, buffering overlay and an
// inline error once every source failed
type PlayerScreen struct {
	localization *Localization
	session      model.PlaybackSession

	// UI components
	titleLabel     *widget.Label
	sourceLabel    *widget.Label
	statusLabel    *widget.Label
	errorLabel     *widget.Label
	spinner        *widget.ProgressBarInfinite
	bufferingLabel *widget.Label
	overlay        *fyne.Container
	backBtn        *widget.Button
	content        *fyne.Container

	onBack func()
}

// NewPlayerScreen creates the player screen
func NewPlayerScreen(localization *Localization, onBack func()) *PlayerScreen {
	p := &PlayerScreen{
		localization: localization,
		onBack:       onBack,
	}
	p.createUI()
	return p
}

func (p *PlayerScreen) createUI() {
	p.backBtn = widget.NewButton(IconBack+" "+p.localization.GetText(KeyBack), func() {
		if p.onBack != nil {
			p.onBack()
		}
	})
	p.backBtn.Importance = widget.LowImportance

	p.titleLabel = widget.NewLabel("")
	p.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.titleLabel.Truncation = fyne.TextTruncateEllipsis

	p.errorLabel = widget.NewLabel("")
	p.errorLabel.Importance = widget.DangerImportance
	p.errorLabel.Wrapping = fyne.TextWrapWord
	p.errorLabel.Hide()

	p.sourceLabel = widget.NewLabel("")
	p.sourceLabel.Truncation = fyne.TextTruncateEllipsis
	p.sourceLabel.Importance = widget.LowImportance

	p.statusLabel = widget.NewLabel("")
	p.statusLabel.Alignment = fyne.TextAlignCenter

	p.spinner = widget.NewProgressBarInfinite()
	p.bufferingLabel = widget.NewLabel(p.localization.GetText(KeyBuffering))
	p.bufferingLabel.Alignment = fyne.TextAlignCenter
	p.overlay = container.NewStack(
		canvas.NewRectangle(ColorOverlay),
		container.NewCenter(container.NewVBox(p.spinner, p.bufferingLabel)),
	)
	p.overlay.Hide()

	surfaceBackground := canvas.NewRectangle(ColorBackground)
	surfaceBackground.SetMinSize(fyne.NewSize(0, PlayerSurfaceMinH))
	surface := container.NewStack(
		surfaceBackground,
		container.NewCenter(p.statusLabel),
		p.overlay,
	)

	header := container.NewBorder(nil, nil, p.backBtn, nil, p.titleLabel)
	footer := container.NewVBox(p.sourceLabel)
	p.content = container.NewBorder(
		container.NewVBox(header, p.errorLabel),
		footer,
		nil,
		nil,
		surface,
	)
}

// Content returns the screen root
func (p *PlayerScreen) Content() fyne.CanvasObject {
	return p.content
}

// Session returns the session currently displayed
func (p *PlayerScreen) Session() model.PlaybackSession {
	return p.session
}

// ErrorText returns the visible error message, empty when hidden
func (p *PlayerScreen) ErrorText() string {
	if !p.errorLabel.Visible() {
		return ""
	}
	return p.errorLabel.Text
}

// Buffering reports whether the buffering overlay is visible
func (p *PlayerScreen) Buffering() bool {
	return p.overlay.Visible()
}

// RefreshTexts re-reads localized strings
func (p *PlayerScreen) RefreshTexts() {
	p.backBtn.SetText(IconBack + " " + p.localization.GetText(KeyBack))
	p.bufferingLabel.SetText(p.localization.GetText(KeyBuffering))
	if p.session.State != "" {
		p.render()
	}
}

// ShowError displays an error without a session, e.g. a request with no source
func (p *PlayerScreen) ShowError(title, message string) {
	p.session = model.PlaybackSession{Title: title, State: model.PlaybackStateFailed, LastError: message}
	p.render()
}

// Update renders a session snapshot. Must run on the Fyne thread.
func (p *PlayerScreen) Update(session model.PlaybackSession) {
	if session.State == model.PlaybackStateIdle {
		// torn down; keep the last frame until the screen is replaced
		p.spinner.Stop()
		p.overlay.Hide()
		return
	}
	p.session = session
	p.render()
}

func (p *PlayerScreen) render() {
	s := p.session
	p.titleLabel.SetText(s.Title)
	p.sourceLabel.SetText(s.SourceURL)

	switch s.State {
	case model.PlaybackStateLoading:
		p.statusLabel.SetText("")
		p.errorLabel.Hide()
		p.setBuffering(true)
	case model.PlaybackStatePlaying:
		p.statusLabel.SetText(IconPlay + " " + p.localization.GetText(KeyPlaying))
		p.errorLabel.Hide()
		p.setBuffering(false)
	case model.PlaybackStateFailed:
		p.statusLabel.SetText("")
		message := s.LastError
		if message == model.PlaybackErrorMessage || message == "" {
			message = p.localization.GetText(KeyPlaybackFailed)
		}
		p.errorLabel.SetText(IconWarning + " " + message)
		p.errorLabel.Show()
		p.setBuffering(false)
	}
}

func (p *PlayerScreen) setBuffering(on bool) {
	if on {
		p.spinner.Start()
		p.overlay.Show()
		return
	}
	p.spinner.Stop()
	p.overlay.Hide()
}
