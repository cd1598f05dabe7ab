package ui

import (
	"math"

	"fyne.io/fyne/v2"
)

// Grid sizing derived from the window width
const (
	GridBaseTileWidth  float32 = 250
	GridTileGutter     float32 = 20
	GridEdgeInset      float32 = 48
	GridTileMaxWidth   float32 = 320
	GridMinColumns             = 2
	GridReferenceWidth float32 = 1080
	GridTileSpacing    float32 = 16
)

// GridMetrics holds the tile geometry for a given screen width
type GridMetrics struct {
	Width        float32
	TileWidth    float32
	Columns      int
	TileMinWidth float32
	TileMaxWidth float32
	FontScale    float32
}

// ComputeGridMetrics derives the tile geometry for a screen width
func ComputeGridMetrics(width float32) GridMetrics {
	if width < 0 {
		width = 0
	}
	tile := min(GridBaseTileWidth, width/3)

	columns := GridMinColumns
	if tile > 0 {
		columns = max(GridMinColumns, int(math.Floor(float64(width/(tile+GridTileGutter)))))
	}

	divisor := max(GridMinColumns, int(math.Floor(float64(width/GridBaseTileWidth))))

	return GridMetrics{
		Width:        width,
		TileWidth:    tile,
		Columns:      columns,
		TileMinWidth: max(0, width-GridEdgeInset) / float32(divisor),
		TileMaxWidth: GridTileMaxWidth,
		FontScale:    width / GridReferenceWidth,
	}
}

// ScaledFont scales a base font size, never going below it
func (m GridMetrics) ScaledFont(base float32) float32 {
	return max(base, base*m.FontScale)
}

// CellWidth returns the width of one grid cell, capped at TileMaxWidth
func (m GridMetrics) CellWidth(spacing float32) float32 {
	if m.Columns <= 0 {
		return 0
	}
	cell := (m.Width - spacing*float32(m.Columns+1)) / float32(m.Columns)
	if cell < 0 {
		cell = 0
	}
	return min(cell, m.TileMaxWidth)
}

// catalogGridLayout arranges tiles in rows using ComputeGridMetrics
type catalogGridLayout struct {
	spacing   float32
	lastWidth float32
	onResize  func(GridMetrics)
}

func newCatalogGridLayout(onResize func(GridMetrics)) *catalogGridLayout {
	return &catalogGridLayout{spacing: GridTileSpacing, onResize: onResize}
}

// Layout positions the tiles, centering each row
func (g *catalogGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if size.Width != g.lastWidth {
		g.lastWidth = size.Width
		if g.onResize != nil {
			g.onResize(ComputeGridMetrics(size.Width))
		}
	}

	metrics := ComputeGridMetrics(size.Width)
	cell := metrics.CellWidth(g.spacing)
	rowWidth := cell*float32(metrics.Columns) + g.spacing*float32(metrics.Columns-1)
	left := (size.Width - rowWidth) / 2

	y := g.spacing
	visible := visibleObjects(objects)
	for row := 0; row*metrics.Columns < len(visible); row++ {
		start := row * metrics.Columns
		end := min(start+metrics.Columns, len(visible))

		var rowHeight float32
		for _, obj := range visible[start:end] {
			rowHeight = max(rowHeight, obj.MinSize().Height)
		}
		for i, obj := range visible[start:end] {
			obj.Move(fyne.NewPos(left+float32(i)*(cell+g.spacing), y))
			obj.Resize(fyne.NewSize(cell, rowHeight))
		}
		y += rowHeight + g.spacing
	}
}

// MinSize reports the height needed at the last laid-out width
func (g *catalogGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := visibleObjects(objects)
	if len(visible) == 0 {
		return fyne.NewSize(0, 0)
	}

	metrics := ComputeGridMetrics(g.lastWidth)
	var minWidth float32
	for _, obj := range visible {
		minWidth = max(minWidth, obj.MinSize().Width)
	}

	height := g.spacing
	for start := 0; start < len(visible); start += metrics.Columns {
		end := min(start+metrics.Columns, len(visible))
		var rowHeight float32
		for _, obj := range visible[start:end] {
			rowHeight = max(rowHeight, obj.MinSize().Height)
		}
		height += rowHeight + g.spacing
	}
	return fyne.NewSize(minWidth+2*g.spacing, height)
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Visible() {
			visible = append(visible, obj)
		}
	}
	return visible
}
