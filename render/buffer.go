package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one compositor cell. Zero rune means "background only".
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

// Buffer is the frame compositor: renderers write palette-space cells,
// the orchestrator flushes the finished frame to the terminal once per
// tick. Compositing in linear color then converting at the edge keeps
// the fade math out of tcell's quantized space.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only when capacity is short
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Clear resets every cell to the background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Bg: RgbBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; zero Cell out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetFg writes rune and foreground, preserving the cell background.
// The hot path for text and sprites.
func (b *Buffer) SetFg(x, y int, r rune, fg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Rune = r
	cell.Fg = fg
}

// SetBg replaces the cell background, keeping any rune already placed
func (b *Buffer) SetBg(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// BlendBg mixes color into the cell background at the given alpha,
// used for glows and gradients that layer over the sky
func (b *Buffer) BlendBg(x, y int, c colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	cell := &b.cells[y*b.width+x]
	cell.Bg = Blend(cell.Bg, c, alpha)
}

// WriteString draws text left to right from x,y, clipped at the edge
func (b *Buffer) WriteString(x, y int, s string, fg colorful.Color) {
	for _, r := range s {
		b.SetFg(x, y, r, fg)
		x++
	}
}

// Flush writes the finished frame to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			cell := b.cells[row+x]
			style := tcell.StyleDefault.
				Foreground(ToTcell(cell.Fg)).
				Background(ToTcell(cell.Bg))
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
