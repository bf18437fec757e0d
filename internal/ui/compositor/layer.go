// Package compositor layers styled strings onto a lipgloss canvas.
package compositor

import (
	"image/color"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Layer is a styled ANSI block placed at a screen position. Cells outside
// the layer's clip box are not written.
type Layer struct {
	lines  []string
	x, y   int
	width  int
	height int
	clipW  int
	clipH  int
}

var _ uv.Drawable = (*Layer)(nil)

// NewLayer creates a layer from content at (x, y).
func NewLayer(content string, x, y int) *Layer {
	lines := strings.Split(content, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	return &Layer{
		lines:  lines,
		x:      x,
		y:      y,
		width:  width,
		height: len(lines),
		clipW:  -1,
		clipH:  -1,
	}
}

// Clip limits drawing to w × h cells from the layer origin.
func (l *Layer) Clip(w, h int) *Layer {
	l.clipW, l.clipH = w, h
	return l
}

// Size returns the layer's content dimensions.
func (l *Layer) Size() (int, int) { return l.width, l.height }

// Draw writes the layer's cells onto screen within r.
func (l *Layer) Draw(screen uv.Screen, r uv.Rectangle) {
	maxX, maxY := r.Max.X, r.Max.Y
	if l.clipW >= 0 {
		maxX = min(maxX, l.x+l.clipW)
	}
	if l.clipH >= 0 {
		maxY = min(maxY, l.y+l.clipH)
	}

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	for row, line := range l.lines {
		y := l.y + row
		if y < r.Min.Y || y >= maxY {
			continue
		}
		var style uv.Style
		var state byte
		x := l.x
		for len(line) > 0 && x < maxX {
			seq, width, n, next := ansi.DecodeSequence(line, state, p)
			if n == 0 {
				break
			}
			if width == 0 {
				if ansi.Cmd(p.Command()).Final() == 'm' {
					style = applySGR(style, p.Params())
				}
			} else {
				if x >= r.Min.X && x+width <= maxX {
					cell := getCell()
					cell.Content = seq
					cell.Style = style
					cell.Width = width
					screen.SetCell(x, y, cell)
					putCell(cell)
				}
				x += width
			}
			line = line[n:]
			state = next
		}
	}
}

// applySGR folds one SGR sequence into style.
func applySGR(style uv.Style, params ansi.Params) uv.Style {
	if len(params) == 0 {
		return uv.Style{}
	}
	for i := 0; i < len(params); i++ {
		p, _, _ := params.Param(i, 0)
		switch {
		case p == 0:
			style = uv.Style{}
		case p == 1:
			style.Attrs |= uv.AttrBold
		case p == 2:
			style.Attrs |= uv.AttrFaint
		case p == 3:
			style.Attrs |= uv.AttrItalic
		case p == 4:
			style.Underline = uv.UnderlineSingle
		case p == 7:
			style.Attrs |= uv.AttrReverse
		case p == 9:
			style.Attrs |= uv.AttrStrikethrough
		case p == 22:
			style.Attrs &^= uv.AttrBold | uv.AttrFaint
		case p == 23:
			style.Attrs &^= uv.AttrItalic
		case p == 24:
			style.Underline = uv.UnderlineNone
		case p == 27:
			style.Attrs &^= uv.AttrReverse
		case p == 29:
			style.Attrs &^= uv.AttrStrikethrough
		case p >= 30 && p <= 37:
			style.Fg = ansi.IndexedColor(p - 30)
		case p >= 90 && p <= 97:
			style.Fg = ansi.IndexedColor(p - 90 + 8)
		case p == 39:
			style.Fg = nil
		case p >= 40 && p <= 47:
			style.Bg = ansi.IndexedColor(p - 40)
		case p >= 100 && p <= 107:
			style.Bg = ansi.IndexedColor(p - 100 + 8)
		case p == 49:
			style.Bg = nil
		case p == 38 || p == 48:
			c, used := extendedColor(params, i)
			if p == 38 {
				style.Fg = c
			} else {
				style.Bg = c
			}
			i += used
		}
	}
	return style
}

// extendedColor parses the 256-color or truecolor arguments following
// params[i]. It returns the color and the number of parameters consumed.
func extendedColor(params ansi.Params, i int) (color.Color, int) {
	if i+2 >= len(params) {
		return nil, 0
	}
	mode, _, _ := params.Param(i+1, 0)
	switch {
	case mode == 5:
		idx, _, _ := params.Param(i+2, 0)
		return ansi.IndexedColor(idx), 2
	case mode == 2 && i+4 < len(params):
		rv, _, _ := params.Param(i+2, 0)
		gv, _, _ := params.Param(i+3, 0)
		bv, _, _ := params.Param(i+4, 0)
		return ansi.TrueColor(uint32(rv)<<16 | uint32(gv)<<8 | uint32(bv)), 4
	}
	return nil, 0
}
