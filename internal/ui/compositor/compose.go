package compositor

import "charm.land/lipgloss/v2"

// Surface is a reusable canvas that is cleared before every frame.
type Surface struct {
	canvas *lipgloss.Canvas
}

// Frame returns a blank canvas of the requested size.
func (s *Surface) Frame(width, height int) *lipgloss.Canvas {
	width, height = max(1, width), max(1, height)
	if s.canvas == nil {
		s.canvas = lipgloss.NewCanvas(width, height)
	} else if s.canvas.Width() != width || s.canvas.Height() != height {
		s.canvas.Resize(width, height)
	}
	s.canvas.Clear()
	return s.canvas
}

// Centered returns the origin that centers a w × h block in a box.
func Centered(boxW, boxH, w, h int) (int, int) {
	return max(0, (boxW-w)/2), max(0, (boxH-h)/2)
}
