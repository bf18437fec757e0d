package main

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

var (
	lastMouseMotionEvent   time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter drops repeated motion reports at the same cell. Motion
// that moves is always delivered so drags track the pointer.
func mouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	m, ok := msg.(tea.MouseMotionMsg)
	if !ok {
		return msg
	}
	if m.X != lastMouseX || m.Y != lastMouseY {
		lastMouseX, lastMouseY = m.X, m.Y
		lastMouseMotionEvent = time.Now()
		return msg
	}
	now := time.Now()
	if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
		return nil
	}
	lastMouseMotionEvent = now
	return msg
}
