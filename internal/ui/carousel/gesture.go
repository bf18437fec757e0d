package carousel

import (
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

// TouchPhase identifies where a touch event sits in its gesture.
type TouchPhase int

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
)

// TouchPoint is one contact point in screen cells.
type TouchPoint struct {
	X int
	Y int
}

// TouchMsg carries touch input for hosts that can produce it (a web terminal
// bridge, for instance). Terminals themselves only report mouse events.
type TouchMsg struct {
	Phase   TouchPhase
	Touches []TouchPoint
}

// pointerX extracts the horizontal screen coordinate of a pointer event.
// Mouse events carry an absolute X; touch events use their first contact
// point. Anything else has no usable coordinate.
func pointerX(msg tea.Msg) (int, bool) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return msg.X, true
	case tea.MouseMotionMsg:
		return msg.X, true
	case tea.MouseReleaseMsg:
		return msg.X, true
	case TouchMsg:
		if len(msg.Touches) == 0 {
			return 0, false
		}
		return msg.Touches[0].X, true
	}
	return 0, false
}

func (m *Model) toLocal(x, y int) (int, int) {
	return x - m.originX, y - m.originY
}

func (m *Model) contains(x, y int) bool {
	lx, ly := m.toLocal(x, y)
	return lx >= 0 && lx < m.width && ly >= 0 && ly < m.height
}

// press handles a primary-button press or touch start at screen (x, y).
// Presses on controls activate them; anything else in the viewport starts a
// drag.
func (m *Model) press(msg tea.Msg, x, y int) tea.Cmd {
	if !m.contains(x, y) {
		return nil
	}
	lx, ly := m.toLocal(x, y)
	if hit, ok := common.HitAt(m.HitRegions(), lx, ly); ok {
		return m.activate(hit.ID)
	}
	return m.startDrag(msg)
}

func (m *Model) startDrag(msg tea.Msg) tea.Cmd {
	x, ok := pointerX(msg)
	if !ok || m.drag.active {
		return nil
	}
	m.drag = dragSession{active: true, startX: x, live: m.committed}
	m.cancelTransition()
	m.display = m.committed
	m.cancelTimer()
	m.dragTag++
	return m.frame(frameDrag, m.dragTag)
}

// moveDrag tracks the pointer 1:1; the offset is neither wrapped nor clamped.
// The frame loop picks the live offset up on its next tick.
func (m *Model) moveDrag(msg tea.Msg) {
	if !m.drag.active {
		return
	}
	x, ok := pointerX(msg)
	if !ok {
		return
	}
	m.drag.live = m.committed + (x - m.drag.startX)
}

// endDrag finishes a drag, moving at most one slide when the displacement
// exceeds the swipe threshold, then snaps to the resulting slide.
func (m *Model) endDrag() tea.Cmd {
	if !m.drag.active {
		return nil
	}
	m.drag.active = false
	m.dragTag++

	moved := m.drag.live - m.committed
	threshold := m.opts.SwipeThreshold * float64(m.viewportWidth())
	prev := m.index
	switch {
	case float64(moved) < -threshold && m.index < len(m.slides)-1:
		m.index++
	case float64(moved) > threshold && m.index > 0:
		m.index--
	}
	logging.Debug("carousel %d: drag moved %d cells (threshold %.1f), slide %d -> %d",
		m.id, moved, threshold, prev, m.index)

	m.display = m.drag.live
	return common.SafeBatch(m.render(true), m.restartTimer(), m.changed(prev))
}

// trackHover turns pointer positions into enter/leave transitions. Leaving
// the widget also ends a drag in progress.
func (m *Model) trackHover(x, y int) tea.Cmd {
	inside := m.contains(x, y)
	switch {
	case inside && !m.hovered:
		m.hoverEnter()
	case !inside && m.hovered:
		return m.hoverLeave()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		hoverCmd := m.trackHover(msg.X, msg.Y)
		if msg.Button != tea.MouseLeft {
			return hoverCmd
		}
		return common.SafeBatch(hoverCmd, m.press(msg, msg.X, msg.Y))
	case tea.MouseMotionMsg:
		hoverCmd := m.trackHover(msg.X, msg.Y)
		m.moveDrag(msg)
		return hoverCmd
	case tea.MouseReleaseMsg:
		return m.endDrag()
	}
	return nil
}

func (m *Model) handleTouch(msg TouchMsg) tea.Cmd {
	switch msg.Phase {
	case TouchStart:
		if len(msg.Touches) == 0 {
			return nil
		}
		return m.press(msg, msg.Touches[0].X, msg.Touches[0].Y)
	case TouchMove:
		m.moveDrag(msg)
	case TouchEnd:
		return m.endDrag()
	}
	return nil
}
