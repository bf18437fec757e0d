package carousel

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyrewlee/carousel/internal/ui/common"
)

func dragModel(t *testing.T, n, width, start int) *Model {
	t.Helper()
	m := New(slides(n), DefaultOptions())
	m.SetSize(width, 10)
	m.Init()
	m.GoTo(start)
	m.SetSize(width, 10)
	return m
}

func drag(m *Model, fromX, toX int) {
	m.Update(tea.MouseClickMsg{X: fromX, Y: 2, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: toX, Y: 2, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: toX, Y: 2, Button: tea.MouseLeft})
}

func TestDragPastThresholdAdvances(t *testing.T) {
	m := dragModel(t, 4, 500, 1)
	drag(m, 300, 150)
	assert.Equal(t, 2, m.Index())
	assert.False(t, m.Dragging())
	assert.Equal(t, -1000, m.Offset())
}

func TestDragWithinThresholdStays(t *testing.T) {
	m := dragModel(t, 4, 500, 1)
	drag(m, 300, 220)
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, -500, m.Offset())
}

func TestDragRightGoesBack(t *testing.T) {
	m := dragModel(t, 4, 500, 1)
	drag(m, 100, 220)
	assert.Equal(t, 0, m.Index())
}

func TestDragDoesNotWrapAtEdges(t *testing.T) {
	first := dragModel(t, 4, 500, 0)
	drag(first, 100, 400)
	assert.Equal(t, 0, first.Index())

	last := dragModel(t, 4, 500, 3)
	drag(last, 400, 50)
	assert.Equal(t, 3, last.Index())
}

func TestDragTracksPointerWithoutClamp(t *testing.T) {
	m := dragModel(t, 3, 100, 0)
	m.Update(tea.MouseClickMsg{X: 10, Y: 2, Button: tea.MouseLeft})
	require.True(t, m.Dragging())
	assert.False(t, m.Animating(), "transition is disabled while dragging")

	m.Update(tea.MouseMotionMsg{X: 60, Y: 2, Button: tea.MouseLeft})
	assert.Equal(t, 50, m.drag.live, "overscroll past the first slide is not clamped")
	assert.Equal(t, 0, m.DisplayOffset(), "display waits for the next frame")

	_, cmd := m.Update(frameMsg{id: m.id, tag: m.dragTag, kind: frameDrag})
	assert.NotNil(t, cmd, "frame loop continues while dragging")
	assert.Equal(t, 50, m.DisplayOffset())
}

func TestDragFrameLoopStopsAfterRelease(t *testing.T) {
	m := dragModel(t, 3, 100, 0)
	m.Update(tea.MouseClickMsg{X: 50, Y: 2, Button: tea.MouseLeft})
	frame := frameMsg{id: m.id, tag: m.dragTag, kind: frameDrag}
	m.Update(tea.MouseReleaseMsg{X: 50, Y: 2})

	_, cmd := m.Update(frame)
	assert.Nil(t, cmd)
}

func TestDragPausesAutoplayAndReleaseResumes(t *testing.T) {
	opts := DefaultOptions()
	opts.PauseOnHover = false
	m := New(slides(3), opts)
	m.SetSize(100, 10)
	m.Init()

	m.Update(tea.MouseClickMsg{X: 50, Y: 2, Button: tea.MouseLeft})
	assert.False(t, m.TimerLive())
	assert.True(t, m.Playing())

	m.Update(tea.MouseReleaseMsg{X: 50, Y: 2})
	assert.True(t, m.TimerLive())
}

func TestReleaseResumesAutoplayWhileHovered(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.SetSize(100, 10)
	m.Init()

	m.Update(tea.MouseMotionMsg{X: 50, Y: 2})
	m.Update(tea.MouseClickMsg{X: 50, Y: 2, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 20, Y: 2, Button: tea.MouseLeft})
	assert.False(t, m.TimerLive(), "no timer while dragging")

	m.Update(tea.MouseReleaseMsg{X: 20, Y: 2, Button: tea.MouseLeft})
	assert.True(t, m.Hovered())
	assert.True(t, m.TimerLive(), "release resumes autoplay even with the pointer inside")
	assert.Equal(t, 1, m.Index())
}

func TestIdleMoveAndReleaseAreNoops(t *testing.T) {
	m := dragModel(t, 3, 100, 1)
	_, cmd := m.Update(tea.MouseReleaseMsg{X: 10, Y: 2})
	assert.Nil(t, cmd)
	m.Update(tea.MouseMotionMsg{X: 90, Y: 2})
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, -100, m.Offset())
}

func TestLeavingWidgetEndsDrag(t *testing.T) {
	m := dragModel(t, 3, 100, 1)
	m.Update(tea.MouseClickMsg{X: 80, Y: 2, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 30, Y: 2, Button: tea.MouseLeft})
	m.Update(tea.MouseMotionMsg{X: 30, Y: 40, Button: tea.MouseLeft})

	assert.False(t, m.Dragging())
	assert.Equal(t, 2, m.Index())
}

func TestRightButtonDoesNotDrag(t *testing.T) {
	m := dragModel(t, 3, 100, 0)
	m.Update(tea.MouseClickMsg{X: 50, Y: 2, Button: tea.MouseRight})
	assert.False(t, m.Dragging())
}

func TestTouchDragUsesFirstTouchPoint(t *testing.T) {
	m := dragModel(t, 4, 500, 1)
	m.Update(TouchMsg{Phase: TouchStart, Touches: []TouchPoint{{X: 300, Y: 2}, {X: 10, Y: 2}}})
	require.True(t, m.Dragging())
	m.Update(TouchMsg{Phase: TouchMove, Touches: []TouchPoint{{X: 150, Y: 2}}})
	m.Update(TouchMsg{Phase: TouchEnd})
	assert.Equal(t, 2, m.Index())
}

func TestTouchWithoutPointsIsZeroDisplacement(t *testing.T) {
	m := dragModel(t, 4, 500, 1)
	m.Update(TouchMsg{Phase: TouchStart})
	assert.False(t, m.Dragging(), "a start without coordinates cannot anchor a drag")

	m.Update(TouchMsg{Phase: TouchStart, Touches: []TouchPoint{{X: 300, Y: 2}}})
	m.Update(TouchMsg{Phase: TouchMove})
	assert.Equal(t, m.Offset(), m.drag.live)
	m.Update(TouchMsg{Phase: TouchEnd})
	assert.Equal(t, 1, m.Index())
}

func findHit(t *testing.T, m *Model, id string) common.HitRegion {
	t.Helper()
	for _, h := range m.HitRegions() {
		if h.ID == id {
			return h
		}
	}
	t.Fatalf("no hit region %q in %+v", id, m.HitRegions())
	return common.HitRegion{}
}

func click(m *Model, h common.HitRegion) {
	m.Update(tea.MouseClickMsg{X: m.originX + h.X, Y: m.originY + h.Y, Button: tea.MouseLeft})
}

func TestControlsActivateInsteadOfDragging(t *testing.T) {
	m := New(slides(4), DefaultOptions())
	m.SetSize(80, 10)
	m.SetOrigin(5, 3)
	m.Init()

	click(m, findHit(t, m, hitNext))
	assert.False(t, m.Dragging())
	assert.Equal(t, 1, m.Index())

	click(m, findHit(t, m, hitPrev))
	assert.Equal(t, 0, m.Index())

	click(m, findHit(t, m, indicatorHitID(3)))
	assert.Equal(t, 3, m.Index())
	assert.Equal(t, 3, m.ActiveIndicator())

	click(m, findHit(t, m, hitPause))
	assert.False(t, m.Playing())
	assert.Equal(t, "Resume", m.ControlLabel())
	click(m, findHit(t, m, hitPause))
	assert.True(t, m.Playing())
}

func TestOriginOffsetsPointerCoordinates(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.SetSize(100, 10)
	m.SetOrigin(20, 5)

	m.Update(tea.MouseClickMsg{X: 10, Y: 2, Button: tea.MouseLeft})
	assert.False(t, m.Dragging(), "press left of the widget is outside")

	m.Update(tea.MouseClickMsg{X: 60, Y: 7, Button: tea.MouseLeft})
	assert.True(t, m.Dragging())
}
