package carousel

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(m *Model) autoplayTickMsg {
	return autoplayTickMsg{id: m.id, tag: m.timerTag}
}

func TestInitStartsAutoplay(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	assert.NotNil(t, m.Init())
	assert.True(t, m.Playing())
	assert.True(t, m.TimerLive())
}

func TestAutoplayDisabledStartsNoTimer(t *testing.T) {
	m := New(slides(3), Options{AutoPlay: false})
	assert.Nil(t, m.Init())
	assert.False(t, m.TimerLive())
}

func TestTimerTickAdvances(t *testing.T) {
	opts := DefaultOptions()
	opts.AutoPlayDelay = time.Millisecond
	m := New(slides(3), opts)

	msg := m.Init()()
	m.Update(msg)
	assert.Equal(t, 1, m.Index())
	assert.True(t, m.TimerLive(), "advancing restarts the timer")
}

func TestStartingTimerTwiceLeavesOneLive(t *testing.T) {
	m := New(slides(4), DefaultOptions())
	m.Init()
	first := tick(m)
	m.startTimer()
	second := tick(m)
	require.NotEqual(t, first.tag, second.tag)

	_, cmd := m.Update(first)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index(), "cancelled tick must not advance")

	m.Update(second)
	assert.Equal(t, 1, m.Index())

	// The consumed tick cannot fire again.
	m.Update(second)
	assert.Equal(t, 1, m.Index())
}

func TestNavigationRestartsTimer(t *testing.T) {
	m := New(slides(4), DefaultOptions())
	m.Init()
	before := tick(m)

	m.Next()
	m.Update(before)
	assert.Equal(t, 1, m.Index(), "tick scheduled before navigation is stale")
	assert.True(t, m.TimerLive())
}

func TestToggleOffThenOn(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.Init()
	pending := tick(m)

	m.Toggle()
	assert.False(t, m.Playing())
	assert.False(t, m.TimerLive())
	assert.Equal(t, "Resume", m.ControlLabel())
	m.Update(pending)
	assert.Equal(t, 0, m.Index())

	cmd := m.Toggle()
	require.NotNil(t, cmd)
	assert.True(t, m.Playing())
	assert.True(t, m.TimerLive())
	assert.Equal(t, "Pause", m.ControlLabel())
	assert.Equal(t, 3*time.Second, m.Options().AutoPlayDelay)

	m.Update(tick(m))
	assert.Equal(t, 1, m.Index())
}

func TestPausedCarouselNavigatesWithoutTimer(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.Init()
	m.Pause()

	m.Next()
	assert.Equal(t, 1, m.Index())
	assert.False(t, m.TimerLive())
}

func TestHoverPausesAndLeaveResumes(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.SetSize(50, 10)
	m.Init()

	m.Update(tea.MouseMotionMsg{X: 10, Y: 3})
	assert.True(t, m.Hovered())
	assert.False(t, m.TimerLive())
	assert.True(t, m.Playing(), "hover suspends the timer, not the Playing state")
	assert.Equal(t, "Pause", m.ControlLabel())

	m.Update(tea.MouseMotionMsg{X: 70, Y: 3})
	assert.False(t, m.Hovered())
	assert.True(t, m.TimerLive())
}

func TestNavigationWhileHoveredRestartsTimer(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.SetSize(50, 10)
	m.Init()

	m.Update(tea.MouseMotionMsg{X: 10, Y: 3})
	require.False(t, m.TimerLive())

	m.Next()
	assert.True(t, m.TimerLive(), "navigating ends the hover pause")

	m.Update(tea.MouseMotionMsg{X: 70, Y: 3})
	assert.True(t, m.TimerLive())
	before := m.timerTag
	m.Update(tea.MouseMotionMsg{X: 80, Y: 3})
	assert.Equal(t, before, m.timerTag, "leaving does not start a second timer")
}

func TestHoverWithoutPauseOnHoverKeepsTimer(t *testing.T) {
	opts := DefaultOptions()
	opts.PauseOnHover = false
	m := New(slides(3), opts)
	m.SetSize(50, 10)
	m.Init()

	m.Update(tea.MouseMotionMsg{X: 10, Y: 3})
	assert.True(t, m.TimerLive())
}

func TestLeaveDoesNotResumeWhenPaused(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.SetSize(50, 10)
	m.Init()

	m.Update(tea.MouseMotionMsg{X: 10, Y: 3})
	m.Pause()
	m.Update(tea.MouseMotionMsg{X: 70, Y: 3})
	assert.False(t, m.TimerLive())
}

func TestSetOptionsRestartsLiveTimer(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.Init()
	old := tick(m)

	opts := m.Options()
	opts.AutoPlayDelay = 5 * time.Second
	cmd := m.SetOptions(opts)
	require.NotNil(t, cmd)
	assert.Equal(t, 5*time.Second, m.Options().AutoPlayDelay)

	m.Update(old)
	assert.Equal(t, 0, m.Index())
}

func TestSetOptionsKeepsPausedState(t *testing.T) {
	m := New(slides(3), DefaultOptions())
	m.Init()
	m.Pause()

	opts := DefaultOptions()
	opts.AutoPlayDelay = time.Second
	assert.Nil(t, m.SetOptions(opts))
	assert.False(t, m.Playing())
}
