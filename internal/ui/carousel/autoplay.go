package carousel

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

// autoplayTickMsg fires when the autoplay delay elapses.
type autoplayTickMsg struct {
	id  int
	tag int
}

// startTimer schedules the next autoplay tick, cancelling any pending one.
func (m *Model) startTimer() tea.Cmd {
	m.cancelTimer()
	if !m.playing || !m.mounted() {
		return nil
	}
	m.timerTag++
	m.timerLive = true
	id, tag := m.id, m.timerTag
	return common.SafeTick(m.opts.AutoPlayDelay, func(time.Time) tea.Msg {
		return autoplayTickMsg{id: id, tag: tag}
	})
}

func (m *Model) cancelTimer() {
	if m.timerLive {
		m.timerLive = false
		m.timerTag++
	}
}

// restartTimer restarts autoplay after a navigation or a drag release
// while playing. The interaction ends a hover pause; a drag in progress
// holds the timer until release.
func (m *Model) restartTimer() tea.Cmd {
	if !m.playing || m.drag.active {
		return nil
	}
	m.pausedByHover = false
	return m.startTimer()
}

func (m *Model) handleAutoplayTick(msg autoplayTickMsg) tea.Cmd {
	if msg.id != m.id || msg.tag != m.timerTag || !m.timerLive {
		return nil
	}
	m.timerLive = false
	return m.Next()
}

// Toggle flips between Playing and Paused.
func (m *Model) Toggle() tea.Cmd {
	if m.playing {
		m.Pause()
		return nil
	}
	return m.Resume()
}

// Pause stops autoplay and switches the control to "Resume".
func (m *Model) Pause() {
	if !m.mounted() {
		return
	}
	m.playing = false
	m.pausedByHover = false
	m.cancelTimer()
	logging.Debug("carousel %d: autoplay paused at slide %d", m.id, m.index)
}

// Resume restarts autoplay and switches the control to "Pause".
func (m *Model) Resume() tea.Cmd {
	if !m.mounted() {
		return nil
	}
	m.playing = true
	m.pausedByHover = false
	logging.Debug("carousel %d: autoplay resumed at slide %d", m.id, m.index)
	if m.drag.active {
		return nil
	}
	return m.startTimer()
}

// ControlLabel returns the label the pause control currently shows.
func (m *Model) ControlLabel() string {
	if m.playing {
		return m.opts.Labels.Pause
	}
	return m.opts.Labels.Resume
}

func (m *Model) hoverEnter() {
	m.hovered = true
	if m.opts.PauseOnHover && m.playing {
		m.pausedByHover = true
		m.cancelTimer()
	}
}

func (m *Model) hoverLeave() tea.Cmd {
	m.hovered = false
	endCmd := m.endDrag()
	wasPaused := m.pausedByHover
	m.pausedByHover = false
	if !wasPaused || !m.playing || m.drag.active {
		return endCmd
	}
	return common.SafeBatch(endCmd, m.startTimer())
}
