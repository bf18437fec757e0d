package carousel

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/perf"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

const frameInterval = time.Second / 60

type frameKind int

const (
	frameDrag frameKind = iota
	frameTransition
)

// frameMsg is one tick of a per-frame loop.
type frameMsg struct {
	id   int
	tag  int
	kind frameKind
	at   time.Time
}

// Next advances to the following slide, wrapping after the last one.
func (m *Model) Next() tea.Cmd {
	if !m.mounted() {
		return nil
	}
	prev := m.index
	m.index = (m.index + 1) % len(m.slides)
	return m.navigated(prev)
}

// Prev moves to the preceding slide, wrapping before the first one.
func (m *Model) Prev() tea.Cmd {
	if !m.mounted() {
		return nil
	}
	prev := m.index
	m.index = (m.index - 1 + len(m.slides)) % len(m.slides)
	return m.navigated(prev)
}

// GoTo jumps to slide i, clamped into range.
func (m *Model) GoTo(i int) tea.Cmd {
	if !m.mounted() {
		return nil
	}
	prev := m.index
	m.index = clamp(i, 0, len(m.slides)-1)
	return m.navigated(prev)
}

func (m *Model) navigated(prev int) tea.Cmd {
	return common.SafeBatch(m.render(true), m.restartTimer(), m.changed(prev))
}

// render points the track at the active slide and moves the active markers.
// With animate set the displayed offset eases toward the new target;
// otherwise, and always while dragging, it jumps.
func (m *Model) render(animate bool) tea.Cmd {
	if !m.mounted() {
		return nil
	}
	for i := range m.slides {
		m.slideMarks[i] = i == m.index
		m.dotMarks[i] = i == m.index
	}

	target := -m.index * m.viewportWidth()
	m.committed = target
	m.drag.live = target

	if m.drag.active || !animate || m.opts.TransitionDuration <= 0 || m.display == target {
		m.cancelTransition()
		m.display = target
		return nil
	}

	m.anim = transition{active: true, from: m.display, to: target, start: m.now()}
	m.transitionTag++
	return m.frame(frameTransition, m.transitionTag)
}

func (m *Model) cancelTransition() {
	if m.anim.active {
		m.anim.active = false
		m.transitionTag++
	}
}

func (m *Model) frame(kind frameKind, tag int) tea.Cmd {
	id := m.id
	return common.SafeTick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag, kind: kind, at: t}
	})
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.id != m.id {
		return nil
	}
	switch msg.kind {
	case frameDrag:
		if !m.drag.active || msg.tag != m.dragTag {
			return nil
		}
		perf.Count("carousel_drag_frame", 1)
		m.display = m.drag.live
		return m.frame(frameDrag, m.dragTag)
	case frameTransition:
		if !m.anim.active || msg.tag != m.transitionTag {
			return nil
		}
		p := float64(msg.at.Sub(m.anim.start)) / float64(m.opts.TransitionDuration)
		if p >= 1 {
			m.display = m.anim.to
			m.anim.active = false
			return nil
		}
		delta := float64(m.anim.to-m.anim.from) * easeOutCubic(p)
		m.display = m.anim.from + int(math.Round(delta))
		return m.frame(frameTransition, m.transitionTag)
	}
	return nil
}

func easeOutCubic(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	inv := 1 - p
	return 1 - inv*inv*inv
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
