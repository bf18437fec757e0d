package carousel

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

const (
	hitPrev          = "prev"
	hitNext          = "next"
	hitPause         = "pause"
	hitIndicatorPref = "indicator:"
)

// Update handles messages. Keyboard navigation is global: the carousel does
// not need focus to react to its bindings.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autoplayTickMsg:
		return m, m.handleAutoplayTick(msg)
	case frameMsg:
		return m, m.handleFrame(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	if !m.mounted() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			return m, m.Prev()
		case key.Matches(msg, m.keys.Next):
			return m, m.Next()
		case key.Matches(msg, m.keys.Toggle):
			return m, m.Toggle()
		}
	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		return m, m.handleMouse(msg)
	case TouchMsg:
		return m, m.handleTouch(msg)
	}
	return m, nil
}

func (m *Model) activate(id string) tea.Cmd {
	switch id {
	case hitPrev:
		return m.Prev()
	case hitNext:
		return m.Next()
	case hitPause:
		return m.Toggle()
	}
	if raw, ok := strings.CutPrefix(id, hitIndicatorPref); ok {
		if i, err := strconv.Atoi(raw); err == nil {
			return m.GoTo(i)
		}
	}
	return nil
}

func indicatorHitID(i int) string {
	return hitIndicatorPref + strconv.Itoa(i)
}
