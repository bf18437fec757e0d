// Package search provides the slide title search prompt.
package search

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/carousel/internal/deck"
	"github.com/andyrewlee/carousel/internal/messages"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

const maxResults = 5

var (
	keyCancel = key.NewBinding(key.WithKeys("esc"))
	keyAccept = key.NewBinding(key.WithKeys("enter"))
	keyUp     = key.NewBinding(key.WithKeys("up", "ctrl+p"))
	keyDown   = key.NewBinding(key.WithKeys("down", "ctrl+n"))
)

// Model is the search overlay.
type Model struct {
	visible bool
	width   int

	input   textinput.Model
	deck    *deck.Deck
	matches []deck.Match
	cursor  int

	styles common.Styles
}

// New creates a hidden search prompt.
func New() *Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "slide title"
	input.CharLimit = 120
	input.SetWidth(30)
	return &Model{
		input:  input,
		styles: common.DefaultStyles(),
	}
}

// SetStyles sets the styles for the prompt.
func (m *Model) SetStyles(styles common.Styles) { m.styles = styles }

// SetSize sets the available width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.input.SetWidth(max(10, min(60, width-8)))
}

// Show opens the prompt over d with an empty query.
func (m *Model) Show(d *deck.Deck) tea.Cmd {
	m.visible = true
	m.deck = d
	m.input.SetValue("")
	m.matches = nil
	m.cursor = 0
	return m.input.Focus()
}

// Hide closes the prompt.
func (m *Model) Hide() {
	m.visible = false
	m.input.Blur()
}

// Visible reports whether the prompt is open.
func (m *Model) Visible() bool { return m.visible }

// Query returns the current input.
func (m *Model) Query() string { return m.input.Value() }

// Matches returns the current results, best first.
func (m *Model) Matches() []deck.Match { return m.matches }

// Update handles input while the prompt is open.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keyCancel):
		m.Hide()
		return m, func() tea.Msg { return messages.SearchCancelled{} }
	case key.Matches(keyMsg, keyAccept):
		if len(m.matches) == 0 {
			return m, nil
		}
		idx := m.matches[m.cursor].Index
		m.Hide()
		return m, func() tea.Msg { return messages.JumpToSlide{Index: idx} }
	case key.Matches(keyMsg, keyUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, keyDown):
		if m.cursor < min(len(m.matches), maxResults)-1 {
			m.cursor++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *Model) refresh() {
	m.matches = m.deck.Search(m.input.Value())
	m.cursor = 0
}

// View renders the prompt box.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	lines := []string{m.styles.Prompt.Render(m.input.View())}
	shown := m.matches
	if len(shown) > maxResults {
		shown = shown[:maxResults]
	}
	for i, match := range shown {
		if i == m.cursor {
			lines = append(lines, m.styles.Title.Render("› "+match.Title))
			continue
		}
		lines = append(lines, m.styles.Muted.Render("  "+match.Title))
	}
	if strings.TrimSpace(m.input.Value()) != "" && len(shown) == 0 {
		lines = append(lines, m.styles.Muted.Render("  no match"))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Colors.Primary).
		Padding(0, 1)
	return box.Render(strings.Join(lines, "\n"))
}
