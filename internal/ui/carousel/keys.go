package carousel

import "charm.land/bubbles/v2/key"

// KeyMap holds the carousel's keyboard bindings.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns arrow-key navigation and space to pause/resume.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev")),
		Next:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Toggle: key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "pause/resume")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
