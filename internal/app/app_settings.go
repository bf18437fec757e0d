package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/config"
	"github.com/andyrewlee/carousel/internal/messages"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

// cycleTheme switches to the next built-in theme and saves it. Choosing a
// theme in the app replaces a --theme flag for the rest of the session.
func (a *App) cycleTheme() tea.Cmd {
	themes := common.AvailableThemes()
	next := themes[0]
	for i, t := range themes {
		if string(t.ID) == a.cfg.UI.Theme {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	a.overrides.Theme = ""
	id := string(next.ID)
	return a.saveUI(config.UIChange{Theme: &id}, "Theme: "+next.Name)
}

func (a *App) toggleKeymapHints() tea.Cmd {
	show := !a.cfg.UI.ShowKeymapHints
	label := "Key hints hidden"
	if show {
		label = "Key hints shown"
	}
	return a.saveUI(config.UIChange{ShowKeymapHints: &show}, label)
}

// saveUI applies ch right away; a failed write still keeps it for the session.
func (a *App) saveUI(ch config.UIChange, label string) tea.Cmd {
	err := a.cfg.SaveUISettings(ch)
	a.applyConfig(a.cfg)
	if err != nil {
		return a.handleErrorMessage(messages.Error{Err: fmt.Errorf("save settings: %w", err), Context: "config"})
	}
	return a.toast.ShowInfo(label)
}
