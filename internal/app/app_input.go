package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/messages"
	"github.com/andyrewlee/carousel/internal/perf"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ready = true
		a.resize()
		return a, nil

	case tea.KeyPressMsg:
		perf.Count("key_press", 1)
		return a, a.handleKey(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		if a.search.Visible() || a.showHelp {
			return a, nil
		}
		return a, a.updateCarousel(msg)

	case messages.JumpToSlide:
		return a, a.carousel.GoTo(msg.Index)

	case messages.SearchCancelled:
		return a, nil

	case messages.SlideChanged:
		logging.Debug("slide %d/%d", msg.Index+1, msg.Total)
		return a, nil

	case messages.DeckChanged:
		return a, a.reloadDeck()

	case messages.ConfigChanged:
		return a, a.reloadConfig()

	case messages.Copied:
		return a, a.toast.ShowSuccess(fmt.Sprintf("Copied %q", msg.Title))

	case messages.Error:
		return a, a.handleErrorMessage(msg)

	case common.ToastDismissed:
		a.toast.Update(msg)
		return a, nil
	}

	// Ticks and frames for the carousel, cursor blinks for the prompt.
	cmds := []tea.Cmd{a.updateCarousel(msg)}
	if a.search.Visible() {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, common.SafeBatch(cmds...)
}

func (a *App) updateCarousel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.carousel, cmd = a.carousel.Update(msg)
	return cmd
}

func (a *App) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if a.search.Visible() {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return cmd
	}
	if a.showHelp {
		if key.Matches(msg, a.keymap.Help) || msg.String() == "esc" {
			a.showHelp = false
			return nil
		}
	}

	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		return tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = true
		return nil
	case key.Matches(msg, a.keymap.Search):
		return a.search.Show(a.deck)
	case key.Matches(msg, a.keymap.Copy):
		return a.copyCurrentSlide()
	case key.Matches(msg, a.keymap.Theme):
		return a.cycleTheme()
	case key.Matches(msg, a.keymap.Hints):
		return a.toggleKeymapHints()
	case key.Matches(msg, a.keymap.First):
		return a.carousel.GoTo(0)
	case key.Matches(msg, a.keymap.Last):
		return a.carousel.GoTo(a.carousel.Len() - 1)
	}
	return a.updateCarousel(msg)
}

func (a *App) copyCurrentSlide() tea.Cmd {
	idx := a.carousel.Index()
	slide := a.deck.Slide(idx)
	if slide == nil {
		return nil
	}
	text, title := slide.Text(), slide.DisplayTitle(idx)
	copyText := a.copyText
	return common.SafeCmd(func() tea.Msg {
		if err := copyText(text); err != nil {
			return messages.Error{Err: fmt.Errorf("copy slide: %w", err), Context: "clipboard"}
		}
		return messages.Copied{Title: title}
	})
}

func (a *App) handleErrorMessage(msg messages.Error) tea.Cmd {
	if msg.Err == nil {
		return nil
	}
	a.err = msg
	if !msg.Logged {
		logging.Error("Error in %s: %v", msg.Context, msg.Err)
	}
	return a.toast.ShowError(msg.Error())
}
