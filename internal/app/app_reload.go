package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/deck"
	"github.com/andyrewlee/carousel/internal/deckwatch"
	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/messages"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

// Watch starts reloading the deck and config when they change on disk.
// Notifications reach the program through the sender set by SetMsgSender.
func (a *App) Watch(ctx context.Context) error {
	configPath := ""
	if a.cfg.Paths != nil {
		configPath = a.cfg.Paths.ConfigPath
	}
	w, err := deckwatch.New(a.deck.Path, configPath, a.onFileChanged)
	if err != nil {
		return fmt.Errorf("watch deck: %w", err)
	}
	a.watcher = w
	w.Start(ctx)
	logging.Info("Watching deck %q and config %q", a.deck.Path, configPath)
	return nil
}

func (a *App) onFileChanged(reason string) {
	switch reason {
	case deckwatch.ReasonDeck:
		a.enqueueExternalMsg(messages.DeckChanged{Path: a.deck.Path})
	case deckwatch.ReasonConfig:
		a.enqueueExternalMsg(messages.ConfigChanged{Path: a.cfg.Paths.ConfigPath})
	}
}

// reloadDeck swaps in the deck from disk, keeping the active slide when it
// still exists. A failed load keeps the current deck.
func (a *App) reloadDeck() tea.Cmd {
	if a.deck.Path == "" {
		return nil
	}
	d, err := a.loadDeck(a.deck.Path)
	if err != nil {
		return a.handleErrorMessage(messages.Error{Err: fmt.Errorf("reload deck: %w", err), Context: "deck"})
	}
	logging.Info("Reloaded deck %s (%d slides)", d.Path, d.Len())
	return common.SafeBatch(a.setDeck(d), a.toast.ShowInfo("Deck reloaded"))
}

func (a *App) setDeck(d *deck.Deck) tea.Cmd {
	index := a.carousel.Index()
	playing := a.carousel.Playing()

	a.deck = d
	a.carousel = a.newCarousel(d)
	a.resize()
	cmd := a.carousel.GoTo(index)
	// Snap instead of animating from the first slide.
	a.resize()
	if !playing {
		a.carousel.Pause()
	}
	return cmd
}

// reloadConfig re-reads the config file. Timing options apply to the live
// carousel without changing its Playing/Paused state.
func (a *App) reloadConfig() tea.Cmd {
	cfg, err := a.loadConfig(a.cfg.Paths)
	if err != nil {
		return a.handleErrorMessage(messages.Error{Err: fmt.Errorf("reload config: %w", err), Context: "config"})
	}
	a.overrides.Apply(cfg)
	a.applyConfig(cfg)
	logging.Info("Reloaded config %s", cfg.Paths.ConfigPath)
	return common.SafeBatch(
		a.carousel.SetOptions(a.carouselOptions()),
		a.toast.ShowInfo("Config reloaded"),
	)
}
