// Package app is the root bubbletea model: it hosts the carousel together
// with the search prompt, help footer and toasts, and reloads the deck and
// config when they change on disk.
package app

import (
	"sync"
	"sync/atomic"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/config"
	"github.com/andyrewlee/carousel/internal/deck"
	"github.com/andyrewlee/carousel/internal/deckwatch"
	"github.com/andyrewlee/carousel/internal/keymap"
	"github.com/andyrewlee/carousel/internal/ui/carousel"
	"github.com/andyrewlee/carousel/internal/ui/common"
	"github.com/andyrewlee/carousel/internal/ui/compositor"
	"github.com/andyrewlee/carousel/internal/ui/layout"
	"github.com/andyrewlee/carousel/internal/ui/search"
)

// Options configures an App.
type Options struct {
	Version   string
	Overrides config.Overrides
}

// App is the application model.
type App struct {
	version string

	cfg       *config.Config
	overrides config.Overrides
	keymap    keymap.KeyMap
	styles    common.Styles

	deck     *deck.Deck
	carousel *carousel.Model
	search   *search.Model
	help     help.Model
	toast    *common.ToastModel
	surface  compositor.Surface
	layout   *layout.Manager

	width    int
	height   int
	ready    bool
	quitting bool
	showHelp bool
	err      error

	watcher *deckwatch.Watcher

	externalMsgs        chan tea.Msg
	externalOnce        sync.Once
	externalSender      func(tea.Msg)
	externalDropLastLog atomic.Int64

	// Swappable for tests.
	loadDeck   func(path string) (*deck.Deck, error)
	loadConfig func(paths *config.Paths) (*config.Config, error)
	copyText   func(text string) error
}

// New creates the application over d. Command-line overrides are applied
// to cfg here and again after every config reload.
func New(cfg *config.Config, d *deck.Deck, opts Options) *App {
	if d == nil {
		d = deck.Demo()
	}
	a := &App{
		version:    opts.Version,
		overrides:  opts.Overrides,
		deck:       d,
		search:     search.New(),
		help:       help.New(),
		toast:      common.NewToastModel(),
		layout:     layout.NewManager(),
		loadDeck:   deck.Load,
		loadConfig: config.LoadFrom,
		copyText:   common.CopyToClipboard,
	}
	a.overrides.Apply(cfg)
	a.applyConfig(cfg)
	a.carousel = a.newCarousel(d)
	return a
}

// Init starts autoplay.
func (a *App) Init() tea.Cmd {
	return a.carousel.Init()
}

// Index returns the active slide.
func (a *App) Index() int { return a.carousel.Index() }

// Deck returns the deck being shown.
func (a *App) Deck() *deck.Deck { return a.deck }

// Err returns the last error surfaced to the user.
func (a *App) Err() error { return a.err }

func (a *App) applyConfig(cfg *config.Config) {
	a.cfg = cfg
	a.keymap = keymap.New(cfg.KeyMap)
	a.styles = common.StylesFor(common.GetTheme(common.ThemeID(cfg.UI.Theme)))

	a.search.SetStyles(a.styles)
	a.toast.SetStyles(a.styles)
	a.help.Styles = help.Styles{
		Ellipsis:       a.styles.Muted,
		ShortKey:       a.styles.HelpKey,
		ShortDesc:      a.styles.HelpDesc,
		ShortSeparator: a.styles.Muted,
		FullKey:        a.styles.HelpKey,
		FullDesc:       a.styles.HelpDesc,
		FullSeparator:  a.styles.Muted,
	}
	if a.carousel != nil {
		a.carousel.SetKeyMap(a.keymap.Carousel())
		a.carousel.SetStyles(a.styles)
	}
}

func (a *App) carouselOptions() carousel.Options {
	opts := carousel.DefaultOptions()
	opts.AutoPlay = a.cfg.Carousel.AutoPlay
	opts.AutoPlayDelay = a.cfg.Carousel.AutoPlayDelay
	opts.PauseOnHover = a.cfg.Carousel.PauseOnHover
	return opts
}

func (a *App) newCarousel(d *deck.Deck) *carousel.Model {
	slides := make([]carousel.Slide, d.Len())
	for i, s := range d.Slides {
		slides[i] = s
	}
	m := carousel.New(slides, a.carouselOptions())
	m.SetKeyMap(a.keymap.Carousel())
	m.SetStyles(a.styles)
	return m
}

// resize sizes the children to the window. Short windows lose the title
// row first, then the footer.
func (a *App) resize() {
	a.layout.Resize(a.width, a.height)
	a.carousel.SetOrigin(0, a.layout.CarouselY())
	a.carousel.SetSize(a.width, a.layout.CarouselHeight())
	a.search.SetSize(a.width, a.height)
	a.help.SetWidth(a.width)
}
