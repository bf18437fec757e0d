package keymap

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/andyrewlee/carousel/internal/config"
	"github.com/andyrewlee/carousel/internal/ui/carousel"
)

// Action identifies a configurable keybinding.
type Action string

const (
	ActionPrev   Action = "prev"
	ActionNext   Action = "next"
	ActionToggle Action = "toggle"
	ActionFirst  Action = "first"
	ActionLast   Action = "last"

	ActionSearch Action = "search"
	ActionCopy   Action = "copy"
	ActionTheme  Action = "theme"
	ActionHints  Action = "hints"
	ActionHelp   Action = "help"
	ActionQuit   Action = "quit"
)

type bindingDef struct {
	action Action
	keys   []string
	desc   string
}

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	First  key.Binding
	Last   key.Binding

	Search key.Binding
	Copy   key.Binding
	Theme  key.Binding
	Hints  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var defaults = []bindingDef{
	{action: ActionPrev, keys: []string{"left", "h"}, desc: "prev"},
	{action: ActionNext, keys: []string{"right", "l"}, desc: "next"},
	{action: ActionToggle, keys: []string{"space", "p"}, desc: "pause/resume"},
	{action: ActionFirst, keys: []string{"home", "g"}, desc: "first"},
	{action: ActionLast, keys: []string{"end", "G"}, desc: "last"},
	{action: ActionSearch, keys: []string{"/"}, desc: "search"},
	{action: ActionCopy, keys: []string{"y"}, desc: "copy slide"},
	{action: ActionTheme, keys: []string{"t"}, desc: "next theme"},
	{action: ActionHints, keys: []string{"H"}, desc: "key hints"},
	{action: ActionHelp, keys: []string{"?"}, desc: "help"},
	{action: ActionQuit, keys: []string{"q", "ctrl+c"}, desc: "quit"},
}

// New builds a keymap from defaults, applying any user overrides.
func New(cfg config.KeyMapConfig) KeyMap {
	var km KeyMap
	for _, def := range defaults {
		*km.field(def.action) = bindingFromDef(cfg, def)
	}
	return km
}

func (km *KeyMap) field(action Action) *key.Binding {
	switch action {
	case ActionPrev:
		return &km.Prev
	case ActionNext:
		return &km.Next
	case ActionToggle:
		return &km.Toggle
	case ActionFirst:
		return &km.First
	case ActionLast:
		return &km.Last
	case ActionSearch:
		return &km.Search
	case ActionCopy:
		return &km.Copy
	case ActionTheme:
		return &km.Theme
	case ActionHints:
		return &km.Hints
	case ActionHelp:
		return &km.Help
	case ActionQuit:
		return &km.Quit
	}
	return nil
}

func bindingFromDef(cfg config.KeyMapConfig, def bindingDef) key.Binding {
	keys, ok := cfg.BindingFor(string(def.action))
	if !ok || len(keys) == 0 {
		keys = def.keys
	}
	helpKey := strings.Join(keys, "/")
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, def.desc),
	)
}

// Carousel returns the subset of bindings the carousel widget handles itself.
func (km KeyMap) Carousel() carousel.KeyMap {
	return carousel.KeyMap{
		Prev:   km.Prev,
		Next:   km.Next,
		Toggle: km.Toggle,
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Toggle, km.Search, km.Help, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Prev, km.Next, km.First, km.Last},
		{km.Toggle, km.Search, km.Copy},
		{km.Theme, km.Hints, km.Help, km.Quit},
	}
}

// PrimaryKey returns the first key in the binding, if present.
func PrimaryKey(binding key.Binding) string {
	keys := binding.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// BindingHint returns a single key hint for a binding, falling back to help text.
func BindingHint(binding key.Binding) string {
	key := PrimaryKey(binding)
	if key == "" {
		return binding.Help().Key
	}
	return key
}

// PairHint joins two bindings with a slash using their primary keys.
func PairHint(a, b key.Binding) string {
	left := BindingHint(a)
	right := BindingHint(b)
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	return left + "/" + right
}

// ActionInfo describes a configurable action for UI display.
type ActionInfo struct {
	Action Action
	Desc   string
	Group  string
}

// ActionInfos returns the ordered list of actions for UI display.
func ActionInfos() []ActionInfo {
	return []ActionInfo{
		{Action: ActionPrev, Desc: "Previous slide", Group: "Slides"},
		{Action: ActionNext, Desc: "Next slide", Group: "Slides"},
		{Action: ActionFirst, Desc: "First slide", Group: "Slides"},
		{Action: ActionLast, Desc: "Last slide", Group: "Slides"},
		{Action: ActionToggle, Desc: "Pause or resume autoplay", Group: "Autoplay"},
		{Action: ActionSearch, Desc: "Search slide titles", Group: "Global"},
		{Action: ActionCopy, Desc: "Copy slide text", Group: "Global"},
		{Action: ActionTheme, Desc: "Switch to the next theme", Group: "Display"},
		{Action: ActionHints, Desc: "Show or hide footer key hints", Group: "Display"},
		{Action: ActionHelp, Desc: "Toggle help", Group: "Global"},
		{Action: ActionQuit, Desc: "Quit", Group: "Global"},
	}
}

// BindingForAction returns the binding for the given action.
func BindingForAction(km KeyMap, action Action) key.Binding {
	if b := km.field(action); b != nil {
		return *b
	}
	return key.Binding{}
}
