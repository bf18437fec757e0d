// Package carousel implements a terminal slide carousel.
//
// The carousel shows one slide at a time inside a viewport as wide as the
// widget. Slides sit side by side on a horizontal track; the track is shifted
// by a cell offset of -index × viewportWidth to reveal the active slide.
// Navigation happens through prev/next buttons, indicator dots, the
// keyboard, mouse (or touch) drags and an autoplay timer that can be paused
// and resumed.
//
// All state is owned by a Model and mutated on the bubbletea update loop.
// Timers are tagged ticks: starting a timer bumps its tag, which invalidates
// any tick still in flight, so at most one autoplay tick and one frame loop
// of each kind is ever live.
package carousel

import (
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/carousel/internal/messages"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

const (
	defaultAutoPlayDelay      = 3000 * time.Millisecond
	defaultTransitionDuration = 450 * time.Millisecond
	defaultSwipeThreshold     = 0.2

	// controlsHeight is the number of rows below the slide area (buttons and
	// indicators, then the pause control and counter).
	controlsHeight = 2
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Slide is one item in the rotation. The carousel treats slides as opaque and
// only asks them to draw themselves into a box of the given size.
type Slide interface {
	Render(width, height int) string
}

// Labels are the accessible labels for the generated controls.
type Labels struct {
	Prev   string
	Next   string
	Pause  string
	Resume string
}

// Options configures a carousel.
type Options struct {
	AutoPlay           bool
	AutoPlayDelay      time.Duration
	PauseOnHover       bool
	TransitionDuration time.Duration
	SwipeThreshold     float64 // fraction of viewport width a drag must exceed
	Labels             Labels
}

// DefaultOptions returns the stock carousel options.
func DefaultOptions() Options {
	return Options{
		AutoPlay:           true,
		AutoPlayDelay:      defaultAutoPlayDelay,
		PauseOnHover:       true,
		TransitionDuration: defaultTransitionDuration,
		SwipeThreshold:     defaultSwipeThreshold,
		Labels: Labels{
			Prev:   "Previous slide",
			Next:   "Next slide",
			Pause:  "Pause",
			Resume: "Resume",
		},
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.AutoPlayDelay <= 0 {
		o.AutoPlayDelay = def.AutoPlayDelay
	}
	if o.TransitionDuration < 0 {
		o.TransitionDuration = 0
	}
	if o.SwipeThreshold <= 0 || o.SwipeThreshold >= 1 {
		o.SwipeThreshold = def.SwipeThreshold
	}
	if o.Labels.Prev == "" {
		o.Labels.Prev = def.Labels.Prev
	}
	if o.Labels.Next == "" {
		o.Labels.Next = def.Labels.Next
	}
	if o.Labels.Pause == "" {
		o.Labels.Pause = def.Labels.Pause
	}
	if o.Labels.Resume == "" {
		o.Labels.Resume = def.Labels.Resume
	}
	return o
}

// dragSession is the transient state of one drag gesture.
type dragSession struct {
	active bool
	startX int
	live   int
}

// transition animates the displayed offset toward the committed one.
type transition struct {
	active bool
	from   int
	to     int
	start  time.Time
}

// Model is the carousel UI model.
type Model struct {
	id     int
	slides []Slide
	opts   Options
	keys   KeyMap
	styles common.Styles
	now    func() time.Time

	width   int
	height  int
	originX int
	originY int

	index      int
	slideMarks []bool
	dotMarks   []bool

	// Autoplay: playing is the user-visible Playing/Paused state; the timer
	// may additionally be suspended by hover or an active drag.
	playing       bool
	timerTag      int
	timerLive     bool
	hovered       bool
	pausedByHover bool

	drag    dragSession
	dragTag int

	committed     int
	display       int
	anim          transition
	transitionTag int

	cache map[cacheKey][]string
}

// New creates a carousel over slides. An empty slide list yields an inert
// model: every operation is a no-op and no timer is ever started.
func New(slides []Slide, opts Options) *Model {
	m := &Model{
		id:         nextID(),
		slides:     slides,
		opts:       opts.normalized(),
		keys:       DefaultKeyMap(),
		styles:     common.DefaultStyles(),
		now:        time.Now,
		slideMarks: make([]bool, len(slides)),
		dotMarks:   make([]bool, len(slides)),
		cache:      make(map[cacheKey][]string),
	}
	m.playing = m.opts.AutoPlay && len(slides) > 0
	m.render(false)
	return m
}

// Init starts autoplay when enabled.
func (m *Model) Init() tea.Cmd {
	if !m.mounted() {
		return nil
	}
	return m.startTimer()
}

func (m *Model) mounted() bool { return len(m.slides) > 0 }

// SetKeyMap replaces the keyboard bindings.
func (m *Model) SetKeyMap(keys KeyMap) { m.keys = keys }

// KeyMap returns the keyboard bindings.
func (m *Model) KeyMap() KeyMap { return m.keys }

// SetStyles sets the styles for the carousel.
func (m *Model) SetStyles(styles common.Styles) {
	m.styles = styles
	m.cache = make(map[cacheKey][]string)
}

// SetOrigin sets the screen position of the widget's top-left cell, used to
// translate mouse coordinates into widget-local ones.
func (m *Model) SetOrigin(x, y int) { m.originX, m.originY = x, y }

// SetSize sets the widget dimensions. The track snaps to the current index
// at the new viewport width without animation.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = max(0, width), max(0, height)
	m.cache = make(map[cacheKey][]string)
	if !m.mounted() {
		return
	}
	m.committed = -m.index * m.viewportWidth()
	m.cancelTransition()
	if m.drag.active {
		m.display = m.drag.live
		return
	}
	m.drag.live = m.committed
	m.display = m.committed
}

// SetOptions applies new timing options. The Playing/Paused state is left
// alone; a running timer restarts with the new delay.
func (m *Model) SetOptions(opts Options) tea.Cmd {
	opts.AutoPlay = m.opts.AutoPlay
	if opts.Labels == (Labels{}) {
		opts.Labels = m.opts.Labels
	}
	m.opts = opts.normalized()
	if !m.opts.PauseOnHover && m.pausedByHover {
		m.pausedByHover = false
		return m.restartTimer()
	}
	if m.timerLive {
		return m.startTimer()
	}
	return nil
}

// Options returns the active options.
func (m *Model) Options() Options { return m.opts }

// Len returns the number of slides.
func (m *Model) Len() int { return len(m.slides) }

// Index returns the active slide index.
func (m *Model) Index() int { return m.index }

// Playing reports whether autoplay is in the Playing state.
func (m *Model) Playing() bool { return m.playing }

// TimerLive reports whether an autoplay tick is currently scheduled.
func (m *Model) TimerLive() bool { return m.timerLive }

// Dragging reports whether a drag gesture is in progress.
func (m *Model) Dragging() bool { return m.drag.active }

// Hovered reports whether the pointer is over the widget.
func (m *Model) Hovered() bool { return m.hovered }

// Offset returns the committed track offset in cells.
func (m *Model) Offset() int { return m.committed }

// DisplayOffset returns the offset currently drawn, which differs from
// Offset while dragging or animating.
func (m *Model) DisplayOffset() int { return m.display }

// Animating reports whether a transition is running.
func (m *Model) Animating() bool { return m.anim.active }

// ActiveSlide returns the index of the slide carrying the active marker, or
// -1 unless exactly one slide is marked.
func (m *Model) ActiveSlide() int { return singleMark(m.slideMarks) }

// ActiveIndicator returns the index of the indicator carrying the active
// marker, or -1 unless exactly one indicator is marked.
func (m *Model) ActiveIndicator() int { return singleMark(m.dotMarks) }

func singleMark(marks []bool) int {
	found := -1
	for i, on := range marks {
		if !on {
			continue
		}
		if found >= 0 {
			return -1
		}
		found = i
	}
	return found
}

func (m *Model) viewportWidth() int { return m.width }

func (m *Model) slideAreaHeight() int {
	return max(1, m.height-controlsHeight)
}

func (m *Model) changed(prev int) tea.Cmd {
	if prev == m.index {
		return nil
	}
	msg := messages.SlideChanged{Index: m.index, Total: len(m.slides)}
	return func() tea.Msg { return msg }
}
