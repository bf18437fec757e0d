// Package deck loads the slides shown by the carousel.
//
// A deck is either a YAML file listing slides, a single markdown file whose
// slides are separated by "---" lines, or a directory of markdown files with
// one slide per file.
package deck

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Glamour style names accepted in a deck's style field.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// Slide is one page of a deck.
type Slide struct {
	ID       uuid.UUID
	Title    string
	Body     string
	Markdown bool

	style string
	cache map[renderKey]string
}

// Deck is an ordered set of slides.
type Deck struct {
	Title  string
	Path   string
	Style  string
	Slides []*Slide
}

// NewSlide creates a slide with a fresh ID.
func NewSlide(title, body string, markdown bool) *Slide {
	return &Slide{
		ID:       uuid.New(),
		Title:    strings.TrimSpace(title),
		Body:     strings.Trim(body, "\n"),
		Markdown: markdown,
	}
}

// New creates a deck over slides, applying the deck style to each slide.
func New(title, style string, slides []*Slide) *Deck {
	d := &Deck{Title: title, Slides: slides}
	d.SetStyle(style)
	return d
}

// SetStyle sets the glamour style used for markdown slides.
func (d *Deck) SetStyle(style string) {
	switch style {
	case StyleDark, StyleLight, StyleNoTTY:
	default:
		style = StyleDark
	}
	d.Style = style
	for _, s := range d.Slides {
		s.style = style
		s.cache = nil
	}
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Slide returns slide i, or nil when i is out of range.
func (d *Deck) Slide(i int) *Slide {
	if d == nil || i < 0 || i >= len(d.Slides) {
		return nil
	}
	return d.Slides[i]
}

// Titles returns every slide title in order. Untitled slides are listed as
// "Slide N".
func (d *Deck) Titles() []string {
	titles := make([]string, d.Len())
	for i, s := range d.Slides {
		titles[i] = s.DisplayTitle(i)
	}
	return titles
}

// DisplayTitle returns the slide title, or a numbered placeholder.
func (s *Slide) DisplayTitle(i int) string {
	if s.Title != "" {
		return s.Title
	}
	return "Slide " + strconv.Itoa(i+1)
}

// Text returns the slide as plain text, for copying.
func (s *Slide) Text() string {
	switch {
	case s.Title == "":
		return s.Body
	case s.Body == "":
		return s.Title
	}
	return s.Title + "\n\n" + s.Body
}
