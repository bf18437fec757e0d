package deck

import (
	"strings"
	"unicode/utf8"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/carousel/internal/logging"
)

type renderKey struct {
	width  int
	height int
}

var titleStyle = lipgloss.NewStyle().Bold(true)

// Render draws the slide into a width × height box. Markdown bodies go
// through glamour; plain bodies are word-wrapped and centered.
func (s *Slide) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	key := renderKey{width: width, height: height}
	if out, ok := s.cache[key]; ok {
		return out
	}

	var lines []string
	if s.Markdown {
		lines = s.renderMarkdown(width)
	} else {
		lines = s.renderPlain(width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := strings.Join(lines, "\n")

	if s.cache == nil {
		s.cache = make(map[renderKey]string)
	}
	s.cache[key] = out
	return out
}

func (s *Slide) renderMarkdown(width int) []string {
	src := s.Body
	if s.Title != "" {
		src = "# " + s.Title + "\n\n" + src
	}
	style := s.style
	if style == "" {
		style = StyleDark
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Warn("glamour renderer for slide %s: %v", s.ID, err)
		return s.renderPlain(width)
	}
	out, err := r.Render(src)
	if err != nil {
		logging.Warn("render markdown slide %s: %v", s.ID, err)
		return s.renderPlain(width)
	}
	out = strings.Trim(out, "\n")
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func (s *Slide) renderPlain(width int) []string {
	var lines []string
	if s.Title != "" {
		for _, line := range wrap(s.Title, width) {
			lines = append(lines, titleStyle.Render(center(line, width)))
		}
		if s.Body != "" {
			lines = append(lines, "")
		}
	}
	for _, para := range strings.Split(s.Body, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}
		for _, line := range wrap(para, width) {
			lines = append(lines, center(line, width))
		}
	}
	return lines
}

// wrap breaks text into lines no wider than width cells, splitting words
// that are longer than a line.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	curW := 0
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		for ww > width {
			if curW > 0 {
				lines = append(lines, cur.String())
				cur.Reset()
				curW = 0
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if ww == 0 {
			continue
		}
		switch {
		case curW == 0:
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			curW++
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(word)
		curW += ww
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func center(line string, width int) string {
	pad := (width - runewidth.StringWidth(line)) / 2
	if pad <= 0 {
		return line
	}
	return strings.Repeat(" ", pad) + line
}
