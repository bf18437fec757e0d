package deck

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupported is returned for deck paths that are neither YAML, markdown
// nor a directory.
var ErrUnsupported = errors.New("unsupported deck format")

type fileSlide struct {
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	Markdown bool   `yaml:"markdown"`
}

type fileDeck struct {
	Title  string      `yaml:"title"`
	Style  string      `yaml:"style"`
	Slides []fileSlide `yaml:"slides"`
}

// Load reads a deck from path.
func Load(path string) (*Deck, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat deck: %w", err)
	}

	var d *Deck
	switch {
	case info.IsDir():
		d, err = loadDir(path)
	case isYAML(path):
		d, err = loadYAML(path)
	case isMarkdown(path):
		d, err = loadMarkdownFile(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	if err != nil {
		return nil, err
	}
	d.Path = path
	return d, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

func loadYAML(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (*Deck, error) {
	var raw fileDeck
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	slides := make([]*Slide, 0, len(raw.Slides))
	for _, fs := range raw.Slides {
		slides = append(slides, NewSlide(fs.Title, fs.Body, fs.Markdown))
	}
	return New(raw.Title, raw.Style, slides), nil
}

// Marshal encodes d in the YAML deck format.
func Marshal(d *Deck) ([]byte, error) {
	raw := fileDeck{Title: d.Title, Style: d.Style}
	for _, s := range d.Slides {
		raw.Slides = append(raw.Slides, fileSlide{Title: s.Title, Body: s.Body, Markdown: s.Markdown})
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return data, nil
}

func loadDir(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read deck dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !isMarkdown(e.Name()) || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	slides := make([]*Slide, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read slide %s: %w", name, err)
		}
		fallback := strings.TrimSuffix(name, filepath.Ext(name))
		slides = append(slides, markdownSlide(string(data), fallback))
	}
	return New(filepath.Base(dir), "", slides), nil
}

func loadMarkdownFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	parts := splitMarkdown(string(data))
	slides := make([]*Slide, 0, len(parts))
	for _, part := range parts {
		slides = append(slides, markdownSlide(part, ""))
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(title, "", slides), nil
}

// splitMarkdown splits a document on lines consisting only of "---".
// Separators inside fenced code blocks are kept as content.
func splitMarkdown(doc string) []string {
	var parts []string
	var cur strings.Builder
	inFence := false
	flush := func() {
		if text := strings.TrimSpace(cur.String()); text != "" {
			parts = append(parts, text)
		}
		cur.Reset()
	}

	sc := bufio.NewScanner(strings.NewReader(doc))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}
		if !inFence && trimmed == "---" {
			flush()
			continue
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
	}
	flush()
	return parts
}

// markdownSlide uses a leading "# " heading as the slide title.
func markdownSlide(text, fallbackTitle string) *Slide {
	text = strings.TrimSpace(text)
	first, rest, _ := strings.Cut(text, "\n")
	if title, ok := strings.CutPrefix(strings.TrimSpace(first), "# "); ok {
		return NewSlide(title, strings.TrimSpace(rest), true)
	}
	return NewSlide(fallbackTitle, text, true)
}
