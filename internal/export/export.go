// Package export renders deck slides to PNG frames, one per slide, as the
// carousel shows them in a terminal of the configured size.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/andyrewlee/carousel/internal/deck"
	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/ui/carousel"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

// Cell size in pixels for basicfont.Face7x13.
const (
	cellWidth  = 7
	cellHeight = 13
)

// ErrEmptyDeck is returned when there is nothing to export.
var ErrEmptyDeck = errors.New("deck has no slides")

// Options controls frame size and colors.
type Options struct {
	Width  int // terminal columns
	Height int // terminal rows
	Dir    string
	Theme  common.Theme
}

// DefaultOptions exports 80×24 frames into dir.
func DefaultOptions(dir string) Options {
	return Options{
		Width:  80,
		Height: 24,
		Dir:    dir,
		Theme:  common.GetTheme(common.ThemeTokyoNight),
	}
}

// Frames writes frame-NNN.png for every slide of d and returns the paths
// in slide order.
func Frames(d *deck.Deck, opts Options) ([]string, error) {
	if d.Len() == 0 {
		return nil, ErrEmptyDeck
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", opts.Dir, err)
	}

	slides := make([]carousel.Slide, d.Len())
	for i, s := range d.Slides {
		slides[i] = s
	}
	copts := carousel.DefaultOptions()
	copts.AutoPlay = false
	m := carousel.New(slides, copts)
	m.SetStyles(common.StylesFor(opts.Theme))
	m.SetSize(opts.Width, opts.Height)

	paths := make([]string, 0, d.Len())
	for i := range d.Slides {
		m.GoTo(i)
		// Resizing snaps the track to the new index.
		m.SetSize(opts.Width, opts.Height)

		img := Render(m.View(), opts)
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame-%03d.png", i+1))
		if err := writePNG(path, img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	logging.Info("Exported %d frames to %s", len(paths), opts.Dir)
	return paths, nil
}

// Render draws terminal output onto an image of Width × Height cells.
// Styling is dropped; text uses the theme foreground.
func Render(view string, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width*cellWidth, opts.Height*cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(opts.Theme.Colors.Background)), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toRGBA(opts.Theme.Colors.Foreground)),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()

	for row, line := range strings.Split(ansi.Strip(view), "\n") {
		if row >= opts.Height {
			break
		}
		col := 0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if col+w > opts.Width {
				break
			}
			if r != ' ' && w > 0 {
				drawer.Dot = fixed.P(col*cellWidth, row*cellHeight+ascent)
				drawer.DrawString(string(r))
			}
			col += w
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
