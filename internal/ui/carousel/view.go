package carousel

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/carousel/internal/perf"
	"github.com/andyrewlee/carousel/internal/ui/common"
)

type cacheKey struct {
	index  int
	active bool
	width  int
	height int
}

// View renders the viewport followed by the control rows.
func (m *Model) View() string {
	defer perf.Time("carousel_view")()

	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if !m.mounted() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.Muted.Render("No slides"))
	}

	rows := m.viewportRows()
	controls, _ := m.controls()
	rows = append(rows, controls...)
	if len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

// viewportRows cuts the visible window out of the track at the displayed
// offset. Cells outside the track (overscroll while dragging) are blank.
func (m *Model) viewportRows() []string {
	w := m.viewportWidth()
	h := m.slideAreaHeight()
	left := -m.display
	n := len(m.slides)

	rows := make([]string, h)
	for r := 0; r < h; r++ {
		var b strings.Builder
		written := 0
		if left < 0 {
			pad := min(-left, w)
			b.WriteString(strings.Repeat(" ", pad))
			written = pad
		}
		for written < w {
			pos := left + written
			i := pos / w
			if i >= n {
				break
			}
			col := pos - i*w
			take := min(w-col, w-written)
			b.WriteString(ansi.Cut(m.slideLines(i)[r], col, col+take))
			written += take
		}
		if written < w {
			b.WriteString(strings.Repeat(" ", w-written))
		}
		rows[r] = b.String()
	}
	return rows
}

// slideLines returns slide i framed and sized to exactly one viewport.
func (m *Model) slideLines(i int) []string {
	w, h := m.viewportWidth(), m.slideAreaHeight()
	key := cacheKey{index: i, active: m.slideMarks[i], width: w, height: h}
	if lines, ok := m.cache[key]; ok {
		return lines
	}

	style := m.styles.Slide
	if key.active {
		style = m.styles.ActiveSlide
	}

	var block string
	innerW, innerH := w-2, h-2
	if innerW >= 1 && innerH >= 1 {
		content := m.slides[i].Render(innerW, innerH)
		content = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, content)
		block = style.Render(strings.Join(normalizeBlock(content, innerW, innerH), "\n"))
	} else {
		block = m.slides[i].Render(w, h)
	}

	lines := normalizeBlock(block, w, h)
	m.cache[key] = lines
	return lines
}

// HitRegions returns the clickable controls in widget-local coordinates.
func (m *Model) HitRegions() []common.HitRegion {
	_, hits := m.controls()
	return hits
}

// controls lays out the navigation row (prev, indicators, next) and the
// status row (pause control, counter).
func (m *Model) controls() ([]string, []common.HitRegion) {
	w := m.width
	y := m.slideAreaHeight()
	n := len(m.slides)

	prev := m.styles.Button.Render(common.Icons.Prev + " " + m.opts.Labels.Prev)
	next := m.styles.Button.Render(m.opts.Labels.Next + " " + common.Icons.Next)
	if lipgloss.Width(prev)+lipgloss.Width(next)+2*n+1 > w {
		prev = m.styles.Button.Render(common.Icons.Prev)
		next = m.styles.Button.Render(common.Icons.Next)
	}
	pw, nw := lipgloss.Width(prev), lipgloss.Width(next)
	nextX := max(pw, w-nw)

	hits := []common.HitRegion{
		{ID: hitPrev, X: 0, Y: y, Width: min(pw, w), Height: 1},
		{ID: hitNext, X: nextX, Y: y, Width: nw, Height: 1},
	}

	start, count, more := indicatorWindow(n, m.index, nextX-pw-2)
	var dots strings.Builder
	dotsW := 0
	dotsX := 0
	if count > 0 {
		dotsW = 2*count - 1
		if more {
			dotsW += 4
		}
		dotsX = max((w-dotsW)/2, pw+1)
		if dotsX+dotsW > nextX-1 {
			dotsX = pw + 1
		}
		first := dotsX
		if more {
			dots.WriteString(m.overflowMark(start > 0) + " ")
			first += 2
		}
		for i := start; i < start+count; i++ {
			if i > start {
				dots.WriteString(" ")
			}
			if m.dotMarks[i] {
				dots.WriteString(m.styles.ActiveIndicator.Render(common.Icons.DotActive))
			} else {
				dots.WriteString(m.styles.Indicator.Render(common.Icons.Dot))
			}
			hits = append(hits, common.HitRegion{ID: indicatorHitID(i), X: first + 2*(i-start), Y: y, Width: 1, Height: 1})
		}
		if more {
			dots.WriteString(" " + m.overflowMark(start+count < n))
		}
	}

	var nav strings.Builder
	nav.WriteString(prev)
	if count > 0 {
		nav.WriteString(strings.Repeat(" ", dotsX-pw))
		nav.WriteString(dots.String())
		nav.WriteString(strings.Repeat(" ", max(0, nextX-dotsX-dotsW)))
	} else {
		nav.WriteString(strings.Repeat(" ", max(0, nextX-pw)))
	}
	nav.WriteString(next)

	icon := common.Icons.Pause
	if !m.playing {
		icon = common.Icons.Play
	}
	control := m.styles.Control.Render(icon + " " + m.ControlLabel())
	cw := lipgloss.Width(control)
	hits = append(hits, common.HitRegion{ID: hitPause, X: 0, Y: y + 1, Width: min(cw, w), Height: 1})

	counter := m.styles.Counter.Render(fmt.Sprintf("%d / %d", m.index+1, n))
	status := control
	if gap := w - cw - lipgloss.Width(counter); gap > 0 {
		status = control + strings.Repeat(" ", gap) + counter
	}

	return []string{padRight(nav.String(), w), padRight(status, w)}, hits
}

// indicatorWindow picks which dots fit in avail cells. When not all n fit,
// the window follows active and more reports that overflow marks (two cells
// on each side) are drawn.
func indicatorWindow(n, active, avail int) (start, count int, more bool) {
	if n == 0 || avail < 1 {
		return 0, 0, false
	}
	if 2*n-1 <= avail {
		return 0, n, false
	}
	if avail >= 5 {
		count = (avail - 4 + 1) / 2
		more = true
	} else {
		count = (avail + 1) / 2
	}
	start = clamp(active-count/2, 0, n-count)
	return start, count, more
}

func (m *Model) overflowMark(hidden bool) string {
	if !hidden {
		return " "
	}
	return m.styles.Indicator.Render(common.Icons.More)
}

// normalizeBlock forces s into exactly h lines of exactly w cells.
func normalizeBlock(s string, w, h int) []string {
	src := strings.Split(s, "\n")
	lines := make([]string, h)
	for i := range lines {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		lines[i] = padRight(line, w)
	}
	return lines
}

func padRight(s string, w int) string {
	sw := ansi.StringWidth(s)
	if sw > w {
		return ansi.Truncate(s, w, "")
	}
	return s + strings.Repeat(" ", w-sw)
}
