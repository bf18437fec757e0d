package carousel

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyrewlee/carousel/internal/messages"
)

type textSlide string

func (s textSlide) Render(width, height int) string { return string(s) }

func slides(n int) []Slide {
	out := make([]Slide, n)
	for i := range out {
		out[i] = textSlide(strings.Repeat("#", i+1))
	}
	return out
}

func newTestModel(t *testing.T, n int, opts Options) *Model {
	t.Helper()
	m := New(slides(n), opts)
	m.SetSize(100, 10)
	m.Init()
	return m
}

func TestNextWrapsModuloN(t *testing.T) {
	m := newTestModel(t, 4, DefaultOptions())

	var seq []int
	for i := 0; i < 4; i++ {
		m.Next()
		seq = append(seq, m.Index())
	}
	if diff := cmp.Diff([]int{1, 2, 3, 0}, seq); diff != "" {
		t.Fatalf("index sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestPrevWrapsToLast(t *testing.T) {
	m := newTestModel(t, 4, DefaultOptions())
	m.Prev()
	assert.Equal(t, 3, m.Index())
	m.Prev()
	assert.Equal(t, 2, m.Index())
}

func TestNavigationKeepsIndexInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 1; n <= 6; n++ {
		m := newTestModel(t, n, DefaultOptions())
		for step := 0; step < 200; step++ {
			before := m.Index()
			if rng.Intn(2) == 0 {
				m.Next()
				require.Equal(t, (before+1)%n, m.Index())
			} else {
				m.Prev()
				require.Equal(t, (before-1+n)%n, m.Index())
			}
			require.GreaterOrEqual(t, m.Index(), 0)
			require.Less(t, m.Index(), n)
			require.Equal(t, -m.Index()*100, m.Offset())
			require.Equal(t, m.Index(), m.ActiveSlide())
			require.Equal(t, m.Index(), m.ActiveIndicator())
		}
	}
}

func TestGoToClamps(t *testing.T) {
	m := newTestModel(t, 4, DefaultOptions())

	m.GoTo(99)
	assert.Equal(t, 3, m.Index())
	m.GoTo(-5)
	assert.Equal(t, 0, m.Index())
	m.GoTo(2)
	assert.Equal(t, 2, m.Index())
}

func TestExactlyOneActiveMarker(t *testing.T) {
	m := newTestModel(t, 5, DefaultOptions())
	assert.Equal(t, 0, m.ActiveSlide())

	for _, op := range []func() tea.Cmd{m.Next, m.Next, m.Prev, func() tea.Cmd { return m.GoTo(4) }} {
		op()
		slideCount, dotCount := 0, 0
		for i := range m.slideMarks {
			if m.slideMarks[i] {
				slideCount++
			}
			if m.dotMarks[i] {
				dotCount++
			}
		}
		require.Equal(t, 1, slideCount)
		require.Equal(t, 1, dotCount)
		require.Equal(t, m.Index(), m.ActiveSlide())
		require.Equal(t, m.Index(), m.ActiveIndicator())
	}
}

func TestEmptyCarouselIsInert(t *testing.T) {
	m := New(nil, DefaultOptions())
	m.SetSize(40, 6)

	assert.Nil(t, m.Init())
	assert.Nil(t, m.Next())
	assert.Nil(t, m.Prev())
	assert.Nil(t, m.GoTo(3))
	assert.Nil(t, m.Toggle())
	assert.False(t, m.TimerLive())
	assert.False(t, m.Playing())

	_, cmd := m.Update(tea.MouseClickMsg{X: 5, Y: 2, Button: tea.MouseLeft})
	assert.Nil(t, cmd)
	assert.False(t, m.Dragging())
	assert.Contains(t, m.View(), "No slides")
}

func TestNavigationReportsSlideChanged(t *testing.T) {
	m := newTestModel(t, 3, Options{AutoPlay: false})
	cmd := m.changed(0)
	assert.Nil(t, cmd, "no message when the index did not move")

	m.index = 2
	msg := m.changed(0)()
	assert.Equal(t, messages.SlideChanged{Index: 2, Total: 3}, msg)
}

func TestTransitionEasesToTarget(t *testing.T) {
	base := time.Unix(1000, 0)
	m := New(slides(3), DefaultOptions())
	m.now = func() time.Time { return base }
	m.SetSize(100, 10)

	cmd := m.Next()
	require.NotNil(t, cmd)
	require.True(t, m.Animating())
	assert.Equal(t, 0, m.DisplayOffset())
	assert.Equal(t, -100, m.Offset())

	m.Update(frameMsg{id: m.id, tag: m.transitionTag, kind: frameTransition, at: base.Add(225 * time.Millisecond)})
	assert.Less(t, m.DisplayOffset(), 0)
	assert.Greater(t, m.DisplayOffset(), -100)

	m.Update(frameMsg{id: m.id, tag: m.transitionTag, kind: frameTransition, at: base.Add(450 * time.Millisecond)})
	assert.Equal(t, -100, m.DisplayOffset())
	assert.False(t, m.Animating())
}

func TestStaleTransitionFrameIgnored(t *testing.T) {
	base := time.Unix(1000, 0)
	m := New(slides(3), DefaultOptions())
	m.now = func() time.Time { return base }
	m.SetSize(100, 10)

	m.Next()
	staleTag := m.transitionTag
	m.Next()

	_, cmd := m.Update(frameMsg{id: m.id, tag: staleTag, kind: frameTransition, at: base.Add(time.Second)})
	assert.Nil(t, cmd)
	assert.True(t, m.Animating())
}

func TestResizeSnapsWithoutAnimation(t *testing.T) {
	m := newTestModel(t, 4, DefaultOptions())
	m.GoTo(2)
	require.True(t, m.Animating())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	assert.False(t, m.Animating())
	assert.Equal(t, -160, m.Offset())
	assert.Equal(t, -160, m.DisplayOffset())
	assert.Equal(t, 2, m.Index())
}

func TestKeyboardNavigation(t *testing.T) {
	m := newTestModel(t, 4, DefaultOptions())

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 1, m.Index())
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 3, m.Index())
}

func TestViewFillsWidgetBox(t *testing.T) {
	m := newTestModel(t, 4, DefaultOptions())
	m.SetSize(60, 8)
	m.GoTo(1)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 8)
	for i, line := range lines {
		assert.Equal(t, 60, ansi.StringWidth(line), "line %d", i)
	}
	plain := ansi.Strip(m.View())
	assert.Contains(t, plain, "2 / 4")
	assert.Contains(t, plain, "Pause")
	assert.Equal(t, 1, strings.Count(plain, "●"))
	assert.Equal(t, 3, strings.Count(plain, "○"))
}

func TestViewDuringOverscrollPadsBlank(t *testing.T) {
	m := newTestModel(t, 2, Options{AutoPlay: false})
	m.display = 30

	lines := strings.Split(m.View(), "\n")
	for _, line := range lines[:m.slideAreaHeight()] {
		assert.Equal(t, 100, ansi.StringWidth(line))
		assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", 30)))
	}
}

func TestIndicatorsFollowActiveSlideWhenNarrow(t *testing.T) {
	m := New(slides(30), Options{AutoPlay: false})
	m.SetSize(40, 8)
	m.GoTo(25)

	plain := ansi.Strip(m.View())
	require.Equal(t, 1, strings.Count(plain, "●"), "active dot must be drawn")
	assert.Contains(t, plain, "…", "hidden dots are marked")

	h := findHit(t, m, indicatorHitID(25))
	nav := strings.Split(plain, "\n")[m.slideAreaHeight()]
	col := ansi.StringWidth(nav[:strings.Index(nav, "●")])
	assert.Equal(t, col, h.X, "hit region sits on the active dot")

	for _, hit := range m.HitRegions() {
		assert.NotEqual(t, indicatorHitID(0), hit.ID, "dots outside the window have no hit region")
	}
}

func TestIndicatorWindowClickTargetsShownSlide(t *testing.T) {
	m := New(slides(30), Options{AutoPlay: false})
	m.SetSize(40, 8)
	m.GoTo(25)

	click(m, findHit(t, m, indicatorHitID(27)))
	assert.Equal(t, 27, m.Index())
	assert.Equal(t, 27, m.ActiveIndicator())
	assert.Equal(t, 1, strings.Count(ansi.Strip(m.View()), "●"))
}

func TestIndicatorWindow(t *testing.T) {
	tests := []struct {
		name             string
		n, active, avail int
		start, count     int
		more             bool
	}{
		{"all fit", 4, 2, 20, 0, 4, false},
		{"exact fit", 4, 3, 7, 0, 4, false},
		{"window at start", 30, 0, 15, 0, 6, true},
		{"window centered", 30, 15, 15, 12, 6, true},
		{"window at end", 30, 29, 15, 24, 6, true},
		{"too tight for marks", 30, 10, 3, 9, 2, false},
		{"no room", 30, 10, 0, 0, 0, false},
		{"empty", 0, 0, 20, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, count, more := indicatorWindow(tt.n, tt.active, tt.avail)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.more, more)
			if count > 0 {
				assert.True(t, tt.active >= start && tt.active < start+count, "active inside window")
			}
		})
	}
}
