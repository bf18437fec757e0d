package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/andyrewlee/carousel/internal/perf"
	"github.com/andyrewlee/carousel/internal/ui/compositor"
)

// View renders the application. Mouse motion is reported even with no
// button held so the carousel can track hover.
func (a *App) View() tea.View {
	defer perf.Time("view")()

	view := tea.View{
		AltScreen:       true,
		MouseMode:       tea.MouseModeAllMotion,
		BackgroundColor: a.styles.Colors.Background,
		ForegroundColor: a.styles.Colors.Foreground,
		WindowTitle:     a.windowTitle(),
	}
	view.SetContent(a.render())
	return view
}

func (a *App) render() string {
	switch {
	case a.quitting:
		return ""
	case !a.ready:
		return "Loading..."
	}

	canvas := a.surface.Frame(a.width, a.height)
	if a.layout.ShowHeader() {
		canvas.Compose(compositor.NewLayer(a.headerView(), 0, 0).Clip(a.width, a.layout.HeaderHeight()))
	}
	canvas.Compose(compositor.NewLayer(a.carousel.View(), 0, a.layout.CarouselY()))
	if a.layout.ShowFooter() {
		canvas.Compose(compositor.NewLayer(a.footerView(), 0, a.layout.FooterY()).Clip(a.width, a.layout.FooterHeight()))
	}
	a.composeOverlays(canvas)
	return canvas.Render()
}

func (a *App) windowTitle() string {
	if a.deck.Title == "" {
		return "carousel"
	}
	return a.deck.Title + " - carousel"
}

func (a *App) headerView() string {
	title := a.styles.Title.Render(a.deck.Title)
	if a.deck.Title == "" {
		title = a.styles.Title.Render("carousel")
	}
	if slide := a.deck.Slide(a.carousel.Index()); slide != nil && slide.Title != "" {
		title += a.styles.Muted.Render(" / " + slide.Title)
	}
	return ansi.Truncate(title, a.width, "…")
}

func (a *App) footerView() string {
	if a.toast.Visible() {
		return a.toast.View()
	}
	if !a.cfg.UI.ShowKeymapHints {
		return ""
	}
	return a.help.ShortHelpView(a.keymap.ShortHelp())
}

func (a *App) composeOverlays(canvas *lipgloss.Canvas) {
	if a.showHelp {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(a.styles.Colors.Border).
			Padding(0, 1).
			Render(a.help.FullHelpView(a.keymap.FullHelp()))
		w, h := viewDimensions(box)
		x, y := compositor.Centered(a.width, a.height, w, h)
		canvas.Compose(compositor.NewLayer(box, x, y))
	}
	if a.search.Visible() {
		box := a.search.View()
		w, h := viewDimensions(box)
		x, _ := compositor.Centered(a.width, a.height, w, h)
		canvas.Compose(compositor.NewLayer(box, x, a.layout.CarouselY()+1))
	}
}

func viewDimensions(view string) (width, height int) {
	lines := strings.Split(view, "\n")
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	return width, len(lines)
}
