package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	Colors ThemeColors

	// Text hierarchy
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style

	// Carousel track
	Slide       lipgloss.Style // frame around inactive slides
	ActiveSlide lipgloss.Style // frame around the active slide
	SlideTitle  lipgloss.Style

	// Carousel controls
	Button          lipgloss.Style
	Indicator       lipgloss.Style
	ActiveIndicator lipgloss.Style
	Control         lipgloss.Style
	Counter         lipgloss.Style

	// Help bar
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Search prompt
	Prompt lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the styles for the default theme.
func DefaultStyles() Styles {
	return StylesFor(TokyoNightTheme())
}

// StylesFor builds the application styles from a theme palette.
func StylesFor(theme Theme) Styles {
	c := theme.Colors
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Border).
		Foreground(c.Foreground)

	return Styles{
		Colors: c,

		Title: lipgloss.NewStyle().Bold(true).Foreground(c.Primary),
		Body:  lipgloss.NewStyle().Foreground(c.Foreground),
		Muted: lipgloss.NewStyle().Foreground(c.Muted),

		Slide:       frame,
		ActiveSlide: frame.BorderForeground(c.Primary),
		SlideTitle:  lipgloss.NewStyle().Bold(true).Foreground(c.Secondary),

		Button: lipgloss.NewStyle().
			Foreground(c.Foreground).
			Background(c.Surface).
			Padding(0, 1),
		Indicator:       lipgloss.NewStyle().Foreground(c.Muted),
		ActiveIndicator: lipgloss.NewStyle().Foreground(c.Primary).Bold(true),
		Control: lipgloss.NewStyle().
			Foreground(c.Info).
			Padding(0, 1),
		Counter: lipgloss.NewStyle().Foreground(c.Muted),

		HelpKey:  lipgloss.NewStyle().Foreground(c.Primary),
		HelpDesc: lipgloss.NewStyle().Foreground(c.Muted),

		Prompt: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Secondary).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().Foreground(c.Success).Bold(true),
		ToastError:   lipgloss.NewStyle().Foreground(c.Error).Bold(true),
		ToastInfo:    lipgloss.NewStyle().Foreground(c.Info),
	}
}
