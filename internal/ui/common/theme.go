package common

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// ThemeID identifies a color theme.
type ThemeID string

const (
	ThemeTokyoNight  ThemeID = "tokyo-night"
	ThemeGruvbox     ThemeID = "gruvbox"
	ThemeNord        ThemeID = "nord"
	ThemeGitHubLight ThemeID = "github-light"
)

// ThemeColors defines all colors used by the application.
type ThemeColors struct {
	Background color.Color
	Foreground color.Color
	Muted      color.Color
	Border     color.Color

	Primary   color.Color
	Secondary color.Color
	Success   color.Color
	Warning   color.Color
	Error     color.Color
	Info      color.Color

	Surface   color.Color
	Selection color.Color
}

// Theme represents a complete color theme.
type Theme struct {
	ID     ThemeID
	Name   string
	Colors ThemeColors
}

// AvailableThemes returns all predefined themes.
func AvailableThemes() []Theme {
	return []Theme{
		TokyoNightTheme(),
		GruvboxTheme(),
		NordTheme(),
		GitHubLightTheme(),
	}
}

// GetTheme returns a theme by ID, defaulting to Tokyo Night.
func GetTheme(id ThemeID) Theme {
	for _, t := range AvailableThemes() {
		if t.ID == id {
			return t
		}
	}
	return TokyoNightTheme()
}

// TokyoNightTheme - cool blue tones
func TokyoNightTheme() Theme {
	return Theme{
		ID:   ThemeTokyoNight,
		Name: "Tokyo Night",
		Colors: ThemeColors{
			Background: lipgloss.Color("#1a1b26"),
			Foreground: lipgloss.Color("#a9b1d6"),
			Muted:      lipgloss.Color("#565f89"),
			Border:     lipgloss.Color("#292e42"),
			Primary:    lipgloss.Color("#7aa2f7"),
			Secondary:  lipgloss.Color("#bb9af7"),
			Success:    lipgloss.Color("#9ece6a"),
			Warning:    lipgloss.Color("#e0af68"),
			Error:      lipgloss.Color("#f7768e"),
			Info:       lipgloss.Color("#7dcfff"),
			Surface:    lipgloss.Color("#1f2335"),
			Selection:  lipgloss.Color("#33467c"),
		},
	}
}

// GruvboxTheme - warm, retro, earthy tones with orange accent
func GruvboxTheme() Theme {
	return Theme{
		ID:   ThemeGruvbox,
		Name: "Gruvbox",
		Colors: ThemeColors{
			Background: lipgloss.Color("#282828"),
			Foreground: lipgloss.Color("#ebdbb2"),
			Muted:      lipgloss.Color("#928374"),
			Border:     lipgloss.Color("#3c3836"),
			Primary:    lipgloss.Color("#fe8019"),
			Secondary:  lipgloss.Color("#d3869b"),
			Success:    lipgloss.Color("#b8bb26"),
			Warning:    lipgloss.Color("#fabd2f"),
			Error:      lipgloss.Color("#fb4934"),
			Info:       lipgloss.Color("#83a598"),
			Surface:    lipgloss.Color("#3c3836"),
			Selection:  lipgloss.Color("#504945"),
		},
	}
}

// NordTheme - cool, muted arctic colors
func NordTheme() Theme {
	return Theme{
		ID:   ThemeNord,
		Name: "Nord",
		Colors: ThemeColors{
			Background: lipgloss.Color("#2e3440"),
			Foreground: lipgloss.Color("#eceff4"),
			Muted:      lipgloss.Color("#4c566a"),
			Border:     lipgloss.Color("#3b4252"),
			Primary:    lipgloss.Color("#88c0d0"),
			Secondary:  lipgloss.Color("#b48ead"),
			Success:    lipgloss.Color("#a3be8c"),
			Warning:    lipgloss.Color("#ebcb8b"),
			Error:      lipgloss.Color("#bf616a"),
			Info:       lipgloss.Color("#81a1c1"),
			Surface:    lipgloss.Color("#3b4252"),
			Selection:  lipgloss.Color("#434c5e"),
		},
	}
}

// GitHubLightTheme - light background, blue accent
func GitHubLightTheme() Theme {
	return Theme{
		ID:   ThemeGitHubLight,
		Name: "GitHub Light",
		Colors: ThemeColors{
			Background: lipgloss.Color("#ffffff"),
			Foreground: lipgloss.Color("#24292f"),
			Muted:      lipgloss.Color("#6e7781"),
			Border:     lipgloss.Color("#d0d7de"),
			Primary:    lipgloss.Color("#0969da"),
			Secondary:  lipgloss.Color("#8250df"),
			Success:    lipgloss.Color("#1a7f37"),
			Warning:    lipgloss.Color("#9a6700"),
			Error:      lipgloss.Color("#cf222e"),
			Info:       lipgloss.Color("#0550ae"),
			Surface:    lipgloss.Color("#f6f8fa"),
			Selection:  lipgloss.Color("#ddf4ff"),
		},
	}
}
