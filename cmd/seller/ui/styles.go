// Package ui provides the visual styling and small render components for
// the seller console TUI, with light/dark mode support.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sellerconsole/internal/types"
)

// Color palette, zinc neutrals with an indigo accent.
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#fafafa") // zinc-50
	LightForeground = lipgloss.Color("#18181b") // zinc-900
	LightPrimary    = lipgloss.Color("#4f46e5") // indigo-600
	LightAccent     = lipgloss.Color("#6366f1") // indigo-500
	LightMuted      = lipgloss.Color("#71717a") // zinc-500
	LightBorder     = lipgloss.Color("#d4d4d8") // zinc-300
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#18181b")
	DarkForeground = lipgloss.Color("#f4f4f5")
	DarkPrimary    = lipgloss.Color("#818cf8") // indigo-400
	DarkAccent     = lipgloss.Color("#6366f1")
	DarkMuted      = lipgloss.Color("#a1a1aa") // zinc-400
	DarkBorder     = lipgloss.Color("#3f3f46") // zinc-700
	DarkCard       = lipgloss.Color("#27272a")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e11d48") // rose-600
	Success     = lipgloss.Color("#16a34a") // green-600
	Warning     = lipgloss.Color("#d97706") // amber-600
	Info        = lipgloss.Color("#2563eb") // blue-600
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName maps a config value to a theme, auto-detecting when the name
// is unknown.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	}
	return DetectTheme()
}

// DetectTheme guesses light vs dark from the terminal environment.
func DetectTheme() Theme {
	if os.Getenv("SELLER_DARK_MODE") == "1" {
		return DarkTheme()
	}

	// COLORFGBG is "foreground;background"; ANSI indices 0-6 and 8 are the
	// common dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
	Panel  lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Components
	Selected  lipgloss.Style
	Chip      lipgloss.Style
	ErrorBox  lipgloss.Style
	FieldName lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Selected: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),

		Chip: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Card).
			Padding(0, 1),

		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Destructive).
			Foreground(Destructive).
			Padding(0, 1),

		FieldName: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),
	}
}

// DefaultStyles returns styles for the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// StatusStyle returns the badge style for a lead status.
func (s Styles) StatusStyle(status types.LeadStatus) lipgloss.Style {
	switch status {
	case types.StatusQualified:
		return s.Success
	case types.StatusContacted:
		return s.Warning
	case types.StatusNew:
		return s.Info
	case types.StatusUnqualified:
		return s.Error
	}
	return s.Muted
}

// StageStyle returns the badge style for an opportunity stage.
func (s Styles) StageStyle(stage types.OpportunityStage) lipgloss.Style {
	switch stage {
	case types.StageWon:
		return s.Success
	case types.StageLost:
		return s.Error
	case types.StageNegotiation:
		return s.Info
	case types.StageProposal:
		return s.Warning
	}
	return s.Muted
}
