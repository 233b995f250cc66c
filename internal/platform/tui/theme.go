package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ca-racing/internal/config"
)

// Theme contains the visual styles used by every screen.
type Theme struct {
	// Menu styles
	Title      lipgloss.Style
	Item       lipgloss.Style
	ItemActive lipgloss.Style
	Value      lipgloss.Style
	Accent     lipgloss.Style // Race button
	Danger     lipgloss.Style // Leave-to-menu button

	// Info bar
	InfoBar   lipgloss.Style
	InfoMoney lipgloss.Style

	// Garage tiles
	Tile         lipgloss.Style
	TileSelected lipgloss.Style
	TileFocused  lipgloss.Style

	// Status line
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
}

// DefaultTheme returns the full-colour theme.
func DefaultTheme() Theme {
	return Theme{
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		InfoBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("33")),
		InfoMoney: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),

		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		TileSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("46")),
		TileFocused: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("226")),

		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MediumTheme drops bold text and uses the 16-colour palette.
func MediumTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	theme.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	theme.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	theme.Danger = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	theme.InfoMoney = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	return theme
}

// MonochromeTheme returns a theme without colours.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:        plain.Bold(true),
		Item:         plain,
		ItemActive:   plain.Reverse(true),
		Value:        plain,
		Accent:       plain,
		Danger:       plain,
		InfoBar:      plain.Border(lipgloss.NormalBorder(), false, false, true, false),
		InfoMoney:    plain,
		Tile:         plain.Border(lipgloss.NormalBorder()),
		TileSelected: plain.Border(lipgloss.ThickBorder()),
		TileFocused:  plain.Border(lipgloss.DoubleBorder()),
		Status:       plain,
		StatusError:  plain.Bold(true),
		Help:         plain.Faint(true),
	}
}

// ThemeFor picks the theme matching a graphics quality tier.
func ThemeFor(q config.Quality) Theme {
	switch q {
	case config.QualityLow:
		return MonochromeTheme()
	case config.QualityMed:
		return MediumTheme()
	default:
		return DefaultTheme()
	}
}
