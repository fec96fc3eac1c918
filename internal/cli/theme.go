package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for terminal output.
type Theme struct {
	Title  lipgloss.Color
	Number lipgloss.Color
	Label  lipgloss.Color
	Error  lipgloss.Color
	Hint   lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Title:  lipgloss.Color("#5FAFD7"), // light blue
	Number: lipgloss.Color("#AF87D7"), // lavender
	Label:  lipgloss.Color("#00D787"), // green
	Error:  lipgloss.Color("#FF005F"), // red
	Hint:   lipgloss.Color("#6C6C6C"), // dim gray
}

// typeColors maps a Pokémon type to its pill color.
var typeColors = map[string]lipgloss.Color{
	"fire":     lipgloss.Color("#FFA756"),
	"water":    lipgloss.Color("#58ABF6"),
	"grass":    lipgloss.Color("#8BBE8A"),
	"electric": lipgloss.Color("#F2CB55"),
	"psychic":  lipgloss.Color("#FB6C6C"),
	"normal":   lipgloss.Color("#B5B9C4"),
	"flying":   lipgloss.Color("#83A2E3"),
	"poison":   lipgloss.Color("#9F6E97"),
	"ground":   lipgloss.Color("#F78551"),
	"rock":     lipgloss.Color("#D4C294"),
	"bug":      lipgloss.Color("#8BD674"),
	"ghost":    lipgloss.Color("#8571BE"),
	"steel":    lipgloss.Color("#4C91B2"),
	"ice":      lipgloss.Color("#91D8DF"),
	"dragon":   lipgloss.Color("#7383B9"),
	"dark":     lipgloss.Color("#6F6E78"),
	"fairy":    lipgloss.Color("#EBA8C3"),
	"fighting": lipgloss.Color("#EB4971"),
}

// fallbackTypeColor is used for types without an entry.
const fallbackTypeColor = lipgloss.Color("#888888")

// TypeColor returns the color for a type name.
func TypeColor(typeName string) lipgloss.Color {
	if c, ok := typeColors[typeName]; ok {
		return c
	}
	return fallbackTypeColor
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) numberStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Number)
}

func (t Theme) labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Label).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func typePillStyle(typeName string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(TypeColor(typeName)).
		Padding(0, 1)
}
