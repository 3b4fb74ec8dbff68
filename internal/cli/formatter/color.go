package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/horarios/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ShiftStyle colours a shift the same way everywhere.
func ShiftStyle(s domain.Shift) lipgloss.Style {
	switch s {
	case domain.ShiftMorning:
		return StyleYellow
	case domain.ShiftAfternoon:
		return StyleBlue
	case domain.ShiftEvening:
		return StylePurple
	default:
		return StyleDim
	}
}

// ShiftBadges renders the shifts as short coloured labels, e.g. "M T N".
func ShiftBadges(shifts []domain.Shift) string {
	if len(shifts) == 0 {
		return StyleDim.Render("-")
	}
	parts := make([]string, len(shifts))
	for i, s := range shifts {
		parts[i] = ShiftStyle(s).Render(shiftLetter(s))
	}
	return strings.Join(parts, " ")
}

func shiftLetter(s domain.Shift) string {
	switch s {
	case domain.ShiftMorning:
		return "M"
	case domain.ShiftAfternoon:
		return "T"
	case domain.ShiftEvening:
		return "N"
	default:
		return "?"
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
