package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/drillplan/internal/ui/theme"
)

// LoadBar displays a session load level as a segmented horizontal bar.
type LoadBar struct {
	Label string
	Level int
	Max   int
	Width int
}

// NewLoadBar creates a new load bar.
func NewLoadBar(label string, level, max, width int) LoadBar {
	return LoadBar{
		Label: label,
		Level: level,
		Max:   max,
		Width: width,
	}
}

// Fraction returns the filled share of the bar, clamped to [0, 1].
func (b LoadBar) Fraction() float64 {
	if b.Max <= 0 {
		return 0
	}
	f := float64(b.Level) / float64(b.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// View renders the load bar.
func (b LoadBar) View() string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	countWidth := 6 // "  5/5"

	barWidth := b.Width - labelWidth - countWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Fraction())
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.LoadColor(b.Level)).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", b.Level, b.Max))

	return result
}
