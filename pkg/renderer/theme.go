package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Theme holds the colors and styles used for terminal output.
type Theme struct {
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Subtle lipgloss.Style
	Winner lipgloss.Style
	Box    lipgloss.Style
}

// DefaultTheme returns the dark palette.
func DefaultTheme() (t *Theme) {
	t = &Theme{
		Accent:  lipgloss.Color("#4ade80"),
		Muted:   lipgloss.Color("#909090"),
		Border:  lipgloss.Color("#333333"),
		Success: lipgloss.Color("#22c55e"),
		Warning: lipgloss.Color("#eab308"),
		Error:   lipgloss.Color("#ef4444"),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1)
	t.Header = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
	t.Cell = lipgloss.NewStyle().Padding(0, 1)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Winner = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	return t
}

// statusColor picks a color for a verdict by its leading marker.
func (t *Theme) statusColor(status string) lipgloss.Color {
	switch {
	case strings.HasPrefix(status, "✅"), strings.HasPrefix(status, "🚀"), strings.HasPrefix(status, "🏆"):
		return t.Success
	case strings.HasPrefix(status, "⚠️"), strings.HasPrefix(status, "🔶"), strings.HasPrefix(status, "💡"):
		return t.Warning
	case strings.HasPrefix(status, "🔴"), strings.HasPrefix(status, "💀"), strings.HasPrefix(status, "❌"):
		return t.Error
	}
	return t.Muted
}

//nolint:gochecknoglobals // Acronyms kept upper case after title casing
var acronyms = strings.NewReplacer("Cpu", "CPU", "Gpu", "GPU", " Ok", " OK")

// StatusTitle turns an enum-style status such as "CPU_STRONG_GPU_OK" into "CPU Strong GPU OK".
func StatusTitle(status string) (title string) {
	words := strings.ToLower(strings.ReplaceAll(status, "_", " "))
	title = acronyms.Replace(cases.Title(language.English).String(words))
	return title
}
