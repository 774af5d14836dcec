package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for focusctl.

const (
	IconTimer  = "⏱️"
	IconChart  = "📊"
	IconTrophy = "🏆"
	IconScroll = "📜"
	IconGoal   = "🎯"
	IconMoon   = "🌙"
	IconSun    = "☀️"
	IconDone   = "✅"
	IconError  = "🧨"
	IconLock   = "🔒"
)

var (
	cPrimary = lipgloss.Color("75")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Clock = lipgloss.NewStyle().Bold(true).Foreground(cPrimary).Padding(0, 2)
	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders fraction (0..1) as a bar of width cells.
func ProgressBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction*float64(width) + 0.5)
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// Bars renders one labelled bar per value, scaled to the largest value.
func Bars(labels []string, values []int, width int) string {
	peak := 0
	for _, value := range values {
		peak = max(peak, value)
	}
	var out strings.Builder
	for i, value := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		fraction := 0.0
		if peak > 0 {
			fraction = float64(value) / float64(peak)
		}
		fmt.Fprintf(&out, "%s %s %d\n", Key.Render(fmt.Sprintf("%-3s", label)), ProgressBar(fraction, width), value)
	}
	return out.String()
}
