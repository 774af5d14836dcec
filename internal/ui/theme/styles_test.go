package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/muesli/termenv"
)

func TestProgressBarFillsProportionally(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "█████░░░░░", ProgressBar(0.5, 10))
	assert.Equal(t, "░░░░", ProgressBar(-1, 4))
	assert.Equal(t, "████", ProgressBar(3, 4))
	assert.Equal(t, "", ProgressBar(0.5, 0))
}

func TestBarsScaleToPeak(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := Bars([]string{"Mon", "Tue"}, []int{2, 4}, 4)
	lines := strings.Split(strings.TrimSpace(out), "\n")

	assert.Equal(t, []string{"Mon ██░░ 2", "Tue ████ 4"}, lines)
}

func TestThemeVariant(t *testing.T) {
	assert.True(t, New(true).Dark())
	assert.Equal(t, DarkPalette, New(true).Palette())
	assert.Equal(t, LightPalette, New(false).Palette())
}
