package components

import (
	"strings"
	"testing"

	"yalv/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar(t *testing.T) {
	t.Run("left and right text", func(t *testing.T) {
		out := NewStatusBar(40).WithLeftText("Filter: All").WithRightText("Browsing").Render()
		assert.Contains(t, out, "Filter: All")
		assert.Contains(t, out, "Browsing")
		assert.Equal(t, 40, lipgloss.Width(out))
	})

	t.Run("message replaces left text", func(t *testing.T) {
		out := NewStatusBar(60).
			WithLeftText("Filter: All").
			WithRightText("Browsing").
			WithMessage("Started web", model.StatusBarSuccess).
			Render()
		assert.Contains(t, out, "Started web")
		assert.NotContains(t, out, "Filter: All")
	})

	t.Run("empty message keeps left text", func(t *testing.T) {
		out := NewStatusBar(0).WithLeftText("Filter: All").WithMessage("", model.StatusBarError).Render()
		assert.Contains(t, out, "Filter: All")
	})

	t.Run("narrow bar truncates", func(t *testing.T) {
		out := NewStatusBar(12).WithLeftText(strings.Repeat("a", 30)).WithRightText("Browsing").Render()
		assert.NotContains(t, out, "Browsing")
		assert.LessOrEqual(t, lipgloss.Width(out), 12)
	})
}

func TestHeader(t *testing.T) {
	out := NewHeader("yalv").WithSubtitle("libvirt domains").WithRightContent("3 shown").WithWidth(50).Render()
	assert.Contains(t, out, "yalv")
	assert.Contains(t, out, "3 shown")
	assert.Equal(t, 50, lipgloss.Width(out))

	out = NewHeader("yalv").WithRightContent("3 shown").Render()
	assert.Contains(t, out, "3 shown")
}
