package components

import (
	"strings"

	"yalv/internal/tui/design"
	"yalv/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	Subtitle     string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{Title: title}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width. Zero leaves the header unconstrained.
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	leftParts := []string{h.Title}
	if h.Subtitle != "" {
		leftParts = append(leftParts, design.TextSecondaryStyle.Render(h.Subtitle))
	}
	leftContent := strings.Join(leftParts, " ")

	content := leftContent
	if h.RightContent != "" {
		if h.Width <= 0 {
			content = leftContent + "  " + h.RightContent
		} else {
			leftWidth := lipgloss.Width(leftContent)
			rightWidth := lipgloss.Width(h.RightContent)
			availableWidth := h.Width - design.SpaceSM*2

			if leftWidth+rightWidth+2 <= availableWidth {
				padding := availableWidth - leftWidth - rightWidth
				content = leftContent + strings.Repeat(" ", padding) + h.RightContent
			} else {
				// Not enough space, prioritize left content
				content = utils.TruncateString(leftContent, availableWidth)
			}
		}
	}

	style := design.HeaderStyle
	if h.Width > 0 {
		style = style.Width(h.Width).MaxWidth(h.Width)
	}
	return style.Render(content)
}
