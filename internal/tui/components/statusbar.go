package components

import (
	"strings"

	"yalv/internal/tui/design"
	"yalv/internal/tui/model"
	"yalv/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message. An empty message is ignored.
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = message != ""
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar. A message replaces the left text.
func (s *StatusBar) Render() string {
	style := s.getStyle()

	left := s.LeftText
	if s.ShowMessage {
		left = s.Message
	}

	var content string
	switch {
	case s.Width <= 0:
		content = strings.TrimSpace(left + "  " + s.RightText)
	case left != "" && s.RightText != "":
		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(s.RightText)
		padding := s.Width - leftWidth - rightWidth - design.SpaceSM*2

		if padding > 0 {
			content = left + strings.Repeat(" ", padding) + s.RightText
		} else {
			// Not enough space, just show left text
			content = utils.TruncateString(left, s.Width-design.SpaceSM*2)
		}
	case left != "":
		content = utils.TruncateString(left, s.Width-design.SpaceSM*2)
	default:
		content = s.RightText
	}

	if s.Width > 0 {
		style = style.Width(s.Width).MaxWidth(s.Width)
	}
	return style.Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	if !s.ShowMessage {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
