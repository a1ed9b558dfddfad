package view

import (
	"fmt"
	"strings"

	"yalv/internal/tui/components"
	"yalv/internal/tui/design"
	"yalv/internal/tui/model"
	"yalv/internal/tui/utils"
	"yalv/internal/virsh"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle        = "yalv"
	selectionMarker = ">>"
	maxNameWidth    = 48
	idWidth         = 4
	// chromeLines is the number of lines used around the domain list:
	// header, column titles, status bar and the short help line.
	chromeLines = 4
)

// Render produces the full frame for m. It reads m and nothing else.
func Render(m *model.Model) string {
	visible := m.Visible()

	var sections []string
	sections = append(sections, renderHeader(m, len(visible)))

	if m.Skipped > 0 {
		sections = append(sections, design.TextWarningStyle.Render(
			fmt.Sprintf("! %d line(s) of virsh output could not be read", m.Skipped)))
	}

	sections = append(sections, renderList(m, visible))

	if m.State == model.StatePromptingSSHUser {
		sections = append(sections, renderPrompt(m))
	}
	if m.Activity != "" {
		sections = append(sections, design.ActivityStyle.Render("... "+m.Activity))
	}

	sections = append(sections, renderStatusBar(m))
	sections = append(sections, m.Help.View(m.Keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(m *model.Model, count int) string {
	return components.NewHeader(appTitle).
		WithSubtitle("libvirt domains").
		WithRightContent(fmt.Sprintf("%s · %d shown", m.Filter, count)).
		WithWidth(m.Width).
		Render()
}

func renderList(m *model.Model, visible []virsh.VMRecord) string {
	if len(visible) == 0 {
		return design.TextSecondaryStyle.Render(emptyMessage(m))
	}

	nameWidth := nameColumnWidth(m.Width, visible)
	lines := []string{design.TextSecondaryStyle.Render(formatRow("", "ID", "NAME", "STATE", nameWidth))}

	start, end := Window(m.Cursor, len(visible), listHeight(m))
	for i := start; i < end; i++ {
		rec := visible[i]
		if i == m.Cursor {
			lines = append(lines, design.ListItemSelectedStyle.Render(
				formatRow(selectionMarker, rec.ID, rec.Name, rec.State.String(), nameWidth)))
			continue
		}
		row := formatRow("", rec.ID, rec.Name, "", nameWidth)
		lines = append(lines, design.ListItemStyle.Render(row+stateStyle(rec.State).Render(rec.State.String())))
	}
	return strings.Join(lines, "\n")
}

func emptyMessage(m *model.Model) string {
	if m.Filter == model.FilterRunningOnly {
		return "No running domains. Press A to include inactive ones."
	}
	return "No domains defined."
}

func renderPrompt(m *model.Model) string {
	label := design.TextStyle.Render(fmt.Sprintf("SSH into %s as", m.SSHDomain))
	return design.InputFocusedStyle.Render(label + "\n" + m.SSHUserInput.View())
}

func renderStatusBar(m *model.Model) string {
	return components.NewStatusBar(m.Width).
		WithLeftText("Filter: "+m.Filter.String()).
		WithRightText(m.State.String()).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

func formatRow(marker, id, name, state string, nameWidth int) string {
	return fmt.Sprintf("%-2s %s %s %s",
		marker,
		utils.PadRight(utils.TruncateString(id, idWidth), idWidth),
		utils.PadRight(utils.TruncateString(name, nameWidth), nameWidth),
		state)
}

func stateStyle(state virsh.VMState) lipgloss.Style {
	switch {
	case state.IsRunning():
		return design.TextSuccessStyle
	case state.IsShutOff():
		return design.TextErrorStyle
	default:
		return design.TextWarningStyle
	}
}

// nameColumnWidth fits the longest visible name, bounded by maxNameWidth and
// the terminal width.
func nameColumnWidth(termWidth int, visible []virsh.VMRecord) int {
	width := len("NAME")
	for _, rec := range visible {
		if w := lipgloss.Width(rec.Name); w > width {
			width = w
		}
	}
	if width > maxNameWidth {
		width = maxNameWidth
	}
	// marker, id, state and separators take roughly 20 cells.
	if termWidth > 0 && width > termWidth-20 {
		width = max(termWidth-20, len("NAME"))
	}
	return width
}

func listHeight(m *model.Model) int {
	if m.Height <= 0 {
		return 0
	}
	h := m.Height - chromeLines
	if m.Skipped > 0 {
		h--
	}
	if m.State == model.StatePromptingSSHUser {
		h -= 2
	}
	if m.Activity != "" {
		h--
	}
	if m.Help.ShowAll {
		h -= 3
	}
	return max(h, 1)
}

// Window returns the half-open range [start, end) of rows to draw so that
// cursor is on screen. height <= 0 means unlimited.
func Window(cursor, total, height int) (start, end int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	start = cursor - height + 1
	if start < 0 {
		start = 0
	}
	return start, start + height
}
