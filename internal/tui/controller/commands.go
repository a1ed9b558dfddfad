package controller

import (
	"context"
	"os/exec"

	"yalv/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchListCmd lists domains for filter and reports back with a
// ListLoadedMsg.
func FetchListCmd(backend model.Backend, filter model.ViewFilter) tea.Cmd {
	return func() tea.Msg {
		res, err := backend.List(context.Background(), filter.IncludeInactive())
		return model.ListLoadedMsg{Filter: filter, Result: res, Err: err}
	}
}

// StartDomainCmd starts the named domain.
func StartDomainCmd(backend model.Backend, name string) tea.Cmd {
	return func() tea.Msg {
		err := backend.Start(context.Background(), name)
		return model.ActionResultMsg{Action: model.ActionStart, Name: name, Err: err}
	}
}

// ShutdownDomainCmd requests a graceful shutdown of the named domain.
func ShutdownDomainCmd(backend model.Backend, name string) tea.Cmd {
	return func() tea.Msg {
		err := backend.Shutdown(context.Background(), name)
		return model.ActionResultMsg{Action: model.ActionShutdown, Name: name, Err: err}
	}
}

// ResolveAddressCmd looks up the address used for an SSH session as user.
func ResolveAddressCmd(backend model.Backend, name, user string) tea.Cmd {
	return func() tea.Msg {
		addr, err := backend.ResolveAddress(context.Background(), name)
		return model.AddressResolvedMsg{Name: name, User: user, Address: addr, Err: err}
	}
}

// HandoffCmd suspends the program, runs c attached to the terminal and
// reports its exit with an ActionResultMsg once the terminal is restored.
func HandoffCmd(action model.ActionKind, name string, c *exec.Cmd) tea.Cmd {
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return model.ActionResultMsg{Action: action, Name: name, Err: err}
	})
}
