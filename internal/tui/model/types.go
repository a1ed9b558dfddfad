package model

import (
	"context"
	"os/exec"

	"yalv/internal/virsh"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppState is the state of the input controller.
type AppState int

const (
	// StateBrowsing accepts navigation and action keys.
	StateBrowsing AppState = iota
	// StateAwaitingBackend waits for a start, shutdown or list call.
	StateAwaitingBackend
	// StateAwaitingSubprocess has handed the terminal to console or ssh.
	StateAwaitingSubprocess
	// StatePromptingSSHUser reads the user name for an SSH session.
	StatePromptingSSHUser
	// StateExiting is terminal.
	StateExiting
)

// String provides a human-readable representation of the AppState.
func (s AppState) String() string {
	switch s {
	case StateBrowsing:
		return "Browsing"
	case StateAwaitingBackend:
		return "AwaitingBackend"
	case StateAwaitingSubprocess:
		return "AwaitingSubprocess"
	case StatePromptingSSHUser:
		return "PromptingSSHUser"
	case StateExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// ViewFilter selects which domains are visible.
type ViewFilter int

const (
	FilterRunningOnly ViewFilter = iota
	FilterAll
)

// FilterFor returns FilterAll when showAll is set, FilterRunningOnly otherwise.
func FilterFor(showAll bool) ViewFilter {
	if showAll {
		return FilterAll
	}
	return FilterRunningOnly
}

// Toggle returns the other filter.
func (f ViewFilter) Toggle() ViewFilter {
	if f == FilterAll {
		return FilterRunningOnly
	}
	return FilterAll
}

// IncludeInactive reports whether the backend must be asked for inactive domains.
func (f ViewFilter) IncludeInactive() bool { return f == FilterAll }

// String provides a human-readable representation of the ViewFilter.
func (f ViewFilter) String() string {
	if f == FilterAll {
		return "All"
	}
	return "Running only"
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Backend is the subset of the virsh client the TUI depends on.
type Backend interface {
	List(ctx context.Context, includeInactive bool) (virsh.ListResult, error)
	Start(ctx context.Context, name string) error
	Shutdown(ctx context.Context, name string) error
	ConsoleCommand(name string) *exec.Cmd
	SSHCommand(target string) *exec.Cmd
	ResolveAddress(ctx context.Context, name string) (string, error)
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	ToggleFilter key.Binding
	Console      key.Binding
	SSH          key.Binding
	SSHAsUser    key.Binding
	Start        key.Binding
	Shutdown     key.Binding
	Refresh      key.Binding
	Copy         key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
	Submit       key.Binding
	Cancel       key.Binding
}

// Model is the whole state of the TUI. It is owned by the event loop and
// only mutated from the controller's Update.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	State     AppState
	DebugMode bool

	// Registry
	Records []virsh.VMRecord
	Filter  ViewFilter
	// Skipped is the number of unparsable rows in the last list response.
	Skipped int

	// Selection, an index into Visible().
	Cursor int

	Backend Backend

	// Pending holds key events received while an action was in flight.
	Pending []tea.KeyMsg
	// Activity describes the in-flight action for the renderer.
	Activity string

	StatusBarMessage     string
	StatusBarMessageType MessageType

	Keys KeyMap
	Help help.Model

	SSHUserInput textinput.Model
	// SSHDomain is the domain the SSH user prompt is for.
	SSHDomain string
}

// New creates a model in the browsing state with an empty registry.
func New(backend Backend, filter ViewFilter, debugMode bool) *Model {
	ti := textinput.New()
	ti.Placeholder = "user name"
	ti.Prompt = "ssh user: "
	ti.CharLimit = 64

	return &Model{
		State:        StateBrowsing,
		DebugMode:    debugMode,
		Filter:       filter,
		Backend:      backend,
		Keys:         DefaultKeyMap(),
		Help:         help.New(),
		SSHUserInput: ti,
	}
}

// SetStatusMessage updates the status bar message. It stays until the next
// key is dispatched.
func (m *Model) SetStatusMessage(message string, msgType MessageType) {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType
}

// ClearStatusMessage removes the status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarInfo
}
