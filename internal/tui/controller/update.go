package controller

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"yalv/internal/tui/model"
	"yalv/internal/virsh"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

var clipboardWriteAll = clipboard.WriteAll

// Update is the central message routing function for the TUI. It is the
// only place the model is mutated after startup.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	LogDebug(m, controllerDispatchSubsystem, "Received msg: %T in state %s", msg, m.State)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case model.ListLoadedMsg:
		return handleListLoadedMsg(m, msg)

	case model.ActionResultMsg:
		return handleActionResultMsg(m, msg)

	case model.AddressResolvedMsg:
		return handleAddressResolvedMsg(m, msg)
	}

	if m.State == model.StatePromptingSSHUser {
		var cmd tea.Cmd
		m.SSHUserInput, cmd = m.SSHUserInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		LogInfo(controllerSubsystem, "Interrupted, exiting")
		m.State = model.StateExiting
		return m, tea.Quit
	}

	switch m.State {
	case model.StateExiting:
		return m, nil
	case model.StatePromptingSSHUser:
		return handlePromptKey(m, msg)
	case model.StateBrowsing:
		return dispatchKey(m, msg)
	default:
		LogDebug(m, controllerSubsystem, "Queueing key %q while %s", msg.String(), m.State)
		m.Pending = append(m.Pending, msg)
		return m, nil
	}
}

// dispatchKey applies one key event in the browsing state.
func dispatchKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	m.ClearStatusMessage()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		LogInfo(controllerSubsystem, "Quit requested")
		m.State = model.StateExiting
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Down):
		m.MoveSelection(1)

	case key.Matches(msg, m.Keys.Up):
		m.MoveSelection(-1)

	case key.Matches(msg, m.Keys.ToggleFilter):
		return beginRefresh(m, m.Filter.Toggle(), "Loading domains")

	case key.Matches(msg, m.Keys.Refresh):
		return beginRefresh(m, m.Filter, "Refreshing")

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll

	case key.Matches(msg, m.Keys.Copy):
		rec, ok := m.Selected()
		if !ok {
			return m, nil
		}
		if err := clipboardWriteAll(rec.Name); err != nil {
			LogError(controllerSubsystem, err, "Failed to copy domain name %s", rec.Name)
			m.SetStatusMessage("Copy failed: "+err.Error(), model.StatusBarError)
			return m, nil
		}
		m.SetStatusMessage(fmt.Sprintf("Copied %s", rec.Name), model.StatusBarSuccess)

	case key.Matches(msg, m.Keys.Console):
		rec, ok := m.Selected()
		if !ok || !rec.State.IsRunning() {
			return m, nil
		}
		return handoff(m, model.ActionConsole, rec.Name, m.Backend.ConsoleCommand(rec.Name))

	case key.Matches(msg, m.Keys.SSH):
		rec, ok := m.Selected()
		if !ok || !rec.State.IsRunning() {
			return m, nil
		}
		return handoff(m, model.ActionSSH, rec.Name, m.Backend.SSHCommand(rec.Name))

	case key.Matches(msg, m.Keys.SSHAsUser):
		rec, ok := m.Selected()
		if !ok || !rec.State.IsRunning() {
			return m, nil
		}
		m.State = model.StatePromptingSSHUser
		m.SSHDomain = rec.Name
		m.SSHUserInput.Reset()
		return m, m.SSHUserInput.Focus()

	case key.Matches(msg, m.Keys.Start):
		rec, ok := m.Selected()
		if !ok || !rec.State.IsShutOff() {
			return m, nil
		}
		LogInfo(controllerSubsystem, "Starting domain %s", rec.Name)
		m.State = model.StateAwaitingBackend
		m.Activity = "Starting " + rec.Name
		return m, StartDomainCmd(m.Backend, rec.Name)

	case key.Matches(msg, m.Keys.Shutdown):
		rec, ok := m.Selected()
		if !ok || !rec.State.IsRunning() {
			return m, nil
		}
		LogInfo(controllerSubsystem, "Shutting down domain %s", rec.Name)
		m.State = model.StateAwaitingBackend
		m.Activity = "Shutting down " + rec.Name
		return m, ShutdownDomainCmd(m.Backend, rec.Name)
	}
	return m, nil
}

func handlePromptKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.SSHUserInput.Blur()
		m.State = model.StateBrowsing
		m.SSHDomain = ""
		return drainPending(m)

	case key.Matches(msg, m.Keys.Submit):
		user := strings.TrimSpace(m.SSHUserInput.Value())
		if user == "" {
			return m, nil
		}
		m.SSHUserInput.Blur()
		m.State = model.StateAwaitingBackend
		m.Activity = "Resolving address of " + m.SSHDomain
		return m, ResolveAddressCmd(m.Backend, m.SSHDomain, user)
	}

	var cmd tea.Cmd
	m.SSHUserInput, cmd = m.SSHUserInput.Update(msg)
	return m, cmd
}

func handleListLoadedMsg(m *model.Model, msg model.ListLoadedMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Listing domains failed")
		text, kind := describeError("list", "", msg.Err)
		m.SetStatusMessage(text, kind)
	} else {
		m.ApplyList(msg.Filter, msg.Result)
		if msg.Result.Skipped > 0 {
			LogWarn(controllerSubsystem, "Skipped %d unparsable rows from virsh list", msg.Result.Skipped)
		}
	}

	if m.State == model.StateExiting {
		return m, nil
	}
	m.State = model.StateBrowsing
	m.Activity = ""
	return drainPending(m)
}

func handleActionResultMsg(m *model.Model, msg model.ActionResultMsg) (*model.Model, tea.Cmd) {
	if m.State == model.StateExiting {
		return m, nil
	}
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "%s %s failed", msg.Action, msg.Name)
		text, kind := describeError(string(msg.Action), msg.Name, msg.Err)
		m.SetStatusMessage(text, kind)
	} else {
		LogInfo(controllerSubsystem, "%s %s finished", msg.Action, msg.Name)
		switch msg.Action {
		case model.ActionStart:
			m.SetStatusMessage("Started "+msg.Name, model.StatusBarSuccess)
		case model.ActionShutdown:
			m.SetStatusMessage("Shutdown requested for "+msg.Name, model.StatusBarSuccess)
		}
	}

	// Every action ends in a refresh, whatever its outcome.
	return beginRefresh(m, m.Filter, "Refreshing")
}

func handleAddressResolvedMsg(m *model.Model, msg model.AddressResolvedMsg) (*model.Model, tea.Cmd) {
	if m.State == model.StateExiting {
		return m, nil
	}
	host := msg.Address
	if msg.Err != nil {
		LogWarn(controllerSubsystem, "No address for %s, falling back to domain name: %v", msg.Name, msg.Err)
		host = msg.Name
		if errors.Is(msg.Err, virsh.ErrBackendUnavailable) {
			text, kind := describeError("domifaddr", msg.Name, msg.Err)
			m.SetStatusMessage(text, kind)
		}
	}

	target := host
	if msg.User != "" {
		target = msg.User + "@" + host
	}
	m.SSHDomain = ""
	return handoff(m, model.ActionSSH, msg.Name, m.Backend.SSHCommand(target))
}

func beginRefresh(m *model.Model, filter model.ViewFilter, activity string) (*model.Model, tea.Cmd) {
	m.State = model.StateAwaitingBackend
	m.Activity = activity
	return m, FetchListCmd(m.Backend, filter)
}

// handoff gives the terminal to c. Keys typed during the session go to c,
// not to the queue.
func handoff(m *model.Model, action model.ActionKind, name string, c *exec.Cmd) (*model.Model, tea.Cmd) {
	LogInfo(controllerSubsystem, "Handing terminal to %s", strings.Join(c.Args, " "))
	m.State = model.StateAwaitingSubprocess
	m.Activity = fmt.Sprintf("%s %s", action, name)
	return m, HandoffCmd(action, name, c)
}

// drainPending replays keys queued while an action was in flight, stopping
// as soon as one of them starts a new action.
func drainPending(m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for m.State == model.StateBrowsing && len(m.Pending) > 0 {
		next := m.Pending[0]
		m.Pending = m.Pending[1:]

		var cmd tea.Cmd
		m, cmd = dispatchKey(m, next)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(m.Pending) == 0 {
		m.Pending = nil
	}
	return m, tea.Batch(cmds...)
}

// describeError converts a backend failure into a status bar message.
func describeError(action, name string, err error) (string, model.MessageType) {
	subject := action
	if name != "" {
		subject = action + " " + name
	}

	var opErr *virsh.OperationError
	switch {
	case errors.As(err, &opErr):
		return fmt.Sprintf("%s failed: %s", subject, opErr.Message), model.StatusBarError
	case errors.Is(err, virsh.ErrBackendUnavailable):
		return fmt.Sprintf("virsh unavailable, keeping previous list: %v", err), model.StatusBarWarning
	case errors.Is(err, virsh.ErrParseFailure):
		return fmt.Sprintf("could not read virsh output, keeping previous list: %v", err), model.StatusBarWarning
	default:
		return fmt.Sprintf("%s failed: %v", subject, err), model.StatusBarError
	}
}
