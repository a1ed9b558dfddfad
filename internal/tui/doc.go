// Package tui provides the Terminal User Interface for yalv.
//
// The interface lists libvirt domains through virsh and lets the user start,
// stop and connect to them from a single keyboard-driven screen.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model: the domain registry, the view filter, the cursor and the
//     controller state
//   - View: a pure function from the model to a frame
//   - Controller: maps keys to actions and sequences backend calls
//
// # Core Components
//
// Model (internal/tui/model/):
//   - Holds the last list returned by virsh; it is never edited locally
//   - Keeps the cursor inside the visible list, preserving the selected
//     domain by name across refreshes
//
// View (internal/tui/view/):
//   - Renders one row per visible domain with the selected row highlighted
//   - Shows an empty-state message, a degraded-output warning, the SSH user
//     prompt and a status bar with the active filter
//
// Controller (internal/tui/controller/):
//   - Processes keyboard input in the Browsing state
//   - Queues keys while a backend call or terminal handoff is in flight and
//     replays them in order afterwards
//   - Hands the terminal to virsh console or ssh through tea.ExecProcess and
//     refreshes once they exit
//
// # Keyboard Shortcuts
//
//	j/↓      Move down
//	k/↑      Move up
//	A        Toggle between running and all domains
//	Enter    Open the serial console (running domains)
//	s        SSH to the domain by name (running domains)
//	S        SSH as a chosen user to the resolved address (running domains)
//	u        Start (shut off domains)
//	d        Graceful shutdown (running domains)
//	r        Refresh
//	y        Copy the domain name
//	?        Toggle full help
//	q/Esc    Quit
//	Ctrl+C   Quit immediately
//
// # Logging
//
// The terminal belongs to the TUI, so logs go to the file given with
// --log-file, or nowhere.
package tui
