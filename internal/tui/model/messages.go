package model

import "yalv/internal/virsh"

// ActionKind identifies the backend operation an ActionResultMsg reports on.
type ActionKind string

const (
	ActionStart    ActionKind = "start"
	ActionShutdown ActionKind = "shutdown"
	ActionConsole  ActionKind = "console"
	ActionSSH      ActionKind = "ssh"
)

// ListLoadedMsg carries the result of a list call issued for Filter.
type ListLoadedMsg struct {
	Filter ViewFilter
	Result virsh.ListResult
	Err    error
}

// ActionResultMsg is sent when a start, shutdown or terminal handoff finishes.
type ActionResultMsg struct {
	Action ActionKind
	Name   string
	Err    error
}

// AddressResolvedMsg carries the outcome of an address lookup for an SSH
// session as User.
type AddressResolvedMsg struct {
	Name    string
	User    string
	Address string
	Err     error
}
