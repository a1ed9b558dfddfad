package virsh

import (
	"errors"
	"fmt"
	"strings"
)

// VMState is the state column reported by `virsh list`.
type VMState string

const (
	StateRunning VMState = "running"
	StateShutOff VMState = "shut off"
)

// IsRunning reports whether the domain is running.
func (s VMState) IsRunning() bool { return s == StateRunning }

// IsShutOff reports whether the domain is shut off.
func (s VMState) IsShutOff() bool { return s == StateShutOff }

func (s VMState) String() string { return string(s) }

// VMRecord describes one domain as reported by virsh.
type VMRecord struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	State VMState `json:"state" yaml:"state"`
}

// ListResult is the parsed output of a list query.
type ListResult struct {
	Records []VMRecord
	// Skipped counts data rows that could not be parsed.
	Skipped int
}

var (
	// ErrBackendUnavailable indicates virsh could not be run or could not
	// reach the hypervisor.
	ErrBackendUnavailable = errors.New("virsh backend unavailable")

	// ErrParseFailure indicates the list output was not a recognisable table.
	ErrParseFailure = errors.New("unrecognised virsh list output")

	// ErrOperationFailed indicates virsh ran but rejected the request.
	ErrOperationFailed = errors.New("virsh operation failed")

	// ErrNoAddress indicates no IPv4 address was found for a domain.
	ErrNoAddress = errors.New("no IPv4 address found")
)

// OperationError carries the message virsh printed for a failed operation.
type OperationError struct {
	Op      string
	Domain  string
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("virsh %s %s: %s", e.Op, e.Domain, msg)
}

func (e *OperationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrOperationFailed) match any OperationError.
func (e *OperationError) Is(target error) bool { return target == ErrOperationFailed }
