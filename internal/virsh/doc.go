// Package virsh drives the libvirt `virsh` command-line tool.
//
// The package is the only place in yalv that knows how virsh is invoked and
// what its output looks like. Everything above it works with VMRecord values
// and classified errors.
//
// # Operations
//
//   - List runs `virsh list [--all]` and parses the tabular output.
//   - Start and Shutdown run `virsh start|shutdown <name>`.
//   - ConsoleCommand and SSHCommand build interactive commands that the
//     caller hands the terminal to.
//   - ResolveAddress runs `virsh domifaddr` against several address sources.
//
// # Errors
//
// Failures are reported as one of:
//
//   - ErrBackendUnavailable: virsh is missing, cannot be launched, or cannot
//     reach the hypervisor daemon.
//   - ErrParseFailure: the list output does not look like a virsh table.
//   - *OperationError (matching ErrOperationFailed): virsh ran and refused
//     the request.
//
// Malformed data rows in an otherwise valid table are not errors; they are
// skipped and counted in ListResult.Skipped.
package virsh
