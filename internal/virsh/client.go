package virsh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"yalv/pkg/logging"
)

const subsystem = "Virsh"

// DefaultBinary is the virsh executable looked up in PATH.
const DefaultBinary = "virsh"

// DefaultSSHBinary is the ssh executable looked up in PATH.
const DefaultSSHBinary = "ssh"

// AddressSources are the domifaddr sources tried, in order. The default
// lease source only works for libvirt-managed DHCP networks.
var AddressSources = []string{"lease", "arp", "agent"}

// RunResult is the captured outcome of a finished command.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes a non-interactive command to completion. A non-zero exit
// is reported through RunResult.ExitCode; the error is reserved for
// commands that could not be run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (RunResult, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}

// Client issues requests to virsh.
type Client struct {
	binary    string
	sshBinary string
	runner    Runner
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the virsh executable.
func WithBinary(path string) Option {
	return func(c *Client) { c.binary = path }
}

// WithSSHBinary overrides the ssh executable.
func WithSSHBinary(path string) Option {
	return func(c *Client) { c.sshBinary = path }
}

// WithRunner replaces the process runner, typically with a fake in tests.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

// NewClient creates a virsh client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		binary:    DefaultBinary,
		sshBinary: DefaultSSHBinary,
		runner:    execRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns the domains reported by `virsh list`. With includeInactive
// the --all flag is passed and shut off domains are included.
func (c *Client) List(ctx context.Context, includeInactive bool) (ListResult, error) {
	args := []string{"list"}
	if includeInactive {
		args = append(args, "--all")
	}
	logging.Debug(subsystem, "Running %s %s", c.binary, strings.Join(args, " "))

	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return ListResult{}, fmt.Errorf("%w: %s: %v", ErrBackendUnavailable, c.binary, err)
	}
	if res.ExitCode != 0 {
		return ListResult{}, fmt.Errorf("%w: %s list exited with status %d: %s",
			ErrBackendUnavailable, c.binary, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	result, err := ParseList(res.Stdout)
	if err != nil {
		logging.Warn(subsystem, "Could not parse list output (%d bytes)", len(res.Stdout))
		return ListResult{}, err
	}
	if result.Skipped > 0 {
		logging.Warn(subsystem, "Skipped %d malformed rows in list output", result.Skipped)
	}
	logging.Info(subsystem, "Listed %d domains (includeInactive=%v)", len(result.Records), includeInactive)
	return result, nil
}

// Start boots a shut off domain.
func (c *Client) Start(ctx context.Context, name string) error {
	return c.domainOp(ctx, "start", name)
}

// Shutdown asks a running domain to shut down gracefully.
func (c *Client) Shutdown(ctx context.Context, name string) error {
	return c.domainOp(ctx, "shutdown", name)
}

func (c *Client) domainOp(ctx context.Context, op, name string) error {
	logging.Info(subsystem, "Running %s %s %s", c.binary, op, name)
	res, err := c.runner.Run(ctx, c.binary, op, name)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBackendUnavailable, c.binary, err)
	}
	if res.ExitCode != 0 {
		opErr := &OperationError{
			Op:      op,
			Domain:  name,
			Message: firstNonEmpty(res.Stderr, res.Stdout),
			Err:     fmt.Errorf("exit status %d", res.ExitCode),
		}
		logging.Error(subsystem, opErr, "virsh %s failed for %s", op, name)
		return opErr
	}
	return nil
}

// ConsoleCommand returns the interactive `virsh console` command for name.
// The caller must give it the terminal and wait for it to exit.
func (c *Client) ConsoleCommand(name string) *exec.Cmd {
	return exec.Command(c.binary, "console", name)
}

// SSHCommand returns an interactive ssh session to target.
func (c *Client) SSHCommand(target string) *exec.Cmd {
	return exec.Command(c.sshBinary, target)
}

// ResolveAddress looks up an IPv4 address for the domain, trying each of
// AddressSources in turn. Failing sources are logged and skipped.
func (c *Client) ResolveAddress(ctx context.Context, name string) (string, error) {
	for _, source := range AddressSources {
		res, err := c.runner.Run(ctx, c.binary, "domifaddr", name, "--source", source)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrBackendUnavailable, c.binary, err)
		}
		if res.ExitCode != 0 {
			logging.Debug(subsystem, "domifaddr --source %s failed for %s: %s", source, name, strings.TrimSpace(res.Stderr))
			continue
		}
		if addr, ok := ParseDomIfAddr(res.Stdout); ok {
			logging.Info(subsystem, "Resolved %s -> %s (source: %s)", name, addr, source)
			return addr, nil
		}
	}
	return "", fmt.Errorf("%w for domain %s", ErrNoAddress, name)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
