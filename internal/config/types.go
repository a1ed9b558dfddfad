package config

import (
	"errors"
	"strings"

	"yalv/pkg/logging"
)

// Settings is the resolved configuration for one yalv run.
type Settings struct {
	// ShowAll selects the initial view filter: all domains, not only running ones.
	ShowAll bool
	// Debug lowers the log level to DEBUG.
	Debug bool
	// LogFile receives log output while the TUI owns the terminal. Empty discards logs.
	LogFile string
	// VirshBinary is the virsh executable.
	VirshBinary string
	// SSHBinary is the ssh executable used for SSH sessions.
	SSHBinary string
}

var (
	errEmptyVirsh = errors.New("virsh binary must not be empty")
	errEmptySSH   = errors.New("ssh binary must not be empty")
)

// Validate checks that the settings can be used to start yalv.
func (s Settings) Validate() error {
	var errs []error
	if strings.TrimSpace(s.VirshBinary) == "" {
		errs = append(errs, errEmptyVirsh)
	}
	if strings.TrimSpace(s.SSHBinary) == "" {
		errs = append(errs, errEmptySSH)
	}
	return errors.Join(errs...)
}

// LogLevel maps the Debug flag to a logging level.
func (s Settings) LogLevel() logging.LogLevel {
	if s.Debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}
