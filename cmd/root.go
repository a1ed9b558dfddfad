package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"yalv/internal/config"
	"yalv/internal/tui/controller"
	"yalv/internal/tui/model"
	"yalv/internal/virsh"
	"yalv/pkg/logging"

	"github.com/spf13/cobra"
)

const cliSubsystem = "CLI"

var settings = config.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yalv",
	Short: "Browse and control libvirt virtual machines from the terminal",
	Long: `yalv lists the libvirt domains known to virsh and lets you start,
shut down and connect to them without leaving the keyboard.

Only running domains are shown by default; pass --all to include inactive
ones. The list is refreshed after every action.

Keys:
  j/↓, k/↑   move the selection
  A          toggle between running and all domains
  enter      open the serial console (virsh console)
  s          ssh to the domain by name
  S          ssh as a chosen user to the domain's address
  u          start the selected domain
  d          shut down the selected domain
  r          refresh
  y          copy the domain name
  ?          show all keys
  q/esc      quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "yalv version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.Flags().BoolVar(&settings.ShowAll, "all", false, "Show inactive domains as well as running ones")
	rootCmd.PersistentFlags().BoolVar(&settings.Debug, "debug", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&settings.LogFile, "log-file", "", "Append logs to this file (the TUI discards logs otherwise)")
	rootCmd.PersistentFlags().StringVar(&settings.VirshBinary, "virsh", settings.VirshBinary, "virsh executable")
	rootCmd.PersistentFlags().StringVar(&settings.SSHBinary, "ssh", settings.SSHBinary, "ssh executable")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	// Arguments are valid from here on; failures are not usage errors.
	cmd.SilenceUsage = true

	closeLog, err := logging.InitForTUI(settings.LogLevel(), settings.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	m, err := prepareModel(cmd.Context(), settings)
	if err != nil {
		return err
	}

	p := controller.NewProgram(m)
	if _, err := p.Run(); err != nil {
		logging.Error(cliSubsystem, err, "TUI terminated with an error")
		return fmt.Errorf("error running TUI: %w", err)
	}
	logging.Info(cliSubsystem, "Exited normally")
	return nil
}

// prepareModel builds the TUI model and performs the startup refresh. An
// unreachable backend is fatal here; unreadable output is not.
func prepareModel(ctx context.Context, s config.Settings) (*model.Model, error) {
	client := newClient(s)
	m := model.New(client, model.FilterFor(s.ShowAll), s.Debug)

	if err := m.Refresh(ctx, m.Filter); err != nil {
		if errors.Is(err, virsh.ErrBackendUnavailable) {
			return nil, fmt.Errorf("cannot list domains: %w", err)
		}
		logging.Warn(cliSubsystem, "Starting with an empty list: %v", err)
		m.SetStatusMessage(fmt.Sprintf("could not read virsh output: %v", err), model.StatusBarWarning)
	}
	logging.Info(cliSubsystem, "Loaded %d domains (filter %s)", len(m.Records), m.Filter)
	return m, nil
}

func newClient(s config.Settings) *virsh.Client {
	return virsh.NewClient(virsh.WithBinary(s.VirshBinary), virsh.WithSSHBinary(s.SSHBinary))
}
