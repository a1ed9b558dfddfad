package cmd

import (
	"yalv/internal/cli"
	"yalv/pkg/logging"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		showAll      bool
		outputFormat string
		quiet        bool
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the domains once and exit",
		Long: `Print the domains known to virsh without starting the TUI.

Only running domains are listed unless --all is given. The output format is
a table by default; json and yaml are available for scripting.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(outputFormat)
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			logging.InitForCLI(settings.LogLevel(), cmd.ErrOrStderr())

			res, err := newClient(settings).List(cmd.Context(), showAll)
			if err != nil {
				return err
			}
			printer := cli.NewPrinter(cmd.OutOrStdout(), cli.PrinterOptions{Format: format, Quiet: quiet})
			return printer.PrintDomains(res)
		},
	}

	listCmd.Flags().BoolVar(&showAll, "all", false, "Include inactive domains")
	listCmd.Flags().StringVarP(&outputFormat, "output", "o", string(cli.OutputFormatTable), "Output format: table, json or yaml")
	listCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the table, without summary lines")
	return listCmd
}
