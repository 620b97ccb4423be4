package cmd

import (
	"os"

	"github.com/bnema/stockdash/internal/logger"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "stockdash",
		Short:         "Stock dashboard client: sign in and view stock metadata",
		Long:          "stockdash signs in to the stock dashboard backend and shows stock metadata in the terminal, in an interactive TUI, or in a local browser client.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error); overrides STOCKDASH_LOG_LEVEL")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed("log-level") {
			return nil
		}

		log, err := logger.Setup(os.Stderr, logLevel, app.settings.LogConsole)
		if err != nil {
			return err
		}
		app.logger = log
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newDashboardCmd(app),
		newUICmd(app),
		newServeCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
