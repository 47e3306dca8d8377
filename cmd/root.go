package cmd

import (
	"fmt"
	"os"

	"auction-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "auction-manager",
	Short: "Auction Manager Service",
	Long: `Auction Manager is the backend for the auction-management application.
It serves the CRUD API and runs the transactional reconciliation engine
that keeps auction and user child collections in sync with submitted state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with debug level gives readable timestamps for a
		// CLI invocation.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
