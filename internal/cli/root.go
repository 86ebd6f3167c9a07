/*
Copyright © 2026 Flowsmith Authors
*/
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"Flowsmith/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "flowsmith",
	Short: "Compile visual agent workflows into runnable ADK projects",
	Long: `Flowsmith turns a workflow configuration (agents, tools, parameters,
deployment settings) into a complete Python project for the Google Agent
Development Kit.

Compilation runs in two phases: validation reports every identifier, range
and deployment problem without touching the configuration, and generation
emits the project files deterministically.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the CLI. A .env file in the working directory is loaded first
// so local overrides apply to every command.
func Execute() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
