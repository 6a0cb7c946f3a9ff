// Package cmd implements the waylinkd command-line tree: a cobra root
// command with one file per subcommand. CLI parsing itself is ambient
// scaffolding around the core proxy, not part of the wire-protocol
// surface.
package cmd

import (
	"os"

	"waylink/pkg/errors"
	"waylink/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "waylinkd",
	Short: "Wayland-to-host pixel/input proxy",
	Long: `waylinkd terminates the Wayland wire protocol on a local endpoint,
relays committed surface pixels to an external presentation host as
framed PIXL records, and injects host-originated input as synthesized
pointer/keyboard events.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("WAYLINK_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		cmd.Printf("waylinkd version %s\n", ver)
	},
}

// Execute runs the root command, handling any returned error through
// the shared fatal-error path and exiting with its code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errors.Handle(err)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(sessionsCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal, panic)")
}
