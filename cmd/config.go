package cmd

import (
	"fmt"

	"waylink/pkg/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show waylinkd configuration and its file path",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Mode:         %s\n", cfg.Mode)
		fmt.Printf("TCP Port:     %d\n", cfg.TCPPort)
		fmt.Printf("Listen Path:  %s\n", cfg.ListenPath())
		fmt.Printf("Log Level:    %s\n", cfg.LogLevel)
		fmt.Printf("History DB:   %s\n", func() string {
			if cfg.HistoryDB == "" {
				return "(disabled)"
			}
			return cfg.HistoryDB
		}())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
