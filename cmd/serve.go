package cmd

import (
	"waylink/pkg/config"
	"waylink/pkg/errors"
	"waylink/pkg/history"
	"waylink/pkg/hostchannel"
	"waylink/pkg/logger"
	"waylink/pkg/server"

	"github.com/spf13/cobra"
)

var (
	serveMode    string
	serveTCPPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the proxy (default command)",
	Long:  `Bind the Wayland listening endpoint and relay pixels/input to the configured host channel until it closes.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = serveMode
	}
	if cmd.Flags().Changed("tcp-port") {
		cfg.TCPPort = serveTCPPort
	}

	logger.Info().Str("mode", cfg.Mode).Str("listen", cfg.ListenPath()).Msg("starting waylinkd")

	host, err := hostchannel.Open(cfg)
	if err != nil {
		return err
	}
	defer host.Close()

	var hist *history.Manager
	if cfg.HistoryDB != "" {
		hist, err = history.NewManager(cfg.HistoryDB)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeGeneral, "failed to open session history", err)
		}
		defer hist.Close()
	}

	srv := server.New(cfg, host, hist)
	return srv.Run()
}

func init() {
	serveCmd.Flags().StringVar(&serveMode, "mode", "", "Host channel mode override (stdio, tcp)")
	serveCmd.Flags().IntVar(&serveTCPPort, "tcp-port", 0, "TCP port override, used when mode=tcp")

	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
}
