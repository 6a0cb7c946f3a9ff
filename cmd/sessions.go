package cmd

import (
	"fmt"

	"waylink/pkg/config"
	"waylink/pkg/errors"
	"waylink/pkg/history"

	"github.com/spf13/cobra"
)

var sessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent proxy sessions",
	Long:  `Print the diagnostic session ledger: recent connections, their lifetime, and frame/byte counts. Purely observational.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath := cfg.HistoryDB
		if dbPath == "" {
			dbPath = history.DefaultDBPath()
		}

		hist, err := history.NewManager(dbPath)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeGeneral, "failed to open session history", err)
		}
		defer hist.Close()

		sessions, err := hist.Recent(sessionsLimit)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No recorded sessions.")
			return nil
		}

		for _, s := range sessions {
			status := "connected"
			if s.DisconnectedAt.Valid {
				status = s.DisconnectedAt.Time.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%s  connected=%s  disconnected=%s  frames=%d  bytes=%d\n",
				s.ID, s.ConnectedAt.Format("2006-01-02 15:04:05"), status, s.FramesSent, s.BytesSent)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsLimit, "limit", 20, "Maximum sessions to show")
}
