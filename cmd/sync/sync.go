// Package sync runs the reference repository phase on its own.
package sync

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/adk-agents/adk-bootstrap/bootlog"
	"github.com/adk-agents/adk-bootstrap/config"
	"github.com/adk-agents/adk-bootstrap/refsync"
)

var Cmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the read-only reference repository cache",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := bootlog.New(config.LogFileName, true)
		if err != nil {
			return err
		}
		defer bootlog.Close()

		fs := afero.NewOsFs()
		cfg, err := config.Load(fs, "")
		if err != nil {
			return err
		}

		return refsync.New(fs, logger).SyncAll(cmd.Context(), cfg.ReferenceDir, cfg.Repos)
	},
}
