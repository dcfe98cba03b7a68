// Package venv runs the virtual environment phase on its own.
package venv

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/adk-agents/adk-bootstrap/bootlog"
	"github.com/adk-agents/adk-bootstrap/config"
	"github.com/adk-agents/adk-bootstrap/pyvenv"
	"github.com/adk-agents/adk-bootstrap/runner"
)

var Cmd = &cobra.Command{
	Use:   "venv",
	Short: "Provision the workspace Python virtual environment",
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

		root, err := cfg.WorkspaceRoot(fs)
		if err != nil {
			return err
		}

		r := runner.New(logger)
		return pyvenv.New(fs, r, logger).Provision(cmd.Context(), root, cfg)
	},
}
