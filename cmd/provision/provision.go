// Package provision implements the full post-create run: preflight,
// reference repository sync and virtual environment provisioning, in
// that order, failing fast on the first error.
package provision

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/adk-agents/adk-bootstrap/bootlog"
	"github.com/adk-agents/adk-bootstrap/config"
	"github.com/adk-agents/adk-bootstrap/pyvenv"
	"github.com/adk-agents/adk-bootstrap/refsync"
	"github.com/adk-agents/adk-bootstrap/runner"
	"github.com/adk-agents/adk-bootstrap/syscheck"
)

var Cmd = &cobra.Command{
	Use:   "provision",
	Short: "Run the full post-create provisioning sequence",
	Long:  "Verify required tooling, sync the reference repository cache and provision the Python virtual environment. Safe to re-run: existing clones are pulled, not re-cloned.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(cmd.Context())
	},
}

// Run executes the four phases against the real filesystem.
func Run(ctx context.Context) error {
	fmt.Printf("===== adk-bootstrap provision START - %s =====\n", time.Now().Format(time.RFC3339))

	logger, err := bootlog.New(config.LogFileName, true)
	if err != nil {
		return err
	}
	defer bootlog.Close()

	fs := afero.NewOsFs()
	r := runner.New(logger)

	cfg, err := config.Load(fs, "")
	if err != nil {
		return err
	}

	// phase 1: preflight
	logger.Info().Msg("checking for required commands and directories")
	if err := syscheck.InstallGitHubCLI(ctx, fs, r, logger); err != nil {
		return err
	}
	if err := syscheck.CheckAll(logger); err != nil {
		return err
	}

	root, err := cfg.WorkspaceRoot(fs)
	if err != nil {
		return err
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("unable to change directory to %s: %w", root, err)
	}
	logger.Info().Str("dir", root).Msg("changed directory to workspace root")

	// phase 2: reference repository sync
	if err := refsync.New(fs, logger).SyncAll(ctx, cfg.ReferenceDir, cfg.Repos); err != nil {
		return err
	}

	// phase 3: virtual environment
	if err := pyvenv.New(fs, r, logger).Provision(ctx, root, cfg); err != nil {
		return err
	}

	fmt.Printf("===== adk-bootstrap provision END - %s =====\n", time.Now().Format(time.RFC3339))
	return nil
}
