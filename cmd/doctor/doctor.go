// Package doctor reports on the host without changing it, except for
// the optional GitHub CLI install.
package doctor

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/adk-agents/adk-bootstrap/bootlog"
	"github.com/adk-agents/adk-bootstrap/runner"
	"github.com/adk-agents/adk-bootstrap/syscheck"
)

var installGh bool

var Cmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check required tooling without provisioning anything",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := bootlog.Console()
		fs := afero.NewOsFs()

		if desc, err := syscheck.HostDescription(); err == nil {
			logger.Info().Str("host", desc).Msg("host platform")
		} else {
			logger.Warn().Err(err).Msg("unable to read host info")
		}

		if installGh {
			r := runner.New(logger)
			if err := syscheck.InstallGitHubCLI(cmd.Context(), fs, r, logger); err != nil {
				return err
			}
		}

		return syscheck.CheckAll(logger)
	},
}

func init() {
	Cmd.Flags().BoolVar(&installGh, "install", false, "attempt to install the GitHub CLI when missing")
}
