package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adk-agents/adk-bootstrap/version"
)

// Cmd represents the "version" command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Get version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
