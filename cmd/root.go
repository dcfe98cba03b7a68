package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/adk-agents/adk-bootstrap/cmd/doctor"
	"github.com/adk-agents/adk-bootstrap/cmd/provision"
	"github.com/adk-agents/adk-bootstrap/cmd/status"
	synccmd "github.com/adk-agents/adk-bootstrap/cmd/sync"
	"github.com/adk-agents/adk-bootstrap/cmd/venv"
	"github.com/adk-agents/adk-bootstrap/cmd/version"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "adk-bootstrap",
	Short:         "Provision an ADK agents devcontainer workspace",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(doctor.Cmd)
	RootCmd.AddCommand(genBashCompletionCmd)
	RootCmd.AddCommand(provision.Cmd)
	RootCmd.AddCommand(status.Cmd)
	RootCmd.AddCommand(synccmd.Cmd)
	RootCmd.AddCommand(venv.Cmd)
	RootCmd.AddCommand(version.Cmd)
}

var genBashCompletionCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completions file",
	Run: func(cmd *cobra.Command, args []string) {
		RootCmd.GenBashCompletion(os.Stdout)
	},
}
