// Package status prints a read-only report of the provisioned state:
// each reference repository's presence and lock state, the resolved
// workspace root, and whether the virtual environment exists.
package status

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/adk-agents/adk-bootstrap/config"
	"github.com/adk-agents/adk-bootstrap/fsutil"
)

var Cmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the reference cache and virtual environment",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs := afero.NewOsFs()
		cfg, err := config.Load(fs, "")
		if err != nil {
			return err
		}
		return Report(fs, cfg, cmd.OutOrStdout())
	},
}

// Report writes the status table to w.
func Report(fs afero.Fs, cfg *config.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Repository", "Path", "State")

	for _, repo := range cfg.Repos {
		path := cfg.RepoPath(repo.Name)
		state, err := fsutil.Observe(fs, path)
		if err != nil {
			return err
		}
		table.Append([]string{repo.Name, path, state.String()})
	}
	if err := table.Render(); err != nil {
		return err
	}

	root, err := cfg.WorkspaceRoot(fs)
	if err != nil {
		fmt.Fprintf(w, "workspace root: unresolved (%v)\n", err)
		return nil
	}
	fmt.Fprintf(w, "workspace root: %s\n", root)

	venvPath := filepath.Join(root, cfg.VenvDir)
	if ok, _ := afero.DirExists(fs, venvPath); ok {
		interpreter := filepath.Join(venvPath, "bin", "python")
		if ok, _ := afero.Exists(fs, interpreter); ok {
			fmt.Fprintf(w, "virtual environment: %s (verified)\n", venvPath)
		} else {
			fmt.Fprintf(w, "virtual environment: %s (missing interpreter)\n", venvPath)
		}
	} else {
		fmt.Fprintf(w, "virtual environment: absent\n")
	}
	return nil
}
