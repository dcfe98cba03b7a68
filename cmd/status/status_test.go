package status

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adk-agents/adk-bootstrap/config"
	"github.com/adk-agents/adk-bootstrap/fsutil"
)

func TestStatusArgs(t *testing.T) {
	assert.NoError(t, Cmd.Args(Cmd, []string{}))
	assert.Error(t, Cmd.Args(Cmd, []string{"extra"}))
}

func TestReport(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.Default()

	// one repo present and locked, one present writable, rest absent
	require.NoError(t, fs.MkdirAll(cfg.RepoPath("adk-python"), 0755))
	require.NoError(t, fsutil.Lock(fs, cfg.RepoPath("adk-python")))
	require.NoError(t, fs.MkdirAll(cfg.RepoPath("adk-docs"), 0755))

	// workspace with a verified venv
	require.NoError(t, fs.MkdirAll("/workspaces/adk-agents-golden/.venv/bin", 0755))
	require.NoError(t, afero.WriteFile(fs, "/workspaces/adk-agents-golden/.venv/bin/python", []byte("x"), 0755))

	var buf bytes.Buffer
	require.NoError(t, Report(fs, cfg, &buf))

	out := buf.String()
	assert.Contains(t, out, "adk-python")
	assert.Contains(t, out, "read-only")
	assert.Contains(t, out, "writable")
	assert.Contains(t, out, "absent")
	assert.Contains(t, out, "workspace root: /workspaces/adk-agents-golden")
	assert.Contains(t, out, "(verified)")
}

func TestReportUnresolvedWorkspace(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.Default()

	var buf bytes.Buffer
	require.NoError(t, Report(fs, cfg, &buf))
	assert.Contains(t, buf.String(), "workspace root: unresolved")
}
