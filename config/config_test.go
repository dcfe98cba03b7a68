package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/workspaces", cfg.WorkspacesDir)
	assert.Equal(t, "adk-agents-golden", cfg.FallbackRepo)
	assert.Equal(t, "/workspaces/adk-reference-repos", cfg.ReferenceDir)
	assert.Len(t, cfg.Repos, 4)
	assert.Equal(t, "adk-python", cfg.Repos[0].Name)
	assert.Equal(t, "https://github.com/google/adk-python", cfg.Repos[0].URL)
}

func TestLoadDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultWorkspacesDir, cfg.WorkspacesDir)
	assert.Equal(t, DefaultPython, cfg.Python)
	assert.Len(t, cfg.Repos, 4)
}

func TestLoadConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("venv_dir: .env\nrepos:\n  - name: adk-docs\n    url: https://github.com/google/adk-docs\n")
	require.NoError(t, afero.WriteFile(fs, "/tmp/.adk-bootstrap.yaml", content, 0644))

	cfg, err := Load(fs, "/tmp/.adk-bootstrap.yaml")
	require.NoError(t, err)
	assert.Equal(t, ".env", cfg.VenvDir)
	require.Len(t, cfg.Repos, 1)
	assert.Equal(t, "adk-docs", cfg.Repos[0].Name)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultWorkspacesDir, cfg.WorkspacesDir)
}

func TestLoadEnvRepository(t *testing.T) {
	t.Setenv(EnvGitHubRepository, "google/adk-samples")

	fs := afero.NewMemMapFs()
	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, "google/adk-samples", cfg.GitHubRepository)
}

func TestWorkspaceRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/workspaces/foo", 0755))
	require.NoError(t, fs.MkdirAll("/workspaces/adk-agents-golden", 0755))

	cfg := Default()

	// env var set and directory present
	cfg.GitHubRepository = "owner/foo"
	root, err := cfg.WorkspaceRoot(fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/workspaces", "foo"), root)

	// env var set but directory absent: fall back
	cfg.GitHubRepository = "owner/missing"
	root, err = cfg.WorkspaceRoot(fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/workspaces", "adk-agents-golden"), root)

	// env var unset: fall back
	cfg.GitHubRepository = ""
	root, err = cfg.WorkspaceRoot(fs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/workspaces", "adk-agents-golden"), root)
}

func TestWorkspaceRootMissingWorkspaces(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := Default()

	_, err := cfg.WorkspaceRoot(fs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/workspaces")
}

func TestRepoPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/workspaces/adk-reference-repos/adk-python", cfg.RepoPath("adk-python"))
}
