// Package config holds the provisioning configuration: the workspace
// layout, the reference repository list, and the virtual environment
// settings. Every value has a built-in default matching the ADK
// devcontainer; an optional .adk-bootstrap.yaml file and the
// GITHUB_REPOSITORY environment variable override them.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Repo is one reference repository to keep cached read-only.
type Repo struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// Config is the full provisioning configuration.
type Config struct {
	WorkspacesDir string `mapstructure:"workspaces_dir"`
	FallbackRepo  string `mapstructure:"fallback_repo"`
	ReferenceDir  string `mapstructure:"reference_dir"`
	Repos         []Repo `mapstructure:"repos"`
	VenvDir       string `mapstructure:"venv_dir"`
	Requirements  string `mapstructure:"requirements"`
	Python        string `mapstructure:"python"`

	// GitHubRepository mirrors the GITHUB_REPOSITORY env var (owner/name).
	GitHubRepository string `mapstructure:"github_repository"`
}

// DefaultRepos is the fixed set of ADK reference repositories.
func DefaultRepos() []Repo {
	return []Repo{
		{Name: "adk-python", URL: "https://github.com/google/adk-python"},
		{Name: "adk-samples", URL: "https://github.com/google/adk-samples"},
		{Name: "adk-docs", URL: "https://github.com/google/adk-docs"},
		{Name: "adk-python-community", URL: "https://github.com/google/adk-python-community"},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WorkspacesDir: DefaultWorkspacesDir,
		FallbackRepo:  DefaultFallbackRepo,
		ReferenceDir:  DefaultReferenceDir,
		Repos:         DefaultRepos(),
		VenvDir:       DefaultVenvDir,
		Requirements:  DefaultRequirements,
		Python:        DefaultPython,
	}
}

// Load builds the configuration from defaults, an optional config file
// and the environment. cfgFile may be empty, in which case the file is
// searched in the current directory and the workspaces directory; a
// missing file is not an error.
func Load(fs afero.Fs, cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault("workspaces_dir", DefaultWorkspacesDir)
	v.SetDefault("fallback_repo", DefaultFallbackRepo)
	v.SetDefault("reference_dir", DefaultReferenceDir)
	v.SetDefault("venv_dir", DefaultVenvDir)
	v.SetDefault("requirements", DefaultRequirements)
	v.SetDefault("python", DefaultPython)

	v.AutomaticEnv()
	if err := v.BindEnv("github_repository", EnvGitHubRepository); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(v.GetString("workspaces_dir"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("unable to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if len(cfg.Repos) == 0 {
		cfg.Repos = DefaultRepos()
	}
	return cfg, nil
}

// WorkspaceRoot resolves the directory being provisioned. The repo name
// is the last path segment of GITHUB_REPOSITORY; when the variable is
// unset or the derived directory does not exist, the fallback repo is
// used instead. The workspaces directory itself must exist.
func (c *Config) WorkspaceRoot(fs afero.Fs) (string, error) {
	ok, err := afero.DirExists(fs, c.WorkspacesDir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("workspaces directory %s does not exist", c.WorkspacesDir)
	}

	name := c.FallbackRepo
	if c.GitHubRepository != "" {
		parts := strings.Split(c.GitHubRepository, "/")
		name = parts[len(parts)-1]
	}

	root := filepath.Join(c.WorkspacesDir, name)
	ok, err = afero.DirExists(fs, root)
	if err != nil {
		return "", err
	}
	if !ok {
		root = filepath.Join(c.WorkspacesDir, c.FallbackRepo)
	}
	return root, nil
}

// RepoPath returns the cache path for a reference repository.
func (c *Config) RepoPath(name string) string {
	return filepath.Join(c.ReferenceDir, name)
}
