package config

const (
	DefaultWorkspacesDir = "/workspaces"
	DefaultFallbackRepo  = "adk-agents-golden"
	DefaultReferenceDir  = "/workspaces/adk-reference-repos"
	DefaultVenvDir       = ".venv"
	DefaultRequirements  = "requirements.txt"
	DefaultPython        = "python3"

	// ConfigName is the basename of the optional override file,
	// searched without extension (.adk-bootstrap.yaml).
	ConfigName = ".adk-bootstrap"

	LogFileName = "adk-bootstrap.log"

	// EnvGitHubRepository selects the workspace subdirectory (owner/name).
	EnvGitHubRepository = "GITHUB_REPOSITORY"
)
