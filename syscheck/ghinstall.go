package syscheck

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/adk-agents/adk-bootstrap/runner"
)

const (
	keyringDir      = "/etc/apt/keyrings"
	keyringPath     = keyringDir + "/githubcli-archive-keyring.gpg"
	keyringURL      = "https://cli.github.com/packages/githubcli-archive-keyring.gpg"
	sourcesListPath = "/etc/apt/sources.list.d/github-cli.list"
	aptPackagesURL  = "https://cli.github.com/packages"
)

// InstallGitHubCLI installs gh through apt when it is not already on
// PATH. Only Debian-derived hosts are supported; anywhere else the
// install is an error. Each step runs under sudo and any failure
// aborts with the captured output.
func InstallGitHubCLI(ctx context.Context, fs afero.Fs, r *runner.Runner, logger zerolog.Logger) error {
	if _, err := exec.LookPath("gh"); err == nil {
		logger.Info().Msg("GitHub CLI (gh) is already installed")
		return nil
	}

	if !IsDebianBased(fs) {
		return fmt.Errorf("GitHub CLI can only be auto-installed on Debian-based systems")
	}

	logger.Info().Msg("GitHub CLI (gh) not found, installing")

	if ok, _ := afero.DirExists(fs, keyringDir); !ok {
		if _, err := r.Run(ctx, "sudo", "mkdir", "-p", "-m", "755", keyringDir); err != nil {
			return err
		}
	}

	tmpKey, err := os.CreateTemp("", "githubcli-keyring-*")
	if err != nil {
		return fmt.Errorf("unable to create temp file for keyring: %w", err)
	}
	tmpKey.Close()
	defer os.Remove(tmpKey.Name())

	if _, err := r.Run(ctx, "wget", "-qO", tmpKey.Name(), keyringURL); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "sudo", "mv", tmpKey.Name(), keyringPath); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "sudo", "chmod", "go+r", keyringPath); err != nil {
		return err
	}

	arch, err := r.Output(ctx, "dpkg", "--print-architecture")
	if err != nil {
		return err
	}

	entry := fmt.Sprintf("deb [arch=%s signed-by=%s] %s stable main\n", arch, keyringPath, aptPackagesURL)
	tmpList, err := os.CreateTemp("", "github-cli-list-*")
	if err != nil {
		return fmt.Errorf("unable to create temp file for apt source: %w", err)
	}
	if _, err := tmpList.WriteString(entry); err != nil {
		tmpList.Close()
		return fmt.Errorf("unable to write apt source entry: %w", err)
	}
	tmpList.Close()
	defer os.Remove(tmpList.Name())

	if _, err := r.Run(ctx, "sudo", "mv", tmpList.Name(), sourcesListPath); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "sudo", "apt-get", "update"); err != nil {
		return err
	}
	if _, err := r.Run(ctx, "sudo", "apt-get", "install", "-y", "gh"); err != nil {
		return err
	}

	logger.Info().Msg("GitHub CLI installed successfully")
	return nil
}
