// Package pyvenv provisions the workspace's Python virtual environment:
// create .venv when missing, verify its interpreter, upgrade pip and
// install the dependency manifest when one exists.
package pyvenv

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/adk-agents/adk-bootstrap/config"
	"github.com/adk-agents/adk-bootstrap/runner"
)

// Provisioner creates and populates the virtual environment.
type Provisioner struct {
	fs     afero.Fs
	runner *runner.Runner
	logger zerolog.Logger
}

// New returns a Provisioner.
func New(fs afero.Fs, r *runner.Runner, logger zerolog.Logger) *Provisioner {
	return &Provisioner{fs: fs, runner: r, logger: logger}
}

// Provision runs the venv phase against the workspace root. A missing
// requirements manifest is a warning, not an error.
func (p *Provisioner) Provision(ctx context.Context, root string, cfg *config.Config) error {
	venvPath := filepath.Join(root, cfg.VenvDir)

	exists, err := afero.DirExists(p.fs, venvPath)
	if err != nil {
		return err
	}
	if !exists {
		p.logger.Info().Str("path", venvPath).Msg("creating Python virtual environment")
		if _, err := p.runner.Run(ctx, cfg.Python, "-m", "venv", venvPath); err != nil {
			return err
		}
	} else {
		p.logger.Info().Str("path", venvPath).Msg("virtual environment already exists")
	}

	interpreter := filepath.Join(venvPath, "bin", "python")
	ok, err := afero.Exists(p.fs, interpreter)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("python executable not found in virtual environment %s", venvPath)
	}
	p.logger.Info().Str("path", venvPath).Msg("virtual environment verified")

	p.logger.Info().Msg("upgrading pip")
	if _, err := p.runner.Run(ctx, interpreter, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return err
	}

	manifest := filepath.Join(root, cfg.Requirements)
	ok, err = afero.Exists(p.fs, manifest)
	if err != nil {
		return err
	}
	if !ok {
		p.logger.Warn().Str("path", manifest).Msg("requirements file not found, skipping dependency installation")
		return nil
	}

	p.logger.Info().Str("path", manifest).Msg("installing dependencies")
	if _, err := p.runner.Run(ctx, interpreter, "-m", "pip", "install", "-r", manifest); err != nil {
		return err
	}
	return nil
}
