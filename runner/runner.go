// Package runner executes the external commands the provisioning steps
// depend on (git, python, apt-get, ...). Stdout and stderr are always
// captured so a failing step can surface both streams in its error.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Result holds the output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner runs commands sequentially, logging each invocation.
type Runner struct {
	logger zerolog.Logger
}

// New returns a Runner that logs through the given logger.
func New(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes a command in the current working directory.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	return r.RunIn(ctx, "", name, args...)
}

// RunIn executes a command in dir. An empty dir means the current
// working directory. A non-zero exit is returned as an error carrying
// the captured stderr.
func (r *Runner) RunIn(ctx context.Context, dir string, name string, args ...string) (*Result, error) {
	r.logger.Info().Str("dir", dir).Msgf("running: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(err),
	}

	if err != nil {
		return result, fmt.Errorf("command failed: %s %s\nstdout: %s\nstderr: %s: %w",
			name, strings.Join(args, " "), result.Stdout, result.Stderr, err)
	}
	return result, nil
}

// Output runs a command and returns its trimmed stdout.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (string, error) {
	result, err := r.Run(ctx, name, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	default:
		return -1
	}
}
