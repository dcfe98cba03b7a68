// Package syscheck verifies the external tooling the provisioning run
// depends on, and can install the GitHub CLI on Debian-based hosts.
package syscheck

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/afero"
)

// RequiredCommands must all resolve on PATH before provisioning starts.
var RequiredCommands = []string{"git", "python3", "pip", "gh"}

// debianMarker is the release marker file identifying Debian-derived systems.
const debianMarker = "/etc/debian_version"

// Require resolves a single command on PATH.
func Require(logger zerolog.Logger, name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("required command %q not found", name)
	}
	logger.Info().Str("command", name).Msg("found command")
	return nil
}

// CheckAll resolves every required command, stopping at the first miss.
func CheckAll(logger zerolog.Logger) error {
	for _, name := range RequiredCommands {
		if err := Require(logger, name); err != nil {
			return err
		}
	}
	return nil
}

// IsDebianBased reports whether the host is Debian-derived.
func IsDebianBased(fs afero.Fs) bool {
	ok, err := afero.Exists(fs, debianMarker)
	return err == nil && ok
}

// HostDescription returns a one-line platform summary for the doctor
// report.
func HostDescription() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("unable to read host info: %w", err)
	}
	return fmt.Sprintf("%s %s (%s family, %s)",
		info.Platform, info.PlatformVersion, info.PlatformFamily, info.KernelArch), nil
}
