// Package refsync keeps the reference repository cache up to date.
// Each repository is cloned on first run and pulled on later runs; the
// tree is locked read-only whenever a sync is not in flight.
package refsync

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/adk-agents/adk-bootstrap/config"
	"github.com/adk-agents/adk-bootstrap/fsutil"
)

// Syncer clones and updates reference repositories.
type Syncer struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New returns a Syncer operating on the given filesystem.
func New(fs afero.Fs, logger zerolog.Logger) *Syncer {
	return &Syncer{fs: fs, logger: logger}
}

// SyncAll ensures the reference directory exists and syncs every repo
// in order. The first failure aborts the rest.
func (s *Syncer) SyncAll(ctx context.Context, referenceDir string, repos []config.Repo) error {
	if err := s.fs.MkdirAll(referenceDir, 0755); err != nil {
		return fmt.Errorf("unable to create reference directory %s: %w", referenceDir, err)
	}
	s.logger.Info().Str("dir", referenceDir).Msg("syncing reference repositories")

	for _, repo := range repos {
		path := filepath.Join(referenceDir, repo.Name)
		if err := s.Sync(ctx, path, repo.URL); err != nil {
			return fmt.Errorf("unable to sync %s: %w", repo.Name, err)
		}
	}
	return nil
}

// Sync clones url into path when absent, or unlocks, pulls and
// re-locks when present. The tree is left read-only on success.
func (s *Syncer) Sync(ctx context.Context, path, url string) error {
	exists, err := afero.DirExists(s.fs, path)
	if err != nil {
		return err
	}

	if !exists {
		s.logger.Info().Str("url", url).Str("path", path).Msg("cloning")
		if _, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{URL: url}); err != nil {
			return fmt.Errorf("clone failed: %w", err)
		}
	} else {
		s.logger.Info().Str("path", path).Msg("already cloned, pulling latest changes")
		if err := fsutil.Unlock(s.fs, path); err != nil {
			return err
		}
		if err := s.pull(ctx, path); err != nil {
			return err
		}
	}

	return fsutil.Lock(s.fs, path)
}

func (s *Syncer) pull(ctx context.Context, path string) error {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return fmt.Errorf("unable to open repository: %w", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("unable to get worktree: %w", err)
	}

	err = worktree.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		s.logger.Info().Str("path", path).Msg("already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}
	return nil
}
