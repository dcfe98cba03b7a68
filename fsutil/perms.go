// Package fsutil toggles the permission lock on reference repository
// trees. A locked tree has directories at 0555 and files at 0444 so
// vendored reference material cannot be edited by accident; unlocking
// restores 0755/0644 for the duration of a pull.
package fsutil

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	DirLocked    os.FileMode = 0555
	FileLocked   os.FileMode = 0444
	DirWritable  os.FileMode = 0755
	FileWritable os.FileMode = 0644
)

// State is the three-valued observation of a repository directory.
type State int

const (
	Absent State = iota
	Writable
	ReadOnly
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Writable:
		return "writable"
	case ReadOnly:
		return "read-only"
	default:
		return "unknown"
	}
}

// Lock recursively applies the read-only bit patterns to path.
func Lock(fs afero.Fs, path string) error {
	return setPermissions(fs, path, DirLocked, FileLocked)
}

// Unlock recursively applies the writable bit patterns to path.
func Unlock(fs afero.Fs, path string) error {
	return setPermissions(fs, path, DirWritable, FileWritable)
}

func setPermissions(fs afero.Fs, path string, dirMode, fileMode os.FileMode) error {
	err := afero.Walk(fs, path, func(name string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		mode := fileMode
		if info.IsDir() {
			mode = dirMode
		}
		return fs.Chmod(name, mode)
	})
	if err != nil {
		return fmt.Errorf("unable to set permissions on %s: %w", path, err)
	}
	return nil
}

// Observe reports whether path is absent, writable or locked read-only.
// The owner write bit on the directory itself decides between the
// latter two.
func Observe(fs afero.Fs, path string) (State, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Absent, nil
		}
		return Absent, err
	}
	if !info.IsDir() {
		return Absent, fmt.Errorf("%s exists but is not a directory", path)
	}
	if info.Mode().Perm()&0200 == 0 {
		return ReadOnly, nil
	}
	return Writable, nil
}
