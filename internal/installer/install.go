package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"terminalist/internal/logger"
)

var (
	// ErrExists is returned by Install when an entry with the tool's name is already present.
	ErrExists = errors.New("already exists")
	// ErrNotWritable is returned by Install when the interception directory cannot be written.
	ErrNotWritable = errors.New("not writable")
	// ErrNotInterception is returned by Remove when the entry is not a symlink to this executable.
	ErrNotInterception = errors.New("not an existing interception")
)

// Interceptor manages interception symlinks next to the management executable.
// - SelfPath: canonical (fully resolved) path of the management executable.
// - Dir: directory holding SelfPath, where interceptions are created.
// - Writable: directory write check used by Install.
type Interceptor struct {
	SelfPath string
	Dir      string
	Writable func(dir string) bool
}

// New returns an Interceptor for the executable at selfPath.
func New(selfPath string) *Interceptor {
	if resolved, err := filepath.EvalSymlinks(selfPath); err == nil {
		selfPath = resolved
	}
	return &Interceptor{SelfPath: selfPath, Dir: filepath.Dir(selfPath), Writable: writable}
}

// Path returns where the interception for tool lives.
func (i *Interceptor) Path(tool string) string {
	return filepath.Join(i.Dir, tool)
}

// Install creates a symlink named tool pointing at SelfPath and returns its path.
// An existing entry is never replaced.
func (i *Interceptor) Install(tool string) (string, error) {
	link := i.Path(tool)
	logger.Debug("[DEBUG] Install: creating %s -> %s\n", link, i.SelfPath)

	// Lstat so that dangling symlinks also count as existing
	if _, err := os.Lstat(link); err == nil {
		return link, fmt.Errorf("%s: %w", link, ErrExists)
	}

	if !i.Writable(i.Dir) {
		return link, fmt.Errorf("%s: %w", i.Dir, ErrNotWritable)
	}

	if err := os.Symlink(i.SelfPath, link); err != nil {
		return link, fmt.Errorf("failed to create interception %s: %w", link, err)
	}

	logger.Debug("[DEBUG] Install: created %s\n", link)
	return link, nil
}
