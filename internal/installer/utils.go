package installer

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"terminalist/internal/logger"

	"golang.org/x/sys/unix"
)

// SelfPath resolves the canonical location of the running executable.
// It prefers os.Executable and falls back to argv0, looked up in $PATH when it
// carries no directory. Symlinks are always followed.
func SelfPath(argv0 string) (string, error) {
	path, err := os.Executable()
	if err != nil {
		logger.Debug("[DEBUG] os.Executable failed, falling back to argv0 %q: %v\n", argv0, err)
		path = argv0
		if !strings.ContainsRune(argv0, filepath.Separator) {
			if path, err = exec.LookPath(argv0); err != nil {
				return "", fmt.Errorf("failed to locate %s in PATH: %w", argv0, err)
			}
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to make %s absolute: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", abs, err)
	}
	return resolved, nil
}

// IsInterception reports whether path is a symlink that resolves to SelfPath.
func (i *Interceptor) IsInterception(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		// Dangling links point nowhere, and certainly not at us
		return false
	}
	return resolved == i.SelfPath
}

// Installed lists the names of the interceptions found in Dir, sorted by name.
func (i *Interceptor) Installed() ([]string, error) {
	entries, err := os.ReadDir(i.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", i.Dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink == 0 {
			continue
		}
		if i.IsInterception(filepath.Join(i.Dir, entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// writable reports whether the current user may create entries in dir.
var writable = func(dir string) bool {
	return unix.Access(dir, unix.W_OK) == nil
}
