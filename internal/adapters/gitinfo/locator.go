// Package gitinfo collects a git repository state snapshot for the prompt:
// repository location, per-repository option overrides, head resolution,
// ahead/behind counts against the upstream, and aggregate file status.
//
// Head resolution and status scanning run concurrently; each unit of work
// opens its own repository handle because a handle must not be shared
// across goroutines.
package gitinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindRepository walks start and each of its ancestors, most specific
// first, and returns the first directory containing a .git marker. The
// marker is either the .git directory itself or the gitdir reference file
// a linked worktree carries.
func FindRepository(start string) (string, error) {
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		start = cwd
	}

	if _, err := os.Stat(start); err != nil {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, start)
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		marker := filepath.Join(current, ".git")
		info, err := os.Stat(marker)
		if err == nil {
			if info.IsDir() {
				return current, nil
			}
			content, err := os.ReadFile(marker)
			if err == nil && strings.HasPrefix(string(content), "gitdir: ") {
				return current, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", fmt.Errorf("%w: searched from %s", ErrRepositoryNotFound, start)
}
