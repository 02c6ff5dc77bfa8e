package gitinfo

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/format/index"

	"github.com/eirnym-learn/promptline/internal/ports"
)

// scanFileStatus enumerates per-path status and folds it into the five
// aggregate flags. The enumeration compares workdir and index when
// IncludeWorkdirStats is set, index only otherwise. RefreshStatus selects
// the strategy: an exhaustive re-stat of every tracked path, or the fast
// changed-entries-only scan. Neither path writes the index back to disk.
func scanFileStatus(repo *git.Repository, opts Options) (ports.FileStatus, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return ports.FileStatus{}, fmt.Errorf("%w: %v", ErrStatusQuery, err)
	}

	strategy := git.Empty
	if opts.RefreshStatus {
		strategy = git.Preload
	}
	statuses, err := wt.StatusWithOptions(git.StatusOptions{Strategy: strategy})
	if err != nil {
		return ports.FileStatus{}, fmt.Errorf("%w: %v", ErrStatusQuery, err)
	}

	var submodules map[string]bool
	if !opts.IncludeSubmodules {
		submodules = submodulePaths(wt)
	}

	// The index is only needed to tell a typechange apart from a plain
	// content modification; without it every change counts as unstaged.
	idx, err := repo.Storer.Index()
	if err != nil {
		idx = nil
	}

	root := wt.Filesystem.Root()
	var out ports.FileStatus
	for path, fs := range statuses {
		if submodules[path] {
			continue
		}
		foldEntry(&out, idx, root, path, fs, opts)
	}
	return out, nil
}

// foldEntry merges one path's status codes into the aggregate flags.
// Flags are independent; a path may contribute several at once.
func foldEntry(out *ports.FileStatus, idx *index.Index, root, path string, fs *git.FileStatus, opts Options) {
	switch fs.Staging {
	case git.Added, git.Modified, git.Deleted, git.Renamed, git.Copied:
		out.Staged = true
	case git.UpdatedButUnmerged:
		out.Conflict = true
	}

	if !opts.IncludeWorkdirStats {
		return
	}

	switch fs.Worktree {
	case git.Untracked:
		if opts.IncludeUntracked {
			out.Untracked = true
		}
	case git.Modified:
		// A regular-file/symlink flip is a typechange, kept distinct
		// from the general unstaged flag.
		if isTypechange(idx, root, path) {
			out.Typechange = true
		} else {
			out.Unstaged = true
		}
	case git.Deleted, git.Renamed, git.Copied:
		out.Unstaged = true
	case git.UpdatedButUnmerged:
		out.Conflict = true
	}
}

func isTypechange(idx *index.Index, root, path string) bool {
	if idx == nil {
		return false
	}
	entry, err := idx.Entry(path)
	if err != nil {
		return false
	}
	fi, err := os.Lstat(filepath.Join(root, filepath.FromSlash(path)))
	if err != nil {
		return false
	}
	wasLink := entry.Mode == filemode.Symlink
	isLink := fi.Mode()&os.ModeSymlink != 0
	return wasLink != isLink
}

func submodulePaths(wt *git.Worktree) map[string]bool {
	subs, err := wt.Submodules()
	if err != nil || len(subs) == 0 {
		return nil
	}
	paths := make(map[string]bool, len(subs))
	for _, sub := range subs {
		paths[sub.Config().Path] = true
	}
	return paths
}
