package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository in a temp dir and returns it with its
// worktree and root path.
func initTestRepo(t *testing.T) (*git.Repository, *git.Worktree, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	return repo, wt, dir
}

// commitFile writes content to name, stages it, and commits.
func commitFile(t *testing.T, wt *git.Worktree, dir, name, content, msg string) plumbing.Hash {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	_, err := wt.Add(name)
	require.NoError(t, err)

	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
	return hash
}

// setLocalBranchUpstream configures branch to track another local ref,
// the "." remote form git uses for local tracking branches.
func setLocalBranchUpstream(t *testing.T, repo *git.Repository, branch string, merge plumbing.ReferenceName) {
	t.Helper()

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: ".",
		Merge:  merge,
	}
	require.NoError(t, repo.SetConfig(cfg))
}

// headBranch returns the short name of the checked-out branch.
func headBranch(t *testing.T, repo *git.Repository) string {
	t.Helper()

	ref, err := repo.Head()
	require.NoError(t, err)
	return ref.Name().Short()
}
