package gitinfo

import (
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/require"

	"github.com/eirnym-learn/promptline/internal/logging"
	"github.com/eirnym-learn/promptline/internal/ports"
)

func TestCountAheadBehind_Diverged(t *testing.T) {
	repo, wt, dir := initTestRepo(t)

	base := commitFile(t, wt, dir, "base.txt", "base", "base")
	commitFile(t, wt, dir, "u.txt", "one", "upstream one")
	u2 := commitFile(t, wt, dir, "u.txt", "two", "upstream two")

	// Pin the upstream at its two extra commits, rewind the local branch
	// to the common ancestor, and diverge with three local commits.
	upstream := plumbing.ReferenceName("refs/heads/upstream")
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(upstream, u2)))
	require.NoError(t, wt.Reset(&git.ResetOptions{Commit: base, Mode: git.HardReset}))
	commitFile(t, wt, dir, "l.txt", "one", "local one")
	commitFile(t, wt, dir, "l.txt", "two", "local two")
	commitFile(t, wt, dir, "l.txt", "three", "local three")

	setLocalBranchUpstream(t, repo, headBranch(t, repo), upstream)

	info, err := resolveHead(repo, "HEAD", logging.Nop())
	require.NoError(t, err)

	counts, err := countAheadBehind(repo, info)
	require.NoError(t, err)
	require.Equal(t, ports.AheadBehind{Ahead: 3, Behind: 2}, counts)
}

func TestCountAheadBehind_UpToDate(t *testing.T) {
	repo, wt, dir := initTestRepo(t)
	head := commitFile(t, wt, dir, "a.txt", "a", "initial")

	upstream := plumbing.ReferenceName("refs/heads/upstream")
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(upstream, head)))
	setLocalBranchUpstream(t, repo, headBranch(t, repo), upstream)

	info, err := resolveHead(repo, "HEAD", logging.Nop())
	require.NoError(t, err)

	counts, err := countAheadBehind(repo, info)
	require.NoError(t, err)
	require.Equal(t, ports.AheadBehind{}, counts)
}

func TestCountAheadBehind_RemoteUpstream(t *testing.T) {
	repo, wt, dir := initTestRepo(t)
	first := commitFile(t, wt, dir, "a.txt", "a", "initial")
	commitFile(t, wt, dir, "a.txt", "b", "second")

	branch := headBranch(t, repo)
	remoteRef := plumbing.NewRemoteReferenceName("origin", branch)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(remoteRef, first)))

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: "origin",
		Merge:  plumbing.ReferenceName("refs/heads/" + branch),
	}
	require.NoError(t, repo.SetConfig(cfg))

	info, err := resolveHead(repo, "HEAD", logging.Nop())
	require.NoError(t, err)

	counts, err := countAheadBehind(repo, info)
	require.NoError(t, err)
	require.Equal(t, ports.AheadBehind{Ahead: 1, Behind: 0}, counts)
}

func TestCountAheadBehind_NoTrackingBranch(t *testing.T) {
	repo, wt, dir := initTestRepo(t)
	commitFile(t, wt, dir, "a.txt", "a", "initial")

	info, err := resolveHead(repo, "HEAD", logging.Nop())
	require.NoError(t, err)

	_, err = countAheadBehind(repo, info)
	require.ErrorIs(t, err, ErrNoTrackingBranch)
}

func TestCountAheadBehind_DetachedHead(t *testing.T) {
	repo, wt, dir := initTestRepo(t)
	first := commitFile(t, wt, dir, "a.txt", "a", "initial")
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Hash: first}))

	info, err := resolveHead(repo, "HEAD", logging.Nop())
	require.NoError(t, err)

	_, err = countAheadBehind(repo, info)
	require.ErrorIs(t, err, ErrNoUpstream)
}

func TestCountAheadBehind_UnbornHead(t *testing.T) {
	repo, _, _ := initTestRepo(t)

	info, err := resolveHead(repo, "HEAD", logging.Nop())
	require.NoError(t, err)

	_, err = countAheadBehind(repo, info)
	require.ErrorIs(t, err, ErrNoUpstream)
}

func TestCountAheadBehind_TrackingWithoutTarget(t *testing.T) {
	repo, wt, dir := initTestRepo(t)
	commitFile(t, wt, dir, "a.txt", "a", "initial")

	setLocalBranchUpstream(t, repo, headBranch(t, repo), "refs/heads/gone")

	info, err := resolveHead(repo, "HEAD", logging.Nop())
	require.NoError(t, err)

	_, err = countAheadBehind(repo, info)
	require.ErrorIs(t, err, ErrTrackingNoTarget)
}
