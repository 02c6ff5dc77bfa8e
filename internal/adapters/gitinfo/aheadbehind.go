package gitinfo

import (
	"errors"
	"fmt"
	"unicode/utf8"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/eirnym-learn/promptline/internal/ports"
)

// countAheadBehind computes the divergence between the resolved head and
// its configured upstream: commits reachable from the head but not the
// upstream (ahead) and vice versa (behind), relative to their common
// ancestry. Counts are exact; no upper bound is imposed.
func countAheadBehind(repo *git.Repository, head ports.HeadInfo) (ports.AheadBehind, error) {
	refName := plumbing.ReferenceName(head.ReferenceName)
	if head.ReferenceName == "" || head.OID == "" || !refName.IsBranch() {
		return ports.AheadBehind{}, ErrNoUpstream
	}

	trackingName, err := upstreamName(repo, refName.Short())
	if err != nil {
		return ports.AheadBehind{}, err
	}

	trackingRef, err := repo.Reference(trackingName, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return ports.AheadBehind{}, fmt.Errorf("%w: %s", ErrTrackingNoTarget, trackingName)
		}
		return ports.AheadBehind{}, fmt.Errorf("resolving %s: %w", trackingName, err)
	}
	if trackingRef.Hash().IsZero() {
		return ports.AheadBehind{}, fmt.Errorf("%w: %s", ErrTrackingNoTarget, trackingName)
	}

	return graphAheadBehind(repo, plumbing.NewHash(head.OID), trackingRef.Hash())
}

// upstreamName maps a local branch name to its tracking reference name
// from branch.<name>.remote and branch.<name>.merge. A remote of "."
// tracks another local branch.
func upstreamName(repo *git.Repository, branch string) (plumbing.ReferenceName, error) {
	cfg, err := repo.Branch(branch)
	if err != nil {
		if errors.Is(err, git.ErrBranchNotFound) {
			return "", fmt.Errorf("%w: branch %s", ErrNoTrackingBranch, branch)
		}
		return "", fmt.Errorf("branch config for %s: %w", branch, err)
	}
	if cfg.Remote == "" || cfg.Merge == "" {
		return "", fmt.Errorf("%w: branch %s", ErrNoTrackingBranch, branch)
	}
	if !utf8.ValidString(cfg.Remote) || !utf8.ValidString(string(cfg.Merge)) {
		return "", fmt.Errorf("%w: branch %s", ErrTrackingNameNotUTF8, branch)
	}

	if cfg.Remote == "." {
		return cfg.Merge, nil
	}
	return plumbing.NewRemoteReferenceName(cfg.Remote, cfg.Merge.Short()), nil
}

// graphAheadBehind counts the reachable-set difference between two commits.
func graphAheadBehind(repo *git.Repository, headHash, trackingHash plumbing.Hash) (ports.AheadBehind, error) {
	if headHash == trackingHash {
		return ports.AheadBehind{}, nil
	}

	headSet, err := reachableFrom(repo, headHash)
	if err != nil {
		return ports.AheadBehind{}, err
	}
	trackingSet, err := reachableFrom(repo, trackingHash)
	if err != nil {
		return ports.AheadBehind{}, err
	}

	var counts ports.AheadBehind
	for h := range headSet {
		if !trackingSet[h] {
			counts.Ahead++
		}
	}
	for h := range trackingSet {
		if !headSet[h] {
			counts.Behind++
		}
	}
	return counts, nil
}

func reachableFrom(repo *git.Repository, start plumbing.Hash) (map[plumbing.Hash]bool, error) {
	commit, err := repo.CommitObject(start)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", start, err)
	}

	seen := make(map[plumbing.Hash]bool)
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", start, err)
	}
	return seen, nil
}
