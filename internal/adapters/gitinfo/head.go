package gitinfo

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/eirnym-learn/promptline/internal/logging"
	"github.com/eirnym-learn/promptline/internal/ports"
)

// resolveHead resolves refName (normally HEAD) without following it, then
// branches on the reference kind:
//
//   - symbolic: the pointed-at branch name is recorded as-is; the chain is
//     followed separately for the commit id. A follow failure (unborn
//     branch) is logged, not escalated, leaving the id empty.
//   - direct: the reference's own name and target id.
//   - invalid: neither name nor id.
//
// Detached state is computed independently from HEAD itself.
func resolveHead(repo *git.Repository, refName string, log logging.Logger) (ports.HeadInfo, error) {
	ref, err := repo.Reference(plumbing.ReferenceName(refName), false)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return ports.HeadInfo{}, fmt.Errorf("%w: %s", ErrReferenceNotFound, refName)
		}
		return ports.HeadInfo{}, fmt.Errorf("looking up %s: %w", refName, err)
	}

	info := ports.HeadInfo{Detached: headDetached(repo)}

	switch ref.Type() {
	case plumbing.SymbolicReference:
		info.ReferenceName = ref.Target().String()
		resolved, err := repo.Reference(ref.Target(), true)
		if err != nil {
			log.Debug("following symbolic reference", "target", ref.Target(), "err", err)
		} else if !resolved.Hash().IsZero() {
			info.OID = resolved.Hash().String()
		}
	case plumbing.HashReference:
		info.ReferenceName = ref.Name().String()
		if !ref.Hash().IsZero() {
			info.OID = ref.Hash().String()
		}
	}

	return info, nil
}

// headDetached reports whether HEAD points directly at a commit instead of
// a branch. Errors (no HEAD at all) default to false.
func headDetached(repo *git.Repository) bool {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return false
	}
	return ref.Type() == plumbing.HashReference
}
