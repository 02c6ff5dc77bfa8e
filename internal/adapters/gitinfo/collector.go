package gitinfo

import (
	"context"
	"errors"

	git "github.com/go-git/go-git/v5"
	"github.com/sourcegraph/conc"

	"github.com/eirnym-learn/promptline/internal/logging"
	"github.com/eirnym-learn/promptline/internal/ports"
)

// Collector implements ports.GitCollector using go-git.
type Collector struct {
	log logging.Logger
}

// NewCollector creates a collector. A nil logger disables diagnostics.
func NewCollector(log logging.Logger) *Collector {
	if log == nil {
		log = logging.Nop()
	}
	return &Collector{log: log}
}

// Ensure Collector implements ports.GitCollector.
var _ ports.GitCollector = (*Collector)(nil)

// Collect locates the enclosing repository, resolves per-repository option
// overrides, then runs head+ahead/behind resolution and file-status
// scanning as two concurrent units of work joined before returning.
//
// Location and option failures are returned to the caller. A failure
// inside either unit is logged and becomes a nil sub-result; it never
// aborts the sibling unit or the overall call. Each unit opens its own
// repository handle; a handle must not cross the goroutine boundary.
func (c *Collector) Collect(_ context.Context, req ports.GitRequest) (*ports.GitSnapshot, error) {
	if req.ReferenceName == "" {
		req.ReferenceName = "HEAD"
	}

	root, err := FindRepository(req.StartFolder)
	if err != nil {
		return nil, err
	}

	opts, err := ResolveOptions(root, req)
	if err != nil {
		return nil, err
	}

	var (
		head        *ports.HeadInfo
		aheadBehind *ports.AheadBehind
		fileStatus  *ports.FileStatus
	)

	// Both units run to completion; the only synchronization point is
	// the join barrier. No cancellation, no timeout.
	var wg conc.WaitGroup
	wg.Go(func() {
		repo, err := git.PlainOpen(root)
		if err != nil {
			c.log.Debug("opening repository for head resolution", "path", root, "err", err)
			return
		}

		if !opts.IncludeAheadBehind {
			aheadBehind = &ports.AheadBehind{}
		}

		info, err := resolveHead(repo, req.ReferenceName, c.log)
		if err != nil {
			c.log.Debug("resolving head", "ref", req.ReferenceName, "err", err)
			return
		}
		head = &info

		if !opts.IncludeAheadBehind {
			return
		}
		counts, err := countAheadBehind(repo, info)
		switch {
		case err == nil:
			aheadBehind = &counts
		case errors.Is(err, ErrNoUpstream):
			// Detached or unborn head: zeroed counts, not an error.
			aheadBehind = &ports.AheadBehind{}
		default:
			c.log.Debug("computing ahead/behind", "ref", info.ReferenceName, "err", err)
		}
	})
	wg.Go(func() {
		repo, err := git.PlainOpen(root)
		if err != nil {
			c.log.Debug("opening repository for status scan", "path", root, "err", err)
			return
		}
		status, err := scanFileStatus(repo, opts)
		if err != nil {
			c.log.Debug("scanning file status", "path", root, "err", err)
			return
		}
		fileStatus = &status
	})
	wg.Wait()

	return &ports.GitSnapshot{
		Head:        head,
		FileStatus:  fileStatus,
		AheadBehind: aheadBehind,
	}, nil
}
