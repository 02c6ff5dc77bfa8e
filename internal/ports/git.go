package ports

import (
	"context"
	"strings"
)

// GitRequest describes one collection run. It is built once from tool
// configuration and never mutated; per-repository git config may still
// override the five behavior flags (see the gitinfo adapter).
type GitRequest struct {
	// StartFolder is the directory the repository search begins from.
	// Empty means the process working directory.
	StartFolder string

	// ReferenceName is the reference to resolve, normally "HEAD".
	ReferenceName string

	IncludeSubmodules   bool
	IncludeUntracked    bool
	RefreshStatus       bool
	IncludeAheadBehind  bool
	IncludeWorkdirStats bool
}

// DefaultGitRequest returns the request used when nothing is configured.
func DefaultGitRequest() GitRequest {
	return GitRequest{
		ReferenceName:       "HEAD",
		IncludeUntracked:    true,
		IncludeAheadBehind:  true,
		IncludeWorkdirStats: true,
	}
}

// HeadInfo describes the resolved head reference.
//
// On an unborn branch OID is empty but ReferenceName is still present when
// the symbolic target is known; both are empty only when the reference has
// no target at all. Detached is computed independently of the resolution.
type HeadInfo struct {
	// ReferenceName is the full reference name, e.g. "refs/heads/main".
	ReferenceName string `json:"reference_name,omitempty"`
	// OID is the full hex commit id, empty when the reference has no target.
	OID      string `json:"oid,omitempty"`
	Detached bool   `json:"detached"`
}

// ShortRef returns the display form of the reference: the final path
// segment after the last slash.
func (h HeadInfo) ShortRef() string {
	if h.ReferenceName == "" {
		return ""
	}
	if i := strings.LastIndex(h.ReferenceName, "/"); i >= 0 {
		return h.ReferenceName[i+1:]
	}
	return h.ReferenceName
}

// ShortOID returns the first 8 hex characters of the commit id.
func (h HeadInfo) ShortOID() string {
	if len(h.OID) > 8 {
		return h.OID[:8]
	}
	return h.OID
}

// AheadBehind holds commit counts relative to the configured upstream
// tracking reference.
type AheadBehind struct {
	Ahead  int `json:"ahead"`
	Behind int `json:"behind"`
}

// FileStatus aggregates per-path status bits into five independent flags.
// Each flag is true iff at least one scanned path contributes it.
type FileStatus struct {
	Conflict   bool `json:"conflict"`
	Untracked  bool `json:"untracked"`
	Typechange bool `json:"typechange"`
	Unstaged   bool `json:"unstaged"`
	Staged     bool `json:"staged"`
}

// Clean reports whether no flag is set.
func (f FileStatus) Clean() bool {
	return !f.Conflict && !f.Untracked && !f.Typechange && !f.Unstaged && !f.Staged
}

// GitSnapshot is the collector output. A nil field means that
// subcomputation was skipped or failed, never "empty repository".
type GitSnapshot struct {
	Head        *HeadInfo    `json:"head,omitempty"`
	FileStatus  *FileStatus  `json:"file_status,omitempty"`
	AheadBehind *AheadBehind `json:"ahead_behind,omitempty"`
}

// GitCollector produces a repository state snapshot for the prompt.
// This is a driven port (implemented by adapters).
type GitCollector interface {
	Collect(ctx context.Context, req GitRequest) (*GitSnapshot, error)
}
