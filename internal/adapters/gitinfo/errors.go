package gitinfo

import "errors"

// Collection error kinds. Locator and option failures are fatal to the
// whole collection; everything else is isolated inside its unit of work.
var (
	// ErrPathNotFound means the requested start folder does not exist.
	ErrPathNotFound = errors.New("start path does not exist")
	// ErrRepositoryNotFound means no ancestor contains a .git marker.
	ErrRepositoryNotFound = errors.New("no git repository found")
	// ErrConfigUnavailable means the repository or its configuration
	// could not be opened for reading behavior overrides.
	ErrConfigUnavailable = errors.New("repository configuration unavailable")
	// ErrReferenceNotFound means the named reference does not exist.
	ErrReferenceNotFound = errors.New("reference not found")
	// ErrNoUpstream means ahead/behind cannot be computed because the
	// head has no branch name or no commit (detached or unborn).
	ErrNoUpstream = errors.New("head has no branch and commit to compare")
	// ErrNoTrackingBranch means the branch has no upstream configured.
	ErrNoTrackingBranch = errors.New("no tracking branch configured")
	// ErrTrackingNameNotUTF8 means the upstream name is not valid text.
	ErrTrackingNameNotUTF8 = errors.New("tracking branch name is not valid UTF-8")
	// ErrTrackingNoTarget means the tracking reference has no commit.
	ErrTrackingNoTarget = errors.New("tracking branch has no target")
	// ErrStatusQuery means the repository could not be queried for status.
	ErrStatusQuery = errors.New("status query failed")
)
