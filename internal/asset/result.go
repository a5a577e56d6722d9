package asset

import "fmt"

type CleanupStatus int

const (
	// CleanupNotNeeded: the operation retired no remote file.
	CleanupNotNeeded CleanupStatus = iota
	// CleanupSkipped: the stored URL maps to no remote file.
	CleanupSkipped
	CleanupSucceeded
	// CleanupFailed: the primary operation succeeded but the remote file is orphaned.
	CleanupFailed
)

func (s CleanupStatus) String() string {
	switch s {
	case CleanupNotNeeded:
		return "not_needed"
	case CleanupSkipped:
		return "skipped"
	case CleanupSucceeded:
		return "succeeded"
	case CleanupFailed:
		return "failed"
	default:
		return fmt.Sprintf("CleanupStatus(%d)", int(s))
	}
}

// Cleanup describes the best-effort removal of a stale remote file.
type Cleanup struct {
	Status CleanupStatus
	URL    string
	FileID string
	Err    error
}

func (c Cleanup) Failed() bool { return c.Status == CleanupFailed }

// Result is returned by every lifecycle operation that succeeded. Cleanup
// tells apart "fully done" from "done, but the old file is orphaned".
type Result[T Record] struct {
	Record  T
	Cleanup Cleanup
}
