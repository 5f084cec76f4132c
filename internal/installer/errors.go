package installer

import (
	"fmt"
	"strings"
)

// MissingBackupError reports a restore attempt for a path that was never
// backed up. This signals a prior install never completed its backup step
// and must surface as a hard error, not a silent no-op.
type MissingBackupError struct {
	Path string
}

func (e *MissingBackupError) Error() string {
	return fmt.Sprintf("no backup exists for %s (a prior install never completed the backup step; reinstall the host package to recover)", e.Path)
}

// WriteError reports a failed write to a host path, typically permissions
// or a host installation that isn't present.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// FileFailure is one per-file failure inside an aggregated error.
type FileFailure struct {
	Path   string
	Reason string
}

// PartialRestoreError aggregates per-file failures from RestoreAll. Restore
// keeps going past individual failures so one bad file doesn't strand the
// rest of the host in a themed state.
type PartialRestoreError struct {
	Failures []FileFailure
}

func (e *PartialRestoreError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Path, f.Reason))
	}
	return fmt.Sprintf("restore failed for %d file(s): %s", len(e.Failures), strings.Join(parts, "; "))
}
