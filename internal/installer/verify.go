package installer

import (
	"fmt"
	"sort"

	"github.com/pimpmygrc/pimpmygrc/internal/hostfs"
	"github.com/pimpmygrc/pimpmygrc/internal/theme"
)

// Status classifies a live host file against known content.
type Status string

const (
	// StatusThemed means the live file matches a known theme's replacement.
	StatusThemed Status = "THEMED"

	// StatusOriginal means the live file matches the stock backup.
	StatusOriginal Status = "ORIGINAL"

	// StatusModified means the live file matches neither backup nor any theme.
	StatusModified Status = "MODIFIED"

	// StatusUnknown means there is no backup to compare against.
	StatusUnknown Status = "UNKNOWN"

	// StatusMissing means the file does not exist on the host.
	StatusMissing Status = "MISSING"
)

// FileCheck is the verification result for one tracked file.
type FileCheck struct {
	Path         string
	Status       Status
	MatchedTheme string // set when Status == StatusThemed
	LiveHash     string
	BackupHash   string
	MissingVars  []string // colors.py only
	Issue        string   // set when this file counts as a problem
}

// CheckReport is the full output of Check.
type CheckReport struct {
	State      *State // recorded state; nil when stock
	HasBackups bool
	Files      []FileCheck
}

// HasIssues reports whether any file needs attention.
func (r *CheckReport) HasIssues() bool {
	for _, f := range r.Files {
		if f.Issue != "" {
			return true
		}
	}
	return false
}

// Check compares every tracked file on disk against the stock backup and
// every known theme's replacement content, reporting the true state of each
// file. Purely read-only; never mutates. It re-derives state from file
// contents, so it is always safe to run after a failed apply or restore.
func (i *Installer) Check() (*CheckReport, error) {
	state, err := i.State()
	if err != nil {
		return nil, err
	}

	report := &CheckReport{State: state}
	if tracked, err := i.backups.TrackedPaths(); err == nil && len(tracked) > 0 {
		report.HasBackups = true
	}

	themes, err := i.themes.List()
	if err != nil {
		return nil, err
	}

	// Host-relative paths the recorded state claims are themed. Files
	// outside the applied mode's map are expected to be original.
	expectThemed := make(map[string]bool)
	if state != nil {
		for _, hostRel := range state.Mode.Files() {
			expectThemed[hostRel] = true
		}
	}

	// theme hash index: hostRel -> theme name -> sha256 of replacement
	themeHashes := make(map[string]map[string]string)
	fullMap := theme.ModeFull.Files()
	for themeRel, hostRel := range fullMap {
		themeHashes[hostRel] = make(map[string]string)
		for _, th := range themes {
			if !th.HasFile(themeRel) {
				continue
			}
			content, err := th.ReadFile(themeRel)
			if err != nil {
				continue
			}
			themeHashes[hostRel][th.Name] = hostfs.HashBytes(content)
		}
	}

	for _, hostRel := range sortedValues(fullMap) {
		check := FileCheck{Path: hostRel}
		hostPath := i.hostPath(hostRel)

		if !i.fs.Exists(hostPath) {
			check.Status = StatusMissing
			check.Issue = fmt.Sprintf("not found at %s", hostPath)
			report.Files = append(report.Files, check)
			continue
		}

		liveHash, err := i.fs.Hash(hostPath)
		if err != nil {
			return nil, fmt.Errorf("failed to hash %s: %w", hostPath, err)
		}
		check.LiveHash = liveHash
		check.BackupHash = i.backups.Hash(hostRel)

		// Prefer the recorded theme when several themes ship identical
		// content for this file.
		matched := ""
		if state != nil && themeHashes[hostRel][state.Theme] == liveHash {
			matched = state.Theme
		} else {
			names := make([]string, 0, len(themeHashes[hostRel]))
			for name := range themeHashes[hostRel] {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				if themeHashes[hostRel][name] == liveHash {
					matched = name
					break
				}
			}
		}

		switch {
		case matched != "":
			check.Status = StatusThemed
			check.MatchedTheme = matched
			if state == nil {
				check.Issue = fmt.Sprintf("themed [%s] but no theme is recorded", matched)
			} else if state.Theme != matched {
				check.Issue = fmt.Sprintf("themed [%s] but state records '%s'", matched, state.Theme)
			}
		case check.BackupHash != "" && liveHash == check.BackupHash:
			check.Status = StatusOriginal
			if state != nil && expectThemed[hostRel] {
				check.Issue = fmt.Sprintf("theme '%s' not applied to this file", state.Theme)
			}
		case check.BackupHash == "":
			check.Status = StatusUnknown
		default:
			check.Status = StatusModified
			check.Issue = "doesn't match original or any theme"
		}

		// The host won't start without the required color constants.
		if hostRel == "gui/canvas/colors.py" {
			content, err := i.fs.ReadFile(hostPath)
			if err == nil {
				check.MissingVars = theme.MissingColorVars(content)
				if len(check.MissingVars) > 0 && check.Issue == "" {
					check.Issue = "missing required color variables"
				}
			}
		}

		report.Files = append(report.Files, check)
	}

	return report, nil
}
