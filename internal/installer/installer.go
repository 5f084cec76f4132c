// Package installer implements the installation state machine: backing up
// host files, swapping in theme replacements, restoring stock content and
// verifying what is currently on disk.
package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/pimpmygrc/pimpmygrc/internal/hostfs"
	"github.com/pimpmygrc/pimpmygrc/internal/theme"
)

// confBackupKey is the manifest key for the host config file backup. The
// config lives outside the host module tree, so it gets a reserved key
// rather than a host-relative path.
const confBackupKey = "grc.conf"

// Config wires an Installer.
type Config struct {
	FS        hostfs.Store
	Themes    *theme.Store
	Backups   *BackupStore
	HostDir   string
	ConfPath  string // optional; "" when the host config was not found
	SharedDir string // optional; directory of shared patch files
	StatePath string
	Logger    hclog.Logger
}

// Installer applies themes to the host installation and restores backups.
type Installer struct {
	fs        hostfs.Store
	themes    *theme.Store
	backups   *BackupStore
	hostDir   string
	confPath  string
	sharedDir string
	statePath string
	log       hclog.Logger
}

// New creates an Installer from cfg.
func New(cfg Config) *Installer {
	log := cfg.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Installer{
		fs:        cfg.FS,
		themes:    cfg.Themes,
		backups:   cfg.Backups,
		hostDir:   cfg.HostDir,
		confPath:  cfg.ConfPath,
		sharedDir: cfg.SharedDir,
		statePath: cfg.StatePath,
		log:       log.Named("installer"),
	}
}

// FileAction records the outcome for a single file during apply.
type FileAction struct {
	Path string
	Note string
}

// ApplyReport summarises an apply operation.
type ApplyReport struct {
	Theme     string
	Mode      theme.Mode
	Warnings  map[string][]string
	Installed []FileAction
	Reverted  []string
	Skipped   []FileAction
	Failed    []FileFailure
}

// OK reports whether the apply completed without per-file failures.
func (r *ApplyReport) OK() bool {
	return len(r.Failed) == 0
}

// Apply installs the named theme in the given mode. Every file is backed up
// before it is first overwritten; tracked files the incoming mode does not
// cover are restored to backup content so switching themes or modes never
// leaves a mix. The install state always ends up describing exactly the
// last-applied theme.
func (i *Installer) Apply(name string, mode theme.Mode) (*ApplyReport, error) {
	th, err := i.themes.Get(name)
	if err != nil {
		return nil, err
	}

	report := &ApplyReport{
		Theme:    name,
		Mode:     mode,
		Warnings: make(map[string][]string),
	}
	fileMap := mode.Files()

	// Pre-flight validation. Issues are warnings, not errors: the original
	// files stay recoverable through restore either way.
	for _, themeRel := range sortedKeys(fileMap) {
		hostRel := fileMap[themeRel]
		if !th.HasFile(themeRel) {
			continue
		}
		hostPath := i.hostPath(hostRel)
		if !i.fs.Exists(hostPath) {
			continue
		}
		themeContent, err := th.ReadFile(themeRel)
		if err != nil {
			return nil, err
		}
		liveContent, err := i.fs.ReadFile(hostPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", hostPath, err)
		}
		if issues := theme.ValidateReplacement(hostRel, themeContent, liveContent); len(issues) > 0 {
			report.Warnings[hostRel] = issues
		}
	}

	// Backups must exist before anything is overwritten. A backup failure
	// aborts the whole apply.
	if err := i.ensureBackups(); err != nil {
		return nil, err
	}

	// Restore tracked theme files the incoming mode does not cover, so an
	// apply over a previous wider install leaves no stale files behind.
	covered := make(map[string]bool, len(fileMap))
	for _, hostRel := range fileMap {
		covered[hostRel] = true
	}
	for _, hostRel := range sortedValues(theme.ModeFull.Files()) {
		if covered[hostRel] || !i.backups.Has(hostRel) {
			continue
		}
		if err := i.backups.Restore(i.hostPath(hostRel), hostRel); err != nil {
			report.Failed = append(report.Failed, FileFailure{Path: hostRel, Reason: err.Error()})
			continue
		}
		report.Reverted = append(report.Reverted, hostRel)
	}
	if mode != theme.ModeFull && i.confPath != "" && i.backups.Has(confBackupKey) {
		if err := i.backups.Restore(i.confPath, confBackupKey); err != nil {
			report.Failed = append(report.Failed, FileFailure{Path: confBackupKey, Reason: err.Error()})
		} else {
			report.Reverted = append(report.Reverted, confBackupKey)
		}
	}

	// Install the theme's replacement files.
	for _, themeRel := range sortedKeys(fileMap) {
		hostRel := fileMap[themeRel]
		if !th.HasFile(themeRel) {
			report.Skipped = append(report.Skipped, FileAction{Path: hostRel, Note: "not in theme"})
			continue
		}
		content, err := th.ReadFile(themeRel)
		if err != nil {
			return nil, err
		}
		i.installFile(report, hostRel, i.hostPath(hostRel), content)
	}

	// Shared patch files ship with every theme and mode.
	if i.sharedDir != "" {
		for _, sharedRel := range sortedKeys(theme.SharedFiles()) {
			hostRel := theme.SharedFiles()[sharedRel]
			content, err := os.ReadFile(filepath.Join(i.sharedDir, sharedRel)) // #nosec G304 - path under shared dir
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return nil, fmt.Errorf("failed to read shared file %s: %w", sharedRel, err)
			}
			i.installFile(report, hostRel, i.hostPath(hostRel), content)
		}
	}

	// Full mode installs the theme's host config replacement when shipped.
	if mode == theme.ModeFull && i.confPath != "" && th.HasFile(theme.ConfFile) {
		content, err := th.ReadFile(theme.ConfFile)
		if err != nil {
			return nil, err
		}
		i.installFile(report, confBackupKey, i.confPath, content)
	}

	if err := SaveState(i.fs, i.statePath, &State{Theme: name, Mode: mode}); err != nil {
		return nil, err
	}

	i.log.Info("theme applied", "theme", name, "mode", mode,
		"installed", len(report.Installed), "failed", len(report.Failed))
	return report, nil
}

// installFile backs up nothing (backups are ensured beforehand); it writes
// content to hostPath and verifies the write by checksum.
func (i *Installer) installFile(report *ApplyReport, label, hostPath string, content []byte) {
	if !i.fs.Exists(hostPath) {
		report.Skipped = append(report.Skipped, FileAction{Path: label, Note: "target missing on host"})
		return
	}

	beforeHash, err := i.fs.Hash(hostPath)
	if err != nil {
		beforeHash = ""
	}
	wantHash := hostfs.HashBytes(content)

	if err := i.fs.WriteFile(hostPath, content, 0o644); err != nil {
		writeErr := &WriteError{Path: hostPath, Err: err}
		report.Failed = append(report.Failed, FileFailure{Path: label, Reason: writeErr.Error()})
		return
	}

	gotHash, err := i.fs.Hash(hostPath)
	if err != nil || gotHash != wantHash {
		report.Failed = append(report.Failed, FileFailure{Path: label, Reason: "checksum mismatch after copy"})
		return
	}

	note := fmt.Sprintf("changed: %.8s.. -> %.8s..", beforeHash, gotHash)
	if beforeHash == gotHash {
		note = "unchanged (already themed)"
	}
	report.Installed = append(report.Installed, FileAction{Path: label, Note: note})
}

// ensureBackups captures first-touch backups for every path this tool may
// overwrite, plus the host config.
func (i *Installer) ensureBackups() error {
	paths := theme.TrackedPaths()
	sort.Strings(paths)
	for _, hostRel := range paths {
		if _, err := i.backups.EnsureBackedUp(i.hostPath(hostRel), hostRel); err != nil {
			return err
		}
	}
	if i.confPath != "" {
		if _, err := i.backups.EnsureBackedUp(i.confPath, confBackupKey); err != nil {
			return err
		}
	}
	return nil
}

// RestoreReport summarises a restore operation.
type RestoreReport struct {
	Restored []string
	Failed   []FileFailure
}

// RestoreAll returns every tracked path to its backup content, byte for
// byte. Failures are collected rather than aborting, and reported together
// as a PartialRestoreError. The state file is cleared even on partial
// failure; check derives true state from file contents.
func (i *Installer) RestoreAll() (*RestoreReport, error) {
	tracked, err := i.backups.TrackedPaths()
	if err != nil {
		return nil, err
	}

	report := &RestoreReport{}
	for _, rel := range tracked {
		hostPath := i.hostPath(rel)
		if rel == confBackupKey {
			if i.confPath == "" {
				continue
			}
			hostPath = i.confPath
		}
		if err := i.backups.Restore(hostPath, rel); err != nil {
			report.Failed = append(report.Failed, FileFailure{Path: rel, Reason: err.Error()})
			continue
		}
		report.Restored = append(report.Restored, rel)
	}

	if err := ClearState(i.fs, i.statePath); err != nil {
		report.Failed = append(report.Failed, FileFailure{Path: i.statePath, Reason: err.Error()})
	}

	if len(report.Failed) > 0 {
		i.log.Error("restore finished with failures", "restored", len(report.Restored), "failed", len(report.Failed))
		return report, &PartialRestoreError{Failures: report.Failed}
	}

	i.log.Info("restored stock files", "restored", len(report.Restored))
	return report, nil
}

// State returns the recorded install state, nil when stock.
func (i *Installer) State() (*State, error) {
	return LoadState(i.fs, i.statePath)
}

// Restore restores a single tracked path. Exposed for targeted recovery.
func (i *Installer) Restore(rel string) error {
	hostPath := i.hostPath(rel)
	if rel == confBackupKey {
		if i.confPath == "" {
			return errors.New("host config path unknown")
		}
		hostPath = i.confPath
	}
	return i.backups.Restore(hostPath, rel)
}

func (i *Installer) hostPath(rel string) string {
	return filepath.Join(i.hostDir, rel)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedValues(m map[string]string) []string {
	values := make([]string, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
