package installer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/pimpmygrc/pimpmygrc/internal/hostfs"
)

// manifestName is the checksum manifest kept alongside the backup copies.
const manifestName = "checksums.json"

// BackupStore persists an unmodified copy of each host file the first time
// it is touched. Backups are keyed by host-relative path and never
// overwritten while valid.
type BackupStore struct {
	dir string
	fs  hostfs.Store
	log hclog.Logger
}

// NewBackupStore creates a backup store rooted at dir.
func NewBackupStore(dir string, fs hostfs.Store, log hclog.Logger) *BackupStore {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &BackupStore{dir: dir, fs: fs, log: log.Named("backup")}
}

// Dir returns the backup directory.
func (b *BackupStore) Dir() string {
	return b.dir
}

// backupPath returns the backup location for a host-relative path.
func (b *BackupStore) backupPath(rel string) string {
	return filepath.Join(b.dir, rel)
}

// Has reports whether a backup exists for the host-relative path.
func (b *BackupStore) Has(rel string) bool {
	return b.fs.Exists(b.backupPath(rel))
}

// EnsureBackedUp captures the current content of hostPath under the
// host-relative key rel, unless a backup already exists. Idempotent: safe
// to call before every install. Returns true when a new backup was captured.
func (b *BackupStore) EnsureBackedUp(hostPath, rel string) (bool, error) {
	if b.Has(rel) {
		return false, nil
	}
	if !b.fs.Exists(hostPath) {
		// Nothing to capture; the host doesn't ship this file.
		return false, nil
	}

	data, err := b.fs.ReadFile(hostPath)
	if err != nil {
		return false, fmt.Errorf("failed to read %s for backup: %w", hostPath, err)
	}
	if err := b.fs.WriteFile(b.backupPath(rel), data, 0o644); err != nil {
		return false, &WriteError{Path: b.backupPath(rel), Err: err}
	}

	manifest, err := b.loadManifest()
	if err != nil {
		return false, err
	}
	manifest[rel] = hostfs.HashBytes(data)
	if err := b.saveManifest(manifest); err != nil {
		return false, err
	}

	b.log.Debug("captured backup", "path", rel, "sha256", manifest[rel])
	return true, nil
}

// Restore overwrites hostPath with the backup stored under rel. Fails with
// MissingBackupError if no backup exists; no write is performed in that case.
func (b *BackupStore) Restore(hostPath, rel string) error {
	if !b.Has(rel) {
		return &MissingBackupError{Path: rel}
	}

	data, err := b.fs.ReadFile(b.backupPath(rel))
	if err != nil {
		return fmt.Errorf("failed to read backup for %s: %w", rel, err)
	}
	if err := b.fs.WriteFile(hostPath, data, 0o644); err != nil {
		return &WriteError{Path: hostPath, Err: err}
	}

	b.log.Debug("restored from backup", "path", rel)
	return nil
}

// ReadBackup returns the backed-up content for rel.
func (b *BackupStore) ReadBackup(rel string) ([]byte, error) {
	if !b.Has(rel) {
		return nil, &MissingBackupError{Path: rel}
	}
	return b.fs.ReadFile(b.backupPath(rel))
}

// Hash returns the sha256 of the backup for rel, or "" when none exists.
func (b *BackupStore) Hash(rel string) string {
	if !b.Has(rel) {
		return ""
	}
	sum, err := b.fs.Hash(b.backupPath(rel))
	if err != nil {
		return ""
	}
	return sum
}

// TrackedPaths returns the host-relative paths with captured backups,
// sorted, as recorded in the checksum manifest.
func (b *BackupStore) TrackedPaths() ([]string, error) {
	manifest, err := b.loadManifest()
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(manifest))
	for rel := range manifest {
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	return paths, nil
}

func (b *BackupStore) loadManifest() (map[string]string, error) {
	path := filepath.Join(b.dir, manifestName)
	if !b.fs.Exists(path) {
		return make(map[string]string), nil
	}
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup manifest: %w", err)
	}
	manifest := make(map[string]string)
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse backup manifest: %w", err)
	}
	return manifest, nil
}

func (b *BackupStore) saveManifest(manifest map[string]string) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		return fmt.Errorf("failed to marshal backup manifest: %w", err)
	}
	if err := b.fs.WriteFile(filepath.Join(b.dir, manifestName), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write backup manifest: %w", err)
	}
	return nil
}
