package fsutil

import (
	"context"
	"fmt"
	"os"
)

// BackupMode selects where backups of rewritten files are stored.
type BackupMode string

const (
	// BackupModeSidecar keeps the backup next to the original file.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// BackupSuffix is appended to a file's path to name its sidecar backup.
const BackupSuffix = ".gojslint.bak"

// BackupConfig controls whether and how originals are preserved before the
// fix pipeline rewrites them.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode
}

// DefaultBackupConfig returns the defaults: backups off, sidecar placement
// when turned on.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{
		Enabled: false,
		Mode:    BackupModeSidecar,
	}
}

// BackupPath returns where the backup for path lives, or "" when mode
// disables backups. Unknown modes fall back to sidecar.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// copyTo reads src and writes its content and mode atomically to dst.
func copyTo(ctx context.Context, src, dst string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	stat, err := os.Stat(src)
	if err != nil {
		return err
	}
	return WriteAtomic(ctx, dst, content, stat.Mode())
}

// CreateBackup preserves the file at path before it is rewritten. It is
// idempotent: an existing backup is never overwritten, so the pristine
// original survives repeated fix runs. Returns true when a backup was
// written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}
	backupPath := BackupPath(path, cfg.Mode)
	if backupPath == "" {
		return false, nil
	}
	if err := ctxErr(ctx, "create backup"); err != nil {
		return false, err
	}

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := copyTo(ctx, path, backupPath); err != nil {
		if os.IsNotExist(err) {
			// Nothing on disk to preserve.
			return false, nil
		}
		return false, fmt.Errorf("back up %s: %w", path, err)
	}
	return true, nil
}

// RestoreBackup puts the backed-up content back in place of path. Returns
// true when a backup existed and was restored.
func RestoreBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}
	if err := ctxErr(ctx, "restore backup"); err != nil {
		return false, err
	}

	if err := copyTo(ctx, backupPath, path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("restore %s: %w", path, err)
	}
	return true, nil
}

// RemoveBackup deletes the backup for path if present.
func RemoveBackup(path string, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	if err := os.Remove(backupPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove backup: %w", err)
	}
	return true, nil
}

// BackupExists reports whether path has a backup on disk.
func BackupExists(path string, mode BackupMode) bool {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false
	}
	_, err := os.Stat(backupPath)
	return err == nil
}
