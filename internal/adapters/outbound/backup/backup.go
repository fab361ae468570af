// Package backup copies project files aside before they are rewritten.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileBackup implements domain.BackupWriter by writing <file>.bak copies
// next to the originals.
type FileBackup struct{}

func New() *FileBackup {
	return &FileBackup{}
}

func (b *FileBackup) Backup(projectPath, relPath string) error {
	src := filepath.Join(projectPath, filepath.FromSlash(relPath))

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", relPath, err)
	}
	defer in.Close()

	out, err := os.Create(src + ".bak")
	if err != nil {
		return fmt.Errorf("creating backup for %s: %w", relPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", relPath, err)
	}
	return out.Close()
}
