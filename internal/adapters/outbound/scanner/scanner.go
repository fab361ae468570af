package scanner

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// skipDirs is the uniform ignore list applied to every scan: build output,
// VCS metadata, logs, and dependency caches.
var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".hg":          true,
	".svn":         true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"coverage":     true,
	"logs":         true,
	"venv":         true,
	".venv":        true,
	"__pycache__":  true,
	".idea":        true,
	".vscode":      true,
}

// FileScanner implements domain.ProjectScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(projectPath string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	result := &domain.ScanResult{
		RootPath: absPath,
		Dirs:     map[string]bool{},
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// An unreadable root is fatal; unreadable entries below it are
			// skipped, not fatal to the scan.
			if path == absPath {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, relErr := filepath.Rel(absPath, path)
		if relErr != nil || relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			result.Dirs[relPath] = true
			return nil
		}

		result.Files = append(result.Files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.Files)
	return result, nil
}
