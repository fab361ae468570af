package domain

import "strings"

// ScanResult holds the file inventory of a scanned project directory.
// Paths are slash-separated and relative to RootPath.
type ScanResult struct {
	RootPath string          `json:"root_path"`
	Files    []string        `json:"files"`
	Dirs     map[string]bool `json:"-"`
}

// HasFile reports whether the scan saw the given relative path.
func (s *ScanResult) HasFile(relPath string) bool {
	for _, f := range s.Files {
		if f == relPath {
			return true
		}
	}
	return false
}

// HasDir reports whether the scan saw the given directory, at any depth
// component boundary (e.g. ".storybook" matches ".storybook/main.js").
func (s *ScanResult) HasDir(name string) bool {
	if s.Dirs[name] {
		return true
	}
	for d := range s.Dirs {
		if d == name || strings.HasSuffix(d, "/"+name) {
			return true
		}
	}
	return false
}
