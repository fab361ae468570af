package detector

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// collectFiles populates the four file categories with independent glob
// queries against the scan's file list. The scanner has already applied the
// uniform ignore list, so every query sees the same filtered view.
func collectFiles(scan *domain.ScanResult, result *domain.DetectionResult) domain.FileSet {
	return domain.FileSet{
		Config:         matchGlobs(scan.Files, configPatterns[result.Platform]),
		Source:         matchGlobs(scan.Files, sourcePatterns[result.Language][result.Framework]),
		CI:             matchGlobs(scan.Files, ciPatterns),
		PackageManager: matchGlobs(scan.Files, packageManagerPatterns[result.Language]),
	}
}

func matchGlobs(files, patterns []string) []string {
	seen := map[string]bool{}
	for _, pattern := range patterns {
		for _, f := range files {
			if seen[f] {
				continue
			}
			if ok, err := doublestar.Match(pattern, f); err == nil && ok {
				seen[f] = true
			}
		}
	}

	matched := make([]string, 0, len(seen))
	for f := range seen {
		matched = append(matched, f)
	}
	sort.Strings(matched)
	return matched
}
