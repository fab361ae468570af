// Package detector implements the detection engine: a two-tier,
// priority-ordered search that classifies a scanned project into exactly one
// (platform, framework, language, testType) tuple or fails explicitly.
package detector

import (
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/manifest"
	"github.com/vismigrate/vismigrate/internal/domain"
)

// PlatformDetector implements domain.PlatformDetector.
type PlatformDetector struct {
	log hclog.Logger
}

func New(log hclog.Logger) *PlatformDetector {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &PlatformDetector{log: log}
}

// Detect runs dependency analysis first (authoritative), then falls back to
// config-filename matching. It returns domain.ErrNotDetected when neither
// tier yields a match and *domain.ConflictError on mixed signals.
func (d *PlatformDetector) Detect(scan *domain.ScanResult) (*domain.DetectionResult, error) {
	candidates, err := d.dependencyTier(scan)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		// Fall through to the config-file tier.
	case 1:
		return d.finish(scan, candidates[0]), nil
	default:
		return nil, &domain.ConflictError{Candidates: toConflict(candidates)}
	}

	if c, ok := d.configTier(scan); ok {
		return d.finish(scan, c), nil
	}

	return nil, domain.ErrNotDetected
}

// ecosystemCandidate is one per-ecosystem detection outcome.
type ecosystemCandidate struct {
	platform  domain.Platform
	framework domain.Framework
	language  domain.Language
	source    string
}

// dependencyTier evaluates the three language ecosystems independently.
// More than one distinct (platform, framework) pair within a single
// manifest is a conflict immediately; a missing or malformed manifest is
// absence of signal, never an error.
func (d *PlatformDetector) dependencyTier(scan *domain.ScanResult) ([]ecosystemCandidate, error) {
	type ecosystem struct {
		language domain.Language
		source   string
		read     func(string) (map[string]string, bool)
		table    map[string]depEntry
	}
	ecosystems := []ecosystem{
		{domain.LanguageJSTS, "package.json", manifest.PackageJSON, jsDependencyTable},
		{domain.LanguageJava, "pom.xml", manifest.PomDependencies, javaDependencyTable},
		{domain.LanguagePython, "requirements.txt", manifest.Requirements, pythonDependencyTable},
	}

	var candidates []ecosystemCandidate
	for _, eco := range ecosystems {
		deps, ok := eco.read(scan.RootPath)
		if !ok {
			d.log.Debug("manifest unavailable, skipping ecosystem", "manifest", eco.source)
			continue
		}

		matches := matchTable(deps, eco.table, scan)
		if len(matches) > 1 {
			conflict := &domain.ConflictError{}
			for _, m := range matches {
				conflict.Candidates = append(conflict.Candidates, domain.Candidate{
					Platform: m.platform, Framework: m.framework, Source: eco.source,
				})
			}
			return nil, conflict
		}
		if len(matches) == 1 {
			d.log.Debug("dependency match",
				"manifest", eco.source,
				"platform", matches[0].platform,
				"framework", matches[0].framework)
			candidates = append(candidates, ecosystemCandidate{
				platform:  matches[0].platform,
				framework: matches[0].framework,
				language:  eco.language,
				source:    eco.source,
			})
		}
	}
	return candidates, nil
}

// matchTable collects the distinct (platform, framework) pairs indicated by
// a dependency map, honoring auxiliary directory checks.
func matchTable(deps map[string]string, table map[string]depEntry, scan *domain.ScanResult) []depEntry {
	seen := map[string]depEntry{}
	for dep := range deps {
		entry, ok := table[dep]
		if !ok {
			continue
		}
		if entry.requiresDir != "" && !scan.HasDir(entry.requiresDir) {
			continue
		}
		seen[string(entry.platform)+"/"+string(entry.framework)] = entry
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	matches := make([]depEntry, 0, len(seen))
	for _, k := range keys {
		matches = append(matches, seen[k])
	}
	return matches
}

// configTier searches for platform-distinguishing config filenames in fixed
// priority order. The first platform with a matching file wins outright; no
// cross-platform conflict check is performed here.
func (d *PlatformDetector) configTier(scan *domain.ScanResult) (ecosystemCandidate, bool) {
	for _, entry := range tier2ConfigFiles {
		for _, name := range entry.files {
			if !scan.HasFile(name) {
				continue
			}
			d.log.Debug("config file match", "file", name, "platform", entry.platform)
			return ecosystemCandidate{
				platform:  entry.platform,
				framework: probeFramework(scan),
				language:  domain.LanguageJSTS,
				source:    name,
			}, true
		}
	}
	return ecosystemCandidate{}, false
}

// probeFramework resolves the framework by structural probing with priority
// Cypress > Playwright > Storybook > default Selenium.
func probeFramework(scan *domain.ScanResult) domain.Framework {
	switch {
	case scan.HasFile("cypress.config.js") || scan.HasFile("cypress.config.ts") ||
		scan.HasFile("cypress.json") || scan.HasDir("cypress"):
		return domain.FrameworkCypress
	case scan.HasFile("playwright.config.js") || scan.HasFile("playwright.config.ts"):
		return domain.FrameworkPlaywright
	case scan.HasDir(".storybook"):
		return domain.FrameworkStorybook
	default:
		return domain.FrameworkSelenium
	}
}

func (d *PlatformDetector) finish(scan *domain.ScanResult, c ecosystemCandidate) *domain.DetectionResult {
	result := &domain.DetectionResult{
		Platform:  c.platform,
		Framework: c.framework,
		Language:  c.language,
		TestType:  domain.TestTypeFor(c.framework),
	}
	result.Files = collectFiles(scan, result)
	return result
}

func toConflict(candidates []ecosystemCandidate) []domain.Candidate {
	out := make([]domain.Candidate, len(candidates))
	for i, c := range candidates {
		out[i] = domain.Candidate{Platform: c.platform, Framework: c.framework, Source: c.source}
	}
	return out
}
