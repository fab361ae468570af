package domain

import "time"

// Platform identifies a visual-regression-testing platform.
type Platform string

const (
	PlatformPercy      Platform = "percy"
	PlatformApplitools Platform = "applitools"
	PlatformSauce      Platform = "sauce-visual"
)

// ValidPlatforms enumerates all recognized platforms.
var ValidPlatforms = []Platform{PlatformPercy, PlatformApplitools, PlatformSauce}

func (p Platform) Valid() bool {
	switch p {
	case PlatformPercy, PlatformApplitools, PlatformSauce:
		return true
	}
	return false
}

// DisplayName returns the platform name as shown to users.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformPercy:
		return "Percy"
	case PlatformApplitools:
		return "Applitools"
	case PlatformSauce:
		return "Sauce Labs Visual"
	}
	return string(p)
}

// Framework identifies the test framework driving the visual checks.
type Framework string

const (
	FrameworkCypress        Framework = "cypress"
	FrameworkPlaywright     Framework = "playwright"
	FrameworkSelenium       Framework = "selenium"
	FrameworkStorybook      Framework = "storybook"
	FrameworkAppium         Framework = "appium"
	FrameworkRobotFramework Framework = "robotframework"
)

func (f Framework) Valid() bool {
	switch f {
	case FrameworkCypress, FrameworkPlaywright, FrameworkSelenium,
		FrameworkStorybook, FrameworkAppium, FrameworkRobotFramework:
		return true
	}
	return false
}

// Language identifies the test-source language ecosystem.
type Language string

const (
	LanguageJSTS   Language = "js-ts"
	LanguageJava   Language = "java"
	LanguagePython Language = "python"
)

// TestType classifies the kind of test suite being migrated.
type TestType string

const (
	TestTypeE2E       TestType = "e2e"
	TestTypeStorybook TestType = "storybook"
	TestTypeAppium    TestType = "appium"
)

// TestTypeFor derives the test type from the detected framework.
func TestTypeFor(f Framework) TestType {
	switch f {
	case FrameworkStorybook:
		return TestTypeStorybook
	case FrameworkAppium:
		return TestTypeAppium
	default:
		return TestTypeE2E
	}
}

// FileSet groups the project files relevant to a detected platform/framework
// pair, collected by category.
type FileSet struct {
	Config         []string `json:"config"`
	Source         []string `json:"source"`
	CI             []string `json:"ci"`
	PackageManager []string `json:"package_manager"`
}

// DetectionResult is the classification of a project into exactly one
// (platform, framework, language, testType) tuple. It is produced once per
// scan and is read-only for every downstream consumer.
type DetectionResult struct {
	Platform  Platform  `json:"platform"`
	Framework Framework `json:"framework"`
	Language  Language  `json:"language"`
	TestType  TestType  `json:"test_type"`
	Files     FileSet   `json:"files"`
}

// Warning is a non-fatal note attached to exactly one transformed document.
type Warning struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ConfigResult is the outcome of transforming one configuration document.
type ConfigResult struct {
	Content  string    `json:"content"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// CodeResult is the outcome of transforming one test source file.
// SnapshotCount is the number of rewritten snapshot call-sites, the
// migration's primary completion metric.
type CodeResult struct {
	Content       string    `json:"content"`
	Warnings      []Warning `json:"warnings,omitempty"`
	SnapshotCount int       `json:"snapshot_count"`
}

// PomChangeType classifies a single Maven coordinate substitution.
type PomChangeType string

const (
	PomDependencyUpdate PomChangeType = "dependency_update"
	PomDependencyRemove PomChangeType = "dependency_remove"
	PomPluginUpdate     PomChangeType = "plugin_update"
	PomPluginRemove     PomChangeType = "plugin_remove"
)

// PomChange records one coordinate substitution in a Maven manifest.
// Changes are accumulated in document order and never deduplicated.
type PomChange struct {
	Type        PomChangeType `json:"type"`
	GroupID     string        `json:"group_id"`
	ArtifactID  string        `json:"artifact_id"`
	OldVersion  string        `json:"old_version,omitempty"`
	NewVersion  string        `json:"new_version,omitempty"`
	Description string        `json:"description"`
}

// PomResult is the outcome of transforming a Maven build manifest.
type PomResult struct {
	Content  string      `json:"content"`
	Changes  []PomChange `json:"changes,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
}

// FileResult pairs one project file with its transformation outcome.
type FileResult struct {
	Path          string    `json:"path"`
	Content       string    `json:"-"`
	Warnings      []Warning `json:"warnings,omitempty"`
	SnapshotCount int       `json:"snapshot_count,omitempty"`
	Skipped       bool      `json:"skipped,omitempty"`
}

// MigrationReport is the caller-side accumulation of every per-file result
// from one migration run. It is assembled by the application layer and
// consumed by the render/report collaborators.
type MigrationReport struct {
	Detection      DetectionResult `json:"detection"`
	ConfigFiles    []FileResult    `json:"config_files,omitempty"`
	SourceFiles    []FileResult    `json:"source_files,omitempty"`
	PomChanges     []PomChange     `json:"pom_changes,omitempty"`
	TotalSnapshots int             `json:"total_snapshots"`
	TotalWarnings  int             `json:"total_warnings"`
	CommitHash     string          `json:"commit_hash,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
	Applied        bool            `json:"applied"`
}

// CountWarnings recomputes TotalWarnings from the per-file results.
func (r *MigrationReport) CountWarnings() int {
	n := 0
	for _, f := range r.ConfigFiles {
		n += len(f.Warnings)
	}
	for _, f := range r.SourceFiles {
		n += len(f.Warnings)
	}
	r.TotalWarnings = n
	return n
}
