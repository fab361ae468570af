package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/tui"
	"github.com/vismigrate/vismigrate/internal/domain"
)

func sampleDetection() *domain.DetectionResult {
	return &domain.DetectionResult{
		Platform:  domain.PlatformPercy,
		Framework: domain.FrameworkCypress,
		Language:  domain.LanguageJSTS,
		TestType:  domain.TestTypeE2E,
		Files: domain.FileSet{
			Config:         []string{".percy.yml"},
			Source:         []string{"cypress/e2e/login.cy.js"},
			PackageManager: []string{"package.json"},
		},
	}
}

func TestRenderDetection(t *testing.T) {
	out := tui.RenderDetection(sampleDetection())

	assert.Contains(t, out, "vismigrate")
	assert.Contains(t, out, "Percy")
	assert.Contains(t, out, "cypress")
	assert.Contains(t, out, ".percy.yml")
	assert.Contains(t, out, "cypress/e2e/login.cy.js")
}

func TestRenderReport_DryRun(t *testing.T) {
	report := &domain.MigrationReport{
		Detection: *sampleDetection(),
		SourceFiles: []domain.FileResult{
			{Path: "cypress/e2e/login.cy.js", SnapshotCount: 2},
			{Path: "cypress/e2e/plain.cy.js", Skipped: true},
		},
		ConfigFiles: []domain.FileResult{
			{Path: "saucectl.yml", Warnings: []domain.Warning{{Message: "option dropped"}}},
		},
		TotalSnapshots: 2,
		TotalWarnings:  1,
		Timestamp:      time.Now(),
	}

	out := tui.RenderReport(report)

	assert.Contains(t, out, "Dry Run")
	assert.Contains(t, out, "2 snapshots")
	assert.Contains(t, out, "option dropped")
	assert.Contains(t, out, "Dry run only")
}

func TestRenderReport_Applied(t *testing.T) {
	report := &domain.MigrationReport{
		Detection:  *sampleDetection(),
		Applied:    true,
		CommitHash: "0123456789abcdef",
		Timestamp:  time.Now(),
	}

	out := tui.RenderReport(report)

	assert.Contains(t, out, "Migration Complete")
	assert.Contains(t, out, "01234567")
	assert.Contains(t, out, "Migration applied.")
}
