package application

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/vismigrate/vismigrate/internal/domain"
	"github.com/vismigrate/vismigrate/internal/domain/transform"
)

// TargetConfigFile is the config file the migration writes; it replaces the
// source platform's config rather than editing it in place.
const TargetConfigFile = "saucectl.yml"

// ReportFile is the human-readable migration summary written next to the
// migrated project on apply.
const ReportFile = "vismigrate-report.md"

// ApplyOptions controls how Apply writes the planned changes.
type ApplyOptions struct {
	// Backup copies every file aside as <file>.bak before overwriting it.
	Backup bool
}

// MigrationService orchestrates the migration pipeline:
// scan -> detect -> transform (in memory) -> optionally apply to disk.
type MigrationService struct {
	scanner  domain.ProjectScanner
	detector domain.PlatformDetector
	backup   domain.BackupWriter
	git      domain.GitInfo
	reports  domain.ReportWriter
	log      hclog.Logger
}

func NewMigrationService(
	scanner domain.ProjectScanner,
	detector domain.PlatformDetector,
	backup domain.BackupWriter,
	git domain.GitInfo,
	reports domain.ReportWriter,
	log hclog.Logger,
) *MigrationService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &MigrationService{
		scanner:  scanner,
		detector: detector,
		backup:   backup,
		git:      git,
		reports:  reports,
		log:      log,
	}
}

// Plan runs the full migration in memory and returns the report without
// touching any file. Every transformation is total: per-file problems become
// warnings or skips on the report, never errors.
func (s *MigrationService) Plan(projectPath string) (*domain.MigrationReport, error) {
	scan, err := s.scanner.Scan(projectPath)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	detection, err := s.detector.Detect(scan)
	if err != nil {
		return nil, err
	}
	if detection.Platform == domain.PlatformSauce {
		return nil, domain.ErrAlreadyMigrated
	}
	s.log.Debug("platform detected",
		"platform", detection.Platform,
		"framework", detection.Framework,
		"language", detection.Language)

	report := &domain.MigrationReport{
		Detection: *detection,
		Timestamp: time.Now().UTC(),
	}

	s.planConfigs(scan.RootPath, detection, report)
	s.planSources(scan.RootPath, detection, report)
	s.planPom(scan, detection, report)

	for _, f := range report.SourceFiles {
		report.TotalSnapshots += f.SnapshotCount
	}
	report.CountWarnings()
	s.attachGitInfo(projectPath, report)

	return report, nil
}

// planConfigs migrates the first readable source config into the target
// config document. Additional config files are reported as skipped: the
// target schema holds exactly one document.
func (s *MigrationService) planConfigs(rootPath string, detection *domain.DetectionResult, report *domain.MigrationReport) {
	migrated := false
	for _, rel := range detection.Files.Config {
		if migrated {
			report.ConfigFiles = append(report.ConfigFiles, domain.FileResult{
				Path:    rel,
				Skipped: true,
				Warnings: []domain.Warning{{
					Message: "additional config file skipped",
					Details: "only the first config document is migrated to " + TargetConfigFile,
				}},
			})
			continue
		}

		text, err := os.ReadFile(filepath.Join(rootPath, filepath.FromSlash(rel)))
		if err != nil {
			report.ConfigFiles = append(report.ConfigFiles, domain.FileResult{
				Path:    rel,
				Skipped: true,
				Warnings: []domain.Warning{{
					Message: "config file unreadable, skipped",
					Details: err.Error(),
				}},
			})
			continue
		}

		result := transform.Config(detection.Platform, string(text))
		report.ConfigFiles = append(report.ConfigFiles, domain.FileResult{
			Path:     TargetConfigFile,
			Content:  result.Content,
			Warnings: result.Warnings,
		})
		migrated = true
	}

	if !migrated {
		report.ConfigFiles = append(report.ConfigFiles, domain.FileResult{
			Path:    TargetConfigFile,
			Content: transform.DefaultTargetConfig(),
			Warnings: []domain.Warning{{
				Message: "no source configuration found",
				Details: "generated a default " + TargetConfigFile,
			}},
		})
	}
}

// planSources transforms every collected test source in list order. Files
// the transformation leaves untouched are reported as skipped so Apply does
// not rewrite them.
func (s *MigrationService) planSources(rootPath string, detection *domain.DetectionResult, report *domain.MigrationReport) {
	for _, rel := range detection.Files.Source {
		text, err := os.ReadFile(filepath.Join(rootPath, filepath.FromSlash(rel)))
		if err != nil {
			report.SourceFiles = append(report.SourceFiles, domain.FileResult{
				Path:    rel,
				Skipped: true,
				Warnings: []domain.Warning{{
					Message: "source file unreadable, skipped",
					Details: err.Error(),
				}},
			})
			continue
		}

		result := transform.Code(string(text), rel, detection.Platform)
		fr := domain.FileResult{
			Path:          rel,
			Content:       result.Content,
			Warnings:      result.Warnings,
			SnapshotCount: result.SnapshotCount,
		}
		if result.Content == string(text) && result.SnapshotCount == 0 {
			fr.Skipped = true
		}
		report.SourceFiles = append(report.SourceFiles, fr)
	}
}

// planPom rewrites Maven coordinates when the project is a Java ecosystem.
func (s *MigrationService) planPom(scan *domain.ScanResult, detection *domain.DetectionResult, report *domain.MigrationReport) {
	if detection.Language != domain.LanguageJava || !scan.HasFile("pom.xml") {
		return
	}

	text, err := os.ReadFile(filepath.Join(scan.RootPath, "pom.xml"))
	if err != nil {
		report.ConfigFiles = append(report.ConfigFiles, domain.FileResult{
			Path:    "pom.xml",
			Skipped: true,
			Warnings: []domain.Warning{{
				Message: "pom.xml unreadable, skipped",
				Details: err.Error(),
			}},
		})
		return
	}

	result := transform.PomXML(string(text))
	report.PomChanges = result.Changes

	fr := domain.FileResult{
		Path:     "pom.xml",
		Content:  result.Content,
		Warnings: result.Warnings,
	}
	if len(result.Changes) == 0 {
		fr.Skipped = true
	}
	report.ConfigFiles = append(report.ConfigFiles, fr)
}

func (s *MigrationService) attachGitInfo(projectPath string, report *domain.MigrationReport) {
	hash, err := s.git.CommitHash(projectPath)
	if err != nil {
		s.log.Debug("no git metadata available", "error", err)
		return
	}
	report.CommitHash = hash

	if dirty, err := s.git.IsDirty(projectPath); err == nil && dirty {
		s.log.Warn("working tree has uncommitted changes; consider committing before migrating")
	}
}

// Apply plans the migration and writes the results to disk. Writes happen
// sequentially in report order; the first write failure aborts the run.
func (s *MigrationService) Apply(projectPath string, opts ApplyOptions) (*domain.MigrationReport, error) {
	report, err := s.Plan(projectPath)
	if err != nil {
		return nil, err
	}

	files := make([]domain.FileResult, 0, len(report.ConfigFiles)+len(report.SourceFiles))
	files = append(files, report.ConfigFiles...)
	files = append(files, report.SourceFiles...)

	for _, f := range files {
		if f.Skipped {
			continue
		}
		target := filepath.Join(projectPath, filepath.FromSlash(f.Path))

		if opts.Backup {
			if _, statErr := os.Stat(target); statErr == nil {
				if err := s.backup.Backup(projectPath, f.Path); err != nil {
					return nil, fmt.Errorf("backing up %s: %w", f.Path, err)
				}
			}
		}

		if err := os.WriteFile(target, []byte(f.Content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.Path, err)
		}
		s.log.Debug("wrote file", "path", f.Path)
	}

	report.Applied = true

	reportPath := filepath.Join(projectPath, ReportFile)
	if err := s.reports.WriteMarkdown(reportPath, report); err != nil {
		return nil, fmt.Errorf("writing migration report: %w", err)
	}

	return report, nil
}
