// Package reporter persists migration reports as JSON and Markdown.
package reporter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// FileReporter implements domain.ReportWriter.
type FileReporter struct{}

func New() *FileReporter {
	return &FileReporter{}
}

func (r *FileReporter) WriteJSON(path string, report *domain.MigrationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func (r *FileReporter) WriteMarkdown(path string, report *domain.MigrationReport) error {
	return os.WriteFile(path, []byte(Markdown(report)), 0o644)
}

// Markdown renders the report as a human-readable summary document.
func Markdown(report *domain.MigrationReport) string {
	var b strings.Builder

	b.WriteString("# Visual Testing Migration Report\n\n")
	fmt.Fprintf(&b, "Migrated from **%s** to **%s**.\n\n",
		report.Detection.Platform.DisplayName(),
		domain.PlatformSauce.DisplayName())

	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Framework | %s |\n", report.Detection.Framework)
	fmt.Fprintf(&b, "| Language | %s |\n", report.Detection.Language)
	fmt.Fprintf(&b, "| Test type | %s |\n", report.Detection.TestType)
	fmt.Fprintf(&b, "| Snapshots migrated | %d |\n", report.TotalSnapshots)
	fmt.Fprintf(&b, "| Warnings | %d |\n", report.TotalWarnings)
	if report.CommitHash != "" {
		fmt.Fprintf(&b, "| Commit | %s |\n", report.CommitHash)
	}
	fmt.Fprintf(&b, "| Timestamp | %s |\n", report.Timestamp.Format("2006-01-02 15:04:05 UTC"))
	b.WriteString("\n")

	writeFileSection(&b, "Configuration", report.ConfigFiles)
	writeFileSection(&b, "Test sources", report.SourceFiles)

	if len(report.PomChanges) > 0 {
		b.WriteString("## Maven changes\n\n")
		for _, c := range report.PomChanges {
			fmt.Fprintf(&b, "- %s\n", c.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Next steps\n\n")
	b.WriteString("1. Set `SAUCE_USERNAME` and `SAUCE_ACCESS_KEY` in your environment.\n")
	b.WriteString("2. Review the warnings above and re-add any dropped options manually.\n")
	b.WriteString("3. Run the suite once to establish new visual baselines.\n")

	return b.String()
}

func writeFileSection(b *strings.Builder, title string, files []domain.FileResult) {
	if len(files) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, f := range files {
		switch {
		case f.Skipped && len(f.Warnings) == 0:
			fmt.Fprintf(b, "- `%s` (unchanged)\n", f.Path)
		case f.Skipped:
			fmt.Fprintf(b, "- `%s` (skipped)\n", f.Path)
		case f.SnapshotCount > 0:
			fmt.Fprintf(b, "- `%s` (%d snapshots)\n", f.Path, f.SnapshotCount)
		default:
			fmt.Fprintf(b, "- `%s`\n", f.Path)
		}
		for _, w := range f.Warnings {
			if w.Details != "" {
				fmt.Fprintf(b, "  - ⚠ %s: %s\n", w.Message, w.Details)
			} else {
				fmt.Fprintf(b, "  - ⚠ %s\n", w.Message)
			}
		}
	}
	b.WriteString("\n")
}
