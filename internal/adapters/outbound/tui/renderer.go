// Package tui renders detection and migration results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	skipCol = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipCol)
	valueStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderDetection formats a detection result for the terminal.
func RenderDetection(result *domain.DetectionResult) string {
	var b strings.Builder

	title := headerStyle.Render("vismigrate")
	subtitle := dimStyle.Render("Platform Detection")
	platform := lipgloss.NewStyle().Bold(true).Foreground(accent).
		Render(result.Platform.DisplayName())

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + platform))
	b.WriteString("\n\n")

	writeField(&b, "Framework", string(result.Framework))
	writeField(&b, "Language", string(result.Language))
	writeField(&b, "Test type", string(result.TestType))
	b.WriteString("\n")

	writeFileList(&b, "Config files", result.Files.Config)
	writeFileList(&b, "Test sources", result.Files.Source)
	writeFileList(&b, "CI files", result.Files.CI)
	writeFileList(&b, "Manifests", result.Files.PackageManager)

	return b.String()
}

// RenderReport formats a migration report for the terminal.
func RenderReport(report *domain.MigrationReport) string {
	var b strings.Builder

	title := headerStyle.Render("vismigrate")
	mode := "Dry Run"
	if report.Applied {
		mode = "Migration Complete"
	}
	subtitle := dimStyle.Render(mode)
	headline := fmt.Sprintf("%s → %s",
		report.Detection.Platform.DisplayName(),
		domain.PlatformSauce.DisplayName())
	headlineStyled := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(headline)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + headlineStyled))
	b.WriteString("\n\n")

	writeField(&b, "Snapshots", fmt.Sprintf("%d", report.TotalSnapshots))
	if report.TotalWarnings > 0 {
		b.WriteString("  " + dimStyle.Render(pad("Warnings")) + warnStyle.Render(fmt.Sprintf("%d", report.TotalWarnings)) + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render(pad("Warnings")) + passStyle.Render("0") + "\n")
	}
	if report.CommitHash != "" {
		writeField(&b, "Commit", short(report.CommitHash))
	}
	b.WriteString("\n")

	renderFiles(&b, "Configuration", report.ConfigFiles)
	renderFiles(&b, "Test sources", report.SourceFiles)

	if len(report.PomChanges) > 0 {
		b.WriteString("  " + titleStyle.Render("Maven changes") + "\n")
		for _, c := range report.PomChanges {
			b.WriteString("    " + dimStyle.Render(c.Description) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n\n")
	if report.Applied {
		b.WriteString("  " + passStyle.Render("Migration applied.") + " " +
			dimStyle.Render("Report written to "+reportHint) + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render("Dry run only. Re-run without --dry-run to write changes.") + "\n")
	}

	return b.String()
}

const reportHint = "vismigrate-report.md"

func renderFiles(b *strings.Builder, title string, files []domain.FileResult) {
	if len(files) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render(title) + "\n")
	for _, f := range files {
		switch {
		case f.Skipped:
			b.WriteString("    " + skipStyle.Render("○ "+f.Path) + "\n")
		case f.SnapshotCount > 0:
			b.WriteString("    " + passStyle.Render("✓ ") + f.Path +
				dimStyle.Render(fmt.Sprintf("  %d snapshots", f.SnapshotCount)) + "\n")
		default:
			b.WriteString("    " + passStyle.Render("✓ ") + f.Path + "\n")
		}
		for _, w := range f.Warnings {
			msg := w.Message
			if w.Details != "" {
				msg += ": " + w.Details
			}
			b.WriteString("      " + warnStyle.Render("⚠ "+msg) + "\n")
		}
	}
	b.WriteString("\n")
}

func writeField(b *strings.Builder, name, value string) {
	b.WriteString("  " + dimStyle.Render(pad(name)) + valueStyle.Render(value) + "\n")
}

func writeFileList(b *strings.Builder, title string, files []string) {
	if len(files) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render(title) + dimStyle.Render(fmt.Sprintf("  (%d)", len(files))) + "\n")
	for _, f := range files {
		b.WriteString("    " + dimStyle.Render(f) + "\n")
	}
	b.WriteString("\n")
}

func pad(name string) string {
	return fmt.Sprintf("%-12s", name)
}

func short(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
