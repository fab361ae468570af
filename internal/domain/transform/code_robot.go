package transform

import (
	"strings"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// robotKeywordTable maps Applitools Eyes keywords to their target keyword.
// Robot files are line-oriented, so a simple keyword-substitution pass is
// used instead of pattern rewriting.
var robotKeywordTable = map[string]string{
	"Eyes Check Window": "Create Visual Snapshot",
	"Check Eyes Window": "Create Visual Snapshot",
}

// robotDropKeywords are lifecycle keywords with no target equivalent; their
// lines are removed entirely.
var robotDropKeywords = map[string]bool{
	"Eyes Open":  true,
	"Open Eyes":  true,
	"Eyes Close": true,
	"Close Eyes": true,
}

// robotCode migrates a Robot Framework keyword file. Only Applitools ships a
// Robot Framework integration, so other platforms come back unchanged with a
// warning.
func robotCode(sourceText string, platform domain.Platform) domain.CodeResult {
	if platform != domain.PlatformApplitools {
		return domain.CodeResult{
			Content: sourceText,
			Warnings: []domain.Warning{{
				Message: "Robot Framework files are only migrated from Applitools, file left unchanged",
			}},
		}
	}

	lines := strings.Split(sourceText, "\n")
	out := make([]string, 0, len(lines))
	result := domain.CodeResult{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "Library") && strings.Contains(line, "EyesLibrary") {
			out = append(out, strings.Replace(line, "EyesLibrary", "SauceLabsVisual", 1))
			continue
		}

		if keyword := leadingKeyword(line); keyword != "" {
			if robotDropKeywords[keyword] {
				continue
			}
			if target, ok := robotKeywordTable[keyword]; ok {
				out = append(out, strings.Replace(line, keyword, target, 1))
				result.SnapshotCount++
				continue
			}
		}

		out = append(out, line)
	}

	result.Content = strings.Join(out, "\n")
	return result
}

// leadingKeyword extracts the keyword token from a Robot line: the text
// before the first two-space (or tab) cell separator.
func leadingKeyword(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "*") {
		return ""
	}
	for _, sep := range []string{"  ", "\t"} {
		if idx := strings.Index(trimmed, sep); idx != -1 {
			return strings.TrimSpace(trimmed[:idx])
		}
	}
	return strings.TrimSpace(trimmed)
}
