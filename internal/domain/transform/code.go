package transform

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// quoted matches a single JS/Python/Java string literal argument.
const quoted = `('[^']*'|"[^"]*"|` + "`[^`]*`" + `)`

// callArgs matches the remainder of an argument list up to the call's own
// closing parenthesis, tolerating one level of nested parentheses so
// arguments like Target.window().fully() are consumed whole.
const callArgs = `(?:[^()]|\([^()]*\))*`

// importRule rewrites a platform SDK module reference to the target driver's.
type importRule struct {
	from string
	to   string
}

// callRule rewrites one recognized snapshot/check invocation. Each match
// increments the snapshot count. When fn is set it builds the replacement
// (and any warnings) from the capture groups; otherwise replace is used as
// a plain regexp template.
type callRule struct {
	pattern *regexp.Regexp
	replace string
	fn      func(groups []string) (string, []domain.Warning)
}

// preserveRule matches a pattern that must be left untouched but reported.
type preserveRule struct {
	pattern *regexp.Regexp
	message string
	details string
}

// ruleSet is the ordered substitution program for one (language, platform)
// pair. Passes run in a fixed sequence because earlier substitutions change
// what later ones match.
type ruleSet struct {
	imports     []importRule
	importLines []callRule // regexp-based import statement rewrites
	calls       []callRule
	removals    []*regexp.Regexp // lifecycle calls with no target equivalent
	preserves   []preserveRule
}

// Code rewrites one test source file for the given source platform. It never
// fails for valid text: unsupported or unmatched input comes back unchanged
// with a warning.
func Code(sourceText, filePath string, platform domain.Platform) domain.CodeResult {
	if platform == domain.PlatformSauce {
		return domain.CodeResult{Content: sourceText}
	}

	lang, ok := languageForPath(filePath)
	if !ok {
		return domain.CodeResult{
			Content: sourceText,
			Warnings: []domain.Warning{{
				Message: "unsupported source file type, left unchanged",
				Details: filePath,
			}},
		}
	}

	if lang == languageRobot {
		return robotCode(sourceText, platform)
	}

	rules, ok := codeRules[lang][platform]
	if !ok {
		return domain.CodeResult{
			Content: sourceText,
			Warnings: []domain.Warning{{
				Message: "no rewrite rules for this platform and language, file left unchanged",
				Details: filePath,
			}},
		}
	}
	return rules.apply(sourceText)
}

func (rs *ruleSet) apply(source string) domain.CodeResult {
	result := domain.CodeResult{}
	out := source

	// 1. Import/module-reference rewriting.
	for _, imp := range rs.imports {
		out = strings.ReplaceAll(out, imp.from, imp.to)
	}
	for _, rule := range rs.importLines {
		out = rule.pattern.ReplaceAllString(out, rule.replace)
	}

	// 2. Call-site rewriting; every rewrite increments the snapshot count.
	for _, rule := range rs.calls {
		matches := rule.pattern.FindAllStringSubmatchIndex(out, -1)
		if len(matches) == 0 {
			continue
		}
		result.SnapshotCount += len(matches)
		if rule.fn == nil {
			out = rule.pattern.ReplaceAllString(out, rule.replace)
			continue
		}
		out = rule.pattern.ReplaceAllStringFunc(out, func(m string) string {
			groups := rule.pattern.FindStringSubmatch(m)
			replacement, warnings := rule.fn(groups)
			result.Warnings = append(result.Warnings, warnings...)
			return replacement
		})
	}

	// 3. Lifecycle-call removal.
	for _, removal := range rs.removals {
		out = removal.ReplaceAllString(out, "")
	}

	// 4. Preserve rules: matched, reported, never modified.
	for _, p := range rs.preserves {
		if p.pattern.MatchString(out) {
			result.Warnings = append(result.Warnings, domain.Warning{
				Message: p.message,
				Details: p.details,
			})
		}
	}

	result.Content = out
	return result
}

type sourceLanguage int

const (
	languageJS sourceLanguage = iota
	languagePython
	languageJava
	languageRobot
)

func languageForPath(path string) (sourceLanguage, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs":
		return languageJS, true
	case ".py":
		return languagePython, true
	case ".java":
		return languageJava, true
	case ".robot", ".resource":
		return languageRobot, true
	}
	return 0, false
}

// codeRules holds the substitution program for every supported
// (language, platform) pair. Tables live in the per-language files.
var codeRules = map[sourceLanguage]map[domain.Platform]*ruleSet{
	languageJS: {
		domain.PlatformPercy:      jsPercyRules,
		domain.PlatformApplitools: jsApplitoolsRules,
	},
	languagePython: {
		domain.PlatformPercy:      pythonPercyRules,
		domain.PlatformApplitools: pythonApplitoolsRules,
	},
	languageJava: {
		domain.PlatformPercy:      javaPercyRules,
		domain.PlatformApplitools: javaApplitoolsRules,
	},
}
