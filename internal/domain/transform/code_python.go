package transform

import (
	"regexp"
	"strings"

	"github.com/vismigrate/vismigrate/internal/domain"
)

const sauceVisualPyImport = `from saucelabs_visual.frameworks.selenium import SauceLabsVisual`

// pythonPercyRules migrates Percy Python test sources.
var pythonPercyRules = &ruleSet{
	importLines: []callRule{
		{
			pattern: regexp.MustCompile(`(?m)^from percy(?:\.[\w.]+)? import [\w, ]+$`),
			replace: sauceVisualPyImport,
		},
		{
			pattern: regexp.MustCompile(`(?m)^import percy$`),
			replace: sauceVisualPyImport,
		},
	},
	calls: []callRule{
		{
			pattern: regexp.MustCompile(`percy_snapshot\(\s*(\w+)\s*,\s*` + quoted + `\s*((?:,` + callArgs + `)?)\)`),
			fn:      pythonCheckCall,
		},
		// Appium screenshots carry device kwargs worth preserving.
		{
			pattern: regexp.MustCompile(`percy_screenshot\(\s*(\w+)\s*,\s*` + quoted + `\s*((?:,` + callArgs + `)?)\)`),
			fn:      pythonCheckCall,
		},
		{
			pattern: regexp.MustCompile(`(\w+)\.snapshot\(\s*` + quoted + `\s*((?:,` + callArgs + `)?)\)`),
			fn:      pythonCheckCall,
		},
	},
	preserves: []preserveRule{
		{
			pattern: regexp.MustCompile(`driver\.switch_to\.context\(\s*['"]NATIVE_APP['"]`),
			message: "native context switch left in place",
			details: "hybrid-app context handling is unchanged by the migration; verify it manually",
		},
	},
}

// pythonApplitoolsRules migrates Applitools Eyes Python test sources.
var pythonApplitoolsRules = &ruleSet{
	importLines: []callRule{
		{
			pattern: regexp.MustCompile(`(?m)^from applitools(?:\.[\w.]+)? import [\w, ()]+$`),
			replace: sauceVisualPyImport,
		},
	},
	calls: []callRule{
		{
			pattern: regexp.MustCompile(`eyes\.check_window\(\s*` + quoted + `\s*((?:,` + callArgs + `)?)\)`),
			fn:      pythonEyesCall,
		},
		{
			pattern: regexp.MustCompile(`eyes\.check\(\s*` + quoted + `\s*((?:,` + callArgs + `)?)\)`),
			fn:      pythonEyesCall,
		},
	},
	removals: []*regexp.Regexp{
		regexp.MustCompile(`(?m)^[ \t]*eyes\.(?:open|close|close_async|abort|abort_async|abort_if_not_closed)\([^\n]*\)[ \t]*\r?\n`),
		regexp.MustCompile(`(?m)^[ \t]*eyes\s*=\s*Eyes\([^\n]*\)[ \t]*\r?\n`),
	},
	preserves: []preserveRule{
		{
			pattern: regexp.MustCompile(`driver\.switch_to\.context\(\s*['"]NATIVE_APP['"]`),
			message: "native context switch left in place",
			details: "hybrid-app context handling is unchanged by the migration; verify it manually",
		},
	},
}

// pythonCheckCall rewrites percy_snapshot(driver, "Name", ...) style calls,
// carrying convertible keyword arguments and warning on the rest.
// groups: [whole, driverVar, name, extraArgs]
func pythonCheckCall(groups []string) (string, []domain.Warning) {
	driverVar, name, extra := groups[1], groups[2], groups[3]
	kept, warnings := convertPyKwargs(extra)
	call := "visual_client.sauce_visual_check(" + driverVar + ", " + name
	if kept != "" {
		call += ", " + kept
	}
	return call + ")", warnings
}

// pythonEyesCall rewrites eyes.check("Name", Target...) style calls. The
// driver handle is not part of the Eyes call shape, so the canonical
// `driver` name is used.
// groups: [whole, name, extraArgs]
func pythonEyesCall(groups []string) (string, []domain.Warning) {
	name, extra := groups[1], groups[2]
	kept, warnings := convertPyKwargs(extra)
	call := "visual_client.sauce_visual_check(driver, " + name
	if kept != "" {
		call += ", " + kept
	}
	return call + ")", warnings
}

// convertiblePyKwargs are keyword arguments with a direct target equivalent.
var convertiblePyKwargs = map[string]bool{
	"device_name": true,
	"orientation": true,
}

// convertPyKwargs splits a trailing argument list, keeps convertible keyword
// arguments, and reports everything else as a warning.
func convertPyKwargs(extra string) (string, []domain.Warning) {
	extra = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(extra), ","))
	if extra == "" {
		return "", nil
	}

	var kept []string
	var warnings []domain.Warning
	for _, arg := range strings.Split(extra, ",") {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		key, _, isKwarg := strings.Cut(arg, "=")
		if isKwarg && convertiblePyKwargs[strings.TrimSpace(key)] {
			kept = append(kept, arg)
			continue
		}
		warnings = append(warnings, domain.Warning{
			Message: "snapshot option dropped during call rewrite",
			Details: arg,
		})
	}
	return strings.Join(kept, ", "), warnings
}
