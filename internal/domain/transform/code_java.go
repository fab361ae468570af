package transform

import "regexp"

const javaVisualBuilder = `new VisualApi.Builder($1, System.getenv("SAUCE_USERNAME"), System.getenv("SAUCE_ACCESS_KEY")).build()`

// javaPercyRules migrates Percy Java test sources (Selenium and Appium).
var javaPercyRules = &ruleSet{
	imports: []importRule{
		{"io.percy.selenium.Percy", "com.saucelabs.visual.VisualApi"},
		{"io.percy.appium.AppPercy", "com.saucelabs.visual.VisualApi"},
		{"io.percy.appium.PercyOnAutomate", "com.saucelabs.visual.VisualApi"},
	},
	importLines: []callRule{
		// Declarations keep their variable name but change type and
		// construction: Percy percy = new Percy(driver) → VisualApi percy = ...
		{
			pattern: regexp.MustCompile(`\b(?:Percy|AppPercy|PercyOnAutomate)\s+(\w+)\s*=\s*new`),
			replace: `VisualApi $1 = new`,
		},
		{
			pattern: regexp.MustCompile(`new\s+(?:Percy|AppPercy|PercyOnAutomate)\(\s*(\w+)\s*\)`),
			replace: javaVisualBuilder,
		},
	},
	calls: []callRule{
		{
			pattern: regexp.MustCompile(`(\w+)\.snapshot\(\s*` + quoted + callArgs + `\)`),
			replace: `$1.sauceVisualCheck($2)`,
		},
		{
			pattern: regexp.MustCompile(`(\w+)\.screenshot\(\s*` + quoted + callArgs + `\)`),
			replace: `$1.sauceVisualCheck($2)`,
		},
	},
	preserves: []preserveRule{
		{
			pattern: regexp.MustCompile(`(?:driver\.context\(\s*"NATIVE_APP"|switchTo\(\)\.context\()`),
			message: "native context switch left in place",
			details: "hybrid-app context handling is unchanged by the migration; verify it manually",
		},
	},
}

// javaApplitoolsRules migrates Applitools Eyes Java test sources.
var javaApplitoolsRules = &ruleSet{
	imports: []importRule{
		{"com.applitools.eyes.selenium.Eyes", "com.saucelabs.visual.VisualApi"},
		{"com.applitools.eyes.appium.Eyes", "com.saucelabs.visual.VisualApi"},
	},
	importLines: []callRule{
		// Remaining Eyes support imports (Target, RectangleSize, ...) have no
		// target counterpart.
		{
			pattern: regexp.MustCompile(`(?m)^import com\.applitools\.[\w.]+;\r?\n`),
			replace: ``,
		},
		{
			pattern: regexp.MustCompile(`\bEyes\s+(\w+)\s*=\s*new`),
			replace: `VisualApi $1 = new`,
		},
		{
			pattern: regexp.MustCompile(`new\s+Eyes\(\s*(\w*)` + callArgs + `\)`),
			replace: javaVisualBuilder,
		},
	},
	calls: []callRule{
		// Anchored to the conventional receiver name; aliased Eyes variables
		// are an accepted pattern-rewriting limitation.
		{
			pattern: regexp.MustCompile(`(eyes)\.check(?:Window)?\(\s*` + quoted + callArgs + `\)`),
			replace: `$1.sauceVisualCheck($2)`,
		},
	},
	removals: []*regexp.Regexp{
		regexp.MustCompile(`(?m)^[ \t]*eyes\.(?:open|close|closeAsync|abort|abortAsync|abortIfNotClosed)\([^\n]*\);?[ \t]*\r?\n`),
	},
	preserves: []preserveRule{
		{
			pattern: regexp.MustCompile(`(?:driver\.context\(\s*"NATIVE_APP"|switchTo\(\)\.context\()`),
			message: "native context switch left in place",
			details: "hybrid-app context handling is unchanged by the migration; verify it manually",
		},
	},
}
