package transform

import "regexp"

// jsPercyRules migrates Percy JS/TS test sources.
var jsPercyRules = &ruleSet{
	imports: []importRule{
		{"@percy/cypress", "@saucelabs/cypress-visual-plugin"},
		{"@percy/playwright", "@saucelabs/visual-playwright"},
		{"@percy/storybook", "@saucelabs/visual-storybook"},
		{"@percy/selenium-webdriver", "@saucelabs/visual"},
		{"@percy/webdriverio", "@saucelabs/visual"},
	},
	importLines: []callRule{
		// Default import of the snapshot helper becomes a named import.
		{
			pattern: regexp.MustCompile(`import\s+percySnapshot\s+from`),
			replace: `import { sauceVisualCheck } from`,
		},
		{
			pattern: regexp.MustCompile(`(?:const|let|var)\s+percySnapshot\s*=\s*require\(`),
			replace: `const { sauceVisualCheck } = require(`,
		},
	},
	calls: []callRule{
		{
			pattern: regexp.MustCompile(`cy\.percySnapshot\(\s*` + quoted + callArgs + `\)`),
			replace: `cy.sauceVisualCheck($1)`,
		},
		{
			pattern: regexp.MustCompile(`cy\.percySnapshot\(\s*\)`),
			replace: `cy.sauceVisualCheck()`,
		},
		// percySnapshot(page, 'Name', {...}) — driver handle preserved,
		// non-convertible options dropped.
		{
			pattern: regexp.MustCompile(`percySnapshot\(\s*(\w+)\s*,\s*` + quoted + callArgs + `\)`),
			replace: `sauceVisualCheck($1, $2)`,
		},
	},
}

// jsApplitoolsRules migrates Applitools Eyes JS/TS test sources.
var jsApplitoolsRules = &ruleSet{
	imports: []importRule{
		{"@applitools/eyes-cypress", "@saucelabs/cypress-visual-plugin"},
		{"@applitools/eyes-playwright", "@saucelabs/visual-playwright"},
		{"@applitools/eyes-storybook", "@saucelabs/visual-storybook"},
		{"@applitools/eyes-selenium", "@saucelabs/visual"},
		{"@applitools/eyes-webdriverio", "@saucelabs/visual"},
	},
	calls: []callRule{
		{
			pattern: regexp.MustCompile(`cy\.eyesCheckWindow\(\s*` + quoted + `\s*\)`),
			replace: `cy.sauceVisualCheck($1)`,
		},
		// Object form: cy.eyesCheckWindow({ tag: 'Login', ... })
		{
			pattern: regexp.MustCompile(`cy\.eyesCheckWindow\(\s*\{[^}]*tag\s*:\s*` + quoted + `[^}]*\}\s*\)`),
			replace: `cy.sauceVisualCheck($1)`,
		},
		{
			pattern: regexp.MustCompile(`(?:await\s+)?eyes\.check(?:Window)?\(\s*` + quoted + callArgs + `\)`),
			replace: `await sauceVisualCheck(page, $1)`,
		},
	},
	removals: []*regexp.Regexp{
		regexp.MustCompile(`(?m)^[ \t]*(?:await )?cy\.eyes(?:Open|Close)\([^\n]*\)[;,]?[ \t]*\r?\n`),
		regexp.MustCompile(`(?m)^[ \t]*(?:await )?eyes\.(?:open|close|closeAsync|abort|abortAsync|abortIfNotClosed)\([^\n]*\)[;,]?[ \t]*\r?\n`),
	},
}
