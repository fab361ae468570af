package detector

import "github.com/vismigrate/vismigrate/internal/domain"

// depEntry maps one dependency identifier to a (platform, framework) pair.
// requiresDir is an auxiliary structural check: the entry only counts when
// that directory exists, which keeps transitively-installed packages (e.g. a
// generic storybook adapter) from producing false positives.
type depEntry struct {
	platform    domain.Platform
	framework   domain.Framework
	requiresDir string
}

// jsDependencyTable keys are package.json dependency names.
var jsDependencyTable = map[string]depEntry{
	"@percy/cypress":                 {domain.PlatformPercy, domain.FrameworkCypress, ""},
	"@percy/playwright":              {domain.PlatformPercy, domain.FrameworkPlaywright, ""},
	"@percy/selenium-webdriver":      {domain.PlatformPercy, domain.FrameworkSelenium, ""},
	"@percy/webdriverio":             {domain.PlatformPercy, domain.FrameworkSelenium, ""},
	"@percy/storybook":               {domain.PlatformPercy, domain.FrameworkStorybook, ".storybook"},
	"@applitools/eyes-cypress":       {domain.PlatformApplitools, domain.FrameworkCypress, ""},
	"@applitools/eyes-playwright":    {domain.PlatformApplitools, domain.FrameworkPlaywright, ""},
	"@applitools/eyes-selenium":      {domain.PlatformApplitools, domain.FrameworkSelenium, ""},
	"@applitools/eyes-webdriverio":   {domain.PlatformApplitools, domain.FrameworkSelenium, ""},
	"@applitools/eyes-storybook":     {domain.PlatformApplitools, domain.FrameworkStorybook, ".storybook"},
	"@saucelabs/cypress-visual-plugin": {domain.PlatformSauce, domain.FrameworkCypress, ""},
	"@saucelabs/visual-playwright":     {domain.PlatformSauce, domain.FrameworkPlaywright, ""},
	"@saucelabs/visual-storybook":      {domain.PlatformSauce, domain.FrameworkStorybook, ".storybook"},
	"@saucelabs/visual":                {domain.PlatformSauce, domain.FrameworkSelenium, ""},
}

// javaDependencyTable keys are "groupId:artifactId" Maven coordinates.
var javaDependencyTable = map[string]depEntry{
	"io.percy:percy-java-selenium":       {domain.PlatformPercy, domain.FrameworkSelenium, ""},
	"io.percy:percy-appium-app":          {domain.PlatformPercy, domain.FrameworkAppium, ""},
	"com.applitools:eyes-selenium-java5": {domain.PlatformApplitools, domain.FrameworkSelenium, ""},
	"com.applitools:eyes-selenium-java4": {domain.PlatformApplitools, domain.FrameworkSelenium, ""},
	"com.applitools:eyes-selenium-java3": {domain.PlatformApplitools, domain.FrameworkSelenium, ""},
	"com.applitools:eyes-appium-java5":   {domain.PlatformApplitools, domain.FrameworkAppium, ""},
	"com.applitools:eyes-appium-java4":   {domain.PlatformApplitools, domain.FrameworkAppium, ""},
	"com.saucelabs.visual:java-client":   {domain.PlatformSauce, domain.FrameworkSelenium, ""},
}

// pythonDependencyTable keys are normalized requirements.txt package names.
var pythonDependencyTable = map[string]depEntry{
	"percy-selenium":      {domain.PlatformPercy, domain.FrameworkSelenium, ""},
	"percy-appium-app":    {domain.PlatformPercy, domain.FrameworkAppium, ""},
	"eyes-selenium":       {domain.PlatformApplitools, domain.FrameworkSelenium, ""},
	"eyes-robotframework": {domain.PlatformApplitools, domain.FrameworkRobotFramework, ""},
	"saucelabs-visual":    {domain.PlatformSauce, domain.FrameworkSelenium, ""},
}

// tier2ConfigFiles lists platform-distinguishing config filenames in fixed
// priority order. The first platform with a matching file wins outright.
var tier2ConfigFiles = []struct {
	platform domain.Platform
	files    []string
}{
	{domain.PlatformPercy, []string{".percy.yml", ".percy.yaml", ".percy.json", ".percy.js", "percy.config.js"}},
	{domain.PlatformApplitools, []string{"applitools.config.js", "eyes.config.js", "eyes.json"}},
	{domain.PlatformSauce, []string{"saucectl.yml", ".sauce/config.yml"}},
}

// configPatterns are the per-platform config files collected for
// transformation. They mirror tier2ConfigFiles so both tiers agree on what a
// platform's config looks like.
var configPatterns = map[domain.Platform][]string{
	domain.PlatformPercy:      {".percy.yml", ".percy.yaml", ".percy.json", ".percy.js", "percy.config.js"},
	domain.PlatformApplitools: {"applitools.config.js", "eyes.config.js", "eyes.json"},
	domain.PlatformSauce:      {"saucectl.yml", ".sauce/config.yml"},
}

// sourcePatterns collect test source files per (language, framework).
var sourcePatterns = map[domain.Language]map[domain.Framework][]string{
	domain.LanguageJSTS: {
		domain.FrameworkCypress: {
			"cypress/**/*.cy.js", "cypress/**/*.cy.ts",
			"cypress/**/*.spec.js", "cypress/**/*.spec.ts",
			"cypress/support/**/*.js", "cypress/support/**/*.ts",
		},
		domain.FrameworkPlaywright: {
			"tests/**/*.spec.js", "tests/**/*.spec.ts",
			"e2e/**/*.spec.js", "e2e/**/*.spec.ts",
			"**/*.test.js", "**/*.test.ts",
		},
		domain.FrameworkStorybook: {
			"**/*.stories.js", "**/*.stories.jsx",
			"**/*.stories.ts", "**/*.stories.tsx",
		},
		domain.FrameworkSelenium: {
			"test/**/*.js", "test/**/*.ts",
			"tests/**/*.js", "tests/**/*.ts",
			"**/*.spec.js", "**/*.spec.ts",
		},
	},
	domain.LanguageJava: {
		domain.FrameworkSelenium: {"src/test/java/**/*.java"},
		domain.FrameworkAppium:   {"src/test/java/**/*.java"},
	},
	domain.LanguagePython: {
		domain.FrameworkSelenium:       {"tests/**/*.py", "test/**/*.py", "**/test_*.py", "**/*_test.py"},
		domain.FrameworkAppium:         {"tests/**/*.py", "test/**/*.py", "**/test_*.py", "**/*_test.py"},
		domain.FrameworkRobotFramework: {"**/*.robot", "**/*.resource"},
	},
}

// ciPatterns are collected regardless of platform/framework; CI scaffolding
// is rewritten by an external collaborator.
var ciPatterns = []string{
	".github/workflows/*.yml", ".github/workflows/*.yaml",
	".gitlab-ci.yml", ".circleci/config.yml",
	"azure-pipelines.yml", "bitbucket-pipelines.yml",
	"Jenkinsfile",
}

// packageManagerPatterns are the ecosystem dependency files per language.
var packageManagerPatterns = map[domain.Language][]string{
	domain.LanguageJSTS:   {"package.json"},
	domain.LanguageJava:   {"pom.xml"},
	domain.LanguagePython: {"requirements.txt"},
}
