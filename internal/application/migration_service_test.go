package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/backup"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/detector"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/gitinfo"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/reporter"
	"github.com/vismigrate/vismigrate/internal/adapters/outbound/scanner"
	"github.com/vismigrate/vismigrate/internal/application"
	"github.com/vismigrate/vismigrate/internal/domain"
)

func newMigrationService() *application.MigrationService {
	return application.NewMigrationService(
		scanner.New(),
		detector.New(nil),
		backup.New(),
		gitinfo.New(),
		reporter.New(),
		nil,
	)
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func percyCypressProject(t *testing.T) string {
	return writeProject(t, map[string]string{
		"package.json": `{"devDependencies": {"@percy/cypress": "^3.1.2", "cypress": "^13.0.0"}}`,
		".percy.yml":   "version: 2\nsnapshot:\n  widths: [1280]\n",
		"cypress/e2e/login.cy.js": `import '@percy/cypress';

it('login page', () => {
  cy.visit('/login');
  cy.percySnapshot('Login');
});
`,
	})
}

func TestMigrationService_Plan(t *testing.T) {
	root := percyCypressProject(t)
	svc := newMigrationService()

	report, err := svc.Plan(root)
	require.NoError(t, err)

	assert.Equal(t, domain.PlatformPercy, report.Detection.Platform)
	assert.False(t, report.Applied)
	assert.Equal(t, 1, report.TotalSnapshots)

	require.NotEmpty(t, report.ConfigFiles)
	cfg := report.ConfigFiles[0]
	assert.Equal(t, "saucectl.yml", cfg.Path)
	assert.Contains(t, cfg.Content, "viewports")
	assert.Contains(t, cfg.Content, "1280")

	require.Len(t, report.SourceFiles, 1)
	src := report.SourceFiles[0]
	assert.Equal(t, "cypress/e2e/login.cy.js", src.Path)
	assert.Contains(t, src.Content, "cy.sauceVisualCheck('Login')")
	assert.NotContains(t, src.Content, "percySnapshot")
}

func TestMigrationService_PlanWritesNothing(t *testing.T) {
	root := percyCypressProject(t)
	original, err := os.ReadFile(filepath.Join(root, "cypress/e2e/login.cy.js"))
	require.NoError(t, err)

	_, err = newMigrationService().Plan(root)
	require.NoError(t, err)

	after, err := os.ReadFile(filepath.Join(root, "cypress/e2e/login.cy.js"))
	require.NoError(t, err)
	assert.Equal(t, original, after)

	_, err = os.Stat(filepath.Join(root, "saucectl.yml"))
	assert.True(t, os.IsNotExist(err))
}

func TestMigrationService_Apply(t *testing.T) {
	root := percyCypressProject(t)

	report, err := newMigrationService().Apply(root, application.ApplyOptions{})
	require.NoError(t, err)
	assert.True(t, report.Applied)

	written, err := os.ReadFile(filepath.Join(root, "saucectl.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "viewports")

	source, err := os.ReadFile(filepath.Join(root, "cypress/e2e/login.cy.js"))
	require.NoError(t, err)
	assert.Contains(t, string(source), "cy.sauceVisualCheck('Login')")

	_, err = os.Stat(filepath.Join(root, "vismigrate-report.md"))
	assert.NoError(t, err)
}

func TestMigrationService_ApplyWithBackup(t *testing.T) {
	root := percyCypressProject(t)

	_, err := newMigrationService().Apply(root, application.ApplyOptions{Backup: true})
	require.NoError(t, err)

	bak, err := os.ReadFile(filepath.Join(root, "cypress/e2e/login.cy.js.bak"))
	require.NoError(t, err)
	assert.Contains(t, string(bak), "cy.percySnapshot('Login')")

	// saucectl.yml did not exist beforehand, so no backup for it.
	_, err = os.Stat(filepath.Join(root, "saucectl.yml.bak"))
	assert.True(t, os.IsNotExist(err))
}

func TestMigrationService_AlreadyMigrated(t *testing.T) {
	root := writeProject(t, map[string]string{
		"package.json": `{"devDependencies": {"@saucelabs/cypress-visual-plugin": "^0.2.0"}}`,
	})

	_, err := newMigrationService().Plan(root)
	assert.ErrorIs(t, err, domain.ErrAlreadyMigrated)
}

func TestMigrationService_NotDetectedPassesThrough(t *testing.T) {
	root := writeProject(t, map[string]string{"README.md": "# empty"})

	_, err := newMigrationService().Plan(root)
	assert.ErrorIs(t, err, domain.ErrNotDetected)
}

func TestMigrationService_DefaultConfigWhenNoneFound(t *testing.T) {
	root := writeProject(t, map[string]string{
		"package.json": `{"devDependencies": {"@percy/cypress": "^3.1.2"}}`,
		"cypress/e2e/home.cy.js": "cy.percySnapshot('Home');\n",
	})

	report, err := newMigrationService().Plan(root)
	require.NoError(t, err)

	require.NotEmpty(t, report.ConfigFiles)
	cfg := report.ConfigFiles[0]
	assert.Equal(t, "saucectl.yml", cfg.Path)
	assert.Contains(t, cfg.Content, "chrome")
	require.NotEmpty(t, cfg.Warnings)
	assert.Contains(t, cfg.Warnings[0].Message, "no source configuration found")
}

func TestMigrationService_JavaProjectRewritesPom(t *testing.T) {
	root := writeProject(t, map[string]string{
		"pom.xml": `<project>
  <dependencies>
    <dependency>
      <groupId>io.percy</groupId>
      <artifactId>percy-java-selenium</artifactId>
      <version>1.2.0</version>
    </dependency>
  </dependencies>
</project>`,
		"src/test/java/LoginTest.java": `import io.percy.selenium.Percy;

class LoginTest {
    Percy percy = new Percy(driver);

    void test() {
        percy.snapshot("Login");
    }
}
`,
	})

	report, err := newMigrationService().Plan(root)
	require.NoError(t, err)

	require.NotEmpty(t, report.PomChanges)
	assert.Equal(t, domain.PomDependencyUpdate, report.PomChanges[0].Type)

	var pom *domain.FileResult
	for i := range report.ConfigFiles {
		if report.ConfigFiles[i].Path == "pom.xml" {
			pom = &report.ConfigFiles[i]
		}
	}
	require.NotNil(t, pom)
	assert.False(t, pom.Skipped)
	assert.Contains(t, pom.Content, "com.saucelabs.visual")

	require.Len(t, report.SourceFiles, 1)
	assert.Contains(t, report.SourceFiles[0].Content, "percy.sauceVisualCheck(\"Login\")")
}

func TestMigrationService_UntouchedSourcesSkipped(t *testing.T) {
	root := writeProject(t, map[string]string{
		"package.json":            `{"devDependencies": {"@percy/cypress": "^3.1.2"}}`,
		"cypress/e2e/plain.cy.js": "it('no snapshots', () => { cy.visit('/'); });\n",
	})

	report, err := newMigrationService().Plan(root)
	require.NoError(t, err)

	require.Len(t, report.SourceFiles, 1)
	assert.True(t, report.SourceFiles[0].Skipped)
	assert.Zero(t, report.SourceFiles[0].SnapshotCount)
}
