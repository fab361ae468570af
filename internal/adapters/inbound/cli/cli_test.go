package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vismigrate/vismigrate/internal/adapters/inbound/cli"
)

func percyProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"package.json": `{"devDependencies": {"@percy/cypress": "^3.1.2"}}`,
		".percy.yml":   "version: 2\nsnapshot:\n  widths: [1280]\n",
		"cypress/e2e/login.cy.js": "cy.percySnapshot('Login');\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDetectCommand_JSON(t *testing.T) {
	root := percyProject(t)

	out, err := runCommand(t, "detect", root, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"platform": "percy"`)
	assert.Contains(t, out, `"framework": "cypress"`)
}

func TestDetectCommand_DefaultTUI(t *testing.T) {
	root := percyProject(t)

	out, err := runCommand(t, "detect", root)
	require.NoError(t, err)
	assert.Contains(t, out, "vismigrate")
	assert.Contains(t, out, "Percy")
}

func TestDetectCommand_NotDetected(t *testing.T) {
	root := t.TempDir()

	_, err := runCommand(t, "detect", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no visual testing platform detected")
}

func TestMigrateCommand_DryRunWritesNothing(t *testing.T) {
	root := percyProject(t)

	out, err := runCommand(t, "migrate", root, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")

	_, statErr := os.Stat(filepath.Join(root, "saucectl.yml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMigrateCommand_Apply(t *testing.T) {
	root := percyProject(t)

	out, err := runCommand(t, "migrate", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Migration Complete")

	written, readErr := os.ReadFile(filepath.Join(root, "cypress/e2e/login.cy.js"))
	require.NoError(t, readErr)
	assert.Contains(t, string(written), "cy.sauceVisualCheck('Login')")
}

func TestMigrateCommand_JSON(t *testing.T) {
	root := percyProject(t)

	out, err := runCommand(t, "migrate", root, "--dry-run", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_snapshots": 1`)
	assert.Contains(t, out, `"applied": false`)
}

func TestMigrateCommand_AlreadyMigrated(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
		[]byte(`{"devDependencies": {"@saucelabs/visual": "^0.10.0"}}`), 0o644))

	_, err := runCommand(t, "migrate", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already uses Sauce Labs Visual")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vismigrate")
}
