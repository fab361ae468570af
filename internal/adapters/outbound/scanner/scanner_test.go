package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/scanner"
)

func TestScan_RelativeSortedPaths(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"package.json",
		"cypress/e2e/login.cy.js",
		"cypress/support/commands.js",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	scan, err := scanner.New().Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"cypress/e2e/login.cy.js",
		"cypress/support/commands.js",
		"package.json",
	}, scan.Files)
	assert.True(t, scan.HasFile("package.json"))
	assert.True(t, scan.HasDir("cypress"))
	assert.True(t, scan.HasDir("e2e"))
	assert.False(t, scan.HasDir("playwright"))
}

func TestScan_SkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{
		"src/app.js",
		"node_modules/left-pad/index.js",
		"dist/bundle.js",
		"__pycache__/app.pyc",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	scan, err := scanner.New().Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app.js"}, scan.Files)
	assert.False(t, scan.HasDir("node_modules"))
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
