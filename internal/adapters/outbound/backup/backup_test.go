package backup_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vismigrate/vismigrate/internal/adapters/outbound/backup"
)

func TestBackup(t *testing.T) {
	root := t.TempDir()
	rel := "cypress/e2e/login.cy.js"
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	require.NoError(t, backup.New().Backup(root, rel))

	data, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestBackup_MissingFile(t *testing.T) {
	err := backup.New().Backup(t.TempDir(), "nope.js")
	assert.Error(t, err)
}
