package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add customers table", "add_customers_table"},
		{"Add-Customers-Table", "add_customers_table"},
		{"ADD_CUSTOMERS_TABLE", "add_customers_table"},
		{"add__customers__table", "add_customers_table"},
		{"Add Promotions 123", "add_promotions_123"},
		{"create-auth-identities", "create_auth_identities"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := sanitizeName(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCreateMigration(t *testing.T) {
	tmpDir := t.TempDir()

	mf, err := CreateMigration(tmpDir, "add customers table", "Create customers table with account fields")
	require.NoError(t, err)
	assert.NotNil(t, mf)

	// Version format is YYYYMMDDHHMMSS (14 digits)
	assert.Len(t, mf.Version, 14)

	assert.True(t, strings.HasSuffix(mf.UpPath, ".up.sql"))
	assert.True(t, strings.HasSuffix(mf.DownPath, ".down.sql"))

	// Up and down files share a base name
	upBase := strings.TrimSuffix(filepath.Base(mf.UpPath), ".up.sql")
	downBase := strings.TrimSuffix(filepath.Base(mf.DownPath), ".down.sql")
	assert.Equal(t, upBase, downBase)

	_, err = os.Stat(mf.UpPath)
	assert.NoError(t, err)
	_, err = os.Stat(mf.DownPath)
	assert.NoError(t, err)

	upContent, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(upContent), "add customers table")
	assert.Contains(t, string(upContent), "Create customers table with account fields")
	assert.Contains(t, string(upContent), "Write your UP migration SQL here")

	downContent, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(downContent), "Rollback")
	assert.Contains(t, string(downContent), "Write your DOWN migration SQL here")
}

func TestCreateMigration_MakesDirectory(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "migrations")

	mf, err := CreateMigration(tmpDir, "initial schema", "")
	require.NoError(t, err)

	_, err = os.Stat(mf.UpPath)
	assert.NoError(t, err)
}

func TestListMigrations(t *testing.T) {
	tmpDir := t.TempDir()

	// Empty directory lists nothing
	migrations, err := ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, migrations)

	// Missing directory is not an error
	migrations, err = ListMigrations(filepath.Join(tmpDir, "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, migrations)

	// Only up files count, pairs appear once
	files := []string{
		"20260101000001_create_customers.up.sql",
		"20260101000001_create_customers.down.sql",
		"20260101000002_create_promotions.up.sql",
		"20260101000002_create_promotions.down.sql",
		"notes.txt",
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("-- sql"), 0644))
	}

	migrations, err = ListMigrations(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"20260101000001_create_customers",
		"20260101000002_create_promotions",
	}, migrations)
}
