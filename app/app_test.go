package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/daemon"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

const testConfig = `
[db]
gormEngine = "sqlite"
name = %q

[log]
logLevel = "error"
appName = "schoolhub-admin"
serviceName = "schoolhub-admin"

[webserver]
port = 8080
url = "http://localhost:8080"

[token]
accessSecret = "access-secret"
refreshSecret = "refresh-secret"
`

// setup writes a config for a fresh SQLite file with one company of two branches.
func setup(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "schoolhub.db")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.toml"), fmt.Appendf(nil, testConfig, dbPath), 0o600))

	db, err := daemon.OpenDB(&config.Config{DB: config.DB{GormEngine: config.EngineSQLite, Name: dbPath}})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	require.NoError(t, db.Create(&models.Company{
		Name:     "Acme",
		Status:   models.OrgActive,
		Branches: []models.Branch{{Name: "North", Status: models.OrgActive}, {Name: "South", Status: models.OrgActive}},
	}).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	return dir, dbPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	dir, _ := setup(t)

	out, err := run(t, "--config", dir, "config")
	require.NoError(t, err)

	assert.Contains(t, out, `"gormEngine": "sqlite"`)
	assert.NotContains(t, out, "access-secret")
	assert.NotContains(t, out, "refresh-secret")
}

func TestCompanySuspendCommand(t *testing.T) {
	dir, dbPath := setup(t)

	out, err := run(t, "--config", dir, "company", "suspend", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "company 1 suspended with 2 branches")

	db, err := daemon.OpenDB(&config.Config{DB: config.DB{GormEngine: config.EngineSQLite, Name: dbPath}})
	require.NoError(t, err)

	var active int64
	require.NoError(t, db.Model(&models.Branch{}).Where("status = ?", models.OrgActive).Count(&active).Error)
	assert.Zero(t, active)

	_, err = run(t, "--config", dir, "company", "suspend", "abc")
	assert.Error(t, err)

	_, err = run(t, "--config", dir, "branch", "activate", "1")
	assert.Error(t, err, "a branch of a suspended company stays suspended")
}
