package daemon

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/config"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/account"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/dbtest"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

func seedConfig() *config.Config {
	return &config.Config{Seed: config.Seed{
		CompanyName:   "Acme Schools",
		BranchName:    "Downtown",
		AdminEmail:    "Admin@Acme.test",
		AdminPassword: "changeme",
	}}
}

func TestSeed(t *testing.T) {
	db := dbtest.Open(t)
	cfg := seedConfig()

	require.NoError(t, seed(cfg, db))
	// a second run changes nothing
	require.NoError(t, seed(cfg, db))

	var permissions int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&permissions).Error)
	assert.Equal(t, int64(len(auth.Modules())*len(auth.Actions())), permissions)

	var roles []models.Role
	require.NoError(t, db.Find(&roles).Error)
	require.Len(t, roles, 1)
	assert.Equal(t, models.RoleCodeSuperAdmin, roles[0].Code)
	assert.True(t, roles[0].IsSystem)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)

	op, err := account.New(db).FindUserByEmail(context.Background(), "admin@acme.test")
	require.NoError(t, err)

	snap, err := auth.BuildSnapshot(op, nil)
	require.NoError(t, err)
	assert.True(t, snap.IsSuperAdmin)
	require.Len(t, snap.BranchIDs, 1)
	assert.True(t, auth.HasPermission(&snap, auth.ModuleStudents, auth.ActionDelete))

	var company models.Company
	require.NoError(t, db.Preload("Branches").First(&company).Error)
	assert.Equal(t, "Acme Schools", company.Name)
	require.Len(t, company.Branches, 1)
	assert.Equal(t, "Downtown", company.Branches[0].Name)
}

func TestSeed_ExistingCompany(t *testing.T) {
	db := dbtest.Open(t)
	_, branches := dbtest.Company(t, db, "Existing", "North", "South")

	require.NoError(t, seed(seedConfig(), db))

	var companies int64
	require.NoError(t, db.Model(&models.Company{}).Count(&companies).Error)
	assert.Equal(t, int64(1), companies)

	op, err := account.New(db).FindUserByEmail(context.Background(), "admin@acme.test")
	require.NoError(t, err)
	assert.Equal(t, []int64{branches[0].ID, branches[1].ID}, op.BranchIDs)
}

func TestSeed_NoAdminConfigured(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, seed(&config.Config{}, db))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestOpenDB(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		GormEngine: config.EngineSQLite,
		Name:       filepath.Join(t.TempDir(), "schoolhub.db"),
	}}

	db, err := OpenDB(cfg)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	cfg.DB.GormEngine = "oracle"
	_, err = OpenDB(cfg)
	assert.ErrorIs(t, err, config.ErrUnknownGormEngine)

	assert.Nil(t, limiterStorage(&config.Config{DB: config.DB{GormEngine: config.EngineSQLite}}))
}
