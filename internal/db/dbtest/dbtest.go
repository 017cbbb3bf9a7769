// Package dbtest opens migrated in-memory databases and creates fixtures for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

// Open returns an in-memory SQLite database with every model migrated.
// The pool is limited to one connection so concurrent queries see the same database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(models.All()...), "failed to migrate test database")

	return db
}

// Company creates an active company with one active branch per name.
func Company(t testing.TB, db *gorm.DB, name string, branches ...string) (models.Company, []models.Branch) {
	t.Helper()

	company := models.Company{Name: name, Status: models.OrgActive}
	require.NoError(t, db.Create(&company).Error)

	out := make([]models.Branch, 0, len(branches))

	for _, b := range branches {
		branch := models.Branch{CompanyID: company.ID, Name: b, Status: models.OrgActive}
		require.NoError(t, db.Create(&branch).Error)
		out = append(out, branch)
	}

	return company, out
}

// Permission returns the catalog row for module and action, creating it if needed.
func Permission(t testing.TB, db *gorm.DB, module, action string) models.Permission {
	t.Helper()

	p := models.Permission{}
	require.NoError(t, db.Where(models.Permission{Module: module, Action: action}).
		FirstOrCreate(&p).Error)

	return p
}

// Role creates role and grants it the given "module:action" pairs.
func Role(t testing.TB, db *gorm.DB, role models.Role, grants ...[2]string) models.Role {
	t.Helper()

	for _, g := range grants {
		role.Permissions = append(role.Permissions, Permission(t, db, g[0], g[1]))
	}

	require.NoError(t, db.Create(&role).Error)

	return role
}

// User creates an operator with password, branch memberships and roles.
func User(t testing.TB, db *gorm.DB, user models.User, password string, branches []models.Branch, roles ...models.Role) models.User {
	t.Helper()

	hash, err := models.HashPassword(password)
	require.NoError(t, err)

	user.Password = hash
	require.NoError(t, db.Create(&user).Error)

	for _, b := range branches {
		require.NoError(t, db.Create(&models.UserBranch{UserID: user.ID, BranchID: b.ID}).Error)
	}

	for _, r := range roles {
		require.NoError(t, db.Create(&models.UserRole{UserID: user.ID, RoleID: r.ID}).Error)
	}

	return user
}

// Student creates a student with password.
func Student(t testing.TB, db *gorm.DB, student models.Student, password string) models.Student {
	t.Helper()

	hash, err := models.HashPassword(password)
	require.NoError(t, err)

	student.Password = hash
	require.NoError(t, db.Create(&student).Error)

	return student
}

// Parent creates a parent with password.
func Parent(t testing.TB, db *gorm.DB, parent models.Parent, password string) models.Parent {
	t.Helper()

	hash, err := models.HashPassword(password)
	require.NoError(t, err)

	parent.Password = hash
	require.NoError(t, db.Create(&parent).Error)

	return parent
}
