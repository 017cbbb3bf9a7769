// Package role manages roles, their permission grants and their assignment to users.
package role

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

var (
	// ErrRoleNotFound is returned when a role does not exist or is not visible in the branch.
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleNameEmpty is returned when creating a role without a name.
	ErrRoleNameEmpty = errors.New("role name cannot be empty")
	// ErrRoleExists is returned when the branch already has a role with the name.
	ErrRoleExists = errors.New("role already exists in this branch")
	// ErrSystemRole is returned when trying to change or delete a system role.
	ErrSystemRole = errors.New("system roles cannot be changed")
	// ErrReservedCode is returned when a branch role asks for the SUPER_ADMIN or ADMIN code.
	ErrReservedCode = errors.New("role code is reserved for system roles")
	// ErrModuleRequired is returned when a MODULE_MANAGER role has no module.
	ErrModuleRequired = errors.New("module manager roles need a module")
	// ErrUnknownPermission is returned when a grant is not part of the permission catalog.
	ErrUnknownPermission = errors.New("unknown permission")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Grant names one catalog permission.
type Grant struct {
	Module string
	Action string
}

// visibleIn limits a query to the roles of branchID plus the system roles.
func visibleIn(db *gorm.DB, branchID int64) *gorm.DB {
	return db.Where("roles.branch_id = ? OR roles.is_system = ?", branchID, true)
}

// List returns the roles visible in branchID with their permissions.
func List(db *gorm.DB, branchID int64) ([]models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roles []models.Role

	if err := visibleIn(db, branchID).Preload("Permissions").Order("roles.id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}

// Get returns a role visible in branchID.
func Get(db *gorm.DB, branchID, id int64) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var role models.Role

	err := visibleIn(db, branchID).Preload("Permissions").Where("roles.id = ?", id).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoleNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &role, nil
}

// Create adds a branch role. System roles and the admin codes are only created by seeding.
func Create(db *gorm.DB, branchID int64, role *models.Role) error {
	if db == nil {
		return ErrDBNil
	}

	if role.Name == "" {
		return ErrRoleNameEmpty
	}

	if role.Code == models.RoleCodeSuperAdmin || role.Code == models.RoleCodeAdmin {
		return ErrReservedCode
	}

	if role.Code == models.RoleCodeModuleManager && role.Module == "" {
		return ErrModuleRequired
	}

	var count int64

	if err := db.Model(&models.Role{}).
		Where("branch_id = ? AND name = ?", branchID, role.Name).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check role name: %w", err)
	}

	if count > 0 {
		return ErrRoleExists
	}

	role.ID = 0
	role.BranchID = &branchID
	role.IsSystem = false
	role.Permissions = nil

	if err := db.Create(role).Error; err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	return nil
}

// SetPermissions replaces the grants of a branch role.
func SetPermissions(db *gorm.DB, branchID, id int64, grants []Grant) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		role, err := Get(tx, branchID, id)
		if err != nil {
			return err
		}

		if role.IsSystem {
			return ErrSystemRole
		}

		perms := make([]models.Permission, 0, len(grants))

		for _, g := range grants {
			var p models.Permission

			err = tx.Where("module = ? AND action = ?", g.Module, g.Action).First(&p).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s:%s", ErrUnknownPermission, g.Module, g.Action)
			}

			if err != nil {
				return fmt.Errorf("failed to load permission: %w", err)
			}

			perms = append(perms, p)
		}

		if err = tx.Model(role).Association("Permissions").Replace(perms); err != nil {
			return fmt.Errorf("failed to replace permissions: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return Get(db, branchID, id)
}

// Delete removes a branch role with its grants and assignments.
func Delete(db *gorm.DB, branchID, id int64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error { //nolint:wrapcheck
		role, err := Get(tx, branchID, id)
		if err != nil {
			return err
		}

		if role.IsSystem {
			return ErrSystemRole
		}

		if err = tx.Where("role_id = ?", id).Delete(&models.RolePermission{}).Error; err != nil {
			return fmt.Errorf("failed to delete role permissions: %w", err)
		}

		if err = tx.Where("role_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return fmt.Errorf("failed to delete role assignments: %w", err)
		}

		if err = tx.Delete(&models.Role{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}

		return nil
	})
}

// Assign gives userID the role id.
func Assign(db *gorm.DB, userID, id int64) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.Where(models.UserRole{UserID: userID, RoleID: id}).
		FirstOrCreate(&models.UserRole{}).Error; err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// Unassign takes the role id away from userID.
func Unassign(db *gorm.DB, userID, id int64) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.Where("user_id = ? AND role_id = ?", userID, id).Delete(&models.UserRole{}).Error; err != nil {
		return fmt.Errorf("failed to unassign role: %w", err)
	}

	return nil
}
