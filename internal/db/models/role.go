package models

import "time"

// Role is a named set of permission grants.
// A role belongs to exactly one branch, or is a system role (BranchID nil, IsSystem true)
// visible in every branch.
type Role struct {
	// ID is the unique identifier for the role.
	ID int64 `gorm:"primaryKey"`
	// Name is unique within its branch.
	Name string `gorm:"size:100;not null;uniqueIndex:idx_roles_branch_name"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255"`
	// BranchID is the owning branch, nil for system roles.
	BranchID *int64 `gorm:"uniqueIndex:idx_roles_branch_name"`
	// IsSystem marks roles that are visible in every branch and can not be deleted.
	IsSystem bool `gorm:"default:false"`
	// Code is the optional system role code.
	Code RoleCode `gorm:"size:32;index"`
	// Module scopes a MODULE_MANAGER role to one module code.
	Module string `gorm:"size:100"`
	// Permissions granted by this role.
	Permissions []Permission `gorm:"many2many:role_permissions"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}
