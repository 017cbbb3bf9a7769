package models

// RolePermission is the join row between roles and permissions.
type RolePermission struct {
	// RoleID is the ID of the role in this mapping.
	RoleID int64 `gorm:"primaryKey;column:role_id"`
	// PermissionID is the ID of the permission in this mapping.
	PermissionID int64 `gorm:"primaryKey;column:permission_id"`
}

// TableName specifies the database table name for the RolePermission model.
func (RolePermission) TableName() string {
	return "role_permissions"
}

// UserRole assigns a role to an operator.
type UserRole struct {
	UserID int64 `gorm:"primaryKey;column:user_id"`
	RoleID int64 `gorm:"primaryKey;column:role_id"`
}

// TableName specifies the database table name for the UserRole model.
func (UserRole) TableName() string {
	return "user_roles"
}

// UserBranch makes an operator a member of a branch.
type UserBranch struct {
	UserID   int64 `gorm:"primaryKey;column:user_id"`
	BranchID int64 `gorm:"primaryKey;column:branch_id"`
}

// TableName specifies the database table name for the UserBranch model.
func (UserBranch) TableName() string {
	return "user_branches"
}
