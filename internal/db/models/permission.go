package models

import "time"

// Permission is one (module, action) pair of the static catalog.
type Permission struct {
	// ID is the unique identifier for the permission.
	ID int64 `gorm:"primaryKey"`
	// Module is the module code, e.g. "attendance".
	Module string `gorm:"size:100;not null;uniqueIndex:idx_permissions_module_action"`
	// Action is read, write or delete.
	Action string `gorm:"size:50;not null;uniqueIndex:idx_permissions_module_action"`
	// Description provides a human-readable explanation of what this permission grants.
	Description string `gorm:"size:255"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Permission model.
func (Permission) TableName() string {
	return "permissions"
}
