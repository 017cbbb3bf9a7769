package models

import (
	"time"

	"gorm.io/gorm"
)

// Company is a tenant. It owns branches.
type Company struct {
	// ID is the unique identifier for the company.
	ID int64 `gorm:"primaryKey"`
	// Name is the display name.
	Name string `gorm:"size:150;not null"`
	// Status of the company. Suspension cascades to all branches.
	Status OrgStatus `gorm:"size:20;not null;default:'ACTIVE'"`
	// Branches owned by the company.
	Branches []Branch
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp.
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for the Company model.
func (Company) TableName() string {
	return "companies"
}

// Branch is an operational unit of a company, usually one school site.
type Branch struct {
	// ID is the unique identifier for the branch.
	ID int64 `gorm:"primaryKey"`
	// CompanyID references the owning company.
	CompanyID int64 `gorm:"index;not null"`
	// Name is the display name.
	Name string `gorm:"size:150;not null"`
	// Status of the branch.
	Status OrgStatus `gorm:"size:20;not null;default:'ACTIVE'"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp.
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for the Branch model.
func (Branch) TableName() string {
	return "branches"
}
