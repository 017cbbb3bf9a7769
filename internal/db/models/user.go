package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff or operator account. Operators can be members of several branches
// and hold roles in each of them.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `gorm:"primaryKey"`
	// CompanyID references the tenant the user works for.
	CompanyID int64 `gorm:"index;not null"`
	// Email is the login key, stored lower case.
	Email string `gorm:"uniqueIndex;size:255;not null"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// FirstName is the user's first or given name.
	FirstName string `gorm:"size:100"`
	// LastName is the user's last or family name.
	LastName string `gorm:"size:100"`
	// Status is the lifecycle status.
	Status AccountStatus `gorm:"size:32;not null;default:'INVITED'"`
	// NationalID is the encrypted national identifier, if collected.
	NationalID string `gorm:"size:512"`
	// Branches the user is a member of.
	Branches []Branch `gorm:"many2many:user_branches"`
	// Roles held by the user.
	Roles []Role `gorm:"many2many:user_roles"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp.
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}
