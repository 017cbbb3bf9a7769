package models

import (
	"time"

	"gorm.io/gorm"
)

// Student is a learner account. Students belong to a single branch.
type Student struct {
	ID         int64         `gorm:"primaryKey"`
	BranchID   int64         `gorm:"index;not null"`
	Branch     Branch        `gorm:"constraint:OnDelete:RESTRICT"`
	Email      string        `gorm:"uniqueIndex;size:255;not null"`
	Password   string        `gorm:"size:255"`
	FirstName  string        `gorm:"size:100"`
	LastName   string        `gorm:"size:100"`
	Status     AccountStatus `gorm:"size:32;not null;default:'REQUESTED_APPROVAL'"`
	NationalID string        `gorm:"size:512"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for the Student model.
func (Student) TableName() string {
	return "students"
}

// Parent is a guardian account. Parents belong to a single branch.
type Parent struct {
	ID         int64         `gorm:"primaryKey"`
	BranchID   int64         `gorm:"index;not null"`
	Branch     Branch        `gorm:"constraint:OnDelete:RESTRICT"`
	Email      string        `gorm:"uniqueIndex;size:255;not null"`
	Password   string        `gorm:"size:255"`
	FirstName  string        `gorm:"size:100"`
	LastName   string        `gorm:"size:100"`
	Status     AccountStatus `gorm:"size:32;not null;default:'INVITED'"`
	NationalID string        `gorm:"size:512"`
	Children   []Student     `gorm:"many2many:parent_students"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for the Parent model.
func (Parent) TableName() string {
	return "parents"
}
