// Package account loads users, students and parents as auth accounts.
package account

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

const (
	emailQueryPattern = "email = ?"
	idQueryPattern    = "id = ?"
)

// Store implements auth.AccountStore on gorm.
type Store struct {
	db *gorm.DB
}

// New creates a new Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var _ auth.AccountStore = (*Store)(nil)

// FindUserByEmail loads an operator with its active branches and its roles.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*auth.Operator, error) {
	return s.findUser(ctx, emailQueryPattern, auth.NormalizeEmail(email))
}

// FindStudentByEmail loads a student.
func (s *Store) FindStudentByEmail(ctx context.Context, email string) (*auth.Student, error) {
	return s.findStudent(ctx, emailQueryPattern, auth.NormalizeEmail(email))
}

// FindParentByEmail loads a parent.
func (s *Store) FindParentByEmail(ctx context.Context, email string) (*auth.Guardian, error) {
	return s.findParent(ctx, emailQueryPattern, auth.NormalizeEmail(email))
}

// FindAccount loads the account of kind with id.
func (s *Store) FindAccount(ctx context.Context, kind auth.Kind, id int64) (auth.Account, error) {
	var (
		account auth.Account
		err     error
	)

	switch kind {
	case auth.KindUser:
		var op *auth.Operator
		op, err = s.findUser(ctx, idQueryPattern, id)
		account = op
	case auth.KindStudent:
		var st *auth.Student
		st, err = s.findStudent(ctx, idQueryPattern, id)
		account = st
	case auth.KindParent:
		var g *auth.Guardian
		g, err = s.findParent(ctx, idQueryPattern, id)
		account = g
	default:
		return nil, auth.ErrAccountNotFound
	}

	if err != nil {
		return nil, err
	}

	return account, nil
}

func (s *Store) findUser(ctx context.Context, query string, arg any) (*auth.Operator, error) {
	var user models.User

	err := s.db.WithContext(ctx).
		Preload("Branches", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("branches.status = ?", models.OrgActive).Order("branches.id")
		}).
		Preload("Roles.Permissions").
		Where(query, arg).
		First(&user).Error
	if err != nil {
		return nil, notFound(err, "user")
	}

	op := &auth.Operator{
		Profile:   profile(user.ID, user.Email, user.Password, user.Status),
		CompanyID: user.CompanyID,
		BranchIDs: make([]int64, 0, len(user.Branches)),
		Roles:     make([]auth.Role, 0, len(user.Roles)),
	}

	for _, b := range user.Branches {
		op.BranchIDs = append(op.BranchIDs, b.ID)
	}

	for _, r := range user.Roles {
		op.Roles = append(op.Roles, ToRole(r))
	}

	return op, nil
}

func (s *Store) findStudent(ctx context.Context, query string, arg any) (*auth.Student, error) {
	var student models.Student

	if err := s.db.WithContext(ctx).Preload("Branch").Where(query, arg).First(&student).Error; err != nil {
		return nil, notFound(err, "student")
	}

	return &auth.Student{
		Profile:   profile(student.ID, student.Email, student.Password, student.Status),
		CompanyID: student.Branch.CompanyID,
		BranchID:  activeBranchID(student.Branch),
	}, nil
}

func (s *Store) findParent(ctx context.Context, query string, arg any) (*auth.Guardian, error) {
	var parent models.Parent

	if err := s.db.WithContext(ctx).Preload("Branch").Where(query, arg).First(&parent).Error; err != nil {
		return nil, notFound(err, "parent")
	}

	return &auth.Guardian{
		Profile:   profile(parent.ID, parent.Email, parent.Password, parent.Status),
		CompanyID: parent.Branch.CompanyID,
		BranchID:  activeBranchID(parent.Branch),
	}, nil
}

// activeBranchID returns zero when the preloaded branch is soft deleted
// (gorm leaves it empty) or not active, so it never counts as a membership.
func activeBranchID(b models.Branch) int64 {
	if b.ID == 0 || b.Status != models.OrgActive {
		return 0
	}

	return b.ID
}

// ToRole converts a role row with preloaded permissions.
func ToRole(r models.Role) auth.Role {
	role := auth.Role{
		ID:       r.ID,
		Name:     r.Name,
		Code:     r.Code,
		IsSystem: r.IsSystem,
		Module:   auth.Module(r.Module),
		Grants:   make([]auth.Grant, 0, len(r.Permissions)),
	}

	if r.BranchID != nil {
		role.BranchID = *r.BranchID
	}

	for _, p := range r.Permissions {
		role.Grants = append(role.Grants, auth.Grant{Module: auth.Module(p.Module), Action: auth.Action(p.Action)})
	}

	return role
}

func profile(id int64, email, hash string, status models.AccountStatus) auth.Profile {
	return auth.Profile{ID: id, Email: email, PasswordHash: hash, Status: status}
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.ErrAccountNotFound
	}

	return fmt.Errorf("failed to load %s: %w", what, err)
}
