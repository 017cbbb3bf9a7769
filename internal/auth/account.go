package auth

import (
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

// Kind tells which store an account was loaded from. It is the userType of a snapshot.
type Kind string

const (
	KindUser    Kind = "user"
	KindStudent Kind = "student"
	KindParent  Kind = "parent"
)

// Valid reports whether k is one of the three account kinds.
func (k Kind) Valid() bool {
	return k == KindUser || k == KindStudent || k == KindParent
}

// Profile holds what every account kind has in common.
type Profile struct {
	ID           int64
	Email        string
	PasswordHash string
	Status       models.AccountStatus
}

// Account is an operator, student or guardian. The set of implementations is closed:
// *Operator, *Student and *Guardian.
type Account interface {
	Kind() Kind
	profile() *Profile
}

// Grant is one permission of a role.
type Grant struct {
	Module Module
	Action Action
}

// Role is a role held by an operator together with its grants.
// BranchID is zero for system roles.
type Role struct {
	ID       int64
	Name     string
	Code     models.RoleCode
	BranchID int64
	IsSystem bool
	Module   Module
	Grants   []Grant
}

// Operator is a staff account. It can be a member of several branches.
type Operator struct {
	Profile

	CompanyID int64
	BranchIDs []int64 // in membership order, first is the default active branch
	Roles     []Role
}

// Kind implements Account.
func (*Operator) Kind() Kind { return KindUser }

func (o *Operator) profile() *Profile { return &o.Profile }

// Student is a learner account bound to one branch.
type Student struct {
	Profile

	CompanyID int64
	BranchID  int64
}

// Kind implements Account.
func (*Student) Kind() Kind { return KindStudent }

func (s *Student) profile() *Profile { return &s.Profile }

// Guardian is a parent account bound to one branch.
type Guardian struct {
	Profile

	CompanyID int64
	BranchID  int64
}

// Kind implements Account.
func (*Guardian) Kind() Kind { return KindParent }

func (g *Guardian) profile() *Profile { return &g.Profile }

// ProfileOf returns the shared fields of a.
func ProfileOf(a Account) Profile {
	return *a.profile()
}

// memberships lists the branches a may operate in.
func memberships(a Account) []int64 {
	switch acc := a.(type) {
	case *Operator:
		return acc.BranchIDs
	case *Student:
		return singleBranch(acc.BranchID)
	case *Guardian:
		return singleBranch(acc.BranchID)
	default:
		return nil
	}
}

func singleBranch(id int64) []int64 {
	if id <= 0 {
		return nil
	}

	return []int64{id}
}

// IsMember reports whether a may operate in branchID.
func IsMember(a Account, branchID int64) bool {
	for _, id := range memberships(a) {
		if id == branchID {
			return true
		}
	}

	return false
}
