package auth

import (
	"fmt"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

// NoBranch is the active branch of an identity without any branch membership.
const NoBranch int64 = -1

// RoleGrant is a role as carried in a snapshot, bound to the branch it is effective in.
type RoleGrant struct {
	ID       int64           `json:"id"`
	Code     models.RoleCode `json:"code"`
	BranchID int64           `json:"branchId"`
	Module   Module          `json:"module,omitempty"`
}

// Snapshot is the capability set of an identity at issuance time.
// It is immutable once built and is what the signed tokens carry.
type Snapshot struct {
	ID              int64         `json:"id"`
	Email           string        `json:"email"`
	UserType        Kind          `json:"userType"`
	ActiveBranchID  int64         `json:"activeBranchId"`
	CompanyID       int64         `json:"companyId"`
	BranchIDs       []int64       `json:"branchIds"`
	Roles           []RoleGrant   `json:"roles"`
	IsSuperAdmin    bool          `json:"isSuperAdmin"`
	IsAdmin         bool          `json:"isAdmin"`
	IsBranchManager bool          `json:"isBranchManager"`
	IsModuleManager bool          `json:"isModuleManager"`
	IsStaff         bool          `json:"isStaff"`
	IsTeacher       bool          `json:"isTeacher"`
	Permissions     PermissionSet `json:"permissions"`
}

// BuildSnapshot derives the snapshot of a.
//
// The active branch is activeBranch when given, which must then be one of a's branches,
// otherwise the first branch membership, otherwise NoBranch. Permissions are flattened
// for every branch a role is effective in, not only the active one. A system role is
// effective in every branch the operator is a member of.
func BuildSnapshot(a Account, activeBranch *int64) (Snapshot, error) {
	p := a.profile()

	s := Snapshot{
		ID:          p.ID,
		Email:       p.Email,
		UserType:    a.Kind(),
		BranchIDs:   []int64{},
		Roles:       []RoleGrant{},
		Permissions: PermissionSet{},
	}

	switch acc := a.(type) {
	case *Operator:
		s.CompanyID = acc.CompanyID
		s.BranchIDs = append(s.BranchIDs, acc.BranchIDs...)
		flattenRoles(&s, acc)
	case *Student:
		s.CompanyID = acc.CompanyID
	case *Guardian:
		s.CompanyID = acc.CompanyID
	default:
		return Snapshot{}, fmt.Errorf("build snapshot: unknown account type %T", a)
	}

	switch {
	case activeBranch != nil:
		if !IsMember(a, *activeBranch) {
			return Snapshot{}, ErrAuthenticationMissing
		}

		s.ActiveBranchID = *activeBranch
	case len(memberships(a)) > 0:
		s.ActiveBranchID = memberships(a)[0]
	default:
		s.ActiveBranchID = NoBranch
	}

	return s, nil
}

func flattenRoles(s *Snapshot, o *Operator) {
	for _, role := range o.Roles {
		setRoleFlag(s, role.Code)

		branches := []int64{role.BranchID}
		if role.IsSystem || role.BranchID == 0 {
			branches = o.BranchIDs
			if len(branches) == 0 {
				branches = []int64{NoBranch}
			}
		}

		for _, branchID := range branches {
			s.Roles = append(s.Roles, RoleGrant{
				ID:       role.ID,
				Code:     role.Code,
				BranchID: branchID,
				Module:   role.Module,
			})

			for _, g := range role.Grants {
				s.Permissions.Add(PermissionKey{BranchID: branchID, Module: g.Module, Action: g.Action})
			}
		}
	}
}

func setRoleFlag(s *Snapshot, code models.RoleCode) {
	switch code {
	case models.RoleCodeSuperAdmin:
		s.IsSuperAdmin = true
	case models.RoleCodeAdmin:
		s.IsAdmin = true
	case models.RoleCodeBranchManager:
		s.IsBranchManager = true
	case models.RoleCodeModuleManager:
		s.IsModuleManager = true
	case models.RoleCodeStaff:
		s.IsStaff = true
	case models.RoleCodeTeacher:
		s.IsTeacher = true
	case models.RoleCodeNone:
	}
}
