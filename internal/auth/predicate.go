package auth

import (
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

// HasPermission decides whether s may perform action on module in its active branch.
// It performs no I/O. The rules are tried in order and the first that applies decides:
//
//  1. super admins and admins may do anything;
//  2. delete is allowed only through a MODULE_MANAGER role for module in the active branch;
//  3. anything else needs the grant "{activeBranchId}:{module}:{action}".
func HasPermission(s *Snapshot, module Module, action Action) bool {
	if s == nil {
		return false
	}

	if s.IsSuperAdmin || s.IsAdmin {
		return true
	}

	if action == ActionDelete {
		for _, r := range s.Roles {
			if r.Code == models.RoleCodeModuleManager && r.Module == module && r.BranchID == s.ActiveBranchID {
				return true
			}
		}

		return false
	}

	return s.Permissions.Has(PermissionKey{BranchID: s.ActiveBranchID, Module: module, Action: action})
}
