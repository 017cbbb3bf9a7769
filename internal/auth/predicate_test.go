package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

func perms(keys ...string) auth.PermissionSet {
	set := auth.PermissionSet{}

	for _, k := range keys {
		parsed, err := auth.ParsePermissionKey(k)
		if err != nil {
			panic(err)
		}

		set.Add(parsed)
	}

	return set
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name   string
		snap   *auth.Snapshot
		module auth.Module
		action auth.Action
		want   bool
	}{
		{
			name: "nil snapshot",
			snap: nil, module: auth.ModuleAttendance, action: auth.ActionRead,
			want: false,
		},
		{
			name:   "super admin without grants may delete",
			snap:   &auth.Snapshot{IsSuperAdmin: true, ActiveBranchID: 1, Permissions: perms()},
			module: auth.ModuleUsersAndRoles, action: auth.ActionDelete,
			want: true,
		},
		{
			name:   "admin bypass wins over other codes",
			snap:   &auth.Snapshot{IsAdmin: true, IsTeacher: true, ActiveBranchID: auth.NoBranch},
			module: auth.ModuleInventory, action: auth.ActionWrite,
			want: true,
		},
		{
			name:   "grant in active branch",
			snap:   &auth.Snapshot{ActiveBranchID: 3, Permissions: perms("3:attendance:write")},
			module: auth.ModuleAttendance, action: auth.ActionWrite,
			want: true,
		},
		{
			name:   "grant in other branch only",
			snap:   &auth.Snapshot{ActiveBranchID: 3, Permissions: perms("5:attendance:write")},
			module: auth.ModuleAttendance, action: auth.ActionWrite,
			want: false,
		},
		{
			name:   "read grant does not imply write",
			snap:   &auth.Snapshot{ActiveBranchID: 3, Permissions: perms("3:attendance:read")},
			module: auth.ModuleAttendance, action: auth.ActionWrite,
			want: false,
		},
		{
			name:   "delete grant alone is not enough",
			snap:   &auth.Snapshot{ActiveBranchID: 3, Permissions: perms("3:inventory:delete")},
			module: auth.ModuleInventory, action: auth.ActionDelete,
			want: false,
		},
		{
			name: "module manager deletes in its branch",
			snap: &auth.Snapshot{
				ActiveBranchID: 5,
				Roles:          []auth.RoleGrant{{ID: 1, Code: models.RoleCodeModuleManager, BranchID: 5, Module: auth.ModuleInventory}},
			},
			module: auth.ModuleInventory, action: auth.ActionDelete,
			want: true,
		},
		{
			name: "module manager of another branch",
			snap: &auth.Snapshot{
				ActiveBranchID: 3,
				Roles:          []auth.RoleGrant{{ID: 1, Code: models.RoleCodeModuleManager, BranchID: 5, Module: auth.ModuleInventory}},
			},
			module: auth.ModuleInventory, action: auth.ActionDelete,
			want: false,
		},
		{
			name: "module manager of another module",
			snap: &auth.Snapshot{
				ActiveBranchID: 5,
				Roles:          []auth.RoleGrant{{ID: 1, Code: models.RoleCodeModuleManager, BranchID: 5, Module: auth.ModuleMaterials}},
			},
			module: auth.ModuleInventory, action: auth.ActionDelete,
			want: false,
		},
		{
			name: "branch manager code does not grant delete",
			snap: &auth.Snapshot{
				ActiveBranchID: 5, IsBranchManager: true,
				Roles: []auth.RoleGrant{{ID: 1, Code: models.RoleCodeBranchManager, BranchID: 5, Module: auth.ModuleInventory}},
			},
			module: auth.ModuleInventory, action: auth.ActionDelete,
			want: false,
		},
		{
			name:   "no active branch",
			snap:   &auth.Snapshot{ActiveBranchID: auth.NoBranch, Permissions: perms("3:attendance:read")},
			module: auth.ModuleAttendance, action: auth.ActionRead,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.HasPermission(tt.snap, tt.module, tt.action))
		})
	}
}

func TestHasPermissionAfterSwitch(t *testing.T) {
	op := teacherInTwoBranches(t)

	inThree, err := auth.BuildSnapshot(op, branchOf(3))
	assert.NoError(t, err)
	assert.True(t, auth.HasPermission(&inThree, auth.ModuleAttendance, auth.ActionWrite))
	assert.False(t, auth.HasPermission(&inThree, auth.ModuleInventory, auth.ActionDelete))

	inFive, err := auth.BuildSnapshot(op, branchOf(5))
	assert.NoError(t, err)
	assert.False(t, auth.HasPermission(&inFive, auth.ModuleAttendance, auth.ActionWrite))
	assert.True(t, auth.HasPermission(&inFive, auth.ModuleInventory, auth.ActionDelete))
	assert.True(t, auth.HasPermission(&inFive, auth.ModuleInventory, auth.ActionRead))
}
