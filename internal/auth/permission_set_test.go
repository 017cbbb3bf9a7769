package auth_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
)

func TestPermissionKeyString(t *testing.T) {
	k := auth.PermissionKey{BranchID: 7, Module: auth.ModuleUsersAndRoles, Action: auth.ActionWrite}
	assert.Equal(t, "7:users-and-roles:write", k.String())

	parsed, err := auth.ParsePermissionKey(k.String())
	require.NoError(t, err)
	assert.Equal(t, k, parsed)
}

func TestParsePermissionKey(t *testing.T) {
	tests := []struct {
		in      string
		want    auth.PermissionKey
		wantErr bool
	}{
		{in: "3:attendance:read", want: auth.PermissionKey{BranchID: 3, Module: auth.ModuleAttendance, Action: auth.ActionRead}},
		{in: "-1:lessons:write", want: auth.PermissionKey{BranchID: -1, Module: auth.ModuleLessons, Action: auth.ActionWrite}},
		{in: "", wantErr: true},
		{in: "3:attendance", wantErr: true},
		{in: "x:attendance:read", wantErr: true},
		{in: "3::read", wantErr: true},
		{in: "3:attendance:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := auth.ParsePermissionKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrMalformedPermission)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPermissionSetJSON(t *testing.T) {
	set := auth.NewPermissionSet(
		auth.PermissionKey{BranchID: 2, Module: auth.ModuleSubjects, Action: auth.ActionRead},
		auth.PermissionKey{BranchID: 1, Module: auth.ModuleAttendance, Action: auth.ActionWrite},
		auth.PermissionKey{BranchID: 1, Module: auth.ModuleAttendance, Action: auth.ActionWrite},
	)

	raw, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `["1:attendance:write","2:subjects:read"]`, string(raw))

	var decoded auth.PermissionSet
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, set, decoded)

	assert.Error(t, json.Unmarshal([]byte(`["1:attendance"]`), &decoded))
}

func TestPermissionSetNilHas(t *testing.T) {
	var set auth.PermissionSet
	assert.False(t, set.Has(auth.PermissionKey{BranchID: 1, Module: auth.ModuleAttendance, Action: auth.ActionRead}))
}
