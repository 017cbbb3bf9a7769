package account_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/account"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/dbtest"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

func TestFindUserByEmail(t *testing.T) {
	db := dbtest.Open(t)
	company, branches := dbtest.Company(t, db, "Acme School", "North", "South", "Closed")

	require.NoError(t, db.Model(&branches[2]).Update("status", models.OrgSuspended).Error)

	teacher := dbtest.Role(t, db, models.Role{
		Name: "Teacher", Code: models.RoleCodeTeacher, BranchID: &branches[0].ID,
	}, [2]string{"attendance", "read"}, [2]string{"attendance", "write"})

	superAdmin := dbtest.Role(t, db, models.Role{Name: "Super admin", Code: models.RoleCodeSuperAdmin, IsSystem: true})

	user := dbtest.User(t, db, models.User{
		CompanyID: company.ID, Email: "teacher@acme.test", Status: models.StatusActive,
	}, "secret", branches, teacher, superAdmin)

	store := account.New(db)

	op, err := store.FindUserByEmail(context.Background(), " Teacher@Acme.test")
	require.NoError(t, err)

	assert.Equal(t, user.ID, op.ID)
	assert.Equal(t, company.ID, op.CompanyID)
	assert.Equal(t, models.StatusActive, op.Status)
	assert.True(t, models.VerifyPassword(op.PasswordHash, "secret"))
	assert.Equal(t, []int64{branches[0].ID, branches[1].ID}, op.BranchIDs, "suspended branches are not memberships")
	require.Len(t, op.Roles, 2)

	byID := map[int64]auth.Role{}
	for _, r := range op.Roles {
		byID[r.ID] = r
	}

	assert.Equal(t, branches[0].ID, byID[teacher.ID].BranchID)
	assert.ElementsMatch(t, []auth.Grant{
		{Module: auth.ModuleAttendance, Action: auth.ActionRead},
		{Module: auth.ModuleAttendance, Action: auth.ActionWrite},
	}, byID[teacher.ID].Grants)

	assert.True(t, byID[superAdmin.ID].IsSystem)
	assert.Zero(t, byID[superAdmin.ID].BranchID)

	_, err = store.FindUserByEmail(context.Background(), "nobody@acme.test")
	assert.ErrorIs(t, err, auth.ErrAccountNotFound)
}

func TestFindStudentAndParent(t *testing.T) {
	db := dbtest.Open(t)
	company, branches := dbtest.Company(t, db, "Acme School", "North")

	student := dbtest.Student(t, db, models.Student{
		BranchID: branches[0].ID, Email: "kid@acme.test", Status: models.StatusRequestedApproval,
	}, "secret")
	parent := dbtest.Parent(t, db, models.Parent{
		BranchID: branches[0].ID, Email: "mum@acme.test", Status: models.StatusActive,
	}, "secret")

	store := account.New(db)
	ctx := context.Background()

	st, err := store.FindStudentByEmail(ctx, "kid@acme.test")
	require.NoError(t, err)
	assert.Equal(t, student.ID, st.ID)
	assert.Equal(t, company.ID, st.CompanyID)
	assert.Equal(t, branches[0].ID, st.BranchID)
	assert.Equal(t, models.StatusRequestedApproval, st.Status)

	g, err := store.FindParentByEmail(ctx, "mum@acme.test")
	require.NoError(t, err)
	assert.Equal(t, parent.ID, g.ID)
	assert.Equal(t, company.ID, g.CompanyID)

	_, err = store.FindStudentByEmail(ctx, "mum@acme.test")
	assert.ErrorIs(t, err, auth.ErrAccountNotFound)

	_, err = store.FindParentByEmail(ctx, "kid@acme.test")
	assert.ErrorIs(t, err, auth.ErrAccountNotFound)
}

func TestFindStudentAndParentInactiveBranch(t *testing.T) {
	db := dbtest.Open(t)
	_, branches := dbtest.Company(t, db, "Acme School", "North", "South")

	dbtest.Student(t, db, models.Student{
		BranchID: branches[0].ID, Email: "kid@acme.test", Status: models.StatusActive,
	}, "secret")
	dbtest.Parent(t, db, models.Parent{
		BranchID: branches[1].ID, Email: "mum@acme.test", Status: models.StatusActive,
	}, "secret")

	require.NoError(t, db.Model(&branches[0]).Update("status", models.OrgSuspended).Error)
	require.NoError(t, db.Delete(&branches[1]).Error)

	store := account.New(db)
	ctx := context.Background()

	st, err := store.FindStudentByEmail(ctx, "kid@acme.test")
	require.NoError(t, err)
	assert.Zero(t, st.BranchID, "suspended branches are not memberships")
	assert.False(t, auth.IsMember(st, branches[0].ID))

	snap, err := auth.BuildSnapshot(st, nil)
	require.NoError(t, err)
	assert.Equal(t, auth.NoBranch, snap.ActiveBranchID)

	g, err := store.FindParentByEmail(ctx, "mum@acme.test")
	require.NoError(t, err)
	assert.Zero(t, g.BranchID, "deleted branches are not memberships")
	assert.False(t, auth.IsMember(g, branches[1].ID))

	_, err = auth.BuildSnapshot(g, &branches[1].ID)
	assert.ErrorIs(t, err, auth.ErrAuthenticationMissing)
}

func TestFindAccount(t *testing.T) {
	db := dbtest.Open(t)
	company, branches := dbtest.Company(t, db, "Acme School", "North")

	user := dbtest.User(t, db, models.User{CompanyID: company.ID, Email: "u@acme.test", Status: models.StatusActive},
		"secret", branches)
	student := dbtest.Student(t, db, models.Student{BranchID: branches[0].ID, Email: "s@acme.test"}, "secret")
	parent := dbtest.Parent(t, db, models.Parent{BranchID: branches[0].ID, Email: "p@acme.test"}, "secret")

	store := account.New(db)
	ctx := context.Background()

	tests := []struct {
		kind auth.Kind
		id   int64
	}{
		{kind: auth.KindUser, id: user.ID},
		{kind: auth.KindStudent, id: student.ID},
		{kind: auth.KindParent, id: parent.ID},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			a, err := store.FindAccount(ctx, tt.kind, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, a.Kind())
			assert.Equal(t, tt.id, auth.ProfileOf(a).ID)

			missing, err := store.FindAccount(ctx, tt.kind, 9999)
			assert.ErrorIs(t, err, auth.ErrAccountNotFound)
			assert.Nil(t, missing)
		})
	}

	_, err := store.FindAccount(ctx, auth.Kind("robot"), user.ID)
	assert.ErrorIs(t, err, auth.ErrAccountNotFound)
}

func TestResolverOnDatabase(t *testing.T) {
	db := dbtest.Open(t)
	company, branches := dbtest.Company(t, db, "Acme School", "North")

	dbtest.User(t, db, models.User{CompanyID: company.ID, Email: "shared@acme.test", Status: models.StatusActive},
		"secret", branches)
	dbtest.Parent(t, db, models.Parent{BranchID: branches[0].ID, Email: "shared@acme.test", Status: models.StatusActive},
		"secret")

	a, err := auth.NewResolver(account.New(db)).Login(context.Background(), "shared@acme.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, auth.KindUser, a.Kind())
}
