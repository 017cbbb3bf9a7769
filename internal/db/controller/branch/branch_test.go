package branch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/account"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/controller/branch"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/dbtest"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

func TestSuspendCompany(t *testing.T) {
	db := dbtest.Open(t)
	acme, acmeBranches := dbtest.Company(t, db, "Acme", "North", "South")
	_, otherBranches := dbtest.Company(t, db, "Other", "East")

	n, err := branch.SuspendCompany(db, acme.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var company models.Company
	require.NoError(t, db.First(&company, acme.ID).Error)
	assert.Equal(t, models.OrgSuspended, company.Status)

	for _, b := range acmeBranches {
		var got models.Branch
		require.NoError(t, db.First(&got, b.ID).Error)
		assert.Equal(t, models.OrgSuspended, got.Status)
	}

	var other models.Branch
	require.NoError(t, db.First(&other, otherBranches[0].ID).Error)
	assert.Equal(t, models.OrgActive, other.Status)

	_, err = branch.SuspendCompany(db, 9999)
	assert.ErrorIs(t, err, branch.ErrCompanyNotFound)

	assert.ErrorIs(t, branch.SetBranchStatus(db, acmeBranches[0].ID, models.OrgActive), branch.ErrCompanySuspended)

	require.NoError(t, branch.ActivateCompany(db, acme.ID))
	require.NoError(t, branch.SetBranchStatus(db, acmeBranches[0].ID, models.OrgActive))

	assert.ErrorIs(t, branch.SetBranchStatus(db, 9999, models.OrgActive), branch.ErrBranchNotFound)
	assert.ErrorIs(t, branch.ActivateCompany(db, 9999), branch.ErrCompanyNotFound)
}

func TestMembership(t *testing.T) {
	db := dbtest.Open(t)
	company, branches := dbtest.Company(t, db, "Acme", "North", "South")
	user := dbtest.User(t, db, models.User{CompanyID: company.ID, Email: "t@acme.test", Status: models.StatusActive},
		"secret", branches[:1])

	store := account.New(db)
	ctx := context.Background()

	require.NoError(t, branch.AddMember(db, user.ID, branches[1].ID))
	require.NoError(t, branch.AddMember(db, user.ID, branches[1].ID))

	op, err := store.FindUserByEmail(ctx, "t@acme.test")
	require.NoError(t, err)
	assert.Equal(t, []int64{branches[0].ID, branches[1].ID}, op.BranchIDs)

	require.NoError(t, branch.SetBranchStatus(db, branches[0].ID, models.OrgSuspended))

	op, err = store.FindUserByEmail(ctx, "t@acme.test")
	require.NoError(t, err)
	assert.Equal(t, []int64{branches[1].ID}, op.BranchIDs)

	require.NoError(t, branch.RemoveMember(db, user.ID, branches[1].ID))

	op, err = store.FindUserByEmail(ctx, "t@acme.test")
	require.NoError(t, err)
	assert.Empty(t, op.BranchIDs)
}
