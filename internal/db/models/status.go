package models

// AccountStatus is the lifecycle state of a user, student or parent account.
type AccountStatus string

const (
	// StatusInvited marks an account whose invitation was not completed yet.
	StatusInvited AccountStatus = "INVITED"
	// StatusRequestedApproval marks an account waiting for approval.
	StatusRequestedApproval AccountStatus = "REQUESTED_APPROVAL"
	// StatusRequestedChanges marks an account sent back for changes.
	StatusRequestedChanges AccountStatus = "REQUESTED_CHANGES"
	// StatusActive marks an account that may log in.
	StatusActive AccountStatus = "ACTIVE"
	// StatusRejected marks a rejected account.
	StatusRejected AccountStatus = "REJECTED"
	// StatusSuspended marks a suspended account.
	StatusSuspended AccountStatus = "SUSPENDED"
)

// OrgStatus is the state of a company or a branch.
type OrgStatus string

const (
	// OrgActive is an operating company or branch.
	OrgActive OrgStatus = "ACTIVE"
	// OrgSuspended is a suspended company or branch.
	OrgSuspended OrgStatus = "SUSPENDED"
)

// RoleCode marks a role with system meaning. A role carries at most one code.
type RoleCode string

const (
	RoleCodeNone          RoleCode = ""
	RoleCodeSuperAdmin    RoleCode = "SUPER_ADMIN"
	RoleCodeAdmin         RoleCode = "ADMIN"
	RoleCodeBranchManager RoleCode = "BRANCH_MANAGER"
	RoleCodeModuleManager RoleCode = "MODULE_MANAGER"
	RoleCodeStaff         RoleCode = "STAFF"
	RoleCodeTeacher       RoleCode = "TEACHER"
)
