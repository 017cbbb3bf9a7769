// Package auth turns a login into a capability snapshot and answers permission
// questions against it.
//
// # Identities
//
// Three kinds of account can log in: operators (staff, kind "user"), students and
// parents (kind "parent"). Account is a closed interface over *Operator, *Student and
// *Guardian. The Resolver looks an email up in all three stores concurrently, applies
// the status gates and verifies the password.
//
// # Snapshots and tokens
//
// BuildSnapshot flattens an account's roles into a Snapshot: flags derived from the
// system role codes plus a PermissionSet of (branch, module, action) triples. The Issuer
// signs the snapshot twice, as an access token and as a refresh token, each with its
// own secret and lifetime. Snapshots are never re-derived per request; a permission
// change reaches a user at the next login, refresh or branch switch.
//
// # Authorization
//
// HasPermission is the only predicate domain code needs:
//
//	if !auth.HasPermission(snap, auth.ModuleAttendance, auth.ActionWrite) {
//	    return auth.ErrForbidden
//	}
//
// RequirePermission wraps it as fiber middleware.
package auth
