// Package navigation derives the module menu of the back office from a snapshot.
package navigation

import (
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
)

// Entry is one module of the menu with what the identity may do there.
type Entry struct {
	Module auth.Module `json:"module"`
	Read   bool        `json:"read"`
	Write  bool        `json:"write"`
	Delete bool        `json:"delete"`
}

// Visible reports whether the entry should be shown at all.
func (e Entry) Visible() bool {
	return e.Read || e.Write || e.Delete
}

// Build returns the visible menu entries for the active branch of s, in catalog order.
func Build(s *auth.Snapshot) []Entry {
	entries := make([]Entry, 0, len(auth.Modules()))
	if s == nil {
		return entries
	}

	for _, m := range auth.Modules() {
		e := Entry{
			Module: m,
			Read:   auth.HasPermission(s, m, auth.ActionRead),
			Write:  auth.HasPermission(s, m, auth.ActionWrite),
			Delete: auth.HasPermission(s, m, auth.ActionDelete),
		}

		if e.Visible() {
			entries = append(entries, e)
		}
	}

	return entries
}
