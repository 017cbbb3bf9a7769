package auth

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PermissionKey is one flattened grant: action on module within a branch.
type PermissionKey struct {
	BranchID int64
	Module   Module
	Action   Action
}

// String returns the wire form "{branchId}:{module}:{action}".
func (k PermissionKey) String() string {
	return strconv.FormatInt(k.BranchID, 10) + ":" + string(k.Module) + ":" + string(k.Action)
}

// ParsePermissionKey parses the wire form produced by PermissionKey.String.
func ParsePermissionKey(s string) (PermissionKey, error) {
	parts := strings.SplitN(s, ":", 3) //nolint:mnd
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return PermissionKey{}, fmt.Errorf("%w: %q", ErrMalformedPermission, s)
	}

	branchID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return PermissionKey{}, fmt.Errorf("%w: %q", ErrMalformedPermission, s)
	}

	return PermissionKey{BranchID: branchID, Module: Module(parts[1]), Action: Action(parts[2])}, nil
}

// PermissionSet is a set of flattened grants. It travels as a sorted list of strings.
type PermissionSet map[PermissionKey]struct{}

// NewPermissionSet returns a set holding keys.
func NewPermissionSet(keys ...PermissionKey) PermissionSet {
	set := make(PermissionSet, len(keys))
	for _, k := range keys {
		set.Add(k)
	}

	return set
}

// Add inserts k.
func (p PermissionSet) Add(k PermissionKey) {
	p[k] = struct{}{}
}

// Has reports whether k is in the set. A nil set has nothing.
func (p PermissionSet) Has(k PermissionKey) bool {
	_, ok := p[k]

	return ok
}

// Strings returns the wire form of every key, sorted.
func (p PermissionSet) Strings() []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k.String())
	}

	sort.Strings(out)

	return out
}

// MarshalJSON encodes the set as a sorted string array.
func (p PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Strings()) //nolint:wrapcheck
}

// UnmarshalJSON decodes a string array. Malformed entries fail the whole decode.
func (p *PermissionSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck
	}

	set := make(PermissionSet, len(raw))

	for _, s := range raw {
		k, err := ParsePermissionKey(s)
		if err != nil {
			return err
		}

		set.Add(k)
	}

	*p = set

	return nil
}
