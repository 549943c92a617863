// Package resolve implements the member identity resolver and the
// overload grouper: it turns the flattened member list of every
// contract a double must satisfy into collision-free interceptor
// identities, and rejects the collisions that cannot be reconciled.
package resolve

import (
	"sort"

	"github.com/unbound-force/decoy/internal/member"
)

// Resolution is the resolver's complete output for one generation
// unit: the identities that can be wired, and the conflicts that
// prevented the rest.
type Resolution struct {
	// Identities lists every resolved interceptor identity, sorted
	// by name. Names are unique within the resolution.
	Identities []Identity `json:"identities"`

	// Conflicts lists every rejected member group, sorted by name.
	Conflicts []*ConflictError `json:"conflicts"`
}

// OK reports whether the resolution produced no conflicts.
func (r Resolution) OK() bool {
	return len(r.Conflicts) == 0
}

// Identity returns the resolved identity with the given name.
func (r Resolution) Identity(name string) (Identity, bool) {
	for _, id := range r.Identities {
		if id.Name == name {
			return id, true
		}
	}
	return Identity{}, false
}

// Resolve computes interceptor identities for the given flattened
// member list. It is pure and deterministic: the same input always
// yields the same output, in the same order, because downstream
// code generation depends on stable names across incremental reruns.
//
// Members are grouped by (kind, name) and each group is partitioned
// by exact call shape. A method partition spanning more than one
// declaring contract is a conflict (the runtime could never tell the
// calls apart); an identical partition of any non-overloadable kind
// is the same observable member and merges. A name claimed by more
// than one kind is likewise a conflict, because identity names are
// unique within the unit. Any conflict withholds the entire group:
// no identity is emitted under that name.
func Resolve(members []member.Signature) Resolution {
	byName := make(map[string][]member.Signature)
	for _, m := range members {
		byName[m.Name] = append(byName[m.Name], m)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	var res Resolution
	for _, name := range names {
		group := byName[name]

		if conflict := kindMismatch(name, group); conflict != nil {
			res.Conflicts = append(res.Conflicts, conflict)
			continue
		}

		identity, conflicts := resolveGroup(name, group)
		if len(conflicts) > 0 {
			res.Conflicts = append(res.Conflicts, conflicts...)
			continue
		}
		res.Identities = append(res.Identities, identity)
	}
	return res
}

// kindMismatch returns a conflict if the group's members disagree on
// kind, nil otherwise.
func kindMismatch(name string, group []member.Signature) *ConflictError {
	kind := group[0].Kind
	for _, m := range group[1:] {
		if m.Kind != kind {
			return &ConflictError{
				Name:      name,
				Reason:    ReasonKindMismatch,
				Contracts: contractsOf(group),
			}
		}
	}
	return nil
}

// resolveGroup partitions one (kind, name) group by exact call shape
// and either rejects it or hands the partitions to the grouper.
func resolveGroup(name string, group []member.Signature) (Identity, []*ConflictError) {
	kind := group[0].Kind
	partitions := partitionByShape(group)

	var conflicts []*ConflictError
	for _, part := range partitions {
		contracts := contractsOf(part)
		if len(contracts) > 1 && kind.Overloadable() {
			conflicts = append(conflicts, &ConflictError{
				Name:      name,
				Reason:    ReasonAmbiguousCall,
				Shape:     part[0].Shape(),
				Contracts: contracts,
			})
		}
	}
	if len(conflicts) > 0 {
		return Identity{}, conflicts
	}

	return groupIdentity(name, kind, partitions), nil
}

// partitionByShape splits a group into sub-slices of shape-equal
// signatures, preserving deterministic order (sorted by shape).
func partitionByShape(group []member.Signature) [][]member.Signature {
	sorted := make([]member.Signature, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		if a, b := sorted[i].Shape(), sorted[j].Shape(); a != b {
			return a < b
		}
		return sorted[i].Contract.String() < sorted[j].Contract.String()
	})

	var parts [][]member.Signature
	for _, m := range sorted {
		n := len(parts)
		if n > 0 && parts[n-1][0].SameShape(m) {
			parts[n-1] = append(parts[n-1], m)
			continue
		}
		parts = append(parts, []member.Signature{m})
	}
	return parts
}

// contractsOf returns the sorted, deduplicated declaring contracts
// of the given signatures.
func contractsOf(sigs []member.Signature) []member.Contract {
	seen := make(map[string]bool)
	var out []member.Contract
	for _, s := range sigs {
		key := s.Contract.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s.Contract)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
