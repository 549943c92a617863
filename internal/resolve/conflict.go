package resolve

import (
	"fmt"
	"strings"

	"github.com/unbound-force/decoy/internal/member"
)

// ConflictReason enumerates why a member group could not be resolved
// to a single interceptor identity.
type ConflictReason string

// Conflict reason constants.
const (
	// ReasonAmbiguousCall: two contracts declare a method with the
	// same name and the same parameter-type signature. A flat call
	// site cannot reveal which contract's member was invoked, so the
	// group is rejected rather than silently merged.
	ReasonAmbiguousCall ConflictReason = "ambiguous_call"

	// ReasonKindMismatch: two contracts declare members of different
	// kinds under one name. Identity names are unique within a
	// generation unit, so the name cannot serve both.
	ReasonKindMismatch ConflictReason = "kind_mismatch"
)

// ConflictError describes one irreconcilable member collision. It is
// fatal to generation for the named group: no identity is emitted
// for it, and the conflict is reported with every declaring contract
// so the caller can act on it.
type ConflictError struct {
	// Name is the colliding member name.
	Name string `json:"name"`

	// Reason classifies the collision.
	Reason ConflictReason `json:"reason"`

	// Shape is the shared call shape for ambiguous-call conflicts.
	// Empty for kind-mismatch conflicts.
	Shape string `json:"shape,omitempty"`

	// Contracts lists every contract participating in the collision.
	Contracts []member.Contract `json:"contracts"`
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	names := make([]string, len(e.Contracts))
	for i, c := range e.Contracts {
		names[i] = c.String()
	}
	switch e.Reason {
	case ReasonKindMismatch:
		return fmt.Sprintf("member %q declared with different kinds by %s",
			e.Name, strings.Join(names, ", "))
	default:
		return fmt.Sprintf("ambiguous member %q: %s declared identically by %s",
			e.Name, e.Shape, strings.Join(names, ", "))
	}
}
