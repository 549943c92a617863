// Package report provides output formatters for resolution results
// in JSON and human-readable text formats. The JSON form is the
// build-time boundary consumed by the emission layer: every identity
// with its canonical name, class, contracts, and keyed signatures.
package report

import (
	"github.com/unbound-force/decoy/internal/resolve"
)

// SignatureView is one call shape of an identity, tagged with its
// stable signature key.
type SignatureView struct {
	// Key is the deterministic per-signature key routing calls
	// among the identity's sequences.
	Key string `json:"key"`

	// Shape is the human-readable call shape.
	Shape string `json:"shape"`

	// Params is the ordered parameter type list.
	Params []string `json:"params"`

	// Returns is the return type descriptor; omitted for
	// void-shaped members.
	Returns string `json:"returns,omitempty"`

	// TypeParams is the generic arity.
	TypeParams int `json:"type_params,omitempty"`
}

// IdentityView is one resolved interceptor identity.
type IdentityView struct {
	// Name is the canonical public name, unique within the unit.
	Name string `json:"name"`

	// Kind is the member kind.
	Kind string `json:"kind"`

	// Class tells the emission layer how the identity is wired:
	// plain, overload_group, generic, or indexer.
	Class string `json:"class"`

	// Contracts lists the declaring contracts the identity serves.
	Contracts []string `json:"contracts"`

	// Signatures lists every supported call shape.
	Signatures []SignatureView `json:"signatures"`
}

// ConflictView is one rejected member group.
type ConflictView struct {
	// Name is the colliding member name.
	Name string `json:"name"`

	// Reason classifies the collision.
	Reason string `json:"reason"`

	// Shape is the shared call shape, for ambiguous-call conflicts.
	Shape string `json:"shape,omitempty"`

	// Contracts lists every contract in the collision.
	Contracts []string `json:"contracts"`

	// Message is the rendered conflict description.
	Message string `json:"message"`
}

// View is the complete formatter input for one generation unit.
type View struct {
	// Package is the import path of the processed package.
	Package string `json:"package,omitempty"`

	// Identities lists every resolved identity, sorted by name.
	Identities []IdentityView `json:"identities"`

	// Conflicts lists every rejected group, sorted by name.
	Conflicts []ConflictView `json:"conflicts"`
}

// NewView projects a resolution into the formatter view.
func NewView(pkg string, res resolve.Resolution) View {
	v := View{
		Package:    pkg,
		Identities: []IdentityView{},
		Conflicts:  []ConflictView{},
	}

	for _, id := range res.Identities {
		iv := IdentityView{
			Name:  id.Name,
			Kind:  string(id.Kind),
			Class: string(id.Class()),
		}
		for _, c := range id.Contracts {
			iv.Contracts = append(iv.Contracts, c.String())
		}
		for _, sig := range id.Signatures {
			params := make([]string, len(sig.Params))
			for i, p := range sig.Params {
				params[i] = string(p)
			}
			iv.Signatures = append(iv.Signatures, SignatureView{
				Key:        sig.Key(),
				Shape:      sig.Shape(),
				Params:     params,
				Returns:    string(sig.Returns),
				TypeParams: sig.TypeParams,
			})
		}
		v.Identities = append(v.Identities, iv)
	}

	for _, c := range res.Conflicts {
		cv := ConflictView{
			Name:    c.Name,
			Reason:  string(c.Reason),
			Shape:   c.Shape,
			Message: c.Error(),
		}
		for _, contract := range c.Contracts {
			cv.Contracts = append(cv.Contracts, contract.String())
		}
		v.Conflicts = append(v.Conflicts, cv)
	}

	return v
}
