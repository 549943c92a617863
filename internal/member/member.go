// Package member defines the abstract member model consumed by the
// resolver: member kinds, canonical type descriptors, signatures, and
// stable per-signature key generation.
package member

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Kind enumerates the closed set of abstract member kinds. Every
// component that dispatches on Kind must handle all four cases.
type Kind string

// Member kind constants.
const (
	KindMethod   Kind = "method"
	KindProperty Kind = "property"
	KindIndexer  Kind = "indexer"
	KindEvent    Kind = "event"
)

// Overloadable reports whether members of this kind may declare
// multiple parameter-type signatures under one name. Only methods
// overload; properties, indexers, and events have exactly one call
// shape, which is why identical declarations across two contracts
// merge instead of conflicting.
func (k Kind) Overloadable() bool {
	return k == KindMethod
}

// Valid reports whether k is one of the four known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindMethod, KindProperty, KindIndexer, KindEvent:
		return true
	}
	return false
}

// TypeRef is a canonical, import-path-qualified type descriptor
// (e.g. "int", "[]byte", "context.Context"). Two TypeRefs describe
// the same type iff they are string-equal; the extractor is
// responsible for producing canonical spellings.
type TypeRef string

// NoValue is the return descriptor for void-shaped members.
const NoValue TypeRef = ""

// Contract identifies one declaring contract (interface, abstract
// base, callback type) by its qualified name.
type Contract struct {
	// Name is the contract's name within its package.
	Name string `json:"name"`

	// Package is the full import path of the declaring package.
	// Empty for synthetic contracts in tests.
	Package string `json:"package,omitempty"`
}

// String returns the qualified contract name.
func (c Contract) String() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// Signature describes one abstract member as extracted from a
// declaring contract. Signatures are immutable once extracted.
type Signature struct {
	// Kind is the member kind (method, property, indexer, event).
	Kind Kind `json:"kind"`

	// Name is the member's declared name.
	Name string `json:"name"`

	// Params is the ordered list of parameter type descriptors.
	// Empty for parameterless members.
	Params []TypeRef `json:"params"`

	// Returns is the return type descriptor, or NoValue for
	// void-shaped members.
	Returns TypeRef `json:"returns,omitempty"`

	// TypeParams is the generic arity: the number of type
	// parameters supplied at the call site. Zero for non-generic
	// members.
	TypeParams int `json:"type_params,omitempty"`

	// Contract is the declaring contract.
	Contract Contract `json:"contract"`
}

// Key returns a stable, deterministic per-signature key derived from
// the member kind, name, generic arity, and ordered parameter types.
// The key is a sha256 hash truncated to 8 hex characters, prefixed
// with "sig-". Two signatures that are the same call shape always
// produce the same key, across runs and across declaring contracts;
// the declaring contract and return type are deliberately excluded
// so that mergeable members share a key.
func (s Signature) Key() string {
	parts := make([]string, 0, len(s.Params)+3)
	parts = append(parts, string(s.Kind), s.Name, fmt.Sprintf("%d", s.TypeParams))
	for _, p := range s.Params {
		parts = append(parts, string(p))
	}
	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("sig-%x", hash[:4])
}

// SameShape reports whether two signatures are the same call shape:
// equal kind, name, generic arity, and ordered parameter types.
// Return types are not compared; the host type system already
// guarantees that two members with equal shape agree on the return.
func (s Signature) SameShape(o Signature) bool {
	if s.Kind != o.Kind || s.Name != o.Name || s.TypeParams != o.TypeParams {
		return false
	}
	if len(s.Params) != len(o.Params) {
		return false
	}
	for i := range s.Params {
		if s.Params[i] != o.Params[i] {
			return false
		}
	}
	return true
}

// Shape returns a human-readable rendering of the signature, e.g.
// "Add(int, int) int" or "Lookup[T](string) T". Used in reports and
// error messages.
func (s Signature) Shape() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	if s.TypeParams > 0 {
		sb.WriteString("[")
		for i := 0; i < s.TypeParams; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "T%d", i+1)
		}
		sb.WriteString("]")
	}
	sb.WriteString("(")
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(p))
	}
	sb.WriteString(")")
	if s.Returns != NoValue {
		sb.WriteString(" ")
		sb.WriteString(string(s.Returns))
	}
	return string(s.Kind) + " " + sb.String()
}
