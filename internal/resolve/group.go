package resolve

import "github.com/unbound-force/decoy/internal/member"

// Class enumerates how an identity is wired at generation time.
type Class string

// Identity class constants.
const (
	// ClassPlain: one signature, routed to one interceptor runtime.
	ClassPlain Class = "plain"

	// ClassOverloadGroup: several signatures under one name, one
	// internal sequence per signature, routed by signature key.
	ClassOverloadGroup Class = "overload_group"

	// ClassGeneric: the member takes call-site type arguments and is
	// routed through a type-key dispatcher.
	ClassGeneric Class = "generic"

	// ClassIndexer: an indexed-access member routed through a
	// key-type dispatcher with a backing store.
	ClassIndexer Class = "indexer"
)

// Identity is one collision-free public name through which test code
// configures and inspects a logical member. Created once by the
// resolver/grouper pair; never mutated afterward.
type Identity struct {
	// Name is the canonical public name, unique within the
	// generation unit.
	Name string `json:"name"`

	// Kind is the member kind shared by every signature.
	Kind member.Kind `json:"kind"`

	// Contracts lists every declaring contract this identity
	// serves, sorted and deduplicated.
	Contracts []member.Contract `json:"contracts"`

	// Signatures lists every distinct call shape the identity must
	// support, in deterministic order. One signature for plain
	// members, several for an overload group. Each signature's
	// Key() routes a call to its own sequence at run time.
	Signatures []member.Signature `json:"signatures"`
}

// Class classifies the identity for the emission layer. Generic and
// indexer routing take precedence over overload grouping: a generic
// member with overloads still goes through the type-key dispatcher.
func (id Identity) Class() Class {
	if id.Kind == member.KindIndexer {
		return ClassIndexer
	}
	for _, s := range id.Signatures {
		if s.TypeParams > 0 {
			return ClassGeneric
		}
	}
	if len(id.Signatures) > 1 {
		return ClassOverloadGroup
	}
	return ClassPlain
}

// SignatureKeys returns the stable per-signature keys in the same
// order as Signatures.
func (id Identity) SignatureKeys() []string {
	keys := make([]string, len(id.Signatures))
	for i, s := range id.Signatures {
		keys[i] = s.Key()
	}
	return keys
}

// groupIdentity builds one identity from the shape partitions of a
// non-conflicting (kind, name) group. Each partition contributes one
// representative signature; identical declarations from several
// contracts collapse into it, with every contract recorded on the
// identity.
func groupIdentity(name string, kind member.Kind, partitions [][]member.Signature) Identity {
	id := Identity{Name: name, Kind: kind}
	var all []member.Signature
	for _, part := range partitions {
		id.Signatures = append(id.Signatures, part[0])
		all = append(all, part...)
	}
	id.Contracts = contractsOf(all)
	return id
}
