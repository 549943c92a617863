package extract

import (
	"go/types"
	"sort"

	"github.com/unbound-force/decoy/internal/member"
)

// ContractSet is the extractor's output for one package: the
// contracts selected for processing and the flattened list of their
// abstract members, ready for the resolver.
type ContractSet struct {
	// Contracts lists every selected contract, sorted by name.
	Contracts []member.Contract

	// Members is the flattened member list across all selected
	// contracts.
	Members []member.Signature
}

// Members extracts abstract members from every exported interface
// type in the loaded package. The selector decides, by contract
// name, which interfaces are processed; nil selects all.
//
// Go interfaces declare methods only, so every extracted member is
// KindMethod; properties, indexers, and events enter the model when
// the member descriptions come from a host with those kinds. A
// generic interface's arity is recorded on each of its members,
// since its type arguments are supplied where the double is
// instantiated.
func Members(res *Result, selector func(name string) bool) ContractSet {
	var set ContractSet

	scope := res.Pkg.Types.Scope()
	names := scope.Names()
	sort.Strings(names)

	for _, name := range names {
		obj := scope.Lookup(name)
		tn, ok := obj.(*types.TypeName)
		if !ok || !tn.Exported() {
			continue
		}
		iface, ok := tn.Type().Underlying().(*types.Interface)
		if !ok {
			continue
		}
		if selector != nil && !selector(name) {
			continue
		}

		contract := member.Contract{Name: name, Package: res.Pkg.PkgPath}
		set.Contracts = append(set.Contracts, contract)

		arity := 0
		if named, ok := tn.Type().(*types.Named); ok {
			arity = named.TypeParams().Len()
		}

		for i := 0; i < iface.NumMethods(); i++ {
			m := iface.Method(i)
			sig := m.Type().(*types.Signature)
			set.Members = append(set.Members, member.Signature{
				Kind:       member.KindMethod,
				Name:       m.Name(),
				Params:     tupleRefs(sig.Params(), res.Pkg.Types),
				Returns:    resultRef(sig.Results(), res.Pkg.Types),
				TypeParams: arity,
				Contract:   contract,
			})
		}
	}

	return set
}

// tupleRefs renders each tuple element as a canonical type
// descriptor, qualified relative to the loaded package.
func tupleRefs(tuple *types.Tuple, pkg *types.Package) []member.TypeRef {
	if tuple.Len() == 0 {
		return nil
	}
	refs := make([]member.TypeRef, tuple.Len())
	for i := 0; i < tuple.Len(); i++ {
		refs[i] = member.TypeRef(types.TypeString(tuple.At(i).Type(), types.RelativeTo(pkg)))
	}
	return refs
}

// resultRef renders a result tuple as a single return descriptor:
// NoValue for void, the bare type for one result, and a
// parenthesized tuple for several.
func resultRef(results *types.Tuple, pkg *types.Package) member.TypeRef {
	switch results.Len() {
	case 0:
		return member.NoValue
	case 1:
		return member.TypeRef(types.TypeString(results.At(0).Type(), types.RelativeTo(pkg)))
	default:
		refs := tupleRefs(results, pkg)
		out := "("
		for i, r := range refs {
			if i > 0 {
				out += ", "
			}
			out += string(r)
		}
		return member.TypeRef(out + ")")
	}
}
