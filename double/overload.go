package double

import "fmt"

// OverloadGroup is the identity-level handle for a member with
// several distinct signatures. Each signature owns an independent
// interceptor runtime keyed by its stable signature key; the group
// aggregates them for verification and whole-identity reset. A call
// is routed to its signature's runtime by the generated member, so
// overloads track independently.
type OverloadGroup struct {
	name     string
	order    []string
	runtimes map[string]Verifier
}

// NewOverloadGroup constructs an empty group for the named identity.
func NewOverloadGroup(name string) *OverloadGroup {
	return &OverloadGroup{name: name, runtimes: make(map[string]Verifier)}
}

// Name returns the identity name shared by every overload.
func (g *OverloadGroup) Name() string {
	return g.name
}

// Add wires one signature's runtime under its signature key. Panics
// if the key is already taken: signature keys are unique within an
// identity by construction, so a duplicate is a generation bug.
func (g *OverloadGroup) Add(sigKey string, v Verifier) {
	if _, dup := g.runtimes[sigKey]; dup {
		panic(fmt.Sprintf("double: %s: duplicate signature key %q", g.name, sigKey))
	}
	g.order = append(g.order, sigKey)
	g.runtimes[sigKey] = v
}

// Runtime returns the runtime registered under the given signature
// key.
func (g *OverloadGroup) Runtime(sigKey string) (Verifier, bool) {
	v, ok := g.runtimes[sigKey]
	return v, ok
}

// Verify collects unmet expectations across every overload, in
// registration order.
func (g *OverloadGroup) Verify() []Failure {
	var fails []Failure
	for _, key := range g.order {
		fails = append(fails, g.runtimes[key].Verify()...)
	}
	return fails
}

// Reset resets every overload's runtime.
func (g *OverloadGroup) Reset() {
	for _, key := range g.order {
		g.runtimes[key].Reset()
	}
}
