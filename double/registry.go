package double

// Verifier is the aggregation surface every runtime reachable from a
// double exposes: interceptors, overload groups, and the type-key
// and indexer-key dispatchers all implement it.
type Verifier interface {
	// Name returns the interceptor identity name.
	Name() string

	// Verify returns the unmet expectations; nil means clean.
	Verify() []Failure

	// Reset clears tracking and cursors while preserving registered
	// behaviors.
	Reset()
}

// VerificationResult is the outcome of whole-double verification.
type VerificationResult struct {
	// OK is true when every reachable runtime verified clean.
	OK bool

	// Failures lists every unmet expectation, in registration
	// order.
	Failures []Failure
}

// Err returns nil when the result is OK, and a *VerificationError
// carrying the failure list otherwise.
func (r VerificationResult) Err() error {
	if r.OK {
		return nil
	}
	return &VerificationError{Failures: r.Failures}
}

// Registry aggregates every runtime wired into one double instance.
// The generated double constructor adds each member runtime as it is
// created; test code calls Verify once at the end of the test.
type Registry struct {
	opts    Options
	members []Verifier
}

// NewRegistry constructs the per-double aggregator. The options are
// shared with every member runtime the double wires.
func NewRegistry(opts Options) *Registry {
	return &Registry{opts: opts}
}

// Options returns the double-wide options, for constructing member
// runtimes with the same strictness and contract attribution.
func (r *Registry) Options() Options {
	return r.opts
}

// Add registers a member runtime for aggregation.
func (r *Registry) Add(v Verifier) {
	r.members = append(r.members, v)
}

// Verify walks every registered runtime and collects unmet
// expectations. It never fails implicitly during invocation; callers
// decide when to verify.
func (r *Registry) Verify() VerificationResult {
	var fails []Failure
	for _, v := range r.members {
		fails = append(fails, v.Verify()...)
	}
	return VerificationResult{OK: len(fails) == 0, Failures: fails}
}

// ResetAll resets every registered runtime, preserving registered
// behaviors, for test isolation between cases sharing one double.
func (r *Registry) ResetAll() {
	for _, v := range r.members {
		v.Reset()
	}
}
