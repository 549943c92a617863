package double

import "fmt"

// Options configures a double's runtimes at construction time. The
// generated double constructor builds one Options value and passes
// it to every interceptor it wires.
type Options struct {
	// Strict makes invoking an unconfigured member an error instead
	// of returning the member's static default value.
	Strict bool

	// Contract is the originating contract name attached to
	// NotConfiguredError, when available.
	Contract string
}

// entry is one registered (callback, repeat-policy) pair with its
// own tracking record.
type entry[A, R any] struct {
	fn       func(A) R
	policy   Times
	tracking *Tracking[A]
}

// Interceptor is the invocation state machine for one signature. It
// owns a single ordered sequence of behavior entries, dispatches
// each incoming call to the active entry, advances the cursor on
// exhaustion, records tracking data, and answers verification
// queries.
//
// A is the signature's parameter shape, R its return type (use Void
// for void-shaped members). Not safe for concurrent use.
type Interceptor[A, R any] struct {
	name     string
	opts     Options
	fallback func(A) (R, bool)
	seq      *Seq[A, R]

	// unconfigured counts calls that arrived while no behavior was
	// registered, strict or not. Entry tracking cannot own these
	// calls because no entry exists.
	unconfigured int

	expect *Times
}

// New constructs an interceptor runtime for the named identity.
func New[A, R any](name string, opts Options) *Interceptor[A, R] {
	return &Interceptor[A, R]{name: name, opts: opts}
}

// Name returns the interceptor identity name.
func (it *Interceptor[A, R]) Name() string {
	return it.name
}

// Register discards any previously registered sequence and starts a
// brand-new one-entry sequence with the implicit Forever policy,
// resetting the cursor. It returns the entry's tracking handle.
// There is deliberately no chaining handle: appending behind a
// Forever entry could never be reached.
func (it *Interceptor[A, R]) Register(fn func(A) R) *Tracking[A] {
	seq := it.RegisterTimes(fn, Forever())
	return seq.entries[0].tracking
}

// RegisterTimes discards any previously registered sequence and
// starts a new one whose first entry carries the given policy. The
// returned sequence handle exposes Chain for appending further
// entries. Panics if the policy is verification-only.
func (it *Interceptor[A, R]) RegisterTimes(fn func(A) R, t Times) *Seq[A, R] {
	if !t.Sequenceable() {
		panic(fmt.Sprintf("double: %s: policy %q cannot drive dispatch; use it with Expect",
			it.name, t))
	}
	it.seq = &Seq[A, R]{
		owner: it,
		entries: []*entry[A, R]{
			{fn: fn, policy: t, tracking: &Tracking[A]{}},
		},
	}
	return it.seq
}

// Expect attaches a verification-only constraint on the total number
// of calls dispatched through this interceptor, checked by Verify in
// addition to the per-entry policies. Any policy is accepted here.
func (it *Interceptor[A, R]) Expect(t Times) {
	it.expect = &t
}

// Invoke dispatches one intercepted call.
//
// With no registered behavior, strict mode fails with
// *NotConfiguredError; lenient mode consults the fallback hook (the
// indexer backing store, when wired) and otherwise returns the
// member's zero value. Either way only the identity-level
// unconfigured counter moves: no entry exists to own tracking.
//
// Otherwise the call is recorded on the active entry, the cursor
// advances when the entry's non-Forever policy is spent, and the
// entry's callback produces the result. A call arriving after the
// last permitted repetition of the final entry fails with
// *ExhaustedError; the boundary call itself always succeeds.
func (it *Interceptor[A, R]) Invoke(args A) (R, error) {
	var zero R

	if it.seq == nil || len(it.seq.entries) == 0 {
		it.unconfigured++
		if it.opts.Strict {
			return zero, &NotConfiguredError{Identity: it.name, Contract: it.opts.Contract}
		}
		if it.fallback != nil {
			if v, ok := it.fallback(args); ok {
				return v, nil
			}
		}
		return zero, nil
	}

	s := it.seq
	e := s.entries[s.cursor]
	e.tracking.record(args)

	if !e.policy.forever() && e.tracking.CallCount() >= e.policy.n {
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		} else if e.tracking.CallCount() > e.policy.n {
			return zero, &ExhaustedError{Identity: it.name, CallIndex: s.TotalCalls()}
		}
	}

	return e.fn(args), nil
}

// MustInvoke is Invoke for generated members whose signature has no
// error slot to surface misconfiguration through: it panics on
// NotConfiguredError or ExhaustedError.
func (it *Interceptor[A, R]) MustInvoke(args A) R {
	v, err := it.Invoke(args)
	if err != nil {
		panic(err)
	}
	return v
}

// Verify checks every entry's policy against its recorded call count
// and the Expect constraint, if any, against the total. Forever
// entries always satisfy verification. It returns the unmet
// expectations; nil means the interceptor verified clean.
func (it *Interceptor[A, R]) Verify() []Failure {
	var fails []Failure
	if it.seq != nil {
		for _, e := range it.seq.entries {
			if !e.policy.Verify(e.tracking.CallCount()) {
				fails = append(fails, Failure{
					Identity: it.name,
					Expected: e.policy,
					Actual:   e.tracking.CallCount(),
				})
			}
		}
	}
	if it.expect != nil && !it.expect.Verify(it.CallCount()) {
		fails = append(fails, Failure{
			Identity: it.name,
			Expected: *it.expect,
			Actual:   it.CallCount(),
		})
	}
	return fails
}

// Reset returns tracking and cursor to their initial state while
// preserving the registered entries, enabling test isolation without
// re-registering behavior. Discarding the behaviors themselves
// requires discarding the double instance.
func (it *Interceptor[A, R]) Reset() {
	it.unconfigured = 0
	if it.seq == nil {
		return
	}
	it.seq.Reset()
}

// CallCount returns the total number of calls recorded across the
// current sequence's entries. Unconfigured calls are not included;
// see UnconfiguredCalls.
func (it *Interceptor[A, R]) CallCount() int {
	if it.seq == nil {
		return 0
	}
	return it.seq.TotalCalls()
}

// UnconfiguredCalls returns the number of calls that arrived while
// no behavior was registered.
func (it *Interceptor[A, R]) UnconfiguredCalls() int {
	return it.unconfigured
}

// setFallback wires the lenient-mode fallback consulted before the
// zero value when no behavior is registered. Used by the indexer
// dispatcher to consult its backing store.
func (it *Interceptor[A, R]) setFallback(fn func(A) (R, bool)) {
	it.fallback = fn
}

// Seq is the ordered list of behavior entries for one signature,
// plus a cursor. It is owned exclusively by one interceptor; the
// handle returned from RegisterTimes lets test code append entries
// and inspect the sequence as a whole.
type Seq[A, R any] struct {
	owner   *Interceptor[A, R]
	entries []*entry[A, R]
	cursor  int
}

// Chain appends a behavior entry to the sequence and returns the
// sequence for further chaining. Panics if the policy is
// verification-only, or if the current tail entry is Forever. An
// entry appended behind a Forever entry could never be reached, so
// the mistake is rejected at registration time.
func (s *Seq[A, R]) Chain(fn func(A) R, t Times) *Seq[A, R] {
	if !t.Sequenceable() {
		panic(fmt.Sprintf("double: %s: policy %q cannot drive dispatch; use it with Expect",
			s.owner.name, t))
	}
	if tail := s.entries[len(s.entries)-1]; tail.policy.forever() {
		panic(fmt.Sprintf("double: %s: chaining behind a Forever entry is unreachable",
			s.owner.name))
	}
	s.entries = append(s.entries, &entry[A, R]{fn: fn, policy: t, tracking: &Tracking[A]{}})
	return s
}

// Verify reports whether every entry's policy is satisfied by its
// recorded call count.
func (s *Seq[A, R]) Verify() bool {
	for _, e := range s.entries {
		if !e.policy.Verify(e.tracking.CallCount()) {
			return false
		}
	}
	return true
}

// Reset clears every entry's tracking and returns the cursor to the
// first entry. The registered entries are preserved.
func (s *Seq[A, R]) Reset() {
	for _, e := range s.entries {
		e.tracking.Reset()
	}
	s.cursor = 0
}

// TotalCalls returns the sum of recorded call counts across all
// entries.
func (s *Seq[A, R]) TotalCalls() int {
	total := 0
	for _, e := range s.entries {
		total += e.tracking.CallCount()
	}
	return total
}

// Len returns the number of registered entries.
func (s *Seq[A, R]) Len() int {
	return len(s.entries)
}

// Tracking returns the tracking handle of the i-th entry.
func (s *Seq[A, R]) Tracking(i int) *Tracking[A] {
	return s.entries[i].tracking
}
