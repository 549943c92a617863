// Package double is the runtime imported by generated test doubles:
// repeat policies, per-entry tracking, the interceptor state machine
// that dispatches intercepted calls to registered behaviors, the
// type-key and indexer-key dispatchers, and double-level
// verification.
//
// Every runtime instance is owned by the double that created it and
// assumes single-writer access: one test, one goroutine. Call counts
// and cursor advancement are not atomic. Tests that exercise a
// double from several goroutines must synchronize around the double
// themselves.
package double

import "fmt"

// timesKind discriminates the closed set of repeat policies.
type timesKind uint8

const (
	timesExactly timesKind = iota
	timesForever
	timesAtLeast
	timesAtMost
	timesNever
)

// Times describes how many times a behavior entry applies before the
// sequence advances, or a verification-only constraint on total call
// count. The zero value is Exactly(0).
type Times struct {
	kind timesKind
	n    int
}

// Exactly returns a policy satisfied by exactly n calls. Sequencing
// advances past the entry once n calls have been dispatched to it.
// Panics if n is negative.
func Exactly(n int) Times {
	if n < 0 {
		panic(fmt.Sprintf("double: Exactly(%d): count must not be negative", n))
	}
	return Times{kind: timesExactly, n: n}
}

// Forever returns a policy that never exhausts: the entry handles
// every remaining call and always satisfies verification.
func Forever() Times {
	return Times{kind: timesForever}
}

// AtLeast returns a verification-only policy satisfied by n or more
// calls. Panics if n is negative.
func AtLeast(n int) Times {
	if n < 0 {
		panic(fmt.Sprintf("double: AtLeast(%d): count must not be negative", n))
	}
	return Times{kind: timesAtLeast, n: n}
}

// AtMost returns a verification-only policy satisfied by n or fewer
// calls. Panics if n is negative.
func AtMost(n int) Times {
	if n < 0 {
		panic(fmt.Sprintf("double: AtMost(%d): count must not be negative", n))
	}
	return Times{kind: timesAtMost, n: n}
}

// Never returns a verification-only policy satisfied by zero calls.
func Never() Times {
	return Times{kind: timesNever}
}

// Verify reports whether the actual call count satisfies the policy.
func (t Times) Verify(actual int) bool {
	switch t.kind {
	case timesForever:
		return true
	case timesAtLeast:
		return actual >= t.n
	case timesAtMost:
		return actual <= t.n
	case timesNever:
		return actual == 0
	default:
		return actual == t.n
	}
}

// Sequenceable reports whether the policy may drive dispatch.
// AtLeast, AtMost, and Never constrain verification only, and
// Exactly(0) describes an entry that must never become active; use
// Expect with Never for that.
func (t Times) Sequenceable() bool {
	return t.kind == timesForever || (t.kind == timesExactly && t.n > 0)
}

// String renders the policy for failure messages.
func (t Times) String() string {
	switch t.kind {
	case timesForever:
		return "forever"
	case timesAtLeast:
		return fmt.Sprintf("at least %d time(s)", t.n)
	case timesAtMost:
		return fmt.Sprintf("at most %d time(s)", t.n)
	case timesNever:
		return "never"
	default:
		return fmt.Sprintf("exactly %d time(s)", t.n)
	}
}

// forever reports whether the policy is Forever.
func (t Times) forever() bool {
	return t.kind == timesForever
}
