package double

import (
	"fmt"
	"strings"
)

// NotConfiguredError reports a call that reached an interceptor with
// no registered behavior while the double is in strict mode. It
// propagates out of Invoke unchanged; the runtime never retries or
// swallows it.
type NotConfiguredError struct {
	// Identity is the interceptor identity the call arrived at.
	Identity string

	// Contract is the originating contract name, when known.
	Contract string
}

// Error implements the error interface.
func (e *NotConfiguredError) Error() string {
	if e.Contract != "" {
		return fmt.Sprintf("double: %s.%s invoked without a registered behavior (strict mode)",
			e.Contract, e.Identity)
	}
	return fmt.Sprintf("double: %s invoked without a registered behavior (strict mode)",
		e.Identity)
}

// ExhaustedError reports a call made after the last permitted
// repetition of the final behavior entry in a sequence whose tail is
// not Forever. The failure fires on the call after the boundary
// call, never on the boundary call itself, and fires in lenient mode
// too: exhaustion is independent of the strictness switch that
// governs the zero-registrations case.
type ExhaustedError struct {
	// Identity is the interceptor identity the call arrived at.
	Identity string

	// CallIndex is the 1-based index of the attempted call within
	// the sequence.
	CallIndex int
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("double: %s: call %d exceeds the registered behavior sequence",
		e.Identity, e.CallIndex)
}

// Failure is one unmet expectation discovered by verification: the
// identity it belongs to, the policy that was expected, and the call
// count that was observed.
type Failure struct {
	// Identity names the interceptor identity that failed.
	Identity string

	// Expected is the repeat policy the entry was registered with.
	Expected Times

	// Actual is the recorded call count.
	Actual int
}

// String renders the failure for reports and error messages.
func (f Failure) String() string {
	return fmt.Sprintf("%s: expected %s, called %d time(s)",
		f.Identity, f.Expected, f.Actual)
}

// VerificationError carries the full list of unmet expectations from
// an explicit verification call. It is never raised as a side effect
// of ordinary invocation.
type VerificationError struct {
	Failures []Failure
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.String()
	}
	return fmt.Sprintf("double: verification failed:\n  %s",
		strings.Join(msgs, "\n  "))
}
