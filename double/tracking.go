package double

// Tracking records the invocation history of one behavior entry:
// how many times it was dispatched to, and the arguments of the most
// recent call. A is the member's parameter type: the single
// parameter itself, or a generated named-field args struct for
// multi-parameter members.
type Tracking[A any] struct {
	count int
	last  A
	has   bool
}

// CallCount returns the number of calls recorded on this entry.
func (t *Tracking[A]) CallCount() int {
	return t.count
}

// WasCalled reports whether at least one call was recorded.
func (t *Tracking[A]) WasCalled() bool {
	return t.count > 0
}

// LastArgs returns the arguments of the most recent recorded call.
// ok is false when no call has been recorded.
func (t *Tracking[A]) LastArgs() (args A, ok bool) {
	return t.last, t.has
}

// Reset returns the tracking record to its initial state.
func (t *Tracking[A]) Reset() {
	var zero A
	t.count = 0
	t.last = zero
	t.has = false
}

// record registers one call with the given arguments.
func (t *Tracking[A]) record(args A) {
	t.count++
	t.last = args
	t.has = true
}
