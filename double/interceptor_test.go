package double

import (
	"errors"
	"testing"
)

// doubler is a simple callback used throughout: returns 2*n.
func doubler(n int) int { return 2 * n }

func TestRegister_ForeverRepeats(t *testing.T) {
	it := New[int, int]("Scale", Options{})

	invoked := 0
	tr := it.Register(func(n int) int {
		invoked++
		return doubler(n)
	})

	const n = 7
	for i := 1; i <= n; i++ {
		got, err := it.Invoke(i)
		if err != nil {
			t.Fatalf("Invoke(%d) error: %v", i, err)
		}
		if got != 2*i {
			t.Errorf("Invoke(%d) = %d, want %d", i, got, 2*i)
		}
	}

	if invoked != n {
		t.Errorf("callback invoked %d times, want %d", invoked, n)
	}
	if tr.CallCount() != n {
		t.Errorf("CallCount() = %d, want %d", tr.CallCount(), n)
	}
	if !tr.WasCalled() {
		t.Error("WasCalled() = false after calls")
	}
	if last, ok := tr.LastArgs(); !ok || last != n {
		t.Errorf("LastArgs() = %d, %v; want %d, true", last, ok, n)
	}
}

func TestRegister_ZeroCallsIsClean(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	tr := it.Register(doubler)

	if tr.WasCalled() {
		t.Error("WasCalled() = true before any call")
	}
	if fails := it.Verify(); fails != nil {
		t.Errorf("Forever entry must verify clean at zero calls, got %v", fails)
	}
}

func TestRegisterTimes_ExactThenForever(t *testing.T) {
	it := New[int, string]("Mode", Options{})

	it.RegisterTimes(func(int) string { return "a" }, Exactly(1)).
		Chain(func(int) string { return "b" }, Forever())

	got, err := it.Invoke(0)
	if err != nil {
		t.Fatalf("call 1 error: %v", err)
	}
	if got != "a" {
		t.Errorf("call 1 = %q, want \"a\"", got)
	}

	for i := 2; i <= 9; i++ {
		got, err := it.Invoke(0)
		if err != nil {
			t.Fatalf("call %d error: %v", i, err)
		}
		if got != "b" {
			t.Errorf("call %d = %q, want \"b\"", i, got)
		}
	}
}

func TestInvoke_Exhaustion(t *testing.T) {
	it := New[int, string]("Mode", Options{})

	it.RegisterTimes(func(int) string { return "a" }, Exactly(1)).
		Chain(func(int) string { return "b" }, Exactly(1))

	// Calls 1 and 2 succeed, dispatching to a then b.
	for i, want := range []string{"a", "b"} {
		got, err := it.Invoke(0)
		if err != nil {
			t.Fatalf("call %d error: %v", i+1, err)
		}
		if got != want {
			t.Errorf("call %d = %q, want %q", i+1, got, want)
		}
	}

	// Call 3 is past the last permitted repetition.
	_, err := it.Invoke(0)
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("call 3 error = %v, want *ExhaustedError", err)
	}
	if exhausted.Identity != "Mode" {
		t.Errorf("error identity = %q, want Mode", exhausted.Identity)
	}
	if exhausted.CallIndex != 3 {
		t.Errorf("error call index = %d, want 3", exhausted.CallIndex)
	}
}

func TestInvoke_ExhaustionFiresAfterBoundary(t *testing.T) {
	// The failure fires on the call after the last permitted one,
	// not on the boundary call itself.
	it := New[int, int]("Scale", Options{})
	it.RegisterTimes(doubler, Exactly(3))

	for i := 1; i <= 3; i++ {
		if _, err := it.Invoke(i); err != nil {
			t.Fatalf("boundary call %d must succeed, got %v", i, err)
		}
	}
	if _, err := it.Invoke(4); err == nil {
		t.Fatal("call 4 should be exhausted")
	}
}

func TestInvoke_ExhaustionIndependentOfStrictness(t *testing.T) {
	// Lenient mode governs the zero-registrations case only;
	// exhaustion errors regardless.
	it := New[int, int]("Scale", Options{Strict: false})
	it.RegisterTimes(doubler, Exactly(1))

	if _, err := it.Invoke(1); err != nil {
		t.Fatalf("call 1 error: %v", err)
	}
	_, err := it.Invoke(2)
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("lenient exhausted call error = %v, want *ExhaustedError", err)
	}
}

func TestInvoke_UnconfiguredStrict(t *testing.T) {
	it := New[int, int]("Scale", Options{Strict: true, Contract: "Calculator"})

	_, err := it.Invoke(1)
	var notConfigured *NotConfiguredError
	if !errors.As(err, &notConfigured) {
		t.Fatalf("error = %v, want *NotConfiguredError", err)
	}
	if notConfigured.Identity != "Scale" {
		t.Errorf("identity = %q, want Scale", notConfigured.Identity)
	}
	if notConfigured.Contract != "Calculator" {
		t.Errorf("contract = %q, want Calculator", notConfigured.Contract)
	}
}

func TestInvoke_UnconfiguredLenient(t *testing.T) {
	it := New[int, int]("Scale", Options{})

	got, err := it.Invoke(41)
	if err != nil {
		t.Fatalf("lenient unconfigured call error: %v", err)
	}
	if got != 0 {
		t.Errorf("lenient unconfigured call = %d, want zero value", got)
	}

	// Only the identity-level counter moves: no entry exists to own
	// tracking.
	if it.CallCount() != 0 {
		t.Errorf("CallCount() = %d, want 0", it.CallCount())
	}
	if it.UnconfiguredCalls() != 1 {
		t.Errorf("UnconfiguredCalls() = %d, want 1", it.UnconfiguredCalls())
	}
}

func TestRegister_ReplacesSequence(t *testing.T) {
	it := New[int, int]("Scale", Options{})

	it.RegisterTimes(func(int) int { return 1 }, Exactly(1)).
		Chain(func(int) int { return 2 }, Exactly(1))
	if _, err := it.Invoke(0); err != nil {
		t.Fatal(err)
	}

	// A bare Register starts a brand-new sequence and resets the
	// cursor; the old entries are discarded.
	it.Register(func(int) int { return 9 })
	for i := 0; i < 5; i++ {
		got, err := it.Invoke(0)
		if err != nil {
			t.Fatalf("call after re-register error: %v", err)
		}
		if got != 9 {
			t.Errorf("call after re-register = %d, want 9", got)
		}
	}
	if it.CallCount() != 5 {
		t.Errorf("CallCount() = %d, want 5 (old sequence discarded)", it.CallCount())
	}
}

func TestReset_PreservesEntries(t *testing.T) {
	it := New[int, string]("Mode", Options{})

	seq := it.RegisterTimes(func(int) string { return "a" }, Exactly(1)).
		Chain(func(int) string { return "b" }, Forever())

	if got, _ := it.Invoke(10); got != "a" {
		t.Fatalf("call 1 = %q, want \"a\"", got)
	}

	it.Reset()

	// Cursor is back at the first entry and its tracking is empty,
	// but both entries survived.
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d after reset, want 2", seq.Len())
	}
	if seq.Tracking(0).CallCount() != 0 {
		t.Errorf("entry 0 call count = %d after reset, want 0", seq.Tracking(0).CallCount())
	}
	if got, _ := it.Invoke(20); got != "a" {
		t.Errorf("first call after reset = %q, want \"a\" (cursor back to 0)", got)
	}
	if got, _ := it.Invoke(30); got != "b" {
		t.Errorf("second call after reset = %q, want \"b\" (chain preserved)", got)
	}
}

func TestVerify_EntryPolicies(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	it.RegisterTimes(doubler, Exactly(2))

	if fails := it.Verify(); len(fails) != 1 {
		t.Fatalf("unmet Exactly(2) should fail verification, got %v", fails)
	}

	it.Invoke(1)
	it.Invoke(2)
	if fails := it.Verify(); fails != nil {
		t.Errorf("satisfied Exactly(2) should verify clean, got %v", fails)
	}
}

func TestVerify_FailureDetail(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	it.RegisterTimes(doubler, Exactly(3))
	it.Invoke(1)

	fails := it.Verify()
	if len(fails) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(fails))
	}
	f := fails[0]
	if f.Identity != "Scale" {
		t.Errorf("failure identity = %q, want Scale", f.Identity)
	}
	if f.Actual != 1 {
		t.Errorf("failure actual = %d, want 1", f.Actual)
	}
	if !f.Expected.Verify(3) {
		t.Errorf("failure expected policy should be Exactly(3), got %s", f.Expected)
	}
	if f.String() == "" {
		t.Error("failure rendering should not be empty")
	}
}

func TestExpect_TotalCallConstraint(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	it.Register(doubler)
	it.Expect(AtLeast(2))

	it.Invoke(1)
	if fails := it.Verify(); len(fails) != 1 {
		t.Fatalf("AtLeast(2) with 1 call should fail, got %v", fails)
	}

	it.Invoke(2)
	if fails := it.Verify(); fails != nil {
		t.Errorf("AtLeast(2) with 2 calls should verify clean, got %v", fails)
	}
}

func TestExpect_Never(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	it.Register(doubler)
	it.Expect(Never())

	if fails := it.Verify(); fails != nil {
		t.Errorf("Never with no calls should verify clean, got %v", fails)
	}
	it.Invoke(1)
	if fails := it.Verify(); len(fails) != 1 {
		t.Errorf("Never with a call should fail, got %v", fails)
	}
}

func TestChain_BehindForeverPanics(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	seq := it.RegisterTimes(doubler, Forever())

	defer func() {
		if recover() == nil {
			t.Error("chaining behind a Forever entry should panic")
		}
	}()
	seq.Chain(doubler, Exactly(1))
}

func TestRegisterTimes_VerificationOnlyPolicyPanics(t *testing.T) {
	it := New[int, int]("Scale", Options{})

	for _, policy := range []Times{AtLeast(1), AtMost(1), Never(), Exactly(0)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("RegisterTimes with %s should panic", policy)
				}
			}()
			it.RegisterTimes(doubler, policy)
		}()
	}
}

func TestSeq_VerifyAndTotals(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	seq := it.RegisterTimes(doubler, Exactly(1)).
		Chain(doubler, Exactly(2))

	if seq.Verify() {
		t.Error("Verify() = true before any calls")
	}

	for i := 0; i < 3; i++ {
		if _, err := it.Invoke(i); err != nil {
			t.Fatalf("call %d error: %v", i+1, err)
		}
	}

	if !seq.Verify() {
		t.Error("Verify() = false after exactly 1+2 calls")
	}
	if seq.TotalCalls() != 3 {
		t.Errorf("TotalCalls() = %d, want 3", seq.TotalCalls())
	}
	if seq.Tracking(0).CallCount() != 1 || seq.Tracking(1).CallCount() != 2 {
		t.Errorf("per-entry counts = %d, %d; want 1, 2",
			seq.Tracking(0).CallCount(), seq.Tracking(1).CallCount())
	}
}

func TestMustInvoke(t *testing.T) {
	it := New[int, int]("Scale", Options{Strict: true})

	defer func() {
		if recover() == nil {
			t.Error("MustInvoke on an unconfigured strict member should panic")
		}
	}()
	it.MustInvoke(1)
}

func TestInvoke_VoidMember(t *testing.T) {
	it := New[string, Void]("Close", Options{})

	called := false
	it.Register(func(string) Void {
		called = true
		return Void{}
	})

	if _, err := it.Invoke("x"); err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if !called {
		t.Error("void callback not invoked")
	}
}

func TestInvoke_CallbackErrorsPassThrough(t *testing.T) {
	// A callback returning a failed result is an ordinary return
	// value; the runtime inspects nothing.
	sentinel := errors.New("backend down")
	it := New[int, error]("Ping", Options{})
	it.Register(func(int) error { return sentinel })

	got, err := it.Invoke(1)
	if err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if !errors.Is(got, sentinel) {
		t.Errorf("callback result = %v, want sentinel", got)
	}
}

func TestTracking_Reset(t *testing.T) {
	it := New[int, int]("Scale", Options{})
	tr := it.Register(doubler)

	it.Invoke(5)
	tr.Reset()

	if tr.WasCalled() {
		t.Error("WasCalled() = true after tracking reset")
	}
	if _, ok := tr.LastArgs(); ok {
		t.Error("LastArgs() ok = true after tracking reset")
	}
}
