package double

import (
	"fmt"
	"reflect"
)

// counter is the cross-runtime read surface a dispatcher needs from
// the heterogeneous interceptors it creates.
type counter interface {
	Verifier
	CallCount() int
}

// TypeDispatcher wraps one logical member parameterized by a type
// argument supplied at the call site. Each type argument gets its
// own lazily created interceptor runtime, so instantiations track
// independently. Use ForType to obtain the typed runtime.
type TypeDispatcher struct {
	name     string
	opts     Options
	order    []reflect.Type
	runtimes map[reflect.Type]any
	walkers  map[reflect.Type]counter
}

// NewTypeDispatcher constructs a dispatcher for the named generic
// member identity.
func NewTypeDispatcher(name string, opts Options) *TypeDispatcher {
	return &TypeDispatcher{
		name:     name,
		opts:     opts,
		runtimes: make(map[reflect.Type]any),
		walkers:  make(map[reflect.Type]counter),
	}
}

// ForType returns the interceptor runtime for type argument T,
// creating it on first access and returning the same instance for
// every subsequent access with the same T. A and R are the member's
// parameter and return shapes for that instantiation; the generated
// member supplies them statically. Panics if T was previously
// instantiated with different shapes; that is a generation bug, not
// a test mistake.
func ForType[T, A, R any](d *TypeDispatcher) *Interceptor[A, R] {
	key := reflect.TypeFor[T]()
	if rt, ok := d.runtimes[key]; ok {
		it, ok := rt.(*Interceptor[A, R])
		if !ok {
			panic(fmt.Sprintf("double: %s[%s]: conflicting instantiation shapes", d.name, key))
		}
		return it
	}
	it := New[A, R](fmt.Sprintf("%s[%s]", d.name, key), d.opts)
	d.order = append(d.order, key)
	d.runtimes[key] = it
	d.walkers[key] = it
	return it
}

// Name returns the generic member identity name.
func (d *TypeDispatcher) Name() string {
	return d.name
}

// Verify collects unmet expectations across every instantiated type,
// in first-access order.
func (d *TypeDispatcher) Verify() []Failure {
	var fails []Failure
	for _, key := range d.order {
		fails = append(fails, d.walkers[key].Verify()...)
	}
	return fails
}

// Reset resets every instantiated runtime.
func (d *TypeDispatcher) Reset() {
	for _, key := range d.order {
		d.walkers[key].Reset()
	}
}

// TotalCalls returns the sum of recorded calls across every
// instantiated type. This is a derived read computed on demand; the
// dispatcher stores no cross-type aggregate.
func (d *TypeDispatcher) TotalCalls() int {
	total := 0
	for _, key := range d.order {
		total += d.walkers[key].CallCount()
	}
	return total
}
