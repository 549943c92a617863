package double

import (
	"fmt"
	"reflect"
)

// Void is the return shape of void-shaped members.
type Void = struct{}

// KeyValue is the setter argument shape of an indexed-access member:
// the key inside the brackets and the value being assigned.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// IndexerDispatcher wraps an indexed-access member. It is keyed by
// the key type used inside the brackets: each key type gets its own
// lazily created KeyedRuntime, so differently keyed accesses track
// independently. Use ForKeyType to obtain the typed runtime.
type IndexerDispatcher struct {
	name     string
	opts     Options
	order    []reflect.Type
	runtimes map[reflect.Type]any
	walkers  map[reflect.Type]counter
}

// NewIndexerDispatcher constructs a dispatcher for the named indexer
// identity.
func NewIndexerDispatcher(name string, opts Options) *IndexerDispatcher {
	return &IndexerDispatcher{
		name:     name,
		opts:     opts,
		runtimes: make(map[reflect.Type]any),
		walkers:  make(map[reflect.Type]counter),
	}
}

// ForKeyType returns the runtime for key type K with value type V,
// creating it on first access and returning the same instance on
// subsequent accesses for the same K. Panics if K was previously
// instantiated with a different value shape.
func ForKeyType[K comparable, V any](d *IndexerDispatcher) *KeyedRuntime[K, V] {
	key := reflect.TypeFor[K]()
	if rt, ok := d.runtimes[key]; ok {
		kr, ok := rt.(*KeyedRuntime[K, V])
		if !ok {
			panic(fmt.Sprintf("double: %s[%s]: conflicting value shapes", d.name, key))
		}
		return kr
	}
	kr := newKeyedRuntime[K, V](fmt.Sprintf("%s[%s]", d.name, key), d.opts)
	d.order = append(d.order, key)
	d.runtimes[key] = kr
	d.walkers[key] = kr
	return kr
}

// Name returns the indexer identity name.
func (d *IndexerDispatcher) Name() string {
	return d.name
}

// Verify collects unmet expectations across every instantiated key
// type, in first-access order.
func (d *IndexerDispatcher) Verify() []Failure {
	var fails []Failure
	for _, key := range d.order {
		fails = append(fails, d.walkers[key].Verify()...)
	}
	return fails
}

// Reset resets every instantiated runtime. Backing stores are
// preserved: seeded values are configuration, like registered
// behaviors.
func (d *IndexerDispatcher) Reset() {
	for _, key := range d.order {
		d.walkers[key].Reset()
	}
}

// TotalCalls returns the sum of recorded getter and setter calls
// across every key type, computed on demand.
func (d *IndexerDispatcher) TotalCalls() int {
	total := 0
	for _, key := range d.order {
		total += d.walkers[key].CallCount()
	}
	return total
}

// KeyedRuntime is the per-key-type runtime of an indexer: one
// interceptor for indexed reads, one for indexed writes, and a
// backing key-value store consulted when a lenient-mode read reaches
// an unconfigured getter. Unconfigured lenient writes land in the
// backing store, so a test can use the double as a plain map without
// registering anything.
type KeyedRuntime[K comparable, V any] struct {
	// Getter intercepts indexed reads. Its argument is the key.
	Getter *Interceptor[K, V]

	// Setter intercepts indexed writes. Its argument carries the
	// key and the assigned value.
	Setter *Interceptor[KeyValue[K, V], Void]

	name    string
	backing map[K]V
}

func newKeyedRuntime[K comparable, V any](name string, opts Options) *KeyedRuntime[K, V] {
	kr := &KeyedRuntime[K, V]{
		name:    name,
		Getter:  New[K, V](name+".get", opts),
		Setter:  New[KeyValue[K, V], Void](name+".set", opts),
		backing: make(map[K]V),
	}
	kr.Getter.setFallback(func(k K) (V, bool) {
		v, ok := kr.backing[k]
		return v, ok
	})
	kr.Setter.setFallback(func(kv KeyValue[K, V]) (Void, bool) {
		kr.backing[kv.Key] = kv.Value
		return Void{}, true
	})
	return kr
}

// Get dispatches an indexed read through the getter interceptor.
func (r *KeyedRuntime[K, V]) Get(key K) (V, error) {
	return r.Getter.Invoke(key)
}

// Put dispatches an indexed write through the setter interceptor.
func (r *KeyedRuntime[K, V]) Put(key K, value V) error {
	_, err := r.Setter.Invoke(KeyValue[K, V]{Key: key, Value: value})
	return err
}

// Seed stores a value in the backing store without going through the
// setter interceptor. Test setup uses it to preload indexed state.
func (r *KeyedRuntime[K, V]) Seed(key K, value V) {
	r.backing[key] = value
}

// Stored returns the backing-store value for the key, bypassing the
// getter interceptor.
func (r *KeyedRuntime[K, V]) Stored(key K) (V, bool) {
	v, ok := r.backing[key]
	return v, ok
}

// Name returns the per-key-type identity name.
func (r *KeyedRuntime[K, V]) Name() string {
	return r.name
}

// Verify collects unmet expectations from the getter and setter.
func (r *KeyedRuntime[K, V]) Verify() []Failure {
	return append(r.Getter.Verify(), r.Setter.Verify()...)
}

// Reset resets getter and setter tracking and cursors. The backing
// store is preserved; it is configured state, not tracking.
func (r *KeyedRuntime[K, V]) Reset() {
	r.Getter.Reset()
	r.Setter.Reset()
}

// CallCount returns recorded getter plus setter calls.
func (r *KeyedRuntime[K, V]) CallCount() int {
	return r.Getter.CallCount() + r.Setter.CallCount()
}
