// Package registry maps conformance test identifiers to test functions and
// preset names to ordered test ID lists, one registry per CSAF revision.
//
// Grounded on quay-claircore's toolkit/registry package: sync.RWMutex
// guarding a name -> description map, static after construction, with
// sorted name listing. Simplified from that package's generic,
// reflect-keyed, URN-validated design because there is only ever one
// "plugin" type here (check.Func), so the type-parameterized registry
// keyed by reflect.Type buys nothing.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/quay/csafval/check"
)

// Registry is a static-after-construction map of test ID to test function,
// plus named presets over those IDs.
type Registry struct {
	mu      sync.RWMutex
	tests   map[string]check.Func
	presets map[string][]string
}

// New returns an empty, mutable Registry. Callers build it up with Register
// and RegisterPreset, then treat it as read-only; Registry's own locking
// makes concurrent reads safe regardless.
func New() *Registry {
	return &Registry{
		tests:   make(map[string]check.Func),
		presets: make(map[string][]string),
	}
}

// ErrAlreadyRegistered is returned by Register when a test ID is registered
// twice.
var ErrAlreadyRegistered = fmt.Errorf("registry: test id already registered")

// Register adds fn under id. It is an error to register the same id twice.
func (r *Registry) Register(id string, fn check.Func) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tests[id]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, id)
	}
	r.tests[id] = fn
	return nil
}

// RegisterPreset associates a preset name with an ordered list of test IDs.
// Ordering is preserved; ids need not already be registered (the
// orchestrator resolves that at run time so that a preset definition and
// test registration can happen in either order during package init).
func (r *Registry) RegisterPreset(name string, ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[name] = append([]string(nil), ids...)
}

// Lookup returns the test function registered for id.
func (r *Registry) Lookup(id string) (check.Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.tests[id]
	return fn, ok
}

// Preset returns the ordered test ID list for name. The built-in "full"
// preset is computed on demand as every registered ID, sorted, rather than
// hand-maintained, so newly-registered tests are automatically included.
func (r *Registry) Preset(name string) ([]string, bool) {
	if name == "full" {
		return r.allSorted(), true
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids, ok := r.presets[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), ids...), true
}

func (r *Registry) allSorted() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.tests))
	for id := range r.tests {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
