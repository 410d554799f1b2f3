package registry

import (
	"sync"

	"github.com/quay/csafval/check"
)

var (
	v20Once sync.Once
	v20Reg  *Registry
)

// NewV20Registry returns the registry of conformance tests applicable to
// CSAF 2.0 documents. The registry is built once and shared; it has no
// mutable state once returned, so sharing is safe.
func NewV20Registry() *Registry {
	v20Once.Do(func() {
		r := New()
		mustRegister(r, "6.01.01", check.Test60101MissingDefinition)
		mustRegister(r, "6.01.02", check.Test60102MultipleDefinition)
		mustRegister(r, "6.01.03", check.Test60103CircularDefinition)
		mustRegister(r, "6.01.34", check.Test60134BranchRecursionDepth)
		mustRegister(r, "6.01.35", check.Test60135ContradictingRemediations)
		mustRegister(r, "6.1.01", check.Test61001MissingCVE)
		mustRegister(r, "6.1.04", check.Test61004MultipleGroupDefinition)
		mustRegister(r, "6.1.09", check.Test61009RemediationWithoutProductReference)
		mustRegister(r, "6.1.18", check.Test61018RemediationReferencingEmptyGroup)
		// 6.1.46 and 6.1.49 are not registered: CSAF 2.0 has no SSVC
		// provider concept. Requesting them by id against this registry
		// falls through to the orchestrator's "missing implementation"
		// Result, not a new error path.

		r.RegisterPreset("basic", []string{"6.01.01", "6.01.02", "6.01.03"})
		r.RegisterPreset("extended", []string{
			"6.01.01", "6.01.02", "6.01.03", "6.01.34", "6.01.35",
			"6.1.01", "6.1.04", "6.1.09", "6.1.18",
		})
		v20Reg = r
	})
	return v20Reg
}

func mustRegister(r *Registry, id string, fn check.Func) {
	if err := r.Register(id, fn); err != nil {
		panic(err)
	}
}
