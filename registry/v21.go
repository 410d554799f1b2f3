package registry

import (
	"sync"

	"github.com/quay/csafval/check"
)

var (
	v21Once sync.Once
	v21Reg  *Registry
)

// NewV21Registry returns the registry of conformance tests applicable to
// CSAF 2.1 documents: the v2.0 set plus 6.1.31 and the SSVC-related tests
// that CSAF 2.0 has no concept for.
func NewV21Registry() *Registry {
	v21Once.Do(func() {
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
		mustRegister(r, "6.1.31", check.Test61031DuplicateGroupMembership)
		mustRegister(r, "6.1.46", check.Test61046InvalidSSVC)
		mustRegister(r, "6.1.49", check.Test61049InconsistentSSVCTimestamp)

		r.RegisterPreset("basic", []string{"6.01.01", "6.01.02", "6.01.03"})
		r.RegisterPreset("extended", []string{
			"6.01.01", "6.01.02", "6.01.03", "6.01.34", "6.01.35",
			"6.1.01", "6.1.04", "6.1.09", "6.1.18", "6.1.31",
			"6.1.46", "6.1.49",
		})
		v21Reg = r
	})
	return v21Reg
}
