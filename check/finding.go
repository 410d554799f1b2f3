// Package check is the conformance test library: one pure function per
// test, each with signature func(accessor.Document) *Finding, returning nil
// on success. Tests never mutate the document and never log; they return on
// the first failure found rather than enumerating every violation.
package check

import (
	"fmt"

	"github.com/quay/csafval/accessor"
)

// Finding is a structured validation result: an expected, non-fatal
// conformance failure, distinct from a fatal *csafval.Error.
type Finding struct {
	// TestID is the conformance test identifier that produced the finding,
	// e.g. "6.01.03".
	TestID string
	// Message is a human-readable, stable-wording description.
	Message string
	// InstancePath is a JSON Pointer into the document.
	InstancePath string
}

// Error implements the error interface so a Finding can be handled through
// ordinary Go error-returning code where convenient, without being confused
// for a fatal *csafval.Error: callers that care about the distinction check
// the concrete type, not errors.Is/As against some shared sentinel.
func (f *Finding) Error() string {
	return fmt.Sprintf("%s: %s (%s)", f.TestID, f.Message, f.InstancePath)
}

// Func is the shape every registered conformance test satisfies.
type Func func(doc accessor.Document) *Finding
