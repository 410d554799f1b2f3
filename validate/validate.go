// Package validate is the orchestrator: it runs a registry's conformance
// tests against a document, by preset or by individual test ID, and
// collects the resulting findings.
//
// Validation is single-threaded and synchronous: no test suspends or
// performs I/O, so the orchestrator runs tests sequentially and in preset
// order, keeping finding order deterministic. The context passed in is used
// only for cancellation between test boundaries and for attaching
// structured-logging fields; no test is cancellable mid-execution.
package validate

import (
	"context"

	"github.com/quay/zlog"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/check"
	"github.com/quay/csafval/registry"
)

// Status is a test's terminal or in-flight state.
type Status string

// Defined statuses.
const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	// StatusMissing means the requested test ID has no registered
	// implementation.
	StatusMissing Status = "missing"
)

// Result is the outcome of running a single test.
type Result struct {
	TestID  string
	Status  Status
	Finding *check.Finding
}

// ValidateByTest runs the single test identified by id against doc and
// returns its Result. An unregistered id yields a StatusMissing Result
// rather than an error: a missing implementation is a recognized outcome
// of the registry/orchestrator contract, not a fatal condition.
func ValidateByTest(ctx context.Context, reg *registry.Registry, doc accessor.Document, id string) Result {
	ctx = zlog.ContextWithValues(ctx, "test_id", id)
	fn, ok := reg.Lookup(id)
	if !ok {
		zlog.Warn(ctx).Msg("no implementation registered for test id")
		return Result{TestID: id, Status: StatusMissing}
	}

	zlog.Debug(ctx).Msg("running test")
	finding := fn(doc)
	if finding == nil {
		zlog.Debug(ctx).Msg("test passed")
		return Result{TestID: id, Status: StatusPassed}
	}
	zlog.Warn(ctx).
		Str("message", finding.Message).
		Str("instance_path", finding.InstancePath).
		Msg("test failed")
	return Result{TestID: id, Status: StatusFailed, Finding: finding}
}

// ValidateByPreset runs every test in the named preset, in order, and
// collects their Results. An unknown preset name yields a nil slice and
// false; the caller distinguishes "preset doesn't exist" from "preset ran
// with zero tests" this way.
//
// The orchestrator may abandon the remainder of a preset at any test
// boundary via ctx cancellation; a canceled context stops before running
// the next test and returns the Results collected so far.
func ValidateByPreset(ctx context.Context, reg *registry.Registry, doc accessor.Document, preset string) ([]Result, bool) {
	ids, ok := reg.Preset(preset)
	if !ok {
		return nil, false
	}
	ctx = zlog.ContextWithValues(ctx, "preset", preset)
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			zlog.Info(ctx).Err(err).Msg("validation canceled")
			break
		}
		results = append(results, ValidateByTest(ctx, reg, doc, id))
	}
	return results, true
}
