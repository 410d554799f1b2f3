package csafval

import (
	"errors"
	"strings"
)

// Error is the csafval fatal-condition domain type.
//
// Errors coming from csafval components should be able to be inspected as
// ([errors.As]) an *Error at some point in the error chain. An *Error always
// represents a programmer or environment condition (spec §7 condition 2):
// an undecodable document, an unknown preset name, or accessor data that
// violates a documented invariant. It is never used for a conformance-test
// finding; those are reported as *check.Finding values alongside a nil
// error.
//
// Components should create an Error at the point the condition is detected
// and intermediate layers should not wrap in another Error except to add
// additional [ErrorKind] information: use [fmt.Errorf] with a "%w" verb in
// preference to creating a containing Error.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

// Assert this implements all the cool features.
var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrUnknownTest, ErrDecode, ErrInvariant:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is].
//
// It compares the error kind. Callers should compare against a declared
// [ErrorKind] over a specific error.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents classes of fatal conditions to be checked against.
type ErrorKind string

// Defined error kinds.
var (
	// ErrUnknownTest is reported when a caller requests a preset that the
	// relevant revision's registry does not define. An unregistered single
	// test ID is not an error: validate.ValidateByTest reports it as a
	// StatusMissing Result.
	ErrUnknownTest = ErrorKind("unknown test")
	// ErrDecode is reported when a document cannot be parsed into a v20 or
	// v21 document tree.
	ErrDecode = ErrorKind("decode")
	// ErrInvariant is reported when accessor data violates a documented
	// invariant that schema validation should already have ruled out, e.g.
	// an unrecognized remediation category string.
	ErrInvariant = ErrorKind("invariant")
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
