// Package loader decodes raw CSAF JSON into a versioned document tree,
// auto-detecting the schema revision from the document's csaf_version
// field, and optionally pre-validates the raw bytes against a CSAF JSON
// Schema before a typed document is ever constructed.
//
// This is the concrete home for the external accessor-producing
// collaborator the core assumes exists: the core itself never does file
// I/O or schema-level validation.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xeipuuv/gojsonschema"

	"github.com/quay/csafval"
	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/v20"
	"github.com/quay/csafval/v21"
)

// versionProbe reads just enough of a document to determine its schema
// revision, without committing to a full v20 or v21 decode.
type versionProbe struct {
	Document struct {
		CSAFVersion string `json:"csaf_version"`
	} `json:"document"`
}

// Load decodes raw as a CSAF document, dispatching to the v20 or v21
// package based on the document.csaf_version field. It returns a
// *csafval.Error with Kind [csafval.ErrDecode] wrapped around the
// underlying cause on any failure.
func Load(raw []byte) (accessor.Document, error) {
	var probe versionProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, &csafval.Error{Op: "loader.Load", Kind: csafval.ErrDecode, Message: "could not read csaf_version", Inner: err}
	}

	switch probe.Document.CSAFVersion {
	case "2.0":
		doc, err := v20.Parse(bytes.NewReader(raw))
		if err != nil {
			return nil, &csafval.Error{Op: "loader.Load", Kind: csafval.ErrDecode, Inner: err}
		}
		return doc, nil
	case "2.1":
		doc, err := v21.Parse(bytes.NewReader(raw))
		if err != nil {
			return nil, &csafval.Error{Op: "loader.Load", Kind: csafval.ErrDecode, Inner: err}
		}
		return doc, nil
	default:
		return nil, &csafval.Error{
			Op:      "loader.Load",
			Kind:    csafval.ErrDecode,
			Message: fmt.Sprintf("unsupported or missing csaf_version: %q", probe.Document.CSAFVersion),
		}
	}
}

// LoadReader is a convenience wrapper over Load for callers holding an
// io.Reader (a file, stdin, an HTTP body) rather than a []byte.
func LoadReader(r io.Reader) (accessor.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &csafval.Error{Op: "loader.LoadReader", Kind: csafval.ErrDecode, Inner: err}
	}
	return Load(raw)
}

// ValidateSchema checks raw against the JSON Schema read from schemaPath,
// returning the schema validator's result errors formatted as strings. A
// nil, nil return means the document is schema-valid. This step is
// optional: the core's tests never depend on it having run, per spec.md's
// "schema-level validation assumed already performed" non-goal.
func ValidateSchema(raw []byte, schemaPath string) ([]string, error) {
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("loader: schema validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	out := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		out = append(out, e.String())
	}
	return out, nil
}
