// Package v20 provides a CSAF 2.0 document tree and the accessor
// implementations that let package check's tests run against it.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html
package v20

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quay/csafval/accessor"
)

// Parse decodes a CSAF 2.0 document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("v20: failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// Document is a CSAF 2.0 document.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#321-document-property
type Document struct {
	DocumentMeta    documentMeta    `json:"document"`
	ProductTreeData *productTree    `json:"product_tree"`
	VulnData        []vulnerability `json:"vulnerabilities"`
}

var _ accessor.Document = (*Document)(nil)

// Tracking implements [accessor.Document].
func (d *Document) Tracking() accessor.Tracking { return d.DocumentMeta.Tracking }

// Vulnerabilities implements [accessor.Document].
func (d *Document) Vulnerabilities() []accessor.Vulnerability {
	out := make([]accessor.Vulnerability, len(d.VulnData))
	for i := range d.VulnData {
		out[i] = &d.VulnData[i]
	}
	return out
}

// ProductTree implements [accessor.Document].
func (d *Document) ProductTree() (accessor.ProductTree, bool) {
	if d.ProductTreeData == nil {
		return nil, false
	}
	return d.ProductTreeData, true
}

// documentMeta contains metadata about the document itself.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#321-document-property
type documentMeta struct {
	Tracking tracking `json:"tracking"`
}

// tracking contains information used to track the CSAF document through its
// lifecycle.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#32112-document-property---tracking
type tracking struct {
	StatusField   string     `json:"status"`
	RevisionsData []revision `json:"revision_history"`
}

var _ accessor.Tracking = tracking{}

// Status implements [accessor.Tracking].
func (t tracking) Status() accessor.TrackingStatus { return accessor.TrackingStatus(t.StatusField) }

// RevisionHistory implements [accessor.Tracking].
func (t tracking) RevisionHistory() []accessor.Revision {
	out := make([]accessor.Revision, len(t.RevisionsData))
	for i, r := range t.RevisionsData {
		out[i] = r
	}
	return out
}

// revision is a single entry in a document's revision history.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#321113-document-property---tracking---revision-history
type revision struct {
	DateField    string `json:"date"`
	NumberField  string `json:"number"`
	SummaryField string `json:"summary"`
}

var _ accessor.Revision = revision{}

func (r revision) Date() string    { return r.DateField }
func (r revision) Number() string  { return r.NumberField }
func (r revision) Summary() string { return r.SummaryField }
