// Package v21 provides a CSAF 2.1 document tree and the accessor
// implementations that let package check's tests run against it.
//
// https://docs.oasis-open.org/csaf/csaf/v2.1/cs01/csaf-v2.1-cs01.html
package v21

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quay/csafval/accessor"
)

// Parse decodes a CSAF 2.1 document from r.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("v21: failed to unmarshal document: %w", err)
	}
	return doc, nil
}

// Document is a CSAF 2.1 document.
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

type documentMeta struct {
	Tracking tracking `json:"tracking"`
}

// tracking contains information used to track the CSAF document through its
// lifecycle.
type tracking struct {
	StatusField   string     `json:"status"`
	RevisionsData []revision `json:"revision_history"`
}

var _ accessor.Tracking = tracking{}

func (t tracking) Status() accessor.TrackingStatus { return accessor.TrackingStatus(t.StatusField) }

func (t tracking) RevisionHistory() []accessor.Revision {
	out := make([]accessor.Revision, len(t.RevisionsData))
	for i, r := range t.RevisionsData {
		out[i] = r
	}
	return out
}

// revision is a single entry in a document's revision history.
type revision struct {
	DateField    string `json:"date"`
	NumberField  string `json:"number"`
	SummaryField string `json:"summary"`
}

var _ accessor.Revision = revision{}

func (r revision) Date() string    { return r.DateField }
func (r revision) Number() string  { return r.NumberField }
func (r revision) Summary() string { return r.SummaryField }
