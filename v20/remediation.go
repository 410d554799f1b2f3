package v20

import (
	"encoding/json"
	"fmt"

	"github.com/quay/csafval/accessor"
)

// remediation describes how to remediate a vulnerability for a set of
// products.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#32312-vulnerabilities-property---remediations
type remediation struct {
	CategoryField     string   `json:"category"`
	ProductIDsData    []string `json:"product_ids"`
	HasProductIDs     bool     `json:"-"`
	GroupIDsData      []string `json:"group_ids"`
	HasGroupIDs       bool     `json:"-"`
}

var _ accessor.Remediation = (*remediation)(nil)

func (r *remediation) UnmarshalJSON(data []byte) error {
	type alias remediation
	var probe struct {
		ProductIDs json.RawMessage `json:"product_ids"`
		GroupIDs   json.RawMessage `json:"group_ids"`
		*alias
	}
	probe.alias = (*alias)(r)
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	r.HasProductIDs = probe.ProductIDs != nil
	r.HasGroupIDs = probe.GroupIDs != nil
	if r.HasProductIDs {
		if err := json.Unmarshal(probe.ProductIDs, &r.ProductIDsData); err != nil {
			return err
		}
	}
	if r.HasGroupIDs {
		if err := json.Unmarshal(probe.GroupIDs, &r.GroupIDsData); err != nil {
			return err
		}
	}
	return nil
}

// Category implements [accessor.Remediation].
//
// CSAF 2.0's category enumeration is a subset of the unified (2.1-shaped)
// one; v20RemediationCategories is a total projection from the raw string.
// An unrecognized value is a programmer/environment error: schema
// validation would already have rejected it, so this panics rather than
// returning a zero value a test could silently misinterpret.
func (r *remediation) Category() accessor.RemediationCategory {
	cat, ok := v20RemediationCategories[r.CategoryField]
	if !ok {
		panic(fmt.Sprintf("v20: unrecognized remediation category %q", r.CategoryField))
	}
	return cat
}

func (r *remediation) ProductIDs() ([]string, bool) {
	if !r.HasProductIDs {
		return nil, false
	}
	return r.ProductIDsData, true
}

func (r *remediation) GroupIDs() ([]string, bool) {
	if !r.HasGroupIDs {
		return nil, false
	}
	return r.GroupIDsData, true
}

// v20RemediationCategories projects CSAF 2.0's remediation category
// strings into the unified (CSAF 2.1-shaped) enumeration. CSAF 2.0's
// category names match the 2.1 names one-to-one; 2.1 only adds
// no_fix_available as a new value, which 2.0 documents cannot produce.
var v20RemediationCategories = map[string]accessor.RemediationCategory{
	"vendor_fix":      accessor.VendorFix,
	"mitigation":      accessor.Mitigation,
	"workaround":      accessor.Workaround,
	"none_available":  accessor.NoneAvailable,
	"no_fix_planned":  accessor.NoFixPlanned,
	"fix_planned":     accessor.FixPlanned,
	"optional_patch":  accessor.OptionalPatch,
}
