package v21

import (
	"encoding/json"
	"fmt"

	"github.com/quay/csafval/accessor"
)

// remediation describes how to remediate a vulnerability for a set of
// products.
//
// https://docs.oasis-open.org/csaf/csaf/v2.1/cs01/csaf-v2.1-cs01.html#32312-vulnerabilities-property---remediations
type remediation struct {
	CategoryField  string   `json:"category"`
	ProductIDsData []string `json:"product_ids"`
	HasProductIDs  bool     `json:"-"`
	GroupIDsData   []string `json:"group_ids"`
	HasGroupIDs    bool     `json:"-"`
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
// CSAF 2.1's category enumeration is already the unified one the accessor
// package exposes, so this validates membership rather than projecting
// across enums. An unrecognized value is a programmer/environment error:
// schema validation would already have rejected it.
func (r *remediation) Category() accessor.RemediationCategory {
	if !v21RemediationCategories[r.CategoryField] {
		panic(fmt.Sprintf("v21: unrecognized remediation category %q", r.CategoryField))
	}
	return accessor.RemediationCategory(r.CategoryField)
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

// v21RemediationCategories is the full CSAF 2.1 remediation category set,
// including no_fix_available which has no CSAF 2.0 counterpart.
var v21RemediationCategories = map[string]bool{
	string(accessor.VendorFix):      true,
	string(accessor.Mitigation):     true,
	string(accessor.Workaround):     true,
	string(accessor.NoneAvailable):  true,
	string(accessor.NoFixPlanned):   true,
	string(accessor.FixPlanned):     true,
	string(accessor.OptionalPatch):  true,
	string(accessor.NoFixAvailable): true,
}
