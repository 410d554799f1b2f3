package check

import (
	"fmt"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/traverse"
)

// measuresSet and fixStatesSet are the two mutually-exclusive-per-product
// remediation category groups. none_available belongs to both, so two
// none_available remediations on the same product conflict with each
// other by design.
var measuresSet = map[accessor.RemediationCategory]bool{
	accessor.NoneAvailable: true,
	accessor.Workaround:    true,
	accessor.Mitigation:    true,
}

var fixStatesSet = map[accessor.RemediationCategory]bool{
	accessor.NoneAvailable: true,
	accessor.NoFixPlanned:  true,
	accessor.FixPlanned:    true,
	accessor.OptionalPatch: true,
	accessor.VendorFix:     true,
}

// Test60135ContradictingRemediations is test 6.01.35 ("Contradicting
// Remediations"): no product may carry two remediation categories that
// both fall in the measures set or both fall in the fix-states set.
func Test60135ContradictingRemediations(doc accessor.Document) *Finding {
	tree, hasTree := doc.ProductTree()

	for vi, v := range doc.Vulnerabilities() {
		categoriesByProduct := make(map[string][]accessor.RemediationCategory)

		for _, rem := range v.Remediations() {
			var affected []string
			if ids, ok := rem.ProductIDs(); ok {
				affected = append(affected, ids...)
			}
			if groupIDs, ok := rem.GroupIDs(); ok && hasTree {
				if resolved, ok := traverse.ResolveProductGroups(tree, groupIDs); ok {
					affected = append(affected, resolved...)
				}
			}
			cat := rem.Category()
			for _, productID := range affected {
				existing := categoriesByProduct[productID]
				for _, prior := range existing {
					if (measuresSet[prior] && measuresSet[cat]) || (fixStatesSet[prior] && fixStatesSet[cat]) {
						return &Finding{
							TestID: "6.01.35",
							Message: fmt.Sprintf(
								"Contradicting remediations for product %q: %q and %q",
								productID, prior, cat,
							),
							InstancePath: fmt.Sprintf("/vulnerabilities/%d/remediations", vi),
						}
					}
				}
				categoriesByProduct[productID] = append(existing, cat)
			}
		}
	}
	return nil
}
