package check

import (
	"fmt"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/traverse"
)

// Test61018RemediationReferencingEmptyGroup is test 6.1.18 ("Remediation
// Referencing an Empty Group"): a remediation's group_ids must each name a
// product_group whose own product_ids set resolves to at least one product.
func Test61018RemediationReferencingEmptyGroup(doc accessor.Document) *Finding {
	tree, hasTree := doc.ProductTree()

	for vi, v := range doc.Vulnerabilities() {
		for ri, rem := range v.Remediations() {
			groupIDs, ok := rem.GroupIDs()
			if !ok {
				continue
			}
			for _, groupID := range groupIDs {
				var resolved []string
				if hasTree {
					resolved, _ = traverse.ResolveProductGroups(tree, []string{groupID})
				}
				if len(resolved) == 0 {
					return &Finding{
						TestID:       "6.1.18",
						Message:      fmt.Sprintf("Remediation references group %q with no product IDs", groupID),
						InstancePath: fmt.Sprintf("/vulnerabilities/%d/remediations/%d/group_ids", vi, ri),
					}
				}
			}
		}
	}
	return nil
}
