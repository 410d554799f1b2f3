package check

import (
	"fmt"

	"github.com/quay/csafval/accessor"
)

// Test61009RemediationWithoutProductReference is test 6.1.09 ("Remediation
// without Product Reference"): a remediation whose product_ids and
// group_ids are both absent can never apply to anything.
func Test61009RemediationWithoutProductReference(doc accessor.Document) *Finding {
	for vi, v := range doc.Vulnerabilities() {
		for ri, rem := range v.Remediations() {
			_, hasProducts := rem.ProductIDs()
			_, hasGroups := rem.GroupIDs()
			if !hasProducts && !hasGroups {
				return &Finding{
					TestID:       "6.1.09",
					Message:      "Remediation has neither product_ids nor group_ids",
					InstancePath: fmt.Sprintf("/vulnerabilities/%d/remediations/%d", vi, ri),
				}
			}
		}
	}
	return nil
}
