package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quay/csafval/accessor"
)

// Test61031DuplicateGroupMembership is test 6.1.31 ("Multiple Definitions
// of the Same Product Group"): two distinct product_groups must not name
// the exact same set of product_ids. Registered for CSAF 2.1 documents only
// (see registry); see DESIGN.md for why this checks membership rather than
// a literal "branch level" as spec prose suggested — CSAF's product_groups
// are document-scoped in both revisions, not nested per branch.
func Test61031DuplicateGroupMembership(doc accessor.Document) *Finding {
	tree, ok := doc.ProductTree()
	if !ok {
		return nil
	}
	seen := make(map[string]string) // membership signature -> first group_id that defined it
	for _, g := range tree.ProductGroups() {
		members := append([]string(nil), g.ProductIDs()...)
		sort.Strings(members)
		sig := strings.Join(members, ",")
		if prior, dup := seen[sig]; dup {
			return &Finding{
				TestID:       "6.1.31",
				Message:      fmt.Sprintf("Product groups %q and %q define the same product membership", prior, g.GroupID()),
				InstancePath: "/product_tree/product_groups",
			}
		}
		seen[sig] = g.GroupID()
	}
	return nil
}
