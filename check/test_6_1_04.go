package check

import (
	"fmt"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/traverse"
)

// Test61004MultipleGroupDefinition is test 6.1.04 ("Multiple Definition of
// Product Group ID"): a product_group's group_id must be unique across the
// whole document, mirroring 6.01.02's product-ID uniqueness check.
func Test61004MultipleGroupDefinition(doc accessor.Document) *Finding {
	tree, ok := doc.ProductTree()
	if !ok {
		return nil
	}
	var groupIDs []string
	for _, g := range tree.ProductGroups() {
		groupIDs = append(groupIDs, g.GroupID())
	}
	dups := traverse.FindDuplicates(groupIDs)
	if len(dups) == 0 {
		return nil
	}
	return &Finding{
		TestID:       "6.1.04",
		Message:      fmt.Sprintf("Multiple definition(s) of product group ID: %v", dups),
		InstancePath: "/product_tree/product_groups",
	}
}
