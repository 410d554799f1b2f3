package check

import (
	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/traverse"
)

// maxBranchDepth is the recursion bound test 6.01.34 enforces. Depth counts
// branch nesting, not product leaves.
const maxBranchDepth = 30

// Test60134BranchRecursionDepth is test 6.01.34 ("Branch Recursion Depth"):
// no root-to-leaf path in the product tree's branch forest may exceed
// maxBranchDepth.
func Test60134BranchRecursionDepth(doc accessor.Document) *Finding {
	tree, ok := doc.ProductTree()
	if !ok {
		return nil
	}
	if traverse.CheckBranchDepthTree(tree, maxBranchDepth) {
		return nil
	}
	return &Finding{
		TestID:       "6.01.34",
		Message:      "Branches are nested too deeply",
		InstancePath: "/product_tree/branches",
	}
}
