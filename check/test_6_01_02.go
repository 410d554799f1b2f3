package check

import (
	"fmt"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/traverse"
)

// Test60102MultipleDefinition is test 6.01.02 ("Multiple Definition of
// Product ID"): a product ID must not be defined more than once across all
// definition sites.
func Test60102MultipleDefinition(doc accessor.Document) *Finding {
	dups := traverse.FindDuplicates(traverse.GatherProductDefinitions(doc))
	if len(dups) == 0 {
		return nil
	}
	return &Finding{
		TestID:       "6.01.02",
		Message:      fmt.Sprintf("Multiple definition(s) of product ID: %v", dups),
		InstancePath: "/product_tree",
	}
}
