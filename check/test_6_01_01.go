package check

import (
	"fmt"
	"sort"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/traverse"
)

// Test60101MissingDefinition is test 6.01.01 ("Missing Definition of
// Product ID"): every referenced product ID must resolve to a definition.
func Test60101MissingDefinition(doc accessor.Document) *Finding {
	definitions := make(map[string]struct{})
	for _, id := range traverse.GatherProductDefinitions(doc) {
		definitions[id] = struct{}{}
	}
	references := traverse.GatherProductReferences(doc)

	var missing []string
	for id := range references {
		if _, ok := definitions[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &Finding{
		TestID:       "6.01.01",
		Message:      fmt.Sprintf("Missing definition(s) of product ID: %v", missing),
		InstancePath: "/product_tree",
	}
}
