package check

import (
	"fmt"
	"strings"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/traverse"
)

// Test60103CircularDefinition is test 6.01.03 ("Circular Definition of
// Product ID"): the relationship graph, read as product_reference ->
// relates_to_product_reference edges, must contain no cycle, and no
// relationship may reference the product ID it itself defines.
func Test60103CircularDefinition(doc accessor.Document) *Finding {
	tree, ok := doc.ProductTree()
	if !ok {
		return nil
	}

	relMap := traverse.NewRelationMap()
	for i, r := range tree.Relationships() {
		relProductID := r.FullProductName().ProductID()
		switch relProductID {
		case r.ProductReference():
			return &Finding{
				TestID:       "6.01.03",
				Message:      "Relationship references itself via product_reference",
				InstancePath: fmt.Sprintf("/product_tree/relationships/%d/product_reference", i),
			}
		case r.RelatesToProductReference():
			return &Finding{
				TestID:       "6.01.03",
				Message:      "Relationship references itself via relates_to_product_reference",
				InstancePath: fmt.Sprintf("/product_tree/relationships/%d/relates_to_product_reference", i),
			}
		}
		relMap.Add(r.ProductReference(), r.RelatesToProductReference(), i)
	}

	visited := make(map[string]bool)
	for _, productID := range relMap.Sources() {
		if visited[productID] {
			continue
		}
		cycle, found := traverse.FindCycle(relMap, productID, visited)
		if !found {
			continue
		}
		return &Finding{
			TestID:       "6.01.03",
			Message:      fmt.Sprintf("Found product relationship cycle: %s", strings.Join(cycle.Path, " -> ")),
			InstancePath: fmt.Sprintf("/product_tree/relationships/%d", cycle.RelationshipIndex),
		}
	}
	return nil
}
