// Package traverse implements the pure graph and set algorithms that the
// conformance tests in package check are built from: gathering product
// definitions and references, resolving product groups, bounding branch
// recursion depth, finding duplicates, and detecting cycles in the
// relationship graph.
//
// Every function here operates purely through package accessor; none of
// them mutate the document, and all derived structures (relation maps,
// sets) are owned by the caller and released when it returns.
package traverse

import "github.com/quay/csafval/accessor"

// GatherProductDefinitions returns the ordered sequence of product IDs
// defined at every definition site in doc: branch leaves, relationship
// full_product_name entries, and the standalone full_product_names list.
// Duplicates are preserved; callers that need uniqueness run FindDuplicates
// or build a set themselves.
func GatherProductDefinitions(doc accessor.Document) []string {
	var out []string
	tree, ok := doc.ProductTree()
	if !ok {
		return out
	}
	var walkBranches func(branches []accessor.Branch)
	walkBranches = func(branches []accessor.Branch) {
		for _, b := range branches {
			if p, ok := b.Product(); ok {
				out = append(out, p.ProductID())
			}
			walkBranches(b.Branches())
		}
	}
	walkBranches(tree.Branches())
	for _, r := range tree.Relationships() {
		out = append(out, r.FullProductName().ProductID())
	}
	for _, p := range tree.FullProductNames() {
		out = append(out, p.ProductID())
	}
	return out
}

// GatherProductReferences returns the set of product IDs referenced
// anywhere in doc: remediation product_ids (direct and via resolved
// group_ids), and relationship product_reference /
// relates_to_product_reference.
func GatherProductReferences(doc accessor.Document) map[string]struct{} {
	out := make(map[string]struct{})
	add := func(id string) { out[id] = struct{}{} }

	tree, hasTree := doc.ProductTree()

	for _, v := range doc.Vulnerabilities() {
		for _, rem := range v.Remediations() {
			if ids, ok := rem.ProductIDs(); ok {
				for _, id := range ids {
					add(id)
				}
			}
			if groupIDs, ok := rem.GroupIDs(); ok && hasTree {
				if resolved, ok := ResolveProductGroups(tree, groupIDs); ok {
					for _, id := range resolved {
						add(id)
					}
				}
			}
		}
	}

	if hasTree {
		for _, r := range tree.Relationships() {
			add(r.ProductReference())
			add(r.RelatesToProductReference())
		}
	}

	return out
}

// ResolveProductGroups returns the union of product_ids belonging to the
// named groups. Unknown group IDs are skipped silently. It reports
// (nil, false) when tree is nil, matching the no-product-tree case callers
// must distinguish from an empty-but-present tree.
func ResolveProductGroups(tree accessor.ProductTree, groupIDs []string) ([]string, bool) {
	if tree == nil {
		return nil, false
	}
	byID := make(map[string]accessor.ProductGroup, len(tree.ProductGroups()))
	for _, g := range tree.ProductGroups() {
		byID[g.GroupID()] = g
	}
	var out []string
	for _, id := range groupIDs {
		g, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, g.ProductIDs()...)
	}
	return out, true
}

// CheckBranchDepthTree reports whether every root-to-leaf path in tree has
// depth at most max, where depth counts branch nesting rather than product
// leaves (a top-level branch with a direct product is depth 1).
func CheckBranchDepthTree(tree accessor.ProductTree, max int) bool {
	var walk func(branches []accessor.Branch, depth int) bool
	walk = func(branches []accessor.Branch, depth int) bool {
		for _, b := range branches {
			if depth > max {
				return false
			}
			if !walk(b.Branches(), depth+1) {
				return false
			}
		}
		return true
	}
	return walk(tree.Branches(), 1)
}

// FindDuplicates returns, in first-occurrence order, the distinct values
// that appear more than once in seq.
func FindDuplicates(seq []string) []string {
	count := make(map[string]int, len(seq))
	for _, s := range seq {
		count[s]++
	}
	var out []string
	seen := make(map[string]struct{})
	for _, s := range seq {
		if count[s] > 1 {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}
