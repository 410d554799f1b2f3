package v20

import "github.com/quay/csafval/accessor"

// productTree contains information about the product tree.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#322-product-tree-property
type productTree struct {
	BranchesData          []branch          `json:"branches"`
	FullProductNamesData  []fullProductName `json:"full_product_names"`
	RelationshipsData     []relationship    `json:"relationships"`
	ProductGroupsData     []productGroup    `json:"product_groups"`
}

var _ accessor.ProductTree = (*productTree)(nil)

func (t *productTree) Branches() []accessor.Branch {
	out := make([]accessor.Branch, len(t.BranchesData))
	for i := range t.BranchesData {
		out[i] = &t.BranchesData[i]
	}
	return out
}

func (t *productTree) FullProductNames() []accessor.FullProductName {
	out := make([]accessor.FullProductName, len(t.FullProductNamesData))
	for i := range t.FullProductNamesData {
		out[i] = t.FullProductNamesData[i]
	}
	return out
}

func (t *productTree) Relationships() []accessor.Relationship {
	out := make([]accessor.Relationship, len(t.RelationshipsData))
	for i := range t.RelationshipsData {
		out[i] = t.RelationshipsData[i]
	}
	return out
}

func (t *productTree) ProductGroups() []accessor.ProductGroup {
	out := make([]accessor.ProductGroup, len(t.ProductGroupsData))
	for i := range t.ProductGroupsData {
		out[i] = t.ProductGroupsData[i]
	}
	return out
}

// branch is a node in the product tree's branch forest.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#3221-product-tree-property---branches
type branch struct {
	CategoryField string            `json:"category"`
	NameField     string            `json:"name"`
	ProductData   *fullProductName  `json:"product"`
	BranchesData  []branch          `json:"branches"`
}

var _ accessor.Branch = (*branch)(nil)

func (b *branch) Category() string { return b.CategoryField }
func (b *branch) Name() string     { return b.NameField }

func (b *branch) Product() (accessor.FullProductName, bool) {
	if b.ProductData == nil {
		return nil, false
	}
	return *b.ProductData, true
}

func (b *branch) Branches() []accessor.Branch {
	out := make([]accessor.Branch, len(b.BranchesData))
	for i := range b.BranchesData {
		out[i] = &b.BranchesData[i]
	}
	return out
}

// relationship links two existing product IDs, synthesizing a new
// full_product_name.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#3224-product-tree-property---relationships
type relationship struct {
	FullProductNameData fullProductName `json:"full_product_name"`
	ProductRef          string          `json:"product_reference"`
	RelatesToProductRef string          `json:"relates_to_product_reference"`
}

var _ accessor.Relationship = relationship{}

func (r relationship) ProductReference() string           { return r.ProductRef }
func (r relationship) RelatesToProductReference() string  { return r.RelatesToProductRef }
func (r relationship) FullProductName() accessor.FullProductName {
	return r.FullProductNameData
}

// productGroup names a non-empty set of product IDs.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#3225-product-tree-property---product-groups
type productGroup struct {
	GroupIDField   string   `json:"group_id"`
	ProductIDsData []string `json:"product_ids"`
}

var _ accessor.ProductGroup = productGroup{}

func (g productGroup) GroupID() string      { return g.GroupIDField }
func (g productGroup) ProductIDs() []string { return g.ProductIDsData }

// fullProductName identifies a product, version, or variant by its unique
// product_id.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#3124-branches-type---product
type fullProductName struct {
	NameField string `json:"name"`
	IDField   string `json:"product_id"`
}

var _ accessor.FullProductName = fullProductName{}

func (p fullProductName) ProductID() string { return p.IDField }
