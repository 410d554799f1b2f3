// Package accessor declares the read-only view over a CSAF document that the
// conformance tests in package check are written against.
//
// A single test function is written once, against these interfaces, and
// runs unmodified against either a CSAF 2.0 or a CSAF 2.1 document: packages
// v20 and v21 each provide a concrete document tree plus thin wrapper types
// that satisfy the interfaces declared here. This is the Go expression of
// the version polymorphism that the source material expresses with a trait
// family parameterized by associated types — Go has no associated types, so
// plain interface satisfaction stands in for it.
//
// Implementations are read-only views: none of the methods here may mutate
// the underlying document, and none may be called concurrently with a
// mutation of it (nothing in this module mutates a decoded document).
package accessor

// TrackingStatus is the lifecycle status of a document, from its tracking
// metadata.
type TrackingStatus string

// Defined tracking statuses.
const (
	StatusDraft   TrackingStatus = "draft"
	StatusInterim TrackingStatus = "interim"
	StatusFinal   TrackingStatus = "final"
)

// RemediationCategory is the unified remediation-category enumeration
// (defined by CSAF 2.1; CSAF 2.0's category strings are a subset and are
// projected into this set by the v20 package).
type RemediationCategory string

// Defined remediation categories.
const (
	VendorFix      RemediationCategory = "vendor_fix"
	Mitigation     RemediationCategory = "mitigation"
	Workaround     RemediationCategory = "workaround"
	NoneAvailable  RemediationCategory = "none_available"
	NoFixPlanned   RemediationCategory = "no_fix_planned"
	FixPlanned     RemediationCategory = "fix_planned"
	OptionalPatch  RemediationCategory = "optional_patch"
	NoFixAvailable RemediationCategory = "no_fix_available"
)

// Document is the root of a CSAF document.
type Document interface {
	Tracking() Tracking
	Vulnerabilities() []Vulnerability
	// ProductTree reports the document's product tree and whether one is
	// present at all; a document with no product_tree property returns
	// (nil, false).
	ProductTree() (ProductTree, bool)
}

// Tracking holds the lifecycle tracking metadata of a document.
type Tracking interface {
	Status() TrackingStatus
	// RevisionHistory is ordered; it must be non-empty when Status is
	// StatusInterim or StatusFinal, per the data model invariant, but
	// accessors do not enforce that themselves — it's a test's job to
	// report it.
	RevisionHistory() []Revision
}

// Revision is one entry of a document's revision history.
type Revision interface {
	// Date is the raw RFC 3339 timestamp string for this revision. It is
	// not pre-parsed: only tests that need temporal semantics parse it, on
	// demand, so that a malformed date is a test finding rather than a
	// decode-time fatal error.
	Date() string
	Number() string
	Summary() string
}

// Vulnerability describes a single vulnerability entry.
type Vulnerability interface {
	// Remediations is ordered.
	Remediations() []Remediation
	// Metrics reports the vulnerability's metrics and whether the property
	// was present at all.
	Metrics() ([]Metric, bool)
	// CVE reports the vulnerability's cve value and whether the property
	// was present at all.
	CVE() (string, bool)
}

// Metric is one metric entry of a vulnerability.
type Metric interface {
	Content() Content
}

// Content is the scoring content of a metric.
type Content interface {
	// SSVCV1 reports the raw JSON of an embedded SSVC v1 object and whether
	// one is present. Absence is not an error; it is parsed into a
	// structured form on demand by the tests that need it (see
	// check.ParseSSVCV1).
	SSVCV1() ([]byte, bool)
}

// ProductTree is the document's product tree.
type ProductTree interface {
	// Branches is the ordered forest of top-level branches.
	Branches() []Branch
	// FullProductNames is the document's standalone full_product_names
	// list (definition sites outside of the branch tree and relationships).
	FullProductNames() []FullProductName
	// Relationships is ordered.
	Relationships() []Relationship
	ProductGroups() []ProductGroup
}

// Branch is a node in the product tree's branch forest. A branch with a
// Product is a leaf; depth is the longest root-to-leaf path measured in
// branch nesting, not product leaves.
type Branch interface {
	Category() string
	Name() string
	// Product reports the branch's product definition and whether one is
	// present; a branch with children instead of a product returns
	// (nil, false).
	Product() (FullProductName, bool)
	// Branches is the ordered list of child branches.
	Branches() []Branch
}

// Relationship links two existing product IDs, synthesizing a new
// FullProductName.
type Relationship interface {
	ProductReference() string
	RelatesToProductReference() string
	FullProductName() FullProductName
}

// ProductGroup names a non-empty set of product IDs.
type ProductGroup interface {
	GroupID() string
	// ProductIDs is non-empty per the data model invariant; accessors
	// report whatever the document actually contains.
	ProductIDs() []string
}

// Remediation describes one remediation measure for a vulnerability.
type Remediation interface {
	Category() RemediationCategory
	// ProductIDs reports the remediation's direct product references and
	// whether the property was present at all.
	ProductIDs() ([]string, bool)
	// GroupIDs reports the remediation's group references and whether the
	// property was present at all.
	GroupIDs() ([]string, bool)
}

// FullProductName identifies a product, version, or variant by its unique
// product_id.
type FullProductName interface {
	ProductID() string
}
