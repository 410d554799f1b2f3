package v20_test

import (
	"strings"
	"testing"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/v20"
)

const sample = `{
  "document": {
    "tracking": {
      "status": "final",
      "revision_history": [
        {"date": "2024-01-24T10:00:00Z", "number": "1", "summary": "initial"}
      ]
    }
  },
  "product_tree": {
    "branches": [
      {"category": "vendor", "name": "Example", "branches": [
        {"category": "product_name", "name": "Widget", "product": {"name": "Widget", "product_id": "CSAFPID-1"}}
      ]}
    ],
    "full_product_names": [{"name": "Standalone", "product_id": "CSAFPID-2"}],
    "relationships": [
      {"product_reference": "CSAFPID-1", "relates_to_product_reference": "CSAFPID-2",
       "full_product_name": {"name": "rel", "product_id": "CSAFPID-3"}}
    ],
    "product_groups": [{"group_id": "CSAFGID-1", "product_ids": ["CSAFPID-1"]}]
  },
  "vulnerabilities": [
    {
      "cve": "CVE-2024-0001",
      "remediations": [
        {"category": "vendor_fix", "product_ids": ["CSAFPID-1"]}
      ],
      "metrics": [
        {"content": {}}
      ]
    }
  ]
}`

func TestParseSatisfiesAccessor(t *testing.T) {
	doc, err := v20.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var _ accessor.Document = doc

	if got := doc.Tracking().Status(); got != accessor.StatusFinal {
		t.Errorf("status = %q", got)
	}
	revs := doc.Tracking().RevisionHistory()
	if len(revs) != 1 || revs[0].Date() != "2024-01-24T10:00:00Z" {
		t.Errorf("revisions = %+v", revs)
	}

	tree, ok := doc.ProductTree()
	if !ok {
		t.Fatal("expected a product tree")
	}
	if len(tree.Branches()) != 1 {
		t.Errorf("branches = %d", len(tree.Branches()))
	}
	if len(tree.FullProductNames()) != 1 {
		t.Errorf("full product names = %d", len(tree.FullProductNames()))
	}
	if len(tree.Relationships()) != 1 {
		t.Errorf("relationships = %d", len(tree.Relationships()))
	}
	if len(tree.ProductGroups()) != 1 {
		t.Errorf("product groups = %d", len(tree.ProductGroups()))
	}

	vulns := doc.Vulnerabilities()
	if len(vulns) != 1 {
		t.Fatalf("vulnerabilities = %d", len(vulns))
	}
	cve, present := vulns[0].CVE()
	if !present || cve != "CVE-2024-0001" {
		t.Errorf("cve = %q, present=%v", cve, present)
	}
	metrics, ok := vulns[0].Metrics()
	if !ok || len(metrics) != 1 {
		t.Fatalf("metrics = %v, ok=%v", metrics, ok)
	}
	if _, ok := metrics[0].Content().SSVCV1(); ok {
		t.Error("expected no ssvc_v1 content in this fixture")
	}
}

func TestMetricsAbsenceDistinctFromEmpty(t *testing.T) {
	const noMetrics = `{"document":{"tracking":{"status":"draft","revision_history":[]}},"vulnerabilities":[{}]}`
	doc, err := v20.Parse(strings.NewReader(noMetrics))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := doc.Vulnerabilities()[0].Metrics(); ok {
		t.Error("expected Metrics to report absence when the property is missing")
	}

	const emptyMetrics = `{"document":{"tracking":{"status":"draft","revision_history":[]}},"vulnerabilities":[{"metrics":[]}]}`
	doc, err = v20.Parse(strings.NewReader(emptyMetrics))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	metrics, ok := doc.Vulnerabilities()[0].Metrics()
	if !ok {
		t.Error("expected Metrics to report presence when the property is an empty array")
	}
	if len(metrics) != 0 {
		t.Errorf("metrics = %v", metrics)
	}
}

func TestRemediationCategoryProjection(t *testing.T) {
	const doc = `{"document":{"tracking":{"status":"draft","revision_history":[]}},
		"vulnerabilities":[{"remediations":[{"category":"optional_patch"}]}]}`
	d, err := v20.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := d.Vulnerabilities()[0].Remediations()[0].Category()
	if got != accessor.OptionalPatch {
		t.Errorf("category = %q, want %q", got, accessor.OptionalPatch)
	}
}

func TestRemediationCategoryUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on an unrecognized remediation category")
		}
	}()
	const doc = `{"document":{"tracking":{"status":"draft","revision_history":[]}},
		"vulnerabilities":[{"remediations":[{"category":"not_a_real_category"}]}]}`
	d, err := v20.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_ = d.Vulnerabilities()[0].Remediations()[0].Category()
}
