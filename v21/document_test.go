package v21_test

import (
	"strings"
	"testing"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/v21"
)

const sample = `{
  "document": {
    "tracking": {
      "status": "interim",
      "revision_history": [
        {"date": "2025-03-10T08:00:00Z", "number": "1", "summary": "initial"},
        {"date": "2025-04-01T08:00:00Z", "number": "2", "summary": "update"}
      ]
    }
  },
  "product_tree": {
    "branches": [
      {"category": "vendor", "name": "Example", "branches": [
        {"category": "product_name", "name": "Widget", "product": {"name": "Widget", "product_id": "CSAFPID-1"}}
      ]}
    ],
    "product_groups": [{"group_id": "CSAFGID-1", "product_ids": ["CSAFPID-1"]}]
  },
  "vulnerabilities": [
    {
      "cve": "CVE-2025-0002",
      "remediations": [
        {"category": "no_fix_available", "product_ids": ["CSAFPID-1"]}
      ],
      "metrics": [
        {"content": {"ssvc_v1": {"selections": [], "name": "n", "namespace": "ns", "values": [], "version": "1.0.0", "timestamp": "2025-03-15T00:00:00Z"}}}
      ]
    }
  ]
}`

func TestParseSatisfiesAccessor(t *testing.T) {
	doc, err := v21.Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var _ accessor.Document = doc

	if got := doc.Tracking().Status(); got != accessor.StatusInterim {
		t.Errorf("status = %q", got)
	}
	if len(doc.Tracking().RevisionHistory()) != 2 {
		t.Errorf("revisions = %d", len(doc.Tracking().RevisionHistory()))
	}

	tree, ok := doc.ProductTree()
	if !ok {
		t.Fatal("expected a product tree")
	}
	if len(tree.ProductGroups()) != 1 {
		t.Errorf("product groups = %d", len(tree.ProductGroups()))
	}

	vulns := doc.Vulnerabilities()
	cve, present := vulns[0].CVE()
	if !present || cve != "CVE-2025-0002" {
		t.Errorf("cve = %q, present=%v", cve, present)
	}

	rem := vulns[0].Remediations()[0]
	if rem.Category() != accessor.NoFixAvailable {
		t.Errorf("category = %q", rem.Category())
	}

	metrics, ok := vulns[0].Metrics()
	if !ok || len(metrics) != 1 {
		t.Fatalf("metrics = %v, ok=%v", metrics, ok)
	}
	raw, ok := metrics[0].Content().SSVCV1()
	if !ok {
		t.Fatal("expected ssvc_v1 content to be present")
	}
	if len(raw) == 0 {
		t.Error("expected non-empty raw ssvc_v1 bytes")
	}
}

func TestRemediationCategoryUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on an unrecognized remediation category")
		}
	}()
	const doc = `{"document":{"tracking":{"status":"draft","revision_history":[]}},
		"vulnerabilities":[{"remediations":[{"category":"bogus"}]}]}`
	d, err := v21.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_ = d.Vulnerabilities()[0].Remediations()[0].Category()
}

func TestCVEAbsentWhenPropertyMissing(t *testing.T) {
	const doc = `{"document":{"tracking":{"status":"draft","revision_history":[]}},
		"vulnerabilities":[{}]}`
	d, err := v21.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, present := d.Vulnerabilities()[0].CVE(); present {
		t.Error("expected CVE to report absence when the property is missing")
	}
}
