package traverse_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quay/csafval/traverse"
	"github.com/quay/csafval/v20"
)

const productTreeFixture = `{
  "document": {"tracking": {"status": "final", "revision_history": []}},
  "product_tree": {
    "branches": [
      {
        "category": "vendor",
        "name": "Example",
        "branches": [
          {"category": "product_name", "name": "Widget 1", "product": {"name": "Widget 1", "product_id": "CSAFPID-1"}},
          {"category": "product_name", "name": "Widget 1", "product": {"name": "Widget 1 dup", "product_id": "CSAFPID-1"}}
        ]
      }
    ],
    "full_product_names": [
      {"name": "Standalone", "product_id": "CSAFPID-STANDALONE"}
    ],
    "relationships": [
      {
        "product_reference": "CSAFPID-1",
        "relates_to_product_reference": "CSAFPID-STANDALONE",
        "full_product_name": {"name": "Widget 1 as installed on Standalone", "product_id": "CSAFPID-REL"}
      }
    ],
    "product_groups": [
      {"group_id": "CSAFGID-1", "product_ids": ["CSAFPID-1", "CSAFPID-STANDALONE"]}
    ]
  },
  "vulnerabilities": [
    {
      "remediations": [
        {"category": "vendor_fix", "group_ids": ["CSAFGID-1"]},
        {"category": "workaround", "product_ids": ["CSAFPID-REL"]}
      ]
    }
  ]
}`

func mustParse(t *testing.T, raw string) *v20.Document {
	t.Helper()
	doc, err := v20.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestGatherProductDefinitions(t *testing.T) {
	doc := mustParse(t, productTreeFixture)
	got := traverse.GatherProductDefinitions(doc)
	want := []string{"CSAFPID-1", "CSAFPID-1", "CSAFPID-REL", "CSAFPID-STANDALONE"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestFindDuplicates(t *testing.T) {
	doc := mustParse(t, productTreeFixture)
	dups := traverse.FindDuplicates(traverse.GatherProductDefinitions(doc))
	want := []string{"CSAFPID-1"}
	if diff := cmp.Diff(want, dups); diff != "" {
		t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
	}
}

func TestGatherProductReferences(t *testing.T) {
	doc := mustParse(t, productTreeFixture)
	refs := traverse.GatherProductReferences(doc)
	for _, want := range []string{"CSAFPID-1", "CSAFPID-STANDALONE", "CSAFPID-REL"} {
		if _, ok := refs[want]; !ok {
			t.Errorf("expected reference %q to be gathered, got %v", want, refs)
		}
	}
}

func TestResolveProductGroupsNoTree(t *testing.T) {
	got, ok := traverse.ResolveProductGroups(nil, []string{"CSAFGID-1"})
	if ok {
		t.Fatalf("expected ok=false with nil tree, got %v", got)
	}
}

func TestResolveProductGroupsSkipsUnknown(t *testing.T) {
	doc := mustParse(t, productTreeFixture)
	tree, _ := doc.ProductTree()
	got, ok := traverse.ResolveProductGroups(tree, []string{"CSAFGID-1", "CSAFGID-MISSING"})
	if !ok {
		t.Fatal("expected ok=true")
	}
	want := []string{"CSAFPID-1", "CSAFPID-STANDALONE"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolved group mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckBranchDepthTree(t *testing.T) {
	doc := mustParse(t, productTreeFixture)
	tree, _ := doc.ProductTree()
	if !traverse.CheckBranchDepthTree(tree, 30) {
		t.Fatal("expected shallow tree to pass a depth-30 bound")
	}
	if traverse.CheckBranchDepthTree(tree, 1) {
		t.Fatal("expected two-level tree to fail a depth-1 bound")
	}
}
