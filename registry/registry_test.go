package registry_test

import (
	"testing"

	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/check"
	"github.com/quay/csafval/registry"
)

func alwaysPass(accessor.Document) *check.Finding { return nil }

func TestRegisterAndLookup(t *testing.T) {
	r := registry.New()
	if err := r.Register("1.0.0", alwaysPass); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := r.Lookup("1.0.0"); !ok {
		t.Fatal("expected lookup to find registered test")
	}
	if _, ok := r.Lookup("nope"); ok {
		t.Fatal("expected lookup to miss an unregistered id")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := registry.New()
	if err := r.Register("1.0.0", alwaysPass); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := r.Register("1.0.0", alwaysPass)
	if err == nil {
		t.Fatal("expected an error registering the same id twice")
	}
}

func TestFullPresetIsAllSorted(t *testing.T) {
	r := registry.New()
	_ = r.Register("2.0.0", alwaysPass)
	_ = r.Register("1.0.0", alwaysPass)
	ids, ok := r.Preset("full")
	if !ok {
		t.Fatal("expected full preset to always exist")
	}
	want := []string{"1.0.0", "2.0.0"}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Errorf("full preset = %v, want %v", ids, want)
	}
}

func TestNamedPreset(t *testing.T) {
	r := registry.New()
	r.RegisterPreset("basic", []string{"1.0.0", "2.0.0"})
	ids, ok := r.Preset("basic")
	if !ok {
		t.Fatal("expected basic preset to exist")
	}
	if len(ids) != 2 {
		t.Errorf("ids = %v", ids)
	}
	if _, ok := r.Preset("unknown"); ok {
		t.Fatal("expected unknown preset name to miss")
	}
}

func TestV20RegistryMissingSSVCTests(t *testing.T) {
	r := registry.NewV20Registry()
	for _, id := range []string{"6.1.46", "6.1.49"} {
		if _, ok := r.Lookup(id); ok {
			t.Errorf("did not expect %s registered in the v2.0 registry", id)
		}
	}
	if _, ok := r.Lookup("6.01.03"); !ok {
		t.Error("expected 6.01.03 registered in the v2.0 registry")
	}
}

func TestV21RegistryHasSSVCTests(t *testing.T) {
	r := registry.NewV21Registry()
	for _, id := range []string{"6.1.46", "6.1.49", "6.1.31"} {
		if _, ok := r.Lookup(id); !ok {
			t.Errorf("expected %s registered in the v2.1 registry", id)
		}
	}
}
