package loader_test

import (
	"errors"
	"testing"

	"github.com/quay/csafval"
	"github.com/quay/csafval/loader"
	"github.com/quay/csafval/v20"
	"github.com/quay/csafval/v21"
)

func TestLoadDispatchesV20(t *testing.T) {
	const raw = `{"document":{"csaf_version":"2.0","tracking":{"status":"draft","revision_history":[]}},"vulnerabilities":[]}`
	doc, err := loader.Load([]byte(raw))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := doc.(*v20.Document); !ok {
		t.Errorf("got %T, want *v20.Document", doc)
	}
}

func TestLoadDispatchesV21(t *testing.T) {
	const raw = `{"document":{"csaf_version":"2.1","tracking":{"status":"draft","revision_history":[]}},"vulnerabilities":[]}`
	doc, err := loader.Load([]byte(raw))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := doc.(*v21.Document); !ok {
		t.Errorf("got %T, want *v21.Document", doc)
	}
}

func TestLoadUnknownVersion(t *testing.T) {
	const raw = `{"document":{"csaf_version":"1.9"}}`
	_, err := loader.Load([]byte(raw))
	if err == nil {
		t.Fatal("expected an error for an unsupported csaf_version")
	}
	var cerr *csafval.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a *csafval.Error, got %T", err)
	}
	if cerr.Kind != csafval.ErrDecode {
		t.Errorf("kind = %q, want %q", cerr.Kind, csafval.ErrDecode)
	}
}

func TestLoadMissingVersion(t *testing.T) {
	const raw = `{"document":{"tracking":{"status":"draft","revision_history":[]}}}`
	_, err := loader.Load([]byte(raw))
	if err == nil {
		t.Fatal("expected an error when csaf_version is absent")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := loader.Load([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected an error on malformed JSON")
	}
	var cerr *csafval.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a *csafval.Error, got %T", err)
	}
	if cerr.Kind != csafval.ErrDecode {
		t.Errorf("kind = %q, want %q", cerr.Kind, csafval.ErrDecode)
	}
}

func TestLoadRejectsDecodeFailureInVersionedBody(t *testing.T) {
	// csaf_version is well-formed but the rest of the document.tracking
	// body is not shaped as v20 expects (status is a number, not a string).
	const raw = `{"document":{"csaf_version":"2.0","tracking":{"status":42,"revision_history":[]}}}`
	_, err := loader.Load([]byte(raw))
	if err == nil {
		t.Fatal("expected an error decoding a malformed v2.0 body")
	}
	var cerr *csafval.Error
	if !errors.As(err, &cerr) || cerr.Kind != csafval.ErrDecode {
		t.Fatalf("expected a *csafval.Error with Kind ErrDecode, got %#v", err)
	}
}
