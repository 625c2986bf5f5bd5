package manifest

import (
	"strings"
	"testing"
)

func TestParseDocument_rejectsNonMapping(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"sequence root", "- a\n- b\n"},
		{"scalar root", "hello\n"},
		{"invalid yaml", "name: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDocument([]byte(tt.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDocument_scalarLookup(t *testing.T) {
	doc := mustDoc(t, `
name: core
nested:
  inner: value
empty:
`)
	if v, ok := doc.Scalar("name"); !ok || v != "core" {
		t.Errorf("Scalar(name) = %q, %v", v, ok)
	}
	if v, ok := doc.Scalar("nested", "inner"); !ok || v != "value" {
		t.Errorf("Scalar(nested, inner) = %q, %v", v, ok)
	}
	if _, ok := doc.Scalar("missing"); ok {
		t.Error("Scalar(missing) should not be present")
	}
	if _, ok := doc.Scalar("empty"); ok {
		t.Error("Scalar(empty) should treat null as absent")
	}
	if _, ok := doc.Scalar("nested"); ok {
		t.Error("Scalar(nested) should reject a mapping value")
	}
}

func TestDocument_roundTripPreservesUntouchedContent(t *testing.T) {
	in := `# release manifest
name: core
version: 1.0.0 # bump me
dependencies:
  # ordering matters here
  zeta:
    path: ../zeta
    version: 1.0.0
  alpha:
    version: 1.0.0
extras:
  keep: "as-is"
`
	doc := mustDoc(t, in)
	if !SetPackageVersion(doc, "2.0.0") {
		t.Fatal("SetPackageVersion reported no change")
	}
	out, err := doc.Encode()
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)

	for _, want := range []string{
		"# release manifest",
		"version: 2.0.0 # bump me",
		"# ordering matters here",
		`keep: "as-is"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	// Key order preserved: zeta before alpha.
	if strings.Index(got, "zeta:") > strings.Index(got, "alpha:") {
		t.Errorf("dependency order not preserved:\n%s", got)
	}
}

func TestSetPackageVersion(t *testing.T) {
	t.Run("changes differing version", func(t *testing.T) {
		doc := mustDoc(t, "name: a\nversion: 1.0.0\n")
		if !SetPackageVersion(doc, "2.0.0") {
			t.Error("expected change")
		}
		if v, _ := doc.Scalar("version"); v != "2.0.0" {
			t.Errorf("version = %q", v)
		}
	})
	t.Run("no-op on equal version", func(t *testing.T) {
		doc := mustDoc(t, "name: a\nversion: 2.0.0\n")
		if SetPackageVersion(doc, "2.0.0") {
			t.Error("expected no change")
		}
	})
	t.Run("leaves inherited version alone", func(t *testing.T) {
		doc := mustDoc(t, "name: a\nversion: workspace\n")
		if SetPackageVersion(doc, "2.0.0") {
			t.Error("expected no change")
		}
		if v, _ := doc.Scalar("version"); v != VersionInherited {
			t.Errorf("version = %q", v)
		}
	})
	t.Run("never adds a missing field", func(t *testing.T) {
		doc := mustDoc(t, "name: a\n")
		if SetPackageVersion(doc, "2.0.0") {
			t.Error("expected no change")
		}
		if _, ok := doc.Scalar("version"); ok {
			t.Error("version field should not have been added")
		}
	})
}

func TestSetDependencyVersion(t *testing.T) {
	in := `
name: a
version: 1.0.0
dependencies:
  mapping-form:
    path: ../b
    version: 1.0.0
  shorthand: 1.0.0
  unpinned:
    path: ../c
`
	t.Run("mapping form", func(t *testing.T) {
		doc := mustDoc(t, in)
		if !SetDependencyVersion(doc, "mapping-form", "2.0.0") {
			t.Error("expected change")
		}
		if v, _ := doc.Scalar("dependencies", "mapping-form", "version"); v != "2.0.0" {
			t.Errorf("version = %q", v)
		}
	})
	t.Run("shorthand form", func(t *testing.T) {
		doc := mustDoc(t, in)
		if !SetDependencyVersion(doc, "shorthand", "2.0.0") {
			t.Error("expected change")
		}
		if v, _ := doc.Scalar("dependencies", "shorthand"); v != "2.0.0" {
			t.Errorf("version = %q", v)
		}
	})
	t.Run("unpinned entry never gains a constraint", func(t *testing.T) {
		doc := mustDoc(t, in)
		if SetDependencyVersion(doc, "unpinned", "2.0.0") {
			t.Error("expected no change")
		}
		if _, ok := doc.Scalar("dependencies", "unpinned", "version"); ok {
			t.Error("version field should not have been added")
		}
	})
	t.Run("unknown dependency", func(t *testing.T) {
		doc := mustDoc(t, in)
		if SetDependencyVersion(doc, "nope", "2.0.0") {
			t.Error("expected no change")
		}
	})
}

func TestSetRelease(t *testing.T) {
	doc := mustDoc(t, `
version: 1
name: acme
release: 1.0.0
members: [a]
`)
	if !SetRelease(doc, "2.0.0") {
		t.Error("expected change")
	}
	if v, _ := doc.Scalar("release"); v != "2.0.0" {
		t.Errorf("release = %q", v)
	}

	noRelease := mustDoc(t, "version: 1\nname: acme\nmembers: [a]\n")
	if SetRelease(noRelease, "2.0.0") {
		t.Error("expected no change without a release field")
	}
}
