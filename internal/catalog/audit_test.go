package catalog

import (
	"testing"
)

func TestAuditDefaultCatalogReportsCountDrift(t *testing.T) {
	store := mustDefaultStore(t)

	findings := store.Audit()
	drift := map[string]bool{}
	for _, f := range findings {
		if f.Kind != FindingCategoryCountDrift {
			t.Fatalf("unexpected finding on default catalog: %+v", f)
		}
		drift[f.Subject] = true
	}
	for _, id := range []string{"electronics", "fashion", "accessories", "gaming"} {
		if !drift[id] {
			t.Fatalf("expected count drift for %s", id)
		}
	}
}

func TestAuditDiscountConsistency(t *testing.T) {
	ten, twenty := 10, 20
	store, err := NewStore(Seed{
		Categories: []CategorySeed{{ID: "c", Name: "C", ProductCount: 4}},
		Products: []ProductSeed{
			{ID: "ok", Name: "Ok", Price: "90", OriginalPrice: "100", Category: "c", Discount: &ten},
			{ID: "orphan", Name: "Orphan", Price: "90", Category: "c", Discount: &ten},
			{ID: "cheap", Name: "Cheap", Price: "90", OriginalPrice: "80", Category: "c"},
			{ID: "off", Name: "Off", Price: "90", OriginalPrice: "100", Category: "c", Discount: &twenty},
		},
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	got := map[string]FindingKind{}
	for _, f := range store.Audit() {
		got[f.Subject] = f.Kind
	}
	want := map[string]FindingKind{
		"orphan": FindingDiscountWithoutOriginal,
		"cheap":  FindingOriginalNotAbovePrice,
		"off":    FindingDiscountMismatch,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d findings, got %+v", len(want), got)
	}
	for subject, kind := range want {
		if got[subject] != kind {
			t.Fatalf("subject %s: expected %s, got %s", subject, kind, got[subject])
		}
	}
}
