package catalog_test

import (
	"testing"

	"github.com/pathwaycare/intake-api/internal/catalog"
	"github.com/pathwaycare/intake-api/internal/models"
)

func TestTemplatesAreComplete(t *testing.T) {
	templates := catalog.Templates()
	if len(templates) != catalog.Size() {
		t.Fatalf("Templates() returned %d entries, Size() says %d", len(templates), catalog.Size())
	}

	seen := make(map[string]bool, len(templates))
	for _, tpl := range templates {
		if tpl.Title == "" || tpl.Template == "" {
			t.Errorf("template %+v has an empty title or template key", tpl)
		}
		if !models.ValidCategory(tpl.Category) {
			t.Errorf("template %q has unknown category %q", tpl.Title, tpl.Category)
		}
		for _, c := range tpl.AdditionalCategories {
			if !models.ValidCategory(c) {
				t.Errorf("template %q has unknown additional category %q", tpl.Title, c)
			}
			if c == tpl.Category {
				t.Errorf("template %q repeats its primary category in additionalCategories", tpl.Title)
			}
		}
		if seen[tpl.Title] {
			t.Errorf("duplicate template title %q", tpl.Title)
		}
		seen[tpl.Title] = true
	}
}

func TestTemplatesReturnsCopy(t *testing.T) {
	first := catalog.Templates()
	original := first[0].Title
	first[0].Title = "mutated"

	second := catalog.Templates()
	if second[0].Title != original {
		t.Fatalf("mutating the returned slice changed the catalog: got %q", second[0].Title)
	}
}
