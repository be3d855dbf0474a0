package tagindex

import (
	"os"
	"path/filepath"
	"testing"

	"profpipe/internal"
)

func TestBuildIndex(t *testing.T) {
	idx := BuildIndex([]Category{
		{ID: 3, Name: "AI", Subcategories: []Subcategory{
			{ID: "1", Name: "ML"},
			{ID: "2", Name: "NLP"},
		}},
		{ID: 8, Name: "Physics", Subcategories: []Subcategory{
			{ID: "8.2", Name: "Optics"},
		}},
	})

	if id, ok := idx.CategoryID("AI"); !ok || id != 3 {
		t.Fatalf("CategoryID(AI)=%d,%v", id, ok)
	}
	if id, ok := idx.SubID("Optics"); !ok || id != internal.SubID("8.2") {
		t.Fatalf("SubID(Optics)=%q,%v", id, ok)
	}
	if _, ok := idx.CategoryID("Alchemy"); ok {
		t.Fatal("unknown category resolved")
	}
	if _, ok := idx.SubID("Phrenology"); ok {
		t.Fatal("unknown subcategory resolved")
	}
}

func TestLoad(t *testing.T) {
	doc := `[
  {"id": 1, "name": "Engineering", "subcategories": [
    {"id": 1.1, "name": "Civil"},
    {"id": "1.2", "name": "Mechanical"}
  ]}
]`
	path := filepath.Join(t.TempDir(), "index_en.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	idx, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if id, ok := idx.CategoryID("Engineering"); !ok || id != 1 {
		t.Fatalf("CategoryID=%d,%v", id, ok)
	}
	// Numeric and string subcategory IDs both come back as strings.
	if id, _ := idx.SubID("Civil"); id != internal.SubID("1.1") {
		t.Fatalf("SubID(Civil)=%q", id)
	}
	if id, _ := idx.SubID("Mechanical"); id != internal.SubID("1.2") {
		t.Fatalf("SubID(Mechanical)=%q", id)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error")
	}
}
