package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"profpipe/internal"
	"profpipe/internal/config"
)

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "tag_data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, dataDir, "uni_tag_data.json", `[
  {"full_name": "Jane Doe", "email": "jdoe@example.edu",
   "orcid": "https://orcid.org/0000-0001-2345-6789",
   "brief_introduction": "Optics\nresearch.",
   "tag": [["AI", "ML, NLP"]]},
  {"full_name": "John Noid", "orcid": "garbage"}
]`)
	writeFile(t, dataDir, "ghost_tag_data.json", `[
  {"full_name": "Nobody", "orcid": "garbage"}
]`)

	indexPath := filepath.Join(root, "index_en.json")
	if err := os.WriteFile(indexPath, []byte(`[
  {"id": 3, "name": "AI", "subcategories": [
    {"id": "8.1", "name": "ML"},
    {"id": "8.2", "name": "NLP"}
  ]}
]`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{
		DataDir:         dataDir,
		OutputDir:       filepath.Join(root, "output"),
		IndexPath:       indexPath,
		ExtractCount:    3,
		OrcidStrict:     true,
		SourceKeySuffix: "_tag_data",
	}

	summary, err := Run(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Extract.Extracted != 3 {
		t.Fatalf("extracted=%d", summary.Extract.Extracted)
	}

	// Strict mode: the group whose only profile has no identifier is
	// entirely absent downstream.
	var cleaned map[string]internal.CleanedSource
	if err := ReadJSON(cfg.CleanedPath(), &cleaned); err != nil {
		t.Fatal(err)
	}
	if _, ok := cleaned["ghost"]; ok {
		t.Fatal("ghost group survived strict cleaning")
	}
	if len(cleaned) != 1 || len(cleaned["uni"].Profiles) != 1 {
		t.Fatalf("cleaned=%v", cleaned)
	}

	var resolved map[string]internal.ResolvedSource
	if err := ReadJSON(cfg.ResolvedPath(), &resolved); err != nil {
		t.Fatal(err)
	}
	profile := resolved["uni"].Profiles[0]
	if profile.Orcid != "0000-0001-2345-6789" || !profile.IsRealOrcid {
		t.Fatalf("profile=%+v", profile)
	}
	if profile.Introduction != "Optics research." {
		t.Fatalf("introduction=%q", profile.Introduction)
	}
	if len(profile.Tags) != 1 || profile.Tags[0].TagID != 3 {
		t.Fatalf("tags=%v", profile.Tags)
	}

	f, err := os.Open(cfg.TagsCSVPath())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// Header plus one row per subcategory; "8.1"/"8.2" keep the minor part.
	if len(records) != 3 {
		t.Fatalf("records=%v", records)
	}
	if records[1][2] != "1" || records[2][2] != "2" {
		t.Fatalf("sub ids=%v %v", records[1], records[2])
	}
}
