package pipeline

import (
	"encoding/json"
	"testing"

	"profpipe/internal"
)

func TestFlattenDocument(t *testing.T) {
	doc := map[string]internal.ResolvedSource{
		"uni": {
			TotalItems: 3,
			Profiles: []internal.ResolvedProfile{
				{
					FullName:     "Jane Doe",
					Email:        "jdoe@example.edu",
					Introduction: "Studies optics.",
					Orcid:        "0000-0001-2345-6789",
					IsRealOrcid:  true,
					Tags: []internal.ResolvedTag{
						{TagID: 3, SubID: []internal.SubID{"8.2", "5"}},
						{TagID: 4, SubID: []internal.SubID{"abc3def", "abc"}},
					},
				},
				{FullName: "No Orcid", Email: "x@y.com"},
			},
		},
	}

	products, tags, stats, err := FlattenDocument(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(products) != 1 || stats.SkippedNoOrcid != 1 {
		t.Fatalf("products=%d skipped=%d", len(products), stats.SkippedNoOrcid)
	}
	row := products[0]
	if row.Orcid != "0000-0001-2345-6789" || row.Introduction != "Studies optics." {
		t.Fatalf("row=%+v", row)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(row.ProfilesJSON), &fields); err != nil {
		t.Fatal(err)
	}
	if fields["organization"] != "uni" || fields["full_name"] != "Jane Doe" {
		t.Fatalf("fields=%v", fields)
	}
	for _, banned := range []string{"orcid", "introduction", "tags"} {
		if _, ok := fields[banned]; ok {
			t.Fatalf("profiles JSON contains %q", banned)
		}
	}

	wantSubs := []int{2, 5, 3, 0}
	if len(tags) != len(wantSubs) {
		t.Fatalf("tags=%v", tags)
	}
	for i, want := range wantSubs {
		if tags[i].SubID != want {
			t.Fatalf("tags[%d].SubID=%d want %d", i, tags[i].SubID, want)
		}
		if tags[i].Orcid != row.Orcid {
			t.Fatalf("tags[%d].Orcid=%q", i, tags[i].Orcid)
		}
	}
	if tags[0].TagID != 3 || tags[2].TagID != 4 {
		t.Fatalf("tag ids=%v", tags)
	}
}
