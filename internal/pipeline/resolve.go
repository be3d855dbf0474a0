package pipeline

import (
	"log"
	"strings"

	"profpipe/internal"
	"profpipe/internal/tagindex"
)

// Resolver turns free-text tag pairs into index IDs. Profiles without an
// email are treated as incomplete and dropped at this stage.
type Resolver struct {
	idx *tagindex.Index
}

func NewResolver(idx *tagindex.Index) *Resolver {
	return &Resolver{idx: idx}
}

type ResolveStats struct {
	Profiles        int
	ProfilesKept    int
	ProfilesDropped int
	WithTags        int
}

// ResolveDocument maps every profile's tags through the index. Source
// groups left without profiles are dropped from the output.
func (r *Resolver) ResolveDocument(doc map[string]internal.CleanedSource) (map[string]internal.ResolvedSource, ResolveStats) {
	out := map[string]internal.ResolvedSource{}
	stats := ResolveStats{}

	for name, source := range doc {
		resolved := internal.ResolvedSource{
			TotalItems: source.TotalItems,
			Profiles:   []internal.ResolvedProfile{},
		}

		for _, profile := range source.Profiles {
			stats.Profiles++
			if profile.Email == "" {
				log.Printf("warning: skipping profile without email: %s", displayName(profile))
				stats.ProfilesDropped++
				continue
			}

			if len(profile.Tag) > 0 {
				stats.WithTags++
			}
			resolved.Profiles = append(resolved.Profiles, internal.ResolvedProfile{
				Website:      profile.Website,
				FullName:     profile.FullName,
				Title:        profile.Title,
				OrgUnit:      profile.OrgUnit,
				Telephone:    profile.Telephone,
				Email:        profile.Email,
				Introduction: profile.Introduction,
				Orcid:        profile.Orcid,
				IsRealOrcid:  profile.IsRealOrcid,
				Tags:         r.ResolveTags(profile.Tag),
			})
			stats.ProfilesKept++
		}

		if len(resolved.Profiles) == 0 {
			log.Printf("warning: skipping %s: no valid profiles after filtering", name)
			continue
		}
		out[name] = resolved
	}

	return out, stats
}

// ResolveTags maps tag pairs to {tag_id, sub_id} entries. Unknown
// category names skip the whole pair; unknown subcategory names skip just
// that name. Both are logged.
func (r *Resolver) ResolveTags(pairs []internal.TagPair) []internal.ResolvedTag {
	resolved := make([]internal.ResolvedTag, 0, len(pairs))

	for _, pair := range pairs {
		categoryID, ok := r.idx.CategoryID(pair.Category())
		if !ok {
			log.Printf("warning: category %q not found in index", pair.Category())
			continue
		}

		subIDs := make([]internal.SubID, 0)
		for _, name := range splitSubcategories(pair.Subcategories()) {
			id, ok := r.idx.SubID(name)
			if !ok {
				log.Printf("warning: subcategory %q not found in index", name)
				continue
			}
			subIDs = append(subIDs, id)
		}

		resolved = append(resolved, internal.ResolvedTag{TagID: categoryID, SubID: subIDs})
	}

	return resolved
}

// splitSubcategories splits a comma-separated subcategory list, trimming
// each token and dropping empty ones.
func splitSubcategories(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func displayName(p internal.Profile) string {
	if p.FullName != "" {
		return p.FullName
	}
	return "Unknown"
}
