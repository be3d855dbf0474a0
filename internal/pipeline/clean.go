package pipeline

import (
	"fmt"
	"strings"

	"profpipe/internal"
	"profpipe/internal/util"
)

// CleanOptions controls identifier handling during cleaning.
//
// Strict drops every record whose ORCID does not validate. Otherwise the
// normalized email is substituted as a fallback identifier and
// is_real_orcid records which kind the final value is. Records with no
// identifier at all are dropped in both modes.
type CleanOptions struct {
	Strict    bool
	KeySuffix string
}

type CleanStats struct {
	Groups          int
	GroupsKept      int
	Profiles        int
	ProfilesKept    int
	ProfilesDropped int
}

// CleanDocument normalizes every extracted profile into the fixed schema
// and drops source groups left without any surviving profile. Group keys
// lose the configured trailing suffix.
func CleanDocument(doc map[string]internal.ExtractedSource, opts CleanOptions) (map[string]internal.CleanedSource, CleanStats) {
	out := map[string]internal.CleanedSource{}
	stats := CleanStats{}

	for key, source := range doc {
		stats.Groups++

		cleaned := internal.CleanedSource{
			SourceFile: source.SourceFile,
			TotalItems: source.TotalItems,
			Profiles:   []internal.Profile{},
		}

		for _, item := range source.ExtractedItems {
			stats.Profiles++
			raw, ok := item.(map[string]any)
			if !ok {
				stats.ProfilesDropped++
				continue
			}
			profile, ok := CleanProfile(raw, opts.Strict)
			if !ok {
				stats.ProfilesDropped++
				continue
			}
			cleaned.Profiles = append(cleaned.Profiles, profile)
			stats.ProfilesKept++
		}

		if len(cleaned.Profiles) == 0 {
			continue
		}

		name := key
		if opts.KeySuffix != "" {
			name = strings.TrimSuffix(name, opts.KeySuffix)
		}
		out[name] = cleaned
		stats.GroupsKept++
	}

	return out, stats
}

// CleanProfile maps one raw record onto the fixed schema. The second
// return value is false when the record has no resolvable identifier and
// must be discarded.
func CleanProfile(raw map[string]any, strict bool) (internal.Profile, bool) {
	profile := internal.Profile{
		Website:      util.CleanString(raw["website"]),
		FullName:     util.CleanString(raw["full_name"]),
		Title:        util.CleanString(raw["title"]),
		OrgUnit:      util.CleanString(raw["org_unit"]),
		Telephone:    util.CleanTelephone(raw["telephone"]),
		Email:        util.CleanEmail(raw["email"]),
		Introduction: util.CleanIntroduction(introductionValue(raw)),
		Tag:          cleanTags(tagValue(raw)),
	}

	orcid := util.CleanORCID(raw["orcid"])
	switch {
	case orcid != "":
		profile.Orcid = orcid
		profile.IsRealOrcid = true
	case strict:
		return internal.Profile{}, false
	case profile.Email != "":
		profile.Orcid = profile.Email
		profile.IsRealOrcid = false
	default:
		return internal.Profile{}, false
	}

	return profile, true
}

// introductionValue tolerates the field renames the sources went through.
func introductionValue(raw map[string]any) any {
	for _, key := range []string{"introduction", "brief_introduction"} {
		if v, ok := raw[key]; ok {
			return v
		}
	}
	return nil
}

func tagValue(raw map[string]any) any {
	if v, ok := raw["tag"]; ok {
		return v
	}
	return raw["tags"]
}

// cleanTags keeps only well-formed [category, subcategory-list] pairs;
// wrong arity or empty halves are dropped silently.
func cleanTags(value any) []internal.TagPair {
	list, ok := value.([]any)
	if !ok {
		return []internal.TagPair{}
	}

	pairs := make([]internal.TagPair, 0, len(list))
	for _, item := range list {
		group, ok := item.([]any)
		if !ok || len(group) < 2 {
			continue
		}
		category := strings.TrimSpace(fmt.Sprint(group[0]))
		subcategories := strings.TrimSpace(fmt.Sprint(group[1]))
		if category == "" || subcategories == "" {
			continue
		}
		pairs = append(pairs, internal.TagPair{category, subcategories})
	}
	return pairs
}
