package pipeline

import (
	"bytes"
	"encoding/json"
	"sort"

	"profpipe/internal"
	"profpipe/internal/util"
)

type FlattenStats struct {
	Profiles       int
	Products       int
	TagRows        int
	SkippedNoOrcid int
}

// FlattenDocument converts the resolved per-source document into the two
// flat tables loaded into the relational store. Profiles without an ORCID
// cannot satisfy the destination key and are skipped.
func FlattenDocument(doc map[string]internal.ResolvedSource) ([]internal.ProductRow, []internal.TagRow, FlattenStats, error) {
	products := make([]internal.ProductRow, 0)
	tags := make([]internal.TagRow, 0)
	stats := FlattenStats{}

	// Deterministic row order regardless of map iteration.
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, profile := range doc[name].Profiles {
			stats.Profiles++
			if profile.Orcid == "" {
				stats.SkippedNoOrcid++
				continue
			}

			profilesJSON, err := marshalProfileFields(profile, name)
			if err != nil {
				return nil, nil, stats, err
			}
			products = append(products, internal.ProductRow{
				Orcid:        profile.Orcid,
				ProfilesJSON: profilesJSON,
				Introduction: profile.Introduction,
			})
			stats.Products++

			for _, tag := range profile.Tags {
				for _, sub := range tag.SubID {
					tags = append(tags, internal.TagRow{
						Orcid: profile.Orcid,
						TagID: tag.TagID,
						SubID: util.ParseSubIDInt(string(sub)),
					})
					stats.TagRows++
				}
			}
		}
	}

	return products, tags, stats, nil
}

// marshalProfileFields serializes every profile field except orcid,
// introduction and tags, adding the source group as "organization". The
// result lands in a single CSV cell, so it stays compact and unescaped.
func marshalProfileFields(p internal.ResolvedProfile, organization string) (string, error) {
	fields := struct {
		Website      string `json:"website"`
		FullName     string `json:"full_name"`
		Title        string `json:"title"`
		OrgUnit      string `json:"org_unit"`
		Telephone    string `json:"telephone"`
		Email        string `json:"email"`
		IsRealOrcid  bool   `json:"is_real_orcid"`
		Organization string `json:"organization"`
	}{
		Website:      p.Website,
		FullName:     p.FullName,
		Title:        p.Title,
		OrgUnit:      p.OrgUnit,
		Telephone:    p.Telephone,
		Email:        p.Email,
		IsRealOrcid:  p.IsRealOrcid,
		Organization: organization,
	}

	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fields); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
