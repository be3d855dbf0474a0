package internal

import "encoding/json"

// TagPair is a raw [category, subcategory-list] pair as it appears in the
// source data, e.g. ["Artificial Intelligence", "Machine Learning, NLP"].
// The second element is a comma-separated list of subcategory names.
type TagPair [2]string

func (p TagPair) Category() string      { return p[0] }
func (p TagPair) Subcategories() string { return p[1] }

// SubID is a subcategory identifier as found in the tag index. Index
// documents carry them either as JSON numbers or as "major.minor" strings
// ("8.2"); both forms are kept verbatim until flattening.
type SubID string

func (s *SubID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = SubID(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = SubID(num.String())
	return nil
}

func (s SubID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// ExtractedSource is one source file's sample: the first N raw items plus
// provenance, keyed by file stem in the combined extract document.
type ExtractedSource struct {
	SourceFile     string `json:"source_file"`
	TotalItems     int    `json:"total_items"`
	ExtractedItems []any  `json:"extracted_items"`
}

// Profile is the fixed schema every raw researcher record is normalized
// into. All fields are always present; absent source values become the
// zero value. Orcid is the record identity: either a validated ORCID
// (IsRealOrcid true) or, in lenient mode, the email fallback.
type Profile struct {
	Website      string    `json:"website"`
	FullName     string    `json:"full_name"`
	Title        string    `json:"title"`
	OrgUnit      string    `json:"org_unit"`
	Telephone    string    `json:"telephone"`
	Email        string    `json:"email"`
	Introduction string    `json:"introduction"`
	Orcid        string    `json:"orcid"`
	IsRealOrcid  bool      `json:"is_real_orcid"`
	Tag          []TagPair `json:"tag"`
}

// CleanedSource is a source group after cleaning.
type CleanedSource struct {
	SourceFile string    `json:"source_file"`
	TotalItems int       `json:"total_items"`
	Profiles   []Profile `json:"profiles"`
}

// ResolvedTag replaces a TagPair once names have been mapped through the
// tag index.
type ResolvedTag struct {
	TagID int     `json:"tag_id"`
	SubID []SubID `json:"sub_id"`
}

// ResolvedProfile is a Profile whose string tags were replaced by index
// IDs. Profiles without an email never reach this stage.
type ResolvedProfile struct {
	Website      string        `json:"website"`
	FullName     string        `json:"full_name"`
	Title        string        `json:"title"`
	OrgUnit      string        `json:"org_unit"`
	Telephone    string        `json:"telephone"`
	Email        string        `json:"email"`
	Introduction string        `json:"introduction"`
	Orcid        string        `json:"orcid"`
	IsRealOrcid  bool          `json:"is_real_orcid"`
	Tags         []ResolvedTag `json:"tags"`
}

// ResolvedSource is a source group after tag resolution. The source file
// name is dropped here; downstream only needs the group name.
type ResolvedSource struct {
	TotalItems int               `json:"total_items"`
	Profiles   []ResolvedProfile `json:"profiles"`
}

// ProductRow is one line of academic_products.csv: the ORCID key, a
// compact JSON object of the remaining profile fields, and the
// introduction text as its own column.
type ProductRow struct {
	Orcid        string
	ProfilesJSON string
	Introduction string
}

// TagRow is one line of tags.csv. SubID is the integer form: for
// "major.minor" index IDs only the minor part.
type TagRow struct {
	Orcid string
	TagID int
	SubID int
}
