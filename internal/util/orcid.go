package util

import (
	"regexp"
	"strings"
)

var (
	orcidPattern = regexp.MustCompile(`\d{4}-\d{4}-\d{4}-\d{3}[0-9X]`)
	orcidExact   = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[0-9X]$`)
)

// CleanORCID extracts a valid ORCID identifier from a raw field value.
// Values embedding an orcid.org URL yield the identifier inside the URL;
// anything else must match the ORCID pattern exactly. Returns "" when no
// valid identifier is present.
func CleanORCID(value any) string {
	s := CleanString(value)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "orcid.org") {
		return orcidPattern.FindString(s)
	}
	if orcidExact.MatchString(s) {
		return s
	}
	return ""
}
