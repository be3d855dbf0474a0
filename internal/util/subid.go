package util

import (
	"strconv"
	"strings"
)

// ParseSubIDInt converts a subcategory ID token to the integer stored in
// the tags table. "major.minor" forms keep only the minor part ("8.2"
// becomes 2), plain integers parse directly, and anything else falls back
// to the digits found in the token, or 0 when there are none.
func ParseSubIDInt(raw string) int {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if n, err := strconv.Atoi(s[i+1:]); err == nil {
			return n
		}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	digits := strings.Builder{}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
