package util

import (
	"fmt"
	"strings"
)

// CleanString normalizes a raw JSON field value to a single trimmed
// string. List values are joined with "; ", nil becomes the empty string.
func CleanString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			s := strings.TrimSpace(fmt.Sprint(item))
			if s == "" {
				continue
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, "; ")
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// CleanTelephone joins multiple phone numbers with "; ". Unlike
// CleanString it only accepts string list elements; anything else in the
// list is dropped.
func CleanTelephone(value any) string {
	list, ok := value.([]any)
	if !ok {
		return CleanString(value)
	}
	phones := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		phones = append(phones, s)
	}
	return strings.Join(phones, "; ")
}

// CleanEmail keeps a value only if it looks like an address: an "@" with
// a "." somewhere in the domain part.
func CleanEmail(value any) string {
	email := CleanString(value)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	if !strings.Contains(email[at+1:], ".") {
		return ""
	}
	return email
}

// CleanIntroduction applies the string rule and flattens embedded
// newlines to spaces, so the text survives as a single CSV cell.
func CleanIntroduction(value any) string {
	s := CleanString(value)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}
