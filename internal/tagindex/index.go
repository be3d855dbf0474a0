// Package tagindex loads the static category/subcategory index document
// and answers name-to-ID lookups during tag resolution.
package tagindex

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"profpipe/internal"
)

// Category is one entry of the index document.
type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID   internal.SubID `json:"id"`
	Name string         `json:"name"`
}

// Index maps display names to IDs. Built once at startup, read-only
// afterwards.
type Index struct {
	CategoryIDByName map[string]int
	SubIDByName      map[string]internal.SubID
}

// Load reads an index file and builds the lookup maps.
func Load(path string) (*Index, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}

	var categories []Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("parse index %s: %w", path, err)
	}

	return BuildIndex(categories), nil
}

// BuildIndex constructs the lookup maps from parsed categories. Duplicate
// names keep the last occurrence.
func BuildIndex(categories []Category) *Index {
	idx := &Index{
		CategoryIDByName: map[string]int{},
		SubIDByName:      map[string]internal.SubID{},
	}

	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			continue
		}
		idx.CategoryIDByName[name] = cat.ID
		for _, sub := range cat.Subcategories {
			subName := strings.TrimSpace(sub.Name)
			if subName == "" {
				continue
			}
			idx.SubIDByName[subName] = sub.ID
		}
	}

	return idx
}

// CategoryID looks up a category by display name.
func (i *Index) CategoryID(name string) (int, bool) {
	id, ok := i.CategoryIDByName[strings.TrimSpace(name)]
	return id, ok
}

// SubID looks up a subcategory by display name.
func (i *Index) SubID(name string) (internal.SubID, bool) {
	id, ok := i.SubIDByName[strings.TrimSpace(name)]
	return id, ok
}
