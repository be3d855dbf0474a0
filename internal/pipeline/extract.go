package pipeline

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"profpipe/internal"
)

// ExtractResult is the combined sample document plus batch counters.
type ExtractResult struct {
	Sources map[string]internal.ExtractedSource

	FilesSeen    int
	FilesSkipped int
	Extracted    int
}

// ExtractDir samples the first count items from every *.json array file
// in dir and combines them into one document keyed by file stem. A file
// with malformed JSON is logged and skipped; the batch continues. A
// missing or empty directory is an error.
func ExtractDir(dir string, count int) (ExtractResult, error) {
	if _, err := os.Stat(dir); err != nil {
		return ExtractResult{}, fmt.Errorf("source directory %s: %w", dir, err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return ExtractResult{}, err
	}
	if len(paths) == 0 {
		return ExtractResult{}, fmt.Errorf("no JSON files found in %s", dir)
	}
	sort.Strings(paths)

	result := ExtractResult{Sources: map[string]internal.ExtractedSource{}}
	for _, path := range paths {
		result.FilesSeen++

		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("warning: skipping %s: %v", filepath.Base(path), err)
			result.FilesSkipped++
			continue
		}

		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Printf("warning: skipping %s: invalid JSON: %v", filepath.Base(path), err)
			result.FilesSkipped++
			continue
		}

		// Non-array documents produce an empty sample, mirroring how a
		// source with no usable items is still recorded.
		items, _ := doc.([]any)
		sample := items
		if sample == nil {
			sample = []any{}
		}
		if len(sample) > count {
			sample = sample[:count]
		}

		name := filepath.Base(path)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		result.Sources[stem] = internal.ExtractedSource{
			SourceFile:     name,
			TotalItems:     len(items),
			ExtractedItems: sample,
		}
		result.Extracted += len(sample)
	}

	return result, nil
}
