package pipeline

import (
	"fmt"

	"profpipe/internal"
	"profpipe/internal/config"
	"profpipe/internal/tagindex"
)

// RunSummary aggregates the per-stage counters of a full pipeline run.
type RunSummary struct {
	Extract ExtractResult
	Clean   CleanStats
	Resolve ResolveStats
	Flatten FlattenStats
}

// Run executes extract, clean, resolve and flatten back to back, writing
// every intermediate document to the configured output paths so single
// stages can be re-run in isolation afterwards.
func Run(cfg config.Config) (RunSummary, error) {
	summary := RunSummary{}

	extracted, err := ExtractDir(cfg.DataDir, cfg.ExtractCount)
	if err != nil {
		return summary, fmt.Errorf("extract: %w", err)
	}
	summary.Extract = extracted
	if err := WriteJSON(cfg.ExtractedPath(), extracted.Sources); err != nil {
		return summary, fmt.Errorf("extract: %w", err)
	}

	cleaned, cleanStats := CleanDocument(extracted.Sources, CleanOptions{
		Strict:    cfg.OrcidStrict,
		KeySuffix: cfg.SourceKeySuffix,
	})
	summary.Clean = cleanStats
	if err := WriteJSON(cfg.CleanedPath(), cleaned); err != nil {
		return summary, fmt.Errorf("clean: %w", err)
	}

	idx, err := tagindex.Load(cfg.IndexPath)
	if err != nil {
		return summary, fmt.Errorf("resolve: %w", err)
	}
	resolved, resolveStats := NewResolver(idx).ResolveDocument(cleaned)
	summary.Resolve = resolveStats
	if err := WriteJSON(cfg.ResolvedPath(), resolved); err != nil {
		return summary, fmt.Errorf("resolve: %w", err)
	}

	products, tags, flattenStats, err := FlattenDocument(resolved)
	if err != nil {
		return summary, fmt.Errorf("flatten: %w", err)
	}
	summary.Flatten = flattenStats
	if err := ExportProductsCSV(products, cfg.ProductsCSVPath()); err != nil {
		return summary, fmt.Errorf("flatten: %w", err)
	}
	if err := ExportTagsCSV(tags, cfg.TagsCSVPath()); err != nil {
		return summary, fmt.Errorf("flatten: %w", err)
	}

	return summary, nil
}

// Rows re-runs only the flatten step over an already resolved document,
// for exports that need the in-memory rows.
func Rows(resolvedPath string) ([]internal.ProductRow, []internal.TagRow, FlattenStats, error) {
	var resolved map[string]internal.ResolvedSource
	if err := ReadJSON(resolvedPath, &resolved); err != nil {
		return nil, nil, FlattenStats{}, err
	}
	return FlattenDocument(resolved)
}
