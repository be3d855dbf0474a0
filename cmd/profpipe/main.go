package main

import (
	"flag"
	"fmt"
	"os"

	"profpipe/internal"
	"profpipe/internal/config"
	"profpipe/internal/pipeline"
	"profpipe/internal/storage"
	"profpipe/internal/tagindex"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "extract":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		dir := fs.String("dir", cfg.DataDir, "directory of source JSON array files")
		out := fs.String("out", cfg.ExtractedPath(), "combined output file")
		count := fs.Int("count", cfg.ExtractCount, "items to sample per file")
		_ = fs.Parse(os.Args[2:])

		result, err := pipeline.ExtractDir(*dir, *count)
		must(err)
		must(pipeline.WriteJSON(*out, result.Sources))
		fmt.Printf("extract done files=%d skipped=%d items=%d output=%s\n",
			result.FilesSeen, result.FilesSkipped, result.Extracted, *out)

	case "clean":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.ExtractedPath(), "extract output file")
		output := fs.String("output", cfg.CleanedPath(), "cleaned output file")
		strict := fs.Bool("strict", cfg.OrcidStrict, "drop records without a valid ORCID")
		_ = fs.Parse(os.Args[2:])

		var doc map[string]internal.ExtractedSource
		must(pipeline.ReadJSON(*input, &doc))
		cleaned, stats := pipeline.CleanDocument(doc, pipeline.CleanOptions{
			Strict:    *strict,
			KeySuffix: cfg.SourceKeySuffix,
		})
		must(pipeline.WriteJSON(*output, cleaned))
		fmt.Printf("clean done groups=%d/%d profiles=%d dropped=%d output=%s\n",
			stats.GroupsKept, stats.Groups, stats.ProfilesKept, stats.ProfilesDropped, *output)

	case "tags:resolve":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		indexPath := fs.String("index", cfg.IndexPath, "tag index file")
		fs.Usage = func() {
			fmt.Fprintln(os.Stderr, "usage: profpipe tags:resolve [--index=PATH] INPUT OUTPUT")
			fs.PrintDefaults()
		}
		_ = fs.Parse(os.Args[2:])
		input, output := cfg.CleanedPath(), cfg.ResolvedPath()
		if fs.NArg() >= 1 {
			input = fs.Arg(0)
		}
		if fs.NArg() >= 2 {
			output = fs.Arg(1)
		}

		idx, err := tagindex.Load(*indexPath)
		must(err)
		fmt.Printf("loaded %d categories and %d subcategories from %s\n",
			len(idx.CategoryIDByName), len(idx.SubIDByName), *indexPath)

		var doc map[string]internal.CleanedSource
		must(pipeline.ReadJSON(input, &doc))
		resolved, stats := pipeline.NewResolver(idx).ResolveDocument(doc)
		must(pipeline.WriteJSON(output, resolved))
		fmt.Printf("resolve done profiles=%d/%d withTags=%d output=%s\n",
			stats.ProfilesKept, stats.Profiles, stats.WithTags, output)

	case "csv:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.ResolvedPath(), "resolved output file")
		productsOut := fs.String("products", cfg.ProductsCSVPath(), "academic products CSV path")
		tagsOut := fs.String("tags", cfg.TagsCSVPath(), "tags CSV path")
		_ = fs.Parse(os.Args[2:])

		products, tags, stats, err := pipeline.Rows(*input)
		must(err)
		must(pipeline.ExportProductsCSV(products, *productsOut))
		must(pipeline.ExportTagsCSV(tags, *tagsOut))
		fmt.Printf("csv export done products=%d tagRows=%d skippedNoOrcid=%d\n",
			stats.Products, stats.TagRows, stats.SkippedNoOrcid)

	case "xlsx:export":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.ResolvedPath(), "resolved output file")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *out == "" {
			must(fmt.Errorf("--out is required"))
		}

		products, tags, _, err := pipeline.Rows(*input)
		must(err)
		must(pipeline.ExportXLSX(products, tags, *out))
		fmt.Printf("xlsx export done products=%d tagRows=%d output=%s\n",
			len(products), len(tags), *out)

	case "db:load":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.ResolvedPath(), "resolved output file")
		dbPath := fs.String("db", cfg.DBPath, "sqlite database path")
		_ = fs.Parse(os.Args[2:])

		products, tags, _, err := pipeline.Rows(*input)
		must(err)
		db, err := storage.Open(*dbPath)
		must(err)
		defer db.Close()
		loadedProducts, loadedTags, err := db.LoadRows(products, tags)
		must(err)
		fmt.Printf("db load done products=%d tagRows=%d db=%s\n", loadedProducts, loadedTags, *dbPath)

	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		strict := fs.Bool("strict", cfg.OrcidStrict, "drop records without a valid ORCID")
		loadDB := fs.Bool("load-db", false, "also load results into sqlite")
		_ = fs.Parse(os.Args[2:])
		cfg.OrcidStrict = *strict

		summary, err := pipeline.Run(cfg)
		must(err)
		fmt.Printf("extract: files=%d skipped=%d items=%d\n",
			summary.Extract.FilesSeen, summary.Extract.FilesSkipped, summary.Extract.Extracted)
		fmt.Printf("clean: groups=%d/%d profiles=%d dropped=%d\n",
			summary.Clean.GroupsKept, summary.Clean.Groups, summary.Clean.ProfilesKept, summary.Clean.ProfilesDropped)
		fmt.Printf("resolve: profiles=%d/%d withTags=%d\n",
			summary.Resolve.ProfilesKept, summary.Resolve.Profiles, summary.Resolve.WithTags)
		fmt.Printf("flatten: products=%d tagRows=%d skippedNoOrcid=%d\n",
			summary.Flatten.Products, summary.Flatten.TagRows, summary.Flatten.SkippedNoOrcid)

		if *loadDB {
			products, tags, _, err := pipeline.Rows(cfg.ResolvedPath())
			must(err)
			db, err := storage.Open(cfg.DBPath)
			must(err)
			defer db.Close()
			loadedProducts, loadedTags, err := db.LoadRows(products, tags)
			must(err)
			fmt.Printf("db load: products=%d tagRows=%d db=%s\n", loadedProducts, loadedTags, cfg.DBPath)
		}

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: profpipe <command>")
	fmt.Println("commands:")
	fmt.Println("  extract      [--dir=...] [--out=...] [--count=3]")
	fmt.Println("  clean        [--input=...] [--output=...] [--strict]")
	fmt.Println("  tags:resolve [--index=PATH] INPUT OUTPUT")
	fmt.Println("  csv:export   [--input=...] [--products=...] [--tags=...]")
	fmt.Println("  xlsx:export  [--input=...] --out=./out/profiles.xlsx")
	fmt.Println("  db:load      [--input=...] [--db=...]")
	fmt.Println("  run          [--strict] [--load-db]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
