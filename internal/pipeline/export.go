package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"profpipe/internal"
)

var (
	productHeaders = []string{"orcid", "profiles", "introduction"}
	tagHeaders     = []string{"orcid", "tag_id", "sub_id"}
)

// ExportProductsCSV writes academic_products.csv.
func ExportProductsCSV(rows []internal.ProductRow, path string) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, productHeaders)
	for _, row := range rows {
		records = append(records, []string{row.Orcid, row.ProfilesJSON, row.Introduction})
	}
	return writeCSV(path, records)
}

// ExportTagsCSV writes tags.csv.
func ExportTagsCSV(rows []internal.TagRow, path string) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, tagHeaders)
	for _, row := range rows {
		records = append(records, []string{row.Orcid, strconv.Itoa(row.TagID), strconv.Itoa(row.SubID)})
	}
	return writeCSV(path, records)
}

func writeCSV(path string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	return f.Close()
}

// ExportXLSX writes both tables into one workbook, a sheet per table, for
// people who review the load files in a spreadsheet.
func ExportXLSX(products []internal.ProductRow, tags []internal.TagRow, outputPath string) error {
	f := excelize.NewFile()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "academic_products"); err != nil {
		return err
	}
	if _, err := f.NewSheet("tags"); err != nil {
		return err
	}

	setRow := func(sheet string, rowNo int, values []any) {
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNo)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	setRow("academic_products", 1, []any{"orcid", "profiles", "introduction"})
	for i, row := range products {
		setRow("academic_products", i+2, []any{row.Orcid, row.ProfilesJSON, row.Introduction})
	}

	setRow("tags", 1, []any{"orcid", "tag_id", "sub_id"})
	for i, row := range tags {
		setRow("tags", i+2, []any{row.Orcid, row.TagID, row.SubID})
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
