// Package extract turns heterogeneous lead sources (CSV uploads, Excel
// event lists and CRM exports, marketplace HTML pages, event PDFs) into raw
// rows for the normalizer. Extractors never fail on sparse or malformed
// rows; they fail only on unreadable input.
package extract

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/eps-group/leadgen-cli/internal/model"
)

// TagSource appends a provenance marker to each row's notes so the origin
// survives normalization and lands in the CRM.
func TagSource(rows []model.RawRow, label string) []model.RawRow {
	if label == "" {
		return rows
	}
	for _, row := range rows {
		if row["notes"] == "" {
			row["notes"] = "source=" + label
		} else {
			row["notes"] += " | source=" + label
		}
	}
	return rows
}

// FromFile dispatches on file extension and returns raw rows.
func FromFile(path string) ([]model.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path)
	case ".xlsx", ".xls":
		return ReadXLSX(path)
	case ".html", ".htm":
		return ReadMarketplaceFile(path)
	case ".pdf":
		return ReadEventPDF(path)
	default:
		return nil, eris.Errorf("extract: unsupported file type %q", filepath.Ext(path))
	}
}
