// Package ingest decodes uploaded spreadsheet files (.xlsx, .csv) into the
// tabular value the parser consumes. Cell typing happens here, at the
// boundary: downstream code only ever sees the closed cell variants.
package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// detectDateFormats are the textual date shapes recognized at ingestion.
// Kept aligned with what the normalizer accepts.
var detectDateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
}

// DetectCell types a raw string value: blank (or a spreadsheet NaN marker)
// becomes Missing, numeric text a Number, a recognized date shape a Date,
// anything else free Text with the original spelling preserved.
func DetectCell(raw string) model.Cell {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "", "nan", "NaN", "NAN":
		return model.MissingCell
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return model.NumberCell(v)
	}
	for _, layout := range detectDateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return model.DateCell(t)
		}
	}
	return model.TextCell(raw)
}

// cellRow converts one raw row, padding with Missing up to width and
// dropping cells beyond it so every row aligns with the header set.
func cellRow(raw []string, width int) []model.Cell {
	row := make([]model.Cell, width)
	for i := 0; i < width; i++ {
		if i < len(raw) {
			row[i] = DetectCell(raw[i])
		} else {
			row[i] = model.MissingCell
		}
	}
	return row
}
