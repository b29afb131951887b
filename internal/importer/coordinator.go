// Package importer runs the full upload pipeline: normalize every table row,
// compute the corpus spend threshold, score each record, and assemble the
// segmented customer list. One atomic call per upload; no partial results.
package importer

import (
	"github.com/Miguelll86/customer-segmentation/internal/model"
	"github.com/Miguelll86/customer-segmentation/internal/parser"
	"github.com/Miguelll86/customer-segmentation/internal/scoring"
)

// Result is the outcome of one pipeline run. Skipped counts rows dropped by
// per-row normalization failures; an entirely-empty outcome is the caller's
// concern, not an error here.
type Result struct {
	Customers []model.SegmentedCustomer `json:"customers"`
	Threshold *float64                  `json:"spend_threshold"`
	TotalRows int                       `json:"total_rows"`
	Imported  int                       `json:"imported_rows"`
	Skipped   int                       `json:"skipped_rows"`
}

// Run processes a table end to end. The threshold reduction completes before
// any row is scored, since the Premium spend rule depends on it.
func Run(t *model.Table) Result {
	return RunProgress(t, nil)
}

// RunProgress is Run with a per-row progress callback for long batch runs.
// progress may be nil.
func RunProgress(t *model.Table, progress func(done, total int)) Result {
	records, threshold := parser.Normalize(t)

	res := Result{
		Threshold: threshold,
		Imported:  len(records),
	}
	if t != nil {
		res.TotalRows = len(t.Rows)
	}
	res.Skipped = res.TotalRows - res.Imported

	res.Customers = make([]model.SegmentedCustomer, 0, len(records))
	for i, rec := range records {
		scores, segment := scoring.ScoreAndSegment(rec, threshold)
		res.Customers = append(res.Customers, buildCustomer(rec, scores, segment))
		if progress != nil {
			progress(i+1, len(records))
		}
	}
	return res
}

// buildCustomer maps a scored record onto the output shape, nil-ing out the
// optional free-text fields that came back blank.
func buildCustomer(rec parser.Record, scores model.Scores, segment model.Segment) model.SegmentedCustomer {
	return model.SegmentedCustomer{
		RowIndex:         rec.RowIndex,
		Segment:          segment,
		Scores:           scores,
		NumeroNotti:      rec.Notti,
		NumeroOspiti:     rec.Ospiti,
		Canale:           optional(rec.Canale),
		GiornoArrivo:     optional(rec.Giorno),
		StoricoSoggiorni: rec.Storico,
		SpesaMedia:       rec.Spesa,
		ClienteID:        optional(rec.ClienteID),
		NomeCliente:      optional(rec.NomeCliente),
		DataArrivo:       optional(rec.DataArrivo),
		CategoriaCamera:  optional(rec.CategoriaCamera),
		Revenue:          rec.Revenue,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
