package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// Record is one arrival row mapped onto the canonical schema, types coerced
// and defaults applied. Notti and Ospiti are always >= 1; Spesa stays nil
// when the source value was missing or non-numeric so it never pollutes
// averages downstream.
type Record struct {
	RowIndex        int
	Notti           int
	Ospiti          int
	Canale          string
	Giorno          string
	Storico         int
	Spesa           *float64
	ClienteID       string
	NomeCliente     string
	DataArrivo      string
	CategoriaCamera string
	Vacation        bool
	Revenue         *float64
}

var errEmptyRow = errors.New("row has no cells")

// Normalize maps a table onto the canonical schema, one record per parseable
// row, plus the 75th-percentile spend threshold across the whole table (nil
// when no numeric spend value exists). Rows that fail normalization are
// dropped; surviving records keep their source row index, so gaps in the
// sequence reflect skipped rows. An empty table yields an empty result.
func Normalize(t *model.Table) ([]Record, *float64) {
	if t == nil || t.Empty() {
		return nil, nil
	}

	colMap := ResolveColumns(t.Headers)
	if len(colMap) == 0 {
		// Totally unrecognized headers: assign fields by position.
		colMap = PositionalColumns(t.Headers)
	}

	threshold := spendThreshold(t, colMap)

	records := make([]Record, 0, len(t.Rows))
	for i := range t.Rows {
		rec, err := normalizeRow(t, colMap, i)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, threshold
}

// normalizeRow coerces a single row. Failures are isolated per row: the
// caller drops the record and moves on.
func normalizeRow(t *model.Table, colMap map[string]int, row int) (Record, error) {
	if len(t.Rows[row]) == 0 {
		return Record{}, errEmptyRow
	}

	arrivoCell := fieldCell(t, colMap, row, FieldArrivo)

	notti, ok := coerceInt(fieldCell(t, colMap, row, FieldNotti))
	if !ok || notti <= 0 {
		if derived, derivedOK := nightsFromDates(arrivoCell, fieldCell(t, colMap, row, FieldPartenza)); derivedOK {
			notti = derived
		}
	}
	if notti <= 0 {
		// A stay is never recorded as zero nights.
		notti = 1
	}

	ospiti, ok := coerceInt(fieldCell(t, colMap, row, FieldOspiti))
	if !ok || ospiti <= 0 {
		ospiti = 1
	}

	giornoCell := fieldCell(t, colMap, row, FieldGiorno)
	if giornoCell.IsMissing() {
		giornoCell = arrivoCell
	}

	storico, _ := coerceInt(fieldCell(t, colMap, row, FieldStorico))
	if storico < 0 {
		storico = 0
	}

	spesa := coerceFloat(fieldCell(t, colMap, row, FieldSpesa))

	rec := Record{
		RowIndex:        row,
		Notti:           notti,
		Ospiti:          ospiti,
		Canale:          coerceString(fieldCell(t, colMap, row, FieldCanale)),
		Giorno:          dayName(giornoCell),
		Storico:         storico,
		Spesa:           spesa,
		ClienteID:       coerceString(fieldCell(t, colMap, row, FieldClienteID)),
		NomeCliente:     coerceString(fieldCell(t, colMap, row, FieldNomeCliente)),
		DataArrivo:      arrivalString(arrivoCell),
		CategoriaCamera: coerceString(fieldCell(t, colMap, row, FieldCamera)),
		Vacation:        isVacationPeriod(arrivoCell),
	}

	if spesa != nil {
		revenue := *spesa * float64(notti)
		rec.Revenue = &revenue
	}
	return rec, nil
}

// arrivalString renders the arrival date as YYYY-MM-DD when it parses, else
// preserves the raw value verbatim, capped at 10 characters.
func arrivalString(c model.Cell) string {
	if c.IsMissing() {
		return ""
	}
	if t, ok := parseDate(c); ok {
		return t.Format("2006-01-02")
	}
	return truncateRunes(strings.TrimSpace(coerceString(c)), 10)
}

// spendThreshold computes the corpus-wide 75th percentile of numeric spend
// values, nil when the spend column is unresolved or has no numeric value.
func spendThreshold(t *model.Table, colMap map[string]int) *float64 {
	col, ok := colMap[FieldSpesa]
	if !ok {
		return nil
	}
	var values []float64
	for i := range t.Rows {
		if v := coerceFloat(t.Cell(i, col)); v != nil {
			values = append(values, *v)
		}
	}
	if len(values) == 0 {
		return nil
	}
	p := Percentile(values, 0.75)
	return &p
}

// coerceFloat reads a cell as a float, nil for anything non-numeric.
func coerceFloat(c model.Cell) *float64 {
	switch c.Kind {
	case model.CellNumber:
		v := c.Number
		return &v
	case model.CellText:
		if v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64); err == nil {
			return &v
		}
	}
	return nil
}

// coerceInt reads a cell as an integer, truncating fractional values.
func coerceInt(c model.Cell) (int, bool) {
	v := coerceFloat(c)
	if v == nil {
		return 0, false
	}
	return int(*v), true
}

// coerceString reads a cell as trimmed free text, "" when missing.
func coerceString(c model.Cell) string {
	switch c.Kind {
	case model.CellText:
		return strings.TrimSpace(c.Text)
	case model.CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case model.CellDate:
		return c.Date.Format("2006-01-02")
	}
	return ""
}
