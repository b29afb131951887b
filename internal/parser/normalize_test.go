package parser

import (
	"math"
	"testing"
	"time"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// tableOf builds a table from headers and text rows; "" becomes a missing
// cell so tests read like the spreadsheets they stand for.
func tableOf(headers []string, rows ...[]string) *model.Table {
	t := &model.Table{Headers: headers}
	for _, raw := range rows {
		cells := make([]model.Cell, len(headers))
		for i := range headers {
			if i < len(raw) && raw[i] != "" {
				cells[i] = model.TextCell(raw[i])
			} else {
				cells[i] = model.MissingCell
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func TestNormalizeEmptyTable(t *testing.T) {
	records, threshold := Normalize(&model.Table{Headers: []string{"notti"}})
	if len(records) != 0 {
		t.Errorf("empty table produced %d records", len(records))
	}
	if threshold != nil {
		t.Errorf("empty table threshold = %v, want nil", *threshold)
	}
}

func TestNormalizeNightsAndGuestsFloors(t *testing.T) {
	tbl := tableOf(
		[]string{"notti", "ospiti"},
		[]string{"0", "-2"},
		[]string{"abc", ""},
		[]string{"3", "2"},
	)

	records, _ := Normalize(tbl)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, rec := range records[:2] {
		if rec.Notti != 1 {
			t.Errorf("row %d notti = %d, want 1", i, rec.Notti)
		}
		if rec.Ospiti != 1 {
			t.Errorf("row %d ospiti = %d, want 1", i, rec.Ospiti)
		}
	}
	if records[2].Notti != 3 || records[2].Ospiti != 2 {
		t.Errorf("row 2 = %d nights / %d guests, want 3/2", records[2].Notti, records[2].Ospiti)
	}
}

func TestNormalizeNightsDerivedFromDates(t *testing.T) {
	tbl := tableOf(
		[]string{"notti", "data arrivo", "data partenza"},
		[]string{"", "2024-03-10", "2024-03-14"},
		[]string{"0", "15/03/2024", "18/03/2024"},
		[]string{"", "2024-03-20", "2024-03-18"},
	)

	records, _ := Normalize(tbl)
	if records[0].Notti != 4 {
		t.Errorf("nights from ISO dates = %d, want 4", records[0].Notti)
	}
	if records[1].Notti != 3 {
		t.Errorf("nights from DD/MM/YYYY dates = %d, want 3", records[1].Notti)
	}
	// Departure before arrival floors at 0, then clamps to 1.
	if records[2].Notti != 1 {
		t.Errorf("nights from inverted dates = %d, want 1", records[2].Notti)
	}
}

func TestNormalizeWeekday(t *testing.T) {
	tests := []struct {
		name string
		cell model.Cell
		want string
	}{
		{"italian full name", model.TextCell("lunedì"), "lun"},
		{"english full name", model.TextCell("Friday"), "fri"},
		{"already abbreviated", model.TextCell("SAB"), "sab"},
		{"numeric monday", model.NumberCell(0), "lun"},
		{"numeric sunday", model.NumberCell(6), "dom"},
		{"numeric wrapped", model.NumberCell(8), "mar"},
		{"date cell", model.DateCell(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), "ven"}, // a Friday
		{"missing", model.MissingCell, ""},
		{"single char", model.TextCell("x"), "x"},
	}
	for _, tt := range tests {
		if got := dayName(tt.cell); got != tt.want {
			t.Errorf("%s: dayName = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeWeekdayFallsBackToArrival(t *testing.T) {
	tbl := tableOf(
		[]string{"data arrivo"},
		[]string{"2024-03-15"}, // Friday
	)
	records, _ := Normalize(tbl)
	if records[0].Giorno != "ven" {
		t.Errorf("giorno from arrival date = %q, want ven", records[0].Giorno)
	}
}

func TestNormalizeArrivalDateFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2024-01-15", "2024-01-15"},
		{"15/01/2024", "2024-01-15"},
		{"01/15/2024", "2024-01-15"}, // month 15 is invalid, MM/DD wins
		{"15-01-2024", "2024-01-15"},
		{"2024/01/15", "2024-01-15"},
		{"sometime in spring", "sometime i"}, // verbatim, capped at 10 chars
	}
	for _, tt := range tests {
		tbl := tableOf([]string{"data arrivo"}, []string{tt.raw})
		records, _ := Normalize(tbl)
		if records[0].DataArrivo != tt.want {
			t.Errorf("data_arrivo(%q) = %q, want %q", tt.raw, records[0].DataArrivo, tt.want)
		}
	}
}

func TestNormalizeVacationFlag(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"2024-07-10", true},
		{"2024-12-24", true},
		{"2024-01-02", true},
		{"2024-03-10", false},
		{"garbage", false},
		{"", false},
	}
	for _, tt := range tests {
		tbl := tableOf([]string{"data arrivo"}, []string{tt.raw})
		records, _ := Normalize(tbl)
		if records[0].Vacation != tt.want {
			t.Errorf("vacation(%q) = %v, want %v", tt.raw, records[0].Vacation, tt.want)
		}
	}
}

func TestNormalizeSpendAndRevenue(t *testing.T) {
	tbl := tableOf(
		[]string{"notti", "spesa media"},
		[]string{"3", "120.50"},
		[]string{"2", "n/d"},
		[]string{"2", ""},
	)

	records, _ := Normalize(tbl)

	if records[0].Spesa == nil || *records[0].Spesa != 120.50 {
		t.Fatalf("spesa = %v, want 120.50", records[0].Spesa)
	}
	if records[0].Revenue == nil || math.Abs(*records[0].Revenue-361.50) > 1e-9 {
		t.Errorf("revenue = %v, want 361.50", records[0].Revenue)
	}
	for i, rec := range records[1:] {
		if rec.Spesa != nil {
			t.Errorf("row %d spesa = %v, want nil", i+1, *rec.Spesa)
		}
		if rec.Revenue != nil {
			t.Errorf("row %d revenue = %v, want nil (never zero or defaulted)", i+1, *rec.Revenue)
		}
	}
}

func TestNormalizeThreshold(t *testing.T) {
	tbl := tableOf(
		[]string{"spesa media"},
		[]string{"100"},
		[]string{"200"},
		[]string{"300"},
		[]string{"400"},
		[]string{"not a number"},
	)

	_, threshold := Normalize(tbl)
	if threshold == nil {
		t.Fatal("threshold is nil, want 325")
	}
	if math.Abs(*threshold-325) > 1e-9 {
		t.Errorf("threshold = %v, want 325", *threshold)
	}
}

func TestNormalizeThresholdAbsentColumn(t *testing.T) {
	tbl := tableOf([]string{"notti"}, []string{"2"})
	_, threshold := Normalize(tbl)
	if threshold != nil {
		t.Errorf("threshold = %v, want nil without a spend column", *threshold)
	}
}

func TestNormalizeSkippedRowKeepsIndexGap(t *testing.T) {
	tbl := tableOf([]string{"notti"}, []string{"1"}, []string{"2"})
	// Force a per-row failure in the middle: a row with no cells at all.
	tbl.Rows = [][]model.Cell{tbl.Rows[0], {}, tbl.Rows[1]}

	records, _ := Normalize(tbl)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].RowIndex != 0 || records[1].RowIndex != 2 {
		t.Errorf("row indexes = %d,%d, want 0,2 (gap reflects skipped row)", records[0].RowIndex, records[1].RowIndex)
	}
}

// TestNormalizePositionalFallback feeds a table whose headers resolve to no
// logical field: fields come from column positions and output is non-empty.
func TestNormalizePositionalFallback(t *testing.T) {
	tbl := tableOf(
		[]string{"x1", "x2", "x3", "x4", "x5", "x6", "x7", "x8", "x9", "x10"},
		[]string{"C1", "2024-02-10", "2", "1", "corporate", "mar", "1", "150", "Standard", "ignored"},
	)

	records, threshold := Normalize(tbl)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.ClienteID != "C1" || rec.Notti != 2 || rec.Ospiti != 1 || rec.Canale != "corporate" || rec.Giorno != "mar" {
		t.Errorf("unexpected positional record: %+v", rec)
	}
	if threshold == nil || *threshold != 150 {
		t.Errorf("threshold = %v, want 150", threshold)
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		values []float64
		p      float64
		want   float64
	}{
		{[]float64{100, 200, 300, 400}, 0.75, 325},
		{[]float64{50}, 0.75, 50},
		{[]float64{10, 20}, 0.75, 17.5},
		{[]float64{1, 2, 3}, 0.5, 2},
		{[]float64{3, 1, 2}, 1, 3},
	}
	for _, tt := range tests {
		if got := Percentile(tt.values, tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Percentile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
		}
	}
}
