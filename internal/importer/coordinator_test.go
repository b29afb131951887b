package importer

import (
	"reflect"
	"testing"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

func textRow(values ...string) []model.Cell {
	row := make([]model.Cell, len(values))
	for i, v := range values {
		if v == "" {
			row[i] = model.MissingCell
		} else {
			row[i] = model.TextCell(v)
		}
	}
	return row
}

func arrivalsTable() *model.Table {
	return &model.Table{
		Headers: []string{"cliente", "data arrivo", "notti", "ospiti", "canale", "storico", "spesa media", "camera"},
		Rows: [][]model.Cell{
			textRow("C1", "2024-03-11", "1", "1", "corporate", "2", "90", "Standard"),
			textRow("C2", "2024-03-16", "2", "2", "Booking.com", "1", "150", "Standard"),
			textRow("C3", "2024-07-20", "5", "4", "OTA", "0", "", "Family"),
			textRow("C4", "2024-03-18", "6", "1", "direct", "5", "400", "Suite"),
		},
	}
}

func TestRunAssignsSegments(t *testing.T) {
	result := Run(arrivalsTable())

	if result.TotalRows != 4 || result.Imported != 4 || result.Skipped != 0 {
		t.Fatalf("counts = %d/%d/%d, want 4/4/0", result.TotalRows, result.Imported, result.Skipped)
	}

	want := []model.Segment{
		model.SegmentBusiness, // midweek, solo, short, corporate, repeat
		model.SegmentCoppia,   // two guests, weekend, OTA
		model.SegmentFamiglia, // four guests, long summer weekend stay
		model.SegmentPremium,  // high spend, loyal, long, direct, suite
	}
	for i, seg := range want {
		if result.Customers[i].Segment != seg {
			t.Errorf("row %d segment = %s, want %s (scores %+v)", i, result.Customers[i].Segment, seg, result.Customers[i].Scores)
		}
	}
}

func TestRunRevenueAndThreshold(t *testing.T) {
	result := Run(arrivalsTable())

	// Spend values 90, 150, 400: p75 of three values.
	if result.Threshold == nil || *result.Threshold != 275 {
		t.Fatalf("threshold = %v, want 275", result.Threshold)
	}

	c := result.Customers[3]
	if c.Revenue == nil || *c.Revenue != 2400 {
		t.Errorf("revenue = %v, want 2400 (400 x 6)", c.Revenue)
	}
	if result.Customers[2].Revenue != nil {
		t.Errorf("revenue without spend = %v, want nil", *result.Customers[2].Revenue)
	}
	if result.Customers[2].SpesaMedia != nil {
		t.Error("spesa should stay nil when the cell is blank")
	}
}

func TestRunOptionalFieldsNil(t *testing.T) {
	tbl := &model.Table{
		Headers: []string{"notti", "ospiti"},
		Rows:    [][]model.Cell{textRow("2", "2")},
	}
	c := Run(tbl).Customers[0]

	if c.Canale != nil || c.ClienteID != nil || c.NomeCliente != nil || c.DataArrivo != nil || c.CategoriaCamera != nil {
		t.Errorf("blank free-text fields should be null, got %+v", c)
	}
	if c.GiornoArrivo != nil {
		t.Errorf("giorno_arrivo = %q, want nil", *c.GiornoArrivo)
	}
}

func TestRunEmptyTable(t *testing.T) {
	result := Run(&model.Table{Headers: []string{"notti"}})
	if len(result.Customers) != 0 || result.Threshold != nil {
		t.Errorf("empty table produced %d customers, threshold %v", len(result.Customers), result.Threshold)
	}
}

// TestRunIdempotent: re-running the pipeline on the same table yields an
// identical result.
func TestRunIdempotent(t *testing.T) {
	a := Run(arrivalsTable())
	b := Run(arrivalsTable())
	if !reflect.DeepEqual(a, b) {
		t.Error("pipeline is not deterministic across runs")
	}
}

func TestRunProgressCallback(t *testing.T) {
	var calls int
	last := 0
	RunProgress(arrivalsTable(), func(done, total int) {
		calls++
		if done <= last || total != 4 {
			t.Errorf("progress(%d, %d) out of order", done, total)
		}
		last = done
	})
	if calls != 4 {
		t.Errorf("progress called %d times, want 4", calls)
	}
}
