package ingest

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

func TestDetectCell(t *testing.T) {
	tests := []struct {
		raw  string
		want model.CellKind
	}{
		{"", model.CellMissing},
		{"   ", model.CellMissing},
		{"nan", model.CellMissing},
		{"NaN", model.CellMissing},
		{"12", model.CellNumber},
		{" 120.50 ", model.CellNumber},
		{"-3", model.CellNumber},
		{"2024-01-15", model.CellDate},
		{"15/01/2024", model.CellDate},
		{"Booking.com", model.CellText},
		{"lunedì", model.CellText},
	}
	for _, tt := range tests {
		if got := DetectCell(tt.raw); got.Kind != tt.want {
			t.Errorf("DetectCell(%q).Kind = %v, want %v", tt.raw, got.Kind, tt.want)
		}
	}

	if c := DetectCell(" 120.50 "); c.Number != 120.50 {
		t.Errorf("number cell = %v, want 120.50", c.Number)
	}
	if c := DetectCell("2024-01-15"); !c.Date.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date cell = %v", c.Date)
	}
	if c := DetectCell("  spaced text  "); c.Text != "  spaced text  " {
		t.Errorf("text cell should keep the original spelling, got %q", c.Text)
	}
}

func TestDecodeCSV(t *testing.T) {
	data := []byte("notti,ospiti,canale\n2,1,corporate\n3,2,\n")

	table, err := DecodeCSV(data)
	if err != nil {
		t.Fatalf("DecodeCSV failed: %v", err)
	}
	if len(table.Headers) != 3 || len(table.Rows) != 2 {
		t.Fatalf("table shape = %dx%d, want 3x2", len(table.Headers), len(table.Rows))
	}
	if table.Rows[0][0].Kind != model.CellNumber || table.Rows[0][0].Number != 2 {
		t.Errorf("cell (0,0) = %+v, want number 2", table.Rows[0][0])
	}
	if !table.Rows[1][2].IsMissing() {
		t.Errorf("empty trailing cell should be missing, got %+v", table.Rows[1][2])
	}
}

func TestDecodeCSVWithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("notti\n1\n")...)

	table, err := DecodeCSV(data)
	if err != nil {
		t.Fatalf("DecodeCSV failed: %v", err)
	}
	if table.Headers[0] != "notti" {
		t.Errorf("header = %q, BOM not stripped", table.Headers[0])
	}
}

func TestDecodeCSVLatin1Fallback(t *testing.T) {
	// "città" encoded as Latin-1: the byte 0xE0 is not valid UTF-8.
	data := []byte("nome\ncitt\xe0\n")

	table, err := DecodeCSV(data)
	if err != nil {
		t.Fatalf("DecodeCSV failed: %v", err)
	}
	if got := table.Rows[0][0].Text; got != "città" {
		t.Errorf("latin-1 cell = %q, want città", got)
	}
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	data := []byte("a,b,c\n1\n1,2,3,4\n")

	table, err := DecodeCSV(data)
	if err != nil {
		t.Fatalf("DecodeCSV failed: %v", err)
	}
	if !table.Rows[0][1].IsMissing() || !table.Rows[0][2].IsMissing() {
		t.Error("short row should be padded with missing cells")
	}
	if len(table.Rows[1]) != 3 {
		t.Errorf("long row kept %d cells, want 3", len(table.Rows[1]))
	}
}

func TestDecodeCSVEmpty(t *testing.T) {
	if _, err := DecodeCSV(nil); err == nil {
		t.Error("expected an error for an empty payload")
	}
}

func TestDecodeExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"notti", "canale"})
	_ = f.SetSheetRow(sheet, "A2", &[]interface{}{2, "direct"})
	_ = f.SetSheetRow(sheet, "A3", &[]interface{}{"", "ota"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("building workbook failed: %v", err)
	}

	table, err := DecodeExcel(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeExcel failed: %v", err)
	}
	if len(table.Headers) != 2 || len(table.Rows) != 2 {
		t.Fatalf("table shape = %dx%d, want 2x2", len(table.Headers), len(table.Rows))
	}
	if table.Rows[0][0].Kind != model.CellNumber {
		t.Errorf("numeric excel cell decoded as %v", table.Rows[0][0].Kind)
	}
	if !table.Rows[1][0].IsMissing() {
		t.Errorf("blank excel cell decoded as %+v", table.Rows[1][0])
	}
}

func TestDecodeFileDispatch(t *testing.T) {
	if _, err := DecodeFile("arrivi.xls", nil); err == nil {
		t.Error("legacy .xls should be rejected with a conversion hint")
	}
	if _, err := DecodeFile("arrivi.txt", nil); err == nil {
		t.Error("unknown extension should be rejected")
	}
	if _, err := DecodeFile("arrivi.csv", []byte("notti\n1\n")); err != nil {
		t.Errorf("csv dispatch failed: %v", err)
	}
}
