package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// DecodeExcel parses the first sheet of an .xlsx workbook into a table. The
// first row is the header row.
func DecodeExcel(data []byte) (*model.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty sheet")
	}

	t := &model.Table{Headers: rows[0]}
	for _, raw := range rows[1:] {
		t.Rows = append(t.Rows, cellRow(raw, len(t.Headers)))
	}
	return t, nil
}

// DecodeFile dispatches on the file extension. Legacy .xls workbooks are not
// supported; the error tells the user how to convert them.
func DecodeFile(filename string, data []byte) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return DecodeExcel(data)
	case ".csv":
		return DecodeCSV(data)
	case ".xls":
		return nil, errors.New("file .xls non supportato: salva il file come .xlsx o CSV UTF-8 e ricarica")
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(filename))
	}
}
