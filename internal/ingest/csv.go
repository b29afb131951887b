package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// DecodeCSV parses CSV bytes into a table. The first record is the header
// row. Tolerates a UTF-8 BOM, lazy quoting, and ragged rows; payloads that
// are not valid UTF-8 fall back to Latin-1.
func DecodeCSV(data []byte) (*model.Table, error) {
	data = decodeText(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	t := &model.Table{Headers: headers}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		t.Rows = append(t.Rows, cellRow(record, len(headers)))
	}
	return t, nil
}

// decodeText strips a UTF-8 BOM and, when the payload is not valid UTF-8,
// reinterprets it as Latin-1. Every Latin-1 byte maps directly to the same
// Unicode code point.
func decodeText(data []byte) []byte {
	data = bytes.TrimPrefix(data, bomUTF8)
	if utf8.Valid(data) {
		return data
	}
	var b bytes.Buffer
	b.Grow(len(data) * 2)
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.Bytes()
}
