package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// Logical field names of the canonical arrival schema.
const (
	FieldNotti       = "numero_notti"
	FieldOspiti      = "numero_ospiti"
	FieldCanale      = "canale"
	FieldGiorno      = "giorno_arrivo"
	FieldStorico     = "storico_soggiorni"
	FieldSpesa       = "spesa_media"
	FieldClienteID   = "cliente_id"
	FieldNomeCliente = "nome_cliente"
	FieldArrivo      = "data_arrivo"
	FieldPartenza    = "data_partenza"
	FieldCamera      = "categoria_camera"
)

// columnAliases maps each logical field to its accepted header spellings,
// Italian and English, in match-priority order. The first alias found in the
// table wins for the whole table.
var columnAliases = []struct {
	field   string
	aliases []string
}{
	{FieldNotti, []string{"notti", "nights", "numero notti", "n. notti", "notte", "notti soggiorno"}},
	{FieldOspiti, []string{"ospiti", "guests", "pax", "numero ospiti", "n. ospiti", "adulti"}},
	{FieldCanale, []string{"canale", "channel", "canale prenotazione", "source", "distribution"}},
	{FieldGiorno, []string{"giorno arrivo", "day", "arrival day", "giorno", "weekday", "giorno_arrivo"}},
	{FieldStorico, []string{"storico", "storico soggiorni", "previous stays", "stays", "n. soggiorni", "soggiorni precedenti"}},
	{FieldSpesa, []string{"spesa", "spesa media", "revenue", "adr", "amount", "importo", "spesa_media", "tariffa", "tariff", "rate", "prezzo"}},
	{FieldClienteID, []string{"cliente", "id", "customer id", "guest id", "codice cliente", "id cliente"}},
	{FieldNomeCliente, []string{"nome", "nome cliente", "name", "guest name", "cliente nome", "nominativo"}},
	{FieldArrivo, []string{"data", "data arrivo", "arrival", "arrival date", "check-in", "check in", "data_arrivo"}},
	{FieldPartenza, []string{"data partenza", "departure", "check-out", "check out", "data_partenza"}},
	{FieldCamera, []string{"camera", "room", "room type", "categoria", "tipo camera", "categoria_camera"}},
}

// positionalFields assigns logical fields by column position when no header
// resolves at all. Columns beyond the last entry are ignored.
var positionalFields = []string{
	FieldClienteID,
	FieldArrivo,
	FieldNotti,
	FieldOspiti,
	FieldCanale,
	FieldGiorno,
	FieldStorico,
	FieldSpesa,
	FieldCamera,
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeHeader canonicalizes a column header for alias matching: trim,
// collapse internal whitespace, lowercase, strip diacritics.
func NormalizeHeader(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = whitespaceRe.ReplaceAllString(n, " ")
	return stripDiacritics(n)
}

// stripDiacritics removes combining marks after NFD decomposition, so that
// headers like "società" match their plain-ASCII alias spellings.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveColumns maps logical field names to column indexes of the table.
// Resolution happens once per table and is independent of column order; a
// duplicated header keeps its last occurrence. Unresolved fields are absent
// from the result.
func ResolveColumns(headers []string) map[string]int {
	byName := make(map[string]int, len(headers))
	for i, h := range headers {
		n := NormalizeHeader(h)
		if n == "" {
			continue
		}
		byName[n] = i
	}

	out := make(map[string]int)
	for _, entry := range columnAliases {
		for _, alias := range entry.aliases {
			if idx, ok := byName[NormalizeHeader(alias)]; ok {
				out[entry.field] = idx
				break
			}
		}
		if _, done := out[entry.field]; !done {
			// The logical name itself is always an acceptable header.
			if idx, ok := byName[entry.field]; ok {
				out[entry.field] = idx
			}
		}
	}
	return out
}

// PositionalColumns builds the fallback mapping used when no logical field
// resolved across the whole table.
func PositionalColumns(headers []string) map[string]int {
	out := make(map[string]int)
	for i := range headers {
		if i >= len(positionalFields) {
			break
		}
		out[positionalFields[i]] = i
	}
	return out
}

// fieldCell reads the cell of a logical field from a row, MissingCell when
// the field did not resolve.
func fieldCell(t *model.Table, colMap map[string]int, row int, field string) model.Cell {
	col, ok := colMap[field]
	if !ok {
		return model.MissingCell
	}
	return t.Cell(row, col)
}
