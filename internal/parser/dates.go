package parser

import (
	"strings"
	"time"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// dateFormats are tried in order on textual dates; the first parse wins.
// DD/MM comes before MM/DD, so an ambiguous "05/03/2024" reads as 5 March.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
}

// italianDays indexes 3-letter weekday abbreviations with 0 = Monday.
var italianDays = []string{"lun", "mar", "mer", "gio", "ven", "sab", "dom"}

// vacationMonths are the months that flag a vacation-period arrival.
var vacationMonths = map[time.Month]bool{
	time.January:  true,
	time.June:     true,
	time.July:     true,
	time.August:   true,
	time.December: true,
}

// parseDate coerces a cell to a date. Text is trimmed to its first 10
// characters before trying the supported formats. Numbers never parse.
func parseDate(c model.Cell) (time.Time, bool) {
	switch c.Kind {
	case model.CellDate:
		return c.Date, true
	case model.CellText:
		s := truncateRunes(strings.TrimSpace(c.Text), 10)
		for _, layout := range dateFormats {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// dayName reduces a weekday cell to a 3-letter lowercase token. Accepts an
// integer 0-6 (0 = Monday), a date, or a free-text day name; anything else
// yields "".
func dayName(c model.Cell) string {
	switch c.Kind {
	case model.CellNumber:
		idx := ((int(c.Number) % 7) + 7) % 7
		return italianDays[idx]
	case model.CellDate:
		return italianDays[mondayIndex(c.Date)]
	case model.CellText:
		// Arrival dates may arrive as text; a parseable date means weekday,
		// not a day name to truncate.
		if t, ok := parseDate(c); ok {
			return italianDays[mondayIndex(t)]
		}
		s := strings.ToLower(strings.TrimSpace(c.Text))
		if len([]rune(s)) >= 2 {
			return truncateRunes(s, 3)
		}
		return s
	}
	return ""
}

// mondayIndex converts time.Weekday (Sunday = 0) to the 0 = Monday indexing
// used by the day tables.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// isVacationPeriod reports whether a cell parses to a date whose month falls
// in the vacation set. Unknown months are never vacation.
func isVacationPeriod(c model.Cell) bool {
	t, ok := parseDate(c)
	if !ok {
		return false
	}
	return vacationMonths[t.Month()]
}

// nightsFromDates derives a stay length in whole days from arrival and
// departure cells, floored at zero. Both dates must parse.
func nightsFromDates(arrivo, partenza model.Cell) (int, bool) {
	d1, ok1 := parseDate(arrivo)
	d2, ok2 := parseDate(partenza)
	if !ok1 || !ok2 {
		return 0, false
	}
	delta := int(d2.Sub(d1).Hours() / 24)
	if delta < 0 {
		delta = 0
	}
	return delta, true
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
