// Package scoring computes per-segment affinity scores for a normalized
// arrival record and resolves the single winning segment. Both functions are
// pure: same inputs, same outputs, no hidden state.
package scoring

import (
	"strings"

	"github.com/Miguelll86/customer-segmentation/internal/model"
	"github.com/Miguelll86/customer-segmentation/internal/parser"
)

// Channel token sets. Exact matches on the normalized channel text; the
// corporate/gds and direct checks additionally accept substrings, which can
// false-positive on coincidental substrings in free text. That matches how
// booking exports actually spell channels and is kept as-is.
var (
	channelsCorporateGDS = map[string]bool{
		"corporate": true, "gds": true, "corporate/gds": true, "aziendale": true,
	}
	channelsDirect = map[string]bool{
		"direct": true, "diretto": true, "sito": true, "web": true, "phone": true, "telefono": true,
	}
	channelsOTALeisure = []string{"ota", "booking", "expedia", "leisure"}
)

// Weekday token sets on the normalized 3-letter abbreviation, Italian and
// English.
var (
	daysMidweek = map[string]bool{
		"lun": true, "mar": true, "mer": true,
		"mon": true, "tue": true, "wed": true,
	}
	daysWeekend = map[string]bool{
		"ven": true, "sab": true, "dom": true,
		"fri": true, "sat": true, "sun": true,
	}
)

// premiumRoomKeywords mark a high-end room category by substring.
var premiumRoomKeywords = []string{
	"suite", "deluxe", "premium", "superior", "executive", "junior", "presidential",
}

// ComputeScores accumulates the five segment counters for one record.
// threshold is the corpus-wide 75th-percentile spend, nil when unknown; the
// Premium spend rule fires only when both spend and threshold are known.
func ComputeScores(r parser.Record, threshold *float64) model.Scores {
	cn := strings.ToLower(strings.TrimSpace(r.Canale))
	gn := strings.ToLower(strings.TrimSpace(r.Giorno))

	var s model.Scores

	// Business
	if daysMidweek[gn] {
		s.Business += 3
	}
	if r.Ospiti == 1 {
		s.Business += 3
	}
	if r.Notti >= 1 && r.Notti <= 2 {
		s.Business += 2
	}
	if channelsCorporateGDS[cn] || strings.Contains(cn, "gds") || strings.Contains(cn, "corporate") {
		s.Business += 2
	}
	if r.Storico > 0 && r.Notti <= 2 {
		s.Business += 1
	}

	// Leisure
	if r.Notti >= 3 {
		s.Leisure += 2
	}
	if daysWeekend[gn] {
		s.Leisure += 1
	}
	if containsAny(cn, channelsOTALeisure) {
		s.Leisure += 2
	}
	if r.Storico == 0 {
		s.Leisure += 1
	}

	// Coppia
	if r.Ospiti == 2 {
		s.Coppia += 3
	}
	if r.Notti >= 1 && r.Notti <= 3 {
		s.Coppia += 2
	}
	if daysWeekend[gn] {
		s.Coppia += 3
	}
	if containsAny(cn, channelsOTALeisure) {
		s.Coppia += 1
	}

	// Famiglia
	if r.Ospiti >= 3 {
		s.Famiglia += 3
	}
	if r.Notti >= 3 {
		s.Famiglia += 2
	}
	if daysWeekend[gn] {
		s.Famiglia += 2
	}
	if r.Vacation {
		s.Famiglia += 2
	}

	// Premium
	if isHighSpend(r.Spesa, threshold) {
		s.Premium += 4
	}
	if r.Storico >= 3 {
		s.Premium += 3
	}
	if r.Notti >= 4 {
		s.Premium += 2
	}
	if channelsDirect[cn] || strings.Contains(cn, "direct") || strings.Contains(cn, "diretto") {
		s.Premium += 2
	}
	if isPremiumRoom(r.CategoriaCamera) {
		s.Premium += 2
	}

	return s
}

// AssignSegment picks the segment with the maximum score; ties fall to the
// fixed priority order Premium > Business > Famiglia > Coppia > Leisure.
// Total function: an all-zero score resolves to Leisure, the last priority
// entry, which is always part of the tie set.
func AssignSegment(s model.Scores) model.Segment {
	best := s.Max()
	for _, seg := range model.SegmentPriority {
		if s.Get(seg) == best {
			return seg
		}
	}
	return model.SegmentLeisure
}

// ScoreAndSegment scores one record and resolves its segment in one call.
func ScoreAndSegment(r parser.Record, threshold *float64) (model.Scores, model.Segment) {
	s := ComputeScores(r, threshold)
	return s, AssignSegment(s)
}

func isHighSpend(spesa, threshold *float64) bool {
	if spesa == nil || threshold == nil {
		return false
	}
	return *spesa >= *threshold
}

func isPremiumRoom(categoria string) bool {
	c := strings.ToLower(strings.TrimSpace(categoria))
	if c == "" {
		return false
	}
	return containsAny(c, premiumRoomKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
