package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// trendWeeks caps the weekly trend to the most recent buckets.
const trendWeeks = 12

// WeekBucket counts arrivals per segment for one ISO week.
type WeekBucket struct {
	Week     string                `json:"week"`
	Segmenti map[model.Segment]int `json:"segmenti"`
}

// Trend buckets customers by the ISO week of their arrival date, newest
// first, capped at trendWeeks buckets. Customers with no parseable arrival
// date land in the "N/A" bucket.
func Trend(a *model.Analysis) []WeekBucket {
	buckets := make(map[string]map[model.Segment]int)
	for _, c := range a.Customers {
		key := weekKey(c.DataArrivo)
		if buckets[key] == nil {
			buckets[key] = make(map[model.Segment]int)
		}
		buckets[key][c.Segment]++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > trendWeeks {
		keys = keys[:trendWeeks]
	}

	out := make([]WeekBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, WeekBucket{Week: k, Segmenti: buckets[k]})
	}
	return out
}

// weekKey renders a "YYYY-Www" bucket key, "N/A" when the arrival date is
// absent or does not parse as YYYY-MM-DD.
func weekKey(dataArrivo *string) string {
	if dataArrivo == nil {
		return "N/A"
	}
	t, err := time.Parse("2006-01-02", *dataArrivo)
	if err != nil {
		return "N/A"
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
