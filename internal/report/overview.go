// Package report aggregates segmented customers into the dashboard views:
// overview KPIs, filtered customer pages, marketing summaries, and the
// weekly trend. All functions are read-only over an analysis snapshot.
package report

import (
	"math"

	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// SegmentStat is the per-segment slice of the overview.
type SegmentStat struct {
	Segment            model.Segment `json:"segment"`
	Count              int           `json:"count"`
	Percentuale        float64       `json:"percentuale"`
	ADRMedio           float64       `json:"adr_medio"`
	RevenueTotale      float64       `json:"revenue_totale"`
	ValoreClienteMedio float64       `json:"valore_cliente_medio"`
}

// OverviewReport is the top-level KPI view of one analysis.
type OverviewReport struct {
	TotalArrivals             int           `json:"total_arrivals"`
	TotalRevenue              float64       `json:"total_revenue"`
	ADRMedioGenerale          float64       `json:"adr_medio_generale"`
	ValoreClienteMedioGen     float64       `json:"valore_cliente_medio_generale"`
	SegmentDistribution       []SegmentStat `json:"segment_distribution"`
}

// Overview computes totals and the per-segment distribution. ADR averages
// only the customers whose spend is known; revenue sums only known revenues.
func Overview(a *model.Analysis) OverviewReport {
	total := len(a.Customers)
	bySegment := groupBySegment(a.Customers)

	stats := make([]SegmentStat, 0, len(model.Segments))
	totalRevenue := 0.0
	for _, seg := range model.Segments {
		list := bySegment[seg]
		count := len(list)

		var pct float64
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}

		var spendSum, revSum float64
		spendCount := 0
		for _, c := range list {
			if c.SpesaMedia != nil {
				spendSum += *c.SpesaMedia
				spendCount++
			}
			if c.Revenue != nil {
				revSum += *c.Revenue
			}
		}

		var adr float64
		if spendCount > 0 {
			adr = spendSum / float64(spendCount)
		}
		var avgValue float64
		if count > 0 {
			avgValue = revSum / float64(count)
		}

		revRounded := round2(revSum)
		totalRevenue += revRounded
		stats = append(stats, SegmentStat{
			Segment:            seg,
			Count:              count,
			Percentuale:        round1(pct),
			ADRMedio:           round2(adr),
			RevenueTotale:      revRounded,
			ValoreClienteMedio: round2(avgValue),
		})
	}

	out := OverviewReport{
		TotalArrivals:       total,
		TotalRevenue:        round2(totalRevenue),
		SegmentDistribution: stats,
	}
	if total > 0 {
		var overallSpend float64
		for _, c := range a.Customers {
			if c.SpesaMedia != nil {
				overallSpend += *c.SpesaMedia
			}
		}
		out.ADRMedioGenerale = round2(overallSpend / float64(total))
		out.ValoreClienteMedioGen = round2(totalRevenue / float64(total))
	}
	return out
}

func groupBySegment(customers []model.SegmentedCustomer) map[model.Segment][]model.SegmentedCustomer {
	out := make(map[model.Segment][]model.SegmentedCustomer)
	for i := range customers {
		c := customers[i]
		out[c.Segment] = append(out[c.Segment], c)
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
