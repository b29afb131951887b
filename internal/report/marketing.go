package report

import (
	"github.com/Miguelll86/customer-segmentation/internal/campaign"
	"github.com/Miguelll86/customer-segmentation/internal/model"
)

// MarketingParams are the tunable multipliers of the marketing summary.
// Conversion and ROI are static placeholders until campaign tracking exists.
type MarketingParams struct {
	RevenueUplift  float64
	ConversionRate float64
	ROIEstimate    float64
}

// SegmentSummary is the marketing view of one segment.
type SegmentSummary struct {
	Segment                  model.Segment       `json:"segment"`
	Count                    int                 `json:"count"`
	RevenueAttuale           float64             `json:"revenue_attuale"`
	RevenuePotenzialeStimata float64             `json:"revenue_potenziale_stimata"`
	ConversionRateStorico    float64             `json:"conversion_rate_storico"`
	ROIStimato               float64             `json:"roi_stimato"`
	Campagne                 []campaign.Campaign `json:"campagne"`
}

// MarketingReport bundles per-segment summaries with the full catalog.
type MarketingReport struct {
	Segmenti        []SegmentSummary                      `json:"segmenti"`
	CampagneGlobali map[model.Segment][]campaign.Campaign `json:"campagne_globali"`
}

// Marketing builds the campaign summary for one analysis: current revenue
// per segment, estimated potential under the uplift factor, and the
// suggested campaigns from the injected catalog.
func Marketing(a *model.Analysis, catalog campaign.Catalog, params MarketingParams) MarketingReport {
	bySegment := groupBySegment(a.Customers)

	summaries := make([]SegmentSummary, 0, len(model.Segments))
	global := make(map[model.Segment][]campaign.Campaign, len(model.Segments))
	for _, seg := range model.Segments {
		list := bySegment[seg]
		var revSum float64
		for _, c := range list {
			if c.Revenue != nil {
				revSum += *c.Revenue
			}
		}
		campaigns := catalog.ForSegment(seg)
		if campaigns == nil {
			campaigns = []campaign.Campaign{}
		}
		summaries = append(summaries, SegmentSummary{
			Segment:                  seg,
			Count:                    len(list),
			RevenueAttuale:           round2(revSum),
			RevenuePotenzialeStimata: round2(revSum * params.RevenueUplift),
			ConversionRateStorico:    params.ConversionRate,
			ROIStimato:               params.ROIEstimate,
			Campagne:                 campaigns,
		})
		global[seg] = campaigns
	}

	return MarketingReport{Segmenti: summaries, CampagneGlobali: global}
}
