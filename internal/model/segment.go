package model

// Segment is one of the five fixed marketing segments.
type Segment string

const (
	SegmentBusiness Segment = "Business"
	SegmentLeisure  Segment = "Leisure"
	SegmentCoppia   Segment = "Coppia"
	SegmentFamiglia Segment = "Famiglia"
	SegmentPremium  Segment = "Premium"
)

// Segments lists all segments in display order.
var Segments = []Segment{
	SegmentBusiness,
	SegmentLeisure,
	SegmentCoppia,
	SegmentFamiglia,
	SegmentPremium,
}

// SegmentPriority is the tie-break order: when several segments share the
// maximum score, the first one of these present among them wins.
var SegmentPriority = []Segment{
	SegmentPremium,
	SegmentBusiness,
	SegmentFamiglia,
	SegmentCoppia,
	SegmentLeisure,
}

// ParseSegment converts a string to a Segment, reporting whether it is valid.
func ParseSegment(s string) (Segment, bool) {
	for _, seg := range Segments {
		if string(seg) == s {
			return seg, true
		}
	}
	return "", false
}
