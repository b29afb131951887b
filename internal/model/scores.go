package model

// Scores holds the affinity score of one customer for every segment.
// Each counter is accumulated independently and never goes negative.
type Scores struct {
	Business int `json:"business"`
	Leisure  int `json:"leisure"`
	Coppia   int `json:"coppia"`
	Famiglia int `json:"famiglia"`
	Premium  int `json:"premium"`
}

// Get returns the score for a segment.
func (s Scores) Get(seg Segment) int {
	switch seg {
	case SegmentBusiness:
		return s.Business
	case SegmentLeisure:
		return s.Leisure
	case SegmentCoppia:
		return s.Coppia
	case SegmentFamiglia:
		return s.Famiglia
	case SegmentPremium:
		return s.Premium
	}
	return 0
}

// Max returns the highest score across the five segments.
func (s Scores) Max() int {
	max := s.Business
	for _, v := range []int{s.Leisure, s.Coppia, s.Famiglia, s.Premium} {
		if v > max {
			max = v
		}
	}
	return max
}
