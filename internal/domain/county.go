package domain

import "sort"

// Coalition line candidate keys used by the county-level results.
// 2017 ran Kenyatta (government line) against Odinga; 2022 ran Ruto
// (government line) against Odinga.
const (
	CandidateKenyatta = "Kenyatta"
	CandidateRuto     = "Ruto"
	CandidateOdinga   = "Odinga"
)

// CountyResult is one county's result in one election year.
type CountyResult struct {
	// Shares maps candidate key to vote share percentage. Recorded shares
	// sum to at most 100; the remainder is unlisted minor candidates.
	Shares  map[string]float64 `json:"shares"`
	Turnout float64            `json:"turnout"`
}

// LeadingShare returns the winning candidate key and share for the result.
// Ties resolve to the lexically smaller key so the answer is deterministic.
func (r CountyResult) LeadingShare() (string, float64) {
	var name string
	var share float64
	for k, v := range r.Shares {
		if v > share || (v == share && (name == "" || k < name)) {
			name, share = k, v
		}
	}
	return name, share
}

// County is one of the 47 counties. Immutable once loaded.
type County struct {
	Name                 string               `json:"name"`
	Region               string               `json:"region"`
	Population           int                  `json:"population"`      // 2019 census
	Population2023       int                  `json:"population_2023"` // projection
	RegisteredVoters2022 int                  `json:"registered_voters_2022"`
	YouthPercentage      float64              `json:"youth_percentage"`
	Results              map[int]CountyResult `json:"results"`
}

// ResultYears returns the election years the county has results for, ascending.
func (c County) ResultYears() []int {
	years := make([]int, 0, len(c.Results))
	for y := range c.Results {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// LatestTwo returns the county's two most recent results, previous first.
// ok is false when fewer than two elections are recorded.
func (c County) LatestTwo() (previous, latest CountyResult, ok bool) {
	years := c.ResultYears()
	if len(years) < 2 {
		return CountyResult{}, CountyResult{}, false
	}
	return c.Results[years[len(years)-2]], c.Results[years[len(years)-1]], true
}

// Swing classifies the county on the five-tier swing scale from the shift in
// leading-candidate share between its two most recent elections. ok is false
// when the county lacks two recorded elections to compare.
func (c County) Swing() (SwingTier, bool) {
	previous, latest, ok := c.LatestTwo()
	if !ok {
		return TierVeryLow, false
	}
	_, prevLead := previous.LeadingShare()
	_, lastLead := latest.LeadingShare()
	delta := lastLead - prevLead
	if delta < 0 {
		delta = -delta
	}
	return ClassifySwing(delta), true
}

// VoteShift is the percentage-point movement of the two coalition lines
// between 2017 and 2022, as rendered by the county analysis view.
type VoteShift struct {
	// Government is Ruto 2022 minus Kenyatta 2017.
	Government float64 `json:"government"`
	// Opposition is Odinga 2022 minus Odinga 2017.
	Opposition float64 `json:"opposition"`
	// Turnout is 2022 turnout minus 2017 turnout.
	Turnout float64 `json:"turnout"`
}

// Shift computes the 2017 → 2022 coalition-line movement for the county.
// ok is false when either year is missing.
func (c County) Shift() (VoteShift, bool) {
	r17, ok17 := c.Results[2017]
	r22, ok22 := c.Results[2022]
	if !ok17 || !ok22 {
		return VoteShift{}, false
	}
	return VoteShift{
		Government: r22.Shares[CandidateRuto] - r17.Shares[CandidateKenyatta],
		Opposition: r22.Shares[CandidateOdinga] - r17.Shares[CandidateOdinga],
		Turnout:    r22.Turnout - r17.Turnout,
	}, true
}
