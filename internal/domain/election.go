package domain

// ElectionYears is the fixed set of presidential elections in the dataset,
// ascending. Queries for any other year fail with a NotFoundError.
var ElectionYears = []int{2002, 2007, 2013, 2017, 2022}

// ValidElectionYear reports whether year is one of the five recorded elections.
func ValidElectionYear(year int) bool {
	for _, y := range ElectionYears {
		if y == year {
			return true
		}
	}
	return false
}

// CandidateResult is one candidate's national tally in an election.
type CandidateResult struct {
	Name       string  `json:"name"`
	Party      string  `json:"party"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// Election is one national presidential election. Immutable once loaded.
type Election struct {
	Year             int               `json:"year"`
	RegisteredVoters int               `json:"registered_voters"`
	VotesCast        int               `json:"votes_cast"`
	Turnout          float64           `json:"turnout"`
	Candidates       []CandidateResult `json:"candidates"`

	// Regional holds province → candidate → share, present only for 2002
	// (the one election with provincial rather than county results).
	Regional map[string]map[string]float64 `json:"regional,omitempty"`
}

// Winner returns the candidate with the highest national share.
func (e Election) Winner() CandidateResult {
	var lead CandidateResult
	for _, c := range e.Candidates {
		if c.Percentage > lead.Percentage {
			lead = c
		}
	}
	return lead
}
