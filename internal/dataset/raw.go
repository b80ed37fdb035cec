package dataset

// Raw JSON schema of the two data files. Field layout follows the curated
// dataset, which keys county results by candidate surname alongside a
// "turnout" entry, so per-year results decode into a plain number map and
// are split apart during conversion.

// Data file names resolved against the fs.FS passed to Load.
const (
	ElectionFile = "election_data.json"
	CountyFile   = "county_data.json"
)

type rawElectionFile struct {
	Elections   map[string]rawElection `json:"elections"`
	Predictions rawNationalPredictions `json:"predictions_2027"`
}

type rawElection struct {
	RegisteredVoters int                           `json:"registered_voters"`
	VotesCast        int                           `json:"votes_cast"`
	Turnout          float64                       `json:"turnout"`
	Candidates       []rawCandidate                `json:"candidates"`
	Regional         map[string]map[string]float64 `json:"regional"`
}

type rawCandidate struct {
	Name       string  `json:"name"`
	Party      string  `json:"party"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type rawNationalPredictions struct {
	TotalProjectedVoters int           `json:"total_projected_voters"`
	NewVoters            int           `json:"new_voters"`
	YouthPercentage      float64       `json:"youth_percentage"`
	Scenarios            []rawScenario `json:"scenarios"`
	Factors              []string      `json:"factors"`
}

type rawScenario struct {
	Name        string  `json:"name"`
	Turnout     float64 `json:"turnout"`
	Description string  `json:"description"`
}

type rawCountyFile struct {
	Counties       map[string]rawCounty     `json:"counties"`
	RegionalTrends map[string]rawRegionInfo `json:"regional_trends"`
}

type rawRegionInfo struct {
	Counties  []string `json:"counties"`
	Trend     string   `json:"trend"`
	KeyFactor string   `json:"key_factor"`
}

type rawCounty struct {
	Region               string             `json:"region"`
	Population           int                `json:"population"`
	Population2023       int                `json:"population_2023"`
	RegisteredVoters2022 int                `json:"registered_voters_2022"`
	YouthPercentage      float64            `json:"youth_percentage"`
	Results2017          map[string]float64 `json:"results_2017"`
	Results2022          map[string]float64 `json:"results_2022"`
	Prediction           rawPrediction      `json:"prediction_2027"`
}

type rawPrediction struct {
	ProjectedVoters int     `json:"projected_voters"`
	NewYouthVoters  int     `json:"new_youth_voters"`
	LikelyTurnout   float64 `json:"likely_turnout"`
	Alignment       string  `json:"alignment"`
	Trend           string  `json:"trend"`
}
