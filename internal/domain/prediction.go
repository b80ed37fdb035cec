package domain

import (
	"fmt"
	"time"
)

// Alignment is the curated stronghold label for a county. It is stored in the
// dataset, not derived; the loader checks the labels partition the counties
// as 15 Kenya Kwanza / 12 opposition / 20 battleground.
type Alignment string

const (
	AlignmentKenyaKwanza  Alignment = "kenya_kwanza"
	AlignmentOpposition   Alignment = "opposition"
	AlignmentBattleground Alignment = "battleground"
)

// ParseAlignment validates a raw alignment value from the dataset.
func ParseAlignment(s string) (Alignment, error) {
	switch a := Alignment(s); a {
	case AlignmentKenyaKwanza, AlignmentOpposition, AlignmentBattleground:
		return a, nil
	default:
		return "", fmt.Errorf("unknown alignment %q", s)
	}
}

// CountyPrediction is the derived 2027 outlook for a county: the dataset's
// curated projections combined with the computed swing tier. No randomness;
// building it twice from the same dataset yields the same value apart from
// GeneratedAt.
type CountyPrediction struct {
	County          string    `json:"county"`
	Region          string    `json:"region"`
	ProjectedVoters int       `json:"projected_voters"`
	NewYouthVoters  int       `json:"new_youth_voters"`
	LikelyTurnout   float64   `json:"likely_turnout"`
	YouthPercentage float64   `json:"youth_percentage"`
	Swing           SwingTier `json:"swing_potential"`
	Alignment       Alignment `json:"alignment"`
	Trend           string    `json:"trend"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// Battleground reports whether the county's swing tier marks it as one to
// watch (High or Very High).
func (p CountyPrediction) Battleground() bool {
	return p.Swing >= TierHigh
}

// TurnoutScenario is one of the curated national turnout scenarios for 2027.
type TurnoutScenario struct {
	Name        string  `json:"name"`
	Turnout     float64 `json:"turnout"`
	Description string  `json:"description"`
}

// ProjectedVotesCast applies the scenario turnout to a projected roll.
func (s TurnoutScenario) ProjectedVotesCast(projectedVoters int) int {
	return int(float64(projectedVoters) * s.Turnout / 100)
}

// NationalSummary aggregates the 47 county projections.
type NationalSummary struct {
	Counties               int               `json:"counties"`
	TotalProjectedVoters   int               `json:"total_projected_voters"`
	TotalNewYouthVoters    int               `json:"total_new_youth_voters"`
	AverageYouthPercentage float64           `json:"average_youth_percentage"`
	BattlegroundCounties   int               `json:"battleground_counties"`
	Scenarios              []TurnoutScenario `json:"scenarios,omitempty"`
	Factors                []string          `json:"factors,omitempty"`
	GeneratedAt            time.Time         `json:"generated_at"`
}

// RegionTrend is the curated 2027 narrative for one region.
type RegionTrend struct {
	Region    string   `json:"region"`
	Counties  []string `json:"counties"`
	Trend     string   `json:"trend"`
	KeyFactor string   `json:"key_factor"`
}
