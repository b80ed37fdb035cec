package dataset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strconv"

	"github.com/siasalabs/election-data-service/internal/domain"
)

// Load reads the two data files from fsys, validates every dataset invariant,
// and builds the immutable Store. Any integrity violation fails the whole
// load; no partial dataset is ever served.
func Load(fsys fs.FS, logger *slog.Logger) (*Store, error) {
	var electionFile rawElectionFile
	if err := readJSON(fsys, ElectionFile, &electionFile); err != nil {
		return nil, err
	}
	var countyFile rawCountyFile
	if err := readJSON(fsys, CountyFile, &countyFile); err != nil {
		return nil, err
	}

	elections, err := convertElections(electionFile.Elections)
	if err != nil {
		return nil, err
	}
	counties := convertCounties(countyFile.Counties)

	if err := validate(elections, counties, countyFile, electionFile.Predictions); err != nil {
		return nil, err
	}

	s := &Store{
		elections:   elections,
		counties:    counties,
		lookup:      buildLookup(counties),
		regions:     convertRegions(countyFile.RegionalTrends),
		predictions: buildPredictions(counties, countyFile.Counties),
		loadedAt:    domain.Now(),
	}
	for name := range s.regions {
		s.regionNames = append(s.regionNames, name)
	}
	sort.Strings(s.regionNames)
	s.summary = buildSummary(s.predictions, electionFile.Predictions)

	logger.Info("dataset loaded",
		"elections", len(s.elections),
		"counties", len(s.counties),
		"regions", len(s.regions),
		"projected_voters_2027", s.summary.TotalProjectedVoters,
	)
	return s, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func convertElections(raw map[string]rawElection) (map[int]domain.Election, error) {
	out := make(map[int]domain.Election, len(raw))
	for key, re := range raw {
		year, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%s: election year %q is not a number", ElectionFile, key)
		}
		cands := make([]domain.CandidateResult, len(re.Candidates))
		for i, rc := range re.Candidates {
			cands[i] = domain.CandidateResult(rc)
		}
		out[year] = domain.Election{
			Year:             year,
			RegisteredVoters: re.RegisteredVoters,
			VotesCast:        re.VotesCast,
			Turnout:          re.Turnout,
			Candidates:       cands,
			Regional:         re.Regional,
		}
	}
	return out, nil
}

func convertCounties(raw map[string]rawCounty) map[string]domain.County {
	out := make(map[string]domain.County, len(raw))
	for name, rc := range raw {
		results := make(map[int]domain.CountyResult, 2)
		if r, ok := splitResult(rc.Results2017); ok {
			results[2017] = r
		}
		if r, ok := splitResult(rc.Results2022); ok {
			results[2022] = r
		}
		out[name] = domain.County{
			Name:                 name,
			Region:               rc.Region,
			Population:           rc.Population,
			Population2023:       rc.Population2023,
			RegisteredVoters2022: rc.RegisteredVoters2022,
			YouthPercentage:      rc.YouthPercentage,
			Results:              results,
		}
	}
	return out
}

// splitResult separates a raw result map into candidate shares and turnout.
// The dataset stores turnout alongside the candidate keys in one object.
func splitResult(raw map[string]float64) (domain.CountyResult, bool) {
	if len(raw) == 0 {
		return domain.CountyResult{}, false
	}
	r := domain.CountyResult{Shares: make(map[string]float64, len(raw)-1)}
	for k, v := range raw {
		if k == "turnout" {
			r.Turnout = v
			continue
		}
		r.Shares[k] = v
	}
	return r, true
}

func convertRegions(raw map[string]rawRegionInfo) map[string]domain.RegionTrend {
	out := make(map[string]domain.RegionTrend, len(raw))
	for name, ri := range raw {
		members := make([]string, len(ri.Counties))
		copy(members, ri.Counties)
		sort.Strings(members)
		out[name] = domain.RegionTrend{
			Region:    name,
			Counties:  members,
			Trend:     ri.Trend,
			KeyFactor: ri.KeyFactor,
		}
	}
	return out
}

func buildLookup(counties map[string]domain.County) map[string]string {
	lookup := make(map[string]string, len(counties)+len(countyAliases))
	for name := range counties {
		lookup[normalizeName(name)] = name
	}
	for alias, canonical := range countyAliases {
		if _, ok := counties[canonical]; ok {
			lookup[normalizeName(alias)] = canonical
		}
	}
	return lookup
}

// buildPredictions combines each county's stored projection with its computed
// swing tier. Runs after validation, so every county has two results and a
// valid alignment label.
func buildPredictions(counties map[string]domain.County, raw map[string]rawCounty) map[string]domain.CountyPrediction {
	now := domain.Now()
	out := make(map[string]domain.CountyPrediction, len(counties))
	for name, c := range counties {
		rp := raw[name].Prediction
		tier, _ := c.Swing()
		alignment, _ := domain.ParseAlignment(rp.Alignment)
		out[name] = domain.CountyPrediction{
			County:          name,
			Region:          c.Region,
			ProjectedVoters: rp.ProjectedVoters,
			NewYouthVoters:  rp.NewYouthVoters,
			LikelyTurnout:   rp.LikelyTurnout,
			YouthPercentage: c.YouthPercentage,
			Swing:           tier,
			Alignment:       alignment,
			Trend:           rp.Trend,
			GeneratedAt:     now,
		}
	}
	return out
}

func buildSummary(predictions map[string]domain.CountyPrediction, national rawNationalPredictions) domain.NationalSummary {
	var sum domain.NationalSummary
	var youthSum float64
	for _, p := range predictions {
		sum.Counties++
		sum.TotalProjectedVoters += p.ProjectedVoters
		sum.TotalNewYouthVoters += p.NewYouthVoters
		youthSum += p.YouthPercentage
		if p.Battleground() {
			sum.BattlegroundCounties++
		}
	}
	if sum.Counties > 0 {
		sum.AverageYouthPercentage = youthSum / float64(sum.Counties)
	}
	sum.Scenarios = make([]domain.TurnoutScenario, len(national.Scenarios))
	for i, rs := range national.Scenarios {
		sum.Scenarios[i] = domain.TurnoutScenario(rs)
	}
	sum.Factors = national.Factors
	sum.GeneratedAt = domain.Now()
	return sum
}
