package dataset

import (
	"math"
	"sort"

	"github.com/siasalabs/election-data-service/internal/domain"
)

// Dataset-wide constants the loader enforces. These are properties of the
// curated data, checked on every load so a regressed data file never serves.
const (
	countyCount = 47
	regionCount = 8

	// shareEpsilon absorbs float noise when summing vote shares.
	shareEpsilon = 1e-6

	// totalsTolerance is the allowed relative drift between per-county sums
	// and the stated national totals.
	totalsTolerance = 0.005
)

// expectedAlignments is the stronghold partition the dataset must carry.
var expectedAlignments = map[domain.Alignment]int{
	domain.AlignmentKenyaKwanza:  15,
	domain.AlignmentOpposition:   12,
	domain.AlignmentBattleground: 20,
}

// expectedTiers is the computed swing-tier distribution across the counties.
var expectedTiers = map[domain.SwingTier]int{
	domain.TierVeryLow:  5,
	domain.TierLow:      6,
	domain.TierMedium:   14,
	domain.TierHigh:     10,
	domain.TierVeryHigh: 12,
}

// validate runs every integrity check and reports all problems at once.
func validate(elections map[int]domain.Election, counties map[string]domain.County,
	countyFile rawCountyFile, national rawNationalPredictions) error {

	errs := &domain.IntegrityError{}
	validateElections(errs, elections)
	validateCounties(errs, counties, countyFile.Counties)
	validateRegions(errs, counties, countyFile.RegionalTrends)
	validateDistributions(errs, counties, countyFile.Counties)
	validateTotals(errs, countyFile.Counties, national)
	return errs.OrNil()
}

func validateElections(errs *domain.IntegrityError, elections map[int]domain.Election) {
	for _, year := range domain.ElectionYears {
		e, ok := elections[year]
		if !ok {
			errs.Addf("election %d missing", year)
			continue
		}
		if e.Turnout < 0 || e.Turnout > 100 {
			errs.Addf("election %d: turnout %.2f out of range", year, e.Turnout)
		}
		if e.RegisteredVoters <= 0 {
			errs.Addf("election %d: registered voters must be positive", year)
		}
		if len(e.Candidates) == 0 {
			errs.Addf("election %d: no candidates", year)
		}
		var shareSum float64
		for _, c := range e.Candidates {
			if c.Percentage < 0 || c.Percentage > 100 {
				errs.Addf("election %d: candidate %s share %.2f out of range", year, c.Name, c.Percentage)
			}
			shareSum += c.Percentage
		}
		if shareSum > 100+shareEpsilon {
			errs.Addf("election %d: candidate shares sum to %.2f > 100", year, shareSum)
		}
	}
	for year := range elections {
		if !domain.ValidElectionYear(year) {
			errs.Addf("unexpected election year %d in dataset", year)
		}
	}
}

func validateCounties(errs *domain.IntegrityError, counties map[string]domain.County, raw map[string]rawCounty) {
	if len(counties) != countyCount {
		errs.Addf("expected %d counties, got %d", countyCount, len(counties))
	}
	for _, name := range sortedKeys(counties) {
		c := counties[name]
		if c.Population <= 0 {
			errs.Addf("county %s: population must be positive", name)
		}
		if c.YouthPercentage < 0 || c.YouthPercentage > 100 {
			errs.Addf("county %s: youth percentage %.1f out of range", name, c.YouthPercentage)
		}
		for _, year := range []int{2017, 2022} {
			r, ok := c.Results[year]
			if !ok {
				errs.Addf("county %s: missing %d results", name, year)
				continue
			}
			validateCountyResult(errs, name, year, r)
		}
		rp := raw[name].Prediction
		if rp.ProjectedVoters <= 0 {
			errs.Addf("county %s: projected voters must be positive", name)
		}
		if rp.NewYouthVoters < 0 {
			errs.Addf("county %s: new youth voters must not be negative", name)
		}
		if rp.LikelyTurnout < 0 || rp.LikelyTurnout > 100 {
			errs.Addf("county %s: likely turnout %.1f out of range", name, rp.LikelyTurnout)
		}
		if _, err := domain.ParseAlignment(rp.Alignment); err != nil {
			errs.Addf("county %s: %v", name, err)
		}
	}
}

func validateCountyResult(errs *domain.IntegrityError, name string, year int, r domain.CountyResult) {
	if r.Turnout < 0 || r.Turnout > 100 {
		errs.Addf("county %s: %d turnout %.1f out of range", name, year, r.Turnout)
	}
	line := map[int]string{2017: domain.CandidateKenyatta, 2022: domain.CandidateRuto}[year]
	if _, ok := r.Shares[line]; !ok {
		errs.Addf("county %s: %d results missing %s share", name, year, line)
	}
	if _, ok := r.Shares[domain.CandidateOdinga]; !ok {
		errs.Addf("county %s: %d results missing %s share", name, year, domain.CandidateOdinga)
	}
	var sum float64
	for cand, share := range r.Shares {
		if share < 0 || share > 100 {
			errs.Addf("county %s: %d share for %s is %.1f, out of range", name, year, cand, share)
		}
		sum += share
	}
	if sum > 100+shareEpsilon {
		errs.Addf("county %s: %d shares sum to %.2f > 100", name, year, sum)
	}
}

func validateRegions(errs *domain.IntegrityError, counties map[string]domain.County, trends map[string]rawRegionInfo) {
	if len(trends) != regionCount {
		errs.Addf("expected %d regions, got %d", regionCount, len(trends))
	}

	seen := make(map[string]string, countyCount) // county → region claiming it
	memberTotal := 0
	for _, region := range sortedKeys(trends) {
		info := trends[region]
		memberTotal += len(info.Counties)
		for _, name := range info.Counties {
			c, ok := counties[name]
			if !ok {
				errs.Addf("region %s lists unknown county %s", region, name)
				continue
			}
			if c.Region != region {
				errs.Addf("county %s claims region %s but is listed under %s", name, c.Region, region)
			}
			if prev, dup := seen[name]; dup {
				errs.Addf("county %s listed under both %s and %s", name, prev, region)
			}
			seen[name] = region
		}
	}
	if memberTotal != countyCount {
		errs.Addf("region memberships sum to %d, expected %d", memberTotal, countyCount)
	}
	for _, name := range sortedKeys(counties) {
		c := counties[name]
		if _, ok := trends[c.Region]; !ok {
			errs.Addf("county %s references undefined region %s", name, c.Region)
		} else if _, listed := seen[name]; !listed {
			errs.Addf("county %s missing from region %s membership", name, c.Region)
		}
	}
}

// validateDistributions checks the curated alignment partition (15/12/20) and
// the computed swing-tier distribution (5/6/14/10/12) across the counties.
func validateDistributions(errs *domain.IntegrityError, counties map[string]domain.County, raw map[string]rawCounty) {
	alignments := make(map[domain.Alignment]int)
	tiers := make(map[domain.SwingTier]int)
	for name, c := range counties {
		if a, err := domain.ParseAlignment(raw[name].Prediction.Alignment); err == nil {
			alignments[a]++
		}
		if tier, ok := c.Swing(); ok {
			tiers[tier]++
		}
	}
	for a, want := range expectedAlignments {
		if got := alignments[a]; got != want {
			errs.Addf("alignment %s: expected %d counties, got %d", a, want, got)
		}
	}
	for tier, want := range expectedTiers {
		if got := tiers[tier]; got != want {
			errs.Addf("swing tier %s: expected %d counties, got %d", tier, want, got)
		}
	}
}

// validateTotals cross-checks per-county projection sums against the stated
// national predictions block. This is a regression check on the data file,
// not on the arithmetic.
func validateTotals(errs *domain.IntegrityError, raw map[string]rawCounty, national rawNationalPredictions) {
	var projSum, youthSum int
	var pctSum float64
	for _, rc := range raw {
		projSum += rc.Prediction.ProjectedVoters
		youthSum += rc.Prediction.NewYouthVoters
		pctSum += rc.YouthPercentage
	}
	checkTotal(errs, "projected voters", projSum, national.TotalProjectedVoters)
	checkTotal(errs, "new youth voters", youthSum, national.NewVoters)
	if len(raw) > 0 {
		avg := pctSum / float64(len(raw))
		if math.Abs(avg-national.YouthPercentage) > 0.5 {
			errs.Addf("average youth percentage %.2f deviates from stated %.2f", avg, national.YouthPercentage)
		}
	}
}

func checkTotal(errs *domain.IntegrityError, what string, got, stated int) {
	if stated <= 0 {
		errs.Addf("stated national %s must be positive", what)
		return
	}
	drift := math.Abs(float64(got-stated)) / float64(stated)
	if drift > totalsTolerance {
		errs.Addf("%s: county sum %d deviates %.2f%% from stated %d", what, got, drift*100, stated)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
