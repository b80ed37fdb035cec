// Package dataset loads, validates, and serves the election dataset. The
// Store is built once at startup and is immutable afterwards, so it is safe
// to share across any number of concurrent readers without locking.
package dataset

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/siasalabs/election-data-service/internal/domain"
)

// countyAliases maps alternate county spellings (as used by the common
// boundary files) to the dataset's canonical names, so lookups accept either.
var countyAliases = map[string]string{
	"keiyo-marakwet": "Elgeyo Marakwet",
	"tharaka":        "Tharaka Nithi",
}

// Store is the read-only query surface over the loaded dataset.
type Store struct {
	elections   map[int]domain.Election
	counties    map[string]domain.County // keyed by canonical name
	lookup      map[string]string        // normalized name or alias → canonical
	regions     map[string]domain.RegionTrend
	regionNames []string // sorted
	predictions map[string]domain.CountyPrediction
	summary     domain.NationalSummary
	loadedAt    time.Time
}

// normalizeName canonicalizes a county or region key for lookup.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Election returns the national record for one of the five election years.
func (s *Store) Election(year int) (domain.Election, error) {
	e, ok := s.elections[year]
	if !ok {
		return domain.Election{}, &domain.NotFoundError{Entity: "election", Key: strconv.Itoa(year)}
	}
	return e, nil
}

// Elections returns all five national records, ascending by year.
func (s *Store) Elections() []domain.Election {
	out := make([]domain.Election, 0, len(s.elections))
	for _, e := range s.elections {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// County returns one county by name. Boundary-file aliases are accepted.
func (s *Store) County(name string) (domain.County, error) {
	canonical, ok := s.lookup[normalizeName(name)]
	if !ok {
		return domain.County{}, &domain.NotFoundError{Entity: "county", Key: name}
	}
	return s.counties[canonical], nil
}

// Counties returns all 47 counties in alphabetical order.
func (s *Store) Counties() []domain.County {
	out := make([]domain.County, 0, len(s.counties))
	for _, c := range s.counties {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CountiesByRegion returns a region's counties in alphabetical order.
func (s *Store) CountiesByRegion(region string) ([]domain.County, error) {
	rt, err := s.Region(region)
	if err != nil {
		return nil, err
	}
	out := make([]domain.County, 0, len(rt.Counties))
	for _, name := range rt.Counties {
		out = append(out, s.counties[name])
	}
	return out, nil
}

// Region returns the curated trend record for one of the 8 regions.
func (s *Store) Region(name string) (domain.RegionTrend, error) {
	for _, rn := range s.regionNames {
		if normalizeName(rn) == normalizeName(name) {
			return s.regions[rn], nil
		}
	}
	return domain.RegionTrend{}, &domain.NotFoundError{Entity: "region", Key: name}
}

// Regions returns all 8 region trend records, alphabetical by region name.
func (s *Store) Regions() []domain.RegionTrend {
	out := make([]domain.RegionTrend, 0, len(s.regionNames))
	for _, rn := range s.regionNames {
		out = append(out, s.regions[rn])
	}
	return out
}

// Prediction returns the 2027 outlook for one county.
func (s *Store) Prediction(name string) (domain.CountyPrediction, error) {
	canonical, ok := s.lookup[normalizeName(name)]
	if !ok {
		return domain.CountyPrediction{}, &domain.NotFoundError{Entity: "county", Key: name}
	}
	return s.predictions[canonical], nil
}

// Predictions returns all 47 county predictions in alphabetical order.
func (s *Store) Predictions() []domain.CountyPrediction {
	out := make([]domain.CountyPrediction, 0, len(s.predictions))
	for _, p := range s.predictions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].County < out[j].County })
	return out
}

// NationalSummary returns the cached aggregate over all county projections.
func (s *Store) NationalSummary() domain.NationalSummary {
	return s.summary
}

// LoadedAt reports when the dataset was loaded.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

// CheckReadiness reports whether the store can serve queries. A constructed
// Store always can; the method exists for the HTTP readiness probe.
func (s *Store) CheckReadiness(_ context.Context) error {
	if s == nil || len(s.counties) == 0 {
		return errors.New("dataset not loaded")
	}
	return nil
}
