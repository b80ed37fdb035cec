package dataset

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siasalabs/election-data-service/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loadStore loads the real data files with a frozen clock.
func loadStore(t *testing.T) *Store {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	))
	t.Cleanup(func() { domain.SetClock(nil) })

	store, err := Load(os.DirFS("../../data"), discardLogger())
	require.NoError(t, err)
	return store
}

func TestLoadRealDataset(t *testing.T) {
	store := loadStore(t)

	assert.Len(t, store.Counties(), 47)
	assert.Len(t, store.Elections(), 5)
	assert.Len(t, store.Regions(), 8)
	assert.Len(t, store.Predictions(), 47)
	assert.False(t, store.LoadedAt().IsZero())
}

func TestElectionQueries(t *testing.T) {
	store := loadStore(t)

	t.Run("2022 winner", func(t *testing.T) {
		e, err := store.Election(2022)
		require.NoError(t, err)
		w := e.Winner()
		assert.Equal(t, "William Ruto", w.Name)
		assert.InDelta(t, 50.49, w.Percentage, 1e-9)
	})

	t.Run("2002 carries provincial results", func(t *testing.T) {
		e, err := store.Election(2002)
		require.NoError(t, err)
		assert.NotEmpty(t, e.Regional)
	})

	t.Run("only 2002 carries provincial results", func(t *testing.T) {
		for _, year := range []int{2007, 2013, 2017, 2022} {
			e, err := store.Election(year)
			require.NoError(t, err)
			assert.Empty(t, e.Regional, "year %d", year)
		}
	})

	t.Run("unknown year", func(t *testing.T) {
		_, err := store.Election(1997)
		require.Error(t, err)
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "election", nf.Entity)
		assert.Equal(t, "1997", nf.Key)
	})

	t.Run("ascending order", func(t *testing.T) {
		var years []int
		for _, e := range store.Elections() {
			years = append(years, e.Year)
		}
		assert.Equal(t, domain.ElectionYears, years)
	})
}

func TestCountyLookup(t *testing.T) {
	store := loadStore(t)

	t.Run("canonical name", func(t *testing.T) {
		c, err := store.County("Nairobi")
		require.NoError(t, err)
		assert.Equal(t, "Nairobi", c.Name)
		assert.Equal(t, 4397073, c.Population)
		assert.Equal(t, 72.0, c.YouthPercentage)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		c, err := store.County("  uasin gishu ")
		require.NoError(t, err)
		assert.Equal(t, "Uasin Gishu", c.Name)
	})

	t.Run("boundary-file aliases", func(t *testing.T) {
		for alias, canonical := range map[string]string{
			"Keiyo-Marakwet": "Elgeyo Marakwet",
			"Tharaka":        "Tharaka Nithi",
		} {
			c, err := store.County(alias)
			require.NoError(t, err, alias)
			assert.Equal(t, canonical, c.Name)
		}
	})

	t.Run("unknown county", func(t *testing.T) {
		_, err := store.County("Atlantis")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "county", nf.Entity)
		assert.Equal(t, "Atlantis", nf.Key)
	})

	t.Run("alphabetical listing", func(t *testing.T) {
		counties := store.Counties()
		assert.True(t, sort.SliceIsSorted(counties, func(i, j int) bool {
			return counties[i].Name < counties[j].Name
		}))
	})
}

func TestRegionQueries(t *testing.T) {
	store := loadStore(t)

	t.Run("Nairobi is its own region", func(t *testing.T) {
		counties, err := store.CountiesByRegion("Nairobi")
		require.NoError(t, err)
		require.Len(t, counties, 1)
		assert.Equal(t, "Nairobi", counties[0].Name)
	})

	t.Run("region sizes", func(t *testing.T) {
		sizes := map[string]int{
			"Mt Kenya": 8, "Rift Valley": 14, "Nyanza": 6, "Western": 4,
			"Coast": 6, "Eastern": 3, "North Eastern": 5, "Nairobi": 1,
		}
		for region, want := range sizes {
			counties, err := store.CountiesByRegion(region)
			require.NoError(t, err, region)
			assert.Len(t, counties, want, region)
		}
	})

	t.Run("trend record", func(t *testing.T) {
		rt, err := store.Region("Rift Valley")
		require.NoError(t, err)
		assert.Equal(t, "Rift Valley", rt.Region)
		assert.NotEmpty(t, rt.Trend)
		assert.NotEmpty(t, rt.KeyFactor)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := store.CountiesByRegion("Midlands")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "region", nf.Entity)
	})
}

func TestPredictionQueries(t *testing.T) {
	store := loadStore(t)

	t.Run("Nairobi outlook", func(t *testing.T) {
		p, err := store.Prediction("Nairobi")
		require.NoError(t, err)
		assert.Equal(t, domain.TierVeryHigh, p.Swing)
		assert.Equal(t, domain.AlignmentBattleground, p.Alignment)
		assert.Equal(t, 72.0, p.YouthPercentage)
		assert.Equal(t, 2602600, p.ProjectedVoters)
		assert.True(t, p.Battleground())
	})

	t.Run("alias resolves for predictions too", func(t *testing.T) {
		p, err := store.Prediction("tharaka")
		require.NoError(t, err)
		assert.Equal(t, "Tharaka Nithi", p.County)
	})

	t.Run("swing tier distribution", func(t *testing.T) {
		tiers := map[domain.SwingTier]int{}
		for _, p := range store.Predictions() {
			tiers[p.Swing]++
		}
		assert.Equal(t, map[domain.SwingTier]int{
			domain.TierVeryLow:  5,
			domain.TierLow:      6,
			domain.TierMedium:   14,
			domain.TierHigh:     10,
			domain.TierVeryHigh: 12,
		}, tiers)
	})

	t.Run("alignment distribution", func(t *testing.T) {
		aligns := map[domain.Alignment]int{}
		for _, p := range store.Predictions() {
			aligns[p.Alignment]++
		}
		assert.Equal(t, map[domain.Alignment]int{
			domain.AlignmentKenyaKwanza:  15,
			domain.AlignmentOpposition:   12,
			domain.AlignmentBattleground: 20,
		}, aligns)
	})
}

func TestNationalSummary(t *testing.T) {
	store := loadStore(t)
	summary := store.NationalSummary()

	assert.Equal(t, 47, summary.Counties)
	assert.Equal(t, 27820000, summary.TotalProjectedVoters)
	assert.Equal(t, 5700000, summary.TotalNewYouthVoters)
	assert.InDelta(t, 65.7, summary.AverageYouthPercentage, 0.05)
	assert.Equal(t, 22, summary.BattlegroundCounties)
	assert.Len(t, summary.Scenarios, 3)
	assert.NotEmpty(t, summary.Factors)
}

func TestLoadIsDeterministic(t *testing.T) {
	first := loadStore(t)
	second, err := Load(os.DirFS("../../data"), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, first.Predictions(), second.Predictions())
	assert.Equal(t, first.NationalSummary(), second.NationalSummary())
}

func TestCheckReadiness(t *testing.T) {
	store := loadStore(t)
	assert.NoError(t, store.CheckReadiness(context.Background()))

	var empty *Store
	assert.Error(t, empty.CheckReadiness(context.Background()))
	assert.Error(t, (&Store{}).CheckReadiness(context.Background()))
}
