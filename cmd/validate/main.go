// Command validate performs end-to-end integrity checks over the election
// dataset: it loads the JSON fixtures the way the server does, then verifies
// classification distributions, national totals, and the query surface.
//
// Usage:
//
//	go run ./cmd/validate -data-dir data
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/siasalabs/election-data-service/internal/dataset"
	"github.com/siasalabs/election-data-service/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataDir := flag.String("data-dir", "data", "directory containing the dataset JSON files")
	flag.Parse()

	if code := run(*dataDir); code != 0 {
		os.Exit(code)
	}
}

func run(dataDir string) int {
	// Fixed clock so prediction timestamps are reproducible across runs.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	fmt.Println("=== Election Dataset Integrity Validation ===")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := dataset.Load(os.DirFS(dataDir), logger)
	if err != nil {
		var integrity *domain.IntegrityError
		if errors.As(err, &integrity) {
			fmt.Fprintf(os.Stderr, "FATAL: dataset integrity (%d problems):\n", len(integrity.Problems))
			for i, prob := range integrity.Problems {
				fmt.Fprintf(os.Stderr, "  [%d] %s\n", i+1, prob)
			}
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: load dataset: %v\n", err)
		}
		return 1
	}

	phases := []*phase{
		validateCoverage(store),
		validateDistributions(store),
		validateTotals(store),
		validateQuerySurface(store),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-46s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d counties, %d elections, %d regions, %d predictions\n",
		len(store.Counties()), len(store.Elections()), len(store.Regions()), len(store.Predictions()))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Coverage ──
// Every county carries both recent result lines and a 2027 projection.

func validateCoverage(store *dataset.Store) *phase {
	p := &phase{name: "Phase 1: Coverage (counties and elections)"}

	counties := store.Counties()
	if len(counties) != 47 {
		p.errorf("expected 47 counties, got %d", len(counties))
	}

	elections := store.Elections()
	if len(elections) != len(domain.ElectionYears) {
		p.errorf("expected %d elections, got %d", len(domain.ElectionYears), len(elections))
	}
	for i, e := range elections {
		if i > 0 && elections[i-1].Year >= e.Year {
			p.errorf("elections out of order: %d before %d", elections[i-1].Year, e.Year)
		}
	}

	for _, c := range counties {
		for _, year := range []int{2017, 2022} {
			if _, ok := c.Results[year]; !ok {
				p.errorf("%s: missing %d result line", c.Name, year)
			}
		}
		if _, ok := c.Swing(); !ok {
			p.errorf("%s: swing not computable", c.Name)
		}
		pred, err := store.Prediction(c.Name)
		if err != nil {
			p.errorf("%s: no prediction: %v", c.Name, err)
			continue
		}
		if pred.ProjectedVoters <= 0 {
			p.errorf("%s: non-positive projected voters %d", c.Name, pred.ProjectedVoters)
		}
	}
	return p
}

// ── Phase 2: Distributions ──
// Swing tiers are recomputed per county; stronghold alignment is curated.
// Both partitions must land on the expected national counts.

func validateDistributions(store *dataset.Store) *phase {
	p := &phase{name: "Phase 2: Classification Distributions"}

	tierCounts := map[domain.SwingTier]int{}
	alignCounts := map[domain.Alignment]int{}
	for _, pred := range store.Predictions() {
		tierCounts[pred.Swing]++
		alignCounts[pred.Alignment]++
	}

	expectedTiers := map[domain.SwingTier]int{
		domain.TierVeryLow:  5,
		domain.TierLow:      6,
		domain.TierMedium:   14,
		domain.TierHigh:     10,
		domain.TierVeryHigh: 12,
	}
	for tier, want := range expectedTiers {
		if got := tierCounts[tier]; got != want {
			p.errorf("swing tier %s: expected %d counties, got %d", tier, want, got)
		}
	}

	expectedAligns := map[domain.Alignment]int{
		domain.AlignmentKenyaKwanza:  15,
		domain.AlignmentOpposition:   12,
		domain.AlignmentBattleground: 20,
	}
	for align, want := range expectedAligns {
		if got := alignCounts[align]; got != want {
			p.errorf("alignment %s: expected %d counties, got %d", align, want, got)
		}
	}
	return p
}

// ── Phase 3: National Totals ──
// Per-county projections must sum to the stated national figures.

func validateTotals(store *dataset.Store) *phase {
	p := &phase{name: "Phase 3: National Totals"}

	summary := store.NationalSummary()

	var projected, youth int
	var youthPctSum float64
	for _, pred := range store.Predictions() {
		projected += pred.ProjectedVoters
		youth += pred.NewYouthVoters
		youthPctSum += pred.YouthPercentage
	}

	if projected != summary.TotalProjectedVoters {
		p.errorf("projected voters: counties sum to %d, summary says %d", projected, summary.TotalProjectedVoters)
	}
	if youth != summary.TotalNewYouthVoters {
		p.errorf("new youth voters: counties sum to %d, summary says %d", youth, summary.TotalNewYouthVoters)
	}

	avgYouth := youthPctSum / float64(len(store.Predictions()))
	if math.Abs(avgYouth-summary.AverageYouthPercentage) > 0.01 {
		p.errorf("youth percentage: counties average %.4f, summary says %.4f", avgYouth, summary.AverageYouthPercentage)
	}

	battlegrounds := 0
	for _, pred := range store.Predictions() {
		if pred.Battleground() {
			battlegrounds++
		}
	}
	if battlegrounds != summary.BattlegroundCounties {
		p.errorf("battlegrounds: counted %d, summary says %d", battlegrounds, summary.BattlegroundCounties)
	}

	if len(summary.Scenarios) == 0 {
		p.errorf("no turnout scenarios")
	}
	for _, sc := range summary.Scenarios {
		if sc.Turnout <= 0 || sc.Turnout > 100 {
			p.errorf("scenario %q: turnout %.1f out of range", sc.Name, sc.Turnout)
		}
		if got := sc.ProjectedVotesCast(summary.TotalProjectedVoters); got <= 0 || got > summary.TotalProjectedVoters {
			p.errorf("scenario %q: projected votes cast %d out of range", sc.Name, got)
		}
	}
	return p
}

// ── Phase 4: Query Surface ──
// Spot checks against known dataset values, plus the region partition.

func validateQuerySurface(store *dataset.Store) *phase {
	p := &phase{name: "Phase 4: Query Surface"}

	nairobi, err := store.Prediction("Nairobi")
	if err != nil {
		p.errorf("Nairobi prediction: %v", err)
	} else if nairobi.Swing != domain.TierVeryHigh {
		p.errorf("Nairobi swing: expected Very High, got %s", nairobi.Swing)
	}

	for alias, canonical := range map[string]string{
		"Keiyo-Marakwet": "Elgeyo Marakwet",
		"Tharaka":        "Tharaka Nithi",
	} {
		c, err := store.County(alias)
		if err != nil {
			p.errorf("alias %q: %v", alias, err)
		} else if c.Name != canonical {
			p.errorf("alias %q: resolved to %q, expected %q", alias, c.Name, canonical)
		}
	}

	if _, err := store.Election(1997); err == nil {
		p.errorf("Election(1997) succeeded, expected not-found")
	} else {
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			p.errorf("Election(1997): expected NotFoundError, got %T", err)
		}
	}

	// The 8 regions must partition the 47 counties exactly.
	seen := map[string]string{}
	for _, rt := range store.Regions() {
		for _, name := range rt.Counties {
			if prev, dup := seen[name]; dup {
				p.errorf("county %q in both %q and %q", name, prev, rt.Region)
			}
			seen[name] = rt.Region
			if _, err := store.County(name); err != nil {
				p.errorf("region %q lists unknown county %q", rt.Region, name)
			}
		}
	}
	if len(seen) != 47 {
		p.errorf("regions cover %d counties, expected 47", len(seen))
	}
	return p
}
