// Package domain models Kenyan presidential election data, 2002 through 2022,
// and the county-level projections for 2027.
//
// # Data Source
//
// National results come from Independent Electoral and Boundaries Commission
// (IEBC, and its predecessor ECK for 2002/2007) declared results. County-level
// results exist for 2017 and 2022 only; 2002 carries provincial results and
// 2007/2013 carry national results alone. Population figures are the 2019
// Kenya census with a 2023 projection. Projection figures for 2027 (projected
// voters, new youth voters, likely turnout) are curated estimates, not model
// output: the service validates and derives from them, it never forecasts.
//
// # Dataset Conventions
//
// Counties:
//
//	Exactly 47, each belonging to one of 8 regions (Mt Kenya, Rift Valley,
//	Nyanza, Western, Coast, Eastern, North Eastern, Nairobi). Region
//	memberships partition the counties; the per-region counts sum to 47.
//
// Vote shares:
//
//	Percentages in [0,100]. Per county and year the recorded candidate shares
//	sum to at most 100; the remainder is minor candidates not itemised.
//	County results use the coalition figurehead's surname as the key:
//	"Kenyatta" and "Odinga" for 2017, "Ruto" and "Odinga" for 2022.
//
// Turnout:
//
//	Percentage of registered voters who cast a ballot, in [0,100].
//
// # Swing Classification
//
// A county's swing tier is a pure function of the absolute percentage-point
// shift in leading-candidate share between its two most recent recorded
// elections (2017 and 2022 in this dataset). Thresholds:
//
//	<3pp   Very Low   stronghold, effectively immovable
//	3–8    Low        stable, minor shifts
//	8–15   Medium     some movement, still leaning
//	15–25  High       competitive, recent shifts
//	≥25    Very High  could go either way
//
// The function is deterministic and monotonic: a larger absolute shift never
// produces a lower tier. Classifying the same county twice yields the same
// tier. See [ClassifySwing] and [County.Swing].
//
// # Alignment
//
// Each county carries a curated alignment label: Kenya Kwanza stronghold,
// opposition stronghold, or battleground. Unlike the swing tier it is stored,
// not computed; the loader verifies the labels partition the 47 counties as
// 15 / 12 / 20. Computed swing tiers must likewise distribute as
// 5 / 6 / 14 / 10 / 12 across Very Low through Very High.
package domain
