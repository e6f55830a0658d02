package scoring

import (
	"math"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// MaxRiskScore caps the per-report risk score.
const MaxRiskScore = 30

// severityBase is the starting score per reported severity tier.
var severityBase = map[models.SymptomSeverity]float64{
	models.SeverityMild:     1,
	models.SeverityModerate: 3,
	models.SeveritySevere:   6,
	models.SeverityCritical: 10,
}

// highRiskSymptoms each add 2 points when present in a report.
var highRiskSymptoms = map[string]bool{
	"fever":      true,
	"breathing":  true,
	"chest_pain": true,
}

const highRiskBonus = 2

// durationMultipliers scale the score by how long symptoms have lasted.
// Unrecognized buckets multiply by 1 rather than erroring; the intake UI
// owns the bucket labels and they travel as plain strings.
var durationMultipliers = map[string]float64{
	"Less than 1 day":   0.5,
	"1-3 days":          1,
	"4-7 days":          1.5,
	"1-2 weeks":         2,
	"More than 2 weeks": 3,
}

// severityWeight feeds the hotspot contribution.
var severityWeight = map[models.SymptomSeverity]float64{
	models.SeverityMild:     0.25,
	models.SeverityModerate: 0.5,
	models.SeveritySevere:   0.75,
	models.SeverityCritical: 1.0,
}

// RiskScore computes the per-report risk score in [0, MaxRiskScore].
// Deterministic and pure: the score is computed exactly once at submission,
// stored on the report and never re-derived.
func RiskScore(severity models.SymptomSeverity, symptoms []string, duration string) int {
	score := severityBase[severity]

	for _, id := range symptoms {
		if highRiskSymptoms[id] {
			score += highRiskBonus
		}
	}

	multiplier, ok := durationMultipliers[duration]
	if !ok {
		multiplier = 1
	}
	score *= multiplier

	rounded := int(math.Round(score))
	if rounded > MaxRiskScore {
		return MaxRiskScore
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

// HotspotContribution computes a report's additive weight toward district
// hotspot scoring, rounded to two decimals.
func HotspotContribution(severity models.SymptomSeverity, symptomCount int) float64 {
	contribution := severityWeight[severity] + 0.1*float64(symptomCount)
	return math.Round(contribution*100) / 100
}
