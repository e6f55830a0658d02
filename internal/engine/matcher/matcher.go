package matcher

import (
	"fmt"
	"math"
	"sort"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

const (
	// commonWeight, rareBonus and severityWeight are the fixed blend of the
	// confidence formula; tuning any of them changes triage for every user
	// and requires sign-off from the medical advisors.
	commonWeight   = 0.7
	rareBonus      = 0.3
	severityWeight = 0.1

	// minConfidence drops matches that carry no real signal.
	minConfidence = 0.1

	// MaxMatches caps the result list.
	MaxMatches = 5
)

// Matcher scores catalog conditions against a symptom selection. Pure and
// deterministic; safe for concurrent use.
type Matcher struct {
	catalog *catalog.Catalog
}

// New creates a Matcher over the given catalog.
func New(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c}
}

// Match scores every catalog condition against the selection, discards
// matches with confidence <= 0.1 and returns at most MaxMatches results
// sorted descending by confidence. Ordering is fully deterministic: ties
// break on condition id.
func (m *Matcher) Match(selected []models.SelectedSymptom) []models.ConditionMatch {
	if len(selected) == 0 {
		return nil
	}

	selectedIDs := make(map[string]bool, len(selected))
	for _, s := range selected {
		selectedIDs[s.SymptomID] = true
	}

	var matches []models.ConditionMatch
	for _, cond := range m.catalog.Conditions() {
		match := scoreCondition(cond, selected, selectedIDs)
		if match.Confidence > minConfidence {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].ConditionID < matches[j].ConditionID
	})
	if len(matches) > MaxMatches {
		matches = matches[:MaxMatches]
	}
	return matches
}

// Urgency reduces the matched conditions to the single triage level shown to
// the user: the maximum urgency tier over all matches, starting at low.
func (m *Matcher) Urgency(matches []models.ConditionMatch) models.UrgencyLevel {
	urgency := models.UrgencyLow
	for _, match := range matches {
		cond, ok := m.catalog.ConditionByID(match.ConditionID)
		if !ok {
			continue
		}
		if cond.Urgency.Rank() > urgency.Rank() {
			urgency = cond.Urgency
		}
	}
	return urgency
}

func scoreCondition(cond models.Condition, selected []models.SelectedSymptom, selectedIDs map[string]bool) models.ConditionMatch {
	var matchingCommon, matchingRare, missing []string
	for _, id := range cond.CommonSymptoms {
		if selectedIDs[id] {
			matchingCommon = append(matchingCommon, id)
		} else {
			missing = append(missing, id)
		}
	}
	for _, id := range cond.RareSymptoms {
		if selectedIDs[id] {
			matchingRare = append(matchingRare, id)
		}
	}

	// A condition with no common symptoms scores 0 rather than dividing by
	// zero; Catalog.Validate rejects such rows but a runtime guard stays.
	var commonScore float64
	if len(cond.CommonSymptoms) > 0 {
		commonScore = float64(len(matchingCommon)) / float64(len(cond.CommonSymptoms))
	}
	rareScore := float64(len(matchingRare)) * rareBonus
	severityScore := severityMatch(cond, selected)

	base := commonScore*commonWeight + rareScore + severityScore*severityWeight
	confidence := math.Min(1.0, base*cond.PrevalenceInMigrants.Multiplier())

	return models.ConditionMatch{
		ConditionID:      cond.ID,
		Confidence:       confidence,
		MatchingSymptoms: append(matchingCommon, matchingRare...),
		MissingSymptoms:  missing,
		Reasoning:        reasoning(cond, len(matchingCommon), confidence),
	}
}

// severityMatch compares the average selected severity against the
// condition's inherent severity on the shared 1-4 scale; 1.0 is a perfect
// match.
func severityMatch(cond models.Condition, selected []models.SelectedSymptom) float64 {
	if len(selected) == 0 {
		return 0
	}
	sum := 0
	for _, s := range selected {
		sum += s.Severity.Scale()
	}
	avg := float64(sum) / float64(len(selected))
	return 1.0 - math.Abs(avg-float64(cond.Severity.Scale()))/4
}

func reasoning(cond models.Condition, matchingCommon int, confidence float64) string {
	switch {
	case confidence > 0.8:
		return fmt.Sprintf("High probability match. %d out of %d common symptoms present.",
			matchingCommon, len(cond.CommonSymptoms))
	case confidence > 0.5:
		return "Possible match. Consider additional symptoms and risk factors."
	case confidence > 0.3:
		return "Low probability match. Some symptoms align but further evaluation needed."
	default:
		return "Unlikely match based on current symptoms."
	}
}
