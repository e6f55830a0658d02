package occupational

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// minRiskScore drops predictions that carry no meaningful risk.
const minRiskScore = 0.1

// Predictor estimates occupational disease risk from a worker profile. All
// scoring is pure; only generated identifiers and timestamps vary between
// runs.
type Predictor struct {
	catalog *catalog.Catalog
}

// New creates a Predictor over the given catalog.
func New(c *catalog.Catalog) *Predictor {
	return &Predictor{catalog: c}
}

// Predict scores every occupational condition in the catalog against the
// profile and returns predictions with score > 0.1, sorted descending.
func (p *Predictor) Predict(profile *models.OccupationalProfile) []models.RiskPrediction {
	var predictions []models.RiskPrediction
	for _, cond := range p.catalog.OccupationalConditions() {
		prediction := p.predictCondition(profile, cond)
		if prediction.RiskScore > minRiskScore {
			predictions = append(predictions, prediction)
		}
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		if predictions[i].RiskScore != predictions[j].RiskScore {
			return predictions[i].RiskScore > predictions[j].RiskScore
		}
		return predictions[i].ConditionID < predictions[j].ConditionID
	})
	return predictions
}

// GenerateAlerts creates a HealthAlert for every prediction at high or
// critical risk level. Alerts are handed to the notification channel by the
// caller; delivery is fire-and-forget.
func (p *Predictor) GenerateAlerts(predictions []models.RiskPrediction) []models.HealthAlert {
	var alerts []models.HealthAlert
	for _, prediction := range predictions {
		if prediction.RiskLevel != models.RiskLevelHigh && prediction.RiskLevel != models.RiskLevelCritical {
			continue
		}
		alerts = append(alerts, p.buildAlert(prediction))
	}
	return alerts
}

func (p *Predictor) predictCondition(profile *models.OccupationalProfile, cond models.OccupationalCondition) models.RiskPrediction {
	score := cond.PrevalenceRate

	if industryMatches(cond.CommonIndustries, profile.Industry) {
		score *= 2.0
	}
	score *= environmentalRisk(profile.WorkEnvironment, cond)
	score *= riskFactorAlignment(profile.RiskFactors, cond.RiskFactorTypes)
	score *= workHistoryImpact(profile.WorkHistory, cond)
	score *= healthHistoryImpact(profile.HealthAssessments, cond)
	score *= keralaMultiplier(profile.Industry)

	score = clamp01(score)

	return models.RiskPrediction{
		ID:                        "prediction_" + uuid.NewString(),
		ConditionID:               cond.ID,
		RiskScore:                 score,
		RiskLevel:                 riskLevel(score),
		Timeframe:                 timeframe(score, cond),
		ContributingFactors:       contributingFactors(profile, cond),
		PreventionRecommendations: preventionRecommendations(profile, cond),
		MonitoringAdvice:          monitoringAdvice(cond),
		Confidence:                confidence(profile, score),
		CreatedAt:                 time.Now().UTC(),
	}
}

func industryMatches(industries []models.Industry, industry models.Industry) bool {
	for _, i := range industries {
		if i == industry {
			return true
		}
	}
	return false
}

// environmentalRisk applies category-specific work environment multipliers.
func environmentalRisk(env models.WorkEnvironment, cond models.OccupationalCondition) float64 {
	multiplier := 1.0

	if cond.Category == "cardiovascular" && env.Temperature == models.TempExtremeHeat {
		multiplier *= 2.5
	}
	if cond.Category == "respiratory" && env.Ventilation == models.VentilationPoor {
		multiplier *= 2.0
	}
	if cond.Category == "musculoskeletal" {
		if env.PhysicalDemands.HeavyLifting {
			multiplier *= 1.5
		}
		if env.PhysicalDemands.RepetitiveMotions {
			multiplier *= 1.3
		}
		if env.PhysicalDemands.ProlongedStanding {
			multiplier *= 1.2
		}
	}
	return multiplier
}

// riskFactorAlignment averages severity x exposure weight over the profile's
// risk factors whose type the condition declares, clamped to 2.0. A profile
// with no aligned factors halves the score.
func riskFactorAlignment(factors []models.RiskFactor, types []models.RiskFactorType) float64 {
	declared := make(map[models.RiskFactorType]bool, len(types))
	for _, t := range types {
		declared[t] = true
	}

	var total float64
	aligned := 0
	for _, f := range factors {
		if !declared[f.Type] {
			continue
		}
		total += f.Severity.Weight() * f.ExposureLevel.Weight()
		aligned++
	}
	if aligned == 0 {
		return 0.5
	}
	return math.Min(total/float64(aligned), 2.0)
}

// workHistoryImpact scales by cumulative months spent in the condition's
// common industries.
func workHistoryImpact(history []models.WorkHistory, cond models.OccupationalCondition) float64 {
	totalMonths := 0
	for _, wh := range history {
		if industryMatches(cond.CommonIndustries, wh.Industry) {
			totalMonths += wh.DurationMonths
		}
	}

	switch {
	case totalMonths > 60:
		return 1.8
	case totalMonths > 36:
		return 1.5
	case totalMonths > 12:
		return 1.2
	default:
		return 1.0
	}
}

// healthHistoryImpact checks the most recent assessment for work-related
// symptoms matching the condition; their average 1-10 severity feeds a
// 1.0 + avg/10 multiplier.
func healthHistoryImpact(assessments []models.HealthAssessment, cond models.OccupationalCondition) float64 {
	if len(assessments) == 0 {
		return 1.0
	}

	latest := assessments[0]
	for _, a := range assessments[1:] {
		if a.AssessmentDate.After(latest.AssessmentDate) {
			latest = a
		}
	}

	conditionSymptoms := make(map[string]bool, len(cond.Symptoms))
	for _, id := range cond.Symptoms {
		conditionSymptoms[id] = true
	}

	sum, count := 0, 0
	for _, s := range latest.Symptoms {
		if s.WorkRelated && conditionSymptoms[s.SymptomID] {
			sum += s.Severity
			count++
		}
	}
	if count == 0 {
		return 1.0
	}
	avg := float64(sum) / float64(count)
	return 1.0 + avg/10
}

// keralaMultiplier applies the regional environmental factors matching the
// profile's industry.
func keralaMultiplier(industry models.Industry) float64 {
	multiplier := 1.0
	for _, factor := range catalog.KeralaEnvironmentalFactors() {
		if industryMatches(factor.Industries, industry) {
			multiplier *= factor.Multiplier
		}
	}
	return multiplier
}

func riskLevel(score float64) models.RiskLevel {
	switch {
	case score >= 0.8:
		return models.RiskLevelCritical
	case score >= 0.6:
		return models.RiskLevelHigh
	case score >= 0.3:
		return models.RiskLevelModerate
	default:
		return models.RiskLevelLow
	}
}

func timeframe(score float64, cond models.OccupationalCondition) models.Timeframe {
	if cond.Acute {
		if score > 0.7 {
			return models.Timeframe1Month
		}
		return models.Timeframe3Months
	}

	switch {
	case score >= 0.8:
		return models.Timeframe6Months
	case score >= 0.6:
		return models.Timeframe1Year
	case score >= 0.4:
		return models.Timeframe2Years
	default:
		return models.Timeframe5Years
	}
}

func contributingFactors(profile *models.OccupationalProfile, cond models.OccupationalCondition) []string {
	var factors []string

	if industryMatches(cond.CommonIndustries, profile.Industry) {
		factors = append(factors, fmt.Sprintf("Working in %s industry", profile.Industry))
	}

	declared := make(map[models.RiskFactorType]bool, len(cond.RiskFactorTypes))
	for _, t := range cond.RiskFactorTypes {
		declared[t] = true
	}
	for _, rf := range profile.RiskFactors {
		if declared[rf.Type] && rf.Severity != models.RiskSeverityLow {
			factors = append(factors, fmt.Sprintf("%s exposure: %s", rf.Type, rf.Name))
		}
	}

	if profile.WorkEnvironment.Temperature == models.TempExtremeHeat {
		factors = append(factors, "Extreme heat exposure")
	}
	if profile.WorkEnvironment.WorkSchedule.HoursPerDay > 10 {
		factors = append(factors, "Long working hours")
	}
	return factors
}

func preventionRecommendations(profile *models.OccupationalProfile, cond models.OccupationalCondition) []string {
	recommendations := append([]string{}, cond.Prevention.Resolve(models.LangEnglish)...)

	if cond.Category == "musculoskeletal" && profile.WorkEnvironment.PhysicalDemands.HeavyLifting {
		recommendations = append(recommendations,
			"Use mechanical lifting aids",
			"Implement job rotation schedules")
	}
	if cond.Category == "respiratory" {
		recommendations = append(recommendations,
			"Ensure proper respiratory protection",
			"Regular lung function testing")
	}
	if cond.Category == "cardiovascular" && profile.WorkEnvironment.Temperature == models.TempExtremeHeat {
		recommendations = append(recommendations,
			"Implement heat stress prevention program",
			"Provide cooling stations and adequate hydration")
	}

	return dedupe(recommendations)
}

func monitoringAdvice(cond models.OccupationalCondition) []string {
	switch cond.Category {
	case "respiratory":
		return []string{
			"Annual spirometry testing",
			"Monitor for persistent cough or shortness of breath",
		}
	case "musculoskeletal":
		return []string{
			"Regular ergonomic assessments",
			"Monitor for pain, stiffness, or limited range of motion",
		}
	case "cardiovascular":
		return []string{
			"Regular blood pressure and heart rate monitoring",
			"Monitor for heat-related symptoms",
		}
	default:
		return []string{
			"Regular health checkups",
			"Report any work-related symptoms immediately",
		}
	}
}

// confidence starts at 0.7, grows with every populated profile section and
// shrinks for scores in the extreme tails where the model has less support.
func confidence(profile *models.OccupationalProfile, score float64) float64 {
	c := 0.7
	if len(profile.WorkHistory) > 0 {
		c += 0.1
	}
	if len(profile.HealthAssessments) > 0 {
		c += 0.1
	}
	if len(profile.RiskFactors) > 0 {
		c += 0.1
	}
	if score > 0.9 || score < 0.1 {
		c -= 0.1
	}
	return math.Min(c, 1.0)
}

func (p *Predictor) buildAlert(prediction models.RiskPrediction) models.HealthAlert {
	alertType := models.AlertEarlyWarning
	severity := models.AlertWarning
	if prediction.RiskLevel == models.RiskLevelCritical {
		alertType = models.AlertImmediateAction
		severity = models.AlertCritical
	}

	message := models.LocalizedText{}
	percent := int(math.Round(prediction.RiskScore * 100))
	if cond, ok := p.conditionByID(prediction.ConditionID); ok {
		for lang, name := range cond.Name {
			message[lang] = fmt.Sprintf("High risk detected for %s. Risk score: %d%%", name, percent)
		}
	} else {
		message[models.LangEnglish] = fmt.Sprintf("High occupational health risk detected. Risk score: %d%%", percent)
	}

	return models.HealthAlert{
		ID:              "alert_" + uuid.NewString(),
		Type:            alertType,
		Severity:        severity,
		ConditionID:     prediction.ConditionID,
		Message:         message,
		Recommendations: prediction.PreventionRecommendations,
		IsActive:        true,
		TriggerDate:     time.Now().UTC(),
	}
}

func (p *Predictor) conditionByID(id string) (models.OccupationalCondition, bool) {
	for _, cond := range p.catalog.OccupationalConditions() {
		if cond.ID == id {
			return cond, true
		}
	}
	return models.OccupationalCondition{}, false
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
