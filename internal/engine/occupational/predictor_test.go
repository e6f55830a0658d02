package occupational

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

func constructionProfile() *models.OccupationalProfile {
	return &models.OccupationalProfile{
		ID:       "profile-1",
		WorkerID: "worker-1",
		JobTitle: "Mason",
		Industry: models.IndustryConstruction,
		WorkEnvironment: models.WorkEnvironment{
			Temperature: models.TempExtremeHeat,
			Ventilation: models.VentilationAdequate,
			WorkSchedule: models.WorkSchedule{
				HoursPerDay: 11,
				DaysPerWeek: 6,
			},
			PhysicalDemands: models.PhysicalDemands{
				HeavyLifting: true,
			},
		},
		RiskFactors: []models.RiskFactor{
			{
				ID:            "heat",
				Type:          models.RiskEnvironmental,
				Name:          "Outdoor heat exposure",
				Severity:      models.RiskSeverityHigh,
				ExposureLevel: models.ExposureHigh,
			},
		},
	}
}

func TestPredict_ConstructionWorkerInHeat(t *testing.T) {
	p := New(catalog.NewDefault())

	predictions := p.Predict(constructionProfile())
	require.Len(t, predictions, 3)

	// Sorted descending by score; heat exhaustion dominates under extreme
	// heat: 0.20 x2 (industry) x2.5 (heat) x1.5 (aligned env factor)
	// x1.56 (monsoon x coastal) clamps to 1.0.
	heat := predictions[0]
	assert.Equal(t, "heat_exhaustion", heat.ConditionID)
	assert.InDelta(t, 1.0, heat.RiskScore, 1e-9)
	assert.Equal(t, models.RiskLevelCritical, heat.RiskLevel)
	assert.Equal(t, models.Timeframe1Month, heat.Timeframe)
	// 0.7 base +0.1 risk factors, -0.1 extreme tail.
	assert.InDelta(t, 0.7, heat.Confidence, 1e-9)

	// back_strain: 0.25 x2 x1.5 (heavy lifting) x0.5 (no aligned factor
	// types) x1.56 = 0.585.
	back := predictions[1]
	assert.Equal(t, "back_strain", back.ConditionID)
	assert.InDelta(t, 0.585, back.RiskScore, 1e-9)
	assert.Equal(t, models.RiskLevelModerate, back.RiskLevel)
	assert.Equal(t, models.Timeframe2Years, back.Timeframe)

	// respiratory_disease: 0.15 x2 x0.5 x1.56 = 0.234.
	resp := predictions[2]
	assert.Equal(t, "respiratory_disease", resp.ConditionID)
	assert.InDelta(t, 0.234, resp.RiskScore, 1e-9)
	assert.Equal(t, models.RiskLevelLow, resp.RiskLevel)
	assert.Equal(t, models.Timeframe5Years, resp.Timeframe)
}

func TestPredict_BoundsHold(t *testing.T) {
	p := New(catalog.NewDefault())

	profiles := []*models.OccupationalProfile{
		{Industry: models.IndustryDomesticWork},
		constructionProfile(),
		{
			Industry: models.IndustryMining,
			WorkEnvironment: models.WorkEnvironment{
				Ventilation: models.VentilationPoor,
				PhysicalDemands: models.PhysicalDemands{
					HeavyLifting:      true,
					RepetitiveMotions: true,
					ProlongedStanding: true,
				},
			},
			RiskFactors: []models.RiskFactor{
				{Type: models.RiskChemical, Severity: models.RiskSeverityCritical, ExposureLevel: models.ExposureExtreme},
				{Type: models.RiskPhysical, Severity: models.RiskSeverityCritical, ExposureLevel: models.ExposureExtreme},
			},
			WorkHistory: []models.WorkHistory{
				{Industry: models.IndustryMining, DurationMonths: 120},
			},
		},
	}

	for _, profile := range profiles {
		for _, prediction := range p.Predict(profile) {
			assert.GreaterOrEqual(t, prediction.RiskScore, 0.0)
			assert.LessOrEqual(t, prediction.RiskScore, 1.0)
			assert.GreaterOrEqual(t, prediction.Confidence, 0.0)
			assert.LessOrEqual(t, prediction.Confidence, 1.0)
			assert.Greater(t, prediction.RiskScore, 0.1)
			assert.NotEmpty(t, prediction.ID)
		}
	}
}

func TestPredict_ExposureMonotonicity(t *testing.T) {
	p := New(catalog.NewDefault())

	scoreFor := func(severity models.RiskSeverity, exposure models.ExposureLevel) float64 {
		profile := &models.OccupationalProfile{
			Industry: models.IndustryConstruction,
			RiskFactors: []models.RiskFactor{
				{Type: models.RiskPhysical, Severity: severity, ExposureLevel: exposure},
			},
		}
		for _, prediction := range p.Predict(profile) {
			if prediction.ConditionID == "back_strain" {
				return prediction.RiskScore
			}
		}
		return 0
	}

	severities := []models.RiskSeverity{
		models.RiskSeverityLow, models.RiskSeverityModerate, models.RiskSeverityHigh, models.RiskSeverityCritical,
	}
	exposures := []models.ExposureLevel{
		models.ExposureMinimal, models.ExposureModerate, models.ExposureHigh, models.ExposureExtreme,
	}

	prev := 0.0
	for _, sev := range severities {
		got := scoreFor(sev, models.ExposureHigh)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}

	prev = 0.0
	for _, exp := range exposures {
		got := scoreFor(models.RiskSeverityHigh, exp)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestPredict_WorkHistoryTiers(t *testing.T) {
	p := New(catalog.NewDefault())

	scoreFor := func(months int) float64 {
		profile := &models.OccupationalProfile{
			Industry: models.IndustryHospitality, // avoid industry doubling
			WorkHistory: []models.WorkHistory{
				{Industry: models.IndustryConstruction, DurationMonths: months},
			},
		}
		for _, prediction := range p.Predict(profile) {
			if prediction.ConditionID == "back_strain" {
				return prediction.RiskScore
			}
		}
		return 0
	}

	base := scoreFor(6)
	assert.Greater(t, scoreFor(24), base)
	assert.Greater(t, scoreFor(48), scoreFor(24))
	assert.Greater(t, scoreFor(72), scoreFor(48))
}

func TestPredict_HealthHistoryUsesLatestAssessment(t *testing.T) {
	p := New(catalog.NewDefault())

	profile := constructionProfile()
	profile.HealthAssessments = []models.HealthAssessment{
		{
			ID:             "old",
			AssessmentDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Symptoms: []models.AssessedSymptom{
				{SymptomID: "back_pain", Severity: 2, WorkRelated: true},
			},
		},
		{
			ID:             "recent",
			AssessmentDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Symptoms: []models.AssessedSymptom{
				{SymptomID: "back_pain", Severity: 8, WorkRelated: true},
			},
		},
	}

	var withHistory float64
	for _, prediction := range p.Predict(profile) {
		if prediction.ConditionID == "back_strain" {
			withHistory = prediction.RiskScore
		}
	}

	// Latest assessment severity 8 multiplies by 1.8: 0.585 x 1.8 = 1.053
	// clamped to 1.0.
	assert.InDelta(t, 1.0, withHistory, 1e-9)
}

func TestPredict_NonWorkRelatedSymptomsIgnored(t *testing.T) {
	p := New(catalog.NewDefault())

	profile := constructionProfile()
	profile.HealthAssessments = []models.HealthAssessment{
		{
			ID:             "a1",
			AssessmentDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Symptoms: []models.AssessedSymptom{
				{SymptomID: "back_pain", Severity: 9, WorkRelated: false},
			},
		},
	}

	for _, prediction := range p.Predict(profile) {
		if prediction.ConditionID == "back_strain" {
			// Multiplier stays 1.0; only confidence moves (+0.1 for
			// having assessments).
			assert.InDelta(t, 0.585, prediction.RiskScore, 1e-9)
		}
	}
}

func TestGenerateAlerts(t *testing.T) {
	p := New(catalog.NewDefault())

	predictions := p.Predict(constructionProfile())
	alerts := p.GenerateAlerts(predictions)

	// Only heat_exhaustion reaches high/critical for this profile.
	require.Len(t, alerts, 1)
	alert := alerts[0]
	assert.Equal(t, "heat_exhaustion", alert.ConditionID)
	assert.Equal(t, models.AlertImmediateAction, alert.Type)
	assert.Equal(t, models.AlertCritical, alert.Severity)
	assert.True(t, alert.IsActive)
	assert.NotEmpty(t, alert.Recommendations)
	assert.Contains(t, alert.Message.Resolve(models.LangEnglish), "100%")
	assert.NotEmpty(t, alert.Message.Resolve(models.LangHindi))
}

func TestGenerateAlerts_NoneBelowHigh(t *testing.T) {
	p := New(catalog.NewDefault())

	predictions := p.Predict(&models.OccupationalProfile{Industry: models.IndustryDomesticWork})
	assert.Empty(t, p.GenerateAlerts(predictions))
}
