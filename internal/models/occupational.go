package models

import (
	"time"
)

// Industry is a sector employing migrant workers in Kerala.
type Industry string

const (
	IndustryConstruction   Industry = "construction"
	IndustryFishing        Industry = "fishing"
	IndustryAgriculture    Industry = "agriculture"
	IndustryManufacturing  Industry = "manufacturing"
	IndustryTextiles       Industry = "textiles"
	IndustryHospitality    Industry = "hospitality"
	IndustryDomesticWork   Industry = "domestic_work"
	IndustryTransportation Industry = "transportation"
	IndustryFoodProcessing Industry = "food_processing"
	IndustryMining         Industry = "mining"
	IndustryOilGas         Industry = "oil_gas"
)

// RiskFactorType classifies an occupational hazard.
type RiskFactorType string

const (
	RiskChemical     RiskFactorType = "chemical"
	RiskPhysical     RiskFactorType = "physical"
	RiskBiological   RiskFactorType = "biological"
	RiskErgonomic    RiskFactorType = "ergonomic"
	RiskPsychosocial RiskFactorType = "psychosocial"
	RiskEnvironmental RiskFactorType = "environmental"
)

// RiskSeverity grades how dangerous an exposure is.
type RiskSeverity string

const (
	RiskSeverityLow      RiskSeverity = "low"
	RiskSeverityModerate RiskSeverity = "moderate"
	RiskSeverityHigh     RiskSeverity = "high"
	RiskSeverityCritical RiskSeverity = "critical"
)

// Weight maps risk severity to its score weight. Unknown grades weigh like
// moderate.
func (s RiskSeverity) Weight() float64 {
	switch s {
	case RiskSeverityLow:
		return 0.5
	case RiskSeverityHigh:
		return 1.5
	case RiskSeverityCritical:
		return 2.0
	default:
		return 1.0
	}
}

// ExposureLevel grades how much of an exposure a worker receives.
type ExposureLevel string

const (
	ExposureMinimal  ExposureLevel = "minimal"
	ExposureModerate ExposureLevel = "moderate"
	ExposureHigh     ExposureLevel = "high"
	ExposureExtreme  ExposureLevel = "extreme"
)

// Weight maps exposure level to its score weight. Unknown levels weigh like
// moderate.
func (l ExposureLevel) Weight() float64 {
	switch l {
	case ExposureMinimal:
		return 0.3
	case ExposureHigh:
		return 1.0
	case ExposureExtreme:
		return 1.3
	default:
		return 0.7
	}
}

// RiskLevel bins a [0,1] risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// Timeframe is the predicted horizon for a condition to manifest.
type Timeframe string

const (
	Timeframe1Month  Timeframe = "1_month"
	Timeframe3Months Timeframe = "3_months"
	Timeframe6Months Timeframe = "6_months"
	Timeframe1Year   Timeframe = "1_year"
	Timeframe2Years  Timeframe = "2_years"
	Timeframe5Years  Timeframe = "5_years"
)

// AlertType classifies a HealthAlert.
type AlertType string

const (
	AlertPreventive      AlertType = "preventive"
	AlertEarlyWarning    AlertType = "early_warning"
	AlertImmediateAction AlertType = "immediate_action"
	AlertHealthScreening AlertType = "health_screening"
)

// AlertSeverity grades a HealthAlert for routing.
type AlertSeverity string

const (
	AlertInfo     AlertSeverity = "info"
	AlertWarning  AlertSeverity = "warning"
	AlertUrgent   AlertSeverity = "urgent"
	AlertCritical AlertSeverity = "critical"
)

// TemperatureRange describes the thermal work environment.
type TemperatureRange string

const (
	TempVeryCold    TemperatureRange = "very_cold"
	TempCold        TemperatureRange = "cold"
	TempModerate    TemperatureRange = "moderate"
	TempHot         TemperatureRange = "hot"
	TempExtremeHeat TemperatureRange = "extreme_heat"
)

// VentilationQuality describes workplace air circulation.
type VentilationQuality string

const (
	VentilationPoor      VentilationQuality = "poor"
	VentilationAdequate  VentilationQuality = "adequate"
	VentilationGood      VentilationQuality = "good"
	VentilationExcellent VentilationQuality = "excellent"
)

// PhysicalDemands flags the physical load of a job.
type PhysicalDemands struct {
	HeavyLifting      bool `json:"heavy_lifting"`
	RepetitiveMotions bool `json:"repetitive_motions"`
	ProlongedStanding bool `json:"prolonged_standing"`
	ProlongedSitting  bool `json:"prolonged_sitting"`
}

// WorkSchedule describes working hours.
type WorkSchedule struct {
	HoursPerDay int `json:"hours_per_day"`
	DaysPerWeek int `json:"days_per_week"`
}

// WorkEnvironment describes the conditions a worker operates in.
type WorkEnvironment struct {
	Temperature     TemperatureRange   `json:"temperature"`
	Ventilation     VentilationQuality `json:"ventilation"`
	WorkSchedule    WorkSchedule       `json:"work_schedule"`
	PhysicalDemands PhysicalDemands    `json:"physical_demands"`
}

// RiskFactor is one hazard present in a worker's current job.
type RiskFactor struct {
	ID            string         `json:"id"`
	Type          RiskFactorType `json:"type"`
	Name          string         `json:"name"`
	Severity      RiskSeverity   `json:"severity"`
	ExposureLevel ExposureLevel  `json:"exposure_level"`
	Frequency     string         `json:"frequency,omitempty"`
}

// WorkHistory is one prior employment entry; DurationMonths accumulates into
// the work-history multiplier.
type WorkHistory struct {
	ID             string   `json:"id"`
	JobTitle       string   `json:"job_title"`
	Industry       Industry `json:"industry"`
	DurationMonths int      `json:"duration_months"`
	Location       string   `json:"location,omitempty"`
}

// AssessedSymptom is one symptom noted during a health assessment.
// Severity is on a 1-10 clinical scale, not the report tiers.
type AssessedSymptom struct {
	SymptomID   string `json:"symptom_id"`
	Severity    int    `json:"severity"`
	WorkRelated bool   `json:"work_related"`
}

// HealthAssessment is one past clinical assessment of a worker.
type HealthAssessment struct {
	ID             string            `json:"id"`
	AssessmentDate time.Time         `json:"assessment_date"`
	Symptoms       []AssessedSymptom `json:"symptoms"`
	OverallScore   float64           `json:"overall_score,omitempty"`
}

// OccupationalProfile is the long-lived risk profile owned by a worker
// record. The engine reads it and never mutates it.
type OccupationalProfile struct {
	ID                string             `json:"id"`
	WorkerID          string             `json:"worker_id"`
	JobTitle          string             `json:"job_title"`
	Industry          Industry           `json:"industry"`
	WorkEnvironment   WorkEnvironment    `json:"work_environment"`
	RiskFactors       []RiskFactor       `json:"risk_factors"`
	WorkHistory       []WorkHistory      `json:"work_history"`
	HealthAssessments []HealthAssessment `json:"health_assessments"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// OccupationalCondition is immutable reference data for one work-related
// condition.
type OccupationalCondition struct {
	ID               string           `json:"id"`
	Name             LocalizedText    `json:"name"`
	Description      LocalizedText    `json:"description"`
	Category         string           `json:"category"`
	CommonIndustries []Industry       `json:"common_industries"`
	RiskFactorTypes  []RiskFactorType `json:"risk_factor_types"`
	Symptoms         []string         `json:"symptoms"`
	Prevention       LocalizedList    `json:"prevention"`
	Treatment        LocalizedList    `json:"treatment"`
	Prognosis        string           `json:"prognosis"`
	PrevalenceRate   float64          `json:"prevalence_rate"`
	// Acute conditions manifest on shorter timeframes.
	Acute bool `json:"acute,omitempty"`
}

// RiskPrediction is a derived per-(profile, condition) risk estimate,
// recomputed on demand and never stored.
type RiskPrediction struct {
	ID                        string    `json:"id"`
	ConditionID               string    `json:"condition_id"`
	RiskScore                 float64   `json:"risk_score"`
	RiskLevel                 RiskLevel `json:"risk_level"`
	Timeframe                 Timeframe `json:"timeframe"`
	ContributingFactors       []string  `json:"contributing_factors"`
	PreventionRecommendations []string  `json:"prevention_recommendations"`
	MonitoringAdvice          []string  `json:"monitoring_advice"`
	Confidence                float64   `json:"confidence"`
	CreatedAt                 time.Time `json:"created_at"`
}

// HealthAlert is generated from a high or critical RiskPrediction and handed
// to the notification channel. Delivery is fire-and-forget.
type HealthAlert struct {
	ID              string        `json:"id"`
	Type            AlertType     `json:"type"`
	Severity        AlertSeverity `json:"severity"`
	ConditionID     string        `json:"condition_id"`
	Message         LocalizedText `json:"message"`
	Recommendations []string      `json:"recommendations"`
	IsActive        bool          `json:"is_active"`
	TriggerDate     time.Time     `json:"trigger_date"`
}
