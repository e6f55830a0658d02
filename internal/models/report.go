package models

import (
	"time"
)

// ReportSource identifies the intake channel of an anonymous report.
type ReportSource string

const (
	SourceWeb   ReportSource = "web"
	SourceVoice ReportSource = "voice"
	SourceKiosk ReportSource = "kiosk"
)

// ReportLocation is the coarse location attached to an anonymous report.
// District and area only; precise coordinates never enter the anonymous path.
type ReportLocation struct {
	District string `json:"district" db:"location_district"`
	Area     string `json:"area" db:"location_area"`
}

// AnonymousReport is one privacy-preserving symptom report. Immutable once
// stored; risk_score and hotspot_contribution are computed exactly once at
// submission and never re-derived.
type AnonymousReport struct {
	ID       string          `json:"id" db:"id"`
	Symptoms []string        `json:"symptoms" db:"symptoms"`
	Severity SymptomSeverity `json:"severity" db:"severity"`
	Duration string          `json:"duration" db:"duration"`
	Location ReportLocation  `json:"location"`

	Occupation     string       `json:"occupation,omitempty" db:"occupation"`
	AgeGroup       string       `json:"age_group,omitempty" db:"age_group"`
	Gender         string       `json:"gender,omitempty" db:"gender"`
	AdditionalInfo string       `json:"additional_info,omitempty" db:"additional_info"`
	ReportSource   ReportSource `json:"report_source" db:"report_source"`

	RiskScore           int     `json:"risk_score" db:"risk_score"`
	HotspotContribution float64 `json:"hotspot_contribution" db:"hotspot_contribution"`

	// ReportMonth (YYYY-MM) supports month-level trend queries without
	// touching individual timestamps.
	ReportMonth string    `json:"report_month" db:"report_month"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ReportWindowEntry is the projection of a stored report used by the outbreak
// detector when scanning a trailing window.
type ReportWindowEntry struct {
	Severity            SymptomSeverity `json:"severity"`
	Symptoms            []string        `json:"symptoms"`
	HotspotContribution float64         `json:"hotspot_contribution"`
	CreatedAt           time.Time       `json:"created_at"`
}

// SurveillanceAggregate is the per-(date, district) rolling aggregate. The
// one piece of shared mutable state in the engine; merged via a db-atomic
// upsert, never read-modify-written in process.
type SurveillanceAggregate struct {
	Date          string   `json:"date" db:"date"` // YYYY-MM-DD
	District      string   `json:"district" db:"district"`
	TotalReports  int      `json:"total_reports" db:"total_reports"`
	MildCount     int      `json:"mild_count" db:"mild_count"`
	ModerateCount int      `json:"moderate_count" db:"moderate_count"`
	SevereCount   int      `json:"severe_count" db:"severe_count"`
	CriticalCount int      `json:"critical_count" db:"critical_count"`
	TopSymptoms   []string `json:"top_symptoms" db:"top_symptoms"`
	AvgRiskScore  float64  `json:"average_risk_score" db:"average_risk_score"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// HotspotStatus is the lifecycle state of a hotspot record.
type HotspotStatus string

const (
	HotspotActive HotspotStatus = "active"
	// HotspotStale marks hotspots not refreshed within the configured
	// staleness window. The detector itself never demotes a hotspot; only
	// the optional sweep or an external action moves it out of active.
	HotspotStale HotspotStatus = "stale"
)

// HotspotAlertLevel is the escalation level of an active hotspot.
type HotspotAlertLevel string

const (
	HotspotHigh     HotspotAlertLevel = "high"
	HotspotCritical HotspotAlertLevel = "critical"
)

// Hotspot is an active outbreak detection for a (district, area) key.
type Hotspot struct {
	District           string            `json:"district" db:"district"`
	Area               string            `json:"area" db:"area"`
	AlertLevel         HotspotAlertLevel `json:"alert_level" db:"alert_level"`
	TotalReports       int               `json:"total_reports" db:"total_reports"`
	SevereCriticalCount int              `json:"severe_critical_count" db:"severe_critical_count"`
	HotspotScore       float64           `json:"hotspot_score" db:"hotspot_score"`
	DetectedAt         time.Time         `json:"detected_at" db:"detected_at"`
	Status             HotspotStatus     `json:"status" db:"status"`
	UpdatedAt          time.Time         `json:"updated_at" db:"updated_at"`
}

// SymptomCount is one entry of a top-symptoms breakdown.
type SymptomCount struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

// DistrictCount is one entry of a per-district breakdown.
type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}

// SurveillanceStats is the anonymized aggregate view served to dashboards.
// Individual reports are never exposed through this structure.
type SurveillanceStats struct {
	TotalReports      int             `json:"total_reports"`
	SeverityBreakdown map[SymptomSeverity]int `json:"severity_breakdown"`
	TopSymptoms       []SymptomCount  `json:"top_symptoms"`
	DistrictBreakdown []DistrictCount `json:"district_breakdown"`
	Timeframe         string          `json:"timeframe"`
	LastUpdated       time.Time       `json:"last_updated"`
}
