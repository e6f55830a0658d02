package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// ReportRepository stores anonymous symptom reports. Reports are immutable:
// insert and read only, no updates.
type ReportRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewReportRepository creates a ReportRepository.
func NewReportRepository(db *sql.DB, logger *zap.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores one anonymous report. The id, risk score and hotspot
// contribution must already be set by the intake service.
func (r *ReportRepository) Insert(ctx context.Context, report *models.AnonymousReport) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}
	if report.ID == "" {
		return fmt.Errorf("report id is required")
	}
	if report.Location.District == "" {
		return fmt.Errorf("location district is required")
	}

	query := `
		INSERT INTO anonymous_reports (
			id,
			symptoms,
			severity,
			duration,
			location_district,
			location_area,
			occupation,
			age_group,
			gender,
			additional_info,
			report_source,
			risk_score,
			hotspot_contribution,
			report_month,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		pq.Array(report.Symptoms),
		string(report.Severity),
		report.Duration,
		report.Location.District,
		report.Location.Area,
		nullString(report.Occupation),
		nullString(report.AgeGroup),
		nullString(report.Gender),
		nullString(report.AdditionalInfo),
		string(report.ReportSource),
		report.RiskScore,
		report.HotspotContribution,
		report.ReportMonth,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert anonymous report: %w", err)
	}
	return nil
}

// ReportsForDistrictSince returns the window projection of all reports for a
// district created at or after since, newest first.
func (r *ReportRepository) ReportsForDistrictSince(ctx context.Context, district string, since time.Time) ([]models.ReportWindowEntry, error) {
	if district == "" {
		return nil, fmt.Errorf("district is required")
	}

	query := `
		SELECT severity, symptoms, hotspot_contribution, created_at
		FROM anonymous_reports
		WHERE location_district = $1 AND created_at >= $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, district, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query district reports: %w", err)
	}
	defer rows.Close()

	var entries []models.ReportWindowEntry
	for rows.Next() {
		var entry models.ReportWindowEntry
		var severity string
		if err := rows.Scan(&severity, pq.Array(&entry.Symptoms), &entry.HotspotContribution, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report window entry: %w", err)
		}
		entry.Severity = models.SymptomSeverity(severity)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report window entries: %w", err)
	}
	return entries, nil
}

// statsTimeframes maps the dashboard timeframe labels to window lengths.
var statsTimeframes = map[string]time.Duration{
	"1d":  24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// topSymptomsLimit caps the dashboard top-symptoms breakdown.
const topSymptomsLimit = 10

// Stats computes the anonymized aggregate view for dashboards over the given
// timeframe ("1d", "7d" or "30d"; unrecognized values fall back to 7d). A
// non-empty district narrows every breakdown to that district; districts are
// stored lowercased, so the filter is lowercased to match.
func (r *ReportRepository) Stats(ctx context.Context, timeframe, district string) (*models.SurveillanceStats, error) {
	window, ok := statsTimeframes[timeframe]
	if !ok {
		timeframe = "7d"
		window = statsTimeframes[timeframe]
	}
	since := time.Now().UTC().Add(-window)
	district = strings.ToLower(strings.TrimSpace(district))

	stats := &models.SurveillanceStats{
		SeverityBreakdown: make(map[models.SymptomSeverity]int),
		Timeframe:         timeframe,
		LastUpdated:       time.Now().UTC(),
	}

	severityQuery := `
		SELECT severity, COUNT(*)
		FROM anonymous_reports
		WHERE created_at >= $1
		GROUP BY severity
	`
	severityArgs := []interface{}{since}
	if district != "" {
		severityQuery = `
			SELECT severity, COUNT(*)
			FROM anonymous_reports
			WHERE created_at >= $1 AND location_district = $2
			GROUP BY severity
		`
		severityArgs = append(severityArgs, district)
	}
	rows, err := r.db.QueryContext(ctx, severityQuery, severityArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query severity breakdown: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan severity breakdown: %w", err)
		}
		stats.SeverityBreakdown[models.SymptomSeverity(severity)] = count
		stats.TotalReports += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate severity breakdown: %w", err)
	}

	symptomQuery := `
		SELECT symptom, COUNT(*) AS cnt
		FROM anonymous_reports, unnest(symptoms) AS symptom
		WHERE created_at >= $1
		GROUP BY symptom
		ORDER BY cnt DESC, symptom ASC
		LIMIT $2
	`
	symptomArgs := []interface{}{since, topSymptomsLimit}
	if district != "" {
		symptomQuery = `
			SELECT symptom, COUNT(*) AS cnt
			FROM anonymous_reports, unnest(symptoms) AS symptom
			WHERE created_at >= $1 AND location_district = $2
			GROUP BY symptom
			ORDER BY cnt DESC, symptom ASC
			LIMIT $3
		`
		symptomArgs = []interface{}{since, district, topSymptomsLimit}
	}
	symptomRows, err := r.db.QueryContext(ctx, symptomQuery, symptomArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top symptoms: %w", err)
	}
	defer symptomRows.Close()
	for symptomRows.Next() {
		var sc models.SymptomCount
		if err := symptomRows.Scan(&sc.Symptom, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan top symptoms: %w", err)
		}
		stats.TopSymptoms = append(stats.TopSymptoms, sc)
	}
	if err := symptomRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate top symptoms: %w", err)
	}

	districtQuery := `
		SELECT location_district, COUNT(*) AS cnt
		FROM anonymous_reports
		WHERE created_at >= $1
		GROUP BY location_district
		ORDER BY cnt DESC, location_district ASC
	`
	districtArgs := []interface{}{since}
	if district != "" {
		districtQuery = `
			SELECT location_district, COUNT(*) AS cnt
			FROM anonymous_reports
			WHERE created_at >= $1 AND location_district = $2
			GROUP BY location_district
			ORDER BY cnt DESC, location_district ASC
		`
		districtArgs = append(districtArgs, district)
	}
	districtRows, err := r.db.QueryContext(ctx, districtQuery, districtArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query district breakdown: %w", err)
	}
	defer districtRows.Close()
	for districtRows.Next() {
		var dc models.DistrictCount
		if err := districtRows.Scan(&dc.District, &dc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan district breakdown: %w", err)
		}
		stats.DistrictBreakdown = append(stats.DistrictBreakdown, dc)
	}
	if err := districtRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate district breakdown: %w", err)
	}

	return stats, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
