package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// SurveillanceRepository maintains the per-(date, district) rolling
// aggregates. Merges are atomic at the database level; concurrent
// submissions for the same key never lose updates.
type SurveillanceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSurveillanceRepository creates a SurveillanceRepository.
func NewSurveillanceRepository(db *sql.DB, logger *zap.Logger) *SurveillanceRepository {
	return &SurveillanceRepository{
		db:     db,
		logger: logger,
	}
}

// MergeReport folds one report into its (date, district) aggregate row with
// a single upsert: counters increment in-database, the symptom list extends
// with the report's symptoms deduplicated, and the running average moves by
// one sample. No read-modify-write happens in process.
func (r *SurveillanceRepository) MergeReport(ctx context.Context, report *models.AnonymousReport) error {
	if report == nil {
		return fmt.Errorf("report is required")
	}
	if report.Location.District == "" {
		return fmt.Errorf("location district is required")
	}

	date := report.CreatedAt.UTC().Format("2006-01-02")

	query := `
		INSERT INTO surveillance_aggregates (
			date,
			district,
			total_reports,
			mild_count,
			moderate_count,
			severe_count,
			critical_count,
			top_symptoms,
			average_risk_score,
			updated_at
		) VALUES (
			$1, $2, 1,
			CASE WHEN $3 = 'mild' THEN 1 ELSE 0 END,
			CASE WHEN $3 = 'moderate' THEN 1 ELSE 0 END,
			CASE WHEN $3 = 'severe' THEN 1 ELSE 0 END,
			CASE WHEN $3 = 'critical' THEN 1 ELSE 0 END,
			$4, $5, NOW()
		)
		ON CONFLICT (date, district) DO UPDATE SET
			total_reports = surveillance_aggregates.total_reports + 1,
			mild_count = surveillance_aggregates.mild_count + CASE WHEN $3 = 'mild' THEN 1 ELSE 0 END,
			moderate_count = surveillance_aggregates.moderate_count + CASE WHEN $3 = 'moderate' THEN 1 ELSE 0 END,
			severe_count = surveillance_aggregates.severe_count + CASE WHEN $3 = 'severe' THEN 1 ELSE 0 END,
			critical_count = surveillance_aggregates.critical_count + CASE WHEN $3 = 'critical' THEN 1 ELSE 0 END,
			top_symptoms = ARRAY(
				SELECT DISTINCT s FROM unnest(surveillance_aggregates.top_symptoms || $4) AS s
			),
			average_risk_score = (
				surveillance_aggregates.average_risk_score * surveillance_aggregates.total_reports + $5
			) / (surveillance_aggregates.total_reports + 1),
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		date,
		report.Location.District,
		string(report.Severity),
		pq.Array(report.Symptoms),
		float64(report.RiskScore),
	)
	if err != nil {
		return fmt.Errorf("failed to merge report into aggregate: %w", err)
	}
	return nil
}

// AggregatesForDate returns all district aggregates for one date (YYYY-MM-DD).
func (r *SurveillanceRepository) AggregatesForDate(ctx context.Context, date string) ([]models.SurveillanceAggregate, error) {
	if date == "" {
		return nil, fmt.Errorf("date is required")
	}

	query := `
		SELECT date, district, total_reports,
			mild_count, moderate_count, severe_count, critical_count,
			top_symptoms, average_risk_score, updated_at
		FROM surveillance_aggregates
		WHERE date = $1
		ORDER BY total_reports DESC, district ASC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregates: %w", err)
	}
	defer rows.Close()

	var aggregates []models.SurveillanceAggregate
	for rows.Next() {
		var agg models.SurveillanceAggregate
		if err := rows.Scan(
			&agg.Date,
			&agg.District,
			&agg.TotalReports,
			&agg.MildCount,
			&agg.ModerateCount,
			&agg.SevereCount,
			&agg.CriticalCount,
			pq.Array(&agg.TopSymptoms),
			&agg.AvgRiskScore,
			&agg.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}
		aggregates = append(aggregates, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate aggregates: %w", err)
	}
	return aggregates, nil
}
