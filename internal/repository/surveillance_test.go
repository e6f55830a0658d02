package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

func setupSurveillanceRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *SurveillanceRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewSurveillanceRepository(db, zap.NewNop())
	return db, mock, repo
}

func TestMergeReport_Upsert(t *testing.T) {
	db, mock, repo := setupSurveillanceRepo(t)
	defer db.Close()

	report := sampleReport()
	mock.ExpectExec(`INSERT INTO surveillance_aggregates`).
		WithArgs(
			"2026-08-30",
			"Ernakulam",
			"severe",
			pq.Array(report.Symptoms),
			float64(report.RiskScore),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MergeReport(context.Background(), report)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMergeReport_Validation(t *testing.T) {
	db, _, repo := setupSurveillanceRepo(t)
	defer db.Close()

	err := repo.MergeReport(context.Background(), nil)
	assert.ErrorContains(t, err, "report is required")

	err = repo.MergeReport(context.Background(), &models.AnonymousReport{})
	assert.ErrorContains(t, err, "district is required")
}

func TestAggregatesForDate(t *testing.T) {
	db, mock, repo := setupSurveillanceRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"date", "district", "total_reports",
		"mild_count", "moderate_count", "severe_count", "critical_count",
		"top_symptoms", "average_risk_score", "updated_at",
	}).
		AddRow("2026-08-30", "Ernakulam", 12, 5, 4, 2, 1, "{fever,cough}", 8.5, now).
		AddRow("2026-08-30", "Thrissur", 3, 2, 1, 0, 0, "{headache}", 3.2, now)

	mock.ExpectQuery(`SELECT date, district, total_reports`).
		WithArgs("2026-08-30").
		WillReturnRows(rows)

	aggregates, err := repo.AggregatesForDate(context.Background(), "2026-08-30")
	require.NoError(t, err)
	require.Len(t, aggregates, 2)

	assert.Equal(t, "Ernakulam", aggregates[0].District)
	assert.Equal(t, 12, aggregates[0].TotalReports)
	assert.Equal(t, []string{"fever", "cough"}, aggregates[0].TopSymptoms)
	assert.InDelta(t, 8.5, aggregates[0].AvgRiskScore, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregatesForDate_RequiresDate(t *testing.T) {
	db, _, repo := setupSurveillanceRepo(t)
	defer db.Close()

	_, err := repo.AggregatesForDate(context.Background(), "")
	assert.ErrorContains(t, err, "date is required")
}
