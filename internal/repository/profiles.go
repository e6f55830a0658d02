package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// ErrProfileNotFound is returned when a worker has no occupational profile.
var ErrProfileNotFound = fmt.Errorf("occupational profile not found")

// ProfileRepository reads occupational profiles from the worker record
// store. The engine never mutates profiles; writes belong to the worker
// registration flow outside this service.
type ProfileRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProfileRepository creates a ProfileRepository.
func NewProfileRepository(db *sql.DB, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

// GetByWorkerID loads the occupational profile of one worker. The nested
// sections live as JSONB columns on the profile row.
func (r *ProfileRepository) GetByWorkerID(ctx context.Context, workerID string) (*models.OccupationalProfile, error) {
	if workerID == "" {
		return nil, fmt.Errorf("worker_id is required")
	}

	query := `
		SELECT id, worker_id, job_title, industry,
			work_environment, risk_factors, work_history, health_assessments,
			created_at, updated_at
		FROM occupational_profiles
		WHERE worker_id = $1
	`

	var profile models.OccupationalProfile
	var industry string
	var workEnvironment, riskFactors, workHistory, healthAssessments []byte

	err := r.db.QueryRowContext(ctx, query, workerID).Scan(
		&profile.ID,
		&profile.WorkerID,
		&profile.JobTitle,
		&industry,
		&workEnvironment,
		&riskFactors,
		&workHistory,
		&healthAssessments,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query occupational profile: %w", err)
	}

	profile.Industry = models.Industry(industry)
	if err := json.Unmarshal(workEnvironment, &profile.WorkEnvironment); err != nil {
		return nil, fmt.Errorf("failed to decode work environment: %w", err)
	}
	if len(riskFactors) > 0 {
		if err := json.Unmarshal(riskFactors, &profile.RiskFactors); err != nil {
			return nil, fmt.Errorf("failed to decode risk factors: %w", err)
		}
	}
	if len(workHistory) > 0 {
		if err := json.Unmarshal(workHistory, &profile.WorkHistory); err != nil {
			return nil, fmt.Errorf("failed to decode work history: %w", err)
		}
	}
	if len(healthAssessments) > 0 {
		if err := json.Unmarshal(healthAssessments, &profile.HealthAssessments); err != nil {
			return nil, fmt.Errorf("failed to decode health assessments: %w", err)
		}
	}

	return &profile, nil
}
