package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/engine/occupational"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// ProfileStore supplies occupational profiles. The engine never writes them.
type ProfileStore interface {
	GetByWorkerID(ctx context.Context, workerID string) (*models.OccupationalProfile, error)
}

// AlertNotifier delivers health alerts. Implementations must be
// fire-and-forget: they log their own failures and never return them.
type AlertNotifier interface {
	NotifyWorkerAlerts(ctx context.Context, workerID, district string, alerts []models.HealthAlert)
}

// OccupationalAssessment is the outcome of one on-demand risk assessment.
type OccupationalAssessment struct {
	WorkerID    string                  `json:"worker_id"`
	Predictions []models.RiskPrediction `json:"predictions"`
	Alerts      []models.HealthAlert    `json:"alerts"`
}

// OccupationalService runs long-horizon risk assessments per worker. A failed
// profile fetch fails the assessment; alert dispatch never does.
type OccupationalService struct {
	profiles  ProfileStore
	predictor *occupational.Predictor
	notifier  AlertNotifier
	logger    *zap.Logger
}

// NewOccupationalService creates an OccupationalService. notifier may be nil;
// alerts are then computed but not dispatched.
func NewOccupationalService(profiles ProfileStore, c *catalog.Catalog, notifier AlertNotifier, logger *zap.Logger) *OccupationalService {
	return &OccupationalService{
		profiles:  profiles,
		predictor: occupational.New(c),
		notifier:  notifier,
		logger:    logger,
	}
}

// AssessWorker computes risk predictions for one worker and dispatches alerts
// for the high and critical ones. district routes alert delivery and may be
// empty.
func (s *OccupationalService) AssessWorker(ctx context.Context, workerID, district string) (*OccupationalAssessment, error) {
	if workerID == "" {
		return nil, fmt.Errorf("worker_id is required")
	}

	profile, err := s.profiles.GetByWorkerID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load occupational profile: %w", err)
	}

	// Profiles registered without site-specific hazards fall back to the
	// industry baseline before prediction.
	if len(profile.RiskFactors) == 0 {
		profile.RiskFactors = catalog.IndustryRiskFactors(profile.Industry)
	}

	predictions := s.predictor.Predict(profile)
	alerts := s.predictor.GenerateAlerts(predictions)

	if s.notifier != nil && len(alerts) > 0 {
		s.notifier.NotifyWorkerAlerts(ctx, workerID, district, alerts)
	}

	s.logger.Info("Assessed occupational risk",
		zap.String("worker_id", workerID),
		zap.Int("predictions", len(predictions)),
		zap.Int("alerts", len(alerts)),
	)

	return &OccupationalAssessment{
		WorkerID:    workerID,
		Predictions: predictions,
		Alerts:      alerts,
	}, nil
}
