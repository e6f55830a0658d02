package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// ============================================================
// Fakes
// ============================================================

type fakeProfileStore struct {
	profile *models.OccupationalProfile
	err     error
}

func (f *fakeProfileStore) GetByWorkerID(ctx context.Context, workerID string) (*models.OccupationalProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type fakeAlertNotifier struct {
	workerIDs []string
	districts []string
	alerts    [][]models.HealthAlert
}

func (f *fakeAlertNotifier) NotifyWorkerAlerts(ctx context.Context, workerID, district string, alerts []models.HealthAlert) {
	f.workerIDs = append(f.workerIDs, workerID)
	f.districts = append(f.districts, district)
	f.alerts = append(f.alerts, alerts)
}

func highRiskProfile() *models.OccupationalProfile {
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
				HeavyLifting:      true,
				ProlongedStanding: true,
			},
		},
		RiskFactors: []models.RiskFactor{
			{
				ID:            "rf-heat",
				Type:          models.RiskEnvironmental,
				Name:          "Outdoor heat exposure",
				Severity:      models.RiskSeverityHigh,
				ExposureLevel: models.ExposureHigh,
			},
		},
		WorkHistory: []models.WorkHistory{
			{ID: "wh-1", JobTitle: "Mason", Industry: models.IndustryConstruction, DurationMonths: 40},
		},
	}
}

func setupOccupational(t *testing.T, store *fakeProfileStore, notifier AlertNotifier) *OccupationalService {
	c := catalog.NewDefault()
	require.NoError(t, c.Validate())
	return NewOccupationalService(store, c, notifier, zap.NewNop())
}

// ============================================================
// Assessment
// ============================================================

func TestAssessWorker(t *testing.T) {
	notifier := &fakeAlertNotifier{}
	svc := setupOccupational(t, &fakeProfileStore{profile: highRiskProfile()}, notifier)

	assessment, err := svc.AssessWorker(context.Background(), "worker-1", "Ernakulam")
	require.NoError(t, err)

	assert.Equal(t, "worker-1", assessment.WorkerID)
	require.NotEmpty(t, assessment.Predictions)

	// The extreme-heat construction profile always reaches critical on
	// heat exhaustion, so at least one alert is dispatched.
	require.NotEmpty(t, assessment.Alerts)
	require.Len(t, notifier.workerIDs, 1)
	assert.Equal(t, "worker-1", notifier.workerIDs[0])
	assert.Equal(t, "Ernakulam", notifier.districts[0])
	assert.Equal(t, assessment.Alerts, notifier.alerts[0])
}

func TestAssessWorker_FallsBackToIndustryBaseline(t *testing.T) {
	profile := highRiskProfile()
	profile.RiskFactors = nil
	store := &fakeProfileStore{profile: profile}
	svc := setupOccupational(t, store, nil)

	assessment, err := svc.AssessWorker(context.Background(), "worker-1", "")
	require.NoError(t, err)
	require.NotEmpty(t, assessment.Predictions)

	// The construction baseline hazards stood in for the missing
	// site-specific ones.
	assert.Equal(t, catalog.IndustryRiskFactors(models.IndustryConstruction), profile.RiskFactors)
}

func TestAssessWorker_ProfileFetchFailurePropagates(t *testing.T) {
	notifier := &fakeAlertNotifier{}
	svc := setupOccupational(t, &fakeProfileStore{err: fmt.Errorf("connection refused")}, notifier)

	_, err := svc.AssessWorker(context.Background(), "worker-1", "Ernakulam")
	assert.ErrorContains(t, err, "failed to load occupational profile")
	assert.Empty(t, notifier.workerIDs)
}

func TestAssessWorker_RequiresWorkerID(t *testing.T) {
	svc := setupOccupational(t, &fakeProfileStore{}, nil)

	_, err := svc.AssessWorker(context.Background(), "", "Ernakulam")
	assert.ErrorContains(t, err, "worker_id is required")
}

func TestAssessWorker_NilNotifier(t *testing.T) {
	svc := setupOccupational(t, &fakeProfileStore{profile: highRiskProfile()}, nil)

	assessment, err := svc.AssessWorker(context.Background(), "worker-1", "")
	require.NoError(t, err)
	assert.NotEmpty(t, assessment.Alerts)
}
