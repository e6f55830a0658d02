package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/common/redisutil"
	"github.com/BlackDevil1928/Shramik-Care/internal/engine/scoring"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// Validation errors surfaced to the submitter. Each names the missing field.
var (
	ErrNoSymptoms = errors.New("at least one symptom is required")
	ErrNoSeverity = errors.New("severity is required")
	ErrNoDuration = errors.New("duration is required")
	ErrNoDistrict = errors.New("district is required")
	ErrNoArea     = errors.New("area is required")
)

// ReportInput is a report submission before scoring.
type ReportInput struct {
	Symptoms       []string               `json:"symptoms"`
	Severity       models.SymptomSeverity `json:"severity"`
	Duration       string                 `json:"duration"`
	District       string                 `json:"district"`
	Area           string                 `json:"area"`
	Occupation     string                 `json:"occupation,omitempty"`
	AgeGroup       string                 `json:"age_group,omitempty"`
	Gender         string                 `json:"gender,omitempty"`
	AdditionalInfo string                 `json:"additional_info,omitempty"`
	Source         models.ReportSource    `json:"report_source,omitempty"`
}

// ReportStore persists anonymous reports.
type ReportStore interface {
	Insert(ctx context.Context, report *models.AnonymousReport) error
}

// IntakeService accepts anonymous symptom reports. Submission outcome depends
// only on validation and the primary insert; the surveillance publish is
// fire-and-forget.
type IntakeService struct {
	reports      ReportStore
	redisClient  *redisutil.Client
	reportStream string
	logger       *zap.Logger
}

// NewIntakeService creates an IntakeService. redisClient may be nil; the
// surveillance publish is then skipped entirely.
func NewIntakeService(reports ReportStore, redisClient *redisutil.Client, reportStream string, logger *zap.Logger) *IntakeService {
	return &IntakeService{
		reports:      reports,
		redisClient:  redisClient,
		reportStream: reportStream,
		logger:       logger,
	}
}

// SubmitReport validates and stores one anonymous report. Risk score and
// hotspot contribution are computed here, exactly once; stored reports are
// immutable and the scores are never re-derived.
func (s *IntakeService) SubmitReport(ctx context.Context, input *ReportInput) (*models.AnonymousReport, error) {
	if err := validateReportInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	source := input.Source
	if source == "" {
		source = models.SourceWeb
	}

	report := &models.AnonymousReport{
		ID:       newReportID(now),
		Symptoms: input.Symptoms,
		Severity: input.Severity,
		Duration: input.Duration,
		Location: models.ReportLocation{
			District: normalizeDistrict(input.District),
			Area:     input.Area,
		},
		Occupation:     input.Occupation,
		AgeGroup:       input.AgeGroup,
		Gender:         input.Gender,
		AdditionalInfo: input.AdditionalInfo,
		ReportSource:   source,

		RiskScore:           scoring.RiskScore(input.Severity, input.Symptoms, input.Duration),
		HotspotContribution: scoring.HotspotContribution(input.Severity, len(input.Symptoms)),

		ReportMonth: now.Format("2006-01"),
		CreatedAt:   now,
	}

	if err := s.reports.Insert(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	s.publishReport(ctx, report)

	s.logger.Info("Report submitted",
		zap.String("report_id", report.ID),
		zap.String("district", report.Location.District),
		zap.Int("risk_score", report.RiskScore),
	)

	return report, nil
}

// publishReport hands the stored report to the surveillance pipeline. Failures
// are logged and swallowed; the submitter never sees them.
func (s *IntakeService) publishReport(ctx context.Context, report *models.AnonymousReport) {
	if s.redisClient == nil || s.reportStream == "" {
		return
	}

	id, err := redisutil.PublishJSONToStream(ctx, s.redisClient, s.reportStream, report)
	if err != nil {
		s.logger.Error("Failed to publish report to surveillance stream",
			zap.String("report_id", report.ID),
			zap.String("stream", s.reportStream),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("Published report to surveillance stream",
		zap.String("report_id", report.ID),
		zap.String("message_id", id),
	)
}

func validateReportInput(input *ReportInput) error {
	if input == nil || len(input.Symptoms) == 0 {
		return ErrNoSymptoms
	}
	if input.Severity == "" {
		return ErrNoSeverity
	}
	if input.Duration == "" {
		return ErrNoDuration
	}
	if strings.TrimSpace(input.District) == "" {
		return ErrNoDistrict
	}
	if strings.TrimSpace(input.Area) == "" {
		return ErrNoArea
	}
	return nil
}

// normalizeDistrict lowercases the district so aggregation windows for
// "Ernakulam" and "ernakulam" land on the same key.
func normalizeDistrict(district string) string {
	return strings.ToLower(strings.TrimSpace(district))
}

// newReportID builds an anonymous report id: an ANM prefix, the submission
// unix milliseconds, and a short random fragment.
func newReportID(now time.Time) string {
	fragment := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("ANM-%d-%s", now.UnixMilli(), fragment)
}
