package outbreak

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// ReportWindow queries stored reports for a district inside a trailing
// window. Implemented by the postgres report repository.
type ReportWindow interface {
	ReportsForDistrictSince(ctx context.Context, district string, since time.Time) ([]models.ReportWindowEntry, error)
}

// AggregateStore merges one report into the per-(date, district) rolling
// aggregate. The merge must be atomic per key; concurrent submissions for
// the same district must not lose updates.
type AggregateStore interface {
	MergeReport(ctx context.Context, report *models.AnonymousReport) error
}

// HotspotStore upserts hotspot records keyed by (district, area).
type HotspotStore interface {
	UpsertHotspot(ctx context.Context, hotspot *models.Hotspot) error
}

// Thresholds are the activation gates of the detection rule.
type Thresholds struct {
	WindowHours       int
	MinReports        int
	MinSevereCritical int
	CriticalThreshold int
	HotspotScoreGate  float64
}

// DefaultThresholds mirror the production configuration defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WindowHours:       24,
		MinReports:        5,
		MinSevereCritical: 2,
		CriticalThreshold: 3,
		HotspotScoreGate:  10.0,
	}
}

// Decision is the outcome of evaluating one district window.
type Decision struct {
	Activated           bool
	AlertLevel          models.HotspotAlertLevel
	TotalReports        int
	SevereCriticalCount int
	HotspotScore        float64
}

// Evaluate applies the activation rule to a district's trailing window. Pure:
// the same window contents always produce the same decision.
//
// Activation triggers on any of:
//   - totalReports >= MinReports AND severeCriticalCount >= MinSevereCritical
//   - hotspotScore >= HotspotScoreGate
//   - severeCriticalCount >= CriticalThreshold
func Evaluate(window []models.ReportWindowEntry, t Thresholds) Decision {
	d := Decision{TotalReports: len(window)}

	for _, entry := range window {
		if entry.Severity == models.SeveritySevere || entry.Severity == models.SeverityCritical {
			d.SevereCriticalCount++
		}
		d.HotspotScore += entry.HotspotContribution
	}

	d.Activated = (d.TotalReports >= t.MinReports && d.SevereCriticalCount >= t.MinSevereCritical) ||
		d.HotspotScore >= t.HotspotScoreGate ||
		d.SevereCriticalCount >= t.CriticalThreshold

	if d.Activated {
		if d.SevereCriticalCount >= t.CriticalThreshold {
			d.AlertLevel = models.HotspotCritical
		} else {
			d.AlertLevel = models.HotspotHigh
		}
	}
	return d
}

// HotspotHandler is notified after a hotspot upsert, e.g. to fan alerts out
// to health workers. Invoked fire-and-forget.
type HotspotHandler func(ctx context.Context, hotspot *models.Hotspot, decision Decision)

// Detector runs outbreak detection once per submitted report. Every failure
// inside Process is logged and swallowed: surveillance must never fail the
// report submission that triggered it.
type Detector struct {
	reports    ReportWindow
	aggregates AggregateStore
	hotspots   HotspotStore
	thresholds Thresholds
	onHotspot  HotspotHandler
	logger     *zap.Logger

	now func() time.Time
}

// NewDetector wires a Detector. onHotspot may be nil.
func NewDetector(
	reports ReportWindow,
	aggregates AggregateStore,
	hotspots HotspotStore,
	thresholds Thresholds,
	onHotspot HotspotHandler,
	logger *zap.Logger,
) *Detector {
	if thresholds.WindowHours <= 0 {
		thresholds.WindowHours = DefaultThresholds().WindowHours
	}
	return &Detector{
		reports:    reports,
		aggregates: aggregates,
		hotspots:   hotspots,
		thresholds: thresholds,
		onHotspot:  onHotspot,
		logger:     logger,
		now:        time.Now,
	}
}

// Process merges the report into the district aggregate, re-evaluates the
// trailing window and upserts a Hotspot on activation. Never returns an
// error; all failures are logged here.
func (d *Detector) Process(ctx context.Context, report *models.AnonymousReport) {
	if report.Location.District == "" {
		d.logger.Warn("Skipping surveillance for report without district",
			zap.String("report_id", report.ID))
		return
	}

	if err := d.aggregates.MergeReport(ctx, report); err != nil {
		d.logger.Error("Failed to merge report into surveillance aggregate",
			zap.String("report_id", report.ID),
			zap.String("district", report.Location.District),
			zap.Error(err))
		// Window evaluation still proceeds; it reads stored reports, not
		// the aggregate.
	}

	since := d.now().Add(-time.Duration(d.thresholds.WindowHours) * time.Hour)
	window, err := d.reports.ReportsForDistrictSince(ctx, report.Location.District, since)
	if err != nil {
		d.logger.Error("Failed to query district report window",
			zap.String("district", report.Location.District),
			zap.Error(err))
		return
	}

	decision := Evaluate(window, d.thresholds)
	d.logger.Debug("Evaluated district window",
		zap.String("district", report.Location.District),
		zap.Int("total_reports", decision.TotalReports),
		zap.Int("severe_critical", decision.SevereCriticalCount),
		zap.Float64("hotspot_score", decision.HotspotScore),
		zap.Bool("activated", decision.Activated))

	if !decision.Activated {
		return
	}

	hotspot := &models.Hotspot{
		District:            report.Location.District,
		Area:                report.Location.Area,
		AlertLevel:          decision.AlertLevel,
		TotalReports:        decision.TotalReports,
		SevereCriticalCount: decision.SevereCriticalCount,
		// Activation compares the raw sum; the stored score is rounded to
		// two decimals.
		HotspotScore: math.Round(decision.HotspotScore*100) / 100,
		DetectedAt:          d.now().UTC(),
		Status:              models.HotspotActive,
		UpdatedAt:           d.now().UTC(),
	}
	if err := d.hotspots.UpsertHotspot(ctx, hotspot); err != nil {
		d.logger.Error("Failed to upsert hotspot",
			zap.String("district", hotspot.District),
			zap.String("area", hotspot.Area),
			zap.Error(err))
		return
	}

	d.logger.Info("Hotspot active",
		zap.String("district", hotspot.District),
		zap.String("area", hotspot.Area),
		zap.String("alert_level", string(hotspot.AlertLevel)),
		zap.Int("total_reports", hotspot.TotalReports),
		zap.Int("severe_critical", hotspot.SevereCriticalCount),
		zap.Float64("hotspot_score", hotspot.HotspotScore))

	if d.onHotspot != nil {
		d.onHotspot(ctx, hotspot, decision)
	}
}
