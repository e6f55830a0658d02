package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// HotspotRepository stores outbreak hotspots keyed by (district, area).
type HotspotRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewHotspotRepository creates a HotspotRepository.
func NewHotspotRepository(db *sql.DB, logger *zap.Logger) *HotspotRepository {
	return &HotspotRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertHotspot creates or refreshes the hotspot for its (district, area)
// key: snapshot counts and score are replaced, detected_at keeps the first
// detection time, status returns to active.
func (r *HotspotRepository) UpsertHotspot(ctx context.Context, hotspot *models.Hotspot) error {
	if hotspot == nil {
		return fmt.Errorf("hotspot is required")
	}
	if hotspot.District == "" {
		return fmt.Errorf("district is required")
	}

	query := `
		INSERT INTO hotspots (
			district,
			area,
			alert_level,
			total_reports,
			severe_critical_count,
			hotspot_score,
			detected_at,
			status,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (district, area) DO UPDATE SET
			alert_level = EXCLUDED.alert_level,
			total_reports = EXCLUDED.total_reports,
			severe_critical_count = EXCLUDED.severe_critical_count,
			hotspot_score = EXCLUDED.hotspot_score,
			status = EXCLUDED.status,
			updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query,
		hotspot.District,
		hotspot.Area,
		string(hotspot.AlertLevel),
		hotspot.TotalReports,
		hotspot.SevereCriticalCount,
		hotspot.HotspotScore,
		hotspot.DetectedAt,
		string(hotspot.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hotspot: %w", err)
	}
	return nil
}

// ActiveHotspots returns all hotspots with status active, highest alert
// first.
func (r *HotspotRepository) ActiveHotspots(ctx context.Context) ([]models.Hotspot, error) {
	query := `
		SELECT district, area, alert_level, total_reports,
			severe_critical_count, hotspot_score, detected_at, status, updated_at
		FROM hotspots
		WHERE status = 'active'
		ORDER BY CASE alert_level WHEN 'critical' THEN 0 ELSE 1 END, hotspot_score DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active hotspots: %w", err)
	}
	defer rows.Close()

	var hotspots []models.Hotspot
	for rows.Next() {
		var h models.Hotspot
		var alertLevel, status string
		if err := rows.Scan(
			&h.District,
			&h.Area,
			&alertLevel,
			&h.TotalReports,
			&h.SevereCriticalCount,
			&h.HotspotScore,
			&h.DetectedAt,
			&status,
			&h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hotspot: %w", err)
		}
		h.AlertLevel = models.HotspotAlertLevel(alertLevel)
		h.Status = models.HotspotStatus(status)
		hotspots = append(hotspots, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hotspots: %w", err)
	}
	return hotspots, nil
}

// MarkStale demotes active hotspots not refreshed since the cutoff. Invoked
// only by the optional staleness sweep; detection itself never demotes.
// Returns the number of demoted rows.
func (r *HotspotRepository) MarkStale(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE hotspots
		SET status = 'stale', updated_at = NOW()
		WHERE status = 'active' AND updated_at < $1
	`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to mark stale hotspots: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}
