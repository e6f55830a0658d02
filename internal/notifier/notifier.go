package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/common/redisutil"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// MQTTPublisher is the publish surface of the MQTT client.
type MQTTPublisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// SMSSender sends a short text message to a recipient number.
type SMSSender interface {
	Send(ctx context.Context, to string, message string) error
}

// Config holds delivery settings for the notifier.
type Config struct {
	AlertStream string // Redis stream for alert events
	TopicPrefix string // MQTT topic prefix, district appended
	QoS         byte

	// Per-district health authority contact numbers. Districts without an
	// entry get stream and MQTT delivery only.
	AuthorityContacts map[string]string
}

// Notifier fans alert events out to the configured channels: a Redis alert
// stream, a retained MQTT topic per district, and SMS to health authorities.
// Delivery is fire-and-forget: every channel failure is logged and swallowed,
// none is ever propagated to the caller.
type Notifier struct {
	redis  *redisutil.Client
	mqtt   MQTTPublisher
	sms    SMSSender
	config Config
	logger *zap.Logger
}

// New creates a Notifier. mqtt and sms may be nil; the corresponding channel
// is then skipped.
func New(redis *redisutil.Client, mqtt MQTTPublisher, sms SMSSender, cfg Config, logger *zap.Logger) *Notifier {
	return &Notifier{
		redis:  redis,
		mqtt:   mqtt,
		sms:    sms,
		config: cfg,
		logger: logger,
	}
}

// HotspotEvent is the alert payload published when a district activates.
type HotspotEvent struct {
	Type    string          `json:"type"` // "hotspot_detected"
	Hotspot *models.Hotspot `json:"hotspot"`
}

// WorkerAlertEvent is the alert payload for occupational health alerts.
type WorkerAlertEvent struct {
	Type     string               `json:"type"` // "worker_health_alert"
	WorkerID string               `json:"worker_id"`
	District string               `json:"district,omitempty"`
	Alerts   []models.HealthAlert `json:"alerts"`
}

// NotifyHotspot publishes a hotspot activation on all channels.
func (n *Notifier) NotifyHotspot(ctx context.Context, hotspot *models.Hotspot) {
	if hotspot == nil {
		return
	}

	event := HotspotEvent{
		Type:    "hotspot_detected",
		Hotspot: hotspot,
	}

	n.publishStream(ctx, event)
	n.publishMQTT(hotspot.District, event, true)
	n.sendSMS(ctx, hotspot.District, fmt.Sprintf(
		"Outbreak alert (%s) in %s: %d reports, %d severe/critical in the last 24h.",
		hotspot.AlertLevel, hotspot.District, hotspot.TotalReports, hotspot.SevereCriticalCount))
}

// NotifyWorkerAlerts publishes occupational health alerts for one worker.
// Only high-severity alerts reach the health authority SMS channel; every
// alert reaches the stream and the district MQTT topic.
func (n *Notifier) NotifyWorkerAlerts(ctx context.Context, workerID, district string, alerts []models.HealthAlert) {
	if len(alerts) == 0 {
		return
	}

	event := WorkerAlertEvent{
		Type:     "worker_health_alert",
		WorkerID: workerID,
		District: district,
		Alerts:   alerts,
	}

	n.publishStream(ctx, event)
	n.publishMQTT(district, event, false)

	for _, alert := range alerts {
		if alert.Severity != models.AlertCritical {
			continue
		}
		message := alert.Message.Resolve(models.LangEnglish)
		if message == "" {
			continue
		}
		n.sendSMS(ctx, district, message)
	}
}

func (n *Notifier) publishStream(ctx context.Context, event interface{}) {
	if n.redis == nil || n.config.AlertStream == "" {
		return
	}

	id, err := redisutil.PublishJSONToStream(ctx, n.redis, n.config.AlertStream, event)
	if err != nil {
		n.logger.Error("Failed to publish alert to stream",
			zap.String("stream", n.config.AlertStream),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Published alert event",
		zap.String("stream", n.config.AlertStream),
		zap.String("message_id", id),
	)
}

func (n *Notifier) publishMQTT(district string, event interface{}, retained bool) {
	if n.mqtt == nil || district == "" {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("Failed to marshal alert event", zap.Error(err))
		return
	}

	topic := n.config.TopicPrefix + district
	if err := n.mqtt.Publish(topic, n.config.QoS, retained, payload); err != nil {
		n.logger.Error("Failed to publish alert to MQTT",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Published alert to MQTT", zap.String("topic", topic))
}

func (n *Notifier) sendSMS(ctx context.Context, district, message string) {
	if n.sms == nil {
		return
	}

	contact, ok := n.config.AuthorityContacts[district]
	if !ok || contact == "" {
		return
	}

	if err := n.sms.Send(ctx, contact, message); err != nil {
		n.logger.Error("Failed to send SMS alert",
			zap.String("district", district),
			zap.Error(err),
		)
		return
	}

	n.logger.Info("Sent SMS alert", zap.String("district", district))
}
