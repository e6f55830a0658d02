package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// ============================================================
// Fakes
// ============================================================

type fakeMQTT struct {
	topics   []string
	payloads [][]byte
	retained []bool
	err      error
}

func (f *fakeMQTT) Publish(topic string, qos byte, retained bool, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.payloads = append(f.payloads, payload)
	f.retained = append(f.retained, retained)
	return nil
}

type fakeSMS struct {
	to       []string
	messages []string
	err      error
}

func (f *fakeSMS) Send(ctx context.Context, to string, message string) error {
	if f.err != nil {
		return f.err
	}
	f.to = append(f.to, to)
	f.messages = append(f.messages, message)
	return nil
}

func setupNotifier(t *testing.T) (*redis.Client, *fakeMQTT, *fakeSMS, *Notifier) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	mq := &fakeMQTT{}
	sms := &fakeSMS{}

	cfg := Config{
		AlertStream: "health:alerts",
		TopicPrefix: "shramik/alerts/",
		QoS:         1,
		AuthorityContacts: map[string]string{
			"Ernakulam": "+911234567890",
		},
	}

	return client, mq, sms, New(client, mq, sms, cfg, zap.NewNop())
}

func sampleHotspot() *models.Hotspot {
	return &models.Hotspot{
		District:            "Ernakulam",
		Area:                "Kakkanad",
		AlertLevel:          models.HotspotHigh,
		TotalReports:        6,
		SevereCriticalCount: 2,
		HotspotScore:        11.4,
		DetectedAt:          time.Now(),
		Status:              models.HotspotActive,
		UpdatedAt:           time.Now(),
	}
}

// ============================================================
// Hotspot notifications
// ============================================================

func TestNotifyHotspot_AllChannels(t *testing.T) {
	client, mq, sms, n := setupNotifier(t)

	n.NotifyHotspot(context.Background(), sampleHotspot())

	// Redis stream
	entries, err := client.XRange(context.Background(), "health:alerts", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var event HotspotEvent
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["data"].(string)), &event))
	assert.Equal(t, "hotspot_detected", event.Type)
	assert.Equal(t, "Ernakulam", event.Hotspot.District)

	// MQTT, retained so late dashboard subscribers see the active hotspot
	require.Len(t, mq.topics, 1)
	assert.Equal(t, "shramik/alerts/Ernakulam", mq.topics[0])
	assert.True(t, mq.retained[0])

	// SMS to the district health authority
	require.Len(t, sms.to, 1)
	assert.Equal(t, "+911234567890", sms.to[0])
	assert.Contains(t, sms.messages[0], "Ernakulam")
	assert.Contains(t, sms.messages[0], "high")
}

func TestNotifyHotspot_NoAuthorityContact(t *testing.T) {
	_, _, sms, n := setupNotifier(t)

	hotspot := sampleHotspot()
	hotspot.District = "Idukki"
	n.NotifyHotspot(context.Background(), hotspot)

	assert.Empty(t, sms.to)
}

func TestNotifyHotspot_ChannelFailuresAreSwallowed(t *testing.T) {
	client, mq, sms, n := setupNotifier(t)

	mq.err = fmt.Errorf("broker down")
	sms.err = fmt.Errorf("gateway down")
	client.Close()

	// Must not panic or propagate anything.
	n.NotifyHotspot(context.Background(), sampleHotspot())
}

func TestNotifyHotspot_NilHotspot(t *testing.T) {
	client, mq, _, n := setupNotifier(t)

	n.NotifyHotspot(context.Background(), nil)

	entries, err := client.XRange(context.Background(), "health:alerts", "-", "+").Result()
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, mq.topics)
}

// ============================================================
// Worker health alerts
// ============================================================

func TestNotifyWorkerAlerts(t *testing.T) {
	client, mq, sms, n := setupNotifier(t)

	alerts := []models.HealthAlert{
		{
			ID:       "alert_1",
			Type:     models.AlertImmediateAction,
			Severity: models.AlertCritical,
			Message: models.LocalizedText{
				models.LangEnglish: "High risk detected for Heat Exhaustion. Risk score: 100%",
				models.LangHindi:   "हीट एग्जॉशन के लिए उच्च जोखिम",
			},
			IsActive: true,
		},
		{
			ID:       "alert_2",
			Type:     models.AlertEarlyWarning,
			Severity: models.AlertWarning,
			Message: models.LocalizedText{
				models.LangEnglish: "High risk detected for Back Strain. Risk score: 64%",
			},
			IsActive: true,
		},
	}

	n.NotifyWorkerAlerts(context.Background(), "worker-1", "Ernakulam", alerts)

	entries, err := client.XRange(context.Background(), "health:alerts", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	var event WorkerAlertEvent
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["data"].(string)), &event))
	assert.Equal(t, "worker_health_alert", event.Type)
	assert.Equal(t, "worker-1", event.WorkerID)
	assert.Len(t, event.Alerts, 2)

	require.Len(t, mq.topics, 1)
	assert.Equal(t, "shramik/alerts/Ernakulam", mq.topics[0])
	assert.False(t, mq.retained[0])

	// Only the critical alert reaches SMS.
	require.Len(t, sms.messages, 1)
	assert.Contains(t, sms.messages[0], "Heat Exhaustion")
}

func TestNotifyWorkerAlerts_Empty(t *testing.T) {
	client, _, _, n := setupNotifier(t)

	n.NotifyWorkerAlerts(context.Background(), "worker-1", "Ernakulam", nil)

	entries, err := client.XRange(context.Background(), "health:alerts", "-", "+").Result()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// ============================================================
// SMS gateway client
// ============================================================

func TestSMSClientSend(t *testing.T) {
	var gotAuth string
	var gotBody smsRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(smsResponse{Status: "queued", MessageID: "sms-1"})
	}))
	defer server.Close()

	client := NewSMSClient(server.URL, "test-key", zap.NewNop())

	err := client.Send(context.Background(), "+911234567890", "test alert")
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "+911234567890", gotBody.To)
	assert.Equal(t, "test alert", gotBody.Message)
}

func TestSMSClientSend_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewSMSClient(server.URL, "test-key", zap.NewNop())

	err := client.Send(context.Background(), "+911234567890", "test alert")
	assert.Error(t, err)
}

func TestSMSClientSend_Validation(t *testing.T) {
	client := NewSMSClient("http://localhost:0", "test-key", zap.NewNop())

	err := client.Send(context.Background(), "", "test alert")
	assert.ErrorContains(t, err, "recipient is required")

	err = client.Send(context.Background(), "+911234567890", "")
	assert.ErrorContains(t, err, "message is required")
}
