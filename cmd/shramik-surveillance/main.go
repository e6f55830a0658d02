package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/catalog"
	"github.com/BlackDevil1928/Shramik-Care/internal/common/database"
	"github.com/BlackDevil1928/Shramik-Care/internal/common/logger"
	"github.com/BlackDevil1928/Shramik-Care/internal/common/mqtt"
	"github.com/BlackDevil1928/Shramik-Care/internal/common/redisutil"
	"github.com/BlackDevil1928/Shramik-Care/internal/config"
	"github.com/BlackDevil1928/Shramik-Care/internal/consumer"
	"github.com/BlackDevil1928/Shramik-Care/internal/engine/outbreak"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
	"github.com/BlackDevil1928/Shramik-Care/internal/notifier"
	"github.com/BlackDevil1928/Shramik-Care/internal/repository"
	"github.com/BlackDevil1928/Shramik-Care/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "shramik-surveillance")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting surveillance worker",
		zap.String("report_stream", cfg.Surveillance.ReportStream),
		zap.String("consumer_group", cfg.Surveillance.ConsumerGroup),
		zap.Int("window_hours", cfg.Surveillance.WindowHours),
	)

	// Catalog: workbook when configured, compiled-in defaults otherwise.
	var cat *catalog.Catalog
	if cfg.Catalog.WorkbookPath != "" {
		cat, err = catalog.LoadWorkbook(cfg.Catalog.WorkbookPath)
		if err != nil {
			zapLogger.Fatal("Failed to load catalog workbook",
				zap.String("path", cfg.Catalog.WorkbookPath),
				zap.Error(err))
		}
		zapLogger.Info("Loaded catalog workbook", zap.String("path", cfg.Catalog.WorkbookPath))
	} else {
		cat = catalog.NewDefault()
	}
	if err := cat.Validate(); err != nil {
		zapLogger.Fatal("Catalog validation failed", zap.Error(err))
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer database.Close(db)

	redisClient := redisutil.NewRedisClient(&cfg.Redis)
	if err := redisutil.Ping(context.Background(), redisClient); err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisutil.Close(redisClient)

	// Alert channels are secondary: a missing broker or gateway downgrades
	// delivery, it never stops surveillance.
	var mqttPublisher notifier.MQTTPublisher
	mqttClient, err := mqtt.NewClient(&cfg.MQTT)
	if err != nil {
		zapLogger.Warn("MQTT unavailable, alerts limited to stream and SMS", zap.Error(err))
	} else {
		mqttPublisher = mqttClient
		defer mqttClient.Disconnect()
	}

	var smsSender notifier.SMSSender
	if cfg.Alerts.SMSEnabled {
		smsSender = notifier.NewSMSClient(cfg.Alerts.SMSGatewayURL, cfg.Alerts.SMSAPIKey, zapLogger)
	}

	alertNotifier := notifier.New(redisClient, mqttPublisher, smsSender, notifier.Config{
		AlertStream:       cfg.Alerts.Stream,
		TopicPrefix:       cfg.Alerts.TopicPrefix,
		QoS:               cfg.MQTT.QoS,
		AuthorityContacts: cfg.Alerts.AuthorityContacts,
	}, zapLogger)

	reportRepo := repository.NewReportRepository(db, zapLogger)
	surveillanceRepo := repository.NewSurveillanceRepository(db, zapLogger)
	hotspotRepo := repository.NewHotspotRepository(db, zapLogger)

	detector := outbreak.NewDetector(
		reportRepo,
		surveillanceRepo,
		hotspotRepo,
		outbreak.Thresholds{
			WindowHours:       cfg.Surveillance.WindowHours,
			MinReports:        cfg.Surveillance.MinReports,
			MinSevereCritical: cfg.Surveillance.MinSevereCritical,
			CriticalThreshold: cfg.Surveillance.CriticalThreshold,
			HotspotScoreGate:  cfg.Surveillance.HotspotScoreGate,
		},
		func(ctx context.Context, hotspot *models.Hotspot, decision outbreak.Decision) {
			alertNotifier.NotifyHotspot(ctx, hotspot)
		},
		zapLogger,
	)

	reportConsumer := consumer.NewReportConsumer(cfg, redisClient, detector, zapLogger)
	sweeper := service.NewHotspotSweeper(
		hotspotRepo,
		time.Duration(cfg.Surveillance.HotspotStaleAfterHours)*time.Hour,
		zapLogger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- reportConsumer.Start(ctx)
	}()
	go sweeper.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		zapLogger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errChan:
		if err != nil {
			zapLogger.Error("Consumer stopped with error", zap.Error(err))
		}
	}

	cancel()
	zapLogger.Info("Service stopped")
}
