package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BlackDevil1928/Shramik-Care/internal/common/redisutil"
	"github.com/BlackDevil1928/Shramik-Care/internal/config"
	"github.com/BlackDevil1928/Shramik-Care/internal/engine/outbreak"
	"github.com/BlackDevil1928/Shramik-Care/internal/models"
)

// ReportConsumer reads submitted reports off the surveillance stream and
// feeds them to the outbreak detector. Intake publishes and returns
// immediately; everything downstream of the stream is asynchronous.
type ReportConsumer struct {
	config      *config.Config
	redisClient *redisutil.Client
	detector    *outbreak.Detector
	logger      *zap.Logger
}

// NewReportConsumer creates a ReportConsumer.
func NewReportConsumer(
	cfg *config.Config,
	redisClient *redisutil.Client,
	detector *outbreak.Detector,
	logger *zap.Logger,
) *ReportConsumer {
	return &ReportConsumer{
		config:      cfg,
		redisClient: redisClient,
		detector:    detector,
		logger:      logger,
	}
}

// Start runs the consume loop until ctx is cancelled. Read failures back off
// exponentially up to 30 seconds; processing failures never stop the loop.
func (c *ReportConsumer) Start(ctx context.Context) error {
	stream := c.config.Surveillance.ReportStream
	group := c.config.Surveillance.ConsumerGroup

	if err := redisutil.CreateConsumerGroup(ctx, c.redisClient, stream, group); err != nil {
		return fmt.Errorf("failed to create consumer group for %s: %w", stream, err)
	}

	c.logger.Info("Report consumer started",
		zap.String("stream", stream),
		zap.String("consumer_group", group),
		zap.String("consumer_name", c.config.Surveillance.ConsumerName),
	)

	backoffDuration := time.Second
	maxBackoff := 30 * time.Second

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Report consumer stopped")
			return nil
		default:
			if err := c.consumeOnce(ctx); err != nil {
				c.logger.Error("Failed to consume report stream",
					zap.Error(err),
					zap.Duration("backoff", backoffDuration),
				)

				select {
				case <-ctx.Done():
					return nil
				case <-time.After(backoffDuration):
					backoffDuration *= 2
					if backoffDuration > maxBackoff {
						backoffDuration = maxBackoff
					}
				}
			} else {
				backoffDuration = time.Second
			}
		}
	}
}

// consumeOnce reads one batch and processes each message. Messages are acked
// after processing; a malformed message is acked too, so it does not wedge
// the group on redelivery.
func (c *ReportConsumer) consumeOnce(ctx context.Context) error {
	messages, err := redisutil.ReadFromStream(
		ctx,
		c.redisClient,
		c.config.Surveillance.ReportStream,
		c.config.Surveillance.ConsumerGroup,
		c.config.Surveillance.ConsumerName,
		int64(c.config.Surveillance.BatchSize),
	)
	if err != nil {
		return fmt.Errorf("failed to read from stream %s: %w", c.config.Surveillance.ReportStream, err)
	}

	for _, msg := range messages {
		if err := c.processMessage(ctx, msg); err != nil {
			c.logger.Error("Failed to process report message",
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
		}

		if err := redisutil.AckMessage(ctx, c.redisClient, c.config.Surveillance.ReportStream,
			c.config.Surveillance.ConsumerGroup, msg.ID); err != nil {
			c.logger.Error("Failed to ack report message",
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}

func (c *ReportConsumer) processMessage(ctx context.Context, msg redisutil.StreamMessage) error {
	report, err := decodeReport(msg.Values)
	if err != nil {
		return err
	}

	c.detector.Process(ctx, report)

	c.logger.Info("Processed surveillance report",
		zap.String("report_id", report.ID),
		zap.String("district", report.Location.District),
	)

	return nil
}

// decodeReport extracts the report from the "data" field of a stream entry.
func decodeReport(values map[string]interface{}) (*models.AnonymousReport, error) {
	raw, ok := values["data"]
	if !ok {
		return nil, fmt.Errorf("message has no data field")
	}

	data, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("message data field is not a string")
	}

	var report models.AnonymousReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	if report.ID == "" {
		return nil, fmt.Errorf("report id is required")
	}

	return &report, nil
}
