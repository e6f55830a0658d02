package redisutil

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// StreamMessage is one entry read from a Redis stream.
type StreamMessage struct {
	Stream string
	ID     string
	Values map[string]interface{}
}

// PublishJSONToStream serializes data as JSON and XADDs it under the "data"
// field, together with a unix "timestamp" field.
func PublishJSONToStream(ctx context.Context, client *redis.Client, stream string, data interface{}) (string, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data":      string(jsonBytes),
			"timestamp": time.Now().Unix(),
		},
	}).Result()

	return id, err
}

// ReadFromStream reads up to count pending messages for a consumer group,
// blocking for up to 5 seconds.
func ReadFromStream(ctx context.Context, client *redis.Client, stream string, consumerGroup string, consumer string, count int64) ([]StreamMessage, error) {
	streams, err := client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    consumerGroup,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    count,
		Block:    time.Second * 5,
	}).Result()

	if err != nil {
		if err == redis.Nil {
			return []StreamMessage{}, nil
		}
		return nil, err
	}

	var messages []StreamMessage
	for _, s := range streams {
		for _, msg := range s.Messages {
			messages = append(messages, StreamMessage{
				Stream: s.Stream,
				ID:     msg.ID,
				Values: msg.Values,
			})
		}
	}

	return messages, nil
}

// AckMessage acknowledges a processed message for a consumer group.
func AckMessage(ctx context.Context, client *redis.Client, stream string, consumerGroup string, messageID string) error {
	return client.XAck(ctx, stream, consumerGroup, messageID).Err()
}

// CreateConsumerGroup creates the consumer group if it does not exist yet,
// creating the stream first when necessary.
func CreateConsumerGroup(ctx context.Context, client *redis.Client, stream string, groupName string) error {
	err := client.XGroupCreateMkStream(ctx, stream, groupName, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}
