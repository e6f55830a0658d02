package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// smsRequest is the gateway request body.
type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// smsResponse is the gateway response envelope.
type smsResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
	Error     string `json:"error,omitempty"`
}

// SMSClient delivers alert texts through an HTTP SMS gateway.
type SMSClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewSMSClient creates an SMS gateway client.
func NewSMSClient(gatewayURL, apiKey string, logger *zap.Logger) *SMSClient {
	client := resty.New().
		SetBaseURL(gatewayURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+apiKey)

	return &SMSClient{
		httpClient: client,
		logger:     logger,
	}
}

// Send sends one text message through the gateway.
func (c *SMSClient) Send(ctx context.Context, to string, message string) error {
	if to == "" {
		return fmt.Errorf("recipient is required")
	}
	if message == "" {
		return fmt.Errorf("message is required")
	}

	var response smsResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(smsRequest{To: to, Message: message}).
		SetResult(&response).
		Post("/v1/sms")

	if err != nil {
		return fmt.Errorf("failed to call SMS gateway: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("SMS gateway returned status %d: %s", resp.StatusCode(), response.Error)
	}

	c.logger.Info("SMS accepted by gateway",
		zap.String("message_id", response.MessageID),
	)

	return nil
}
