package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"licensehub/internal/app/derive"

	"github.com/sirupsen/logrus"
)

// SlackClient отправляет уведомления в Slack через incoming webhook
type SlackClient struct {
	client *http.Client
}

func NewSlackClient() *SlackClient {
	return &SlackClient{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type slackMessage struct {
	Channel string       `json:"channel,omitempty"`
	Text    string       `json:"text"`
	Blocks  []slackBlock `json:"blocks,omitempty"`
}

type slackBlock struct {
	Type string     `json:"type"`
	Text *slackText `json:"text,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendWarnings отправляет сводку предупреждений одним сообщением
func (s *SlackClient) SendWarnings(ctx context.Context, webhookURL, channel string, warnings []derive.Warning) error {
	if len(warnings) == 0 {
		return nil
	}

	text := fmt.Sprintf("Предупреждения по лицензиям: %d", len(warnings))
	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: text},
		},
	}
	for _, w := range warnings {
		line := w.Message
		if w.ProviderName != "" {
			line = fmt.Sprintf("*%s*: %s", w.ProviderName, w.Message)
		}
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: line},
		})
	}

	return s.post(ctx, webhookURL, slackMessage{
		Channel: channel,
		Text:    text,
		Blocks:  blocks,
	})
}

// SendTestMessage проверяет настройку webhook-а тестовым сообщением
func (s *SlackClient) SendTestMessage(ctx context.Context, webhookURL, channel string) error {
	return s.post(ctx, webhookURL, slackMessage{
		Channel: channel,
		Text:    "licensehub: тестовое сообщение, интеграция настроена",
	})
}

func (s *SlackClient) post(ctx context.Context, webhookURL string, msg slackMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}

	logrus.Info("slack notification sent")
	return nil
}
