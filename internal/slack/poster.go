package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

const defaultPostMessageURL = "https://slack.com/api/chat.postMessage"

// Poster shares saved reflections in a Slack channel.
type Poster struct {
	token   string
	channel string
	client  *http.Client
	logger  *slog.Logger
	apiURL  string
}

func NewPoster(token, channel string, logger *slog.Logger) *Poster {
	return &Poster{
		token:   token,
		channel: channel,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiURL:  defaultPostMessageURL,
		logger:  logger,
	}
}

// PostReflection posts a digest of the reflection and returns the message ts.
// The raw transcript is not posted.
func (p *Poster) PostReflection(ctx context.Context, r *journal.Reflection) (string, error) {
	text := formatReflectionMessage(r)

	body, err := json.Marshal(map[string]any{
		"channel": p.channel,
		"text":    text,
		"blocks": []map[string]any{
			{
				"type": "section",
				"text": map[string]any{
					"type": "mrkdwn",
					"text": text,
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("slack post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var slackResp struct {
		OK    bool   `json:"ok"`
		TS    string `json:"ts"`
		Error string `json:"error,omitempty"`
	}
	if err := json.Unmarshal(respBody, &slackResp); err != nil {
		return "", fmt.Errorf("parse slack response: %w", err)
	}
	if !slackResp.OK {
		return "", fmt.Errorf("slack error: %s", slackResp.Error)
	}

	p.logger.Info("posted reflection to slack", "ts", slackResp.TS, "id", r.ID)
	return slackResp.TS, nil
}

func formatReflectionMessage(r *journal.Reflection) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*Reflection* %s\n", r.Timestamp.Format("Mon Jan 2 15:04 MST"))
	fmt.Fprintf(&sb, "*Energy:* %s\n", r.Energy)

	if len(r.Gratitude) > 0 {
		sb.WriteString("*Grateful for:*\n")
		for _, g := range r.Gratitude {
			fmt.Fprintf(&sb, "• %s\n", g)
		}
	}

	if r.Summary == journal.SummaryErrorText {
		sb.WriteString("_Summary unavailable._")
	} else {
		fmt.Fprintf(&sb, "\n%s", r.Summary)
	}

	return sb.String()
}
