package gemini

import (
	"context"
	"fmt"

	einogemini "github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// Config describes the Gemini model used for summaries.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
}

// Completer adapts an eino chat model to a single system + user exchange.
type Completer struct {
	model model.BaseChatModel
}

// New builds a Gemini-backed completer.
func New(ctx context.Context, cfg Config) (*Completer, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	geminiCfg := &einogemini.Config{
		Client: client,
		Model:  cfg.Model,
	}
	if cfg.MaxTokens > 0 {
		geminiCfg.MaxTokens = &cfg.MaxTokens
	}

	chatModel, err := einogemini.NewChatModel(ctx, geminiCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini chat model: %w", err)
	}

	return NewFromModel(chatModel), nil
}

// NewFromModel wraps any eino chat model.
func NewFromModel(m model.BaseChatModel) *Completer {
	return &Completer{model: m}
}

// Complete runs one generation and returns the message content.
func (c *Completer) Complete(ctx context.Context, system, prompt string) (string, error) {
	input := make([]*schema.Message, 0, 2)
	if system != "" {
		input = append(input, schema.SystemMessage(system))
	}
	input = append(input, schema.UserMessage(prompt))

	msg, err := c.model.Generate(ctx, input)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if msg == nil || msg.Content == "" {
		return "", fmt.Errorf("empty generation")
	}
	return msg.Content, nil
}
