package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MikeSquared-Agency/reflectline/internal/anthropic"
	"github.com/MikeSquared-Agency/reflectline/internal/api"
	"github.com/MikeSquared-Agency/reflectline/internal/config"
	"github.com/MikeSquared-Agency/reflectline/internal/gemini"
	"github.com/MikeSquared-Agency/reflectline/internal/hermes"
	"github.com/MikeSquared-Agency/reflectline/internal/openai"
	"github.com/MikeSquared-Agency/reflectline/internal/slack"
	"github.com/MikeSquared-Agency/reflectline/internal/store"
	"github.com/MikeSquared-Agency/reflectline/internal/summarizer"
	"github.com/MikeSquared-Agency/reflectline/internal/telephony"
)

func main() {
	// A missing .env is normal outside local development.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", envErr)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("reflectline starting", "port", cfg.Port, "llm_provider", cfg.LLMProvider)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Document store
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())
	slog.Info("database connected")

	// Inference provider
	llm, err := newCompleter(ctx, cfg)
	if err != nil {
		slog.Error("failed to create llm client", "error", err)
		os.Exit(1)
	}
	summ := summarizer.New(llm, cfg.SummaryTimeout, slog.Default())
	slog.Info("summarizer ready", "provider", cfg.LLMProvider, "timeout", cfg.SummaryTimeout)

	// Twilio (optional: inbound webhooks work without REST credentials)
	deps := api.Deps{
		Store:      db,
		Summarizer: summ,
		Events:     hermes.Nop{},
		Logger:     slog.Default(),
	}
	if cfg.TwilioEnabled() {
		dialer, err := telephony.NewDialer(cfg.TwilioAccountSID, cfg.TwilioAuthToken, slog.Default())
		if err != nil {
			slog.Error("failed to create twilio client", "error", err)
			os.Exit(1)
		}
		deps.Dialer = dialer
		slog.Info("twilio client ready", "from", cfg.TwilioPhoneNumber)
	} else {
		slog.Warn("twilio credentials not configured, /trigger-call will not place calls")
	}
	if cfg.PublicBaseURL == "" {
		slog.Warn("BASE_URL not set, outbound calls cannot reach /voice")
	}

	// Slack (optional)
	if cfg.SlackEnabled() {
		deps.Notifier = slack.NewPoster(cfg.SlackBotToken, cfg.SlackChannel, slog.Default())
		slog.Info("slack poster ready", "channel", cfg.SlackChannel)
	}

	// NATS/Hermes (optional)
	var hermesClient *hermes.Client
	if cfg.NatsURL != "" {
		hermesClient, err = hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer hermesClient.Close()
		deps.Events = hermesClient
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	srv := api.NewServer(cfg.Port, deps, api.CallSettings{
		From:          cfg.TwilioPhoneNumber,
		To:            cfg.UserPhoneNumber,
		PublicBaseURL: cfg.PublicBaseURL,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	if hermesClient != nil {
		if err := hermesClient.Publish(hermes.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("reflectline ready", "port", cfg.Port)

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown", "error", err)
	}
	slog.Info("reflectline stopped")
}

func newCompleter(ctx context.Context, cfg config.Config) (summarizer.Completer, error) {
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		return anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.SummaryMaxTokens), nil
	case config.ProviderGemini:
		return gemini.New(ctx, gemini.Config{
			APIKey:    cfg.GeminiAPIKey,
			Model:     cfg.GeminiModel,
			MaxTokens: cfg.SummaryMaxTokens,
		})
	default:
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.SummaryMaxTokens), nil
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
