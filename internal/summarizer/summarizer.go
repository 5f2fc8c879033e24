package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

// Completer is one inference provider: a system prompt and a user prompt in,
// the first completion's text out.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type Summarizer struct {
	llm     Completer
	timeout time.Duration
	logger  *slog.Logger
}

func New(llm Completer, timeout time.Duration, logger *slog.Logger) *Summarizer {
	return &Summarizer{llm: llm, timeout: timeout, logger: logger}
}

// Summarize asks the model for a summary of the transcript. It never fails:
// any provider error or blank completion is logged and journal.SummaryErrorText
// is returned.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) string {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	summary, err := s.llm.Complete(ctx, systemPrompt, buildPrompt(transcript))
	if err != nil {
		s.logger.Error("summarization failed",
			"error", err,
			"transcript_len", len(transcript),
			"elapsed", time.Since(start),
		)
		return journal.SummaryErrorText
	}
	if strings.TrimSpace(summary) == "" {
		s.logger.Error("summarization returned empty text",
			"transcript_len", len(transcript),
			"elapsed", time.Since(start),
		)
		return journal.SummaryErrorText
	}

	s.logger.Info("summarization complete",
		"transcript_len", len(transcript),
		"summary_len", len(summary),
		"elapsed", time.Since(start),
	)
	return summary
}

func buildPrompt(transcript string) string {
	return fmt.Sprintf(userPromptTemplate, transcript)
}
