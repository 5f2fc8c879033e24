package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Energy is the caller's self-reported energy level as picked out of the summary.
type Energy string

const (
	EnergyLow     Energy = "low"
	EnergyMedium  Energy = "medium"
	EnergyHigh    Energy = "high"
	EnergyUnknown Energy = "unknown"
)

const (
	// NoSpeechText is stored as the transcript when the provider sends no SpeechResult.
	NoSpeechText = "No speech detected"
	// SummaryErrorText replaces the summary when the inference call fails.
	SummaryErrorText = "Error summarizing"
	// MaxGratitude caps the number of gratitude items kept per reflection.
	MaxGratitude = 3
)

// Reflection is one persisted journal entry. It is written once and never updated.
type Reflection struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	RawText   string    `json:"rawText"`
	Summary   string    `json:"summary"`
	Energy    Energy    `json:"energy"`
	Gratitude []string  `json:"gratitude"`
}

// NewReflection builds a record for a transcript and its summary, deriving
// energy and gratitude from the summary text.
func NewReflection(now time.Time, rawText, summary string) *Reflection {
	energy, gratitude := Extract(summary)
	return &Reflection{
		ID:        uuid.New(),
		Timestamp: now.UTC(),
		RawText:   rawText,
		Summary:   summary,
		Energy:    energy,
		Gratitude: gratitude,
	}
}

// Store persists reflections. List returns every record, most recent first.
type Store interface {
	Save(ctx context.Context, r *Reflection) error
	List(ctx context.Context) ([]Reflection, error)
}
