package hermes

import (
	"time"

	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

const (
	SubjectReflectionRecorded = "journal.reflection.recorded"
	SubjectCallTriggered      = "journal.call.triggered"
	SubjectRegistered         = "journal.agent.registered"
)

// ReflectionRecorded is published after a reflection has been persisted.
// It carries no transcript text.
type ReflectionRecorded struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Energy         string    `json:"energy"`
	GratitudeCount int       `json:"gratitude_count"`
	Summarized     bool      `json:"summarized"`
}

// CallTriggered is published for every outbound call attempt.
type CallTriggered struct {
	Timestamp time.Time `json:"timestamp"`
	To        string    `json:"to"`
	CallSID   string    `json:"call_sid,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func NewReflectionRecorded(r *journal.Reflection) ReflectionRecorded {
	return ReflectionRecorded{
		ID:             r.ID.String(),
		Timestamp:      r.Timestamp,
		Energy:         string(r.Energy),
		GratitudeCount: len(r.Gratitude),
		Summarized:     r.Summary != journal.SummaryErrorText,
	}
}

func NewCallTriggered(now time.Time, to, sid string, err error) CallTriggered {
	evt := CallTriggered{Timestamp: now.UTC(), To: to, CallSID: sid}
	if err != nil {
		evt.Error = err.Error()
	}
	return evt
}
