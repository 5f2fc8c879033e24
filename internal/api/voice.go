package api

import (
	"context"
	"net/http"

	"github.com/MikeSquared-Agency/reflectline/internal/hermes"
	"github.com/MikeSquared-Agency/reflectline/internal/journal"
	"github.com/MikeSquared-Agency/reflectline/internal/telephony"
)

// voice greets the caller and asks Twilio to post the captured speech to /process.
func (s *Server) voice(w http.ResponseWriter, r *http.Request) {
	doc, err := telephony.GatherMarkup(s.calls.callbackURL("/process"))
	if err != nil {
		s.logger.Error("failed to render greeting", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeXML(w, doc)
}

// process summarizes the transcript, stores the reflection and closes the call.
// A storage failure ends the request with 500 and no closing markup. The work
// outlives the request: a caller hanging up does not abort inference or the save.
func (s *Server) process(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	speech := r.FormValue("SpeechResult")
	if speech == "" {
		speech = journal.NoSpeechText
	}
	timestamp := s.now()

	s.logger.Info("processing reflection",
		"call_sid", r.FormValue("CallSid"),
		"transcript_len", len(speech),
	)

	summary := s.summarizer.Summarize(ctx, speech)
	reflection := journal.NewReflection(timestamp, speech, summary)

	if err := s.store.Save(ctx, reflection); err != nil {
		s.logger.Error("failed to save reflection", "id", reflection.ID, "error", err)
		http.Error(w, "failed to save reflection", http.StatusInternalServerError)
		return
	}

	s.logger.Info("reflection saved",
		"id", reflection.ID,
		"energy", reflection.Energy,
		"gratitude", len(reflection.Gratitude),
	)
	s.publish(hermes.SubjectReflectionRecorded, hermes.NewReflectionRecorded(reflection))
	if s.notifier != nil {
		if _, err := s.notifier.PostReflection(ctx, reflection); err != nil {
			s.logger.Warn("failed to share reflection", "id", reflection.ID, "error", err)
		}
	}

	doc, err := telephony.ClosingMarkup()
	if err != nil {
		s.logger.Error("failed to render closing", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeXML(w, doc)
}
