package api

import (
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/reflectline/internal/hermes"
)

var errDialerDisabled = errors.New("twilio is not configured")

// triggerCall asks Twilio to ring the configured user. The response is the
// same whether or not the call could be placed; failures are only logged.
func (s *Server) triggerCall(w http.ResponseWriter, r *http.Request) {
	var (
		sid string
		err error
	)
	if s.dialer == nil {
		err = errDialerDisabled
	} else {
		sid, err = s.dialer.PlaceCall(r.Context(), s.calls.To, s.calls.From, s.calls.callbackURL("/voice"))
	}

	if err != nil {
		s.logger.Error("call failed", "to", s.calls.To, "error", err)
	} else {
		s.logger.Info("call initiated", "sid", sid)
	}
	s.publish(hermes.SubjectCallTriggered, hermes.NewCallTriggered(s.now(), s.calls.To, sid, err))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Call initiated"))
}
