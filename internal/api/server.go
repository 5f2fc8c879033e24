package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/reflectline/internal/hermes"
	"github.com/MikeSquared-Agency/reflectline/internal/journal"
)

// Summarizer turns a transcript into summary text. It always returns a
// string; failures are reported in-band.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) string
}

// Dialer places an outbound call and returns the provider's call id.
type Dialer interface {
	PlaceCall(ctx context.Context, to, from, webhookURL string) (string, error)
}

// CallSettings holds the numbers and public URL used by the call flow.
type CallSettings struct {
	From          string
	To            string
	PublicBaseURL string
}

func (c CallSettings) callbackURL(path string) string {
	return c.PublicBaseURL + path
}

// Notifier shares a saved reflection somewhere outside the journal.
type Notifier interface {
	PostReflection(ctx context.Context, r *journal.Reflection) (string, error)
}

// Deps are the collaborators of the webhook handlers. Dialer may be nil when
// Twilio credentials are not configured and Notifier when Slack is not;
// Events defaults to hermes.Nop.
type Deps struct {
	Store      journal.Store
	Summarizer Summarizer
	Dialer     Dialer
	Notifier   Notifier
	Events     hermes.Publisher
	Logger     *slog.Logger
	Now        func() time.Time
}

type Server struct {
	router *chi.Mux
	http   *http.Server
	port   int

	store      journal.Store
	summarizer Summarizer
	dialer     Dialer
	notifier   Notifier
	events     hermes.Publisher
	logger     *slog.Logger
	now        func() time.Time
	calls      CallSettings
}

func NewServer(port int, deps Deps, calls CallSettings) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:     router,
		port:       port,
		store:      deps.Store,
		summarizer: deps.Summarizer,
		dialer:     deps.Dialer,
		notifier:   deps.Notifier,
		events:     deps.Events,
		logger:     deps.Logger,
		now:        deps.Now,
		calls:      calls,
	}
	if s.events == nil {
		s.events = hermes.Nop{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}

	router.Get("/health", s.health)
	router.Post("/voice", s.voice)
	router.Post("/process", s.process)
	router.Get("/trigger-call", s.triggerCall)
	router.Get("/journals", s.listJournals)

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("API server starting", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) publish(subject string, data any) {
	if err := s.events.Publish(subject, data); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeXML(w http.ResponseWriter, doc string) {
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
