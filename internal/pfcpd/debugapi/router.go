// Package debugapi exposes a read-only chi HTTP surface over the pfcpd
// node's in-memory session table, the same shape as the teacher's
// admin server but scoped to PFCP session inspection.
package debugapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/your-org/pfcp/common/metrics"
	"github.com/your-org/pfcp/internal/pfcpd/session"
	"go.uber.org/zap"
)

// Router builds the debug HTTP handler.
type Router struct {
	sessions *session.Table
	logger   *zap.Logger
	mux      *chi.Mux
}

// New constructs a Router over sessions.
func New(sessions *session.Table, logger *zap.Logger) *Router {
	r := &Router{sessions: sessions, logger: logger, mux: chi.NewRouter()}
	r.mux.Use(middleware.RequestID)
	r.mux.Use(middleware.RealIP)
	r.mux.Use(middleware.Logger)
	r.mux.Use(middleware.Recoverer)
	r.mux.Use(middleware.Timeout(10 * time.Second))
	r.mux.Use(metricsMiddleware)

	r.mux.Get("/health", r.handleHealth)
	r.mux.Get("/sessions", r.handleListSessions)
	r.mux.Get("/sessions/{seid}", r.handleGetSession)
	return r
}

// Handler returns the underlying http.Handler for use in an http.Server.
func (r *Router) Handler() http.Handler { return r.mux }

// metricsMiddleware records every debug-surface request against
// common/metrics's HTTP counters/histogram, the same wrap-response-writer
// shape the teacher's NF admin servers use to capture status codes.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		metrics.RecordHTTPRequest(req.Method, req.URL.Path, strconv.Itoa(ww.Status()), time.Since(start).Seconds())
	})
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	r.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

type sessionSummary struct {
	LocalSEID   uint64    `json:"local_seid"`
	RemoteSEID  uint64    `json:"remote_seid"`
	RemoteAddr  string    `json:"remote_addr"`
	PDRCount    int       `json:"pdr_count"`
	FARCount    int       `json:"far_count"`
	QERCount    int       `json:"qer_count"`
	URRCount    int       `json:"urr_count"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

func summarize(s *session.Session) sessionSummary {
	return sessionSummary{
		LocalSEID:   s.LocalSEID,
		RemoteSEID:  s.RemoteSEID,
		RemoteAddr:  s.RemoteAddr,
		PDRCount:    len(s.PDRs),
		FARCount:    len(s.FARs),
		QERCount:    len(s.QERs),
		URRCount:    len(s.URRs),
		CreatedAt:   s.CreatedAt,
		LastUpdated: s.LastUpdated,
	}
}

func (r *Router) handleListSessions(w http.ResponseWriter, req *http.Request) {
	all := r.sessions.All()
	out := make([]sessionSummary, 0, len(all))
	for _, s := range all {
		out = append(out, summarize(s))
	}
	r.writeJSON(w, http.StatusOK, map[string]any{
		"sessions": out,
		"count":    len(out),
	})
}

func (r *Router) handleGetSession(w http.ResponseWriter, req *http.Request) {
	seid, err := strconv.ParseUint(chi.URLParam(req, "seid"), 10, 64)
	if err != nil {
		r.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid seid"})
		return
	}
	s, ok := r.sessions.Get(seid)
	if !ok {
		r.writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	r.writeJSON(w, http.StatusOK, summarize(s))
}

func (r *Router) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		r.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}
