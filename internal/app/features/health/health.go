// internal/app/features/health/health.go
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// pingTimeout bounds the MongoDB ping on every probe.
const pingTimeout = 5 * time.Second

// Handler answers load-balancer and orchestrator probes.
type Handler struct {
	mongo  *mongo.Client
	logger *zap.Logger
}

// NewHandler creates a new health Handler.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		mongo:  client,
		logger: logger,
	}
}

// Report is the body of the full health check.
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Routes returns a chi.Router with /health (full report), /health/ready,
// and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds the Kubernetes-convention probe paths directly
// on the root router: /ready and /readyz for readiness, /livez for liveness.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// pingMongo checks primary connectivity within pingTimeout.
func (h *Handler) pingMongo(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.mongo.Ping(ctx, readpref.Primary())
}

// Check reports overall health per backing service. Any failed check
// degrades the report and the response goes out as 503.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	report := Report{
		Status: "ok",
		Checks: map[string]string{"mongodb": "ok"},
	}

	if err := h.pingMongo(r.Context()); err != nil {
		report.Status = "degraded"
		report.Checks["mongodb"] = "unavailable"
		h.logger.Warn("mongodb unreachable during health check", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	if report.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(report)
}

// Ready reports whether the service can take traffic. Readiness requires
// a reachable MongoDB primary.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.pingMongo(r.Context()); err != nil {
		h.logger.Warn("readiness probe: mongodb unreachable", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ready"}`))
}

// Live reports process liveness only; no backends are consulted.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"alive"}`))
}
