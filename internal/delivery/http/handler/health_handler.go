package handler

import (
	"context"
	"net/http"
	"time"

	"go-clinic-management/pkg/response"

	"github.com/redis/go-redis/v9"
)

// DBPinger is satisfied by *sql.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    DBPinger
	redis *redis.Client
	env   string
}

func NewHealthHandler(db DBPinger, redis *redis.Client, env string) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redis,
		env:   env,
	}
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Env          string            `json:"env,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok", "env": h.env})
}

// Readiness reports 503 when postgres is unreachable. A redis outage only
// degrades the service since reads and header-gated writes still work.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string)
	status := "ok"

	pgCtx, pgCancel := context.WithTimeout(ctx, time.Second)
	err := h.db.PingContext(pgCtx)
	pgCancel()
	if err != nil {
		deps["postgres"] = "down"
		status = "error"
	} else {
		deps["postgres"] = "ok"
	}

	redisCtx, redisCancel := context.WithTimeout(ctx, time.Second)
	err = h.redis.Ping(redisCtx).Err()
	redisCancel()
	if err != nil {
		deps["redis"] = "down"
		if status == "ok" {
			status = "degraded"
		}
	} else {
		deps["redis"] = "ok"
	}

	httpStatus := http.StatusOK
	if status == "error" {
		httpStatus = http.StatusServiceUnavailable
	}

	response.JSON(w, httpStatus, ReadinessResponse{
		Status:       status,
		Env:          h.env,
		Dependencies: deps,
	})
}
