package handler

import (
	"context"
	"net/http"
	"time"

	"doctor-matching/pkg/response"

	"golang.org/x/sync/errgroup"
)

const healthTimeout = 2 * time.Second

// HealthCheck pings one backing service
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthHandler struct {
	checks []HealthCheck
}

func NewHealthHandler(checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Check pings every dependency concurrently; any failure answers 503
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	results := make([]string, len(h.checks))
	var g errgroup.Group
	for i, check := range h.checks {
		i, check := i, check
		g.Go(func() error {
			if err := check.Ping(ctx); err != nil {
				results[i] = "unavailable"
				return err
			}
			results[i] = "ok"
			return nil
		})
	}
	err := g.Wait()

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	for i, check := range h.checks {
		resp.Checks[check.Name] = results[i]
	}

	if err != nil {
		resp.Status = "unavailable"
		response.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	response.JSON(w, http.StatusOK, resp)
}
