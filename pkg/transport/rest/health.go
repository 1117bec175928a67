package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/heartmarshall/unidict-shared/pkg/types"
)

const (
	healthTimeout = 3 * time.Second
	// slowAfter marks a dependency degraded when its probe succeeds slowly.
	slowAfter = time.Second
)

// Checker probes one dependency of a service.
type Checker interface {
	Name() string
	Ping(ctx context.Context) error
}

type checkFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (c checkFunc) Name() string                   { return c.name }
func (c checkFunc) Ping(ctx context.Context) error { return c.fn(ctx) }

// CheckFunc adapts a probe function into a named Checker.
func CheckFunc(name string, fn func(ctx context.Context) error) Checker {
	return checkFunc{name: name, fn: fn}
}

// HealthHandler serves health check and build info endpoints.
type HealthHandler struct {
	info     types.SystemInfo
	checkers []Checker
	started  time.Time
	now      func() time.Time
}

// NewHealthHandler creates a HealthHandler reporting the given build info
// and probing checkers on every Health call.
func NewHealthHandler(info types.SystemInfo, checkers ...Checker) *HealthHandler {
	return &HealthHandler{
		info:     info,
		checkers: checkers,
		started:  time.Now(),
		now:      time.Now,
	}
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	WriteJSON(w, http.StatusOK, types.NewHealthCheck(nil, now.Sub(h.started), now))
}

// Health probes every checker concurrently and reports the aggregate.
// Responds 503 when the service is unhealthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	services := make([]types.ServiceHealth, len(h.checkers))
	var wg sync.WaitGroup
	for i, c := range h.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			services[i] = h.probe(ctx, c)
		}()
	}
	wg.Wait()

	now := h.now()
	hc := types.NewHealthCheck(services, now.Sub(h.started), now)

	status := http.StatusOK
	if hc.Status == types.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	WriteJSON(w, status, hc)
}

// Info writes the build information in a BaseResponse.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	WriteOK(w, http.StatusOK, h.info)
}

func (h *HealthHandler) probe(ctx context.Context, c Checker) types.ServiceHealth {
	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	sh := types.ServiceHealth{
		Name:         c.Name(),
		Status:       types.ServiceStatusUp,
		ResponseTime: latency.Milliseconds(),
		LastChecked:  h.now(),
	}
	switch {
	case err != nil:
		msg := err.Error()
		sh.Status = types.ServiceStatusDown
		sh.Error = &msg
	case latency > slowAfter:
		sh.Status = types.ServiceStatusDegraded
	}
	return sh
}
