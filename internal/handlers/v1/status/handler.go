package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/cashbook-server/internal/logging"
)

const checkTimeout = 2 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	Checks map[string]Check
}

func NewHandler(checks map[string]Check) Handler {
	return Handler{Checks: checks}
}

type response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), checkTimeout)
	defer cancel()

	var mu sync.Mutex
	results := make(map[string]string, len(h.Checks))
	var failed []string

	g, gctx := errgroup.WithContext(ctx)
	for name, check := range h.Checks {
		g.Go(func() error {
			err := check(gctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[name] = err.Error()
				failed = append(failed, name)
				return nil
			}
			results[name] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	resp := response{Status: "ok", Checks: results}
	code := http.StatusOK
	if len(failed) > 0 {
		sort.Strings(failed)
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
		logData.AddData("failedChecks", failed)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("status: encode: %w", err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("status: unhealthy dependencies %v", failed)
	}
	return nil
}
