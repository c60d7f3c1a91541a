package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"worktrack/internal/model"
	"worktrack/pkg/circuitbreaker"
	"worktrack/pkg/metrics"
	"worktrack/pkg/trace"
)

// StaffClient fetches the staff directory from the external staff service.
type StaffClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
}

func NewStaffClient(baseURL string, timeout time.Duration) *StaffClient {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &StaffClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig()),
	}
}

// GetAll returns the full staff directory. Only HTTP 200 counts as success;
// single attempt, no retry.
func (c *StaffClient) GetAll(ctx context.Context) ([]model.Staff, error) {
	var staff []model.Staff

	err := c.cb.Execute(func() error {
		start := time.Now()

		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/staffs", nil)
		if reqErr != nil {
			return reqErr
		}
		if traceID := trace.FromContext(ctx); traceID != "" {
			req.Header.Set(trace.HeaderName(), traceID)
		}

		resp, doErr := c.httpClient.Do(req)
		latency := time.Since(start)

		if doErr != nil {
			metrics.RecordUpstreamCallLatency("staff", "error", latency)
			return doErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			metrics.RecordUpstreamCallLatency("staff", strconv.Itoa(resp.StatusCode), latency)
			return fmt.Errorf("staff service status: %d", resp.StatusCode)
		}

		metrics.RecordUpstreamCallLatency("staff", "success", latency)
		return json.NewDecoder(resp.Body).Decode(&staff)
	})
	if err != nil {
		return nil, err
	}

	return staff, nil
}
