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

// TaskClient fetches a staff member's tasks from the external task service.
type TaskClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *circuitbreaker.CircuitBreaker
}

func NewTaskClient(baseURL string, timeout time.Duration) *TaskClient {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &TaskClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig()),
	}
}

// GetMyTasks returns the tasks assigned to the given staff member. Only HTTP
// 200 counts as success; there is a single attempt and no retry.
func (c *TaskClient) GetMyTasks(ctx context.Context, staffID int) ([]model.Task, error) {
	var tasks []model.Task

	err := c.cb.Execute(func() error {
		start := time.Now()

		url := c.baseURL + "/api/tasks/my?staff_id=" + strconv.Itoa(staffID)
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if reqErr != nil {
			return reqErr
		}
		if traceID := trace.FromContext(ctx); traceID != "" {
			req.Header.Set(trace.HeaderName(), traceID)
		}

		resp, doErr := c.httpClient.Do(req)
		latency := time.Since(start)

		if doErr != nil {
			metrics.RecordUpstreamCallLatency("task", "error", latency)
			return doErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			metrics.RecordUpstreamCallLatency("task", strconv.Itoa(resp.StatusCode), latency)
			return fmt.Errorf("task service status: %d", resp.StatusCode)
		}

		metrics.RecordUpstreamCallLatency("task", "success", latency)
		return json.NewDecoder(resp.Body).Decode(&tasks)
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
