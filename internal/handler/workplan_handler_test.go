package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"worktrack/internal/identity"
	"worktrack/internal/model"
	"worktrack/internal/service"
)

type stubTasks struct{}

func (stubTasks) GetMyTasks(ctx context.Context, staffID int) ([]model.Task, error) {
	return []model.Task{{ID: 1, Name: "Draft report", Status: model.StatusInProgress,
		Assignees: []model.Assignee{{FirstName: "Ada", LastName: "Lovelace"}}}}, nil
}

type stubStaff struct{}

func (stubStaff) GetAll(ctx context.Context) ([]model.Staff, error) {
	return []model.Staff{{ID: 42, FirstName: "Ada", LastName: "Lovelace"}}, nil
}

type stubFilters struct {
	saved *model.FilterState
}

func (s *stubFilters) Get(ctx context.Context, staffID int) (model.FilterState, bool, error) {
	return model.FilterState{}, false, nil
}

func (s *stubFilters) Save(ctx context.Context, staffID int, state model.FilterState) error {
	s.saved = &state
	return nil
}

type stubNotifier struct{}

func (stubNotifier) StaffDirectoryUnavailable(ctx context.Context, staffID int) {}

func newTestRouter(filters *stubFilters) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewWorkplanService(stubTasks{}, stubStaff{}, filters, nil, stubNotifier{}, zap.NewNop())
	h := NewWorkplanHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		identity.IntoGinContext(c, identity.User{StaffID: 42, Name: "Ada Lovelace"})
	})
	r.GET("/api/workplans", h.GetBoard)
	r.GET("/api/workplans/filters", h.GetFilters)
	r.PUT("/api/workplans/filters", h.PutFilters)
	return r
}

func TestGetBoard_RendersRowsAndColumns(t *testing.T) {
	r := newTestRouter(&stubFilters{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workplans", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", w.Code)
	}

	var board service.Board
	if err := json.Unmarshal(w.Body.Bytes(), &board); err != nil {
		t.Fatalf("decode board: %v", err)
	}
	if len(board.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(board.Rows))
	}
	if len(board.Columns) == 0 {
		t.Fatal("column definitions missing from board payload")
	}
}

func TestGetFilters_ReturnsDefaultWhenNothingStored(t *testing.T) {
	r := newTestRouter(&stubFilters{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workplans/filters", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", w.Code)
	}

	var state model.FilterState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if len(state.Filters) != 2 {
		t.Fatalf("expected the 2 default filters, got %+v", state)
	}
}

func TestPutFilters_RejectsUnknownColumn(t *testing.T) {
	filters := &stubFilters{}
	r := newTestRouter(filters)

	body := `{"filters":[{"id":"bogus","value":["x"]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/workplans/filters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d want 400", w.Code)
	}
	if filters.saved != nil {
		t.Fatal("invalid payload must not be saved")
	}
}

func TestPutFilters_SavesNormalizedState(t *testing.T) {
	filters := &stubFilters{}
	r := newTestRouter(filters)

	body := `{"filters":[{"id":"progress","value":["In Progress","In Progress","Completed"]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/workplans/filters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200", w.Code)
	}
	if filters.saved == nil {
		t.Fatal("filter state was not saved")
	}
	got := filters.saved.Filters[0].Values
	if len(got) != 2 || got[0] != "In Progress" || got[1] != "Completed" {
		t.Fatalf("saved values not normalized: %v", got)
	}
}
