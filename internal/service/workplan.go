package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"worktrack/internal/board"
	"worktrack/internal/facet"
	"worktrack/internal/model"
	"worktrack/pkg/logger"
	"worktrack/pkg/metrics"
	"worktrack/pkg/rbac"
)

// TaskFetcher loads a staff member's tasks from the upstream task service.
type TaskFetcher interface {
	GetMyTasks(ctx context.Context, staffID int) ([]model.Task, error)
}

// StaffFetcher loads the staff directory from the upstream staff service.
type StaffFetcher interface {
	GetAll(ctx context.Context) ([]model.Staff, error)
}

// FilterStore persists per-user column filter state.
type FilterStore interface {
	Get(ctx context.Context, staffID int) (model.FilterState, bool, error)
	Save(ctx context.Context, staffID int, state model.FilterState) error
}

// Snapshots is the optional short-TTL cache in front of the upstream calls.
type Snapshots interface {
	GetTasks(ctx context.Context, staffID int) ([]model.Task, bool)
	PutTasks(ctx context.Context, staffID int, tasks []model.Task)
	GetStaff(ctx context.Context) ([]model.Staff, bool)
	PutStaff(ctx context.Context, staff []model.Staff)
}

// Notifier emits the generic error notification on staff fetch failure.
type Notifier interface {
	StaffDirectoryUnavailable(ctx context.Context, staffID int)
}

// Board is everything the table client needs for one render.
type Board struct {
	Rows        []board.Row       `json:"rows"`
	Columns     []board.Column    `json:"columns"`
	Facets      facet.Facets      `json:"facets"`
	FilterState model.FilterState `json:"filterState"`
	Staff       []model.Staff     `json:"staff"`
}

// WorkplanService assembles the board: it loads tasks and staff, derives the
// filter facets, rehydrates the user's filter state and renders the rows.
type WorkplanService struct {
	tasks    TaskFetcher
	staff    StaffFetcher
	filters  FilterStore
	cache    Snapshots
	notifier Notifier
	logger   *zap.Logger
}

func NewWorkplanService(
	tasks TaskFetcher,
	staff StaffFetcher,
	filters FilterStore,
	cache Snapshots,
	notifier Notifier,
	log *zap.Logger,
) *WorkplanService {
	return &WorkplanService{
		tasks:    tasks,
		staff:    staff,
		filters:  filters,
		cache:    cache,
		notifier: notifier,
		logger:   log,
	}
}

// Load builds the board for one staff member. The two upstream fetches run
// concurrently with no ordering between them. A failed task fetch degrades
// silently to an empty list; a failed staff fetch additionally emits one
// generic error notification. Load itself never fails: the board always
// renders, possibly empty.
func (s *WorkplanService) Load(ctx context.Context, staffID int, userName string) Board {
	log := logger.WithTrace(ctx, s.logger)

	var (
		wg       sync.WaitGroup
		tasks    []model.Task
		staff    []model.Staff
		taskErr  error
		staffErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		tasks, taskErr = s.loadTasks(ctx, staffID)
	}()
	go func() {
		defer wg.Done()
		staff, staffErr = s.loadStaff(ctx)
	}()
	wg.Wait()

	tasksOutcome, staffOutcome := "ok", "ok"

	if taskErr != nil {
		// silent degradation: no notification, just an empty board
		log.Warn("Task fetch failed, rendering empty board",
			zap.Int("staff_id", staffID),
			zap.Error(taskErr),
		)
		tasks = []model.Task{}
		tasksOutcome = "failed"
	}

	if staffErr != nil {
		log.Error("Staff fetch failed",
			zap.Int("staff_id", staffID),
			zap.Error(staffErr),
		)
		staff = []model.Staff{}
		staffOutcome = "failed"
		s.notifier.StaffDirectoryUnavailable(ctx, staffID)
	}

	metrics.IncrementBoardLoad(tasksOutcome, staffOutcome)

	facets := facet.Derive(tasks)
	state := s.FilterStateFor(ctx, staffID, userName)

	editable := rbac.HasPermission(staffID, rbac.PermissionEditTask)
	rows := board.BuildRows(tasks, editable)
	rows = board.Apply(rows, state, facets.Assignees)

	log.Info("Board loaded",
		zap.Int("staff_id", staffID),
		zap.Int("task_count", len(tasks)),
		zap.Int("staff_count", len(staff)),
		zap.Int("row_count", len(rows)),
	)

	return Board{
		Rows:        rows,
		Columns:     board.Columns,
		Facets:      facets,
		FilterState: state,
		Staff:       staff,
	}
}

// Facets loads the user's tasks and derives the facet lists only.
func (s *WorkplanService) Facets(ctx context.Context, staffID int) facet.Facets {
	tasks, err := s.loadTasks(ctx, staffID)
	if err != nil {
		logger.WithTrace(ctx, s.logger).Warn("Task fetch failed while deriving facets",
			zap.Int("staff_id", staffID),
			zap.Error(err),
		)
		tasks = []model.Task{}
	}
	return facet.Derive(tasks)
}

// FilterStateFor returns the stored filter state, or the default when none
// has been stored yet or the store is unreachable.
func (s *WorkplanService) FilterStateFor(ctx context.Context, staffID int, userName string) model.FilterState {
	state, found, err := s.filters.Get(ctx, staffID)
	if err != nil {
		logger.WithTrace(ctx, s.logger).Warn("Filter state load failed, using default",
			zap.Int("staff_id", staffID),
			zap.Error(err),
		)
		return model.DefaultFilterState(userName)
	}
	if !found {
		return model.DefaultFilterState(userName)
	}
	return state
}

// SaveFilterState persists a filter change.
func (s *WorkplanService) SaveFilterState(ctx context.Context, staffID int, state model.FilterState) error {
	return s.filters.Save(ctx, staffID, state)
}

func (s *WorkplanService) loadTasks(ctx context.Context, staffID int) ([]model.Task, error) {
	if s.cache != nil {
		if tasks, ok := s.cache.GetTasks(ctx, staffID); ok {
			return tasks, nil
		}
	}

	tasks, err := s.tasks.GetMyTasks(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.PutTasks(ctx, staffID, tasks)
	}
	return tasks, nil
}

func (s *WorkplanService) loadStaff(ctx context.Context) ([]model.Staff, error) {
	if s.cache != nil {
		if staff, ok := s.cache.GetStaff(ctx); ok {
			return staff, nil
		}
	}

	staff, err := s.staff.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.PutStaff(ctx, staff)
	}
	return staff, nil
}
