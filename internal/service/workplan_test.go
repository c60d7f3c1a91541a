package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"worktrack/internal/model"
)

type fakeTaskFetcher struct {
	tasks []model.Task
	err   error
	calls int
}

func (f *fakeTaskFetcher) GetMyTasks(ctx context.Context, staffID int) ([]model.Task, error) {
	f.calls++
	return f.tasks, f.err
}

type fakeStaffFetcher struct {
	staff []model.Staff
	err   error
	calls int
}

func (f *fakeStaffFetcher) GetAll(ctx context.Context) ([]model.Staff, error) {
	f.calls++
	return f.staff, f.err
}

type fakeFilterStore struct {
	state model.FilterState
	found bool
	err   error
	saved *model.FilterState
}

func (f *fakeFilterStore) Get(ctx context.Context, staffID int) (model.FilterState, bool, error) {
	return f.state, f.found, f.err
}

func (f *fakeFilterStore) Save(ctx context.Context, staffID int, state model.FilterState) error {
	f.saved = &state
	return nil
}

type fakeNotifier struct {
	calls int
}

func (f *fakeNotifier) StaffDirectoryUnavailable(ctx context.Context, staffID int) {
	f.calls++
}

func newService(tasks *fakeTaskFetcher, staff *fakeStaffFetcher, filters *fakeFilterStore, notifier *fakeNotifier) *WorkplanService {
	return NewWorkplanService(tasks, staff, filters, nil, notifier, zap.NewNop())
}

func someTasks() []model.Task {
	return []model.Task{
		{ID: 1, Name: "Draft report", Status: model.StatusInProgress,
			Assignees: []model.Assignee{{FirstName: "Ada", LastName: "Lovelace"}}},
		{ID: 2, Name: "Collect comments", Status: model.StatusNotStarted,
			Assignees: []model.Assignee{{FirstName: "Ada", LastName: "Lovelace"}}},
	}
}

func TestLoad_StaffFailureNotifiesExactlyOnce(t *testing.T) {
	tasks := &fakeTaskFetcher{tasks: someTasks()}
	staff := &fakeStaffFetcher{err: errors.New("boom")}
	notifier := &fakeNotifier{}
	svc := newService(tasks, staff, &fakeFilterStore{}, notifier)

	b := svc.Load(context.Background(), 42, "Ada Lovelace")

	if notifier.calls != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", notifier.calls)
	}
	if len(b.Staff) != 0 {
		t.Fatalf("staff list must stay empty on fetch failure, got %d", len(b.Staff))
	}
	// the board still renders with the task data that did arrive
	if len(b.Rows) == 0 {
		t.Fatal("rows must still render when only the staff fetch fails")
	}
}

func TestLoad_TaskFailureIsSilent(t *testing.T) {
	tasks := &fakeTaskFetcher{err: errors.New("boom")}
	staff := &fakeStaffFetcher{staff: []model.Staff{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}}
	notifier := &fakeNotifier{}
	svc := newService(tasks, staff, &fakeFilterStore{}, notifier)

	b := svc.Load(context.Background(), 42, "Ada Lovelace")

	if notifier.calls != 0 {
		t.Fatalf("task failure must not notify, got %d notifications", notifier.calls)
	}
	if len(b.Rows) != 0 {
		t.Fatalf("expected empty rows, got %d", len(b.Rows))
	}
	if len(b.Staff) != 1 {
		t.Fatalf("staff fetch succeeded, expected 1 entry, got %d", len(b.Staff))
	}
}

func TestLoad_DefaultFilterStateWhenNothingStored(t *testing.T) {
	tasks := &fakeTaskFetcher{tasks: someTasks()}
	staff := &fakeStaffFetcher{}
	svc := newService(tasks, staff, &fakeFilterStore{}, &fakeNotifier{})

	b := svc.Load(context.Background(), 42, "Ada Lovelace")

	want := model.DefaultFilterState("Ada Lovelace")
	if len(b.FilterState.Filters) != len(want.Filters) {
		t.Fatalf("expected default filter state, got %+v", b.FilterState)
	}
	for i, f := range want.Filters {
		got := b.FilterState.Filters[i]
		if got.ColumnID != f.ColumnID {
			t.Errorf("filter %d column: got %q want %q", i, got.ColumnID, f.ColumnID)
		}
	}
}

func TestLoad_StoredFilterStateWins(t *testing.T) {
	stored := model.FilterState{Filters: []model.ColumnFilter{
		{ColumnID: model.ColumnProgress, Values: []string{"Completed"}},
	}}
	tasks := &fakeTaskFetcher{tasks: someTasks()}
	svc := newService(tasks, &fakeStaffFetcher{}, &fakeFilterStore{state: stored, found: true}, &fakeNotifier{})

	b := svc.Load(context.Background(), 42, "Ada Lovelace")

	if len(b.FilterState.Filters) != 1 || b.FilterState.Filters[0].Values[0] != "Completed" {
		t.Fatalf("stored filter state must override the default, got %+v", b.FilterState)
	}
	// both example tasks are active, so the stored Completed filter hides them
	if len(b.Rows) != 0 {
		t.Fatalf("expected 0 rows under the stored filter, got %d", len(b.Rows))
	}
}

func TestLoad_DefaultFiltersSelectOwnActiveTasks(t *testing.T) {
	all := append(someTasks(),
		model.Task{ID: 3, Name: "Done work", Status: model.StatusCompleted,
			Assignees: []model.Assignee{{FirstName: "Ada", LastName: "Lovelace"}}},
		model.Task{ID: 4, Name: "Someone else's", Status: model.StatusInProgress,
			Assignees: []model.Assignee{{FirstName: "Grace", LastName: "Hopper"}}},
	)
	tasks := &fakeTaskFetcher{tasks: all}
	svc := newService(tasks, &fakeStaffFetcher{}, &fakeFilterStore{}, &fakeNotifier{})

	b := svc.Load(context.Background(), 42, "Ada Lovelace")

	if len(b.Rows) != 2 {
		t.Fatalf("default filters should keep the viewer's active tasks only, got %d rows", len(b.Rows))
	}
	for _, r := range b.Rows {
		if r.Progress == "Completed" {
			t.Errorf("completed task %d leaked through default filters", r.TaskID)
		}
	}
}

func TestFilterStateFor_StoreErrorFallsBackToDefault(t *testing.T) {
	svc := newService(&fakeTaskFetcher{}, &fakeStaffFetcher{}, &fakeFilterStore{err: errors.New("db down")}, &fakeNotifier{})

	state := svc.FilterStateFor(context.Background(), 42, "Ada Lovelace")

	want := model.DefaultFilterState("Ada Lovelace")
	if len(state.Filters) != len(want.Filters) {
		t.Fatalf("expected default state on store error, got %+v", state)
	}
}
