package model

import "time"

// TaskStatus is the backend status code carried by upstream task records.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// Assignee is a (first name, last name) pair attached to a task.
type Assignee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName renders the assignee the way the board displays it.
func (a Assignee) FullName() string {
	return a.FirstName + " " + a.LastName
}

// WorkRef points at the parent regulatory-review work of a task.
type WorkRef struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Task is a unit of work assigned to staff, derived from an event on a work.
// Dates and the work reference are optional in upstream payloads.
type Task struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    TaskStatus `json:"status"`
	Notes     string     `json:"notes,omitempty"` // rich-text encoded, passed through untouched
	Work      *WorkRef   `json:"work,omitempty"`
	Assignees []Assignee `json:"assignees,omitempty"`
}

// StartDateValue returns the start date and whether one is set.
func (t *Task) StartDateValue() (time.Time, bool) {
	if t.StartDate == nil {
		return time.Time{}, false
	}
	return *t.StartDate, true
}

// EndDateValue returns the end date and whether one is set.
func (t *Task) EndDateValue() (time.Time, bool) {
	if t.EndDate == nil {
		return time.Time{}, false
	}
	return *t.EndDate, true
}

// WorkTitle returns the parent work title, or "" when the task has no work.
func (t *Task) WorkTitle() string {
	if t.Work == nil {
		return ""
	}
	return t.Work.Title
}
