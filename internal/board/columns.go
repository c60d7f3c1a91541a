package board

import (
	"strings"
	"time"

	"worktrack/internal/facet"
	"worktrack/internal/model"
)

// FilterVariant tells the table client which filter control a column wants.
type FilterVariant string

const (
	FilterMultiSelect FilterVariant = "multi-select"
	FilterText        FilterVariant = "text"
)

// Status icon variants, chosen by exact equality against the status enum.
const (
	IconNotStarted = "notStarted"
	IconInProgress = "inProgress"
	IconCompleted  = "completed"
)

// StatusIcon picks the icon variant for a status code, or "" for codes
// outside the known set.
func StatusIcon(s model.TaskStatus) string {
	switch s {
	case model.StatusNotStarted:
		return IconNotStarted
	case model.StatusInProgress:
		return IconInProgress
	case model.StatusCompleted:
		return IconCompleted
	}
	return ""
}

// Row is one rendered table row. Sort keys that must not sort by display
// string are kept off the wire.
type Row struct {
	TaskID       int    `json:"task_id"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Progress     string `json:"progress"`
	ProgressIcon string `json:"progressIcon"`
	Assignees    string `json:"assignees"`
	WorkTitle    string `json:"workTitle"`
	Notes        string `json:"notes"`
	Editable     bool   `json:"editable"`

	startSort time.Time
}

// Column describes one table column for the generic table client.
type Column struct {
	ID            string        `json:"id"`
	Header        string        `json:"header"`
	FilterVariant FilterVariant `json:"filterVariant"`
	Sortable      bool          `json:"sortable"`

	value func(*Row) string
}

// Columns is the full column configuration, one entry per displayed field.
var Columns = []Column{
	{ID: model.ColumnName, Header: "Task", FilterVariant: FilterText, Sortable: true,
		value: func(r *Row) string { return r.Name }},
	{ID: model.ColumnStartDate, Header: "Start Date", FilterVariant: FilterMultiSelect, Sortable: true,
		value: func(r *Row) string { return r.StartDate }},
	{ID: model.ColumnEndDate, Header: "End Date", FilterVariant: FilterMultiSelect, Sortable: true,
		value: func(r *Row) string { return r.EndDate }},
	{ID: model.ColumnProgress, Header: "Progress", FilterVariant: FilterMultiSelect, Sortable: true,
		value: func(r *Row) string { return r.Progress }},
	{ID: model.ColumnAssignees, Header: "Assigned", FilterVariant: FilterMultiSelect, Sortable: true,
		value: func(r *Row) string { return r.Assignees }},
	{ID: model.ColumnWorkTitle, Header: "Work", FilterVariant: FilterMultiSelect, Sortable: true,
		value: func(r *Row) string { return r.WorkTitle }},
	{ID: model.ColumnNotes, Header: "Notes", FilterVariant: FilterText, Sortable: false,
		value: func(r *Row) string { return r.Notes }},
}

func columnByID(id string) *Column {
	for i := range Columns {
		if Columns[i].ID == id {
			return &Columns[i]
		}
	}
	return nil
}

// RenderAssignees joins a task's assignees into the display string the
// assignee column and its filter both work against.
func RenderAssignees(assignees []model.Assignee) string {
	if len(assignees) == 0 {
		return facet.BlankOption
	}
	names := make([]string, 0, len(assignees))
	for _, a := range assignees {
		names = append(names, a.FullName())
	}
	return strings.Join(names, ", ")
}

// BuildRow renders one task into its table row.
func BuildRow(t *model.Task, editable bool) Row {
	r := Row{
		TaskID:       t.ID,
		Name:         t.Name,
		Progress:     facet.ProgressValue(t),
		ProgressIcon: StatusIcon(t.Status),
		Assignees:    RenderAssignees(t.Assignees),
		WorkTitle:    t.WorkTitle(),
		Notes:        t.Notes,
		Editable:     editable,
	}
	if d, ok := t.StartDateValue(); ok {
		r.StartDate = facet.FormatDate(d)
		r.startSort = d
	}
	if d, ok := t.EndDateValue(); ok {
		r.EndDate = facet.FormatDate(d)
	}
	return r
}

// BuildRows renders the loaded task list. The editable flag comes from the
// viewer's permission, checked once per load.
func BuildRows(tasks []model.Task, editable bool) []Row {
	rows := make([]Row, 0, len(tasks))
	for i := range tasks {
		rows = append(rows, BuildRow(&tasks[i], editable))
	}
	return rows
}
