package facet

import (
	"time"

	"worktrack/internal/model"
	"worktrack/pkg/metrics"
)

// BlankOption stands in for an absent value so it still shows up as a
// selectable filter option.
const BlankOption = "(Blanks)"

// DateDisplayFormat is used both for facet values and cell labels, so date
// facets dedup by what the user actually sees.
const DateDisplayFormat = "Jan 02, 2006"

// FormatDate renders a date the way the board displays it.
func FormatDate(t time.Time) string {
	return t.Format(DateDisplayFormat)
}

// Facets holds the deduplicated option list for every filterable column.
type Facets struct {
	StartDates []string `json:"startDate"`
	EndDates   []string `json:"endDate"`
	Progress   []string `json:"progress"`
	WorkTitles []string `json:"workTitle"`
	Assignees  []string `json:"assignees"`
}

// Field binds a column id to its display-value accessor. The four generic
// facets are re-derived through this table whenever the task list changes.
type Field struct {
	ID       string
	Accessor func(*model.Task) string
}

// Fields is the enumerated accessor table for the generic facets. Assignees
// are handled separately because one task can contribute several values.
var Fields = []Field{
	{ID: model.ColumnStartDate, Accessor: StartDateValue},
	{ID: model.ColumnEndDate, Accessor: EndDateValue},
	{ID: model.ColumnProgress, Accessor: ProgressValue},
	{ID: model.ColumnWorkTitle, Accessor: WorkTitleValue},
}

// StartDateValue returns the formatted start date, or "" when unset.
func StartDateValue(t *model.Task) string {
	if d, ok := t.StartDateValue(); ok {
		return FormatDate(d)
	}
	return ""
}

// EndDateValue returns the formatted end date, or "" when unset.
func EndDateValue(t *model.Task) string {
	if d, ok := t.EndDateValue(); ok {
		return FormatDate(d)
	}
	return ""
}

// ProgressValue returns the human-readable status label, or the blank
// sentinel for status codes outside the known set.
func ProgressValue(t *model.Task) string {
	if label := model.StatusLabel(t.Status); label != "" {
		return label
	}
	return BlankOption
}

// WorkTitleValue returns the parent work title, or "" for orphan tasks.
func WorkTitleValue(t *model.Task) string {
	return t.WorkTitle()
}

// Derive recomputes every facet from the loaded task list.
func Derive(tasks []model.Task) Facets {
	f := Facets{}
	for _, field := range Fields {
		start := time.Now()
		values := deriveField(tasks, field.Accessor)
		metrics.RecordFacetDeriveDuration(field.ID, time.Since(start))

		switch field.ID {
		case model.ColumnStartDate:
			f.StartDates = values
		case model.ColumnEndDate:
			f.EndDates = values
		case model.ColumnProgress:
			f.Progress = values
		case model.ColumnWorkTitle:
			f.WorkTitles = values
		}
	}

	start := time.Now()
	f.Assignees = AssigneeOptions(tasks)
	metrics.RecordFacetDeriveDuration(model.ColumnAssignees, time.Since(start))

	return f
}

// deriveField maps every task through the accessor, keeps the first
// occurrence of each value and drops empty results.
func deriveField(tasks []model.Task, accessor func(*model.Task) string) []string {
	seen := make(map[string]struct{}, len(tasks))
	options := make([]string, 0, len(tasks))
	for i := range tasks {
		v := accessor(&tasks[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		options = append(options, v)
	}
	return options
}

// AssigneeOptions flattens every task's assignee list into "First Last"
// strings, substituting the blank sentinel for unassigned tasks, and
// deduplicates with set semantics.
func AssigneeOptions(tasks []model.Task) []string {
	seen := make(map[string]struct{}, len(tasks))
	options := make([]string, 0, len(tasks))

	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		options = append(options, name)
	}

	for i := range tasks {
		if len(tasks[i].Assignees) == 0 {
			add(BlankOption)
			continue
		}
		for _, a := range tasks[i].Assignees {
			add(a.FullName())
		}
	}
	return options
}
