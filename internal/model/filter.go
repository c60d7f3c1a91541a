package model

// ColumnFilter is one column's selected filter values.
type ColumnFilter struct {
	ColumnID string   `json:"id"`
	Values   []string `json:"value"`
}

// FilterState is the full set of column filters a user has chosen. It is
// persisted per staff member and rehydrated on every board load.
type FilterState struct {
	Filters []ColumnFilter `json:"filters"`
}

// Column ids shared by facets, filters and the table surface.
const (
	ColumnName      = "name"
	ColumnStartDate = "startDate"
	ColumnEndDate   = "endDate"
	ColumnProgress  = "progress"
	ColumnAssignees = "assignees"
	ColumnWorkTitle = "workTitle"
	ColumnNotes     = "notes"
)

// KnownColumn reports whether a column id belongs to the board.
func KnownColumn(id string) bool {
	switch id {
	case ColumnName, ColumnStartDate, ColumnEndDate, ColumnProgress,
		ColumnAssignees, ColumnWorkTitle, ColumnNotes:
		return true
	}
	return false
}

// Normalize drops duplicate values inside each column filter, keeping the
// first occurrence. Facet values are unique per column; stored selections
// stay that way too.
func (s *FilterState) Normalize() {
	for i := range s.Filters {
		seen := make(map[string]struct{}, len(s.Filters[i].Values))
		values := s.Filters[i].Values[:0]
		for _, v := range s.Filters[i].Values {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
		s.Filters[i].Values = values
	}
}

// StatusLabel maps a backend status code to its display label, falling back
// to "" for codes it does not know.
func StatusLabel(s TaskStatus) string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	}
	return ""
}

// DefaultFilterState pre-selects active statuses and the viewer's own tasks.
// It applies until the user or the stored state overrides it.
func DefaultFilterState(currentUser string) FilterState {
	return FilterState{
		Filters: []ColumnFilter{
			{
				ColumnID: ColumnProgress,
				Values:   []string{StatusLabel(StatusInProgress), StatusLabel(StatusNotStarted)},
			},
			{
				ColumnID: ColumnAssignees,
				Values:   []string{currentUser},
			},
		},
	}
}
