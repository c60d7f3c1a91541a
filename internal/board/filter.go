package board

import (
	"sort"
	"strings"

	"worktrack/internal/model"
)

// AssigneePass is the assignee column's filter predicate. An empty selection,
// or one covering every known assignee option, filters nothing. Otherwise the
// rendered assignee string must contain every selected name as a substring.
func AssigneePass(rendered string, selected []string, known []string) bool {
	if len(selected) == 0 {
		return true
	}
	if coversAll(selected, known) {
		return true
	}
	for _, name := range selected {
		if !strings.Contains(rendered, name) {
			return false
		}
	}
	return true
}

// coversAll reports whether every known option appears in the selection.
func coversAll(selected, known []string) bool {
	if len(known) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	for _, k := range known {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}

// multiSelectPass is the default multi-select predicate: the cell value must
// be one of the selected values. Empty selections filter nothing.
func multiSelectPass(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if value == s {
			return true
		}
	}
	return false
}

// textPass is the free-text predicate: case-insensitive substring match
// against the first entered value.
func textPass(value string, selected []string) bool {
	if len(selected) == 0 || selected[0] == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(selected[0]))
}

// Apply filters rows by the user's column filter state, then applies the
// default sort: name ascending, then start date, then work title.
func Apply(rows []Row, state model.FilterState, knownAssignees []string) []Row {
	out := make([]Row, 0, len(rows))
	for i := range rows {
		if rowPasses(&rows[i], state, knownAssignees) {
			out = append(out, rows[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		if !out[i].startSort.Equal(out[j].startSort) {
			return out[i].startSort.Before(out[j].startSort)
		}
		return out[i].WorkTitle < out[j].WorkTitle
	})

	return out
}

func rowPasses(r *Row, state model.FilterState, knownAssignees []string) bool {
	for _, f := range state.Filters {
		col := columnByID(f.ColumnID)
		if col == nil {
			continue
		}

		value := col.value(r)
		switch {
		case f.ColumnID == model.ColumnAssignees:
			if !AssigneePass(value, f.Values, knownAssignees) {
				return false
			}
		case col.FilterVariant == FilterMultiSelect:
			if !multiSelectPass(value, f.Values) {
				return false
			}
		default:
			if !textPass(value, f.Values) {
				return false
			}
		}
	}
	return true
}
