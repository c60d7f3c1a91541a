package board

import (
	"testing"
	"time"

	"worktrack/internal/facet"
	"worktrack/internal/model"
)

func TestStatusIcon_ExactMatchOnly(t *testing.T) {
	cases := []struct {
		status model.TaskStatus
		want   string
	}{
		{model.StatusNotStarted, IconNotStarted},
		{model.StatusInProgress, IconInProgress},
		{model.StatusCompleted, IconCompleted},
		{model.TaskStatus("In-Progress"), ""}, // close is not equal
		{model.TaskStatus(""), ""},
	}

	for _, tc := range cases {
		if got := StatusIcon(tc.status); got != tc.want {
			t.Errorf("StatusIcon(%q): got %q want %q", tc.status, got, tc.want)
		}
	}
}

func TestBuildRow_InProgressCell(t *testing.T) {
	start := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	task := model.Task{
		ID:        7,
		Name:      "Review submission",
		Status:    model.StatusInProgress,
		StartDate: &start,
		Work:      &model.WorkRef{ID: 1, Title: "Water Review"},
	}

	r := BuildRow(&task, true)

	if r.ProgressIcon != IconInProgress {
		t.Errorf("progress icon: got %q want %q", r.ProgressIcon, IconInProgress)
	}
	if r.Progress != "In Progress" {
		t.Errorf("progress label: got %q want %q", r.Progress, "In Progress")
	}
	if r.StartDate != "Mar 05, 2024" {
		t.Errorf("start date: got %q", r.StartDate)
	}
	if !r.Editable {
		t.Error("row should be editable")
	}
}

func TestRenderAssignees(t *testing.T) {
	got := RenderAssignees([]model.Assignee{
		{FirstName: "Ada", LastName: "Lovelace"},
		{FirstName: "Grace", LastName: "Hopper"},
	})
	if got != "Ada Lovelace, Grace Hopper" {
		t.Fatalf("rendered assignees: got %q", got)
	}

	if got := RenderAssignees(nil); got != facet.BlankOption {
		t.Fatalf("unassigned render: got %q want %q", got, facet.BlankOption)
	}
}
