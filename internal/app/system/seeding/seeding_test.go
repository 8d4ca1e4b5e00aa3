package seeding

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestRunAll_AllSucceed(t *testing.T) {
	ran := 0
	tasks := []Task{
		{Name: "one", Run: func(ctx context.Context) error { ran++; return nil }},
		{Name: "two", Run: func(ctx context.Context) error { ran++; return nil }},
	}

	summary := RunAll(context.Background(), zap.NewNop(), tasks)

	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
	if summary.Total != 2 {
		t.Errorf("Total = %d, want 2", summary.Total)
	}
	if summary.Failed != 0 {
		t.Errorf("Failed = %d, want 0", summary.Failed)
	}
}

func TestRunAll_ContinuesPastFailures(t *testing.T) {
	boom := errors.New("boom")
	var order []string
	tasks := []Task{
		{Name: "a", Run: func(ctx context.Context) error { order = append(order, "a"); return boom }},
		{Name: "b", Run: func(ctx context.Context) error { order = append(order, "b"); return nil }},
		{Name: "c", Run: func(ctx context.Context) error { order = append(order, "c"); return boom }},
		{Name: "d", Run: func(ctx context.Context) error { order = append(order, "d"); return nil }},
	}

	summary := RunAll(context.Background(), zap.NewNop(), tasks)

	if len(order) != 4 {
		t.Fatalf("ran %d tasks, want 4 (failures must not stop the run)", len(order))
	}
	if summary.Failed != 2 {
		t.Errorf("Failed = %d, want 2", summary.Failed)
	}
	if len(summary.Results) != 4 {
		t.Fatalf("Results = %d entries, want 4", len(summary.Results))
	}
	if summary.Results[0].Err == nil || summary.Results[2].Err == nil {
		t.Error("results for failing tasks should carry their errors")
	}
	if summary.Results[1].Err != nil || summary.Results[3].Err != nil {
		t.Error("results for passing tasks should have nil errors")
	}
}

func TestRunAll_Empty(t *testing.T) {
	summary := RunAll(context.Background(), zap.NewNop(), nil)
	if summary.Total != 0 || summary.Failed != 0 {
		t.Errorf("empty run: Total = %d, Failed = %d, want 0, 0", summary.Total, summary.Failed)
	}
}

func TestTasks_Names(t *testing.T) {
	tasks := Tasks(nil, AdminSeed{})
	want := []string{"page-seo", "page-settings", "company-settings", "theme-settings", "admin-user"}
	if len(tasks) != len(want) {
		t.Fatalf("Tasks() returned %d tasks, want %d", len(tasks), len(want))
	}
	for i, name := range want {
		if tasks[i].Name != name {
			t.Errorf("tasks[%d].Name = %q, want %q", i, tasks[i].Name, name)
		}
	}
}
