package engine

import (
	"errors"
	"testing"
)

func TestCreateTaskValidation(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name  string
		in    TaskInput
		field string
	}{
		{"empty title", TaskInput{Recurrence: RecurrenceDaily, TargetMin: 30, Difficulty: DifficultyNormal}, "title"},
		{"bad recurrence", TaskInput{Title: "x", Recurrence: "hourly", TargetMin: 30, Difficulty: DifficultyNormal}, "recurrence"},
		{"zero target", TaskInput{Title: "x", Recurrence: RecurrenceDaily, Difficulty: DifficultyNormal}, "target duration"},
		{"negative reward", TaskInput{Title: "x", Recurrence: RecurrenceDaily, TargetMin: 30, RewardPositive: -1, Difficulty: DifficultyNormal}, "reward"},
		{"positive penalty", TaskInput{Title: "x", Recurrence: RecurrenceDaily, TargetMin: 30, PenaltyNegative: 5, Difficulty: DifficultyNormal}, "penalty"},
		{"bad difficulty", TaskInput{Title: "x", Recurrence: RecurrenceDaily, TargetMin: 30, Difficulty: "Brutal"}, "difficulty"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTask(tc.in)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestCreateTaskDefaultsDomain(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.CreateTask(TaskInput{
		Title:      "read",
		Recurrence: RecurrenceDaily,
		Domain:     "astrology",
		TargetMin:  30,
		Difficulty: DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Domain != DefaultDomain {
		t.Fatalf("domain = %q, want %q", task.Domain, DefaultDomain)
	}
	if !task.Active {
		t.Fatalf("new task is not active")
	}
}

func TestUpdateTaskMergesAndRevalidates(t *testing.T) {
	svc := newTestService(t)

	title := "study twice as long"
	target := 240
	task, err := svc.UpdateTask("task-001", TaskUpdate{Title: &title, TargetMin: &target})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if task.Title != title || task.TargetMin != 240 {
		t.Fatalf("task = %+v", task)
	}
	// Untouched fields keep their values.
	if task.XP != 50 || task.Difficulty != DifficultyNormal {
		t.Fatalf("unrelated fields changed: %+v", task)
	}

	bad := 0
	if _, err := svc.UpdateTask("task-001", TaskUpdate{TargetMin: &bad}); err == nil {
		t.Fatalf("merged invalid update was accepted")
	}

	if _, err := svc.UpdateTask("task-404", TaskUpdate{Title: &title}); err == nil {
		t.Fatalf("update of unknown task succeeded")
	}
}

func TestTaskEditDoesNotRewriteSessions(t *testing.T) {
	svc := newTestService(t)

	runSession(t, svc, "task-001", 6000, true)

	xp := 500
	if _, err := svc.UpdateTask("task-001", TaskUpdate{XP: &xp}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	sessions := svc.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if sessions[0].XPEarned != 41 {
		t.Fatalf("recorded xp = %d, want 41", sessions[0].XPEarned)
	}
}

func TestDeleteTask(t *testing.T) {
	svc := newTestService(t)

	if err := svc.DeleteTask("task-003"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := svc.TaskByID("task-003"); err == nil {
		t.Fatalf("deleted task still found")
	}

	err := svc.DeleteTask("task-404")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
