package engine

import (
	"errors"
	"testing"
)

func TestStartTimerRequiresIdle(t *testing.T) {
	svc := newTestService(t)

	if err := svc.StartTimer("task-001"); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}

	err := svc.StartTimer("task-002")
	var its InvalidTimerStateError
	if !errors.As(err, &its) {
		t.Fatalf("error=%v, want InvalidTimerStateError", err)
	}
	if its.Phase != TimerRunning {
		t.Fatalf("phase=%q, want running", its.Phase)
	}
	// The original run is untouched.
	if tm := svc.TimerState(); tm.TaskID != "task-001" {
		t.Fatalf("active task=%q, want task-001", tm.TaskID)
	}

	if err := svc.PauseTimer(); err != nil {
		t.Fatalf("PauseTimer: %v", err)
	}
	if !errors.As(svc.StartTimer("task-002"), &its) {
		t.Fatalf("start while paused must fail")
	}
}

func TestStartTimerUnknownTask(t *testing.T) {
	svc := newTestService(t)

	var nf NotFoundError
	if !errors.As(svc.StartTimer("task-999"), &nf) {
		t.Fatalf("want NotFoundError for unknown task")
	}
	if tm := svc.TimerState(); tm.Phase != TimerIdle {
		t.Fatalf("failed start must leave the timer idle")
	}

	// Inactive tasks cannot be started either.
	inactive := false
	if _, err := svc.UpdateTask("task-001", TaskUpdate{Active: &inactive}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !errors.As(svc.StartTimer("task-001"), &nf) {
		t.Fatalf("want NotFoundError for inactive task")
	}
}

func TestTimerOpsInWrongPhase(t *testing.T) {
	svc := newTestService(t)

	var its InvalidTimerStateError
	if !errors.As(svc.PauseTimer(), &its) {
		t.Fatalf("pause while idle must fail")
	}
	if !errors.As(svc.ResumeTimer(), &its) {
		t.Fatalf("resume while idle must fail")
	}
	if _, err := svc.StopTimer(true, ""); !errors.As(err, &its) {
		t.Fatalf("stop while idle must fail")
	}

	if err := svc.StartTimer("task-001"); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	if !errors.As(svc.ResumeTimer(), &its) {
		t.Fatalf("resume while running must fail")
	}
}

func TestTickOnlyAdvancesRunning(t *testing.T) {
	svc := newTestService(t)

	svc.Tick() // idle: no-op
	if err := svc.StartTimer("task-001"); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	tick(svc, 90)
	if err := svc.PauseTimer(); err != nil {
		t.Fatalf("PauseTimer: %v", err)
	}
	tick(svc, 60) // paused: no-op
	if err := svc.ResumeTimer(); err != nil {
		t.Fatalf("ResumeTimer: %v", err)
	}
	tick(svc, 30)

	if got := svc.TimerState().ElapsedSec; got != 120 {
		t.Fatalf("elapsed=%d, want 120", got)
	}
	if got := svc.TimerState().TargetSec; got != 120*60 {
		t.Fatalf("target=%d, want %d", got, 120*60)
	}
}

func TestStopAfterTaskDeletedRecordsPlainSession(t *testing.T) {
	svc := newTestService(t)

	if err := svc.StartTimer("task-001"); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	tick(svc, 6000)
	if err := svc.DeleteTask("task-001"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	res, err := svc.StopTimer(true, "")
	if err != nil {
		t.Fatalf("StopTimer: %v", err)
	}
	if res.Success {
		t.Fatalf("deleted task must not score a success")
	}
	s := res.Session
	if s.DurationMin != 100 || s.TaskTitle != "2 hours of study" {
		t.Fatalf("session = %+v", s)
	}
	if s.XPEarned != 0 || s.RewardClaimed != 0 || s.PenaltyApplied != 0 {
		t.Fatalf("orphaned run must not score: %+v", s)
	}

	p := svc.Player()
	if p.TotalXP != 0 || p.PositiveBalance != 0 || p.NegativeBalance != 0 {
		t.Fatalf("ledger changed: %+v", p)
	}
	if tm := svc.TimerState(); tm.Phase != TimerIdle {
		t.Fatalf("timer not cleared: %+v", tm)
	}
	if got := len(svc.Sessions()); got != 1 {
		t.Fatalf("sessions=%d, want 1", got)
	}
}

func TestResetDiscardsWithoutSession(t *testing.T) {
	svc := newTestService(t)

	if err := svc.StartTimer("task-001"); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	tick(svc, 500)
	if err := svc.ResetTimer(); err != nil {
		t.Fatalf("ResetTimer: %v", err)
	}

	if tm := svc.TimerState(); tm.Phase != TimerIdle || tm.ElapsedSec != 0 {
		t.Fatalf("timer not cleared: %+v", tm)
	}
	if got := len(svc.Sessions()); got != 0 {
		t.Fatalf("reset recorded %d sessions, want 0", got)
	}
	p := svc.Player()
	if p.TotalXP != 0 || p.PositiveBalance != 0 || p.NegativeBalance != 0 {
		t.Fatalf("reset touched the ledger: %+v", p)
	}

	// Reset is valid in any phase, idle included.
	if err := svc.ResetTimer(); err != nil {
		t.Fatalf("ResetTimer while idle: %v", err)
	}
}
