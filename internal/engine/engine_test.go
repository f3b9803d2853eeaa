package engine

import (
	"fmt"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(nil)
	n := 0
	svc.newID = func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%04d", prefix, n)
	}
	setClock(svc, time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC))
	return svc
}

func setClock(svc *Service, at time.Time) {
	svc.now = func() time.Time { return at }
}

func tick(svc *Service, seconds int) {
	for i := 0; i < seconds; i++ {
		svc.Tick()
	}
}

func setBalances(t *testing.T, svc *Service, positive, negative int) {
	t.Helper()
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.state.Player.PositiveBalance = positive
	svc.state.Player.NegativeBalance = negative
}

func TestStopSuccessAwardsXPAndStreak(t *testing.T) {
	svc := newTestService(t)

	// task-001: target 120 min, xp 50, Normal, reward +10, penalty -15.
	if err := svc.StartTimer("task-001"); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	tick(svc, 6000) // 100 min, ratio 0.833

	res, err := svc.StopTimer(true, "")
	if err != nil {
		t.Fatalf("StopTimer: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success")
	}
	if res.Session.DurationMin != 100 {
		t.Fatalf("duration=%d, want 100", res.Session.DurationMin)
	}
	// floor(50 * 1.0 * 100/120 * 1.0) = 41
	if res.Session.XPEarned != 41 {
		t.Fatalf("xp=%d, want 41", res.Session.XPEarned)
	}
	if res.Session.RewardClaimed != 10 {
		t.Fatalf("reward=%d, want 10", res.Session.RewardClaimed)
	}
	if res.Session.PenaltyApplied != 0 {
		t.Fatalf("penalty=%d, want 0", res.Session.PenaltyApplied)
	}

	p := svc.Player()
	if p.TotalXP != 41 {
		t.Fatalf("totalXp=%d, want 41", p.TotalXP)
	}
	if p.PositiveBalance != 10 || p.LifetimePositive != 10 {
		t.Fatalf("balance=%d lifetime=%d, want 10/10", p.PositiveBalance, p.LifetimePositive)
	}
	if got := p.Streaks["daily:learning"]; got != 1 {
		t.Fatalf("streak=%d, want 1", got)
	}
	if tm := svc.TimerState(); tm.Phase != TimerIdle {
		t.Fatalf("timer phase=%q, want idle", tm.Phase)
	}
}

func TestStopBelowRatioAppliesPenalty(t *testing.T) {
	svc := newTestService(t)

	if err := svc.StartTimer("task-001"); err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	tick(svc, 3000) // 50 min, ratio 0.417

	res, err := svc.StopTimer(true, "")
	if err != nil {
		t.Fatalf("StopTimer: %v", err)
	}
	if res.Success {
		t.Fatalf("expected failure below ratio")
	}
	if res.Session.XPEarned != 0 || res.Session.RewardClaimed != 0 {
		t.Fatalf("xp=%d reward=%d, want 0/0", res.Session.XPEarned, res.Session.RewardClaimed)
	}
	if res.Session.PenaltyApplied != -15 {
		t.Fatalf("penalty=%d, want -15", res.Session.PenaltyApplied)
	}

	p := svc.Player()
	if p.NegativeBalance != -15 || p.LifetimeNegative != 15 {
		t.Fatalf("negative=%d lifetime=%d, want -15/15", p.NegativeBalance, p.LifetimeNegative)
	}
	// Failure leaves the streak untouched.
	if got := p.Streaks["daily:learning"]; got != 0 {
		t.Fatalf("streak=%d, want 0", got)
	}
}

func TestStopNotCompletedAppliesPenaltyEvenPastTarget(t *testing.T) {
	svc := newTestService(t)

	if err := svc.StartTimer("task-003"); err != nil { // target 30 min
		t.Fatalf("StartTimer: %v", err)
	}
	tick(svc, 3600) // 60 min

	res, err := svc.StopTimer(false, "gave up")
	if err != nil {
		t.Fatalf("StopTimer: %v", err)
	}
	if res.Success {
		t.Fatalf("abandoned run must not succeed")
	}
	if res.Session.PenaltyApplied != -10 {
		t.Fatalf("penalty=%d, want -10", res.Session.PenaltyApplied)
	}
	if res.Session.Notes != "gave up" {
		t.Fatalf("notes=%q", res.Session.Notes)
	}
}

func TestStreakBonusGrowsAndCaps(t *testing.T) {
	svc := newTestService(t)

	run := func() *StopResult {
		t.Helper()
		if err := svc.StartTimer("task-003"); err != nil { // 30 min, xp 25, Easy
			t.Fatalf("StartTimer: %v", err)
		}
		tick(svc, 1800)
		res, err := svc.StopTimer(true, "")
		if err != nil {
			t.Fatalf("StopTimer: %v", err)
		}
		return res
	}

	// streak 0: floor(25*0.8*1.0*1.0) = 20
	if res := run(); res.Session.XPEarned != 20 {
		t.Fatalf("run1 xp=%d, want 20", res.Session.XPEarned)
	}
	// streak 1: floor(20*1.1) = 22
	if res := run(); res.Session.XPEarned != 22 {
		t.Fatalf("run2 xp=%d, want 22", res.Session.XPEarned)
	}

	// Push streak well past the cap; the bonus stays at 1.5x.
	svc.mu.Lock()
	svc.state.Player.Streaks["daily:workout"] = 9
	svc.mu.Unlock()
	if res := run(); res.Session.XPEarned != 30 {
		t.Fatalf("capped xp=%d, want 30", res.Session.XPEarned)
	}
	if got := svc.Player().Streaks["daily:workout"]; got != 10 {
		t.Fatalf("streak=%d, want 10 (no cap on the counter itself)", got)
	}
}

func TestFreeTimerRecordsZeroValueSession(t *testing.T) {
	svc := newTestService(t)

	setBalances(t, svc, 7, -3)
	if err := svc.StartFreeTimer("reading"); err != nil {
		t.Fatalf("StartFreeTimer: %v", err)
	}
	tick(svc, 600)

	res, err := svc.StopTimer(true, "")
	if err != nil {
		t.Fatalf("StopTimer: %v", err)
	}
	s := res.Session
	if s.TaskID != FreeTimerTaskID || s.TaskTitle != "reading" {
		t.Fatalf("session task=%q title=%q", s.TaskID, s.TaskTitle)
	}
	if s.XPEarned != 0 || s.RewardClaimed != 0 || s.PenaltyApplied != 0 {
		t.Fatalf("free timer must not score: %+v", s)
	}
	if s.DurationMin != 10 {
		t.Fatalf("duration=%d, want 10", s.DurationMin)
	}

	p := svc.Player()
	if p.PositiveBalance != 7 || p.NegativeBalance != -3 || p.TotalXP != 0 {
		t.Fatalf("ledger changed by free timer: %+v", p)
	}
	if len(svc.Sessions()) != 1 {
		t.Fatalf("sessions=%d, want 1", len(svc.Sessions()))
	}
}

func TestOnChangePublishesSnapshots(t *testing.T) {
	svc := newTestService(t)

	var calls int
	svc.OnChange(func(prev, next *State) {
		calls++
		if prev == next {
			t.Fatalf("prev and next must be distinct snapshots")
		}
	})

	if _, err := svc.CreateReward(RewardInput{Title: "tea", Cost: 5}); err != nil {
		t.Fatalf("CreateReward: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}

	// A failed transition publishes nothing.
	if _, err := svc.CreateReward(RewardInput{Title: "", Cost: 5}); err == nil {
		t.Fatalf("expected validation error")
	}
	if calls != 1 {
		t.Fatalf("calls=%d after failed op, want 1", calls)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	svc := newTestService(t)

	snap := svc.Snapshot()
	snap.Tasks[0].Title = "mutated"
	snap.Player.Streaks["daily:learning"] = 99

	if got, _ := svc.TaskByID("task-001"); got.Title == "mutated" {
		t.Fatalf("snapshot mutation leaked into service state")
	}
	if got := svc.Player().Streaks["daily:learning"]; got != 0 {
		t.Fatalf("streak map shared with snapshot")
	}
}
