package engine

import (
	"testing"
	"time"
)

func TestComputeXPScenario(t *testing.T) {
	task := Task{TargetMin: 120, XP: 50, Difficulty: DifficultyNormal}

	if got := ComputeXP(task, 100, 0); got != 41 {
		t.Fatalf("ComputeXP(100min, streak 0)=%d, want 41", got)
	}
	// The time factor is not capped at the target.
	if got := ComputeXP(task, 240, 0); got != 100 {
		t.Fatalf("ComputeXP(240min)=%d, want 100", got)
	}
	if got := ComputeXP(task, 0, 0); got != 0 {
		t.Fatalf("ComputeXP(0min)=%d, want 0", got)
	}
}

func TestComputeXPDifficultyMultipliers(t *testing.T) {
	base := Task{TargetMin: 60, XP: 100}

	cases := []struct {
		diff Difficulty
		want int
	}{
		{DifficultyEasy, 80},
		{DifficultyNormal, 100},
		{DifficultyHard, 130},
		{DifficultyVeryHard, 170},
	}
	for _, tc := range cases {
		task := base
		task.Difficulty = tc.diff
		if got := ComputeXP(task, 60, 0); got != tc.want {
			t.Fatalf("ComputeXP(%s)=%d, want %d", tc.diff, got, tc.want)
		}
	}
}

func TestComputeXPMonotonic(t *testing.T) {
	task := Task{TargetMin: 90, XP: 60, Difficulty: DifficultyHard}

	prev := -1
	for d := 0; d <= 300; d += 5 {
		got := ComputeXP(task, d, 2)
		if got < prev {
			t.Fatalf("xp decreased from %d to %d at %d min", prev, got, d)
		}
		prev = got
	}

	prev = -1
	for streak := 0; streak <= 10; streak++ {
		got := ComputeXP(task, 90, streak)
		if got < prev {
			t.Fatalf("xp decreased from %d to %d at streak %d", prev, got, streak)
		}
		prev = got
	}

	// The streak bonus ceiling kicks in at 5 days.
	if ComputeXP(task, 90, 5) != ComputeXP(task, 90, 50) {
		t.Fatalf("streak bonus not capped at %d days", StreakBonusCapDays)
	}
}

func TestNextLevelThreshold(t *testing.T) {
	for level := 1; level <= 20; level++ {
		if got := NextLevelThreshold(level); got != 100*level*level {
			t.Fatalf("NextLevelThreshold(%d)=%d, want %d", level, got, 100*level*level)
		}
	}
	if NextLevelThreshold(2) <= NextLevelThreshold(1) {
		t.Fatalf("thresholds must increase with level")
	}
}

func TestWeekNumber(t *testing.T) {
	// 2025-01-01 is a Wednesday in ISO week 1.
	if got := WeekNumber(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)); got != 1 {
		t.Fatalf("week(2025-01-01)=%d, want 1", got)
	}
	// 2024-12-30 (Monday) already belongs to 2025-W01.
	if got := WeekID(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)); got != "2025-W1" {
		t.Fatalf("WeekID(2024-12-30)=%q, want 2025-W1", got)
	}
	// 2021-01-01 (Friday) falls in 2020-W53.
	if got := WeekID(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)); got != "2020-W53" {
		t.Fatalf("WeekID(2021-01-01)=%q, want 2020-W53", got)
	}

	// Any two days inside one ISO week share an id.
	mon := time.Date(2025, 9, 29, 8, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 10, 5, 23, 0, 0, 0, time.UTC)
	if WeekID(mon) != WeekID(sun) {
		t.Fatalf("same-week ids differ: %q vs %q", WeekID(mon), WeekID(sun))
	}
	if WeekID(sun) == WeekID(sun.Add(24*time.Hour)) {
		t.Fatalf("week id did not roll over on Monday")
	}
}
