package engine

import (
	"fmt"
	"math"
	"time"
)

const (
	// LevelThresholdCoef is the constant in the leveling curve:
	// next_level_xp = 100 * level^2.
	LevelThresholdCoef = 100

	// StreakBonusRate is the per-day streak bonus (10% per consecutive day).
	StreakBonusRate = 0.1

	// StreakBonusCapDays caps the streak bonus at 5 consecutive days.
	StreakBonusCapDays = 5
)

// ComputeXP returns the XP award for a session of actualMin minutes against
// the task's target. The time factor is deliberately uncapped: running past
// the target inflates the award. Truncates toward zero.
func ComputeXP(task Task, actualMin, streakDays int) int {
	if task.TargetMin <= 0 || actualMin < 0 {
		return 0
	}
	if streakDays < 0 {
		streakDays = 0
	}
	if streakDays > StreakBonusCapDays {
		streakDays = StreakBonusCapDays
	}

	timeFactor := float64(actualMin) / float64(task.TargetMin)
	streakBonus := 1.0 + StreakBonusRate*float64(streakDays)

	return int(math.Floor(float64(task.XP) * task.Difficulty.Multiplier() * timeFactor * streakBonus))
}

// NextLevelThreshold returns the total-XP threshold to advance past the
// given level. Monotonically increasing in level.
func NextLevelThreshold(level int) int {
	return LevelThresholdCoef * level * level
}

// WeekNumber returns the ISO-8601 week number (1-53) containing t.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// WeekID returns the ISO week identifier for t, e.g. "2025-W41". Two times
// in the same ISO week always map to the same id, which seeds the weekly
// boss identity.
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%d", year, week)
}
