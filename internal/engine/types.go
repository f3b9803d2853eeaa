package engine

import (
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyNormal   Difficulty = "Normal"
	DifficultyHard     Difficulty = "Hard"
	DifficultyVeryHard Difficulty = "VeryHard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyVeryHard:
		return true
	default:
		return false
	}
}

// Multiplier scales a task's base XP on a successful session.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	case DifficultyVeryHard:
		return 1.7
	default:
		return 1.0
	}
}

func ParseDifficulty(input string) (Difficulty, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "easy":
		return DifficultyEasy, nil
	case "", "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	case "veryhard", "very-hard":
		return DifficultyVeryHard, nil
	default:
		return "", fmt.Errorf("invalid difficulty: %q", input)
	}
}

type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceOneTime Recurrence = "one-time"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceOneTime:
		return true
	default:
		return false
	}
}

type LifeDomain string

const (
	DomainLearning LifeDomain = "learning"
	DomainWork     LifeDomain = "work"
	DomainFinance  LifeDomain = "finance"
	DomainFun      LifeDomain = "fun"
	DomainHealth   LifeDomain = "health"
	DomainPersonal LifeDomain = "personal"
)

func (d LifeDomain) IsValid() bool {
	switch d {
	case DomainLearning, DomainWork, DomainFinance, DomainFun, DomainHealth, DomainPersonal:
		return true
	default:
		return false
	}
}

// DefaultDomain is used when user input is missing/invalid.
const DefaultDomain LifeDomain = DomainPersonal

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Task struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Recurrence      Recurrence `json:"recurrence"`
	Domain          LifeDomain `json:"domain"`
	TargetMin       int        `json:"targetDurationMin"`
	RewardPositive  int        `json:"rewardPositive"`
	PenaltyNegative int        `json:"penaltyNegative"` // non-positive
	XP              int        `json:"xp"`
	Difficulty      Difficulty `json:"difficulty"`
	StreakKey       string     `json:"streakKey,omitempty"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type Reward struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Cost     int    `json:"costPositivePoints"`
	Category string `json:"category"`
	Active   bool   `json:"active"`
}

type Punishment struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Clears     int        `json:"clearsNegativePoints"`
	XPBonus    int        `json:"xpBonus"`
	Difficulty Difficulty `json:"difficulty"`
	Category   string     `json:"category"`
	Active     bool       `json:"active"`
}

// FreeTimerTaskID is the sentinel task reference for unattached timer runs.
// Sessions recorded under it carry no reward, penalty, or XP.
const FreeTimerTaskID = "free-timer"

// Session is the terminal record of one timer run. The log is append-only;
// sessions are never mutated after Stop writes them.
type Session struct {
	ID             string    `json:"id"`
	TaskID         string    `json:"taskId"`
	TaskTitle      string    `json:"taskTitle"`
	StartedAt      time.Time `json:"startTime"`
	EndedAt        time.Time `json:"endTime"`
	DurationMin    int       `json:"durationMin"`
	Completed      bool      `json:"completed"`
	RewardClaimed  int       `json:"rewardClaimed"`
	PenaltyApplied int       `json:"penaltyApplied"`
	XPEarned       int       `json:"xpEarned"`
	Notes          string    `json:"notes,omitempty"`
}

// PunishmentCompletion records one completed punishment, for the daily
// punishments-done count.
type PunishmentCompletion struct {
	PunishmentID string    `json:"punishmentId"`
	Cleared      int       `json:"cleared"`
	XPBonus      int       `json:"xpBonus"`
	CompletedAt  time.Time `json:"completedAt"`
}

// DailyScore is derived wholesale from the session log for one date key
// (YYYY-MM-DD); it is never updated incrementally.
type DailyScore struct {
	Date            string `json:"date"`
	PositivePoints  int    `json:"positivePoints"`
	NegativePoints  int    `json:"negativePoints"`
	NetScore        int    `json:"netScore"`
	TotalXPEarned   int    `json:"totalXpEarned"`
	TasksCompleted  int    `json:"tasksCompleted"`
	TasksFailed     int    `json:"tasksFailed"`
	PunishmentsDone int    `json:"punishmentsDone"`
}

type PlayerStats struct {
	Level            int            `json:"level"`
	TotalXP          int            `json:"totalXp"`
	NextLevelXP      int            `json:"nextLevelXp"`
	LifetimePositive int            `json:"lifetimePositivePoints"`
	LifetimeNegative int            `json:"lifetimeNegativePoints"`
	PositiveBalance  int            `json:"currentPositiveBalance"` // >= 0
	NegativeBalance  int            `json:"currentNegativeBalance"` // <= 0
	Streaks          map[string]int `json:"activeStreaks"`
}

type BossRequirement struct {
	Label     string `json:"task"`
	Damage    int    `json:"damage"`
	Completed bool   `json:"completed"`
}

type BossReward struct {
	XP             int    `json:"xp"`
	PositivePoints int    `json:"positivePoints"`
	Loot           string `json:"loot,omitempty"`
}

type WeeklyBoss struct {
	Name         string            `json:"bossName"`
	Week         string            `json:"week"` // ISO week id, e.g. 2025-W41
	HP           int               `json:"hp"`
	Damage       int               `json:"currentDamage"`
	Requirements []BossRequirement `json:"requirements"`
	Reward       BossReward        `json:"rewardOnDefeat"`
	Defeated     bool              `json:"defeated"`
}

type TimerPhase string

const (
	TimerIdle    TimerPhase = "idle"
	TimerRunning TimerPhase = "running"
	TimerPaused  TimerPhase = "paused"
)

// Timer is the single mutable run state. At most one timer exists; Start
// refuses to replace an active one.
type Timer struct {
	Phase      TimerPhase `json:"phase"`
	TaskID     string     `json:"taskId,omitempty"`
	TaskTitle  string     `json:"taskTitle,omitempty"`
	StartedAt  time.Time  `json:"startTime"`
	ElapsedSec int        `json:"elapsedSeconds"`
	TargetSec  int        `json:"targetSeconds"`
}

type GoalKind string

const (
	GoalDaily   GoalKind = "daily"
	GoalWeekly  GoalKind = "weekly"
	GoalMonthly GoalKind = "monthly"
	GoalYearly  GoalKind = "yearly"
)

func (g GoalKind) IsValid() bool {
	switch g {
	case GoalDaily, GoalWeekly, GoalMonthly, GoalYearly:
		return true
	default:
		return false
	}
}

type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Kind        GoalKind   `json:"type"`
	Domain      LifeDomain `json:"domain"`
	Description string     `json:"description,omitempty"`
	TargetDate  string     `json:"targetDate,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ChecklistItem struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	DueDate       string     `json:"dueDate,omitempty"`
	DueTime       string     `json:"dueTime,omitempty"`
	Priority      Priority   `json:"priority"`
	Tags          []string   `json:"tags,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	ReminderAt    *time.Time `json:"reminderTime,omitempty"`
	ReminderFired bool       `json:"reminderFired,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
