package engine

import "time"

// BossHP is the fixed hit-point pool every weekly boss spawns with.
const BossHP = 600

// bossRoster is the fixed name rotation, indexed by week number.
var bossRoster = []string{
	"Dragon of Procrastination",
	"Demon of Distraction",
	"Ogre of Sloth",
	"Wraith of Fatigue",
}

func newWeeklyBoss(now time.Time) *WeeklyBoss {
	week := WeekNumber(now)
	return &WeeklyBoss{
		Name: bossRoster[week%len(bossRoster)],
		Week: WeekID(now),
		HP:   BossHP,
		Requirements: []BossRequirement{
			{Label: "5 days x 2h of study", Damage: 250},
			{Label: "5 days x 6h of work", Damage: 300},
			{Label: "Clear all negative points", Damage: 50},
		},
		Reward: BossReward{XP: 300, PositivePoints: 50, Loot: "Golden Pomodoro Token"},
	}
}

// EnsureWeeklyBoss spawns a boss for the current ISO week if none exists.
// An existing boss is returned as-is even if its week has passed; rotation
// is an explicit caller decision via RollWeeklyBoss.
func (s *Service) EnsureWeeklyBoss() (*WeeklyBoss, error) {
	var boss WeeklyBoss
	err := s.mutate(func(st *State) error {
		if st.Boss == nil {
			st.Boss = newWeeklyBoss(s.now())
		}
		boss = *st.Boss
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &boss, nil
}

// RollWeeklyBoss discards any existing boss and spawns a fresh one for the
// current ISO week.
func (s *Service) RollWeeklyBoss() (*WeeklyBoss, error) {
	var boss WeeklyBoss
	err := s.mutate(func(st *State) error {
		st.Boss = newWeeklyBoss(s.now())
		boss = *st.Boss
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &boss, nil
}

// WeeklyBossState returns the current boss, or nil when none exists.
func (s *Service) WeeklyBossState() *WeeklyBoss {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Boss == nil {
		return nil
	}
	b := *s.state.Boss
	b.Requirements = append([]BossRequirement(nil), s.state.Boss.Requirements...)
	return &b
}

// DamageBoss adds to the boss's cumulative damage; the boss is defeated
// once damage reaches its HP. Damage accrual is deliberately driven by the
// caller, not by task activity.
func (s *Service) DamageBoss(amount int) (*WeeklyBoss, error) {
	if amount < 0 {
		return nil, ValidationError{Field: "damage", Reason: "must be non-negative"}
	}
	var boss WeeklyBoss
	err := s.mutate(func(st *State) error {
		if st.Boss == nil {
			return NotFoundError{Kind: "weekly boss", ID: "current"}
		}
		st.Boss.Damage += amount
		if st.Boss.Damage >= st.Boss.HP {
			st.Boss.Defeated = true
		}
		boss = *st.Boss
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &boss, nil
}

// CompleteBossRequirement marks one requirement done. It does not add
// damage; callers that want requirement completion to hurt the boss follow
// up with DamageBoss using the requirement's damage value. A requirement
// completes once: repeats are rejected so chained damage cannot
// double-count.
func (s *Service) CompleteBossRequirement(index int) (*BossRequirement, error) {
	var req BossRequirement
	err := s.mutate(func(st *State) error {
		if st.Boss == nil {
			return NotFoundError{Kind: "weekly boss", ID: "current"}
		}
		if index < 0 || index >= len(st.Boss.Requirements) {
			return ValidationError{Field: "requirement", Reason: "index out of range"}
		}
		if st.Boss.Requirements[index].Completed {
			return ValidationError{Field: "requirement", Reason: "already completed"}
		}
		st.Boss.Requirements[index].Completed = true
		req = st.Boss.Requirements[index]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}
