package engine

import "time"

// State is the whole game tree. Transitions clone it, mutate the clone and
// swap, so every published *State is an immutable snapshot.
type State struct {
	Player      PlayerStats            `json:"player"`
	Tasks       []Task                 `json:"tasks"`
	Rewards     []Reward               `json:"rewards"`
	Punishments []Punishment           `json:"punishments"`
	Sessions    []Session              `json:"sessions"`
	DailyScores []DailyScore           `json:"dailyScores"`
	Punishlog   []PunishmentCompletion `json:"punishmentLog"`
	Boss        *WeeklyBoss            `json:"weeklyBoss,omitempty"`
	Timer       Timer                  `json:"timer"`
	Goals       []Goal                 `json:"goals"`
	Checklist   []ChecklistItem        `json:"checklistItems"`
}

// NewState returns a fresh tree with the starter content: a level-1 player
// and the default task/reward/punishment set.
func NewState() *State {
	now := time.Now().UTC()
	return &State{
		Player: PlayerStats{
			Level:       1,
			NextLevelXP: NextLevelThreshold(1),
			Streaks:     map[string]int{},
		},
		Tasks: []Task{
			{
				ID: "task-001", Title: "2 hours of study",
				Recurrence: RecurrenceDaily, Domain: DomainLearning,
				TargetMin: 120, RewardPositive: 10, PenaltyNegative: -15,
				XP: 50, Difficulty: DifficultyNormal,
				StreakKey: "daily:learning", Active: true, CreatedAt: now,
			},
			{
				ID: "task-002", Title: "6 hours of deep work",
				Recurrence: RecurrenceDaily, Domain: DomainWork,
				TargetMin: 360, RewardPositive: 20, PenaltyNegative: -25,
				XP: 120, Difficulty: DifficultyHard,
				StreakKey: "daily:work", Active: true, CreatedAt: now,
			},
			{
				ID: "task-003", Title: "30 minutes of exercise",
				Recurrence: RecurrenceDaily, Domain: DomainHealth,
				TargetMin: 30, RewardPositive: 5, PenaltyNegative: -10,
				XP: 25, Difficulty: DifficultyEasy,
				StreakKey: "daily:workout", Active: true, CreatedAt: now,
			},
		},
		Rewards: []Reward{
			{ID: "reward-001", Title: "1 hour of series", Cost: 100, Category: "entertainment", Active: true},
			{ID: "reward-002", Title: "Order a pizza", Cost: 150, Category: "food", Active: true},
			{ID: "reward-003", Title: "A fancy coffee", Cost: 30, Category: "treat", Active: true},
		},
		Punishments: []Punishment{
			{ID: "punishment-001", Title: "10 push-ups", Clears: 10, XPBonus: 20, Difficulty: DifficultyHard, Category: "physical", Active: true},
			{ID: "punishment-002", Title: "30 minutes of meditation", Clears: 5, XPBonus: 10, Difficulty: DifficultyEasy, Category: "mental", Active: true},
		},
		Timer: Timer{Phase: TimerIdle},
	}
}

// Clone deep-copies the tree. Slices of value records copy element-wise;
// the streak map, boss and checklist pointer fields get their own storage.
func (s *State) Clone() *State {
	c := *s

	c.Player.Streaks = make(map[string]int, len(s.Player.Streaks))
	for k, v := range s.Player.Streaks {
		c.Player.Streaks[k] = v
	}

	c.Tasks = append([]Task(nil), s.Tasks...)
	c.Rewards = append([]Reward(nil), s.Rewards...)
	c.Punishments = append([]Punishment(nil), s.Punishments...)
	c.Sessions = append([]Session(nil), s.Sessions...)
	c.DailyScores = append([]DailyScore(nil), s.DailyScores...)
	c.Punishlog = append([]PunishmentCompletion(nil), s.Punishlog...)
	c.Goals = append([]Goal(nil), s.Goals...)
	for i := range c.Goals {
		if t := c.Goals[i].CompletedAt; t != nil {
			tt := *t
			c.Goals[i].CompletedAt = &tt
		}
	}
	c.Checklist = append([]ChecklistItem(nil), s.Checklist...)
	for i := range c.Checklist {
		it := &c.Checklist[i]
		if t := it.CompletedAt; t != nil {
			tt := *t
			it.CompletedAt = &tt
		}
		if t := it.ReminderAt; t != nil {
			tt := *t
			it.ReminderAt = &tt
		}
		it.Tags = append([]string(nil), it.Tags...)
	}

	if s.Boss != nil {
		b := *s.Boss
		b.Requirements = append([]BossRequirement(nil), s.Boss.Requirements...)
		c.Boss = &b
	}

	return &c
}

func (s *State) taskByID(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

func (s *State) rewardByID(id string) *Reward {
	for i := range s.Rewards {
		if s.Rewards[i].ID == id {
			return &s.Rewards[i]
		}
	}
	return nil
}

func (s *State) punishmentByID(id string) *Punishment {
	for i := range s.Punishments {
		if s.Punishments[i].ID == id {
			return &s.Punishments[i]
		}
	}
	return nil
}

func (s *State) goalByID(id string) *Goal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}

func (s *State) checklistByID(id string) *ChecklistItem {
	for i := range s.Checklist {
		if s.Checklist[i].ID == id {
			return &s.Checklist[i]
		}
	}
	return nil
}
