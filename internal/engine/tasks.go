package engine

import "strings"

type TaskInput struct {
	Title           string
	Recurrence      Recurrence
	Domain          LifeDomain
	TargetMin       int
	RewardPositive  int
	PenaltyNegative int
	XP              int
	Difficulty      Difficulty
	StreakKey       string
}

func (in TaskInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !in.Recurrence.IsValid() {
		return ValidationError{Field: "recurrence", Reason: "must be daily, weekly or one-time"}
	}
	if in.TargetMin <= 0 {
		return ValidationError{Field: "target duration", Reason: "must be positive"}
	}
	if in.RewardPositive < 0 {
		return ValidationError{Field: "reward", Reason: "must be non-negative"}
	}
	if in.PenaltyNegative > 0 {
		return ValidationError{Field: "penalty", Reason: "must be non-positive"}
	}
	if in.XP < 0 {
		return ValidationError{Field: "xp", Reason: "must be non-negative"}
	}
	if !in.Difficulty.IsValid() {
		return ValidationError{Field: "difficulty", Reason: "must be Easy, Normal, Hard or VeryHard"}
	}
	return nil
}

func (s *Service) CreateTask(in TaskInput) (*Task, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	domain := in.Domain
	if !domain.IsValid() {
		domain = DefaultDomain
	}

	var task Task
	err := s.mutate(func(st *State) error {
		task = Task{
			ID:              s.newID("task"),
			Title:           strings.TrimSpace(in.Title),
			Recurrence:      in.Recurrence,
			Domain:          domain,
			TargetMin:       in.TargetMin,
			RewardPositive:  in.RewardPositive,
			PenaltyNegative: in.PenaltyNegative,
			XP:              in.XP,
			Difficulty:      in.Difficulty,
			StreakKey:       in.StreakKey,
			Active:          true,
			CreatedAt:       s.now(),
		}
		st.Tasks = append(st.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskUpdate carries a partial edit; nil fields are left alone. Edits do
// not retroactively alter sessions already recorded against the task.
type TaskUpdate struct {
	Title           *string
	Recurrence      *Recurrence
	Domain          *LifeDomain
	TargetMin       *int
	RewardPositive  *int
	PenaltyNegative *int
	XP              *int
	Difficulty      *Difficulty
	StreakKey       *string
	Active          *bool
}

func (s *Service) UpdateTask(id string, up TaskUpdate) (*Task, error) {
	var task Task
	err := s.mutate(func(st *State) error {
		t := st.taskByID(id)
		if t == nil {
			return NotFoundError{Kind: "task", ID: id}
		}
		next := *t
		if up.Title != nil {
			next.Title = strings.TrimSpace(*up.Title)
		}
		if up.Recurrence != nil {
			next.Recurrence = *up.Recurrence
		}
		if up.Domain != nil {
			next.Domain = *up.Domain
		}
		if up.TargetMin != nil {
			next.TargetMin = *up.TargetMin
		}
		if up.RewardPositive != nil {
			next.RewardPositive = *up.RewardPositive
		}
		if up.PenaltyNegative != nil {
			next.PenaltyNegative = *up.PenaltyNegative
		}
		if up.XP != nil {
			next.XP = *up.XP
		}
		if up.Difficulty != nil {
			next.Difficulty = *up.Difficulty
		}
		if up.StreakKey != nil {
			next.StreakKey = *up.StreakKey
		}
		if up.Active != nil {
			next.Active = *up.Active
		}
		if err := (TaskInput{
			Title:           next.Title,
			Recurrence:      next.Recurrence,
			Domain:          next.Domain,
			TargetMin:       next.TargetMin,
			RewardPositive:  next.RewardPositive,
			PenaltyNegative: next.PenaltyNegative,
			XP:              next.XP,
			Difficulty:      next.Difficulty,
			StreakKey:       next.StreakKey,
		}).validate(); err != nil {
			return err
		}
		*t = next
		task = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes the task from the active set. Past sessions keep
// their snapshot of it.
func (s *Service) DeleteTask(id string) error {
	return s.mutate(func(st *State) error {
		for i := range st.Tasks {
			if st.Tasks[i].ID == id {
				st.Tasks = append(st.Tasks[:i], st.Tasks[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "task", ID: id}
	})
}

func (s *Service) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.state.Tasks...)
}

func (s *Service) TaskByID(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.state.taskByID(id)
	if t == nil {
		return Task{}, NotFoundError{Kind: "task", ID: id}
	}
	return *t, nil
}
