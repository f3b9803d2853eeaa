package engine

import "strings"

type GoalInput struct {
	Title       string
	Kind        GoalKind
	Domain      LifeDomain
	Description string
	TargetDate  string
}

func (s *Service) CreateGoal(in GoalInput) (*Goal, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !in.Kind.IsValid() {
		return nil, ValidationError{Field: "goal type", Reason: "must be daily, weekly, monthly or yearly"}
	}
	domain := in.Domain
	if !domain.IsValid() {
		domain = DefaultDomain
	}

	var goal Goal
	err := s.mutate(func(st *State) error {
		goal = Goal{
			ID:          s.newID("goal"),
			Title:       strings.TrimSpace(in.Title),
			Kind:        in.Kind,
			Domain:      domain,
			Description: in.Description,
			TargetDate:  in.TargetDate,
			CreatedAt:   s.now(),
		}
		st.Goals = append(st.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

type GoalUpdate struct {
	Title       *string
	Kind        *GoalKind
	Domain      *LifeDomain
	Description *string
	TargetDate  *string
}

// UpdateGoal applies a partial edit; nil fields are left alone. Completion
// state is only touched through ToggleGoal.
func (s *Service) UpdateGoal(id string, up GoalUpdate) (*Goal, error) {
	var goal Goal
	err := s.mutate(func(st *State) error {
		g := st.goalByID(id)
		if g == nil {
			return NotFoundError{Kind: "goal", ID: id}
		}
		if up.Title != nil {
			if strings.TrimSpace(*up.Title) == "" {
				return ValidationError{Field: "title", Reason: "must not be empty"}
			}
			g.Title = strings.TrimSpace(*up.Title)
		}
		if up.Kind != nil {
			if !up.Kind.IsValid() {
				return ValidationError{Field: "goal type", Reason: "must be daily, weekly, monthly or yearly"}
			}
			g.Kind = *up.Kind
		}
		if up.Domain != nil {
			if !up.Domain.IsValid() {
				return ValidationError{Field: "domain", Reason: "must be a known life domain"}
			}
			g.Domain = *up.Domain
		}
		if up.Description != nil {
			g.Description = *up.Description
		}
		if up.TargetDate != nil {
			g.TargetDate = *up.TargetDate
		}
		goal = *g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// ToggleGoal flips completion; marking done stamps the completion time,
// marking undone clears it.
func (s *Service) ToggleGoal(id string) (*Goal, error) {
	var goal Goal
	err := s.mutate(func(st *State) error {
		g := st.goalByID(id)
		if g == nil {
			return NotFoundError{Kind: "goal", ID: id}
		}
		g.Completed = !g.Completed
		if g.Completed {
			now := s.now()
			g.CompletedAt = &now
		} else {
			g.CompletedAt = nil
		}
		goal = *g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *Service) DeleteGoal(id string) error {
	return s.mutate(func(st *State) error {
		for i := range st.Goals {
			if st.Goals[i].ID == id {
				st.Goals = append(st.Goals[:i], st.Goals[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "goal", ID: id}
	})
}

func (s *Service) Goals() []Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Goal(nil), s.state.Goals...)
}
