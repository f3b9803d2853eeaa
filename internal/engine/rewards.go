package engine

import "strings"

type RewardInput struct {
	Title    string
	Cost     int
	Category string
}

func (s *Service) CreateReward(in RewardInput) (*Reward, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.Cost <= 0 {
		return nil, ValidationError{Field: "cost", Reason: "must be positive"}
	}

	var reward Reward
	err := s.mutate(func(st *State) error {
		reward = Reward{
			ID:       s.newID("reward"),
			Title:    strings.TrimSpace(in.Title),
			Cost:     in.Cost,
			Category: in.Category,
			Active:   true,
		}
		st.Rewards = append(st.Rewards, reward)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

type RewardUpdate struct {
	Title    *string
	Cost     *int
	Category *string
	Active   *bool
}

func (s *Service) UpdateReward(id string, up RewardUpdate) (*Reward, error) {
	var reward Reward
	err := s.mutate(func(st *State) error {
		r := st.rewardByID(id)
		if r == nil {
			return NotFoundError{Kind: "reward", ID: id}
		}
		if up.Title != nil {
			if strings.TrimSpace(*up.Title) == "" {
				return ValidationError{Field: "title", Reason: "must not be empty"}
			}
			r.Title = strings.TrimSpace(*up.Title)
		}
		if up.Cost != nil {
			if *up.Cost <= 0 {
				return ValidationError{Field: "cost", Reason: "must be positive"}
			}
			r.Cost = *up.Cost
		}
		if up.Category != nil {
			r.Category = *up.Category
		}
		if up.Active != nil {
			r.Active = *up.Active
		}
		reward = *r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

func (s *Service) DeleteReward(id string) error {
	return s.mutate(func(st *State) error {
		for i := range st.Rewards {
			if st.Rewards[i].ID == id {
				st.Rewards = append(st.Rewards[:i], st.Rewards[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "reward", ID: id}
	})
}

func (s *Service) Rewards() []Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Reward(nil), s.state.Rewards...)
}
