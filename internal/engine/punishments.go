package engine

import "strings"

type PunishmentInput struct {
	Title      string
	Clears     int
	XPBonus    int
	Difficulty Difficulty
	Category   string
}

func (s *Service) CreatePunishment(in PunishmentInput) (*Punishment, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.Clears <= 0 {
		return nil, ValidationError{Field: "clears", Reason: "must be positive"}
	}
	if in.XPBonus < 0 {
		return nil, ValidationError{Field: "xp bonus", Reason: "must be non-negative"}
	}
	if !in.Difficulty.IsValid() {
		return nil, ValidationError{Field: "difficulty", Reason: "must be Easy, Normal, Hard or VeryHard"}
	}

	var pun Punishment
	err := s.mutate(func(st *State) error {
		pun = Punishment{
			ID:         s.newID("punishment"),
			Title:      strings.TrimSpace(in.Title),
			Clears:     in.Clears,
			XPBonus:    in.XPBonus,
			Difficulty: in.Difficulty,
			Category:   in.Category,
			Active:     true,
		}
		st.Punishments = append(st.Punishments, pun)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pun, nil
}

type PunishmentUpdate struct {
	Title      *string
	Clears     *int
	XPBonus    *int
	Difficulty *Difficulty
	Category   *string
	Active     *bool
}

func (s *Service) UpdatePunishment(id string, up PunishmentUpdate) (*Punishment, error) {
	var pun Punishment
	err := s.mutate(func(st *State) error {
		p := st.punishmentByID(id)
		if p == nil {
			return NotFoundError{Kind: "punishment", ID: id}
		}
		if up.Title != nil {
			if strings.TrimSpace(*up.Title) == "" {
				return ValidationError{Field: "title", Reason: "must not be empty"}
			}
			p.Title = strings.TrimSpace(*up.Title)
		}
		if up.Clears != nil {
			if *up.Clears <= 0 {
				return ValidationError{Field: "clears", Reason: "must be positive"}
			}
			p.Clears = *up.Clears
		}
		if up.XPBonus != nil {
			if *up.XPBonus < 0 {
				return ValidationError{Field: "xp bonus", Reason: "must be non-negative"}
			}
			p.XPBonus = *up.XPBonus
		}
		if up.Difficulty != nil {
			if !up.Difficulty.IsValid() {
				return ValidationError{Field: "difficulty", Reason: "must be Easy, Normal, Hard or VeryHard"}
			}
			p.Difficulty = *up.Difficulty
		}
		if up.Category != nil {
			p.Category = *up.Category
		}
		if up.Active != nil {
			p.Active = *up.Active
		}
		pun = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pun, nil
}

func (s *Service) DeletePunishment(id string) error {
	return s.mutate(func(st *State) error {
		for i := range st.Punishments {
			if st.Punishments[i].ID == id {
				st.Punishments = append(st.Punishments[:i], st.Punishments[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "punishment", ID: id}
	})
}

func (s *Service) Punishments() []Punishment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Punishment(nil), s.state.Punishments...)
}
