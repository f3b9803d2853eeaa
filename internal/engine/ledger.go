package engine

// applyDelta credits a session outcome to the player: XP, positive points
// and (non-positive) penalty points. Lifetime totals accumulate absolute
// magnitudes and never shrink.
func applyDelta(p *PlayerStats, xp, positive, negative int) {
	p.TotalXP += xp
	p.PositiveBalance += positive
	p.NegativeBalance += negative
	p.LifetimePositive += positive
	if negative < 0 {
		p.LifetimeNegative += -negative
	}
}

// checkLevelUp applies at most one level per call: an award spanning two
// thresholds only advances one level until the next award re-checks.
func checkLevelUp(p *PlayerStats) bool {
	if p.TotalXP < p.NextLevelXP {
		return false
	}
	p.Level++
	p.NextLevelXP = NextLevelThreshold(p.Level)
	return true
}

// PurchaseResult reports a successful reward purchase.
type PurchaseResult struct {
	Reward  Reward
	Balance int
}

// PurchaseReward spends positive points on a reward. Rejected outright
// with InsufficientBalanceError when the cost exceeds the balance; the
// balance never goes negative.
func (s *Service) PurchaseReward(id string) (*PurchaseResult, error) {
	var res PurchaseResult
	err := s.mutate(func(st *State) error {
		reward := st.rewardByID(id)
		if reward == nil || !reward.Active {
			return NotFoundError{Kind: "reward", ID: id}
		}
		if reward.Cost > st.Player.PositiveBalance {
			return InsufficientBalanceError{Cost: reward.Cost, Balance: st.Player.PositiveBalance}
		}
		st.Player.PositiveBalance -= reward.Cost
		res = PurchaseResult{Reward: *reward, Balance: st.Player.PositiveBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// PunishmentResult reports a completed punishment.
type PunishmentResult struct {
	Punishment  Punishment
	Cleared     int
	Balance     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// CompletePunishment clears negative debt and grants the XP bonus. The
// clear moves the balance toward zero and stops exactly there: a 10-point
// punishment against a -7 balance leaves 0, never +3.
func (s *Service) CompletePunishment(id string) (*PunishmentResult, error) {
	var res PunishmentResult
	err := s.mutate(func(st *State) error {
		pun := st.punishmentByID(id)
		if pun == nil || !pun.Active {
			return NotFoundError{Kind: "punishment", ID: id}
		}

		levelBefore := st.Player.Level
		before := st.Player.NegativeBalance
		after := before + pun.Clears
		if after > 0 {
			after = 0
		}
		st.Player.NegativeBalance = after
		st.Player.TotalXP += pun.XPBonus
		checkLevelUp(&st.Player)

		now := s.now()
		st.Punishlog = append(st.Punishlog, PunishmentCompletion{
			PunishmentID: pun.ID,
			Cleared:      after - before,
			XPBonus:      pun.XPBonus,
			CompletedAt:  now,
		})
		recomputeDailyScore(st, dateKey(now))

		res = PunishmentResult{
			Punishment:  *pun,
			Cleared:     after - before,
			Balance:     after,
			LevelBefore: levelBefore,
			LevelAfter:  st.Player.Level,
			LevelUp:     st.Player.Level > levelBefore,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Player returns the current player snapshot.
func (s *Service) Player() PlayerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.state.Player
	streaks := make(map[string]int, len(p.Streaks))
	for k, v := range p.Streaks {
		streaks[k] = v
	}
	p.Streaks = streaks
	return p
}
