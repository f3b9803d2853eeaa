package engine

import "time"

// dateKey formats a timestamp as the calendar-date key daily scores are
// grouped by.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// recomputeDailyScore rebuilds the score for one date from scratch out of
// the session and punishment logs. Replaces any existing entry, so calling
// it repeatedly over the same logs is idempotent.
func recomputeDailyScore(st *State, date string) {
	score := DailyScore{Date: date}
	for i := range st.Sessions {
		sess := &st.Sessions[i]
		if dateKey(sess.StartedAt) != date {
			continue
		}
		score.PositivePoints += sess.RewardClaimed
		score.NegativePoints += sess.PenaltyApplied
		score.TotalXPEarned += sess.XPEarned
		if sess.Completed {
			score.TasksCompleted++
		} else {
			score.TasksFailed++
		}
	}
	// Penalties are stored non-positive, so the net is a plain sum.
	score.NetScore = score.PositivePoints + score.NegativePoints

	for i := range st.Punishlog {
		if dateKey(st.Punishlog[i].CompletedAt) == date {
			score.PunishmentsDone++
		}
	}

	for i := range st.DailyScores {
		if st.DailyScores[i].Date == date {
			st.DailyScores[i] = score
			return
		}
	}
	st.DailyScores = append(st.DailyScores, score)
}

// RecomputeDailyScore rebuilds the daily score for a date key (YYYY-MM-DD)
// on demand. Stops and punishment completions already trigger this for the
// dates they touch.
func (s *Service) RecomputeDailyScore(date string) error {
	return s.mutate(func(st *State) error {
		recomputeDailyScore(st, date)
		return nil
	})
}

// DailyScoreFor returns the stored score for a date key, if present.
func (s *Service) DailyScoreFor(date string) (DailyScore, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.DailyScores {
		if s.state.DailyScores[i].Date == date {
			return s.state.DailyScores[i], true
		}
	}
	return DailyScore{}, false
}

// Sessions returns the session log, oldest first.
func (s *Service) Sessions() []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Session(nil), s.state.Sessions...)
}

// SessionsOn returns the sessions whose start falls on the given date key.
func (s *Service) SessionsOn(date string) []Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Session
	for i := range s.state.Sessions {
		if dateKey(s.state.Sessions[i].StartedAt) == date {
			out = append(out, s.state.Sessions[i])
		}
	}
	return out
}

// DailyScores returns all stored daily scores.
func (s *Service) DailyScores() []DailyScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]DailyScore(nil), s.state.DailyScores...)
}
