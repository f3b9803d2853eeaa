package engine

// StopResult reports what a finished timer run earned or lost.
type StopResult struct {
	Session     Session
	Success     bool
	StreakKey   string
	StreakDays  int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// successRatio is the minimum duration/target ratio a completed session
// must reach to count as a success.
const successRatio = 0.8

// TimerState returns the current timer snapshot.
func (s *Service) TimerState() Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Timer
}

// StartTimer arms the timer for an active task. Fails with
// InvalidTimerStateError when a timer is already running or paused, and
// NotFoundError when the task is unknown or inactive.
func (s *Service) StartTimer(taskID string) error {
	return s.mutate(func(st *State) error {
		if st.Timer.Phase != TimerIdle {
			return InvalidTimerStateError{Op: "start", Phase: st.Timer.Phase}
		}
		task := st.taskByID(taskID)
		if task == nil || !task.Active {
			return NotFoundError{Kind: "task", ID: taskID}
		}
		st.Timer = Timer{
			Phase:     TimerRunning,
			TaskID:    task.ID,
			TaskTitle: task.Title,
			StartedAt: s.now(),
			TargetSec: task.TargetMin * 60,
		}
		return nil
	})
}

// StartFreeTimer arms the timer without a task. The resulting session
// records duration only: no reward, penalty, or XP.
func (s *Service) StartFreeTimer(title string) error {
	return s.mutate(func(st *State) error {
		if st.Timer.Phase != TimerIdle {
			return InvalidTimerStateError{Op: "start", Phase: st.Timer.Phase}
		}
		if title == "" {
			title = "Free timer"
		}
		st.Timer = Timer{
			Phase:     TimerRunning,
			TaskID:    FreeTimerTaskID,
			TaskTitle: title,
			StartedAt: s.now(),
		}
		return nil
	})
}

// Tick advances the elapsed counter by one second. Driven by the external
// 1-second clock; a no-op unless the timer is running.
func (s *Service) Tick() {
	_ = s.mutate(func(st *State) error {
		if st.Timer.Phase != TimerRunning {
			return nil
		}
		st.Timer.ElapsedSec++
		return nil
	})
}

func (s *Service) PauseTimer() error {
	return s.mutate(func(st *State) error {
		if st.Timer.Phase != TimerRunning {
			return InvalidTimerStateError{Op: "pause", Phase: st.Timer.Phase}
		}
		st.Timer.Phase = TimerPaused
		return nil
	})
}

func (s *Service) ResumeTimer() error {
	return s.mutate(func(st *State) error {
		if st.Timer.Phase != TimerPaused {
			return InvalidTimerStateError{Op: "resume", Phase: st.Timer.Phase}
		}
		st.Timer.Phase = TimerRunning
		return nil
	})
}

// ResetTimer discards the run without recording a session. Valid in any
// phase.
func (s *Service) ResetTimer() error {
	return s.mutate(func(st *State) error {
		st.Timer = Timer{Phase: TimerIdle}
		return nil
	})
}

// StopTimer ends the run, appends a session, applies the ledger outcome
// and recomputes the daily score for the session's start date.
//
// A completed run succeeds when its duration reaches 80% of the task
// target; success awards XP and positive points and increments the task's
// streak. Anything else applies the task penalty and leaves the streak
// untouched. Free-timer runs, and runs whose task no longer exists, only
// record the session.
func (s *Service) StopTimer(completed bool, notes string) (*StopResult, error) {
	var res StopResult
	err := s.mutate(func(st *State) error {
		if st.Timer.Phase != TimerRunning && st.Timer.Phase != TimerPaused {
			return InvalidTimerStateError{Op: "stop", Phase: st.Timer.Phase}
		}

		durationMin := st.Timer.ElapsedSec / 60
		sess := Session{
			ID:          s.newID("session"),
			TaskID:      st.Timer.TaskID,
			TaskTitle:   st.Timer.TaskTitle,
			StartedAt:   st.Timer.StartedAt,
			EndedAt:     s.now(),
			DurationMin: durationMin,
			Completed:   completed,
			Notes:       notes,
		}

		if st.Timer.TaskID == FreeTimerTaskID {
			st.Sessions = append(st.Sessions, sess)
			st.Timer = Timer{Phase: TimerIdle}
			recomputeDailyScore(st, dateKey(sess.StartedAt))
			res = StopResult{Session: sess, LevelBefore: st.Player.Level, LevelAfter: st.Player.Level}
			return nil
		}

		// The task may have been deleted mid-run; the timer carries its own
		// title snapshot, so keep the time and drop the outcome.
		task := st.taskByID(st.Timer.TaskID)
		if task == nil {
			st.Sessions = append(st.Sessions, sess)
			st.Timer = Timer{Phase: TimerIdle}
			recomputeDailyScore(st, dateKey(sess.StartedAt))
			res = StopResult{Session: sess, LevelBefore: st.Player.Level, LevelAfter: st.Player.Level}
			return nil
		}

		ratio := float64(durationMin) / float64(task.TargetMin)
		success := completed && ratio >= successRatio

		levelBefore := st.Player.Level
		streakDays := 0
		if success {
			if task.StreakKey != "" {
				streakDays = st.Player.Streaks[task.StreakKey]
			}
			sess.XPEarned = ComputeXP(*task, durationMin, streakDays)
			sess.RewardClaimed = task.RewardPositive
			if task.StreakKey != "" {
				st.Player.Streaks[task.StreakKey] = streakDays + 1
				streakDays++
			}
		} else {
			sess.PenaltyApplied = task.PenaltyNegative
		}

		st.Sessions = append(st.Sessions, sess)
		applyDelta(&st.Player, sess.XPEarned, sess.RewardClaimed, sess.PenaltyApplied)
		st.Timer = Timer{Phase: TimerIdle}
		checkLevelUp(&st.Player)
		recomputeDailyScore(st, dateKey(sess.StartedAt))

		res = StopResult{
			Session:     sess,
			Success:     success,
			StreakKey:   task.StreakKey,
			StreakDays:  streakDays,
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
