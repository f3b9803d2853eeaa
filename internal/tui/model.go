package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saportinsta65/life-rpg/internal/engine"
	"github.com/saportinsta65/life-rpg/internal/ui"
)

type timerModel struct {
	svc *engine.Service

	width  int
	height int

	lastLog string
	done    bool
	result  *engine.StopResult
	err     error
}

type tickMsg time.Time

type stoppedMsg struct {
	res *engine.StopResult
	err error
}

func newTimerModel(svc *engine.Service) timerModel {
	return timerModel{svc: svc, lastLog: "Timer armed."}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m timerModel) Init() tea.Cmd {
	return tickCmd()
}

func (m timerModel) stopCmd(completed bool) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.StopTimer(completed, "")
		return stoppedMsg{res: res, err: err}
	}
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.svc.Tick()
		return m, tickCmd()
	case stoppedMsg:
		if msg.err != nil {
			m.lastLog = "Stop failed: " + msg.err.Error()
			return m, nil
		}
		m.done = true
		m.result = msg.res
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case " ", "p":
			t := m.svc.TimerState()
			switch t.Phase {
			case engine.TimerRunning:
				if err := m.svc.PauseTimer(); err != nil {
					m.lastLog = err.Error()
				} else {
					m.lastLog = "Paused."
				}
			case engine.TimerPaused:
				if err := m.svc.ResumeTimer(); err != nil {
					m.lastLog = err.Error()
				} else {
					m.lastLog = "Resumed."
				}
			}
			return m, nil
		case "c":
			m.lastLog = "Stopping…"
			return m, m.stopCmd(true)
		case "f":
			m.lastLog = "Abandoning…"
			return m, m.stopCmd(false)
		case "x":
			if err := m.svc.ResetTimer(); err != nil {
				m.lastLog = err.Error()
				return m, nil
			}
			m.done = true
			m.lastLog = "Timer reset, nothing recorded."
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.done {
		return m.renderSummary()
	}

	t := m.svc.TimerState()

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTimer, t.TaskTitle) + "\n\n")
	b.WriteString("  " + ui.Gold.Render(ui.Clock(t.ElapsedSec)))
	if t.TargetSec > 0 {
		b.WriteString(ui.Muted.Render(" / " + ui.Clock(t.TargetSec)))
		b.WriteString("  " + ui.ProgressBar(t.ElapsedSec, t.TargetSec, 30))
	}
	b.WriteString("\n\n")

	switch t.Phase {
	case engine.TimerPaused:
		b.WriteString("  " + ui.Warn.Render("PAUSED") + "\n")
	case engine.TimerRunning:
		b.WriteString("  " + ui.Good.Render("RUNNING") + "\n")
	default:
		b.WriteString("  " + ui.Muted.Render("IDLE") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("  space pause/resume · c complete · f fail · x reset · q quit") + "\n")
	b.WriteString("\n  " + ui.Muted.Render(m.lastLog) + "\n")
	return b.String()
}

func (m timerModel) renderSummary() string {
	if m.result == nil {
		return m.lastLog + "\n"
	}
	res := m.result
	var b strings.Builder
	if res.Session.TaskID == engine.FreeTimerTaskID {
		b.WriteString(ui.Heading(ui.IconTimer, "Timer stopped") + "\n")
		b.WriteString(fmt.Sprintf("  Duration: %d min\n", res.Session.DurationMin))
		return b.String()
	}
	if res.Success {
		b.WriteString(ui.Heading(ui.IconDone, "Task completed!") + "\n")
		b.WriteString(fmt.Sprintf("  %s +%d XP   %s +%d points\n", ui.IconXP, res.Session.XPEarned, ui.IconCoin, res.Session.RewardClaimed))
		if res.StreakKey != "" {
			b.WriteString(fmt.Sprintf("  %s %s: %d days\n", ui.IconStreak, res.StreakKey, res.StreakDays))
		}
	} else {
		b.WriteString(ui.Heading(ui.IconFail, "Task failed") + "\n")
		b.WriteString(fmt.Sprintf("  %s %d points\n", ui.IconDebt, res.Session.PenaltyApplied))
	}
	if res.LevelUp {
		b.WriteString("  " + ui.BadgeLevelUp + fmt.Sprintf(" → level %d\n", res.LevelAfter))
	}
	return b.String()
}
