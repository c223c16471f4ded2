package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pookie4u/internal/progress"
	"pookie4u/internal/ui"
)

const maxLogLines = 6

type boardModel struct {
	ctx context.Context
	eng *progress.Engine

	width int

	snap    progress.Snapshot
	loaded  bool
	busy    bool
	log     []string
	confirm bool
}

type loadedMsg struct {
	snap progress.Snapshot
}

type completedMsg struct {
	res  *progress.CompleteResult
	snap progress.Snapshot
	err  error
}

type streakMsg struct {
	res  progress.StreakResult
	snap progress.Snapshot
}

type resetMsg struct {
	snap progress.Snapshot
}

func newBoardModel(ctx context.Context, eng *progress.Engine) boardModel {
	return boardModel{
		ctx: ctx,
		eng: eng,
		log: []string{"Loaded."},
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{snap: m.eng.Snapshot()}
	}
}

func (m boardModel) completeCmd(points int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.CompleteTask(m.ctx, points)
		return completedMsg{res: res, snap: m.eng.Snapshot(), err: err}
	}
}

func (m boardModel) streakCmd() tea.Cmd {
	return func() tea.Msg {
		res := m.eng.UpdateStreak(m.ctx)
		return streakMsg{res: res, snap: m.eng.Snapshot()}
	}
}

func (m boardModel) resetCmd() tea.Cmd {
	return func() tea.Msg {
		m.eng.Reset(m.ctx)
		return resetMsg{snap: m.eng.Snapshot()}
	}
}

func (m *boardModel) logf(format string, args ...any) {
	line := fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	m.log = append(m.log, line)
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case loadedMsg:
		m.snap = msg.snap
		m.loaded = true
		m.busy = false
		return m, nil
	case completedMsg:
		m.busy = false
		if msg.err != nil {
			m.logf("Complete failed: %v", msg.err)
			return m, nil
		}
		m.snap = msg.snap
		exp := msg.res.Experience
		m.logf("+%d points (level %d → %d), streak %d", exp.PointsAwarded, exp.LevelBefore, exp.LevelAfter, msg.res.Streak.StreakAfter)
		if exp.LevelUp {
			m.logf("%s level %d", ui.BadgeLevelUp, exp.LevelAfter)
		}
		for _, id := range msg.res.NewBadges {
			b := progress.LookupBadge(id)
			m.logf("%s Badge unlocked: %s %s", ui.IconTrophy, b.Icon, b.Name)
		}
		return m, nil
	case streakMsg:
		m.busy = false
		m.snap = msg.snap
		if msg.res.Transition == progress.StreakSameDay {
			m.logf("Already active today.")
		} else {
			m.logf("Streak %s: %d", msg.res.Transition, msg.res.StreakAfter)
		}
		return m, nil
	case resetMsg:
		m.busy = false
		m.snap = msg.snap
		m.logf("%s Progress reset.", ui.IconReset)
		return m, nil
	case tea.KeyMsg:
		key := msg.String()
		if m.confirm {
			m.confirm = false
			if key == "y" {
				m.busy = true
				return m, m.resetCmd()
			}
			m.logf("Reset cancelled.")
			return m, nil
		}
		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, m.loadCmd()
		}
		if m.busy {
			return m, nil
		}
		switch key {
		case "d":
			m.busy = true
			return m, m.completeCmd(progress.DailyTaskPoints)
		case "w":
			m.busy = true
			return m, m.completeCmd(progress.WeeklyTaskPoints)
		case "s":
			m.busy = true
			return m, m.streakCmd()
		case "x":
			m.confirm = true
			m.logf("Reset all progress? press y to confirm")
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if !m.loaded {
		return "Pookie4u: loading…\n"
	}

	header := m.renderHeader()
	stats := ui.Panel.Render(m.renderStats())
	badges := ui.Panel.Render(m.renderBadges())
	footer := m.renderFooter()

	return header + "\n" + stats + "\n" + badges + "\n" + footer
}

func (m boardModel) renderHeader() string {
	s := m.snap
	barWidth := 30
	if m.width > 0 && m.width < 60 {
		barWidth = 15
	}
	return fmt.Sprintf("%s | Level %d | %d pts %s %d%%",
		ui.Heading(ui.IconHeart, "Pookie4u"),
		s.CurrentLevel,
		s.TotalPoints,
		ui.ProgressBar(s.ProgressPercent(), barWidth),
		s.ProgressPercent(),
	)
}

func (m boardModel) renderStats() string {
	s := m.snap
	lines := []string{
		ui.PanelTitle.Render("Progress"),
		ui.LabelValue("Next level in", fmt.Sprintf("%d pts", s.PointsToNextLevel())),
		ui.LabelValue("Streak", ui.StreakText(s.CurrentStreak)),
		ui.LabelValue("Longest", fmt.Sprintf("%d days", s.LongestStreak)),
		ui.LabelValue("Tasks done", s.TasksCompleted),
		ui.LabelValue("Active days", s.ActiveDays),
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderBadges() string {
	lines := []string{ui.PanelTitle.Render(fmt.Sprintf("Badges %d/%d", progress.CountEarned(m.snap), len(progress.BadgeCatalog())))}
	for _, a := range progress.Achievements(m.snap) {
		icon := a.Icon
		if !a.Earned {
			icon = ui.IconLock
		}
		lines = append(lines, fmt.Sprintf("%s %s", icon, a.Name))
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderFooter() string {
	keys := ui.Muted.Render(fmt.Sprintf("d: daily task (+%d) · w: weekly task (+%d) · s: streak check · x: reset · r: refresh · q: quit",
		progress.DailyTaskPoints, progress.WeeklyTaskPoints))
	return strings.Join(m.log, "\n") + "\n\n" + keys
}
