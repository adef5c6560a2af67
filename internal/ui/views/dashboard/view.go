package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "leseheft/internal/modules/progress/dto"
	"leseheft/internal/ui/locale"
	"leseheft/internal/ui/theme"
)

type ProgressPort interface {
	Stats(ctx context.Context) (progressdto.StatsOutput, error)
	RecentSessions(ctx context.Context, limit int) ([]progressdto.SessionOutput, error)
}

type StatsLoadedMsg struct {
	Stats  progressdto.StatsOutput
	Recent []progressdto.SessionOutput
	Err    error
}

type Model struct {
	port   ProgressPort
	tr     locale.Translations
	limit  int
	stats  progressdto.StatsOutput
	recent []progressdto.SessionOutput
	err    error
	width  int
	height int
}

func New(port ProgressPort, tr locale.Translations, recentLimit int) Model {
	return Model{port: port, tr: tr, limit: recentLimit}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Refresh refetches stats, typically after a finished attempt.
func (m Model) Refresh() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StatsLoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.recent = msg.Recent
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Muted.Render(m.err.Error())
	}
	s := m.stats

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.tr.Progress) + "\n\n")
	sb.WriteString(statLine(m.tr.TotalSessions, fmt.Sprintf("%d", s.TotalSessions)))
	sb.WriteString(statLine(m.tr.AverageScore, fmt.Sprintf("%d%%", s.AverageScore)))
	sb.WriteString(statLine(m.tr.TextsCompleted, fmt.Sprintf("%d", len(s.TextsCompleted))))
	sb.WriteString(statLine(m.tr.DayStreak, fmt.Sprintf("%d", s.StreakDays)))
	sb.WriteString(statLine(m.tr.CorrectAnswers, fmt.Sprintf("%d / %d", s.TotalCorrectAnswers, s.TotalQuestions)))
	sb.WriteString(statLine(m.tr.TotalTimeSpent, formatSeconds(s.TotalTimeSpent)))

	sb.WriteString("\n" + theme.Title.Render(m.tr.RecentActivity) + "\n")
	if len(m.recent) == 0 {
		sb.WriteString(theme.Muted.Render(m.tr.NoActivityYet) + "\n")
	}
	for _, session := range m.recent {
		scoreStyle := theme.Correct
		if session.Score < 60 {
			scoreStyle = theme.Wrong
		}
		sb.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			theme.Muted.Render(session.CompletedAt.Format("2006-01-02 15:04")),
			scoreStyle.Render(fmt.Sprintf("%3d%%", session.Score)),
			session.TextTitle,
			theme.Muted.Render(m.tr.TextType(session.TextType))))
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(sb.String())
}

func statLine(label, value string) string {
	return theme.Muted.Render(fmt.Sprintf("%-28s", label)) + theme.Hot.Render(value) + "\n"
}

func formatSeconds(total int) string {
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	if total < 3600 {
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	}
	return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.port.Stats(ctx)
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		recent, err := m.port.RecentSessions(ctx, m.limit)
		if err != nil {
			return StatsLoadedMsg{Err: err}
		}
		return StatsLoadedMsg{Stats: stats, Recent: recent}
	}
}
