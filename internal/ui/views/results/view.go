package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	quizdto "leseheft/internal/modules/quiz/dto"
	"leseheft/internal/ui/locale"
	"leseheft/internal/ui/theme"
)

// Model renders the summary screen of a finished attempt.
type Model struct {
	tr      locale.Translations
	attempt quizdto.AttemptView
	width   int
	height  int
}

func New(tr locale.Translations) Model {
	return Model{tr: tr}
}

func (m *Model) SetAttempt(view quizdto.AttemptView) {
	m.attempt = view
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	return m, nil
}

func (m Model) View() string {
	a := m.attempt
	if a.TotalQuestions == 0 {
		return ""
	}

	scoreStyle := theme.Correct
	if a.Score < 60 {
		scoreStyle = theme.Wrong
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.tr.TextCompleted) + "  " + theme.Muted.Render(a.TextTitle) + "\n\n")
	sb.WriteString(scoreStyle.Render(fmt.Sprintf("%d%%", a.Score)) + "  " +
		fmt.Sprintf(m.tr.QuestionsCorrect, a.CorrectCount, a.TotalQuestions) + "\n")
	sb.WriteString(theme.Muted.Render(m.tr.TotalTime+": ") + formatSeconds(a.TotalTime))
	if a.TotalQuestions > 0 {
		sb.WriteString("   " + theme.Muted.Render(m.tr.PerQuestion+": ") +
			formatSeconds(a.TotalTime/a.TotalQuestions))
	}
	sb.WriteString("\n\n" + m.tr.Performance(a.Score) + "\n\n")

	sb.WriteString(theme.Title.Render(m.tr.DetailedResults) + "\n")
	for i, answer := range a.Answers {
		mark := theme.Correct.Render("✓")
		if !answer.IsCorrect {
			mark = theme.Wrong.Render("✗")
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s  %s\n",
			mark, i+1, answer.QuestionID,
			theme.Muted.Render(fmt.Sprintf(m.tr.AnswerTime, answer.TimeSpent))))
	}

	sb.WriteString("\n" + theme.Muted.Render("r: "+m.tr.TryAgain+"   enter/esc: "+m.tr.OtherTexts))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(sb.String())
}

func formatSeconds(total int) string {
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}
