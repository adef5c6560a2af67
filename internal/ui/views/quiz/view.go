package quiz

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	quizdto "leseheft/internal/modules/quiz/dto"
	"leseheft/internal/ui/locale"
	"leseheft/internal/ui/theme"
)

// QuizPort is the slice of the quiz usecase this view drives.
type QuizPort interface {
	Select(ctx context.Context, option int) (quizdto.AttemptView, bool, error)
	Submit(ctx context.Context) (quizdto.AttemptView, bool, error)
	Advance(ctx context.Context) (quizdto.AttemptView, bool, error)
	Retreat(ctx context.Context) (quizdto.AttemptView, bool, error)
}

// TransitionMsg carries the attempt snapshot after an operation. The app
// model inspects it too, to leave the question screen once the attempt
// finishes.
type TransitionMsg struct {
	View quizdto.AttemptView
	OK   bool
	Err  error
}

type Model struct {
	port    QuizPort
	tr      locale.Translations
	attempt quizdto.AttemptView
	width   int
	height  int
}

func New(port QuizPort, tr locale.Translations) Model {
	return Model{port: port, tr: tr}
}

// SetAttempt replaces the rendered snapshot.
func (m *Model) SetAttempt(view quizdto.AttemptView) {
	m.attempt = view
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TransitionMsg:
		if msg.Err == nil {
			m.attempt = msg.View
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	answering := m.attempt.Phase == "answering"
	explained := m.attempt.Phase == "explained"

	switch key := msg.String(); key {
	case "up", "k":
		if answering {
			return m, m.selectCmd(m.prevOption())
		}
	case "down", "j":
		if answering {
			return m, m.selectCmd(m.nextOption())
		}
	case "1", "2", "3", "4", "5", "6":
		if answering {
			n, _ := strconv.Atoi(key)
			return m, m.selectCmd(n - 1)
		}
	case "enter":
		if answering {
			return m, m.opCmd(m.port.Submit)
		}
		if explained {
			return m, m.opCmd(m.port.Advance)
		}
	case "left", "p":
		if answering || explained {
			return m, m.opCmd(m.port.Retreat)
		}
	case "right", "n":
		if explained {
			return m, m.opCmd(m.port.Advance)
		}
	}
	return m, nil
}

func (m Model) View() string {
	a := m.attempt
	if a.TotalQuestions == 0 {
		return theme.Muted.Render(m.tr.ChooseText)
	}

	var out string
	out += theme.Title.Render(fmt.Sprintf(m.tr.QuestionXOfY, a.Index+1, a.TotalQuestions))
	out += "  " + theme.Muted.Render(a.TextTitle) + "\n\n"
	out += a.Question.Prompt + "\n\n"
	out += m.renderOptions()
	out += m.renderVerdict()
	out += "\n" + m.renderHints()

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Render(out)
}

func (m Model) renderOptions() string {
	a := m.attempt
	var out string
	for i, option := range a.Question.Options {
		marker := "  "
		line := fmt.Sprintf("%d. %s", i+1, option)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case a.Phase == "explained" && i == a.Question.CorrectAnswer:
			marker = "✓ "
			style = theme.Correct
		case a.Phase == "explained" && i == a.Pending && i != a.Question.CorrectAnswer:
			marker = "✗ "
			style = theme.Wrong
		case a.Phase == "answering" && i == a.Pending:
			marker = "> "
			style = lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true)
		}
		out += style.Render(marker+line) + "\n"
	}
	return out
}

func (m Model) renderVerdict() string {
	a := m.attempt
	if a.Phase != "explained" {
		return ""
	}
	var out string
	if a.Pending == a.Question.CorrectAnswer {
		out = "\n" + theme.Correct.Render(m.tr.Correct) + "\n"
	} else {
		out = "\n" + theme.Wrong.Render(m.tr.Incorrect) + "\n"
	}
	if a.Question.Explanation != "" {
		out += theme.Muted.Render(m.tr.Explanation) + " " + a.Question.Explanation + "\n"
	}
	return out
}

func (m Model) renderHints() string {
	switch m.attempt.Phase {
	case "answering":
		return theme.Muted.Render("↑/↓ 1-4: wählen   enter: " + m.tr.ConfirmAnswer + "   ←: " + m.tr.Previous)
	case "explained":
		label := m.tr.NextQuestion
		if m.attempt.Index == m.attempt.TotalQuestions-1 {
			label = m.tr.Finish
		}
		return theme.Muted.Render("enter: " + label + "   ←: " + m.tr.Previous)
	}
	return ""
}

func (m Model) prevOption() int {
	if m.attempt.Pending <= 0 {
		return len(m.attempt.Question.Options) - 1
	}
	return m.attempt.Pending - 1
}

func (m Model) nextOption() int {
	if m.attempt.Pending < 0 || m.attempt.Pending == len(m.attempt.Question.Options)-1 {
		return 0
	}
	return m.attempt.Pending + 1
}

func (m Model) selectCmd(option int) tea.Cmd {
	return func() tea.Msg {
		view, ok, err := m.port.Select(context.Background(), option)
		return TransitionMsg{View: view, OK: ok, Err: err}
	}
}

func (m Model) opCmd(op func(context.Context) (quizdto.AttemptView, bool, error)) tea.Cmd {
	return func() tea.Msg {
		view, ok, err := op(context.Background())
		return TransitionMsg{View: view, OK: ok, Err: err}
	}
}
