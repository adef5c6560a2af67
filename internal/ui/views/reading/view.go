package reading

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "leseheft/internal/modules/catalog/dto"
	"leseheft/internal/ui/locale"
	"leseheft/internal/ui/theme"
)

// Model shows the study text in a scrollable viewport with a footer
// inviting the reader to start the questions.
type Model struct {
	tr     locale.Translations
	text   catalogdto.TextDetailOutput
	body   viewport.Model
	width  int
	height int
}

func New(tr locale.Translations) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1, 2)
	return Model{tr: tr, body: vp}
}

// SetText loads a text into the viewport and scrolls to the top.
func (m *Model) SetText(text catalogdto.TextDetailOutput) {
	m.text = text
	m.body.SetContent(m.renderBody())
	m.body.GotoTop()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 4
		m.body.SetContent(m.renderBody())
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	footer := theme.Hot.Render(m.tr.ReadyForQuestions) + "  " +
		theme.Muted.Render(fmt.Sprintf(m.tr.TestUnderstanding, len(m.text.Questions))) + "\n" +
		theme.Muted.Render("enter: "+m.tr.StartQuestions+"   esc: "+m.tr.BackToList)
	return lipgloss.JoinVertical(lipgloss.Left, m.body.View(), footer)
}

func (m Model) renderBody() string {
	if m.text.ID == "" {
		return theme.Muted.Render(m.tr.ChooseText)
	}
	header := theme.Title.Render(m.text.Title) + "\n" +
		theme.Muted.Render(fmt.Sprintf("%s · %s %s · %d %s",
			m.tr.TextType(m.text.Type), m.tr.GoetheLevel, m.text.Level,
			m.text.WordCount, m.tr.WordCount))
	return header + "\n\n" + m.text.Content
}
