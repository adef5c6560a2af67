package texts

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "leseheft/internal/modules/catalog/dto"
	"leseheft/internal/ui/locale"
	"leseheft/internal/ui/theme"
)

type CatalogPort interface {
	ListTexts(ctx context.Context) ([]catalogdto.TextOutput, error)
	GetText(ctx context.Context, id string) (catalogdto.TextDetailOutput, error)
}

type ProgressPort interface {
	BestScore(ctx context.Context, textID string) (int, error)
	HasCompleted(ctx context.Context, textID string) (bool, error)
}

// entry pairs a catalog text with its progress markers.
type entry struct {
	text      catalogdto.TextOutput
	best      int
	completed bool
}

type TextsLoadedMsg struct {
	Entries []entry
	Err     error
}

type DetailLoadedMsg struct {
	Detail catalogdto.TextDetailOutput
	Err    error
}

type textItem struct {
	entry entry
	tr    locale.Translations
}

func (i textItem) Title() string {
	title := i.entry.text.Title
	if i.entry.completed {
		title += "  ✓"
	}
	return title
}

func (i textItem) Description() string {
	desc := fmt.Sprintf("%s · %d %s · %d %s",
		i.tr.TextType(i.entry.text.Type),
		i.entry.text.WordCount, i.tr.WordCount,
		i.entry.text.QuestionCount, i.tr.Questions)
	if i.entry.completed {
		desc += fmt.Sprintf(" · %s: %d%%", i.tr.BestScore, i.entry.best)
	}
	return desc
}

func (i textItem) FilterValue() string { return i.entry.text.Title }

type Model struct {
	catalog  CatalogPort
	progress ProgressPort
	tr       locale.Translations
	list     list.Model
	detail   catalogdto.TextDetailOutput
	preview  viewport.Model
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(catalog CatalogPort, progress ProgressPort, tr locale.Translations) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = tr.Texts
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		catalog:  catalog,
		progress: progress,
		tr:       tr,
		list:     l,
		preview:  vp,
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTextsCmd(), m.spinner.Tick)
}

// Reload refetches the catalog, picking up new best scores after a
// finished attempt.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadTextsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case TextsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = m.tr.Texts + " — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = textItem{entry: e, tr: m.tr}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Entries) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Entries[0].text.ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(textItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.entry.text.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+m.tr.Texts+"…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedTextID returns the current selection's text ID, if any.
func (m Model) SelectedTextID() (string, bool) {
	if item, ok := m.list.SelectedItem().(textItem); ok {
		return item.entry.text.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render(m.tr.ChooseText)
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render(m.tr.GoetheLevel+": ") + d.Level + "\n")
	sb.WriteString(fmt.Sprintf("%s%s\n", theme.Muted.Render("Typ: "), m.tr.TextType(d.Type)))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render(m.tr.WordCount+": "), d.WordCount))
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render(m.tr.Questions+": "), len(d.Questions)))

	preview := d.Content
	if runes := []rune(preview); len(runes) > 400 {
		preview = string(runes[:400]) + "…"
	}
	sb.WriteString("\n" + preview + "\n")
	return sb.String()
}

func (m Model) loadTextsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		texts, err := m.catalog.ListTexts(ctx)
		if err != nil {
			return TextsLoadedMsg{Err: err}
		}
		entries := make([]entry, len(texts))
		for i, text := range texts {
			entries[i] = entry{text: text}
			if m.progress == nil {
				continue
			}
			if done, err := m.progress.HasCompleted(ctx, text.ID); err == nil && done {
				entries[i].completed = true
				if best, err := m.progress.BestScore(ctx, text.ID); err == nil {
					entries[i].best = best
				}
			}
		}
		return TextsLoadedMsg{Entries: entries}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.catalog.GetText(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
