package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "leseheft/internal/modules/catalog/dto"
	progressdto "leseheft/internal/modules/progress/dto"
	quizdto "leseheft/internal/modules/quiz/dto"
	apperrors "leseheft/internal/platform/errors"
	"leseheft/internal/ui/components"
	"leseheft/internal/ui/locale"
	"leseheft/internal/ui/theme"
	dashboardview "leseheft/internal/ui/views/dashboard"
	quizview "leseheft/internal/ui/views/quiz"
	readingview "leseheft/internal/ui/views/reading"
	resultsview "leseheft/internal/ui/views/results"
	textsview "leseheft/internal/ui/views/texts"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	ListTexts(ctx context.Context) ([]catalogdto.TextOutput, error)
	GetText(ctx context.Context, id string) (catalogdto.TextDetailOutput, error)
	Seed(ctx context.Context) (catalogdto.SeedOutput, error)
}

type quizPort interface {
	Begin(ctx context.Context, textID string) (quizdto.AttemptView, error)
	Resume(ctx context.Context) (quizdto.AttemptView, error)
	StartQuestions(ctx context.Context) (quizdto.AttemptView, bool, error)
	Select(ctx context.Context, option int) (quizdto.AttemptView, bool, error)
	Submit(ctx context.Context) (quizdto.AttemptView, bool, error)
	Advance(ctx context.Context) (quizdto.AttemptView, bool, error)
	Retreat(ctx context.Context) (quizdto.AttemptView, bool, error)
	Abandon(ctx context.Context) error
}

type progressPort interface {
	Stats(ctx context.Context) (progressdto.StatsOutput, error)
	RecentSessions(ctx context.Context, limit int) ([]progressdto.SessionOutput, error)
	BestScore(ctx context.Context, textID string) (int, error)
	HasCompleted(ctx context.Context, textID string) (bool, error)
	ExportAll(ctx context.Context) (string, error)
	ClearAll(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTexts tabID = iota
	tabProgress
	tabCount
)

// ─── practice mode ───────────────────────────────────────────────────────────
// The Texts tab walks through the practice flow: pick a text, read it,
// answer its questions, see the result.

type practiceMode int

const (
	modeList practiceMode = iota
	modeReading
	modeQuestions
	modeResults
)

// ─── async messages ───────────────────────────────────────────────────────────

type attemptStartedMsg struct {
	view   quizdto.AttemptView
	detail catalogdto.TextDetailOutput
	err    error
}

type resumeProbeMsg struct {
	view   quizdto.AttemptView
	detail catalogdto.TextDetailOutput
	err    error
}

type quizStartedMsg struct{ view quizdto.AttemptView }

type abandonedMsg struct{ err error }

type exportDoneMsg struct {
	path string
	err  error
}

type resetDoneMsg struct{ err error }

type seedDoneMsg struct {
	out catalogdto.SeedOutput
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Back    key.Binding
	Retry   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open / confirm")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Retry:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Back},
		{k.Retry},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the practice
// flow, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering is delegated to
// sub-views.
type Model struct {
	dataDir     string
	recentLimit int

	catalog  catalogPort
	quiz     quizPort
	progress progressPort

	tr        locale.Translations
	textsView textsview.Model
	readView  readingview.Model
	quizView  quizview.Model
	resView   resultsview.Model
	dashView  dashboardview.Model

	activeTab tabID
	mode      practiceMode
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(
	dataDir, localeCode string,
	recentLimit int,
	catalog catalogPort,
	quiz quizPort,
	progress progressPort,
) Model {
	tr := locale.For(localeCode)
	return Model{
		dataDir:     dataDir,
		recentLimit: recentLimit,
		catalog:     catalog,
		quiz:        quiz,
		progress:    progress,
		tr:          tr,
		textsView:   textsview.New(catalogPortBridge{p: catalog}, progressPortBridge{p: progress}, tr),
		readView:    readingview.New(tr),
		quizView:    quizview.New(quizPortBridge{p: quiz}, tr),
		resView:     resultsview.New(tr),
		dashView:    dashboardview.New(dashPortBridge{p: progress}, tr, recentLimit),
		activeTab:   tabTexts,
		mode:        modeList,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "bereit",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.textsView.Init(),
		m.dashView.Init(),
		m.resumeProbeCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case resumeProbeMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNoCurrentSession) {
				m.status = "resume: " + msg.err.Error()
			}
			return m, nil
		}
		m.status = m.tr.SessionResumed + ": " + msg.view.TextTitle
		m.readView.SetText(msg.detail)
		m.quizView.SetAttempt(msg.view)
		if msg.view.Phase == "reading" {
			m.mode = modeReading
		} else {
			m.mode = modeQuestions
		}
		return m, nil

	case quizStartedMsg:
		m.quizView.SetAttempt(msg.view)
		m.mode = modeQuestions
		return m, nil

	case attemptStartedMsg:
		if msg.err != nil {
			m.status = "start: " + msg.err.Error()
			return m, nil
		}
		m.readView.SetText(msg.detail)
		m.quizView.SetAttempt(msg.view)
		m.mode = modeReading
		m.status = msg.detail.Title
		return m, nil

	case quizview.TransitionMsg:
		if msg.Err != nil {
			m.status = "quiz: " + msg.Err.Error()
			return m, nil
		}
		if msg.View.Phase == "finished" {
			m.resView.SetAttempt(msg.View)
			m.mode = modeResults
			m.status = fmt.Sprintf("%d%%", msg.View.Score)
			return m, tea.Batch(m.dashView.Refresh(), m.textsView.Reload())
		}
		var cmd tea.Cmd
		m.quizView, cmd = m.quizView.Update(msg)
		return m, cmd

	case abandonedMsg:
		if msg.err != nil {
			m.status = "abandon: " + msg.err.Error()
		} else {
			m.status = m.tr.SessionAbandoned
		}
		m.mode = modeList
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf(m.tr.ExportedTo, msg.path)
		}
		return m, nil

	case resetDoneMsg:
		if msg.err != nil {
			m.status = "reset: " + msg.err.Error()
			return m, nil
		}
		m.status = m.tr.DataCleared
		m.mode = modeList
		return m, tea.Batch(m.dashView.Refresh(), m.textsView.Reload())

	case seedDoneMsg:
		if msg.err != nil {
			m.status = "seed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("seed: %d neu, %d vorhanden", len(msg.out.Written), len(msg.out.Skipped))
		return m, m.textsView.Reload()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "bereit"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabTexts && m.mode == modeList && m.textsView.Filtering() {
			break
		}
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}
	}

	// Propagate the message to the active sub-view.
	var tabCmd tea.Cmd
	switch {
	case m.activeTab == tabProgress:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case m.mode == modeList:
		m.textsView, tabCmd = m.textsView.Update(msg)
	case m.mode == modeReading:
		m.readView, tabCmd = m.readView.Update(msg)
	case m.mode == modeQuestions:
		m.quizView, tabCmd = m.quizView.Update(msg)
	case m.mode == modeResults:
		m.resView, tabCmd = m.resView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit, true
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil, true
	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		return m, nil, true
	case "?":
		m.showHelp = !m.showHelp
		return m, nil, true
	case ":":
		return m, m.palette.Open(), true
	}

	if m.activeTab != tabTexts {
		return m, nil, false
	}

	switch m.mode {
	case modeList:
		if msg.String() == "enter" {
			if id, ok := m.textsView.SelectedTextID(); ok {
				return m, m.startAttemptCmd(id), true
			}
		}
	case modeReading:
		switch msg.String() {
		case "enter", "s":
			return m, m.startQuestionsCmd(), true
		case "esc":
			return m, m.abandonCmd(), true
		}
	case modeQuestions:
		if msg.String() == "esc" {
			return m, m.abandonCmd(), true
		}
	case modeResults:
		switch msg.String() {
		case "r":
			if id, ok := m.textsView.SelectedTextID(); ok {
				return m, m.startAttemptCmd(id), true
			}
		case "enter", "esc":
			m.mode = modeList
			return m, nil, true
		}
	}
	return m, nil, false
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	if m.activeTab == tabProgress {
		return m.dashView.View()
	}
	switch m.mode {
	case modeReading:
		return m.readView.View()
	case modeQuestions:
		return m.quizView.View()
	case modeResults:
		return m.resView.View()
	default:
		return m.textsView.View()
	}
}

func (m Model) renderTabBar() string {
	labels := [tabCount]string{m.tr.Texts, m.tr.Progress}
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + labels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + labels[i] + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "leseheft  " + strings.Join(parts, sep) + "  " + theme.Muted.Render(m.tr.AppSubtitle)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "quiz:start":
		if id, ok := m.textsView.SelectedTextID(); ok {
			return m, m.startAttemptCmd(id)
		}
		m.status = "kein Text ausgewählt"
		return m, nil

	case "quiz:resume":
		return m, m.resumeProbeCmd()

	case "quiz:abandon":
		return m, m.abandonCmd()

	case "progress:export":
		path := filepath.Join(m.dataDir, "leseheft-export.json")
		if len(parts) >= 2 {
			path = parts[1]
		}
		return m, m.exportCmd(path)

	case "progress:reset":
		if len(parts) < 2 || parts[1] != "confirm" {
			m.status = "usage: progress:reset confirm"
			return m, nil
		}
		return m, m.resetCmd()

	case "texts:seed":
		return m, m.seedCmd()

	case "locale:de", "locale:en":
		m.applyLocale(strings.TrimPrefix(parts[0], "locale:"))
		return m, tea.Batch(m.textsView.Init(), m.dashView.Init())

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// applyLocale rebuilds the sub-views with a new translation table. The
// running attempt survives; its snapshot is re-rendered on the next
// transition.
func (m *Model) applyLocale(code string) {
	m.tr = locale.For(code)
	m.textsView = textsview.New(catalogPortBridge{p: m.catalog}, progressPortBridge{p: m.progress}, m.tr)
	m.readView = readingview.New(m.tr)
	m.quizView = quizview.New(quizPortBridge{p: m.quiz}, m.tr)
	m.resView = resultsview.New(m.tr)
	m.dashView = dashboardview.New(dashPortBridge{p: m.progress}, m.tr, m.recentLimit)
	m.mode = modeList
	m.status = m.tr.Texts
	m.propagateSize()
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.textsView, _ = m.textsView.Update(sz)
	m.readView, _ = m.readView.Update(sz)
	m.quizView, _ = m.quizView.Update(sz)
	m.resView, _ = m.resView.Update(sz)
	m.dashView, _ = m.dashView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) startAttemptCmd(textID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		view, err := m.quiz.Begin(ctx, textID)
		if err != nil {
			return attemptStartedMsg{err: err}
		}
		detail, err := m.catalog.GetText(ctx, textID)
		if err != nil {
			return attemptStartedMsg{err: err}
		}
		return attemptStartedMsg{view: view, detail: detail}
	}
}

func (m Model) resumeProbeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		view, err := m.quiz.Resume(ctx)
		if err != nil {
			return resumeProbeMsg{err: err}
		}
		detail, err := m.catalog.GetText(ctx, view.TextID)
		if err != nil {
			return resumeProbeMsg{err: err}
		}
		return resumeProbeMsg{view: view, detail: detail}
	}
}

func (m Model) startQuestionsCmd() tea.Cmd {
	return func() tea.Msg {
		view, ok, err := m.quiz.StartQuestions(context.Background())
		if err == nil && ok {
			return quizStartedMsg{view: view}
		}
		return quizview.TransitionMsg{View: view, OK: ok, Err: err}
	}
}

func (m Model) abandonCmd() tea.Cmd {
	return func() tea.Msg {
		return abandonedMsg{err: m.quiz.Abandon(context.Background())}
	}
}

func (m Model) exportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := m.progress.ExportAll(context.Background())
		if err != nil {
			return exportDoneMsg{err: err}
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: m.progress.ClearAll(context.Background())}
	}
}

func (m Model) seedCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.catalog.Seed(context.Background())
		return seedDoneMsg{out: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type catalogPortBridge struct{ p catalogPort }

func (b catalogPortBridge) ListTexts(ctx context.Context) ([]catalogdto.TextOutput, error) {
	return b.p.ListTexts(ctx)
}
func (b catalogPortBridge) GetText(ctx context.Context, id string) (catalogdto.TextDetailOutput, error) {
	return b.p.GetText(ctx, id)
}

type progressPortBridge struct{ p progressPort }

func (b progressPortBridge) BestScore(ctx context.Context, textID string) (int, error) {
	return b.p.BestScore(ctx, textID)
}
func (b progressPortBridge) HasCompleted(ctx context.Context, textID string) (bool, error) {
	return b.p.HasCompleted(ctx, textID)
}

type dashPortBridge struct{ p progressPort }

func (b dashPortBridge) Stats(ctx context.Context) (progressdto.StatsOutput, error) {
	return b.p.Stats(ctx)
}
func (b dashPortBridge) RecentSessions(ctx context.Context, limit int) ([]progressdto.SessionOutput, error) {
	return b.p.RecentSessions(ctx, limit)
}

type quizPortBridge struct{ p quizPort }

func (b quizPortBridge) Select(ctx context.Context, option int) (quizdto.AttemptView, bool, error) {
	return b.p.Select(ctx, option)
}
func (b quizPortBridge) Submit(ctx context.Context) (quizdto.AttemptView, bool, error) {
	return b.p.Submit(ctx)
}
func (b quizPortBridge) Advance(ctx context.Context) (quizdto.AttemptView, bool, error) {
	return b.p.Advance(ctx)
}
func (b quizPortBridge) Retreat(ctx context.Context) (quizdto.AttemptView, bool, error) {
	return b.p.Retreat(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
