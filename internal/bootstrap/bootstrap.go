package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "leseheft/internal/modules/catalog/adapter/in"
	catalogoutadapter "leseheft/internal/modules/catalog/adapter/out"
	catalogservice "leseheft/internal/modules/catalog/service"
	catalogusecase "leseheft/internal/modules/catalog/usecase"
	progressinadapter "leseheft/internal/modules/progress/adapter/in"
	progressoutadapter "leseheft/internal/modules/progress/adapter/out"
	progressservice "leseheft/internal/modules/progress/service"
	progressusecase "leseheft/internal/modules/progress/usecase"
	quizinadapter "leseheft/internal/modules/quiz/adapter/in"
	quizservice "leseheft/internal/modules/quiz/service"
	quizusecase "leseheft/internal/modules/quiz/usecase"
	"leseheft/internal/platform/clock"
	"leseheft/internal/platform/config"
	"leseheft/internal/platform/id"
	"leseheft/internal/platform/kv"
	uiapp "leseheft/internal/ui/app"
)

type App struct {
	Config      config.Config
	CatalogCLI  cataloginadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	QuizCLI     quizinadapter.CLIHandler
	QuizTUI     quizinadapter.TUIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	if err := os.MkdirAll(cfg.TextsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create texts dir: %w", err)
	}

	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		catalogoutadapter.NewVaultTextStore(cfg.TextsDir),
		catalogoutadapter.BuiltinTexts(),
	))

	// kv.Open degrades to an in-memory store when the state dir is not
	// writable; the derived history index is skipped in that case too.
	store := kv.Open(cfg.StateDir)
	projector, err := progressoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		projector = nil
	}
	progressUC := progressusecase.NewInteractor(progressservice.NewRecorderService(
		clk, ids, progressoutadapter.NewKVProgressStore(store), projector,
	))

	quizUC := quizusecase.NewInteractor(quizservice.NewAttemptService(clk, catalogUC, progressUC))

	return &App{
		Config:      cfg,
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		QuizCLI:     quizinadapter.NewCLIHandler(quizUC),
		QuizTUI:     quizinadapter.NewTUIHandler(quizUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.Config.DataDir,
		app.Config.Settings.Locale,
		app.Config.Settings.RecentLimit,
		app.CatalogCLI,
		app.QuizTUI,
		app.ProgressCLI,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
