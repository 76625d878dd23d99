package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	curriculuminadapter "sprinttrack/internal/modules/curriculum/adapter/in"
	curriculumoutadapter "sprinttrack/internal/modules/curriculum/adapter/out"
	curriculumdomain "sprinttrack/internal/modules/curriculum/domain"
	curriculumservice "sprinttrack/internal/modules/curriculum/service"
	curriculumusecase "sprinttrack/internal/modules/curriculum/usecase"
	progressinadapter "sprinttrack/internal/modules/progress/adapter/in"
	progressoutadapter "sprinttrack/internal/modules/progress/adapter/out"
	progressin "sprinttrack/internal/modules/progress/port/in"
	progressservice "sprinttrack/internal/modules/progress/service"
	progressusecase "sprinttrack/internal/modules/progress/usecase"
	statsinadapter "sprinttrack/internal/modules/stats/adapter/in"
	statsin "sprinttrack/internal/modules/stats/port/in"
	statsusecase "sprinttrack/internal/modules/stats/usecase"
	"sprinttrack/internal/platform/clock"
	"sprinttrack/internal/platform/config"
	uiapp "sprinttrack/internal/ui/app"
)

type App struct {
	CurriculumCLI curriculuminadapter.CLIHandler
	ProgressCLI   progressinadapter.CLIHandler
	StatsCLI      statsinadapter.CLIHandler

	progressUC progressin.Usecase
	statsUC    statsin.Usecase
	today      int
}

func New(cfg config.Config) (*App, error) {
	ctx := context.Background()
	clk := clock.SystemClock{}

	// Plan override file wins wholesale; otherwise the compiled-in plan,
	// truncated to the configured sprint length.
	planStore := curriculumoutadapter.NewYAMLPlanStore(cfg.PlanPath)
	plan, ok, err := planStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if !ok {
		plan, err = curriculumdomain.DefaultPlan(cfg.StartDate, cfg.TotalDays)
		if err != nil {
			return nil, fmt.Errorf("default plan: %w", err)
		}
	}
	curriculumUC := curriculumusecase.NewInteractor(curriculumservice.NewPlanService(plan, clk))

	projector, err := progressoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	progressUC, err := progressusecase.NewInteractor(
		ctx,
		progressservice.NewProgressService(clk),
		progressoutadapter.NewFileStoreRepository(cfg.DataPath),
		projector,
		curriculumUC,
		clk,
	)
	if err != nil {
		return nil, fmt.Errorf("new progress interactor: %w", err)
	}

	statsUC := statsusecase.NewInteractor(progressUC, clk)

	today, err := curriculumUC.TodayDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve current day: %w", err)
	}

	return &App{
		CurriculumCLI: curriculuminadapter.NewCLIHandler(curriculumUC),
		ProgressCLI:   progressinadapter.NewCLIHandler(progressUC),
		StatsCLI:      statsinadapter.NewCLIHandler(statsUC),
		progressUC:    progressUC,
		statsUC:       statsUC,
		today:         today.Day,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.progressUC, app.statsUC, app.today)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
