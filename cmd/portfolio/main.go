package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/selenkov/portfolio/internal/achievement"
	"github.com/selenkov/portfolio/internal/cli"
	"github.com/selenkov/portfolio/internal/config"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/goal"
	"github.com/selenkov/portfolio/internal/logging"
	"github.com/selenkov/portfolio/internal/profile"
	"github.com/selenkov/portfolio/internal/repository"
	"github.com/selenkov/portfolio/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.Level(), cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	catalog, err := profile.Load(cfg.ProfilesPath)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DBDriver, cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	entryRepo := repository.NewSQLEntryRepo(database)
	keywordRepo := repository.NewSQLKeywordRepo(database)
	gradeRepo := repository.NewSQLGradeRepo(database)
	competencyRepo := repository.NewSQLCompetencyRepo(database)
	achievementRepo := repository.NewSQLAchievementRepo(database)
	goalRepo := repository.NewSQLGoalRepo(database)

	uow := db.NewSQLUnitOfWork(database)
	observer := service.NewLogUseCaseObserver(logger)

	evaluator := achievement.NewEvaluator(
		achievement.NewRepoStore(entryRepo, achievementRepo),
		logger,
		achievement.WithUserID(cfg.UserID),
	)
	tracker := goal.NewTracker(goal.NewRepoStore(goalRepo, entryRepo, gradeRepo), logger)

	entries := service.NewEntryService(service.EntryServiceDeps{
		Entries:      entryRepo,
		Keywords:     keywordRepo,
		Grades:       gradeRepo,
		Competencies: competencyRepo,
		UoW:          uow,
		Evaluator:    evaluator,
		Strict:       cfg.Strict,
		Logger:       logger,
	}, observer)
	goals := service.NewGoalService(goalRepo, competencyRepo, tracker, observer)
	competencies := service.NewCompetencyService(competencyRepo, gradeRepo, catalog, uow, observer)
	achievements := service.NewAchievementService(achievementRepo, cfg.UserID)
	researchMap := service.NewResearchMapService(entryRepo, keywordRepo)

	ctx := context.Background()

	// The catalog is seeded on every start; the insert is conflict-safe.
	if err := achievements.EnsureCatalog(ctx); err != nil {
		return fmt.Errorf("seeding achievements: %w", err)
	}
	// First run gets the default specialty profile.
	if existing, err := competencies.List(ctx); err == nil && len(existing) == 0 {
		if _, err := competencies.LoadProfile(ctx, ""); err != nil {
			return fmt.Errorf("loading default profile: %w", err)
		}
	}

	app := &cli.App{
		Entries:      entries,
		Goals:        goals,
		Competencies: competencies,
		Achievements: achievements,
		ResearchMap:  researchMap,
		Report:       service.NewReportService(entries, researchMap, competencies, achievements, goals, logger, observer),
	}

	// Prompts only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
