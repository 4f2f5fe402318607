package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/selenkov/portfolio/internal/achievement"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/goal"
	"github.com/selenkov/portfolio/internal/profile"
	"github.com/selenkov/portfolio/internal/repository"
	"github.com/selenkov/portfolio/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testServices wires every service over one in-memory database, the same way
// cmd/portfolio does.
type testServices struct {
	DB           *sqlx.DB
	Entries      EntryService
	Goals        GoalService
	Competencies CompetencyService
	Achievements AchievementService
	Map          ResearchMapService
	Report       ReportService

	entryRepo       repository.EntryRepo
	gradeRepo       repository.GradeRepo
	achievementRepo repository.AchievementRepo
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	uow      func(*sqlx.DB) db.UnitOfWork
	strict   bool
	skipSeed bool
	skipLoad bool
}

func withUoW(f func(*sqlx.DB) db.UnitOfWork) harnessOption {
	return func(c *harnessConfig) { c.uow = f }
}

func withStrict() harnessOption {
	return func(c *harnessConfig) { c.strict = true }
}

func withoutCatalog() harnessOption {
	return func(c *harnessConfig) { c.skipSeed = true }
}

func withoutProfile() harnessOption {
	return func(c *harnessConfig) { c.skipLoad = true }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServices(t *testing.T, opts ...harnessOption) *testServices {
	t.Helper()
	cfg := harnessConfig{uow: testutil.NewTestUoW}
	for _, opt := range opts {
		opt(&cfg)
	}

	database := testutil.NewTestDB(t)
	uow := cfg.uow(database)
	logger := discardLogger()

	entries := repository.NewSQLEntryRepo(database)
	keywords := repository.NewSQLKeywordRepo(database)
	grades := repository.NewSQLGradeRepo(database)
	comps := repository.NewSQLCompetencyRepo(database)
	achievements := repository.NewSQLAchievementRepo(database)
	goals := repository.NewSQLGoalRepo(database)

	catalog, err := profile.Default()
	require.NoError(t, err)

	evaluator := achievement.NewEvaluator(achievement.NewRepoStore(entries, achievements), logger)
	tracker := goal.NewTracker(goal.NewRepoStore(goals, entries, grades), logger)

	s := &testServices{
		DB: database,
		Entries: NewEntryService(EntryServiceDeps{
			Entries:      entries,
			Keywords:     keywords,
			Grades:       grades,
			Competencies: comps,
			UoW:          uow,
			Evaluator:    evaluator,
			Strict:       cfg.strict,
			Logger:       logger,
		}),
		Goals:           NewGoalService(goals, comps, tracker),
		Competencies:    NewCompetencyService(comps, grades, catalog, uow),
		Achievements:    NewAchievementService(achievements, domain.DefaultUserID),
		Map:             NewResearchMapService(entries, keywords),
		entryRepo:       entries,
		gradeRepo:       grades,
		achievementRepo: achievements,
	}
	s.Report = NewReportService(s.Entries, s.Map, s.Competencies, s.Achievements, s.Goals, logger)

	ctx := context.Background()
	if !cfg.skipSeed {
		require.NoError(t, s.Achievements.EnsureCatalog(ctx))
	}
	if !cfg.skipLoad {
		_, err := s.Competencies.LoadProfile(ctx, "")
		require.NoError(t, err)
	}
	return s
}
