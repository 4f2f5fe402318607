package service

import (
	"context"

	"github.com/selenkov/portfolio/internal/achievement"
	"github.com/selenkov/portfolio/internal/app"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/goal"
)

type EntryService interface {
	Save(ctx context.Context, req app.SaveEntryRequest) (*app.SaveEntryResponse, error)
	Import(ctx context.Context, reqs []app.SaveEntryRequest) (*app.ImportEntriesResponse, error)
	GetDetail(ctx context.Context, id string) (*app.EntryDetail, error)
	List(ctx context.Context) ([]*domain.Entry, error)
	Delete(ctx context.Context, id string) error
}

type GoalService interface {
	Create(ctx context.Context, req app.CreateGoalRequest) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Refresh(ctx context.Context) ([]app.GoalProgressView, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int, error)
}

type CompetencyService interface {
	LoadProfile(ctx context.Context, specialty string) (*app.LoadProfileResponse, error)
	Specialties() []string
	List(ctx context.Context) ([]*domain.Competency, error)
	Report(ctx context.Context) (*app.CompetencyReport, error)
}

type AchievementService interface {
	EnsureCatalog(ctx context.Context) error
	Overview(ctx context.Context) ([]app.AchievementView, error)
}

type ResearchMapService interface {
	Map(ctx context.Context) (*app.ResearchMap, error)
}

type ReportService interface {
	Build(ctx context.Context) (*app.PortfolioReport, error)
}

// AchievementEvaluator runs the achievement rules after an entry is saved.
type AchievementEvaluator interface {
	Evaluate(ctx context.Context) (achievement.Result, error)
}

// GoalRefresher recomputes goal progress.
type GoalRefresher interface {
	RefreshAll(ctx context.Context) ([]goal.Progress, error)
}

var (
	_ AchievementEvaluator = (*achievement.Evaluator)(nil)
	_ GoalRefresher        = (*goal.Tracker)(nil)

	_ app.SaveEntryUseCase        = EntryService(nil)
	_ app.RefreshGoalsUseCase     = GoalService(nil)
	_ app.CompetencyReportUseCase = CompetencyService(nil)
	_ app.LoadProfileUseCase      = CompetencyService(nil)
	_ app.ResearchMapUseCase      = ResearchMapService(nil)
	_ app.PortfolioReportUseCase  = ReportService(nil)
	_ app.ListEntriesUseCase      = EntryService(nil)
	_ app.ImportEntriesUseCase    = EntryService(nil)
)
