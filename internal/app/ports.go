package app

import (
	"context"

	"github.com/selenkov/portfolio/internal/domain"
)

type SaveEntryUseCase interface {
	Save(ctx context.Context, req SaveEntryRequest) (*SaveEntryResponse, error)
}

// ImportEntriesUseCase stores a batch of entries atomically.
type ImportEntriesUseCase interface {
	Import(ctx context.Context, reqs []SaveEntryRequest) (*ImportEntriesResponse, error)
}

type RefreshGoalsUseCase interface {
	Refresh(ctx context.Context) ([]GoalProgressView, error)
}

type CompetencyReportUseCase interface {
	Report(ctx context.Context) (*CompetencyReport, error)
}

type LoadProfileUseCase interface {
	LoadProfile(ctx context.Context, specialty string) (*LoadProfileResponse, error)
}

type ResearchMapUseCase interface {
	Map(ctx context.Context) (*ResearchMap, error)
}

type PortfolioReportUseCase interface {
	Build(ctx context.Context) (*PortfolioReport, error)
}

type ListEntriesUseCase interface {
	List(ctx context.Context) ([]*domain.Entry, error)
}
