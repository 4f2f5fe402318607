package repository

import (
	"context"

	"github.com/selenkov/portfolio/internal/domain"
)

// KeywordCount is the number of entries tagged with a keyword.
type KeywordCount struct {
	Keyword string
	Count   int
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	List(ctx context.Context) ([]*domain.Entry, error)
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int, error)
	CountCoauthored(ctx context.Context) (int, error)
	CountDistinctTypes(ctx context.Context) (int, error)
	CountInYear(ctx context.Context, year int) (int, error)
	SumDescriptionLength(ctx context.Context) (int, error)
	ListCoauthors(ctx context.Context) ([]string, error)
}

type KeywordRepo interface {
	Upsert(ctx context.Context, keyword string) (string, error)
	Attach(ctx context.Context, entryID, keywordID string) error
	ListByEntry(ctx context.Context, entryID string) ([]string, error)
	Frequencies(ctx context.Context) ([]KeywordCount, error)
}

type CompetencyRepo interface {
	ReplaceAll(ctx context.Context, specialty string, comps []*domain.Competency) error
	List(ctx context.Context) ([]*domain.Competency, error)
	GetByID(ctx context.Context, id string) (*domain.Competency, error)
	GetByName(ctx context.Context, name string) (*domain.Competency, error)
}

type GradeRepo interface {
	Create(ctx context.Context, g domain.Grade) error
	ListByEntry(ctx context.Context, entryID string) ([]domain.Grade, error)
	ListAll(ctx context.Context) ([]domain.Grade, error)
	MeanLevelByCompetencyName(ctx context.Context, name string) (mean float64, graded bool, err error)
}

type AchievementRepo interface {
	Seed(ctx context.Context, catalog []domain.Achievement) error
	IDByName(ctx context.Context, name string) (string, error)
	IsUnlocked(ctx context.Context, userID int64, achievementID string) (bool, error)
	InsertUnlock(ctx context.Context, u domain.UnlockedAchievement) (bool, error)
	ListStatus(ctx context.Context, userID int64) ([]domain.AchievementStatus, error)
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	UpdateProgress(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
}
