package achievement

import (
	"context"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/repository"
)

// Store is the read-mostly view the evaluator needs. AchievementIDByName
// returns an error wrapping repository.ErrNotFound for unknown names.
type Store interface {
	CountEntries(ctx context.Context) (int, error)
	CountCoauthoredEntries(ctx context.Context) (int, error)
	CountDistinctTypes(ctx context.Context) (int, error)
	CountEntriesInYear(ctx context.Context, year int) (int, error)
	SumDescriptionLength(ctx context.Context) (int, error)

	AchievementIDByName(ctx context.Context, name string) (string, error)
	IsUnlocked(ctx context.Context, userID int64, achievementID string) (bool, error)
	InsertUnlock(ctx context.Context, u domain.UnlockedAchievement) (bool, error)
}

// RepoStore adapts the entry and achievement repositories to Store.
type RepoStore struct {
	Entries      repository.EntryRepo
	Achievements repository.AchievementRepo
}

func NewRepoStore(entries repository.EntryRepo, achievements repository.AchievementRepo) *RepoStore {
	return &RepoStore{Entries: entries, Achievements: achievements}
}

func (s *RepoStore) CountEntries(ctx context.Context) (int, error) {
	return s.Entries.Count(ctx)
}

func (s *RepoStore) CountCoauthoredEntries(ctx context.Context) (int, error) {
	return s.Entries.CountCoauthored(ctx)
}

func (s *RepoStore) CountDistinctTypes(ctx context.Context) (int, error) {
	return s.Entries.CountDistinctTypes(ctx)
}

func (s *RepoStore) CountEntriesInYear(ctx context.Context, year int) (int, error) {
	return s.Entries.CountInYear(ctx, year)
}

func (s *RepoStore) SumDescriptionLength(ctx context.Context) (int, error) {
	return s.Entries.SumDescriptionLength(ctx)
}

func (s *RepoStore) AchievementIDByName(ctx context.Context, name string) (string, error) {
	return s.Achievements.IDByName(ctx, name)
}

func (s *RepoStore) IsUnlocked(ctx context.Context, userID int64, achievementID string) (bool, error) {
	return s.Achievements.IsUnlocked(ctx, userID, achievementID)
}

func (s *RepoStore) InsertUnlock(ctx context.Context, u domain.UnlockedAchievement) (bool, error) {
	return s.Achievements.InsertUnlock(ctx, u)
}
