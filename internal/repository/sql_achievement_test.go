package repository

import (
	"context"
	"testing"
	"time"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, repo *SQLAchievementRepo) []domain.Achievement {
	t.Helper()
	catalog := []domain.Achievement{
		{ID: "b", Name: "Team player", Description: "three coauthored entries", Position: 2},
		{ID: "a", Name: "First step", Description: "first entry", Position: 1},
	}
	require.NoError(t, repo.Seed(context.Background(), catalog))
	return catalog
}

func TestAchievementRepo_SeedIsConflictSafe(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLAchievementRepo(db)
	ctx := context.Background()

	seedCatalog(t, repo)
	seedCatalog(t, repo)

	list, err := repo.ListStatus(ctx, domain.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First step", list[0].Achievement.Name, "catalog order follows position")
	assert.Equal(t, "Team player", list[1].Achievement.Name)
}

func TestAchievementRepo_IDByName_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLAchievementRepo(db)

	_, err := repo.IDByName(context.Background(), "Missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAchievementRepo_InsertUnlockOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLAchievementRepo(db)
	ctx := context.Background()
	seedCatalog(t, repo)

	id, err := repo.IDByName(ctx, "First step")
	require.NoError(t, err)

	at := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	u := domain.UnlockedAchievement{UserID: domain.DefaultUserID, AchievementID: id, UnlockedAt: at}

	inserted, err := repo.InsertUnlock(ctx, u)
	require.NoError(t, err)
	assert.True(t, inserted)

	u.UnlockedAt = at.Add(time.Hour)
	inserted, err = repo.InsertUnlock(ctx, u)
	require.NoError(t, err)
	assert.False(t, inserted)

	unlocked, err := repo.IsUnlocked(ctx, domain.DefaultUserID, id)
	require.NoError(t, err)
	assert.True(t, unlocked)

	list, err := repo.ListStatus(ctx, domain.DefaultUserID)
	require.NoError(t, err)
	require.True(t, list[0].Unlocked())
	assert.True(t, at.Equal(*list[0].UnlockedAt), "first unlock time is kept")
	assert.False(t, list[1].Unlocked())
}

func TestAchievementRepo_UnlocksArePerUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLAchievementRepo(db)
	ctx := context.Background()
	seedCatalog(t, repo)

	_, err := repo.InsertUnlock(ctx, domain.UnlockedAchievement{UserID: 2, AchievementID: "a", UnlockedAt: time.Now()})
	require.NoError(t, err)

	unlocked, err := repo.IsUnlocked(ctx, domain.DefaultUserID, "a")
	require.NoError(t, err)
	assert.False(t, unlocked)
}
