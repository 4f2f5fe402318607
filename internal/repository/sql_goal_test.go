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

func TestGoalRepo_ListInCreationOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLGoalRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	second := testutil.NewTestGoal("Raise skill", 4,
		testutil.WithGoalCompetency("Programming"), testutil.WithGoalCreatedAt(base.Add(time.Minute)))
	first := testutil.NewTestGoal("Add entries", 5, testutil.WithGoalCreatedAt(base))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, domain.GoalRaiseCompetency, list[1].Kind)
	assert.Equal(t, "Programming", list[1].Competency)
	assert.Equal(t, "Raise skill (Programming)", list[1].Description)
}

func TestGoalRepo_UpdateProgress(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLGoalRepo(db)
	ctx := context.Background()

	g := testutil.NewTestGoal("Add entries", 2)
	require.NoError(t, repo.Create(ctx, g))

	g.ApplyProgress(2, time.Now())
	require.NoError(t, repo.UpdateProgress(ctx, g))

	fetched, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, fetched.Current)
	assert.True(t, fetched.Completed)

	g.ApplyProgress(1, time.Now())
	require.NoError(t, repo.UpdateProgress(ctx, g))
	fetched, err = repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, fetched.Completed)
}

func TestGoalRepo_DeleteAndDeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLGoalRepo(db)
	ctx := context.Background()

	g1 := testutil.NewTestGoal("One", 1)
	g2 := testutil.NewTestGoal("Two", 2)
	g3 := testutil.NewTestGoal("Three", 3)
	for _, g := range []*domain.Goal{g1, g2, g3} {
		require.NoError(t, repo.Create(ctx, g))
	}

	require.NoError(t, repo.Delete(ctx, g1.ID))
	assert.ErrorIs(t, repo.Delete(ctx, g1.ID), ErrNotFound)

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
