package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLEntryRepo(db)
	ctx := context.Background()

	date := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	e := testutil.NewTestEntry("Graph DB benchmark",
		testutil.WithEntryType(domain.EntryPublication),
		testutil.WithDate(date),
		testutil.WithCoauthors("Ivanov, Petrova"),
		testutil.WithDescription("Comparing query planners"),
	)
	require.NoError(t, repo.Create(ctx, e))

	fetched, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Graph DB benchmark", fetched.Title)
	assert.Equal(t, domain.EntryPublication, fetched.Type)
	assert.True(t, date.Equal(fetched.Date))
	assert.Equal(t, "Ivanov, Petrova", fetched.Coauthors)
	assert.Equal(t, "Comparing query planners", fetched.Description)
	assert.WithinDuration(t, e.CreatedAt, fetched.CreatedAt, time.Microsecond)
}

func TestEntryRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLEntryRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_List_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLEntryRepo(db)
	ctx := context.Background()

	older := testutil.NewTestEntry("Older", testutil.WithDate(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
	newer := testutil.NewTestEntry("Newer", testutil.WithDate(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Newer", list[0].Title)
	assert.Equal(t, "Older", list[1].Title)
}

func TestEntryRepo_List_SameDateByCreation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLEntryRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	first := testutil.NewTestEntry("First", testutil.WithCreatedAt(base))
	second := testutil.NewTestEntry("Second", testutil.WithCreatedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Title)
	assert.Equal(t, "First", list[1].Title)
}

func TestEntryRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLEntryRepo(db)
	ctx := context.Background()

	e := testutil.NewTestEntry("Short-lived")
	require.NoError(t, repo.Create(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID))

	_, err := repo.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, e.ID), ErrNotFound)
}

func TestEntryRepo_Aggregates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLEntryRepo(db)
	ctx := context.Background()

	thisYear := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	entries := []*domain.Entry{
		testutil.NewTestEntry("A", testutil.WithDate(thisYear), testutil.WithCoauthors("Ivanov"), testutil.WithDescription(strings.Repeat("x", 10))),
		testutil.NewTestEntry("B", testutil.WithDate(thisYear), testutil.WithEntryType(domain.EntryGrant), testutil.WithCoauthors("   ")),
		testutil.NewTestEntry("C", testutil.WithDate(lastYear), testutil.WithEntryType(domain.EntryGrant), testutil.WithDescription("абв")),
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	coauthored, err := repo.CountCoauthored(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, coauthored, "whitespace-only coauthors do not count")

	types, err := repo.CountDistinctTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, types)

	inYear, err := repo.CountInYear(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, inYear)

	length, err := repo.SumDescriptionLength(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, length, "length is measured in characters")

	coauthors, err := repo.ListCoauthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ivanov"}, coauthors)
}

func TestEntryRepo_Aggregates_EmptyStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLEntryRepo(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	length, err := repo.SumDescriptionLength(ctx)
	require.NoError(t, err)
	assert.Zero(t, length)
}
