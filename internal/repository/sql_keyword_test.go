package repository

import (
	"context"
	"testing"

	"github.com/selenkov/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordRepo_UpsertReturnsSameID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLKeywordRepo(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "nlp")
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, "nlp")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKeywordRepo_AttachIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLKeywordRepo(db)
	ctx := context.Background()

	e := testutil.NewTestEntry("Paper")
	require.NoError(t, NewSQLEntryRepo(db).Create(ctx, e))
	id, err := repo.Upsert(ctx, "nlp")
	require.NoError(t, err)

	require.NoError(t, repo.Attach(ctx, e.ID, id))
	require.NoError(t, repo.Attach(ctx, e.ID, id))

	kws, err := repo.ListByEntry(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"nlp"}, kws)
}

func TestKeywordRepo_Frequencies(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLKeywordRepo(db)
	entries := NewSQLEntryRepo(db)
	ctx := context.Background()

	tag := func(title string, keywords ...string) {
		e := testutil.NewTestEntry(title)
		require.NoError(t, entries.Create(ctx, e))
		for _, k := range keywords {
			id, err := repo.Upsert(ctx, k)
			require.NoError(t, err)
			require.NoError(t, repo.Attach(ctx, e.ID, id))
		}
	}
	tag("one", "ml", "sql")
	tag("two", "ml")
	tag("three", "ml", "graphs")

	freq, err := repo.Frequencies(ctx)
	require.NoError(t, err)
	assert.Equal(t, []KeywordCount{
		{Keyword: "ml", Count: 3},
		{Keyword: "graphs", Count: 1},
		{Keyword: "sql", Count: 1},
	}, freq)
}
