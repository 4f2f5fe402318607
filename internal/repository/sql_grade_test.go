package repository

import (
	"context"
	"testing"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeRepo_MeanLevelByCompetencyName(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	entries := NewSQLEntryRepo(db)
	grades := NewSQLGradeRepo(db)

	prog := testutil.NewTestCompetency("Programming")
	team := testutil.NewTestCompetency("Teamwork")
	require.NoError(t, NewSQLCompetencyRepo(db).ReplaceAll(ctx, "IS", []*domain.Competency{prog, team}))

	for _, level := range []int{4, 5} {
		e := testutil.NewTestEntry("Entry")
		require.NoError(t, entries.Create(ctx, e))
		require.NoError(t, grades.Create(ctx, domain.Grade{EntryID: e.ID, CompetencyID: prog.ID, Level: level}))
	}

	mean, graded, err := grades.MeanLevelByCompetencyName(ctx, "Programming")
	require.NoError(t, err)
	assert.True(t, graded)
	assert.InDelta(t, 4.5, mean, 1e-9)

	mean, graded, err = grades.MeanLevelByCompetencyName(ctx, "Teamwork")
	require.NoError(t, err)
	assert.False(t, graded)
	assert.Zero(t, mean)

	_, graded, err = grades.MeanLevelByCompetencyName(ctx, "Unknown")
	require.NoError(t, err)
	assert.False(t, graded)
}

func TestGradeRepo_ListByEntry(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	grades := NewSQLGradeRepo(db)

	c := testutil.NewTestCompetency("Programming")
	require.NoError(t, NewSQLCompetencyRepo(db).ReplaceAll(ctx, "IS", []*domain.Competency{c}))
	e := testutil.NewTestEntry("Entry")
	require.NoError(t, NewSQLEntryRepo(db).Create(ctx, e))
	require.NoError(t, grades.Create(ctx, domain.Grade{EntryID: e.ID, CompetencyID: c.ID, Level: 3}))

	list, err := grades.ListByEntry(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Grade{{EntryID: e.ID, CompetencyID: c.ID, Level: 3}}, list)
}
