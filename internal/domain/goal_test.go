package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompetencyFromDescription(t *testing.T) {
	cases := []struct {
		desc string
		want string
	}{
		{"Raise skill (Programming)", "Programming"},
		{"Raise skill (Work (DB))", "DB"},
		{"Raise skill (Teamwork", "Teamwork"},
		{"Raise skill (Programming)) ", "Programming"},
		{"Add two entries", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CompetencyFromDescription(tc.desc), "desc=%q", tc.desc)
	}
}

func TestGoal_TargetCompetency_PrefersExplicitReference(t *testing.T) {
	g := &Goal{Description: "Raise skill (Old Name)", Competency: "Programming"}
	assert.Equal(t, "Programming", g.TargetCompetency())

	g.Competency = ""
	assert.Equal(t, "Old Name", g.TargetCompetency())
}

func TestGoal_ApplyProgress_NotSticky(t *testing.T) {
	g := &Goal{Kind: GoalRaiseCompetency, Target: 4}
	now := time.Now().UTC()

	g.ApplyProgress(4.5, now)
	assert.True(t, g.Completed)

	g.ApplyProgress(0, now)
	assert.False(t, g.Completed, "completion must follow live state")
	assert.Equal(t, 0.0, g.Current)
}

func TestGoal_ApplyProgress_Boundary(t *testing.T) {
	g := &Goal{Kind: GoalCountEntries, Target: 2}
	g.ApplyProgress(1, time.Now())
	assert.False(t, g.Completed)
	g.ApplyProgress(2, time.Now())
	assert.True(t, g.Completed, "current equal to target completes the goal")
}

func TestGoal_Validate(t *testing.T) {
	ok := &Goal{Description: "Write more", Kind: GoalCountEntries, Target: 3}
	require.NoError(t, ok.Validate())

	cases := map[string]*Goal{
		"empty description": {Kind: GoalCountEntries, Target: 1},
		"zero target":       {Description: "x", Kind: GoalCountEntries, Target: 0},
		"unknown kind":      {Description: "x", Kind: "read-books", Target: 1},
		"no competency":     {Description: "Raise skill", Kind: GoalRaiseCompetency, Target: 4},
	}
	for name, g := range cases {
		err := g.Validate()
		require.Error(t, err, name)
		assert.ErrorIs(t, err, ErrValidation, name)
	}
}

func TestDescribeWithCompetency(t *testing.T) {
	assert.Equal(t, "Raise skill (Programming)", DescribeWithCompetency("Raise skill", "Programming"))
	assert.Equal(t, "Raise skill (Programming)", DescribeWithCompetency("Raise skill (Programming)", "Programming"))
	assert.Equal(t, "Add entries", DescribeWithCompetency(" Add entries ", ""))
	assert.Equal(t, "Raise skill (programming)", DescribeWithCompetency("Raise skill (programming)", "Programming"))
	assert.Equal(t, "Learn Go (fast) (Programming)", DescribeWithCompetency("Learn Go (fast)", "Programming"))
}
