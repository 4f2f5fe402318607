package competency

import (
	"strings"
	"testing"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comp(id, name, category string) *domain.Competency {
	return &domain.Competency{ID: id, Name: name, Category: category}
}

func level(name string, mean float64) Level {
	n := 0
	if mean > 0 {
		n = 1
	}
	return Level{Competency: comp(name, name, "General"), Mean: mean, Grades: n}
}

func TestAggregate_MeansAndOrder(t *testing.T) {
	comps := []*domain.Competency{
		comp("t", "Teamwork", "Soft skills"),
		comp("s", "System Design", "Engineering"),
		comp("p", "Programming", "Engineering"),
	}
	grades := []domain.Grade{
		{EntryID: "e1", CompetencyID: "p", Level: 4},
		{EntryID: "e2", CompetencyID: "p", Level: 5},
		{EntryID: "e1", CompetencyID: "t", Level: 2},
		{EntryID: "e3", CompetencyID: "stale", Level: 1},
	}

	report := Aggregate(comps, grades)
	require.Len(t, report.Levels, 3)
	assert.Equal(t, "Programming", report.Levels[0].Competency.Name)
	assert.Equal(t, 4.5, report.Levels[0].Mean)
	assert.Equal(t, 2, report.Levels[0].Grades)
	assert.Equal(t, "System Design", report.Levels[1].Competency.Name)
	assert.Zero(t, report.Levels[1].Mean)
	assert.False(t, report.Levels[1].Assessed())
	assert.Equal(t, "Teamwork", report.Levels[2].Competency.Name)
	assert.Equal(t, 2.0, report.Levels[2].Mean)
}

func TestAggregate_Empty(t *testing.T) {
	report := Aggregate(nil, nil)
	assert.Empty(t, report.Levels)
	assert.Empty(t, report.WeakZones())
}

func TestWeakZones_Boundaries(t *testing.T) {
	report := Report{Levels: []Level{
		level("Zero", 0),
		level("Weak", 2.9),
		level("Fine", 3.0),
		level("Low", 1),
		level("AlmostThree", 2.96),
		level("JustUnder", 2.94),
	}}

	var names []string
	for _, l := range report.WeakZones() {
		names = append(names, l.Competency.Name)
	}
	assert.Equal(t, []string{"Weak", "Low", "JustUnder"}, names)
}

func TestWeakZones_RoundedMeanFromGrades(t *testing.T) {
	comps := []*domain.Competency{comp("p", "Programming", "Engineering")}
	var grades []domain.Grade
	for i := 0; i < 24; i++ {
		grades = append(grades, domain.Grade{CompetencyID: "p", Level: 3})
	}
	grades = append(grades, domain.Grade{CompetencyID: "p", Level: 2})

	report := Aggregate(comps, grades)
	require.Len(t, report.Levels, 1)
	assert.InDelta(t, 2.96, report.Levels[0].Mean, 1e-9)
	assert.Equal(t, 3.0, report.Levels[0].Rounded())
	assert.Empty(t, report.WeakZones())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		level float64
		want  Tier
	}{
		{0, TierUnassessed},
		{0.5, TierCritical},
		{1.99, TierCritical},
		{2, TierBelowAverage},
		{2.99, TierBelowAverage},
		{3, TierSolid},
		{4.49, TierSolid},
		{4.5, TierExcellent},
		{5, TierExcellent},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.level), "level %v", tc.level)
	}
}

func TestRecommend_Tiers(t *testing.T) {
	msgs := Recommend([]Level{
		level("Teamwork", 0),
		level("Working with Databases", 1.5),
		level("System Design", 4.8),
		level("Scientific Writing", 3.5),
	})
	require.Len(t, msgs, 3, "level 3.5 emits no message")
	assert.Contains(t, msgs[0], "not yet assessed")
	assert.Contains(t, msgs[1], "SQL and NoSQL")
	assert.Contains(t, msgs[2], "Share your expertise")
}

func TestRecommend_CriticalAdviceByName(t *testing.T) {
	cases := map[string]string{
		"Programming":             "LeetCode",
		"Presentation of Results": "student conference",
		"DB administration":       "SQL and NoSQL",
		"Feedback":                "needs serious development",
		"Project Management":      "needs serious development",
		"Программирование":        "LeetCode",
		"Основы программирования": "LeetCode",
		"Администрирование СУБД":  "SQL and NoSQL",
		"Проектирование БД":       "SQL and NoSQL",
		"Презентация результатов": "student conference",
		"Навыки презентации":      "student conference",
		"Обратная связь":          "needs serious development",
	}
	for name, want := range cases {
		msgs := Recommend([]Level{level(name, 1.2)})
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], want, name)
	}
}

func TestRecommend_BelowAverage(t *testing.T) {
	msgs := Recommend([]Level{level("Teamwork", 2.5)})
	assert.Equal(t, []string{"Teamwork: below average (2.5). Practice more."}, msgs)
}

func TestRecommend_Fallback(t *testing.T) {
	assert.Equal(t, []string{AllWellDeveloped}, Recommend(nil))
	assert.Equal(t, []string{AllWellDeveloped}, Recommend([]Level{level("Programming", 4)}))
}

func TestFormatNumbered(t *testing.T) {
	out := FormatNumbered([]string{"first", "second"})
	assert.Equal(t, "1. first\n2. second", out)
	assert.Empty(t, FormatNumbered(nil))
	assert.False(t, strings.HasSuffix(out, "\n"))
}
