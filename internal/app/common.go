package app

import (
	"time"

	"github.com/selenkov/portfolio/internal/domain"
)

// UnlockEvent is a newly unlocked achievement to surface to the user.
type UnlockEvent struct {
	Achievement string
	UserID      int64
	UnlockedAt  time.Time
}

type AchievementView struct {
	Name        string
	Description string
	UnlockedAt  *time.Time
}

func (v AchievementView) Unlocked() bool { return v.UnlockedAt != nil }

// GoalProgressView is one refreshed goal in creation order.
type GoalProgressView struct {
	ID          string
	Description string
	Kind        domain.GoalKind
	Competency  string
	Current     float64
	Target      int
	Progress    string
	Completed   bool
	Status      string
}

type CompetencyLevelView struct {
	Name     string
	Category string
	Mean     float64
	Grades   int
}

// CompetencyReport carries the two text blocks of the competency view:
// levels (with weak zones) and recommendations.
type CompetencyReport struct {
	Specialty       string
	Levels          []CompetencyLevelView
	WeakZones       []CompetencyLevelView
	Recommendations []string
}

type FrequencyView struct {
	Label string
	Count int
}

// ResearchMap summarizes keyword and coauthor frequency across entries.
type ResearchMap struct {
	Keywords  []FrequencyView
	Coauthors []FrequencyView
}
