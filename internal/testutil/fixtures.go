package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/selenkov/portfolio/internal/domain"
)

// Entry options
type EntryOption func(*domain.Entry)

func WithEntryType(t domain.EntryType) EntryOption {
	return func(e *domain.Entry) {
		e.Type = t
	}
}

func WithDate(d time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.Date = d
	}
}

func WithCoauthors(c string) EntryOption {
	return func(e *domain.Entry) {
		e.Coauthors = c
	}
}

func WithDescription(d string) EntryOption {
	return func(e *domain.Entry) {
		e.Description = d
	}
}

func WithKeywords(kw ...string) EntryOption {
	return func(e *domain.Entry) {
		e.Keywords = kw
	}
}

// WithGrade appends a competency grade. The first WithGrade replaces the
// fixture's default empty grade list.
func WithGrade(competencyID string, level int) EntryOption {
	return func(e *domain.Entry) {
		e.Grades = append(e.Grades, domain.Grade{EntryID: e.ID, CompetencyID: competencyID, Level: level})
	}
}

func WithCreatedAt(t time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.CreatedAt = t
		e.UpdatedAt = t
	}
}

// NewTestEntry builds a project entry dated today with no grades.
func NewTestEntry(title string, opts ...EntryOption) *domain.Entry {
	now := time.Now().UTC()
	e := &domain.Entry{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      domain.EntryProject,
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Competency options
type CompetencyOption func(*domain.Competency)

func WithCategory(c string) CompetencyOption {
	return func(comp *domain.Competency) {
		comp.Category = c
	}
}

func NewTestCompetency(name string, opts ...CompetencyOption) *domain.Competency {
	c := &domain.Competency{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  "General",
		Specialty: "Test",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Goal options
type GoalOption func(*domain.Goal)

// WithGoalCompetency turns the goal into a raise-competency goal on name.
func WithGoalCompetency(name string) GoalOption {
	return func(g *domain.Goal) {
		g.Kind = domain.GoalRaiseCompetency
		g.Competency = name
		g.Description = domain.DescribeWithCompetency(g.Description, name)
	}
}

func WithGoalCreatedAt(t time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.CreatedAt = t
		g.UpdatedAt = t
	}
}

// NewTestGoal builds a count-entries goal.
func NewTestGoal(description string, target int, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:          uuid.New().String(),
		Description: description,
		Kind:        domain.GoalCountEntries,
		Target:      target,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
