package domain

import (
	"fmt"
	"strings"
	"time"
)

// Goal is a semester target tracked against live aggregates. Current and
// Completed are a cache of the last refresh, not a source of truth.
type Goal struct {
	ID          string
	Description string
	Kind        GoalKind
	// Competency names the target of a raise-competency goal. It is resolved
	// when the goal is created; competency ids change on profile reload.
	Competency string
	Target     int
	Current    float64
	Completed  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the goal as submitted by the user.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Description) == "" {
		return fmt.Errorf("%w: goal description is required", ErrValidation)
	}
	if !ValidGoalKinds[string(g.Kind)] {
		return fmt.Errorf("%w: unknown goal kind %q", ErrValidation, g.Kind)
	}
	if g.Target <= 0 {
		return fmt.Errorf("%w: goal target must be a positive number", ErrValidation)
	}
	if g.Kind == GoalRaiseCompetency && g.TargetCompetency() == "" {
		return fmt.Errorf("%w: raise-competency goal needs a competency", ErrValidation)
	}
	return nil
}

// TargetCompetency returns the competency a raise-competency goal tracks.
// Goals stored without an explicit reference fall back to the parenthesized
// suffix of the description.
func (g *Goal) TargetCompetency() string {
	if g.Competency != "" {
		return g.Competency
	}
	return CompetencyFromDescription(g.Description)
}

// ApplyProgress stores a freshly computed value. Completion is recomputed
// every time and can flip back to false.
func (g *Goal) ApplyProgress(current float64, now time.Time) {
	g.Current = current
	g.Completed = current >= float64(g.Target)
	g.UpdatedAt = now
}

// CompetencyFromDescription extracts the competency name from a description
// such as "Raise skill (Programming)": the text after the last "(" with the
// trailing ")" removed. Without "(" there is no target.
func CompetencyFromDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	i := strings.LastIndex(desc, "(")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(desc[i+1:], ")"))
}

// DescribeWithCompetency appends the competency suffix used in goal listings.
func DescribeWithCompetency(desc, competency string) string {
	desc = strings.TrimSpace(desc)
	if competency == "" || strings.EqualFold(CompetencyFromDescription(desc), competency) {
		return desc
	}
	return fmt.Sprintf("%s (%s)", desc, competency)
}
