package app

import "github.com/selenkov/portfolio/internal/domain"

type CreateGoalRequest struct {
	Description string
	Kind        domain.GoalKind
	Competency  string
	Target      int
}
