package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/selenkov/portfolio/internal/app"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/repository"
)

type goalService struct {
	goals        repository.GoalRepo
	competencies repository.CompetencyRepo
	tracker      GoalRefresher
	observer     UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, competencies repository.CompetencyRepo, tracker GoalRefresher, observers ...UseCaseObserver) GoalService {
	return &goalService{
		goals:        goals,
		competencies: competencies,
		tracker:      tracker,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Create stores a new goal. A raise-competency goal resolves its competency
// against the active set and records the canonical name; the description
// gets the "(<name>)" suffix shown in listings.
func (s *goalService) Create(ctx context.Context, req app.CreateGoalRequest) (g *domain.Goal, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"kind": string(req.Kind), "target": req.Target}
	defer observe(ctx, s.observer, "create-goal", startedAt, fields, &err)

	now := time.Now().UTC()
	g = &domain.Goal{
		ID:          uuid.New().String(),
		Description: strings.TrimSpace(req.Description),
		Kind:        req.Kind,
		Target:      req.Target,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if g.Kind == domain.GoalRaiseCompetency {
		name := strings.TrimSpace(req.Competency)
		if name == "" {
			name = domain.CompetencyFromDescription(g.Description)
		}
		if name == "" {
			return nil, fmt.Errorf("%w: raise-competency goal needs a competency", domain.ErrValidation)
		}
		c, err := s.competencies.GetByName(ctx, name)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown competency %q", domain.ErrValidation, name)
		}
		if err != nil {
			return nil, err
		}
		g.Competency = c.Name
		g.Description = domain.DescribeWithCompetency(g.Description, c.Name)
		fields["competency"] = c.Name
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalService) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.goals.List(ctx)
}

// Refresh recomputes every goal and returns them in creation order.
func (s *goalService) Refresh(ctx context.Context) (views []app.GoalProgressView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "refresh-goals", startedAt, fields, &err)

	progress, err := s.tracker.RefreshAll(ctx)
	if err != nil {
		return nil, err
	}
	views = make([]app.GoalProgressView, 0, len(progress))
	completed := 0
	for _, p := range progress {
		if p.Completed {
			completed++
		}
		views = append(views, app.GoalProgressView{
			ID:          p.Goal.ID,
			Description: p.Goal.Description,
			Kind:        p.Goal.Kind,
			Competency:  p.Goal.TargetCompetency(),
			Current:     p.Current,
			Target:      p.Goal.Target,
			Progress:    p.ProgressString(),
			Completed:   p.Completed,
			Status:      p.Status(),
		})
	}
	fields["goals"] = len(views)
	fields["completed"] = completed
	return views, nil
}

func (s *goalService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "delete-goal", startedAt, map[string]any{"goal_id": id}, &err)
	return s.goals.Delete(ctx, id)
}

func (s *goalService) Clear(ctx context.Context) (n int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "clear-goals", startedAt, fields, &err)

	n, err = s.goals.DeleteAll(ctx)
	fields["deleted"] = n
	return n, err
}
