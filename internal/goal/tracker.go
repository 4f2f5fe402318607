package goal

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/repository"
)

// Store is what the tracker reads and writes.
type Store interface {
	ListGoals(ctx context.Context) ([]*domain.Goal, error)
	CountEntries(ctx context.Context) (int, error)
	MeanLevelByCompetencyName(ctx context.Context, name string) (float64, bool, error)
	UpdateProgress(ctx context.Context, g *domain.Goal) error
}

// Progress is one refreshed goal.
type Progress struct {
	Goal      *domain.Goal
	Current   float64
	Completed bool
}

// ProgressString renders "<current> of <target>".
func (p Progress) ProgressString() string {
	return fmt.Sprintf("%s of %d", strconv.FormatFloat(p.Current, 'f', -1, 64), p.Goal.Target)
}

func (p Progress) Status() string {
	if p.Completed {
		return "completed"
	}
	return "in progress"
}

// Tracker recomputes goal progress against live aggregates.
type Tracker struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewTracker(store Store, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{store: store, logger: logger, now: time.Now}
}

// RefreshAll recomputes every goal in creation order and writes the result
// back. A failing aggregate for one goal is logged and yields 0 for that goal
// only. The error is non-nil only when the goals themselves cannot be listed.
func (t *Tracker) RefreshAll(ctx context.Context) ([]Progress, error) {
	goals, err := t.store.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	var (
		entryCount   int
		entryCounted bool
	)
	out := make([]Progress, 0, len(goals))
	for _, g := range goals {
		var current float64

		switch g.Kind {
		case domain.GoalCountEntries:
			if !entryCounted {
				n, err := t.store.CountEntries(ctx)
				if err != nil {
					t.logger.Warn("goal progress unavailable", "goal_id", g.ID, "error", err)
				}
				entryCount, entryCounted = n, err == nil
			}
			current = float64(entryCount)
		case domain.GoalRaiseCompetency:
			current = t.competencyLevel(ctx, g)
		default:
			t.logger.Warn("unknown goal kind", "goal_id", g.ID, "kind", string(g.Kind))
		}

		g.ApplyProgress(current, t.now())
		if err := t.store.UpdateProgress(ctx, g); err != nil {
			t.logger.Warn("goal write-back failed", "goal_id", g.ID, "error", err)
		}
		out = append(out, Progress{Goal: g, Current: g.Current, Completed: g.Completed})
	}
	return out, nil
}

// competencyLevel is the mean grade of the goal's competency rounded to one
// decimal, or 0 when there is no target or no grades.
func (t *Tracker) competencyLevel(ctx context.Context, g *domain.Goal) float64 {
	name := g.TargetCompetency()
	if name == "" {
		return 0
	}
	mean, graded, err := t.store.MeanLevelByCompetencyName(ctx, name)
	if err != nil {
		t.logger.Warn("goal progress unavailable", "goal_id", g.ID, "competency", name, "error", err)
		return 0
	}
	if !graded {
		return 0
	}
	return math.Round(mean*10) / 10
}

// RepoStore adapts the repositories to Store.
type RepoStore struct {
	Goals   repository.GoalRepo
	Entries repository.EntryRepo
	Grades  repository.GradeRepo
}

func NewRepoStore(goals repository.GoalRepo, entries repository.EntryRepo, grades repository.GradeRepo) *RepoStore {
	return &RepoStore{Goals: goals, Entries: entries, Grades: grades}
}

func (s *RepoStore) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	return s.Goals.List(ctx)
}

func (s *RepoStore) CountEntries(ctx context.Context) (int, error) {
	return s.Entries.Count(ctx)
}

func (s *RepoStore) MeanLevelByCompetencyName(ctx context.Context, name string) (float64, bool, error) {
	return s.Grades.MeanLevelByCompetencyName(ctx, name)
}

func (s *RepoStore) UpdateProgress(ctx context.Context, g *domain.Goal) error {
	return s.Goals.UpdateProgress(ctx, g)
}
