package goal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	goals     []*domain.Goal
	entries   int
	grades    map[string][]int
	updated   map[string]domain.Goal
	countErr  error
	meanErr   error
	updateErr error
	listErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{grades: map[string][]int{}, updated: map[string]domain.Goal{}}
}

func (s *fakeStore) ListGoals(context.Context) ([]*domain.Goal, error) {
	return s.goals, s.listErr
}

func (s *fakeStore) CountEntries(context.Context) (int, error) {
	return s.entries, s.countErr
}

func (s *fakeStore) MeanLevelByCompetencyName(_ context.Context, name string) (float64, bool, error) {
	if s.meanErr != nil {
		return 0, false, s.meanErr
	}
	levels := s.grades[name]
	if len(levels) == 0 {
		return 0, false, nil
	}
	sum := 0
	for _, l := range levels {
		sum += l
	}
	return float64(sum) / float64(len(levels)), true, nil
}

func (s *fakeStore) UpdateProgress(_ context.Context, g *domain.Goal) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated[g.ID] = *g
	return nil
}

func newTestTracker(store Store) *Tracker {
	return NewTracker(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func countGoal(id string, target int) *domain.Goal {
	return &domain.Goal{ID: id, Description: "Add entries", Kind: domain.GoalCountEntries, Target: target}
}

func competencyGoal(id, competency string, target int) *domain.Goal {
	return &domain.Goal{
		ID:          id,
		Description: domain.DescribeWithCompetency("Raise skill", competency),
		Kind:        domain.GoalRaiseCompetency,
		Competency:  competency,
		Target:      target,
	}
}

func TestRefreshAll_CountEntriesCompletes(t *testing.T) {
	store := newFakeStore()
	store.goals = []*domain.Goal{countGoal("g1", 2)}
	store.entries = 1
	tr := newTestTracker(store)

	progress, err := tr.RefreshAll(context.Background())
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 1.0, progress[0].Current)
	assert.False(t, progress[0].Completed)
	assert.Equal(t, "1 of 2", progress[0].ProgressString())

	store.entries = 2
	progress, err = tr.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2.0, progress[0].Current)
	assert.True(t, progress[0].Completed)
	assert.Equal(t, "completed", progress[0].Status())
}

func TestRefreshAll_CompletionIsNotSticky(t *testing.T) {
	store := newFakeStore()
	store.goals = []*domain.Goal{competencyGoal("g1", "Programming", 4)}
	store.grades["Programming"] = []int{4, 5}
	tr := newTestTracker(store)

	progress, err := tr.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.5, progress[0].Current)
	assert.True(t, progress[0].Completed)

	delete(store.grades, "Programming")
	progress, err = tr.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, progress[0].Current)
	assert.False(t, progress[0].Completed)
	assert.False(t, store.updated["g1"].Completed, "write-back reflects the flip")
}

func TestRefreshAll_RoundsToOneDecimal(t *testing.T) {
	store := newFakeStore()
	store.goals = []*domain.Goal{competencyGoal("g1", "Teamwork", 5)}
	store.grades["Teamwork"] = []int{4, 4, 5}

	progress, err := newTestTracker(store).RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4.3, progress[0].Current)
	assert.Equal(t, "4.3 of 5", progress[0].ProgressString())
}

func TestRefreshAll_FallsBackToDescriptionSuffix(t *testing.T) {
	store := newFakeStore()
	g := &domain.Goal{ID: "legacy", Description: "Raise skill (Programming)", Kind: domain.GoalRaiseCompetency, Target: 3}
	store.goals = []*domain.Goal{g}
	store.grades["Programming"] = []int{3}

	progress, err := newTestTracker(store).RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3.0, progress[0].Current)
	assert.True(t, progress[0].Completed)
}

func TestRefreshAll_NoTargetMeansZero(t *testing.T) {
	store := newFakeStore()
	store.goals = []*domain.Goal{{ID: "g", Description: "Raise skill", Kind: domain.GoalRaiseCompetency, Target: 1}}
	store.grades["Raise skill"] = []int{5}

	progress, err := newTestTracker(store).RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, progress[0].Current)
	assert.False(t, progress[0].Completed)
}

func TestRefreshAll_KeepsCreationOrder(t *testing.T) {
	store := newFakeStore()
	store.goals = []*domain.Goal{
		countGoal("a", 1),
		competencyGoal("b", "Programming", 2),
		countGoal("c", 10),
	}
	store.entries = 3

	progress, err := newTestTracker(store).RefreshAll(context.Background())
	require.NoError(t, err)
	require.Len(t, progress, 3)
	assert.Equal(t, "a", progress[0].Goal.ID)
	assert.Equal(t, "b", progress[1].Goal.ID)
	assert.Equal(t, "c", progress[2].Goal.ID)
	assert.True(t, progress[0].Completed, "completed goals are not re-sorted")
	assert.Equal(t, 3.0, progress[2].Current, "count goals share the global counter")
}

func TestRefreshAll_StoreFailuresDegradeToZero(t *testing.T) {
	store := newFakeStore()
	store.goals = []*domain.Goal{countGoal("a", 1), competencyGoal("b", "Programming", 1)}
	store.entries = 5
	store.countErr = errors.New("timeout")
	store.meanErr = errors.New("timeout")
	store.updateErr = errors.New("read-only")

	progress, err := newTestTracker(store).RefreshAll(context.Background())
	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.Zero(t, progress[0].Current)
	assert.Zero(t, progress[1].Current)
}

func TestRefreshAll_ListFailure(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("no such table")

	_, err := newTestTracker(store).RefreshAll(context.Background())
	assert.Error(t, err)
}

func TestRefreshAll_WriteBack(t *testing.T) {
	store := newFakeStore()
	store.goals = []*domain.Goal{countGoal("g1", 1)}
	store.entries = 1
	tr := newTestTracker(store)
	stamp := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return stamp }

	_, err := tr.RefreshAll(context.Background())
	require.NoError(t, err)
	saved := store.updated["g1"]
	assert.Equal(t, 1.0, saved.Current)
	assert.True(t, saved.Completed)
	assert.Equal(t, stamp, saved.UpdatedAt)
}
