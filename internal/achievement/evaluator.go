package achievement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/repository"
)

// ErrCatalogIntegrity means a rule names an achievement that is not in the
// stored catalog. The catalog is static, so this is a programming error.
var ErrCatalogIntegrity = errors.New("achievement missing from catalog")

// UnlockEvent reports a newly earned achievement.
type UnlockEvent struct {
	Achievement string
	UserID      int64
	UnlockedAt  time.Time
}

// Result is the outcome of one evaluation pass.
type Result struct {
	Unlocked []UnlockEvent
	// Skipped lists rules whose metric could not be read.
	Skipped []string
}

// Names returns the names of the achievements unlocked in this pass.
func (r Result) Names() []string {
	names := make([]string, 0, len(r.Unlocked))
	for _, ev := range r.Unlocked {
		names = append(names, ev.Achievement)
	}
	return names
}

type Option func(*Evaluator)

func WithUserID(id int64) Option {
	return func(e *Evaluator) { e.userID = id }
}

func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

func WithRules(rules []Rule) Option {
	return func(e *Evaluator) { e.rules = rules }
}

// Evaluator checks every rule against the store and unlocks what is earned.
type Evaluator struct {
	store  Store
	logger *slog.Logger
	userID int64
	now    func() time.Time
	rules  []Rule
}

func NewEvaluator(store Store, logger *slog.Logger, opts ...Option) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Evaluator{
		store:  store,
		logger: logger,
		userID: domain.DefaultUserID,
		now:    time.Now,
		rules:  Rules(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate reads the metrics and unlocks every achievement whose rule holds.
// Store failures are logged and never abort the remaining rules. The returned
// error is non-nil only for catalog-integrity failures; the Result is still
// complete for every other rule.
func (e *Evaluator) Evaluate(ctx context.Context) (Result, error) {
	var (
		res       Result
		integrity []error
	)
	metrics := e.collect(ctx)

	for _, rule := range e.rules {
		value, ok := metrics[rule.Metric]
		if !ok {
			res.Skipped = append(res.Skipped, rule.Name)
			continue
		}
		if !rule.Met(value) {
			continue
		}

		ev, unlocked, err := e.Unlock(ctx, rule.Name)
		if err != nil {
			if errors.Is(err, ErrCatalogIntegrity) {
				integrity = append(integrity, err)
			}
			e.logger.Error("achievement unlock failed", "achievement", rule.Name, "error", err)
			continue
		}
		if unlocked {
			res.Unlocked = append(res.Unlocked, ev)
		}
	}
	return res, errors.Join(integrity...)
}

// Unlock records the achievement for the evaluator's user unless it is
// already unlocked. It reports whether a new unlock happened.
func (e *Evaluator) Unlock(ctx context.Context, name string) (UnlockEvent, bool, error) {
	id, err := e.store.AchievementIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UnlockEvent{}, false, fmt.Errorf("%w: %q", ErrCatalogIntegrity, name)
		}
		return UnlockEvent{}, false, fmt.Errorf("looking up achievement %q: %w", name, err)
	}

	already, err := e.store.IsUnlocked(ctx, e.userID, id)
	if err != nil {
		return UnlockEvent{}, false, err
	}
	if already {
		return UnlockEvent{}, false, nil
	}

	at := e.now()
	inserted, err := e.store.InsertUnlock(ctx, domain.UnlockedAchievement{
		UserID:        e.userID,
		AchievementID: id,
		UnlockedAt:    at,
	})
	if err != nil || !inserted {
		return UnlockEvent{}, false, err
	}

	e.logger.Info("achievement unlocked", "achievement", name, "user_id", e.userID)
	return UnlockEvent{Achievement: name, UserID: e.userID, UnlockedAt: at}, true, nil
}

// collect reads each metric the rules need. A failed read leaves the metric
// out of the map.
func (e *Evaluator) collect(ctx context.Context) map[Metric]int {
	metrics := make(map[Metric]int, 5)
	for _, rule := range e.rules {
		if _, done := metrics[rule.Metric]; done {
			continue
		}
		value, err := e.read(ctx, rule.Metric)
		if err != nil {
			e.logger.Warn("achievement metric unavailable", "metric", rule.Metric.String(), "error", err)
			continue
		}
		metrics[rule.Metric] = value
	}
	return metrics
}

func (e *Evaluator) read(ctx context.Context, m Metric) (int, error) {
	switch m {
	case MetricEntryCount:
		return e.store.CountEntries(ctx)
	case MetricCoauthoredEntries:
		return e.store.CountCoauthoredEntries(ctx)
	case MetricDistinctTypes:
		return e.store.CountDistinctTypes(ctx)
	case MetricEntriesThisYear:
		return e.store.CountEntriesInYear(ctx, e.now().Year())
	case MetricDescriptionLength:
		return e.store.SumDescriptionLength(ctx)
	default:
		return 0, fmt.Errorf("unknown metric %d", m)
	}
}
