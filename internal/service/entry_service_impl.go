package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/selenkov/portfolio/internal/app"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/repository"
)

type entryService struct {
	entries      repository.EntryRepo
	keywords     repository.KeywordRepo
	grades       repository.GradeRepo
	competencies repository.CompetencyRepo
	uow          db.UnitOfWork
	evaluator    AchievementEvaluator
	strict       bool
	logger       *slog.Logger
	observer     UseCaseObserver
	now          func() time.Time
}

// EntryServiceDeps groups the collaborators of the entry service.
type EntryServiceDeps struct {
	Entries      repository.EntryRepo
	Keywords     repository.KeywordRepo
	Grades       repository.GradeRepo
	Competencies repository.CompetencyRepo
	UoW          db.UnitOfWork
	Evaluator    AchievementEvaluator
	// Strict turns catalog-integrity failures into save errors.
	Strict bool
	Logger *slog.Logger
}

func NewEntryService(deps EntryServiceDeps, observers ...UseCaseObserver) EntryService {
	return &entryService{
		entries:      deps.Entries,
		keywords:     deps.Keywords,
		grades:       deps.Grades,
		competencies: deps.Competencies,
		uow:          deps.UoW,
		evaluator:    deps.Evaluator,
		strict:       deps.Strict,
		logger:       loggerOrDefault(deps.Logger),
		observer:     useCaseObserverOrNoop(observers),
		now:          time.Now,
	}
}

// Save validates and stores an entry with its keywords and grades in one
// transaction, then runs the achievement rules. Achievement failures never
// undo the save.
func (s *entryService) Save(ctx context.Context, req app.SaveEntryRequest) (resp *app.SaveEntryResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"type": string(req.Type)}
	defer observe(ctx, s.observer, "save-entry", startedAt, fields, &err)

	e, dropped, err := s.buildEntry(req)
	if err != nil {
		return nil, err
	}
	fields["entry_id"] = e.ID
	fields["grades"] = len(e.Grades)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return persistEntry(ctx, tx, e)
	})
	if err != nil {
		return nil, err
	}

	resp = &app.SaveEntryResponse{Entry: e, DroppedKeywords: dropped}
	if dropped > 0 {
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("only the first %d keywords were kept", domain.MaxKeywordsPerEntry))
	}

	unlocked, warnings, err := s.checkAchievements(ctx)
	resp.Unlocked = unlocked
	resp.Warnings = append(resp.Warnings, warnings...)
	fields["unlocked"] = len(unlocked)
	return resp, err
}

// persistEntry writes an entry, its keyword links and grades. Grade
// references are resolved against the competency set visible to tx.
func persistEntry(ctx context.Context, tx db.DBTX, e *domain.Entry) error {
	txEntries := repository.NewSQLEntryRepo(tx)
	txKeywords := repository.NewSQLKeywordRepo(tx)
	txGrades := repository.NewSQLGradeRepo(tx)
	txComps := repository.NewSQLCompetencyRepo(tx)

	if err := resolveGrades(ctx, txComps, e); err != nil {
		return err
	}
	if err := txEntries.Create(ctx, e); err != nil {
		return err
	}
	for _, kw := range e.Keywords {
		id, err := txKeywords.Upsert(ctx, kw)
		if err != nil {
			return err
		}
		if err := txKeywords.Attach(ctx, e.ID, id); err != nil {
			return err
		}
	}
	for _, g := range e.Grades {
		if err := txGrades.Create(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

// checkAchievements runs the achievement rules after a commit. Only a
// catalog-integrity failure in strict mode is returned as an error; other
// problems come back as warnings.
func (s *entryService) checkAchievements(ctx context.Context) ([]app.UnlockEvent, []string, error) {
	if s.evaluator == nil {
		return nil, nil, nil
	}
	result, evalErr := s.evaluator.Evaluate(ctx)

	var (
		unlocked []app.UnlockEvent
		warnings []string
	)
	for _, ev := range result.Unlocked {
		unlocked = append(unlocked, app.UnlockEvent{
			Achievement: ev.Achievement,
			UserID:      ev.UserID,
			UnlockedAt:  ev.UnlockedAt,
		})
	}
	for _, name := range result.Skipped {
		warnings = append(warnings, fmt.Sprintf("achievement %q could not be checked", name))
	}
	if evalErr != nil {
		if s.strict {
			return unlocked, warnings, fmt.Errorf("entry saved, but achievement catalog is broken: %w", evalErr)
		}
		s.logger.Error("achievement catalog integrity", "error", evalErr)
		warnings = append(warnings, "achievement data unavailable")
	}
	return unlocked, warnings, nil
}

// Import validates every request first and stores nothing if any is invalid.
// All entries are written in one transaction and the achievement rules run
// once afterwards.
func (s *entryService) Import(ctx context.Context, reqs []app.SaveEntryRequest) (resp *app.ImportEntriesResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"entries": len(reqs)}
	defer observe(ctx, s.observer, "import-entries", startedAt, fields, &err)

	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: import file has no entries", domain.ErrValidation)
	}

	entries := make([]*domain.Entry, 0, len(reqs))
	dropped := 0
	var errs []error
	for i, req := range reqs {
		e, d, err := s.buildEntry(req)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i+1, req.Title, err))
			continue
		}
		dropped += d
		entries = append(entries, e)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for i, e := range entries {
			if err := persistEntry(ctx, tx, e); err != nil {
				return fmt.Errorf("entry %d (%s): %w", i+1, e.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp = &app.ImportEntriesResponse{Entries: entries, DroppedKeywords: dropped}
	if dropped > 0 {
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("%d keywords over the limit of %d per entry were dropped", dropped, domain.MaxKeywordsPerEntry))
	}
	unlocked, warnings, err := s.checkAchievements(ctx)
	resp.Unlocked = unlocked
	resp.Warnings = append(resp.Warnings, warnings...)
	fields["unlocked"] = len(unlocked)
	return resp, err
}

func (s *entryService) buildEntry(req app.SaveEntryRequest) (*domain.Entry, int, error) {
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, 0, err
	}
	keywords, dropped := domain.NormalizeKeywords(req.Keywords)

	now := s.now().UTC()
	e := &domain.Entry{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Type:        domain.EntryType(strings.ToLower(strings.TrimSpace(string(req.Type)))),
		Date:        date,
		Description: req.Description,
		Coauthors:   req.Coauthors,
		Keywords:    keywords,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, g := range req.Grades {
		// The competency reference is resolved to an id inside the save
		// transaction.
		e.Grades = append(e.Grades, domain.Grade{
			EntryID:      e.ID,
			CompetencyID: strings.TrimSpace(g.Competency),
			Level:        g.Level,
		})
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return nil, 0, err
	}
	return e, dropped, nil
}

// resolveGrades replaces competency references (name or id) with ids of the
// active competency set.
func resolveGrades(ctx context.Context, comps repository.CompetencyRepo, e *domain.Entry) error {
	seen := make(map[string]bool, len(e.Grades))
	for i, g := range e.Grades {
		c, err := comps.GetByName(ctx, g.CompetencyID)
		if errors.Is(err, repository.ErrNotFound) {
			c, err = comps.GetByID(ctx, g.CompetencyID)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: unknown competency %q (load a profile with 'competency load')", domain.ErrValidation, g.CompetencyID)
		}
		if err != nil {
			return err
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: competency %q graded twice", domain.ErrValidation, c.Name)
		}
		seen[c.ID] = true
		e.Grades[i].CompetencyID = c.ID
	}
	return nil
}

func (s *entryService) GetDetail(ctx context.Context, id string) (*app.EntryDetail, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	keywords, err := s.keywords.ListByEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	grades, err := s.grades.ListByEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &app.EntryDetail{Entry: e, Keywords: keywords}
	for _, g := range grades {
		view := app.GradeView{Competency: g.CompetencyID, Level: g.Level}
		if c, err := s.competencies.GetByID(ctx, g.CompetencyID); err == nil {
			view.Competency = c.Name
			view.Category = c.Category
		}
		detail.Grades = append(detail.Grades, view)
	}
	e.Keywords = keywords
	e.Grades = grades
	return detail, nil
}

func (s *entryService) List(ctx context.Context) ([]*domain.Entry, error) {
	return s.entries.List(ctx)
}

func (s *entryService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer observe(ctx, s.observer, "delete-entry", startedAt, map[string]any{"entry_id": id}, &err)
	return s.entries.Delete(ctx, id)
}
