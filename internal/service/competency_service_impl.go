package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/selenkov/portfolio/internal/app"
	"github.com/selenkov/portfolio/internal/competency"
	"github.com/selenkov/portfolio/internal/db"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/profile"
	"github.com/selenkov/portfolio/internal/repository"
)

type competencyService struct {
	competencies repository.CompetencyRepo
	grades       repository.GradeRepo
	catalog      *profile.Catalog
	uow          db.UnitOfWork
	observer     UseCaseObserver
}

func NewCompetencyService(
	competencies repository.CompetencyRepo,
	grades repository.GradeRepo,
	catalog *profile.Catalog,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CompetencyService {
	return &competencyService{
		competencies: competencies,
		grades:       grades,
		catalog:      catalog,
		uow:          uow,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// LoadProfile replaces the active competency set with the specialty's
// competencies. Existing grades are dropped with the old set.
func (s *competencyService) LoadProfile(ctx context.Context, specialty string) (resp *app.LoadProfileResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"specialty": specialty}
	defer observe(ctx, s.observer, "load-profile", startedAt, fields, &err)

	p, err := s.catalog.Get(specialty)
	if err != nil {
		return nil, err
	}
	fields["specialty"] = p.Specialty

	now := time.Now().UTC()
	comps := make([]*domain.Competency, 0, len(p.Competencies))
	for _, c := range p.Competencies {
		comps = append(comps, &domain.Competency{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(c.Name),
			Category:  strings.TrimSpace(c.Category),
			CreatedAt: now,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLCompetencyRepo(tx).ReplaceAll(ctx, p.Specialty, comps)
	})
	if err != nil {
		return nil, err
	}
	fields["competencies"] = len(comps)
	return &app.LoadProfileResponse{Specialty: p.Specialty, Competencies: len(comps)}, nil
}

func (s *competencyService) Specialties() []string {
	return s.catalog.Specialties()
}

func (s *competencyService) List(ctx context.Context) ([]*domain.Competency, error) {
	return s.competencies.List(ctx)
}

// Report aggregates grades over the active set and derives weak zones and
// recommendations.
func (s *competencyService) Report(ctx context.Context) (report *app.CompetencyReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "competency-report", startedAt, fields, &err)

	comps, err := s.competencies.List(ctx)
	if err != nil {
		return nil, err
	}
	grades, err := s.grades.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	agg := competency.Aggregate(comps, grades)
	report = &app.CompetencyReport{
		Levels:          levelViews(agg.Levels),
		WeakZones:       levelViews(agg.WeakZones()),
		Recommendations: competency.Recommend(agg.Levels),
	}
	if len(comps) > 0 {
		report.Specialty = comps[0].Specialty
	}
	fields["competencies"] = len(report.Levels)
	fields["weak_zones"] = len(report.WeakZones)
	return report, nil
}

func levelViews(levels []competency.Level) []app.CompetencyLevelView {
	out := make([]app.CompetencyLevelView, 0, len(levels))
	for _, l := range levels {
		out = append(out, app.CompetencyLevelView{
			Name:     l.Competency.Name,
			Category: l.Competency.Category,
			Mean:     l.Mean,
			Grades:   l.Grades,
		})
	}
	return out
}
