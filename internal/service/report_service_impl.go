package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/selenkov/portfolio/internal/app"
)

type reportService struct {
	entries      EntryService
	researchMap  ResearchMapService
	competencies CompetencyService
	achievements AchievementService
	goals        GoalService
	logger       *slog.Logger
	observer     UseCaseObserver
}

func NewReportService(
	entries EntryService,
	researchMap ResearchMapService,
	competencies CompetencyService,
	achievements AchievementService,
	goals GoalService,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		entries:      entries,
		researchMap:  researchMap,
		competencies: competencies,
		achievements: achievements,
		goals:        goals,
		logger:       loggerOrDefault(logger),
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Build assembles the portfolio summary. A failing section is logged and
// reported as a warning; the other sections are still filled in.
func (s *reportService) Build(ctx context.Context) (report *app.PortfolioReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "build-report", startedAt, fields, &err)

	report = &app.PortfolioReport{GeneratedAt: startedAt}
	degrade := func(section string, sectionErr error) {
		s.logger.Warn("report section unavailable", "section", section, "error", sectionErr)
		report.Warnings = append(report.Warnings, section+": no data available")
	}

	if entries, err := s.entries.List(ctx); err != nil {
		degrade("entries", err)
	} else {
		report.Entries = entries
	}
	if m, err := s.researchMap.Map(ctx); err != nil {
		degrade("research map", err)
	} else {
		report.ResearchMap = *m
	}
	if c, err := s.competencies.Report(ctx); err != nil {
		degrade("competencies", err)
	} else {
		report.Competencies = *c
	}
	if a, err := s.achievements.Overview(ctx); err != nil {
		degrade("achievements", err)
	} else {
		report.Achievements = a
	}
	if g, err := s.goals.Refresh(ctx); err != nil {
		degrade("goals", err)
	} else {
		report.Goals = g
	}

	fields["entries"] = len(report.Entries)
	fields["warnings"] = len(report.Warnings)
	return report, nil
}
