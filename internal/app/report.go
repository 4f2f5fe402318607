package app

import (
	"time"

	"github.com/selenkov/portfolio/internal/domain"
)

// PortfolioReport is the full summary. Sections that could not be computed
// are left empty and explained in Warnings.
type PortfolioReport struct {
	GeneratedAt  time.Time
	Entries      []*domain.Entry
	ResearchMap  ResearchMap
	Competencies CompetencyReport
	Achievements []AchievementView
	Goals        []GoalProgressView
	Warnings     []string
}

type LoadProfileResponse struct {
	Specialty    string
	Competencies int
}
