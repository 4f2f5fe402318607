package formatter

import (
	"fmt"
	"strings"

	"github.com/selenkov/portfolio/internal/competency"
	"github.com/selenkov/portfolio/internal/contract"
	"github.com/selenkov/portfolio/internal/domain"
)

// FormatCompetencyList renders the active competency set grouped by category.
func FormatCompetencyList(comps []*domain.Competency) string {
	rows := make([][]string, 0, len(comps))
	for _, c := range comps {
		rows = append(rows, []string{TruncID(c.ID), Bold(c.Name), StyleBlue.Render(c.Category), Dim(c.Specialty)})
	}
	return RenderTable([]string{"ID", "COMPETENCY", "CATEGORY", "SPECIALTY"}, rows)
}

// FormatLevels renders the levels block of the competency report.
func FormatLevels(levels []contract.CompetencyLevelView) string {
	rows := make([][]string, 0, len(levels))
	for _, l := range levels {
		rows = append(rows, []string{
			Bold(l.Name),
			StyleBlue.Render(l.Category),
			LevelBadge(l.Mean),
			Dim(plural(l.Grades, "grade")),
		})
	}
	return RenderTable([]string{"COMPETENCY", "CATEGORY", "LEVEL", "GRADES"}, rows)
}

// FormatWeakZones renders competencies assessed below the weak-zone ceiling.
func FormatWeakZones(zones []contract.CompetencyLevelView) string {
	if len(zones) == 0 {
		return Dim("No weak zones.")
	}
	var b strings.Builder
	for _, z := range zones {
		fmt.Fprintf(&b, "%s %s (%.1f)\n", StyleRed.Render("▼"), z.Name, z.Mean)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatRecommendations renders the numbered recommendation list.
func FormatRecommendations(messages []string) string {
	return competency.FormatNumbered(messages)
}

// FormatCompetencyReport renders the three blocks of the competency view.
func FormatCompetencyReport(r *contract.CompetencyReport) string {
	var b strings.Builder
	if r.Specialty != "" {
		b.WriteString(Dim("Specialty: "+r.Specialty) + "\n\n")
	}
	b.WriteString(Header("Levels") + "\n")
	b.WriteString(FormatLevels(r.Levels) + "\n")
	b.WriteString(Header("Weak zones") + "\n")
	b.WriteString(FormatWeakZones(r.WeakZones) + "\n\n")
	b.WriteString(Header("Recommendations") + "\n")
	b.WriteString(FormatRecommendations(r.Recommendations))
	return b.String()
}
