package formatter

import (
	"strings"

	"github.com/selenkov/portfolio/internal/contract"
)

// FormatReport renders the full portfolio summary. Sections that failed are
// listed as warnings at the end.
func FormatReport(r *contract.PortfolioReport) string {
	var b strings.Builder
	b.WriteString(Bold("Portfolio report") + "  " + Dim(r.GeneratedAt.Format("2006-01-02 15:04")) + "\n\n")

	b.WriteString(Header("Entries") + "\n")
	if len(r.Entries) == 0 {
		b.WriteString(Dim("No entries yet.") + "\n")
	} else {
		b.WriteString(FormatEntryList(r.Entries) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(FormatResearchMap(&r.ResearchMap) + "\n")

	b.WriteString(FormatCompetencyReport(&r.Competencies) + "\n\n")

	b.WriteString(Header("Achievements") + "\n")
	b.WriteString(FormatAchievements(r.Achievements) + "\n\n")

	b.WriteString(Header("Goals") + "\n")
	if len(r.Goals) == 0 {
		b.WriteString(Dim("No goals set.") + "\n")
	} else {
		b.WriteString(FormatGoals(r.Goals))
	}

	for _, w := range r.Warnings {
		b.WriteString("\n" + StyleYellow.Render("warning: "+w))
	}
	return b.String()
}
