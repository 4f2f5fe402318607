package formatter

import (
	"strings"

	"github.com/selenkov/portfolio/internal/contract"
	"github.com/selenkov/portfolio/internal/domain"
)

const goalBarWidth = 10

// FormatGoals renders refreshed goals in creation order.
func FormatGoals(goals []contract.GoalProgressView) string {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		status := StyleYellow.Render(g.Status)
		if g.Completed {
			status = StyleGreen.Render("✔ " + g.Status)
		}
		rows = append(rows, []string{
			TruncID(g.ID),
			Bold(g.Description),
			Dim(goalKindLabel(g.Kind)),
			g.Progress,
			RenderProgress(GoalFraction(g.Current, g.Target), goalBarWidth),
			status,
		})
	}
	return RenderTable([]string{"ID", "GOAL", "KIND", "PROGRESS", "", "STATUS"}, rows)
}

func goalKindLabel(k domain.GoalKind) string {
	switch k {
	case domain.GoalCountEntries:
		return "entries"
	case domain.GoalRaiseCompetency:
		return "competency"
	default:
		return strings.ReplaceAll(string(k), "-", " ")
	}
}
