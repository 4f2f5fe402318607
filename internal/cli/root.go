package cli

import (
	"github.com/selenkov/portfolio/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Entries      service.EntryService
	Goals        service.GoalService
	Competencies service.CompetencyService
	Achievements service.AchievementService
	ResearchMap  service.ResearchMapService
	Report       service.ReportService

	// IsInteractive reports whether stdin is a terminal. Prompts are only
	// shown when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "portfolio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Student portfolio and achievement tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEntryCmd(app),
		newGoalCmd(app),
		newCompetencyCmd(app),
		newAchievementCmd(app),
		newMapCmd(app),
		newReportCmd(app),
	)

	return root
}
