package cli

import (
	"fmt"

	"github.com/selenkov/portfolio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAchievementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievement",
		Short: "View achievements",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every achievement and whether it is unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Achievements.Overview(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAchievements(views))
			return nil
		},
	})
	return cmd
}

func newMapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Show keyword and coauthor frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.ResearchMap.Map(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResearchMap(m))
			return nil
		},
	}
}

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full portfolio summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := app.Report.Build(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(r))
			return nil
		},
	}
}
