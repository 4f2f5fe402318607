package cli

import (
	"fmt"
	"strings"

	"github.com/selenkov/portfolio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCompetencyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "competency",
		Aliases: []string{"comp"},
		Short:   "Manage the competency profile and view levels",
	}

	cmd.AddCommand(
		newCompetencyLoadCmd(app),
		newCompetencyListCmd(app),
		newCompetencyReportCmd(app),
	)

	return cmd
}

func newCompetencyLoadCmd(app *App) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "load [SPECIALTY]",
		Short: "Replace the competency set with a specialty profile",
		Long: `Replace the competency set with a specialty profile.

Existing competencies and every grade referencing them are removed. Goals keep
their competency by name and pick it up again when the new profile has it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if available {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(app.Competencies.Specialties(), "\n"))
				return nil
			}
			specialty := ""
			if len(args) == 1 {
				specialty = args[0]
			}
			resp, err := app.Competencies.LoadProfile(cmd.Context(), specialty)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d competencies for %s\n", resp.Competencies, resp.Specialty)
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "List available specialties")

	return cmd
}

func newCompetencyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the active competencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := app.Competencies.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(comps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No competencies loaded. Run 'portfolio competency load'.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCompetencyList(comps))
			return nil
		},
	}
}

func newCompetencyReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show competency levels, weak zones and recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Competencies.Report(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCompetencyReport(report))
			return nil
		},
	}
}
