package cli

import (
	"errors"
	"fmt"

	"github.com/selenkov/portfolio/internal/cli/formatter"
	"github.com/selenkov/portfolio/internal/contract"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/spf13/cobra"
)

var errNeedsConfirmation = errors.New("refusing to clear goals without confirmation; pass --yes")

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Set and track semester goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalDeleteCmd(app),
		newGoalClearCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var description, kind, competency string
	var target int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		Long: `Create a goal.

count-entries goals track the total number of entries. raise-competency goals
track the mean grade of --competency, which is appended to the description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := app.Goals.Create(cmd.Context(), contract.CreateGoalRequest{
				Description: description,
				Kind:        domain.GoalKind(kind),
				Competency:  competency,
				Target:      target,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s [%s]\n", g.Description, g.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Goal description")
	cmd.Flags().StringVar(&kind, "kind", string(domain.GoalCountEntries), "Goal kind: count-entries or raise-competency")
	cmd.Flags().StringVar(&competency, "competency", "", "Target competency name (raise-competency)")
	cmd.Flags().IntVar(&target, "target", 0, "Target value")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Refresh and list goal progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Goals.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No goals set.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGoals(views))
			return nil
		},
	}
}

func newGoalDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", id[:min(8, len(id))])
			return nil
		},
	}
}

func newGoalClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return errNeedsConfirmation
				}
				var confirmed bool
				if err := wizardConfirm("Delete all goals?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			n, err := app.Goals.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d goals\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
