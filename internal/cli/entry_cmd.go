package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/selenkov/portfolio/internal/cli/formatter"
	"github.com/selenkov/portfolio/internal/contract"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/importer"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Log and browse portfolio entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryListCmd(app),
		newEntryShowCmd(app),
		newEntryDeleteCmd(app),
		newEntryImportCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var (
		title, entryType, date, description, coauthors string
		keywords, grades                               []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry and check achievements",
		Long: `Add a project, publication, conference, internship or grant.

Grade between one and three competencies with --grade "Name=level" (level 1-5).
Without --title on an interactive terminal a form collects the fields.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var req contract.SaveEntryRequest
			if title == "" && app.interactive() {
				r, err := entryWizard(ctx, app)
				if err != nil {
					return err
				}
				req = r
			} else {
				parsed, err := parseGrades(grades)
				if err != nil {
					return err
				}
				req = contract.SaveEntryRequest{
					Title:       title,
					Type:        domain.EntryType(entryType),
					Date:        date,
					Description: description,
					Coauthors:   coauthors,
					Keywords:    keywords,
					Grades:      parsed,
				}
			}

			resp, err := app.Entries.Save(ctx, req)
			if resp != nil && resp.Entry != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSaveResult(resp))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&entryType, "type", string(domain.EntryProject), "Entry type: project, publication, conference, internship, grant")
	cmd.Flags().StringVar(&date, "date", time.Now().Format(domain.DateLayout), "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	cmd.Flags().StringVar(&coauthors, "coauthors", "", "Comma-separated coauthor names")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "Keyword (repeatable or comma-separated, up to 5)")
	cmd.Flags().StringArrayVar(&grades, "grade", nil, `Competency grade as "Name=level" (repeatable, 1-3)`)

	return cmd
}

// parseGrades turns "Name=level" flag values into grade inputs. The split is
// on the last "=" so competency names may contain one.
func parseGrades(raw []string) ([]contract.GradeInput, error) {
	out := make([]contract.GradeInput, 0, len(raw))
	for _, r := range raw {
		i := strings.LastIndex(r, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid grade %q: expected Name=level", r)
		}
		level, err := strconv.Atoi(strings.TrimSpace(r[i+1:]))
		if err != nil {
			return nil, fmt.Errorf("invalid grade level in %q: %w", r, err)
		}
		out = append(out, contract.GradeInput{Competency: strings.TrimSpace(r[:i]), Level: level})
	}
	return out, nil
}

func newEntryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Entries.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryList(entries))
			return nil
		},
	}
}

func newEntryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an entry with its keywords and grades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			detail, err := app.Entries.GetDetail(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntryDetail(detail))
			return nil
		},
	}
}

func newEntryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an entry with its keyword links and grades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", id[:min(8, len(id))])
			return nil
		},
	}
}

func newEntryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import entries from a JSON or YAML file",
		Long: `Import entries from a JSON or YAML file.

The file holds an "entries" list. Every entry is validated before anything is
stored, and all entries are saved in one transaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadImportSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
				return fmt.Errorf("invalid import file:\n%w", errors.Join(errs...))
			}

			resp, err := app.Entries.Import(cmd.Context(), importer.Convert(schema))
			if resp != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(resp))
			}
			return err
		},
	}
}
