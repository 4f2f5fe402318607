package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/selenkov/portfolio/internal/cli/formatter"
	"github.com/selenkov/portfolio/internal/contract"
	"github.com/selenkov/portfolio/internal/domain"
)

// portfolioHuhTheme returns a huh theme matching the formatter palette.
func portfolioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(portfolioHuhTheme()).WithShowHelp(false)
}

// entryWizard collects a new entry interactively. The first form gathers the
// entry fields and which competencies to grade; the second asks for a level
// per selected competency.
func entryWizard(ctx context.Context, app *App) (contract.SaveEntryRequest, error) {
	comps, err := app.Competencies.List(ctx)
	if err != nil {
		return contract.SaveEntryRequest{}, err
	}
	if len(comps) == 0 {
		return contract.SaveEntryRequest{}, fmt.Errorf("no competencies loaded; run 'portfolio competency load' first")
	}

	var (
		title, description, coauthors, keywords string
		entryType                               = string(domain.EntryProject)
		date                                    = time.Now().Format(domain.DateLayout)
		selected                                []string
	)

	typeOptions := make([]huh.Option[string], 0, len(domain.EntryTypes))
	for _, t := range domain.EntryTypes {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}
	compOptions := make([]huh.Option[string], 0, len(comps))
	for _, c := range comps {
		compOptions = append(compOptions, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Category), c.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(validateRequired),
			huh.NewSelect[string]().Title("Type").Options(typeOptions...).Value(&entryType),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&date).Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewText().Title("Description").Value(&description),
			huh.NewInput().Title("Coauthors (comma-separated)").Value(&coauthors),
			huh.NewInput().Title("Keywords (comma-separated, up to 5)").Value(&keywords),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Competencies exercised").
				Options(compOptions...).
				Limit(domain.MaxGradesPerEntry).
				Value(&selected).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return fmt.Errorf("select at least one competency")
					}
					return nil
				}),
		),
	).WithTheme(portfolioHuhTheme())
	if err := form.Run(); err != nil {
		return contract.SaveEntryRequest{}, err
	}

	levels := make([]string, len(selected))
	fields := make([]huh.Field, 0, len(selected))
	for i, name := range selected {
		levels[i] = "3"
		fields = append(fields, huh.NewSelect[string]().
			Title(name).
			Options(huh.NewOptions("1", "2", "3", "4", "5")...).
			Value(&levels[i]))
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(portfolioHuhTheme()).Run(); err != nil {
		return contract.SaveEntryRequest{}, err
	}

	req := contract.SaveEntryRequest{
		Title:       title,
		Type:        domain.EntryType(entryType),
		Date:        date,
		Description: description,
		Coauthors:   coauthors,
		Keywords:    domain.SplitList(keywords),
	}
	for i, name := range selected {
		level, _ := strconv.Atoi(levels[i])
		req.Grades = append(req.Grades, contract.GradeInput{Competency: name, Level: level})
	}
	return req, nil
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
