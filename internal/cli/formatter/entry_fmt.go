package formatter

import (
	"fmt"
	"strings"

	"github.com/selenkov/portfolio/internal/contract"
	"github.com/selenkov/portfolio/internal/domain"
)

const titleWidth = 40

// FormatEntryList renders entries newest first as a table.
func FormatEntryList(entries []*domain.Entry) string {
	headers := []string{"ID", "DATE", "TYPE", "TITLE", "COAUTHORS"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		coauthors := Dim("--")
		if e.HasCoauthors() {
			coauthors = StyleFg.Render(Truncate(strings.Join(e.CoauthorNames(), ", "), titleWidth))
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			EntryDate(e.Date),
			TypeBadge(e.Type),
			Bold(Truncate(e.Title, titleWidth)),
			coauthors,
		})
	}
	return RenderTable(headers, rows) + Dim(fmt.Sprintf("%d entries", len(entries)))
}

// FormatEntryDetail renders one entry with its keywords and grades.
func FormatEntryDetail(d *contract.EntryDetail) string {
	e := d.Entry
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID"), e.ID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Type"), TypeBadge(e.Type))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Date"), EntryDate(e.Date))
	if e.HasCoauthors() {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Coauthors"), strings.Join(e.CoauthorNames(), ", "))
	}
	if len(d.Keywords) > 0 {
		fmt.Fprintf(&b, "%s  %s\n", Dim("Keywords"), StyleBlue.Render(strings.Join(d.Keywords, ", ")))
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Description)
	}
	if len(d.Grades) > 0 {
		b.WriteString("\n")
		rows := make([][]string, 0, len(d.Grades))
		for _, g := range d.Grades {
			rows = append(rows, []string{g.Competency, Dim(g.Category), LevelBadge(float64(g.Level))})
		}
		b.WriteString(RenderTable([]string{"COMPETENCY", "CATEGORY", "LEVEL"}, rows))
	}
	return RenderBox(e.Title, strings.TrimRight(b.String(), "\n"))
}

// FormatSaveResult reports a saved entry, any newly unlocked achievements and
// the warnings collected after the save.
func FormatSaveResult(resp *contract.SaveEntryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Saved entry %s [%s]\n", Bold(resp.Entry.Title), resp.Entry.DisplayID())
	for _, u := range resp.Unlocked {
		b.WriteString(FormatUnlock(u) + "\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("warning: "+w) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatUnlock renders a single unlock notification.
func FormatUnlock(u contract.UnlockEvent) string {
	return StyleGreen.Render("★ Achievement unlocked: ") + Bold(u.Achievement)
}

// FormatImportResult reports a bulk import.
func FormatImportResult(resp *contract.ImportEntriesResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported %s\n", plural(len(resp.Entries), "entry"))
	for _, u := range resp.Unlocked {
		b.WriteString(FormatUnlock(u) + "\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("warning: "+w) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
