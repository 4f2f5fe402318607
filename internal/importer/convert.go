package importer

import (
	"strings"

	"github.com/selenkov/portfolio/internal/app"
	"github.com/selenkov/portfolio/internal/domain"
)

// Convert transforms a validated ImportSchema into save requests in file
// order. Call ValidateImportSchema first.
func Convert(schema *ImportSchema) []app.SaveEntryRequest {
	reqs := make([]app.SaveEntryRequest, 0, len(schema.Entries))
	for _, e := range schema.Entries {
		req := app.SaveEntryRequest{
			Title:       e.Title,
			Type:        domain.EntryType(strings.ToLower(strings.TrimSpace(e.Type))),
			Date:        e.Date,
			Description: e.Description,
			Coauthors:   joinCoauthors(e.Coauthors),
			Keywords:    e.Keywords,
		}
		for _, g := range e.Grades {
			req.Grades = append(req.Grades, app.GradeInput{Competency: g.Competency, Level: g.Level})
		}
		reqs = append(reqs, req)
	}
	return reqs
}

// joinCoauthors builds the comma-separated coauthors field, dropping blanks.
func joinCoauthors(names []string) string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, ", ")
}
