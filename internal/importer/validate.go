package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/selenkov/portfolio/internal/domain"
)

// ValidateImportSchema checks the import file for errors before conversion.
// Returns a slice of all validation errors found. Competency names are
// checked against the active profile later, when the entries are stored.
func ValidateImportSchema(schema *ImportSchema) []error {
	if len(schema.Entries) == 0 {
		return []error{fmt.Errorf("entries: at least one entry is required")}
	}
	var errs []error
	for i := range schema.Entries {
		errs = append(errs, validateEntry(fmt.Sprintf("entries[%d]", i), &schema.Entries[i])...)
	}
	return errs
}

func validateEntry(path string, e *EntryImport) []error {
	var errs []error

	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", path))
	}
	if !domain.ValidEntryTypes[strings.ToLower(strings.TrimSpace(e.Type))] {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", path, e.Type))
	}
	if e.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", path))
	} else if _, err := time.Parse(domain.DateLayout, e.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", path, e.Date))
	}

	switch {
	case len(e.Grades) == 0:
		errs = append(errs, fmt.Errorf("%s.grades: at least one grade is required", path))
	case len(e.Grades) > domain.MaxGradesPerEntry:
		errs = append(errs, fmt.Errorf("%s.grades: at most %d grades, got %d", path, domain.MaxGradesPerEntry, len(e.Grades)))
	}
	seen := make(map[string]bool, len(e.Grades))
	for j, g := range e.Grades {
		gp := fmt.Sprintf("%s.grades[%d]", path, j)
		name := strings.ToLower(strings.TrimSpace(g.Competency))
		if name == "" {
			errs = append(errs, fmt.Errorf("%s.competency is required", gp))
		} else if seen[name] {
			errs = append(errs, fmt.Errorf("%s.competency: %q graded twice", gp, g.Competency))
		}
		seen[name] = true
		if g.Level < domain.MinGradeLevel || g.Level > domain.MaxGradeLevel {
			errs = append(errs, fmt.Errorf("%s.level: %d out of range %d-%d", gp, g.Level, domain.MinGradeLevel, domain.MaxGradeLevel))
		}
	}

	return errs
}
