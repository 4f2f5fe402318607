package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for entry dates.
const DateLayout = "2006-01-02"

const (
	MaxGradesPerEntry   = 3
	MaxKeywordsPerEntry = 5
	MinGradeLevel       = 1
	MaxGradeLevel       = 5
)

// Entry is one logged portfolio item: a project, publication, conference talk,
// internship or grant.
type Entry struct {
	ID          string
	Title       string
	Type        EntryType
	Date        time.Time
	Description string
	Coauthors   string
	Keywords    []string
	Grades      []Grade
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Grade links an entry to a competency with a level in [1,5].
type Grade struct {
	EntryID      string
	CompetencyID string
	Level        int
}

// Validate checks required fields and grade limits. Grades must be present
// (1 to 3) and carry levels in range.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !ValidEntryTypes[string(e.Type)] {
		return fmt.Errorf("%w: unknown entry type %q", ErrValidation, e.Type)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if len(e.Grades) == 0 {
		return fmt.Errorf("%w: at least one competency grade is required", ErrValidation)
	}
	if len(e.Grades) > MaxGradesPerEntry {
		return fmt.Errorf("%w: at most %d competency grades per entry, got %d", ErrValidation, MaxGradesPerEntry, len(e.Grades))
	}
	seen := make(map[string]bool, len(e.Grades))
	for _, g := range e.Grades {
		if g.Level < MinGradeLevel || g.Level > MaxGradeLevel {
			return fmt.Errorf("%w: grade level %d out of range %d-%d", ErrValidation, g.Level, MinGradeLevel, MaxGradeLevel)
		}
		if seen[g.CompetencyID] {
			return fmt.Errorf("%w: competency %s graded twice", ErrValidation, g.CompetencyID)
		}
		seen[g.CompetencyID] = true
	}
	return nil
}

// Normalize trims free-text fields so whitespace-only coauthors are stored blank.
func (e *Entry) Normalize() {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Coauthors = strings.TrimSpace(e.Coauthors)
}

// HasCoauthors reports whether the coauthors field carries any non-whitespace text.
func (e *Entry) HasCoauthors() bool {
	return strings.TrimSpace(e.Coauthors) != ""
}

// CoauthorNames splits the comma-separated coauthors field into trimmed names.
func (e *Entry) CoauthorNames() []string {
	return SplitList(e.Coauthors)
}

// DisplayID truncates ID to 8 characters.
func (e *Entry) DisplayID() string {
	if len(e.ID) >= 8 {
		return e.ID[:8]
	}
	return e.ID
}

// ParseDate parses a YYYY-MM-DD entry date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// SplitList splits a comma-separated list, trimming items and dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeKeywords de-duplicates keywords case-insensitively and keeps at most
// MaxKeywordsPerEntry of them. It returns how many were dropped by the limit.
func NormalizeKeywords(raw []string) (kept []string, dropped int) {
	seen := make(map[string]bool, len(raw))
	for _, k := range raw {
		k = strings.TrimSpace(k)
		if k == "" || seen[strings.ToLower(k)] {
			continue
		}
		seen[strings.ToLower(k)] = true
		if len(kept) == MaxKeywordsPerEntry {
			dropped++
			continue
		}
		kept = append(kept, k)
	}
	return kept, dropped
}
