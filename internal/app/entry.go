package app

import "github.com/selenkov/portfolio/internal/domain"

// GradeInput references a competency by name or id.
type GradeInput struct {
	Competency string
	Level      int
}

type SaveEntryRequest struct {
	Title       string
	Type        domain.EntryType
	Date        string
	Description string
	Coauthors   string
	Keywords    []string
	Grades      []GradeInput
}

type SaveEntryResponse struct {
	Entry           *domain.Entry
	DroppedKeywords int
	Unlocked        []UnlockEvent
	// Warnings carries best-effort failures that did not block the save.
	Warnings []string
}

type GradeView struct {
	Competency string
	Category   string
	Level      int
}

type EntryDetail struct {
	Entry    *domain.Entry
	Keywords []string
	Grades   []GradeView
}

// ImportEntriesResponse reports a bulk import. Unlocks are computed once,
// after every entry is stored.
type ImportEntriesResponse struct {
	Entries         []*domain.Entry
	DroppedKeywords int
	Unlocked        []UnlockEvent
	Warnings        []string
}
