package domain

type EntryType string

const (
	EntryProject     EntryType = "project"
	EntryPublication EntryType = "publication"
	EntryConference  EntryType = "conference"
	EntryInternship  EntryType = "internship"
	EntryGrant       EntryType = "grant"
)

// EntryTypes lists the accepted entry types in display order.
var EntryTypes = []EntryType{EntryProject, EntryPublication, EntryConference, EntryInternship, EntryGrant}

// ValidEntryTypes is the canonical set of accepted entry type strings.
var ValidEntryTypes = map[string]bool{
	"project": true, "publication": true, "conference": true,
	"internship": true, "grant": true,
}

type GoalKind string

const (
	GoalCountEntries    GoalKind = "count-entries"
	GoalRaiseCompetency GoalKind = "raise-competency"
)

// ValidGoalKinds is the canonical set of accepted goal kind strings.
var ValidGoalKinds = map[string]bool{
	"count-entries":    true,
	"raise-competency": true,
}

// DefaultUserID is the owner of every unlock record. The data model is
// single-user by convention.
const DefaultUserID int64 = 1
