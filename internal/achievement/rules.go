package achievement

import (
	"github.com/google/uuid"
	"github.com/selenkov/portfolio/internal/domain"
)

// Metric identifies one aggregate over the entry store.
type Metric int

const (
	MetricEntryCount Metric = iota
	MetricCoauthoredEntries
	MetricDistinctTypes
	MetricEntriesThisYear
	MetricDescriptionLength
)

func (m Metric) String() string {
	switch m {
	case MetricEntryCount:
		return "entry_count"
	case MetricCoauthoredEntries:
		return "coauthored_entries"
	case MetricDistinctTypes:
		return "distinct_types"
	case MetricEntriesThisYear:
		return "entries_this_year"
	case MetricDescriptionLength:
		return "description_length"
	default:
		return "unknown"
	}
}

// Rule unlocks the named achievement when Met holds for the value of Metric.
type Rule struct {
	Name        string
	Description string
	Metric      Metric
	Met         func(value int) bool
}

// Rules returns the achievement rule table in catalog order.
func Rules() []Rule {
	return []Rule{
		{
			Name:        "First step",
			Description: "Log your first portfolio entry",
			Metric:      MetricEntryCount,
			// Fires only while the store holds exactly one entry.
			Met: func(n int) bool { return n == 1 },
		},
		{
			Name:        "Team player",
			Description: "Log three entries with coauthors",
			Metric:      MetricCoauthoredEntries,
			Met:         func(n int) bool { return n >= 3 },
		},
		{
			Name:        "Versatile",
			Description: "Log entries of three different types",
			Metric:      MetricDistinctTypes,
			Met:         func(n int) bool { return n >= 3 },
		},
		{
			Name:        "Productive year",
			Description: "Log three entries dated this year",
			Metric:      MetricEntriesThisYear,
			Met:         func(n int) bool { return n >= 3 },
		},
		{
			Name:        "Wordsmith",
			Description: "Write more than 5000 characters of descriptions",
			Metric:      MetricDescriptionLength,
			Met:         func(n int) bool { return n > 5000 },
		},
	}
}

// catalogNamespace derives stable achievement ids from names, so every store
// seeds the same ids.
var catalogNamespace = uuid.MustParse("6f1c7a52-3d0e-4b8e-9a51-2f4d9c0e7b13")

// Catalog returns the achievements to seed, derived from the rule table.
func Catalog() []domain.Achievement {
	rules := Rules()
	out := make([]domain.Achievement, 0, len(rules))
	for i, r := range rules {
		out = append(out, domain.Achievement{
			ID:          uuid.NewSHA1(catalogNamespace, []byte(r.Name)).String(),
			Name:        r.Name,
			Description: r.Description,
			Position:    i + 1,
		})
	}
	return out
}
