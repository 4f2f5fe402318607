package competency

import (
	"cmp"
	"math"
	"slices"

	"github.com/selenkov/portfolio/internal/domain"
)

// WeakZoneCeiling is the exclusive upper bound of a weak zone.
const WeakZoneCeiling = 3.0

// Level is the observed mean grade of one competency.
type Level struct {
	Competency *domain.Competency
	Mean       float64
	Grades     int
}

func (l Level) Assessed() bool { return l.Grades > 0 }

// Rounded is the mean rounded to one decimal, as it is displayed.
func (l Level) Rounded() float64 { return math.Round(l.Mean*10) / 10 }

// Report is the aggregated competency set, ordered by category then name.
type Report struct {
	Levels []Level
}

// WeakZones returns the competencies whose rounded level lies strictly
// between 0 and WeakZoneCeiling, so a mean of 2.96 shown as 3.0 is not weak.
func (r Report) WeakZones() []Level {
	var out []Level
	for _, l := range r.Levels {
		if lv := l.Rounded(); lv > 0 && lv < WeakZoneCeiling {
			out = append(out, l)
		}
	}
	return out
}

// Aggregate computes the mean grade of every competency in comps. Grades that
// reference competencies outside comps are ignored.
func Aggregate(comps []*domain.Competency, grades []domain.Grade) Report {
	type acc struct{ sum, n int }
	byID := make(map[string]*acc, len(comps))
	for _, c := range comps {
		byID[c.ID] = &acc{}
	}
	for _, g := range grades {
		if a, ok := byID[g.CompetencyID]; ok {
			a.sum += g.Level
			a.n++
		}
	}

	levels := make([]Level, 0, len(comps))
	for _, c := range comps {
		a := byID[c.ID]
		l := Level{Competency: c, Grades: a.n}
		if a.n > 0 {
			l.Mean = float64(a.sum) / float64(a.n)
		}
		levels = append(levels, l)
	}

	slices.SortStableFunc(levels, func(a, b Level) int {
		return cmp.Or(
			cmp.Compare(a.Competency.Category, b.Competency.Category),
			cmp.Compare(a.Competency.Name, b.Competency.Name),
		)
	})
	return Report{Levels: levels}
}
