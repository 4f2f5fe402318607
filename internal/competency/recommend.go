package competency

import (
	"fmt"
	"strings"
	"unicode"
)

// Tier classifies a competency level.
type Tier int

const (
	TierUnassessed Tier = iota
	TierCritical
	TierBelowAverage
	TierSolid
	TierExcellent
)

// Classify maps a mean level to its tier. The tiers partition the range.
func Classify(level float64) Tier {
	switch {
	case level == 0:
		return TierUnassessed
	case level < 2:
		return TierCritical
	case level < 3:
		return TierBelowAverage
	case level < 4.5:
		return TierSolid
	default:
		return TierExcellent
	}
}

// AllWellDeveloped is emitted when no competency produced advice.
const AllWellDeveloped = "All competencies are well developed."

// Name matchers that select the specific advice for critical competencies.
// Russian names inflect, so they also match by stem.
var (
	programmingMatch = nameMatcher{
		words: tokenSet("programming", "coding"),
		stems: []string{"программир"},
	}
	databaseMatch = nameMatcher{
		words: tokenSet("database", "databases", "db", "sql", "бд", "субд"),
	}
	presentationMatch = nameMatcher{
		words: tokenSet("presentation", "presentations", "presenting"),
		stems: []string{"презентац"},
	}
)

// Recommend returns one message per level that warrants advice, in input
// order. Solid competencies produce no message. When nothing is emitted the
// result is the single AllWellDeveloped message.
func Recommend(levels []Level) []string {
	var out []string
	for _, l := range levels {
		if msg, ok := advise(l.Competency.Name, l.Mean); ok {
			out = append(out, msg)
		}
	}
	if len(out) == 0 {
		return []string{AllWellDeveloped}
	}
	return out
}

func advise(name string, level float64) (string, bool) {
	switch Classify(level) {
	case TierUnassessed:
		return fmt.Sprintf("%s: not yet assessed. Add an entry that exercises it.", name), true
	case TierCritical:
		return criticalAdvice(name), true
	case TierBelowAverage:
		return fmt.Sprintf("%s: below average (%.1f). Practice more.", name, level), true
	case TierExcellent:
		return fmt.Sprintf("%s: excellent level (%.1f). Share your expertise with others.", name, level), true
	default:
		return "", false
	}
}

func criticalAdvice(name string) string {
	tokens := tokenize(name)
	switch {
	case programmingMatch.matches(tokens):
		return fmt.Sprintf("%s: critical level. Solve problems on LeetCode or Codewars.", name)
	case databaseMatch.matches(tokens):
		return fmt.Sprintf("%s: critical level. Take a course on SQL and NoSQL databases.", name)
	case presentationMatch.matches(tokens):
		return fmt.Sprintf("%s: critical level. Give a talk at a student conference.", name)
	default:
		return fmt.Sprintf("%s: needs serious development. Consider taking a course.", name)
	}
}

// FormatNumbered renders messages as a 1-indexed list, one per line.
func FormatNumbered(messages []string) string {
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, m)
	}
	return b.String()
}

type set map[string]struct{}

func tokenSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// tokenize splits a name into lower-cased words. Matching whole words keeps
// "Feedback" from matching "db".
func tokenize(name string) set {
	return tokenSet(strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})...)
}

// nameMatcher matches a tokenized name by whole word or by word stem.
type nameMatcher struct {
	words set
	stems []string
}

func (m nameMatcher) matches(tokens set) bool {
	for w := range tokens {
		if _, ok := m.words[w]; ok {
			return true
		}
		for _, stem := range m.stems {
			if strings.HasPrefix(w, stem) {
				return true
			}
		}
	}
	return false
}
