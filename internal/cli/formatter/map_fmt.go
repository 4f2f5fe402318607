package formatter

import (
	"strconv"
	"strings"

	"github.com/selenkov/portfolio/internal/contract"
)

// FormatResearchMap renders keyword and coauthor frequencies.
func FormatResearchMap(m *contract.ResearchMap) string {
	var b strings.Builder
	b.WriteString(Header("Keywords") + "\n")
	b.WriteString(formatFrequencies(m.Keywords, "No keywords yet.") + "\n")
	b.WriteString(Header("Coauthors") + "\n")
	b.WriteString(formatFrequencies(m.Coauthors, "No coauthors yet."))
	return b.String()
}

func formatFrequencies(items []contract.FrequencyView, empty string) string {
	if len(items) == 0 {
		return Dim(empty) + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, f := range items {
		rows = append(rows, []string{StyleFg.Render(f.Label), StyleBlue.Render(plural(f.Count, "entry"))})
	}
	return RenderTable([]string{"NAME", "ENTRIES"}, rows)
}

func itoa(n int) string { return strconv.Itoa(n) }

// plural renders "1 entry", "2 entries", "3 grades".
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	switch {
	case strings.HasSuffix(noun, "y"):
		noun = strings.TrimSuffix(noun, "y") + "ies"
	default:
		noun += "s"
	}
	return itoa(n) + " " + noun
}
