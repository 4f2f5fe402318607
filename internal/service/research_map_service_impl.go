package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/selenkov/portfolio/internal/app"
	"github.com/selenkov/portfolio/internal/domain"
	"github.com/selenkov/portfolio/internal/repository"
)

type researchMapService struct {
	entries  repository.EntryRepo
	keywords repository.KeywordRepo
}

func NewResearchMapService(entries repository.EntryRepo, keywords repository.KeywordRepo) ResearchMapService {
	return &researchMapService{entries: entries, keywords: keywords}
}

// Map counts entries per keyword and per coauthor, most frequent first.
func (s *researchMapService) Map(ctx context.Context) (*app.ResearchMap, error) {
	freq, err := s.keywords.Frequencies(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := s.entries.ListCoauthors(ctx)
	if err != nil {
		return nil, err
	}

	m := &app.ResearchMap{}
	for _, f := range freq {
		m.Keywords = append(m.Keywords, app.FrequencyView{Label: f.Keyword, Count: f.Count})
	}
	m.Coauthors = countCoauthors(raw)
	return m, nil
}

// countCoauthors counts each name once per entry. Names are matched
// case-insensitively; the first spelling seen is reported.
func countCoauthors(fields []string) []app.FrequencyView {
	counts := map[string]int{}
	spelling := map[string]string{}
	for _, field := range fields {
		inEntry := map[string]bool{}
		for _, name := range domain.SplitList(field) {
			key := strings.ToLower(name)
			if inEntry[key] {
				continue
			}
			inEntry[key] = true
			if _, ok := spelling[key]; !ok {
				spelling[key] = name
			}
			counts[key]++
		}
	}

	out := make([]app.FrequencyView, 0, len(counts))
	for key, n := range counts {
		out = append(out, app.FrequencyView{Label: spelling[key], Count: n})
	}
	slices.SortFunc(out, func(a, b app.FrequencyView) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Label, b.Label))
	})
	return out
}
