package service

import (
	"context"
	"errors"
	"testing"

	"github.com/selenkov/portfolio/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingMapService struct{}

func (failingMapService) Map(context.Context) (*app.ResearchMap, error) {
	return nil, errors.New("keywords table missing")
}

func TestReportService_Build(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.Entries.Save(ctx, saveRequest("Only entry"))
	require.NoError(t, err)

	report, err := s.Report.Build(ctx)
	require.NoError(t, err)
	assert.Len(t, report.Entries, 1)
	assert.Len(t, report.Achievements, 5)
	assert.Len(t, report.Competencies.Levels, 7)
	assert.Empty(t, report.Warnings)
}

func TestReportService_Build_DegradesFailingSection(t *testing.T) {
	s := newTestServices(t)
	report := NewReportService(s.Entries, failingMapService{}, s.Competencies, s.Achievements, s.Goals, discardLogger())

	r, err := report.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"research map: no data available"}, r.Warnings)
	assert.Len(t, r.Achievements, 5, "other sections are still built")
}
