package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/selenkov/portfolio/internal/goal"
	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "save-entry", Success: true, Duration: time.Millisecond})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "load-profile", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "use_case=save-entry")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

type fakeRefresher struct{}

func (fakeRefresher) RefreshAll(context.Context) ([]goal.Progress, error) {
	return nil, nil
}

func TestGoalService_ReportsUseCases(t *testing.T) {
	rec := &recordingObserver{}
	goals := NewGoalService(nil, nil, fakeRefresher{}, rec)

	_, err := goals.Refresh(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, rec.events, 1) {
		assert.Equal(t, "refresh-goals", rec.events[0].Name)
		assert.True(t, rec.events[0].Success)
	}
}
