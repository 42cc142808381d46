package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "add-recipe", Success: true, Fields: map[string]any{"id": "x1"}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "reset-storage", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "use_case=add-recipe")
	assert.Contains(t, out, "id=x1")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
