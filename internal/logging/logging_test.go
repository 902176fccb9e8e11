package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestWithEpisodeLoggerStoresID(t *testing.T) {
	ctx, log := WithEpisodeLogger(context.Background(), Noop(), "ep-42")
	if log == nil {
		t.Fatal("logger is nil")
	}
	if got := EpisodeIDFromContext(ctx); got != "ep-42" {
		t.Errorf("EpisodeIDFromContext = %q, want ep-42", got)
	}
}

func TestWithEpisodeLoggerGeneratesID(t *testing.T) {
	ctx, _ := WithEpisodeLogger(context.Background(), Noop(), "")
	if got := EpisodeIDFromContext(ctx); got == "" {
		t.Error("expected a generated episode ID")
	}
}

func TestWithEpisodeLoggerNilInputs(t *testing.T) {
	ctx, log := WithEpisodeLogger(nil, nil, "ep-1")
	if ctx == nil || log == nil {
		t.Fatal("nil context or logger returned")
	}
	log.Info(ctx, "still works")
}

func TestEpisodeIDFromContextMissing(t *testing.T) {
	if got := EpisodeIDFromContext(context.Background()); got != "" {
		t.Errorf("EpisodeIDFromContext = %q, want empty", got)
	}
}

func TestContextLoggerRoundTrip(t *testing.T) {
	base := Noop()
	ctx := ContextWithLogger(context.Background(), base)
	if got := LoggerFromContext(ctx); got == nil {
		t.Fatal("LoggerFromContext returned nil for stored logger")
	}
	if got := LoggerFromContext(context.Background()); got != nil {
		t.Error("LoggerFromContext returned a logger for an empty context")
	}
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	if got := parseLevel("nonsense"); got != slog.LevelInfo {
		t.Errorf("parseLevel(nonsense) = %v, want info", got)
	}
}
