package app

import (
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "unknown", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
	}

	for _, tc := range cases {
		got := parseLogLevel(tc.in)
		if got != tc.want {
			t.Fatalf("parseLogLevel(%q)=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestPrettyHandlerLine(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	log := slog.New(newPrettyHandler(&sb, slog.LevelInfo))

	log.Info("server.start", "addr", "0.0.0.0:8080", "db_enabled", true)
	log.Debug("should.not.appear")

	out := sb.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", out)
	}
	for _, want := range []string{"INFO", "server.start", "addr=0.0.0.0:8080", "db_enabled=true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestPrettyHandlerQuotesAndGroups(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	log := slog.New(newPrettyHandler(&sb, slog.LevelInfo)).WithGroup("http")

	log.Info("http.request", "user_agent", "curl/8.0 (linux)")

	out := sb.String()
	if !strings.Contains(out, `http.user_agent="curl/8.0 (linux)"`) {
		t.Fatalf("output %q missing grouped quoted attr", out)
	}
}
