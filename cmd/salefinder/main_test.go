package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := newLogger(tt.level)
			got := log.Enabled(context.Background(), tt.want) && !log.Enabled(context.Background(), tt.want-1)
			if diff := cmp.Diff(true, got); diff != "" {
				t.Errorf("logger level mismatch for %q (-want +got):\n%s", tt.level, diff)
			}
		})
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"extra"}); err == nil {
		t.Fatal("expected error for positional argument, got nil")
	}
	if err := rootCmd.Args(rootCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
