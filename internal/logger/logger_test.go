package logger

import (
	"testing"

	"github.com/whatsyour-info/whatsyour-go/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestInitSetsPackageLogger(t *testing.T) {
	t.Cleanup(func() { S = nil })

	log, err := Init(&config.Config{LogLevel: "warn"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if log == nil || S != log {
		t.Fatalf("expected package logger to be set")
	}
	if S.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info to be disabled at warn level")
	}
	if SDK() == nil {
		t.Fatalf("expected sdk logger")
	}
}
