package whatsyour

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestClientLogsFailuresWithoutSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	transport := &fakeTransport{status: http.StatusInternalServerError, body: `{"error":"boom"}`}
	client := New(Config{APIKey: "sdk-secret", HTTPClient: transport, Logger: ZapLogger(zap.New(core))})

	if _, err := client.VerifyToken(context.Background(), "user-secret"); err == nil {
		t.Fatal("expected error")
	}

	warn := logs.FilterMessage("api request failed").All()
	if len(warn) != 1 {
		t.Fatalf("expected one failure log, got %d", len(warn))
	}
	if warn[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %s", warn[0].Level)
	}
	for _, entry := range logs.All() {
		dump := fmt.Sprint(entry.ContextMap())
		if strings.Contains(dump, "sdk-secret") || strings.Contains(dump, "user-secret") {
			t.Fatalf("secret leaked into log entry %q: %s", entry.Message, dump)
		}
	}
}

func TestZapLoggerNilIsNoop(t *testing.T) {
	log := ZapLogger(nil)
	log.InfoObj("ignored", "k", 1)
	if _, ok := log.(noopLogger); !ok {
		t.Fatalf("expected noop logger, got %T", log)
	}
}
