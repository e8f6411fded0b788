package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggingProvider_LogsUsageAndCost(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 80},
	})
	p := WithLogging(mock, ProviderMock, logger)

	ctx := WithPurpose(context.Background(), PurposeDrillSuggestions)
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "llm request completed" {
		t.Fatalf("msg = %v", entry["msg"])
	}
	if entry["purpose"] != PurposeDrillSuggestions {
		t.Fatalf("purpose = %v", entry["purpose"])
	}
	if entry["input_tokens"] != float64(120) {
		t.Fatalf("input_tokens = %v", entry["input_tokens"])
	}
	if _, ok := entry["cost_usd"]; ok {
		t.Fatal("mock model should not be priced")
	}
}

func TestLoggingProvider_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := WithLogging(NewMockProvider(MockResponse{Err: errors.New("boom")}), ProviderMock, logger)
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	out := buf.String()
	if !strings.Contains(out, "llm request failed") || !strings.Contains(out, "boom") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestSerializeRequest(t *testing.T) {
	out := serializeRequest(Request{
		System:   "coach",
		Messages: []Message{{Role: RoleUser, Content: "three drills"}},
		Schema:   testSchema(),
	})

	for _, want := range []string{"[system]\ncoach", "[user]\nthree drills", "[schema: test-drills]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}
