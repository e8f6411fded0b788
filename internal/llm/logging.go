package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// LoggingProvider is a decorator that logs every LLM request with its
// latency, token usage and estimated cost.
type LoggingProvider struct {
	inner    Provider
	provider string
	logger   *slog.Logger
}

// WithLogging wraps a Provider with structured logging. A nil logger
// falls back to slog.Default().
func WithLogging(p Provider, providerName string, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{
		inner:    p,
		provider: providerName,
		logger:   logger.With("component", "llm"),
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	l.logger.DebugContext(ctx, "llm request",
		"purpose", PurposeFrom(ctx),
		"body", serializeRequest(req))

	resp, err := l.inner.Generate(ctx, req)

	attrs := []any{
		"provider", l.provider,
		"model", l.inner.ModelID(),
		"purpose", PurposeFrom(ctx),
		"latency_ms", time.Since(start).Milliseconds(),
	}

	if err != nil {
		l.logger.ErrorContext(ctx, "llm request failed", append(attrs, "error", err)...)
		return nil, err
	}

	attrs = append(attrs,
		"served_by", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)
	if cost, ok := EstimateCost(resp.Model, resp.Usage); ok {
		attrs = append(attrs, "cost_usd", cost)
	}
	l.logger.InfoContext(ctx, "llm request completed", attrs...)
	l.logger.DebugContext(ctx, "llm response", "body", string(resp.Content))

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
