package client

import (
	"log/slog"
	"net/http"
	"time"
)

// maxURLLogLen is the maximum length for logged URLs before truncation.
const maxURLLogLen = 200

// slowRequestThreshold is the duration above which requests are logged at WARN level.
const slowRequestThreshold = 2 * time.Second

// loggingTransport logs every request with timing.
// Slow requests are logged at WARN level, failures at ERROR.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)
	attrs := []any{
		"method", req.Method,
		"url", truncate(req.URL.String(), maxURLLogLen),
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		attrs = append(attrs, "error", err.Error())
		t.logger.Error("request failed", attrs...)
		return nil, err
	}

	attrs = append(attrs, "status", resp.StatusCode)
	if duration > slowRequestThreshold {
		t.logger.Warn("slow request", attrs...)
	} else {
		t.logger.Debug("request completed", attrs...)
	}
	return resp, nil
}
