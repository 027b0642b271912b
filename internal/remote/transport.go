package remote

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"payadmin-backend/pkg/logger"

	"go.uber.org/zap"
)

const maxLoggedBody = 2000

// LoggingTransport implements http.RoundTripper and logs requests and responses.
// The Authorization header is never logged.
type LoggingTransport struct {
	Transport http.RoundTripper
}

// RoundTrip executes a single HTTP transaction and logs the request and response
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqBody := readAndRestore(&req.Body)

	headers := req.Header.Clone()
	if headers.Get("Authorization") != "" {
		headers.Set("Authorization", "[REDACTED]")
	}
	logger.Log.Debug("Remote request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("headers", headers),
		zap.String("body", truncate(reqBody)),
	)

	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Log.Warn("Remote request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("latency", duration),
			zap.Error(err),
		)
		return nil, err
	}

	respBody := readAndRestore(&resp.Body)
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
		zap.String("body", truncate(respBody)),
	}
	if resp.StatusCode >= 400 {
		logger.Log.Warn("Remote response", fields...)
	} else {
		logger.Log.Debug("Remote response", fields...)
	}

	return resp, nil
}

func readAndRestore(body *io.ReadCloser) string {
	if *body == nil || *body == http.NoBody {
		return ""
	}
	bodyBytes, _ := io.ReadAll(*body)
	(*body).Close()
	*body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	return string(bodyBytes)
}

func truncate(s string) string {
	if len(s) > maxLoggedBody {
		return s[:maxLoggedBody] + "...(truncated)"
	}
	return s
}

// NewHTTPClient returns a new http.Client with logging enabled
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
		},
	}
}
