package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/config"
	"github.com/zahid1995j/Somahar-Order-Management-App/pkg/errorbank"
)

var httpTracer = otel.Tracer("github.com/zahid1995j/Somahar-Order-Management-App/client")

// APIKeyHeader carries the site key on non-public endpoints.
const APIKeyHeader = "X-Api-Key"

// HTTPDispatcher executes requests against the remote WordPress API.
type HTTPDispatcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPDispatcher builds a dispatcher for the configured endpoint. The
// base URL is normalized by stripping a single trailing slash.
func NewHTTPDispatcher(cfg config.API, logger *zap.Logger) *HTTPDispatcher {
	return &HTTPDispatcher{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.Key,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// Do executes the request and decodes the JSON response into out.
func (d *HTTPDispatcher) Do(ctx context.Context, req Request, out any) error {
	if d.baseURL == "" || d.baseURL == strings.TrimSuffix(config.PlaceholderBaseURL, "/") {
		return errorbank.Configuration("API base URL is not configured; set API_BASE_URL to your site endpoint")
	}

	ctx, span := httpTracer.Start(ctx, "api.request", trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("api.path", req.Path),
	))
	defer span.End()

	target := d.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return errorbank.Internal("encode request payload", errorbank.WithCause(err))
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return errorbank.Internal("build request", errorbank.WithCause(err))
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	// The header is omitted entirely when no key is configured so public
	// installs do not trip stricter cross-origin checks.
	if !req.Public && d.apiKey != "" {
		httpReq.Header.Set(APIKeyHeader, d.apiKey)
	}

	if d.logger != nil {
		d.logger.Debug("dispatching API request",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
		)
	}

	resp, err := d.client.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		if errors.Is(err, context.Canceled) {
			return err
		}
		return classifyTransport(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return errorbank.Transport("read response", errorbank.WithCause(err))
	}

	if err := checkStatus(resp.StatusCode, resp.Status); err != nil {
		span.SetStatus(codes.Error, resp.Status)
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		span.RecordError(err)
		return errorbank.API("invalid response payload", errorbank.WithCause(err))
	}
	return nil
}

func checkStatus(code int, status string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return errorbank.Auth("invalid API key")
	case code == http.StatusNotFound:
		return errorbank.NotFound("endpoint not found")
	default:
		return errorbank.API(
			fmt.Sprintf("API request failed: %s", status),
			errorbank.WithDetail("status_code", code),
		)
	}
}

// classifyTransport maps low-level failures onto the error taxonomy. TLS
// handshake failures point at a protocol mismatch between client and site;
// everything else is reported as a blocked request (offline, refused, CORS
// proxy in the way).
func classifyTransport(err error) error {
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return errorbank.Transport("protocol mismatch: endpoint did not answer with TLS", errorbank.WithCause(err))
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return errorbank.Transport("protocol mismatch: endpoint certificate rejected", errorbank.WithCause(err))
	}
	return errorbank.Transport("request blocked: endpoint unreachable", errorbank.WithCause(err))
}
