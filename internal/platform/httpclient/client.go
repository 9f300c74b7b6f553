// Package httpclient provides an instrumented HTTP client for outbound
// requests: default header injection, OpenTelemetry tracing and request
// metrics.
//
// Every call to Do sends exactly one request. There is deliberately no retry,
// circuit breaker or rate limiter in the path, so a failed lookup surfaces
// immediately and a confirmed submission never turns into several requests.
//
// Construction:
//
//	client := httpclient.New(&cfg.Client, "okta-wellknown", metrics, logger)
//
// Executing requests:
//
//	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/oktaorginfo/internal/platform/config"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/logging"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/telemetry"
)

// Client is an instrumented HTTP client with header injection and
// OpenTelemetry tracing for outbound requests.
type Client struct {
	httpClient   *http.Client
	serviceName  string
	userAgent    string
	maxBodyBytes int64
	metrics      *telemetry.Metrics
	logger       *slog.Logger
}

// New creates an instrumented HTTP client.
//
// The serviceName identifies the downstream in traces and metrics
// (e.g., "okta-wellknown"). If metrics is nil, metric recording is skipped.
// A zero cfg.Timeout leaves the timeout to the transport.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		serviceName:  serviceName,
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		metrics:      metrics,
		logger:       logger,
	}
}

// Do executes an HTTP request once: Header Injection → OTEL Span → HTTP.
//
// The request's context is used for cancellation and tracing. On success resp
// is non-nil with an open body that the caller must close, whatever the
// status code. On a transport error resp is nil.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	c.injectHeaders(req)

	spanCtx, span := c.startSpan(ctx, req)
	defer span.End()

	req = req.WithContext(spanCtx)

	logging.FromContext(ctx).DebugContext(ctx, "sending request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
	)

	resp, err := c.httpClient.Do(req)
	c.finishSpan(span, resp, err)
	c.recordMetrics(ctx, req.Method, start, resp)

	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).DebugContext(ctx, "received response",
		slog.String("operation", "httpclient.Do"),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
		slog.Attr{Key: "headers", Value: slog.GroupValue(logging.RedactHeaders(resp.Header)...)},
	)
	return resp, nil
}

// Name returns the downstream identifier (e.g., "okta-wellknown").
func (c *Client) Name() string {
	return c.serviceName
}

// MaxBodyBytes returns the configured cap on how much of a response body
// callers should read.
func (c *Client) MaxBodyBytes() int64 {
	return c.maxBodyBytes
}

// injectHeaders sets the default outbound headers unless the caller already
// set them.
func (c *Client) injectHeaders(req *http.Request) {
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

// startSpan creates an OTEL client span for the outbound request and injects
// trace context (W3C Trace Context) into the request headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("httpclient")

	spanName := fmt.Sprintf("HTTP %s %s", req.Method, c.serviceName)
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("server.address", req.URL.Hostname()),
			attribute.String("peer.service", c.serviceName),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// finishSpan records the response outcome on the span.
func (c *Client) finishSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		if resp.StatusCode >= http.StatusBadRequest {
			span.SetStatus(codes.Error, resp.Status)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics records client request duration and count metrics.
// Safe to call with nil metrics.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response) {
	if c.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	statusCode := 0
	result := "error"
	if resp != nil {
		statusCode = resp.StatusCode
		if statusCode < http.StatusBadRequest {
			result = "success"
		}
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(statusCode),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)

	c.metrics.ClientRequestDuration.Record(ctx, duration, attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
