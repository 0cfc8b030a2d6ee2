package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/restfold/apikit/logger"
)

const tracerName = "github.com/restfold/apikit/apiclient"

// Doer is the transport primitive: anything that can perform one HTTP
// round trip. *http.Client satisfies it. Cancellation and timeouts are
// the transport's concern, driven by the request context.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the default *http.Client transport.
func WithTransport(d Doer) Option {
	return func(c *Client) { c.transport = d }
}

// WithLogger enables debug logging of requests and responses.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRequestIDs stamps every outgoing request with a generated
// X-Request-Id header.
func WithRequestIDs() Option {
	return func(c *Client) { c.requestIDs = true }
}

// Client is a stateless HTTP API client. The configuration is immutable
// after New, so a single client is safe for concurrent use.
type Client struct {
	config     Config
	transport  Doer
	log        *logger.Logger
	tracer     trace.Tracer
	requestIDs bool
}

// New creates a client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = &http.Client{Timeout: cfg.Timeout}
	}
	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Do builds a descriptor for the request and executes it. Method defaults
// to GET and Accept to application/json.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	desc, err := c.Build(req)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, desc)
}

// Execute performs exactly one HTTP round trip for the descriptor and
// decodes the response by its content type. Non-2xx responses fail
// without the body being read.
func (c *Client) Execute(ctx context.Context, desc *Descriptor) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "apiclient.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", desc.Method),
			attribute.String("url.full", desc.URL),
		))
	defer span.End()

	var bodyReader io.Reader
	if len(desc.Body) > 0 {
		bodyReader = bytes.NewReader(desc.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, desc.Method, desc.URL, bodyReader)
	if err != nil {
		return nil, NewInvalidURLError(desc.URL, err)
	}
	for k, v := range desc.Headers {
		httpReq.Header.Set(k, v)
	}
	if c.requestIDs {
		httpReq.Header.Set("X-Request-Id", uuid.NewString())
	}

	start := time.Now()
	if c.log != nil {
		c.log.Debug("request", logger.Fields(
			"method", desc.Method,
			"url", desc.URL,
		))
	}

	resp, err := c.transport.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "transport failure")
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := NewHTTPError(resp.StatusCode)
		span.SetStatus(otelcodes.Error, httpErr.Message)
		if c.log != nil {
			c.log.Warn("request failed", logger.Fields(
				"method", desc.Method,
				"url", desc.URL,
				"status", resp.StatusCode,
			))
		}
		return nil, httpErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	envelope, err := decodeResponse(resp.StatusCode, resp.Header, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "decode failure")
		return nil, err
	}

	if c.log != nil {
		c.log.Debug("response", logger.Fields(
			"method", desc.Method,
			"url", desc.URL,
			"status", resp.StatusCode,
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
	}
	return envelope, nil
}
