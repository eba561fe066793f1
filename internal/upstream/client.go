// Package upstream is the typed client for the remote paynet REST API. It
// attaches the signed-in admin's bearer token, unwraps the response
// envelope and classifies every failure into a domain error code.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"paynet/internal/upstream/metrics"
	"paynet/internal/upstream/tracer"
	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/requestcontext"
)

const (
	DefaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	http    HTTPDoer
	timeout time.Duration
	tracer  tracer.Tracer
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		tracer:  tracer.NewNoop(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c
}

// request describes one upstream call. endpoint is the low-cardinality
// name used for metrics and spans; path is the concrete URL path.
type request struct {
	endpoint string
	method   string
	path     string
	body     any
	fallback string
	attrs    []tracer.Attribute
}

// do performs the call and returns the decoded success envelope. Every
// error it returns carries a domain code.
func (c *Client) do(ctx context.Context, req request) (env *Envelope, err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, tracer.SpanUpstreamCall, append([]tracer.Attribute{
		tracer.String(tracer.AttrEndpoint, req.endpoint),
		tracer.String(tracer.AttrMethod, req.method),
	}, req.attrs...)...)

	status := 0
	defer func() {
		outcome := outcomeOf(err)
		elapsed := time.Since(start)
		c.metrics.RecordCall(req.endpoint, outcome, elapsed.Seconds())
		span.SetAttributes(
			tracer.String(tracer.AttrOutcome, outcome),
			tracer.Int(tracer.AttrStatusCode, status),
		)
		span.End(err)

		if err != nil {
			c.logger.WarnContext(ctx, "upstream call failed",
				"endpoint", req.endpoint,
				"status", status,
				"outcome", outcome,
				"duration_ms", elapsed.Milliseconds(),
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			return
		}
		c.logger.DebugContext(ctx, "upstream call",
			"endpoint", req.endpoint,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}

	var decoded Envelope
	decodeErr := json.Unmarshal(raw, &decoded)
	if decodeErr == nil {
		env = &decoded
	}

	if err := classifyStatus(resp.StatusCode, env); err != nil {
		return nil, err
	}
	if decodeErr != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, rejection(nil, req.fallback)
		}
		return nil, badData(fmt.Errorf("decode envelope: %w", decodeErr))
	}
	if !env.OK() || resp.StatusCode >= http.StatusBadRequest {
		return nil, rejection(env, req.fallback)
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode request")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token := requestcontext.Token(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	return httpReq, nil
}

// Health reports whether the upstream base URL answers at all. Any HTTP
// response counts; only transport failures make it unhealthy.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(ctx, err)
	}
	_ = resp.Body.Close()
	return nil
}

// list runs a GET and decodes the list payload under field.
func list[W any, T any](ctx context.Context, c *Client, req request, field string, convert func(W) T) ([]T, error) {
	req.method = http.MethodGet
	env, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}
	wire, err := DecodeList[W](env.Data, field)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(wire))
	for i, w := range wire {
		out[i] = convert(w)
	}
	c.metrics.ObserveItems(req.endpoint, len(out))
	return out, nil
}

// message returns the server's success message, or def.
func message(env *Envelope, def string) string {
	if env.Message != "" {
		return env.Message
	}
	return def
}
