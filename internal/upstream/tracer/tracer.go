// Package tracer is a small tracing seam for upstream API calls. The
// client depends on this interface rather than on OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer: tests and the CLI
//   - OTelTracer: OpenTelemetry adapter used by the console server
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span; a non-nil err marks it failed.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashPhone returns a short SHA-256 prefix of a phone number so lookups can
// be correlated across spans without recording the number.
func HashPhone(phone string) string {
	if phone == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(phone))
	return hex.EncodeToString(sum[:8])
}

const SpanUpstreamCall = "upstream.call"

const (
	AttrEndpoint   = "upstream.endpoint"
	AttrMethod     = "http.request.method"
	AttrStatusCode = "http.response.status_code"
	AttrOutcome    = "upstream.outcome"
	AttrPhoneHash  = "upstream.phone_hash"
	AttrItems      = "upstream.items"
)
