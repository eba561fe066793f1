package upstream

import (
	"context"
	"errors"
	"net/http"

	dErrors "paynet/pkg/domain-errors"
)

// Outcome labels for metrics and spans.
const (
	outcomeSuccess = "success"
)

// classifyTransport maps a failed round trip. Cancellation by the caller is
// reported as a network failure too; the console never retries either way.
func classifyTransport(ctx context.Context, err error) error {
	msg := "unable to reach server"
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		msg = "upstream request timed out"
	}
	return &dErrors.Error{Code: dErrors.CodeNetwork, Message: msg, Err: err}
}

// classifyStatus maps HTTP statuses that carry meaning regardless of the
// envelope. It returns nil when the envelope should decide.
func classifyStatus(status int, env *Envelope) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		msg := "authentication required"
		if env != nil && env.Message != "" {
			msg = env.Message
		}
		return dErrors.New(dErrors.CodeUnauthorized, msg)
	case http.StatusNotFound:
		msg := "not found"
		if env != nil && env.Message != "" {
			msg = env.Message
		}
		return dErrors.New(dErrors.CodeNotFound, msg)
	}
	return nil
}

// rejection builds a server rejection. The server's message is surfaced
// verbatim; fallback is used only when it sent none.
func rejection(env *Envelope, fallback string) error {
	msg := fallback
	if env != nil && env.Message != "" {
		msg = env.Message
	}
	return dErrors.New(dErrors.CodeServerRejection, msg)
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	return string(dErrors.CodeOf(err))
}
