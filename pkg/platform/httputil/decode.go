package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	dErrors "paynet/pkg/domain-errors"
)

// Validatable is implemented by console form bodies that check themselves.
type Validatable interface {
	Validate() error
}

// Normalizable is implemented by form bodies that trim or canonicalize input
// before validation.
type Normalizable interface {
	Normalize()
}

// DecodeJSON reads one JSON object from the request body into a new T. On
// failure it writes a bad_request response and returns false.
//
//	req, ok := httputil.DecodeJSON[TopupRequest](w, r, h.logger, ctx, requestID)
//	if !ok {
//		return
//	}
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "rejected console request body",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, bodyError(err))
		return nil, false
	}
	return &req, true
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return dErrors.New(dErrors.CodeBadRequest, "request body too large")
	case errors.Is(err, io.EOF):
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	default:
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
}

// PrepareRequest runs Normalize then Validate on req when it implements them.
func PrepareRequest(req any) error {
	if n, ok := req.(Normalizable); ok {
		n.Normalize()
	}
	v, ok := req.(Validatable)
	if !ok {
		return nil
	}
	err := v.Validate()
	if err == nil {
		return nil
	}
	// Field errors and other coded errors keep their code; bare errors are
	// treated as a form-level validation failure.
	var coded *dErrors.Error
	if errors.As(err, &coded) {
		return err
	}
	return dErrors.New(dErrors.CodeValidation, err.Error())
}

// DecodeAndPrepare decodes a form body and prepares it. Any failure has
// already been written to w when it returns false.
func DecodeAndPrepare[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (*T, bool) {
	req, ok := DecodeJSON[T](w, r, logger, ctx, requestID)
	if !ok {
		return nil, false
	}
	if err := PrepareRequest(req); err != nil {
		logger.WarnContext(ctx, "console form failed validation",
			"error", err,
			"request_id", requestID,
		)
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
