package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "paynet/pkg/domain-errors"
)

type topupRequest struct {
	Amount string `json:"amount"`
}

type phoneRequest struct {
	Phone      string `json:"phone"`
	normalized bool
}

func (r *phoneRequest) Normalize() {
	r.normalized = true
}

func (r *phoneRequest) Validate() error {
	if r.Phone == "" {
		return errors.New("phone is required")
	}
	return nil
}

type typedRequest struct {
	ID string `json:"id"`
}

func (r *typedRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "id is required")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecodeJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("successful decode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"amount":"250.00"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[topupRequest](w, req, discardLogger(), ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "250.00", result.Amount)
	})

	t.Run("invalid JSON returns bad_request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{invalid`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[topupRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.Equal(t, "bad_request", errResp.Error)
		assert.Equal(t, "invalid request body", errResp.Description)
	})

	t.Run("empty body is reported as missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		w := httptest.NewRecorder()

		_, ok := DecodeJSON[topupRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.Equal(t, "request body is required", errResp.Description)
	})

	t.Run("body past the limit is reported as too large", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"amount":"250.00"}`))
		req.Body = http.MaxBytesReader(w, req.Body, 4)

		_, ok := DecodeJSON[topupRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.Equal(t, "request body too large", errResp.Description)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes then validates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"phone":"9876543210"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[phoneRequest](w, req, discardLogger(), ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.True(t, result.normalized)
	})

	t.Run("plain validation error maps to validation_error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"phone":""}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[phoneRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.Equal(t, "validation_error", errResp.Error)
		assert.Equal(t, "phone is required", errResp.Description)
	})

	t.Run("domain error code from Validate is preserved", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"id":""}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[typedRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
		assert.Equal(t, "bad_request", errResp.Error)
	})
}
