package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/validation"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		status      int
		code        string
		description string
	}{
		{"server rejection keeps message verbatim", dErrors.New(dErrors.CodeServerRejection, "Phone already registered"), http.StatusUnprocessableEntity, "server_rejection", "Phone already registered"},
		{"network error uses connection text", dErrors.New(dErrors.CodeNetwork, "dial tcp: refused"), http.StatusBadGateway, "network_error", MessageNetwork},
		{"bad upstream data", dErrors.New(dErrors.CodeBadData, "json: cannot unmarshal"), http.StatusBadGateway, "bad_upstream_response", MessageBadData},
		{"unauthorized without message", &dErrors.Error{Code: dErrors.CodeUnauthorized}, http.StatusUnauthorized, "unauthorized", MessageAuth},
		{"not found", dErrors.New(dErrors.CodeNotFound, "retailer not found"), http.StatusNotFound, "not_found", "retailer not found"},
		{"conflict", dErrors.New(dErrors.CodeConflict, "action already in progress"), http.StatusConflict, "conflict", "action already in progress"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.code, resp.Error)
			assert.Equal(t, tt.description, resp.Description)
		})
	}

	t.Run("field errors are rendered inline", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, validation.Field("master_distributor_id", "select master distributor"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "validation_error", resp.Error)
		assert.Equal(t, "select master distributor", resp.Fields["master_distributor_id"])
	})
}

func TestWriteListFailure(t *testing.T) {
	type view struct {
		Items  []string `json:"items"`
		Notice *Notice  `json:"notice"`
	}

	t.Run("degrades to empty view with notice", func(t *testing.T) {
		err := dErrors.New(dErrors.CodeNetwork, "timeout")
		rec := httptest.NewRecorder()

		authFailure := WriteListFailure(rec, err, view{Items: []string{}, Notice: NoticeFor(err, "could not load")})

		assert.False(t, authFailure)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[],"notice":{"level":"error","message":"`+MessageNetwork+`"}}`, rec.Body.String())
	})

	t.Run("auth failure answers 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		authFailure := WriteListFailure(rec, dErrors.New(dErrors.CodeUnauthorized, "token expired"), view{})

		assert.True(t, authFailure)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("notice falls back when error has no text", func(t *testing.T) {
		n := NoticeFor(errors.New("boom"), "could not load tickets")
		assert.Equal(t, "could not load tickets", n.Message)
	})
}
