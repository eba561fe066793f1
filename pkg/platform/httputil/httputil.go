package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "paynet/pkg/domain-errors"
	"paynet/pkg/platform/validation"
)

// Fallback descriptions for codes the upstream never supplies text for.
const (
	MessageNetwork = "unable to reach server, check your connection"
	MessageBadData = "unexpected response from server"
	MessageAuth    = "authentication required"
)

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// ErrorResponse is the JSON envelope for every console error.
type ErrorResponse struct {
	Error       string            `json:"error"`
	Description string            `json:"error_description,omitempty"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// WriteError centralizes domain error translation to HTTP responses.
// Server rejections keep the upstream message verbatim; field validation
// errors carry the per-field map so the UI can render them inline.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if !errors.As(err, &domainErr) {
		WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: DomainCodeToHTTPCode(dErrors.CodeInternal),
		})
		return
	}

	resp := ErrorResponse{
		Error:       DomainCodeToHTTPCode(domainErr.Code),
		Description: Describe(err),
	}
	if fields := validation.Fields(err); len(fields) > 0 {
		resp.Fields = fields
	}
	WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), resp)
}

// Describe returns the text a user should see for err.
func Describe(err error) string {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeNetwork:
		return MessageNetwork
	case dErrors.CodeBadData:
		return MessageBadData
	case dErrors.CodeUnauthorized:
		return dErrors.MessageOf(err, MessageAuth)
	}
	return dErrors.MessageOf(err, "")
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput, dErrors.CodeInvariantViolation:
		return http.StatusBadRequest
	case dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeServerRejection:
		return http.StatusUnprocessableEntity
	case dErrors.CodeNetwork, dErrors.CodeBadData:
		return http.StatusBadGateway
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToHTTPCode translates domain error codes to HTTP error codes (for JSON response).
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "not_found"
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return "bad_request"
	case dErrors.CodeValidation, dErrors.CodeInvariantViolation:
		return "validation_error"
	case dErrors.CodeConflict:
		return "conflict"
	case dErrors.CodeUnauthorized:
		return "unauthorized"
	case dErrors.CodeForbidden:
		return "forbidden"
	case dErrors.CodeServerRejection:
		return "server_rejection"
	case dErrors.CodeNetwork:
		return "network_error"
	case dErrors.CodeBadData:
		return "bad_upstream_response"
	case dErrors.CodeTimeout:
		return "upstream_timeout"
	default:
		return "internal_error"
	}
}

// Notice is the non-blocking notification a list view carries instead of
// failing outright.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NoticeFor converts a fetch failure into an error notice.
func NoticeFor(err error, fallback string) *Notice {
	msg := Describe(err)
	if msg == "" {
		msg = fallback
	}
	return &Notice{Level: "error", Message: msg}
}

// WriteListFailure renders a failed list fetch. Authentication failures
// still answer 401 so the UI can force a re-login; every other failure
// degrades to the supplied empty view with a notice attached.
func WriteListFailure(w http.ResponseWriter, err error, empty any) bool {
	if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
		WriteError(w, err)
		return true
	}
	WriteJSON(w, http.StatusOK, empty)
	return false
}
