package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"

	dErrors "paynet/pkg/domain-errors"
)

// Envelope is the response wrapper every upstream endpoint uses.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// OK reports whether the envelope signals success.
func (e *Envelope) OK() bool {
	return e.Status == statusSuccess
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// DecodeList normalizes the list shapes upstream endpoints return: a bare
// array, an object holding the array under field, or null/absent. The
// result is never nil. Any other shape is CodeBadData.
func DecodeList[T any](data json.RawMessage, field string) ([]T, error) {
	if isNull(data) {
		return []T{}, nil
	}

	switch bytes.TrimSpace(data)[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, badData(fmt.Errorf("decode list: %w", err))
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, badData(fmt.Errorf("decode list wrapper: %w", err))
		}
		inner, ok := wrapper[field]
		if !ok || isNull(inner) {
			return []T{}, nil
		}
		if bytes.TrimSpace(inner)[0] != '[' {
			return nil, badData(fmt.Errorf("field %q is not a list", field))
		}
		return DecodeList[T](inner, field)
	default:
		return nil, badData(fmt.Errorf("unexpected list payload %.32q", string(data)))
	}
}

// DecodeObject decodes a single-object payload. null or absent is CodeBadData
// because callers need the object.
func DecodeObject[T any](data json.RawMessage) (*T, error) {
	if isNull(data) {
		return nil, badData(fmt.Errorf("missing object payload"))
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, badData(fmt.Errorf("decode object: %w", err))
	}
	return &out, nil
}

func badData(err error) error {
	return &dErrors.Error{Code: dErrors.CodeBadData, Message: "unexpected response from server", Err: err}
}
