// Package trpc speaks the batched tRPC-over-HTTP convention used by Spliit:
// inputs are objects keyed by slot index ("0", "1", ...) wrapping each call's
// arguments in {"json": ...}, and responses are arrays whose elements carry
// the payload at result.data.json.
package trpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Call is one slot of a batched request.
type Call struct {
	JSON any   `json:"json"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries superjson type hints, e.g. {"values": {"a.b": ["Date"]}}.
type Meta struct {
	Values map[string][]string `json:"values"`
}

// Batch is the request envelope. Keys are slot indexes.
type Batch map[string]Call

// NewBatch places calls in slots "0", "1", ... in argument order.
func NewBatch(calls ...Call) Batch {
	b := make(Batch, len(calls))
	for i, c := range calls {
		b[strconv.Itoa(i)] = c
	}
	return b
}

// Encode returns the JSON form used for the `input` query parameter.
func (b Batch) Encode() (string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("encoding batch input: %w", err)
	}
	return string(data), nil
}

type responseElement struct {
	Result *struct {
		Data *struct {
			JSON json.RawMessage `json:"json"`
		} `json:"data"`
	} `json:"result"`
	Error *struct {
		JSON errorPayload `json:"json"`
	} `json:"error"`
}

type errorPayload struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    struct {
		Code       string `json:"code"`
		HTTPStatus int    `json:"httpStatus"`
	} `json:"data"`
}

// DecodeFirst decodes the payload of the first batch element into v.
// Any structural problem is reported as a *MalformedResponseError.
func DecodeFirst(procedure string, body []byte, v any) error {
	var elems []responseElement
	if err := json.Unmarshal(body, &elems); err != nil {
		return &MalformedResponseError{Procedure: procedure, Reason: "response is not a JSON array", Err: err}
	}
	if len(elems) == 0 {
		return &MalformedResponseError{Procedure: procedure, Reason: "empty batch response"}
	}

	first := elems[0]
	if first.Error != nil {
		return &MalformedResponseError{Procedure: procedure, Reason: "batch element is an error: " + first.Error.JSON.Message}
	}
	if first.Result == nil || first.Result.Data == nil {
		return &MalformedResponseError{Procedure: procedure, Reason: "missing result.data"}
	}
	raw := bytes.TrimSpace(first.Result.Data.JSON)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return &MalformedResponseError{Procedure: procedure, Reason: "missing result.data.json"}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &MalformedResponseError{Procedure: procedure, Reason: "unexpected payload shape", Err: err}
	}
	return nil
}

// errorMessage extracts a server error message from a failed response body.
// It returns "" when the body is not a tRPC error envelope.
func errorMessage(body []byte) string {
	var elems []responseElement
	if err := json.Unmarshal(body, &elems); err == nil {
		for _, e := range elems {
			if e.Error != nil && e.Error.JSON.Message != "" {
				return e.Error.JSON.Message
			}
		}
		return ""
	}
	// Non-batched procedures answer with a single object.
	var single responseElement
	if err := json.Unmarshal(body, &single); err == nil && single.Error != nil {
		return single.Error.JSON.Message
	}
	return ""
}
