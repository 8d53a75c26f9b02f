package gobittrex

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotEnvelope is the cause of a JSON_ERROR for a body that parses but lacks success or message.
var ErrNotEnvelope = errors.New("success or message field missing")

// Envelope is the wrapper of every response. Result stays raw until the endpoint's Shape decodes it.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func DecodeEnvelope(body []byte) (*Envelope, error) {
	var raw struct {
		Success *bool           `json:"success"`
		Message *string         `json:"message"`
		Result  json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, WrapError(JSON_ERROR, err, "decode envelope")
	}
	if raw.Success == nil || raw.Message == nil {
		return nil, WrapError(JSON_ERROR, ErrNotEnvelope, "decode envelope")
	}
	return &Envelope{Success: *raw.Success, Message: *raw.Message, Result: raw.Result}, nil
}

// hasResult is false for a missing field and for an explicit null.
func (env *Envelope) hasResult() bool {
	trimmed := bytes.TrimSpace(env.Result)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func (env *Envelope) failure() error {
	if env.Success {
		return nil
	}
	return NewError(API_ERROR, env.Message)
}

// NormalizeSingle returns the one record an endpoint of shape SHAPE_OPTIONAL_SINGLE or
// SHAPE_LEGACY_LIST promises.
func NormalizeSingle[T any](env *Envelope, shape Shape) (*T, error) {
	if err := env.failure(); err != nil {
		return nil, err
	}

	switch shape {
	case SHAPE_OPTIONAL_SINGLE:
		if !env.hasResult() {
			return nil, NewError(NO_RESULTS, MSG_NO_RESULTS)
		}
		var result T
		if err := json.Unmarshal(env.Result, &result); err != nil {
			return nil, WrapError(JSON_ERROR, err, "decode result")
		}
		return &result, nil

	case SHAPE_LEGACY_LIST:
		var results []T
		if env.hasResult() {
			if err := json.Unmarshal(env.Result, &results); err != nil {
				return nil, WrapError(JSON_ERROR, err, "decode result list")
			}
		}
		switch len(results) {
		case 1:
			return &results[0], nil
		case 0:
			return nil, NewError(NO_RESULTS, MSG_NO_RESULTS)
		default:
			return nil, NewError(API_ERROR, MSG_MULTIPLE_RESULTS)
		}

	default:
		return nil, NewError(API_ERROR, "shape %s can not hold a single result", shape)
	}
}

// NormalizeList returns the records of a SHAPE_OPTIONAL_LIST endpoint. A missing list is empty.
func NormalizeList[T any](env *Envelope) ([]T, error) {
	if err := env.failure(); err != nil {
		return nil, err
	}

	results := make([]T, 0)
	if !env.hasResult() {
		return results, nil
	}
	if err := json.Unmarshal(env.Result, &results); err != nil {
		return nil, WrapError(JSON_ERROR, err, "decode result list")
	}
	return results, nil
}

// NormalizeAck only checks the success flag, for SHAPE_NONE endpoints.
func NormalizeAck(env *Envelope) error {
	return env.failure()
}
