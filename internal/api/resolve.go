package api

import (
	"encoding/json"

	"github.com/ramzeysiele/coinpayments/internal/types"
)

// StatusOK is the sentinel the API places in the envelope's error field on
// success. It is a body-level signal, not an HTTP one: the API answers
// 200 for rejections too, so only this field decides the outcome.
const StatusOK = "ok"

// envelope is the fixed response shape every command answers with.
type envelope struct {
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Resolve maps a raw response body onto the envelope contract:
//
//	error == "ok"   -> the result payload
//	error != "ok"   -> *types.APIError with the message and full envelope
//	not an envelope -> *types.InvalidResponseError with the body verbatim
//
// A body whose error field is "ok" but has no result, or whose error field
// is missing entirely, is treated as malformed rather than silently
// succeeding.
func Resolve(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &types.InvalidResponseError{Body: string(body)}
	}
	if env.Error == "" {
		return nil, &types.InvalidResponseError{Body: string(body)}
	}
	if env.Error != StatusOK {
		return nil, &types.APIError{Message: env.Error, Envelope: append([]byte(nil), body...)}
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil, &types.InvalidResponseError{Body: string(body)}
	}
	return env.Result, nil
}
