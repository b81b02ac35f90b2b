package server

import (
	"encoding/json"
	"fmt"

	"github.com/jmdaemon/synclsp/jsonrpc2"
)

// kind distinguishes the three callback variants spec.md §3 describes.
type kind int

const (
	kindRequest kind = iota
	kindNotification
	kindResponse
)

// Callback is a type-erased handler. Once constructed it is immutable;
// Endpoint.Set replaces the Endpoint's current Callback rather than
// mutating this one, so a Callback may be safely shared by copying it
// into more than one Endpoint.
type Callback[S any] struct {
	kind kind

	request      func(*Connection[S], json.RawMessage) (json.RawMessage, *jsonrpc2.Error)
	notification func(*Connection[S], json.RawMessage) *jsonrpc2.Error
	response     func(*Connection[S], json.RawMessage, json.RawMessage) error
}

func (c Callback[S]) isZero() bool {
	return c.request == nil && c.notification == nil && c.response == nil
}

// RequestFunc builds a request Callback from a typed handler. P and R
// must each (un)marshal to JSON; a deserialise failure on P is reported
// to the dispatcher as InvalidParams without the handler ever running.
func RequestFunc[S, P, R any](fn func(*Connection[S], P) (R, error)) Callback[S] {
	return Callback[S]{
		kind: kindRequest,
		request: func(conn *Connection[S], raw json.RawMessage) (json.RawMessage, *jsonrpc2.Error) {
			var params P
			if len(raw) > 0 && string(raw) != "null" {
				if err := json.Unmarshal(raw, &params); err != nil {
					return nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams, "decoding params: %v", err)
				}
			}
			result, err := fn(conn, params)
			if err != nil {
				if jerr, ok := err.(*jsonrpc2.Error); ok {
					return nil, jerr
				}
				return nil, jsonrpc2.Errorf(jsonrpc2.InternalError, "%v", err)
			}
			out, merr := json.Marshal(result)
			if merr != nil {
				return nil, jsonrpc2.Errorf(jsonrpc2.InternalError, "encoding result: %v", merr)
			}
			return out, nil
		},
	}
}

// NotificationFunc builds a notification Callback from a typed handler.
func NotificationFunc[S, P any](fn func(*Connection[S], P) error) Callback[S] {
	return Callback[S]{
		kind: kindNotification,
		notification: func(conn *Connection[S], raw json.RawMessage) *jsonrpc2.Error {
			var params P
			if len(raw) > 0 && string(raw) != "null" {
				if err := json.Unmarshal(raw, &params); err != nil {
					return jsonrpc2.Errorf(jsonrpc2.InvalidParams, "decoding params: %v", err)
				}
			}
			if err := fn(conn, params); err != nil {
				if jerr, ok := err.(*jsonrpc2.Error); ok {
					return jerr
				}
				return jsonrpc2.Errorf(jsonrpc2.InternalError, "%v", err)
			}
			return nil
		},
	}
}

// ResponseFunc builds a response Callback: invoked when a previously
// sent outbound Request of this method receives its reply. T is the
// caller-supplied correlation tag type (see jsonrpc2.CorrelationID); P
// is the result type. A nil raw result means the peer replied with an
// error instead (spec.md §3's Callback "None case").
func ResponseFunc[S, T, P any](fn func(conn *Connection[S], tag T, result *P)) Callback[S] {
	return Callback[S]{
		kind: kindResponse,
		response: func(conn *Connection[S], tagJSON json.RawMessage, resultJSON json.RawMessage) error {
			var tag T
			if len(tagJSON) > 0 {
				if err := json.Unmarshal(tagJSON, &tag); err != nil {
					tag = *new(T) // fall back to the zero value on a bad tag
				}
			}
			var result *P
			if resultJSON != nil {
				result = new(P)
				if err := json.Unmarshal(resultJSON, result); err != nil {
					return fmt.Errorf("decoding response result: %w", err)
				}
			}
			fn(conn, tag, result)
			return nil
		},
	}
}
