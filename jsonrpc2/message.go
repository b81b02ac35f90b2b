package jsonrpc2

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Version is the only JSON-RPC version this package speaks.
const Version = "2.0"

// ID is the union of the three shapes a message id may take: integer,
// string, or null. RawMessage carries whichever one arrived on the wire
// so it can be echoed back unchanged.
type ID struct {
	raw json.RawMessage
}

// IsNil reports whether the id is the JSON null id (or entirely absent,
// which happens for notifications).
func (id ID) IsNil() bool {
	return len(id.raw) == 0 || string(id.raw) == "null"
}

// String renders the id as it would appear inside a log line; string ids
// are unquoted, numeric ids print as-is.
func (id ID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	var s string
	if json.Unmarshal(id.raw, &s) == nil {
		return s
	}
	return string(id.raw)
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if len(id.raw) == 0 {
		return []byte("null"), nil
	}
	return id.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	id.raw = append(id.raw[:0], data...)
	return nil
}

// NewStringID builds a string-typed id, used for outbound requests whose
// id embeds method + correlation tag (see CorrelationID in correlation.go).
func NewStringID(s string) ID {
	raw, _ := json.Marshal(s)
	return ID{raw: raw}
}

// NewIntID builds an integer-typed id.
func NewIntID(n int64) ID {
	raw, _ := json.Marshal(n)
	return ID{raw: raw}
}

// IDFromRaw wraps an already-encoded id value (e.g. the "id" field taken
// out of a $/cancelRequest's params) as an ID for comparison purposes.
func IDFromRaw(raw json.RawMessage) ID {
	return ID{raw: append(json.RawMessage(nil), raw...)}
}

// Raw returns the id's raw JSON encoding.
func (id ID) Raw() json.RawMessage {
	return id.raw
}

// Equal compares the raw wire representation of two ids.
func (id ID) Equal(other ID) bool {
	return string(id.raw) == string(other.raw)
}

// Message is implemented by the four wire shapes: *Request, *Notification,
// *Response, *PeerError. It exists purely to let Parse return a single
// value for any of them.
type Message interface {
	isMessage()
}

// Request is an inbound or outbound JSON-RPC request: it carries an id and
// expects exactly one reply frame (Response or PeerError) with the same id.
type Request struct {
	ID     ID              `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

func (*Request) isMessage() {}

// Notification is a fire-and-forget message: no reply is ever sent for it.
type Notification struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

func (*Notification) isMessage() {}

// Response is a successful reply to a Request.
type Response struct {
	ID     ID              `json:"id"`
	Result json.RawMessage `json:"result"`
}

func (*Response) isMessage() {}

// PeerError is an error reply to a Request.
type PeerError struct {
	ID  ID     `json:"id"`
	Err *Error `json:"error"`
}

func (*PeerError) isMessage() {}

// wireMessage is the on-the-wire superset of fields across all four
// variants; Parse decodes into this first, validates which fields are
// legally present together, then builds the concrete variant.
type wireMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *ID             `json:"id,omitempty"`
	Method  *string         `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Parse decodes one JSON-RPC frame into its concrete Message variant,
// rejecting malformed or self-contradictory shapes. Unknown top-level
// fields are rejected by decoding with a strict decoder.
func Parse(data []byte) (Message, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w wireMessage
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("jsonrpc2: parse: %w", err)
	}
	if w.JSONRPC != Version {
		return nil, fmt.Errorf("jsonrpc2: parse: jsonrpc field must be %q, got %q", Version, w.JSONRPC)
	}

	hasParams := w.Params != nil
	hasResult := w.Result != nil
	hasError := w.Error != nil
	hasID := w.ID != nil && !w.ID.IsNil()
	hasMethod := w.Method != nil

	switch {
	case hasResult && hasError:
		return nil, fmt.Errorf("jsonrpc2: parse: result and error are mutually exclusive")
	case hasMethod && (hasResult || hasError):
		return nil, fmt.Errorf("jsonrpc2: parse: method cannot appear alongside result/error")
	case hasError:
		if w.ID == nil {
			return nil, fmt.Errorf("jsonrpc2: parse: error frame missing id")
		}
		return &PeerError{ID: *w.ID, Err: w.Error}, nil
	case hasResult:
		if w.ID == nil {
			return nil, fmt.Errorf("jsonrpc2: parse: response frame missing id")
		}
		return &Response{ID: *w.ID, Result: w.Result}, nil
	case hasMethod && hasID:
		return &Request{ID: *w.ID, Method: *w.Method, Params: w.Params}, nil
	case hasMethod:
		return &Notification{Method: *w.Method, Params: hasParamsOrNil(hasParams, w.Params)}, nil
	default:
		return nil, fmt.Errorf("jsonrpc2: parse: message matches no known shape")
	}
}

func hasParamsOrNil(has bool, p json.RawMessage) json.RawMessage {
	if !has {
		return nil
	}
	return p
}

// Encode serialises a Message to its wire form, always stamping jsonrpc.
func Encode(msg Message) ([]byte, error) {
	switch m := msg.(type) {
	case *Request:
		return json.Marshal(struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      ID              `json:"id"`
			Method  string          `json:"method"`
			Params  json.RawMessage `json:"params,omitempty"`
		}{Version, m.ID, m.Method, m.Params})
	case *Notification:
		return json.Marshal(struct {
			JSONRPC string          `json:"jsonrpc"`
			Method  string          `json:"method"`
			Params  json.RawMessage `json:"params,omitempty"`
		}{Version, m.Method, m.Params})
	case *Response:
		result := m.Result
		if result == nil {
			result = json.RawMessage("null")
		}
		return json.Marshal(struct {
			JSONRPC string          `json:"jsonrpc"`
			ID      ID              `json:"id"`
			Result  json.RawMessage `json:"result"`
		}{Version, m.ID, result})
	case *PeerError:
		return json.Marshal(struct {
			JSONRPC string `json:"jsonrpc"`
			ID      ID     `json:"id"`
			Error   *Error `json:"error"`
		}{Version, m.ID, m.Err})
	default:
		return nil, fmt.Errorf("jsonrpc2: encode: unknown message type %T", msg)
	}
}
