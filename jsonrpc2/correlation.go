package jsonrpc2

import (
	"encoding/json"
	"strings"
)

// CorrelationID builds the string id the framework uses for outbound
// requests: "<method>#<tag-json>". The dispatcher never keeps an
// outbound-request table; the method and the caller's tag travel inside
// the id itself, so a reply can be routed without any server-side state.
func CorrelationID(method string, tag any) (ID, error) {
	tagJSON, err := json.Marshal(tag)
	if err != nil {
		return ID{}, err
	}
	return NewStringID(method + "#" + string(tagJSON)), nil
}

// SplitCorrelationID reverses CorrelationID: given the raw string id of an
// inbound Response or PeerError, it returns the method and the tag's raw
// JSON, splitting at the first '#'. ok is false if id isn't a string id,
// or carries no '#'.
func SplitCorrelationID(id ID) (method string, tagJSON json.RawMessage, ok bool) {
	var s string
	if err := json.Unmarshal(id.raw, &s); err != nil {
		return "", nil, false
	}
	i := strings.IndexByte(s, '#')
	if i < 0 {
		return "", nil, false
	}
	return s[:i], json.RawMessage(s[i+1:]), true
}
