package server

import (
	"encoding/json"

	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

// CancellationToken carries the id of a request the server sent, so the
// caller can later ask the client to cancel it.
type CancellationToken struct {
	id jsonrpc2.ID
}

// cancelled implements spec.md §4.8: it peeks the transport once for a
// $/cancelRequest targeting the in-flight request id. A peeked
// notification for a different id (or any other message) is left
// untouched in the transport's pushback buffer.
func (c *core[S]) cancelled() bool {
	if c.currentID == nil {
		return false
	}

	frame, err := c.transport.Peek()
	if err != nil {
		c.logger.Printf("server: peek during cancellation check: %v", err)
		return false
	}
	if frame == nil {
		return false
	}

	msg, err := jsonrpc2.Parse(frame)
	if err != nil {
		return false
	}
	notif, ok := msg.(*jsonrpc2.Notification)
	if !ok || notif.Method != protocol.MethodCancelRequest {
		return false
	}

	var params protocol.CancelParams
	if err := json.Unmarshal(notif.Params, &params); err != nil {
		return false
	}
	if !jsonrpc2.IDFromRaw(params.ID).Equal(*c.currentID) {
		return false
	}

	// Consume it: Peek always pushed it to the head of the pushback FIFO.
	if _, err := c.transport.Recv(); err != nil {
		c.logger.Printf("server: draining cancel notification: %v", err)
	}
	c.pendingErr = jsonrpc2.NewError(jsonrpc2.RequestCancelled, "request cancelled by client")
	return true
}
