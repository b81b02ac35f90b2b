package server

import (
	"encoding/json"
	"log"

	"github.com/jmdaemon/synclsp/jsonrpc2"
	"github.com/jmdaemon/synclsp/protocol"
)

// core holds everything a single connection needs that doesn't depend on
// the server's command set C, so that Connection[S] and lifecycleFSM[S]
// can reference it without themselves being generic over C. Server[S, C]
// embeds one.
type core[S any] struct {
	state     S
	transport *jsonrpc2.Transport
	logger    *log.Logger

	// currentID and pendingErr track the request presently being handled,
	// for $/cancelRequest peeking (spec.md §4.8).
	currentID  *jsonrpc2.ID
	pendingErr *jsonrpc2.Error

	processID   *int
	rootURI     *protocol.DocumentURI
	initOptions json.RawMessage

	// outbox is drained by the dispatch loop after every handled message,
	// so notifications/requests queued from inside a handler (including
	// the log pump's window/logMessage) go out before the next Recv.
	outbox []jsonrpc2.Message
}

func newCore[S any](state S, transport *jsonrpc2.Transport, logger *log.Logger) *core[S] {
	return &core[S]{state: state, transport: transport, logger: logger}
}

// enqueue queues msg for delivery the next time flush runs, rather than
// writing it immediately: a handler may send several messages before
// returning, and queuing keeps Transport.Send calls confined to the
// dispatch loop.
func (c *core[S]) enqueue(msg jsonrpc2.Message) {
	c.outbox = append(c.outbox, msg)
}

func (c *core[S]) flush() error {
	for len(c.outbox) > 0 {
		msg := c.outbox[0]
		c.outbox = c.outbox[1:]
		if err := c.transport.Send(msg); err != nil {
			return err
		}
	}
	return nil
}
