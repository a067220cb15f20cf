package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// StreamResult is one item of the typed event stream: either an event or a
// terminal error.
type StreamResult struct {
	Event StreamEvent
	Err   error
}

// StreamEvents sends a chat message and exposes the raw event stream as
// typed StreamEvents, for callers that want every frame rather than the
// accumulated text.
//
// Unlike Chat, this path decodes strictly: a frame that does not match
// StreamEventData produces a decode error and terminates the stream. The
// result channel is closed when the stream ends, errors, or the context is
// canceled.
func (c *Client) StreamEvents(ctx context.Context, agentName, message, sessionID string) (<-chan StreamResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	req := NewChatRequest(agentName, message, "")
	es, err := c.openStream(ctx, agentName, req, sessionID)
	if err != nil {
		return nil, err
	}

	out := make(chan StreamResult)
	go func() {
		defer close(out)
		defer es.Close()

		deliver := func(res StreamResult) bool {
			select {
			case out <- res:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for sig := range es.Signals() {
			switch sig.Kind {
			case SignalOpen:
				c.log.WithField("agent", agentName).Debug("event stream open")

			case SignalError:
				deliver(StreamResult{Err: &StreamError{Err: sig.Err}})
				return

			case SignalMessage:
				var data StreamEventData
				if err := json.Unmarshal([]byte(sig.Data), &data); err != nil {
					deliver(StreamResult{Err: fmt.Errorf("decode stream event: %w", err)})
					return
				}
				if !deliver(StreamResult{Event: StreamEvent{Event: sig.Event, Data: data}}) {
					return
				}
			}
		}
	}()

	return out, nil
}
