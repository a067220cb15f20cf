package agent

import (
	"context"
	"encoding/json"
	"strings"
)

// chatFrame is the loose decode target for chat consumption. Pointers so
// that "content present but empty" and "content absent" stay distinct.
type chatFrame struct {
	Type    string  `json:"type"`
	Content *string `json:"content"`
	Delta   *string `json:"delta"`
}

// Chat sends one user message to the named agent and accumulates the
// streamed response into a single string.
//
// This is the best-effort path: frames that fail to decode, carry no type
// discriminator, or carry an unknown type are skipped so that tool-call or
// status events the service may add never abort an otherwise healthy chat.
// A transport error mid-stream fails the whole call; text accumulated so
// far is discarded. A stream that ends without a "done" frame is a success.
func (c *Client) Chat(ctx context.Context, agentName, message, threadID string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	req := NewChatRequest(agentName, message, threadID)
	es, err := c.openStream(ctx, agentName, req, "")
	if err != nil {
		return "", err
	}
	defer es.Close()

	var full strings.Builder
	for sig := range es.Signals() {
		switch sig.Kind {
		case SignalOpen:
			c.log.WithField("agent", agentName).Debug("event stream open")

		case SignalError:
			return "", &StreamError{Err: sig.Err}

		case SignalMessage:
			var frame chatFrame
			if err := json.Unmarshal([]byte(sig.Data), &frame); err != nil {
				continue
			}
			switch frame.Type {
			case "text", "text-delta":
				// content wins over delta when both are present.
				switch {
				case frame.Content != nil:
					full.WriteString(*frame.Content)
				case frame.Delta != nil:
					full.WriteString(*frame.Delta)
				}
			case "done":
				return full.String(), nil
			default:
				// tool calls, status updates and future event kinds
			}
		}
	}

	return full.String(), nil
}
