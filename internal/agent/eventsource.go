package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
)

// SignalKind discriminates the lifecycle signals produced by an EventSource.
type SignalKind int

const (
	// SignalOpen is emitted once, after the connection is established.
	SignalOpen SignalKind = iota
	// SignalMessage carries one SSE frame: event name plus raw data.
	SignalMessage
	// SignalError reports a transport failure; no further signals follow.
	SignalError
)

// Signal is one unit of the stream lifecycle.
type Signal struct {
	Kind  SignalKind
	Event string
	Data  string
	Err   error
}

// EventSource consumes one server-sent-event stream. It is not restartable;
// open a new one to retry.
type EventSource struct {
	body      io.ReadCloser
	signals   chan Signal
	done      chan struct{}
	closeOnce sync.Once
}

// openStream POSTs the chat request and switches the response into
// event-stream consumption. Connection failures return before any signal is
// produced.
func (c *Client) openStream(ctx context.Context, agentName string, req *ChatRequest, sessionID string) (*EventSource, error) {
	r := c.sse.R().
		SetContext(ctx).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("Content-Type", "application/json").
		SetBody(req)
	if sessionID != "" {
		r.SetQueryParam("session_id", sessionID)
	}

	resp, err := r.Post("/api/agents/" + url.PathEscape(agentName) + "/stream")
	if err != nil {
		return nil, fmt.Errorf("open event stream: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		resp.RawBody().Close()
		return nil, fmt.Errorf("open event stream for %q: HTTP %d", agentName, resp.StatusCode())
	}

	es := &EventSource{
		body:    resp.RawBody(),
		signals: make(chan Signal),
		done:    make(chan struct{}),
	}
	go es.readLoop()
	return es, nil
}

// Signals returns the lifecycle sequence. The channel is closed when the
// producer ends the stream.
func (es *EventSource) Signals() <-chan Signal {
	return es.signals
}

// Close tears down the connection. Safe to call more than once, and safe to
// call while a consumer is still draining Signals.
func (es *EventSource) Close() error {
	es.closeOnce.Do(func() { close(es.done) })
	return es.body.Close()
}

func (es *EventSource) emit(sig Signal) bool {
	select {
	case es.signals <- sig:
		return true
	case <-es.done:
		return false
	}
}

func (es *EventSource) readLoop() {
	defer close(es.signals)
	defer es.body.Close()

	if !es.emit(Signal{Kind: SignalOpen}) {
		return
	}

	scanner := bufio.NewScanner(es.body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var eventName string
	var data []string
	dispatch := func() bool {
		if len(data) == 0 {
			eventName = ""
			return true
		}
		name := eventName
		if name == "" {
			name = "message"
		}
		ok := es.emit(Signal{Kind: SignalMessage, Event: name, Data: strings.Join(data, "\n")})
		eventName = ""
		data = nil
		return ok
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if !dispatch() {
				return
			}
		case strings.HasPrefix(line, ":"):
			// comment / keep-alive
		case strings.HasPrefix(line, "event:"):
			eventName = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		default:
			// id:, retry:, unknown fields
		}
	}

	if err := scanner.Err(); err != nil {
		es.emit(Signal{Kind: SignalError, Err: err})
		return
	}

	// Producer closed cleanly; a frame without a trailing blank line still
	// counts.
	dispatch()
}
