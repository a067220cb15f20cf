package agent

// Agent is the metadata snapshot returned by the directory endpoints.
type Agent struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tools       []string `json:"tools,omitempty"`
}

// ChatMessageContent is one content block of a chat message.
type ChatMessageContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ChatMessage is one message in a chat request.
type ChatMessage struct {
	Role    string               `json:"role"`
	Content []ChatMessageContent `json:"content"`
}

// ChatRequest is the body posted to the agent stream endpoint.
type ChatRequest struct {
	Messages       []ChatMessage `json:"messages"`
	RunID          string        `json:"run_id"`
	ResourceID     string        `json:"resource_id"`
	ThreadID       string        `json:"thread_id,omitempty"`
	ModelSettings  any           `json:"model_settings,omitempty"`
	RuntimeContext any           `json:"runtime_context,omitempty"`
}

// NewChatRequest builds a single-message user request for the given agent.
// run_id and resource_id both carry the agent name; the service expects that.
func NewChatRequest(agentName, message, threadID string) *ChatRequest {
	return &ChatRequest{
		Messages: []ChatMessage{
			{
				Role: "user",
				Content: []ChatMessageContent{
					{Type: "text", Text: message},
				},
			},
		},
		RunID:      agentName,
		ResourceID: agentName,
		ThreadID:   threadID,
	}
}

// StreamEventData is the strictly typed payload of one stream frame.
type StreamEventData struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Tool    string `json:"tool,omitempty"`
	Status  string `json:"status,omitempty"`
}

// StreamEvent pairs the SSE event name with its decoded payload.
type StreamEvent struct {
	Event string          `json:"event"`
	Data  StreamEventData `json:"data"`
}
