// Package state holds the mutable per-process session state shared by the
// interactive CLI surfaces. The streaming core never reads it.
package state

import "sync"

// Exchange is one request/response pair kept in the session history.
type Exchange struct {
	Agent    string
	Message  string
	Response string
}

// AppState tracks the current agent, session and history for an interactive
// run. Safe for concurrent use.
type AppState struct {
	mu             sync.RWMutex
	mastraURL      string
	currentAgent   string
	currentSession string
	connected      bool
	history        []Exchange
}

func New(mastraURL string) *AppState {
	return &AppState{mastraURL: mastraURL}
}

func (s *AppState) MastraURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mastraURL
}

func (s *AppState) CurrentAgent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentAgent
}

func (s *AppState) SetAgent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentAgent = name
}

func (s *AppState) CurrentSession() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSession
}

func (s *AppState) SetSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentSession = id
}

func (s *AppState) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *AppState) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
}

func (s *AppState) AppendHistory(e Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, e)
}

func (s *AppState) History() []Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Exchange, len(s.history))
	copy(out, s.history)
	return out
}
