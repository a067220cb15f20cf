package state

import "testing"

func TestAppState(t *testing.T) {
	s := New("http://localhost:4862")
	if s.MastraURL() != "http://localhost:4862" {
		t.Fatalf("unexpected url %q", s.MastraURL())
	}
	if s.CurrentAgent() != "" || s.Connected() {
		t.Fatalf("fresh state must be empty and disconnected")
	}

	s.SetAgent("weather")
	s.SetSession("abc")
	s.SetConnected(true)
	if s.CurrentAgent() != "weather" || s.CurrentSession() != "abc" || !s.Connected() {
		t.Fatalf("setters not reflected: %q %q %v", s.CurrentAgent(), s.CurrentSession(), s.Connected())
	}

	s.AppendHistory(Exchange{Agent: "weather", Message: "hi", Response: "hello"})
	hist := s.History()
	if len(hist) != 1 || hist[0].Response != "hello" {
		t.Fatalf("unexpected history: %+v", hist)
	}

	// History returns a copy; mutating it must not affect the state.
	hist[0].Response = "mutated"
	if s.History()[0].Response != "hello" {
		t.Fatalf("history must be copied out")
	}
}
