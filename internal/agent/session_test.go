package agent

import "testing"

func TestSessionIDs(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == b {
		t.Fatalf("session ids must be unique")
	}
	if !ValidSessionID(a) {
		t.Fatalf("generated id %q must validate", a)
	}
	if ValidSessionID("not-a-uuid") {
		t.Fatalf("malformed id must not validate")
	}
	if ValidSessionID("") {
		t.Fatalf("empty id must not validate")
	}
}
