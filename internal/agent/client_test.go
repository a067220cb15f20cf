package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func directoryServer(t *testing.T, agents []Agent) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/agents", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(agents)
	})
	mux.HandleFunc("/api/agents/", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path[len("/api/agents/"):]
		for _, a := range agents {
			if a.Name == name {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(a)
				return
			}
		}
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListAgents(t *testing.T) {
	srv := directoryServer(t, []Agent{
		{Name: "weather", Description: "Weather forecasts", Tools: []string{"forecast"}},
		{Name: "notes", Description: "Note taking"},
	})

	client := NewClient(srv.URL)
	agents, err := client.ListAgents(context.Background())
	if err != nil {
		t.Fatalf("ListAgents: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(agents))
	}
	if agents[0].Name != "weather" || agents[0].Tools[0] != "forecast" {
		t.Fatalf("unexpected first agent: %+v", agents[0])
	}
}

func TestListAgentsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	agents, err := client.ListAgents(context.Background())
	if agents != nil {
		t.Fatalf("expected no agents on failure, got %v", agents)
	}

	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected DirectoryError, got %v", err)
	}
	if dirErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", dirErr.StatusCode)
	}
}

func TestGetAgent(t *testing.T) {
	srv := directoryServer(t, []Agent{{Name: "weather", Description: "Weather forecasts"}})

	client := NewClient(srv.URL)
	a, err := client.GetAgent(context.Background(), "weather")
	if err != nil {
		t.Fatalf("GetAgent: %v", err)
	}
	if a.Name != "weather" {
		t.Fatalf("unexpected agent: %+v", a)
	}
}

func TestGetAgentNotFound(t *testing.T) {
	srv := directoryServer(t, nil)

	client := NewClient(srv.URL)
	_, err := client.GetAgent(context.Background(), "missing")

	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		t.Fatalf("expected DirectoryError, got %v", err)
	}
	if dirErr.Name != "missing" || dirErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected directory error: %+v", dirErr)
	}
}

func TestGetAgentNetworkErrorIsNotDirectoryError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url)
	_, err := client.GetAgent(context.Background(), "weather")
	if err == nil {
		t.Fatalf("expected error against closed server")
	}

	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		t.Fatalf("network failure must not be a DirectoryError: %v", err)
	}
}

func TestValidateAgentCollapsesFailures(t *testing.T) {
	srv := directoryServer(t, []Agent{{Name: "weather"}})
	client := NewClient(srv.URL)

	if !client.ValidateAgent(context.Background(), "weather") {
		t.Fatalf("expected existing agent to validate")
	}
	if client.ValidateAgent(context.Background(), "missing") {
		t.Fatalf("expected missing agent to fail validation")
	}

	// Network failures collapse to false the same way.
	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()
	if NewClient(url).ValidateAgent(context.Background(), "weather") {
		t.Fatalf("expected unreachable server to fail validation")
	}
}
