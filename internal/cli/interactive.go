package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"

	"github.com/vargos/vargos-cli/config"
	"github.com/vargos/vargos-cli/internal/agent"
	"github.com/vargos/vargos-cli/internal/state"
)

// InteractiveSession handles interactive chat sessions
type InteractiveSession struct {
	mgr       *config.Manager
	logger    *logrus.Logger
	client    *agent.Client
	state     *state.AppState
	reader    *bufio.Reader
	updates   chan config.Config
	agentFlag string
}

// NewInteractiveSession creates a new interactive session
func NewInteractiveSession(mgr *config.Manager, logger *logrus.Logger, agentFlag string) *InteractiveSession {
	cfg := mgr.Get()
	return &InteractiveSession{
		mgr:       mgr,
		logger:    logger,
		client:    agent.NewClient(cfg.MastraURL, agent.WithLogger(logger)),
		state:     state.New(cfg.MastraURL),
		reader:    bufio.NewReader(os.Stdin),
		updates:   make(chan config.Config, 1),
		agentFlag: agentFlag,
	}
}

// Start begins the interactive session
func (s *InteractiveSession) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Pick up config file edits between prompts.
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := s.mgr.Watch(watchCtx, func(cfg config.Config) {
		select {
		case s.updates <- cfg:
		default:
		}
	}); err != nil {
		s.logger.WithError(err).Warn("config watch unavailable")
	}

	fmt.Print(renderBanner(version, s.mgr.Get().MastraURL))

	if err := s.ensureAgent(ctx); err != nil {
		return err
	}
	if s.state.CurrentSession() == "" {
		if sid := s.mgr.Get().DefaultSession; sid != "" && agent.ValidSessionID(sid) {
			s.state.SetSession(sid)
		}
	}

	return s.runMainLoop(ctx)
}

// ensureAgent resolves the agent to chat with: flag, config default, or an
// interactive pick from the directory.
func (s *InteractiveSession) ensureAgent(ctx context.Context) error {
	cfg := s.mgr.Get()

	if s.agentFlag != "" {
		s.state.SetAgent(s.agentFlag)
		return nil
	}
	if cfg.DefaultAgent != "" {
		s.state.SetAgent(cfg.DefaultAgent)
		return nil
	}

	agents, err := s.client.ListAgents(ctx)
	if err != nil {
		return err
	}
	s.state.SetConnected(true)
	if len(agents) == 0 {
		return fmt.Errorf("no agents available at %s", cfg.MastraURL)
	}

	options := make([]string, len(agents))
	for i, a := range agents {
		options[i] = a.Name
	}

	var picked string
	prompt := &survey.Select{
		Message: "Select an agent:",
		Options: options,
	}
	if err := survey.AskOne(prompt, &picked); err != nil {
		return err
	}

	s.state.SetAgent(picked)
	return nil
}

// runMainLoop runs the main interactive loop
func (s *InteractiveSession) runMainLoop(ctx context.Context) error {
	for {
		s.applyConfigUpdates()

		fmt.Print(renderPrompt(s.state.CurrentAgent()))

		input, err := s.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			return nil
		}
		if strings.HasPrefix(input, "/") {
			if err := s.handleCommand(ctx, input); err != nil {
				fmt.Println(renderError(err))
			}
			continue
		}

		s.sendChat(ctx, input)
	}
}

// applyConfigUpdates swaps the client when the service URL changed on disk.
func (s *InteractiveSession) applyConfigUpdates() {
	select {
	case cfg := <-s.updates:
		if cfg.MastraURL != s.state.MastraURL() {
			s.logger.WithField("url", cfg.MastraURL).Info("service url changed, reconnecting")
			s.client = agent.NewClient(cfg.MastraURL, agent.WithLogger(s.logger))
			s.state = state.New(cfg.MastraURL)
			s.state.SetAgent(cfg.DefaultAgent)
		}
	default:
	}
}

func (s *InteractiveSession) handleCommand(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	switch parts[0] {
	case "/help":
		fmt.Print(renderHelp())

	case "/agents":
		agents, err := s.client.ListAgents(ctx)
		if err != nil {
			return err
		}
		fmt.Print(renderAgentList(agents))

	case "/agent":
		if len(parts) < 2 {
			return fmt.Errorf("usage: /agent NAME")
		}
		name := parts[1]
		if !s.client.ValidateAgent(ctx, name) {
			return fmt.Errorf("agent %q is not reachable", name)
		}
		s.state.SetAgent(name)
		fmt.Printf("Switched to agent %s\n", name)

	case "/session":
		if len(parts) >= 2 {
			if !agent.ValidSessionID(parts[1]) {
				return fmt.Errorf("invalid session id %q", parts[1])
			}
			s.state.SetSession(parts[1])
		}
		if sid := s.state.CurrentSession(); sid != "" {
			fmt.Printf("Session: %s\n", sid)
		} else {
			fmt.Println("No session set. Use /new to start one.")
		}

	case "/new":
		sid := agent.NewSessionID()
		s.state.SetSession(sid)
		fmt.Printf("Started session %s\n", sid)

	case "/history":
		fmt.Print(renderHistory(s.state.History()))

	default:
		return fmt.Errorf("unknown command %s, type /help for commands", parts[0])
	}
	return nil
}

func (s *InteractiveSession) sendChat(ctx context.Context, message string) {
	agentName := s.state.CurrentAgent()

	response, err := s.client.Chat(ctx, agentName, message, s.state.CurrentSession())
	if err != nil {
		fmt.Println(renderError(err))
		return
	}

	fmt.Print(renderResponse(agentName, response))
	s.state.AppendHistory(state.Exchange{
		Agent:    agentName,
		Message:  message,
		Response: response,
	})
}
