package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vargos/vargos-cli/config"
	"github.com/vargos/vargos-cli/internal/agent"
	"github.com/vargos/vargos-cli/internal/state"
)

// UI styles
var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 2)

	agentNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	toolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	responseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func renderBanner(version, mastraURL string) string {
	title := fmt.Sprintf("Vargos CLI v%s", version)
	sub := descStyle.Render(fmt.Sprintf("connected to %s — type /help for commands, exit to quit", mastraURL))
	return bannerStyle.Render(title) + "\n" + sub + "\n\n"
}

func renderPrompt(agentName string) string {
	if agentName == "" {
		agentName = "vargos"
	}
	return promptStyle.Render(agentName+">") + " "
}

func renderAgentList(agents []agent.Agent) string {
	var b strings.Builder
	b.WriteString("Available agents:\n")
	for _, a := range agents {
		b.WriteString("  ")
		b.WriteString(agentNameStyle.Render(a.Name))
		if a.Description != "" {
			b.WriteString("  ")
			b.WriteString(descStyle.Render(a.Description))
		}
		b.WriteString("\n")
	}
	if len(agents) == 0 {
		b.WriteString(descStyle.Render("  (none)\n"))
	}
	return b.String()
}

func renderAgentInfo(a *agent.Agent) string {
	var b strings.Builder
	b.WriteString(keyStyle.Render("Agent:       "))
	b.WriteString(agentNameStyle.Render(a.Name))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("Description: "))
	b.WriteString(a.Description)
	b.WriteString("\n")
	if len(a.Tools) > 0 {
		b.WriteString(keyStyle.Render("Tools:       "))
		b.WriteString(toolStyle.Render(strings.Join(a.Tools, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

func renderConfig(cfg config.Config, path string) string {
	var b strings.Builder
	b.WriteString(keyStyle.Render("Config file:     "))
	b.WriteString(path)
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("Mastra URL:      "))
	b.WriteString(cfg.MastraURL)
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("Default agent:   "))
	b.WriteString(orNone(cfg.DefaultAgent))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("Default session: "))
	b.WriteString(orNone(cfg.DefaultSession))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render("Log level:       "))
	b.WriteString(orNone(cfg.LogLevel))
	b.WriteString("\n")
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return descStyle.Render("(none)")
	}
	return s
}

func renderResponse(agentName, response string) string {
	if response == "" {
		return descStyle.Render("(empty response)") + "\n"
	}
	return agentNameStyle.Render(agentName+":") + " " + responseStyle.Render(response) + "\n"
}

func renderHistory(history []state.Exchange) string {
	if len(history) == 0 {
		return descStyle.Render("No messages yet.") + "\n"
	}
	var b strings.Builder
	for _, e := range history {
		b.WriteString(promptStyle.Render("you:"))
		b.WriteString(" ")
		b.WriteString(e.Message)
		b.WriteString("\n")
		b.WriteString(agentNameStyle.Render(e.Agent + ":"))
		b.WriteString(" ")
		b.WriteString(e.Response)
		b.WriteString("\n")
	}
	return b.String()
}

func renderHelp() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	b.WriteString("  /agents        list available agents\n")
	b.WriteString("  /agent NAME    switch to another agent\n")
	b.WriteString("  /session [ID]  show or set the session id\n")
	b.WriteString("  /new           start a fresh session\n")
	b.WriteString("  /history       show this session's exchanges\n")
	b.WriteString("  /help          show this help\n")
	b.WriteString("  exit           leave vargos-cli\n")
	return b.String()
}

func renderError(err error) string {
	return errStyle.Render("error: ") + err.Error()
}
