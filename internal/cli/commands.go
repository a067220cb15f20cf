package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vargos/vargos-cli/config"
	"github.com/vargos/vargos-cli/internal/agent"
	"github.com/vargos/vargos-cli/internal/logging"
)

const version = "0.1.0"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		agentName  string
	)

	rootCmd := &cobra.Command{
		Use:   "vargos-cli [MESSAGE...]",
		Short: "Vargos CLI - Interactive terminal interface for Mastra agents",
		Long: `Vargos CLI talks to a Mastra agent service: it lists available agents,
shows agent metadata, and sends chat messages, streaming the response back
as it is generated.

With a message (arguments or piped stdin) it runs once and exits; without
one it starts an interactive session.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := loadManager(configPath)
			if err != nil {
				return err
			}
			cfg := mgr.Get()
			logger := logging.Initialize(cfg.LogLevel)

			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				message, err = readPipedStdin()
				if err != nil {
					return err
				}
			}

			if message != "" {
				return runCommandMode(cmd.Context(), &cfg, logger, agentName, message)
			}

			session := NewInteractiveSession(mgr, logger, agentName)
			return session.Start(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&agentName, "agent", "a", "", "Agent name to use")

	rootCmd.AddCommand(newAgentsCmd(&configPath))
	rootCmd.AddCommand(newConfigCmd(&configPath))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newAgentsCmd creates the agents command group
func newAgentsCmd(configPath *string) *cobra.Command {
	agentsCmd := &cobra.Command{
		Use:   "agents",
		Short: "Agent directory operations",
	}

	agentsCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newDirectoryClient(*configPath)
			if err != nil {
				return err
			}
			agents, err := client.ListAgents(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(renderAgentList(agents))
			return nil
		},
	})

	agentsCmd.AddCommand(&cobra.Command{
		Use:   "info NAME",
		Short: "Show agent metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newDirectoryClient(*configPath)
			if err != nil {
				return err
			}
			a, err := client.GetAgent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(renderAgentInfo(a))
			return nil
		},
	})

	return agentsCmd
}

// newConfigCmd creates the config command group
func newConfigCmd(configPath *string) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := loadManager(*configPath)
			if err != nil {
				return err
			}
			fmt.Print(renderConfig(mgr.Get(), mgr.Path()))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := loadManager(*configPath)
			if err != nil {
				return err
			}
			fmt.Println(mgr.Path())
			return nil
		},
	})

	return configCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vargos-cli v%s\n", version)
		},
	}
}

// runCommandMode sends a single message and prints the streamed response.
func runCommandMode(ctx context.Context, cfg *config.Config, logger *logrus.Logger, agentName, message string) error {
	name := agentName
	if name == "" {
		name = cfg.DefaultAgent
	}
	if name == "" {
		return fmt.Errorf("no agent specified: use --agent or set default_agent in the config")
	}

	client := agent.NewClient(cfg.MastraURL, agent.WithLogger(logger))
	response, err := client.Chat(ctx, name, message, cfg.DefaultSession)
	if err != nil {
		return err
	}
	if response != "" {
		fmt.Println(response)
	}
	return nil
}

// loadManager builds the config manager, honoring an explicit --config path.
func loadManager(configPath string) (*config.Manager, error) {
	var opts []config.ManagerOption
	if configPath != "" {
		opts = append(opts, config.WithConfigPath(configPath))
	}
	return config.NewManager(opts...)
}

// newDirectoryClient builds an agent client from the loaded configuration.
func newDirectoryClient(configPath string) (*agent.Client, error) {
	mgr, err := loadManager(configPath)
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()
	logger := logging.Initialize(cfg.LogLevel)
	return agent.NewClient(cfg.MastraURL, agent.WithLogger(logger)), nil
}

// readPipedStdin returns trimmed stdin content when input is piped in, and
// an empty string on a terminal.
func readPipedStdin() (string, error) {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "", nil
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(input)), nil
}
