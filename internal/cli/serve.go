package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/learnserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server (HTTP on MCP_PORT, or stdio)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	c := initEngine()
	if c.YouTubeAPIKey == "" {
		slog.Warn("YOUTUBE_API_KEY is not set, find_tutorials will report errors")
	}
	ranker, err := newRanker(cmd.Context())
	if err != nil {
		return err
	}

	port := env.Str("MCP_PORT", "8891")
	slog.Info("starting go_tutor", slog.String("port", port), slog.String("version", version))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_tutor",
		Version: version,
	}, nil)

	learnserver.RegisterTools(server, learnserver.Tools{
		Ranker:   ranker,
		Roadmaps: learn.DefaultRoadmaps(),
		Chat:     learn.NewChat(nil),
	})
	slog.Info("tools registered", slog.Int("count", learnserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_tutor",
		Version:      version,
		Port:         port,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
