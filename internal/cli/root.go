// Package cli is the go_tutor command line: the MCP server plus one-shot
// commands for tutorials, roadmaps and chat.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	jsonOut  bool
	logLevel slog.LevelVar
)

var rootCmd = &cobra.Command{
	Use:          "go_tutor",
	Short:        "Learning assistant: YouTube tutorials, roadmaps and chat",
	SilenceUsage: true,
	Long: `go_tutor finds the best YouTube tutorials for a learning request,
builds step-by-step learning roadmaps and runs a small canned chat.
Run "go_tutor serve" to expose the same features as MCP tools.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print JSON instead of styled output")
}

// Execute is called by main.go.
func Execute(v string) {
	if v != "" {
		version = v
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging routes slog to stderr at LOG_LEVEL so stdout stays free for
// command output and the stdio transport.
func setupLogging() {
	logLevel.Set(parseLevel(os.Getenv("LOG_LEVEL")))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &logLevel})))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
