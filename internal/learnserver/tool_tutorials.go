package learnserver

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerFindTutorials(server *mcp.Server, ranker *learn.Ranker) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_tutorials",
		Description: "Find the best YouTube video tutorials for a learning request. Accepts natural language (\"teach me react hooks\"), extracts the topic, searches YouTube for medium-length HD videos and ranks them by a quality score built from views, engagement and duration. Returns title, channel, stats, duration, URL and score per video. API failures are reported in the error field with no results.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, findTutorials(ranker))
}

func findTutorials(ranker *learn.Ranker) mcp.ToolHandlerFor[engine.FindTutorialsInput, engine.FindTutorialsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input engine.FindTutorialsInput) (*mcp.CallToolResult, engine.FindTutorialsOutput, error) {
		if strings.TrimSpace(input.Query) == "" {
			return nil, engine.FindTutorialsOutput{}, errors.New("query is required")
		}
		st := toolutil.OpenSession(ctx, input.SessionID)

		var tutorials []engine.RankedTutorial
		var searchErr error
		err := engine.TrackOperation(ctx, "find_tutorials", func(ctx context.Context) error {
			tutorials, searchErr = ranker.FindBestTutorials(ctx, input.Query, toolutil.NormLang(input.Language), toolutil.NormTopN(input.TopN))
			return searchErr
		})

		out := engine.FindTutorialsOutput{
			SessionID: st.ID,
			Query:     input.Query,
			Topic:     learn.ExtractTopic(input.Query),
			Count:     len(tutorials),
			Tutorials: tutorials,
		}
		if err != nil {
			slog.Warn("find_tutorials: no results", slog.String("session", st.ID), slog.Any("error", err))
			out.Error = err.Error()
		}

		st.TutorialQuery = input.Query
		st.Tutorials = tutorials
		engine.SessionSave(ctx, st)
		return nil, out, nil
	}
}
