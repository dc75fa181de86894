package learnserver

import (
	"context"
	"time"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SessionStateOutput mirrors engine.SessionState with a string timestamp.
type SessionStateOutput struct {
	SessionID     string                  `json:"session_id"`
	ChatMessages  []engine.ChatMessage    `json:"chat_messages"`
	TutorialQuery string                  `json:"tutorial_query,omitempty"`
	Tutorials     []engine.RankedTutorial `json:"tutorials"`
	RoadmapTopic  string                  `json:"roadmap_topic,omitempty"`
	RoadmapLevel  string                  `json:"roadmap_level,omitempty"`
	Roadmap       []engine.RoadmapStep    `json:"roadmap"`
	UpdatedAt     string                  `json:"updated_at"`
}

func registerSessionState(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "session_state",
		Description: "Return everything a session holds: chat transcript, the last tutorial search and the last roadmap. Sessions expire after an idle timeout.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, sessionState)
}

func sessionState(ctx context.Context, _ *mcp.CallToolRequest, input engine.SessionInput) (*mcp.CallToolResult, SessionStateOutput, error) {
	st, err := toolutil.RequireSession(ctx, input.SessionID)
	if err != nil {
		return nil, SessionStateOutput{}, err
	}
	return nil, SessionStateOutput{
		SessionID:     st.ID,
		ChatMessages:  st.ChatMessages,
		TutorialQuery: st.TutorialQuery,
		Tutorials:     st.Tutorials,
		RoadmapTopic:  st.RoadmapTopic,
		RoadmapLevel:  st.RoadmapLevel,
		Roadmap:       st.Roadmap,
		UpdatedAt:     st.UpdatedAt.Format(time.RFC3339),
	}, nil
}
