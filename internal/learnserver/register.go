package learnserver

import (
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tools bundles the logic behind the MCP tools.
type Tools struct {
	Ranker   *learn.Ranker
	Roadmaps *learn.Roadmaps
	Chat     *learn.Chat
}

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 5

// RegisterTools registers the learning-assistant tools on the given MCP server:
// find_tutorials, generate_roadmap, chat_send, chat_clear, session_state.
func RegisterTools(server *mcp.Server, t Tools) {
	if t.Roadmaps == nil {
		t.Roadmaps = learn.DefaultRoadmaps()
	}
	if t.Chat == nil {
		t.Chat = learn.NewChat(nil)
	}
	registerFindTutorials(server, t.Ranker)
	registerGenerateRoadmap(server, t.Roadmaps)
	registerChatSend(server, t.Chat)
	registerChatClear(server)
	registerSessionState(server)
}
