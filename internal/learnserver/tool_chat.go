package learnserver

import (
	"context"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerChatSend(server *mcp.Server, chat *learn.Chat) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "chat_send",
		Description: "Send a message to the learning assistant's general chat. Replies are short canned encouragements pointing at find_tutorials and generate_roadmap; there is no real conversation. Returns the reply and the last 8 messages of the session.",
	}, chatSend(chat))
}

func chatSend(chat *learn.Chat) mcp.ToolHandlerFor[engine.ChatSendInput, engine.ChatSendOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ChatSendInput) (*mcp.CallToolResult, engine.ChatSendOutput, error) {
		st := toolutil.OpenSession(ctx, input.SessionID)
		history, reply, err := chat.Exchange(st.ChatMessages, input.Message)
		if err != nil {
			return nil, engine.ChatSendOutput{}, err
		}
		st.ChatMessages = history
		engine.SessionSave(ctx, st)

		return nil, engine.ChatSendOutput{
			SessionID: st.ID,
			Reply:     reply,
			Messages:  learn.LastMessages(history, learn.DefaultHistory),
		}, nil
	}
}

func registerChatClear(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "chat_clear",
		Description: "Clear the chat transcript of a session. Tutorial results and roadmap are kept.",
		Annotations: &mcp.ToolAnnotations{IdempotentHint: true},
	}, chatClear)
}

func chatClear(ctx context.Context, _ *mcp.CallToolRequest, input engine.SessionInput) (*mcp.CallToolResult, engine.ChatClearOutput, error) {
	st, err := toolutil.RequireSession(ctx, input.SessionID)
	if err != nil {
		return nil, engine.ChatClearOutput{}, err
	}
	cleared := len(st.ChatMessages)
	st.ChatMessages = nil
	engine.SessionSave(ctx, st)
	return nil, engine.ChatClearOutput{SessionID: st.ID, Cleared: cleared}, nil
}
