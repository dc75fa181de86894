package learn

import (
	"testing"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatReply(t *testing.T) {
	c := NewChat(func(n int) int { return n - 1 })
	reply, err := c.Reply("hello")
	require.NoError(t, err)
	assert.Equal(t, cannedReplies[len(cannedReplies)-1], reply)
}

func TestChatReply_RandomPickStaysInRepertoire(t *testing.T) {
	c := NewChat(nil)
	for range 50 {
		reply, err := c.Reply("what should I learn?")
		require.NoError(t, err)
		assert.Contains(t, cannedReplies, reply)
	}
}

func TestChatReply_Blank(t *testing.T) {
	_, err := NewChat(nil).Reply("   ")
	assert.ErrorIs(t, err, errEmptyMessage)
}

func TestChatExchange(t *testing.T) {
	c := NewChat(func(int) int { return 0 })
	history, reply, err := c.Exchange(nil, "  teach me go  ")
	require.NoError(t, err)
	assert.Equal(t, cannedReplies[0], reply)
	assert.Equal(t, []engine.ChatMessage{
		{Role: engine.RoleUser, Content: "teach me go"},
		{Role: engine.RoleAssistant, Content: cannedReplies[0]},
	}, history)

	_, _, err = c.Exchange(history, "")
	assert.Error(t, err)
}

func TestLastMessages(t *testing.T) {
	var history []engine.ChatMessage
	for i := range 10 {
		history = append(history, engine.ChatMessage{Role: engine.RoleUser, Content: string(rune('a' + i))})
	}
	last := LastMessages(history, DefaultHistory)
	require.Len(t, last, 8)
	assert.Equal(t, "c", last[0].Content)
	assert.Equal(t, "j", last[7].Content)

	assert.Len(t, LastMessages(history[:3], DefaultHistory), 3)
	assert.Len(t, LastMessages(history, 0), 10)
}
