package learn

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
)

// DefaultHistory is how many chat messages a transcript view shows.
const DefaultHistory = 8

var errEmptyMessage = errors.New("message is required")

// cannedReplies is the whole repertoire of the chat stub.
var cannedReplies = []string{
	"That's a great question! I'm here to help you learn anything you want.",
	"I understand! Let me know if you need tutorials or learning resources on any topic.",
	"Interesting topic! Would you like me to find some tutorials or create a roadmap for this?",
	"I'm designed to help you learn effectively. What specific area would you like to explore?",
	"Feel free to ask me to find tutorials or create a personalized learning roadmap!",
	"Great! I can help you find the best learning resources. What's your current skill level?",
	"That's a wonderful learning goal! Would you like structured tutorials or a step-by-step roadmap?",
}

// Chat answers every message with a randomly picked canned reply.
type Chat struct {
	pick func(n int) int
}

// NewChat returns a chat stub. pick chooses an index in [0, n); nil uses math/rand/v2.
func NewChat(pick func(n int) int) *Chat {
	if pick == nil {
		pick = rand.IntN
	}
	return &Chat{pick: pick}
}

// Reply answers message. Blank messages are rejected.
func (c *Chat) Reply(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errEmptyMessage
	}
	engine.IncrChatMessage()
	return cannedReplies[c.pick(len(cannedReplies))], nil
}

// Exchange appends a user message and its reply to the transcript.
func (c *Chat) Exchange(history []engine.ChatMessage, message string) ([]engine.ChatMessage, string, error) {
	reply, err := c.Reply(message)
	if err != nil {
		return history, "", err
	}
	history = append(history,
		engine.ChatMessage{Role: engine.RoleUser, Content: strings.TrimSpace(message)},
		engine.ChatMessage{Role: engine.RoleAssistant, Content: reply},
	)
	return history, reply, nil
}

// LastMessages returns the n most recent messages, oldest first.
func LastMessages(history []engine.ChatMessage, n int) []engine.ChatMessage {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
