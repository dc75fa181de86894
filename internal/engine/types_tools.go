package engine

// --- Tutorial search ---

type FindTutorialsInput struct {
	Query     string `json:"query" jsonschema:"What the user wants to learn, in plain words (e.g. I want to learn Python basics)"`
	Language  string `json:"language,omitempty" jsonschema:"Relevance language code passed to YouTube: en, es, fr, de (default: en)"`
	TopN      int    `json:"top_n,omitempty" jsonschema:"Number of tutorials to return (default 5; at most 20 candidates are ranked)"`
	SessionID string `json:"session_id,omitempty" jsonschema:"Session to store the results in. Omit to start a new session."`
}

type FindTutorialsOutput struct {
	SessionID string           `json:"session_id"`
	Query     string           `json:"query"`
	Topic     string           `json:"topic"`
	Count     int              `json:"count"`
	Tutorials []RankedTutorial `json:"tutorials"`
	Error     string           `json:"error,omitempty"` // transport failure, reported as no results
}

// --- Roadmap ---

type GenerateRoadmapInput struct {
	Topic      string `json:"topic" jsonschema:"Subject of the roadmap (e.g. Python, JavaScript, Machine Learning)"`
	SkillLevel string `json:"skill_level,omitempty" jsonschema:"beginner (default), intermediate, advanced"`
	SessionID  string `json:"session_id,omitempty" jsonschema:"Session to store the roadmap in. Omit to start a new session."`
}

type GenerateRoadmapOutput struct {
	SessionID  string        `json:"session_id"`
	Topic      string        `json:"topic"`
	SkillLevel string        `json:"skill_level"`
	Steps      []RoadmapStep `json:"steps"`
	Text       string        `json:"text"` // plain-text rendering of Steps
}

// --- Chat ---

type ChatSendInput struct {
	Message   string `json:"message" jsonschema:"Message for the assistant"`
	SessionID string `json:"session_id,omitempty" jsonschema:"Chat session. Omit to start a new session."`
}

type ChatSendOutput struct {
	SessionID string        `json:"session_id"`
	Reply     string        `json:"reply"`
	Messages  []ChatMessage `json:"messages"` // most recent messages, oldest first
}

type SessionInput struct {
	SessionID string `json:"session_id" jsonschema:"Session ID returned by a previous tool call"`
}

type ChatClearOutput struct {
	SessionID string `json:"session_id"`
	Cleared   int    `json:"cleared"`
}
