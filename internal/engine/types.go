package engine

import "time"

// --- YouTube data ---

// SearchResult is one video returned by the search call.
type SearchResult struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelName  string `json:"channel"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail"`
	PublishedAt  string `json:"published"`
}

// VideoStatistics is the details-call payload for one video, keyed by video ID.
type VideoStatistics struct {
	ViewCount    uint64 `json:"views"`
	LikeCount    uint64 `json:"likes"`
	CommentCount uint64 `json:"comments"`
	Duration     string `json:"duration"` // ISO-8601, e.g. PT1H5M30S
}

// RankedTutorial is a search result joined with its statistics and scored.
type RankedTutorial struct {
	VideoID         string  `json:"video_id"`
	Title           string  `json:"title"`
	ChannelName     string  `json:"channel"`
	Description     string  `json:"description"` // first 200 runes + "..."
	ThumbnailURL    string  `json:"thumbnail"`
	PublishedAt     string  `json:"published"`
	URL             string  `json:"url"`
	ViewCount       uint64  `json:"views"`
	LikeCount       uint64  `json:"likes"`
	CommentCount    uint64  `json:"comments"`
	Duration        string  `json:"duration"`
	DurationSeconds int     `json:"duration_seconds"`
	QualityScore    float64 `json:"quality_score"`
	SourceTopic     string  `json:"extracted_topic"`
}

// --- Roadmap & chat ---

// RoadmapStep is a single entry of a learning roadmap.
type RoadmapStep struct {
	Step        int    `json:"step" yaml:"step"`
	Title       string `json:"title" yaml:"title"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- Session state ---

// SessionState is the per-session view state: the chat transcript, the last
// tutorial search and the last generated roadmap. Each new search or roadmap
// overwrites the previous one.
type SessionState struct {
	ID            string           `json:"session_id"`
	ChatMessages  []ChatMessage    `json:"chat_messages"`
	TutorialQuery string           `json:"tutorial_query,omitempty"`
	Tutorials     []RankedTutorial `json:"tutorials"`
	RoadmapTopic  string           `json:"roadmap_topic,omitempty"`
	RoadmapLevel  string           `json:"roadmap_level,omitempty"`
	Roadmap       []RoadmapStep    `json:"roadmap"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
