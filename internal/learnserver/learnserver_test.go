package learnserver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	results []engine.SearchResult
	stats   map[string]engine.VideoStatistics
	err     error
}

func (s *stubSource) Search(context.Context, string, sources.SearchOptions) ([]engine.SearchResult, error) {
	return s.results, s.err
}

func (s *stubSource) Details(context.Context, []string) (map[string]engine.VideoStatistics, error) {
	return s.stats, nil
}

func setup(t *testing.T) {
	t.Helper()
	engine.Init(engine.Config{DefaultLanguage: "en", DefaultTopN: 5})
	engine.InitSessions("", time.Minute, 100, time.Minute)
}

func TestRegisterTools(t *testing.T) {
	setup(t)
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	assert.NotPanics(t, func() {
		RegisterTools(server, Tools{Ranker: learn.NewRanker(&stubSource{})})
	})
}

func TestFindTutorials(t *testing.T) {
	setup(t)
	src := &stubSource{
		results: []engine.SearchResult{{VideoID: "v1", Title: "Python for beginners"}},
		stats:   map[string]engine.VideoStatistics{"v1": {ViewCount: 1000, Duration: "PT30M"}},
	}
	handler := findTutorials(learn.NewRanker(src))

	_, out, err := handler(context.Background(), nil, engine.FindTutorialsInput{Query: "I want to learn Python basics"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, "python basics", out.Topic)
	assert.Equal(t, 1, out.Count)
	assert.Empty(t, out.Error)
	assert.Equal(t, "https://www.youtube.com/watch?v=v1", out.Tutorials[0].URL)

	st, ok := engine.SessionLoad(context.Background(), out.SessionID)
	require.True(t, ok)
	assert.Equal(t, "I want to learn Python basics", st.TutorialQuery)
	assert.Len(t, st.Tutorials, 1)
}

func TestFindTutorials_TransportErrorIsReported(t *testing.T) {
	setup(t)
	handler := findTutorials(learn.NewRanker(&stubSource{err: errors.New("quota exceeded")}))

	_, out, err := handler(context.Background(), nil, engine.FindTutorialsInput{Query: "go"})
	require.NoError(t, err)
	assert.Zero(t, out.Count)
	assert.Empty(t, out.Tutorials)
	assert.Contains(t, out.Error, "quota exceeded")
}

func TestFindTutorials_EmptyQuery(t *testing.T) {
	setup(t)
	_, _, err := findTutorials(learn.NewRanker(&stubSource{}))(context.Background(), nil, engine.FindTutorialsInput{Query: "  "})
	assert.Error(t, err)
}

func TestGenerateRoadmap(t *testing.T) {
	setup(t)
	handler := generateRoadmap(learn.DefaultRoadmaps())

	_, out, err := handler(context.Background(), nil, engine.GenerateRoadmapInput{Topic: "Machine Learning", SkillLevel: "Intermediate"})
	require.NoError(t, err)
	assert.Equal(t, "intermediate", out.SkillLevel)
	require.Len(t, out.Steps, 7)
	assert.Equal(t, "Advanced Algorithms", out.Steps[0].Title)
	assert.Contains(t, out.Text, "Learning Roadmap for Machine learning (Intermediate level):")

	st, ok := engine.SessionLoad(context.Background(), out.SessionID)
	require.True(t, ok)
	assert.Equal(t, "Machine Learning", st.RoadmapTopic)
	assert.Len(t, st.Roadmap, 7)

	_, _, err = handler(context.Background(), nil, engine.GenerateRoadmapInput{})
	assert.Error(t, err)
}

func TestChatFlow(t *testing.T) {
	setup(t)
	send := chatSend(learn.NewChat(func(int) int { return 0 }))
	ctx := context.Background()

	_, first, err := send(ctx, nil, engine.ChatSendInput{Message: "hello"})
	require.NoError(t, err)
	require.Len(t, first.Messages, 2)

	var last engine.ChatSendOutput
	for range 5 {
		_, last, err = send(ctx, nil, engine.ChatSendInput{Message: "more", SessionID: first.SessionID})
		require.NoError(t, err)
	}
	assert.Equal(t, first.SessionID, last.SessionID)
	assert.Len(t, last.Messages, learn.DefaultHistory)

	_, state, err := sessionState(ctx, nil, engine.SessionInput{SessionID: first.SessionID})
	require.NoError(t, err)
	assert.Len(t, state.ChatMessages, 12)
	_, perr := time.Parse(time.RFC3339, state.UpdatedAt)
	assert.NoError(t, perr)

	_, cleared, err := chatClear(ctx, nil, engine.SessionInput{SessionID: first.SessionID})
	require.NoError(t, err)
	assert.Equal(t, 12, cleared.Cleared)

	_, state, err = sessionState(ctx, nil, engine.SessionInput{SessionID: first.SessionID})
	require.NoError(t, err)
	assert.Empty(t, state.ChatMessages)

	_, _, err = send(ctx, nil, engine.ChatSendInput{Message: " "})
	assert.Error(t, err)
}

func TestUnknownSession(t *testing.T) {
	setup(t)
	_, _, err := chatClear(context.Background(), nil, engine.SessionInput{SessionID: "nope"})
	assert.ErrorIs(t, err, engine.ErrSessionNotFound)

	_, _, err = sessionState(context.Background(), nil, engine.SessionInput{SessionID: "nope"})
	assert.ErrorIs(t, err, engine.ErrSessionNotFound)
}
