package learnserver

import (
	"context"
	"errors"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerGenerateRoadmap(server *mcp.Server, roadmaps *learn.Roadmaps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_roadmap",
		Description: "Build a step-by-step learning roadmap for a topic and skill level (beginner, intermediate, advanced). Curated roadmaps exist for Python, JavaScript and Machine Learning; other topics get a generic 5-step plan. Returns steps with title, duration and description, plus a plain-text version.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, generateRoadmap(roadmaps))
}

func generateRoadmap(roadmaps *learn.Roadmaps) mcp.ToolHandlerFor[engine.GenerateRoadmapInput, engine.GenerateRoadmapOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input engine.GenerateRoadmapInput) (*mcp.CallToolResult, engine.GenerateRoadmapOutput, error) {
		topic := strings.TrimSpace(input.Topic)
		if topic == "" {
			return nil, engine.GenerateRoadmapOutput{}, errors.New("topic is required")
		}
		level := toolutil.NormLevel(input.SkillLevel)
		steps := roadmaps.Generate(topic, level)

		st := toolutil.OpenSession(ctx, input.SessionID)
		st.RoadmapTopic = topic
		st.RoadmapLevel = level
		st.Roadmap = steps
		engine.SessionSave(ctx, st)

		return nil, engine.GenerateRoadmapOutput{
			SessionID:  st.ID,
			Topic:      topic,
			SkillLevel: level,
			Steps:      steps,
			Text:       learn.FormatRoadmapText(topic, level, steps),
		}, nil
	}
}
