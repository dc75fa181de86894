package learn

import (
	"testing"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestFormatRoadmapText(t *testing.T) {
	steps := []engine.RoadmapStep{
		{Step: 1, Title: "Basics", Duration: "1 week", Description: "Syntax"},
		{Step: 2, Title: "Projects", Duration: "2 weeks", Description: "Build things"},
	}
	want := "Learning Roadmap for Python (Beginner level):\n\n" +
		"Step 1: Basics\nDuration: 1 week\nDescription: Syntax\n\n" +
		"Step 2: Projects\nDuration: 2 weeks\nDescription: Build things\n\n"
	assert.Equal(t, want, FormatRoadmapText("python", "beginner", steps))
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"python":           "Python",
		"MACHINE LEARNING": "Machine learning",
		"élan":             "Élan",
	}
	for in, want := range tests {
		assert.Equal(t, want, capitalize(in), "capitalize(%q)", in)
	}
}
