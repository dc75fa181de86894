package learn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoadmaps_Loads(t *testing.T) {
	r := DefaultRoadmaps()
	assert.Equal(t, []string{"python", "javascript", "machine learning"}, r.Topics())
}

func TestGenerate_MachineLearningIntermediate(t *testing.T) {
	steps := DefaultRoadmaps().Generate("Machine Learning", "intermediate")
	require.Len(t, steps, 7)

	want := []string{
		"Advanced Algorithms", "Deep Learning Basics", "Computer Vision",
		"Natural Language Processing", "MLOps Fundamentals", "Advanced Projects", "Specialization",
	}
	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
		assert.Equal(t, want[i], s.Title)
	}
	assert.Equal(t, "4 weeks", steps[1].Duration)
	assert.Equal(t, "Choose focus area: CV, NLP, or other domain", steps[6].Description)
}

func TestGenerate_MatchesInsideLongerTopic(t *testing.T) {
	r := DefaultRoadmaps()
	assert.Equal(t, r.Generate("Machine Learning", "intermediate"), r.Generate("Machine Learning Basics", "intermediate"))
}

func TestGenerate_TopicMatching(t *testing.T) {
	r := DefaultRoadmaps()
	tests := []struct {
		name      string
		topic     string
		level     string
		wantFirst string
	}{
		{"case insensitive", "PYTHON", "beginner", "Python Basics & Syntax"},
		{"substring", "advanced javascript patterns", "beginner", "JavaScript Fundamentals"},
		{"first key wins", "machine learning with python", "beginner", "Python Basics & Syntax"},
		{"level case insensitive", "Python", "Intermediate", "Advanced Data Structures"},
		{"missing level falls back to beginner", "python", "advanced", "Python Basics & Syntax"},
		{"unknown level falls back to beginner", "python", "expert", "Python Basics & Syntax"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := r.Generate(tt.topic, tt.level)
			require.NotEmpty(t, steps)
			assert.Equal(t, tt.wantFirst, steps[0].Title)
		})
	}
}

func TestGenerate_Generic(t *testing.T) {
	steps := DefaultRoadmaps().Generate("Quantum Computing", "beginner")
	require.Len(t, steps, 5)
	assert.Equal(t, "Fundamentals", steps[0].Title)
	assert.Equal(t, "Learn basic concepts of Quantum Computing", steps[0].Description)
	assert.Equal(t, "Focus on specific areas within Quantum Computing", steps[4].Description)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
		assert.NotContains(t, s.Description, topicPlaceholder)
	}
}

func TestGenerate_ReturnsCopy(t *testing.T) {
	r := DefaultRoadmaps()
	steps := r.Generate("python", "beginner")
	steps[0].Title = "changed"
	assert.Equal(t, "Python Basics & Syntax", r.Generate("python", "beginner")[0].Title)
}

func TestLoadRoadmaps_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "topics: [\n"},
		{"no generic", "topics: []\n"},
		{"empty key", `
topics:
  - key: ""
    levels:
      beginner:
        - {step: 1, title: a, duration: b, description: c}
generic:
  - {step: 1, title: a, duration: b, description: c}
`},
		{"no beginner", `
topics:
  - key: go
    levels:
      intermediate:
        - {step: 1, title: a, duration: b, description: c}
generic:
  - {step: 1, title: a, duration: b, description: c}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRoadmaps([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadRoadmaps_Custom(t *testing.T) {
	r, err := LoadRoadmaps([]byte(`
topics:
  - key: Go
    levels:
      beginner:
        - {step: 1, title: Tour of Go, duration: 1 week, description: Syntax}
generic:
  - {step: 1, title: Start, duration: 1 day, description: "Read about {topic}"}
`))
	require.NoError(t, err)
	assert.Equal(t, "Tour of Go", r.Generate("golang", "beginner")[0].Title)
	assert.Equal(t, "Read about rust", r.Generate("rust", "beginner")[0].Description)
}
