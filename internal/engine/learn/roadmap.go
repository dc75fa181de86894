package learn

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"gopkg.in/yaml.v3"
)

//go:embed roadmaps.yaml
var roadmapsYAML []byte

// Skill levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

const topicPlaceholder = "{topic}"

type roadmapFile struct {
	Topics []struct {
		Key    string                          `yaml:"key"`
		Levels map[string][]engine.RoadmapStep `yaml:"levels"`
	} `yaml:"topics"`
	Generic []engine.RoadmapStep `yaml:"generic"`
}

type roadmapTopic struct {
	key    string
	levels map[string][]engine.RoadmapStep
}

// Roadmaps is a static lookup table of learning steps.
type Roadmaps struct {
	topics  []roadmapTopic
	generic []engine.RoadmapStep
}

// LoadRoadmaps parses a roadmap table. Every topic must define a beginner list.
func LoadRoadmaps(data []byte) (*Roadmaps, error) {
	var f roadmapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roadmaps: %w", err)
	}
	if len(f.Generic) == 0 {
		return nil, errors.New("parse roadmaps: generic roadmap is empty")
	}
	r := &Roadmaps{generic: f.Generic}
	for _, t := range f.Topics {
		key := strings.ToLower(strings.TrimSpace(t.Key))
		if key == "" {
			return nil, errors.New("parse roadmaps: topic with empty key")
		}
		if len(t.Levels[LevelBeginner]) == 0 {
			return nil, fmt.Errorf("parse roadmaps: topic %q has no %s steps", key, LevelBeginner)
		}
		r.topics = append(r.topics, roadmapTopic{key: key, levels: t.Levels})
	}
	return r, nil
}

var defaultRoadmaps = sync.OnceValue(func() *Roadmaps {
	r, err := LoadRoadmaps(roadmapsYAML)
	if err != nil {
		panic(err) // embedded table is validated by tests
	}
	return r
})

// DefaultRoadmaps returns the built-in roadmap table.
func DefaultRoadmaps() *Roadmaps {
	return defaultRoadmaps()
}

// Generate returns the steps for the first topic key contained in topic
// (case-insensitive). Unknown levels fall back to beginner. When no key
// matches, a generic 5-step roadmap mentioning topic is returned.
func (r *Roadmaps) Generate(topic, level string) []engine.RoadmapStep {
	engine.IncrRoadmapRequest()
	lower := strings.ToLower(topic)
	level = strings.ToLower(strings.TrimSpace(level))

	for _, t := range r.topics {
		if !strings.Contains(lower, t.key) {
			continue
		}
		steps, ok := t.levels[level]
		if !ok {
			steps = t.levels[LevelBeginner]
		}
		return append([]engine.RoadmapStep(nil), steps...)
	}

	out := make([]engine.RoadmapStep, len(r.generic))
	for i, s := range r.generic {
		s.Title = strings.ReplaceAll(s.Title, topicPlaceholder, topic)
		s.Description = strings.ReplaceAll(s.Description, topicPlaceholder, topic)
		out[i] = s
	}
	return out
}

// Topics lists the known topic keys in match order.
func (r *Roadmaps) Topics() []string {
	keys := make([]string, len(r.topics))
	for i, t := range r.topics {
		keys[i] = t.key
	}
	return keys
}
