package learn

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anatolykoptev/go_tutor/internal/engine"
)

// FormatRoadmapText renders steps as plain text:
//
//	Learning Roadmap for Python (Beginner level):
//
//	Step 1: Python Basics & Syntax
//	Duration: 1-2 weeks
//	Description: ...
func FormatRoadmapText(topic, level string, steps []engine.RoadmapStep) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Learning Roadmap for %s (%s level):\n\n", capitalize(topic), capitalize(level))
	for _, s := range steps {
		fmt.Fprintf(&sb, "Step %d: %s\n", s.Step, s.Title)
		fmt.Fprintf(&sb, "Duration: %s\n", s.Duration)
		fmt.Fprintf(&sb, "Description: %s\n\n", s.Description)
	}
	return sb.String()
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
