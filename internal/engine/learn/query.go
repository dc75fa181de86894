// Package learn holds the learning-assistant logic: topic extraction, tutorial
// ranking, roadmap lookup and the chat stub.
package learn

import (
	"regexp"
	"strings"
)

// fillerPhrases are conversational lead-ins stripped from a request, applied
// in this order. Each pattern removes all of its non-overlapping matches.
var fillerPhrases = []string{
	`can you find.*?for\s+`,
	`i want to learn\s+`,
	`teach me\s+`,
	`show me\s+`,
	`find.*?tutorial.*?for\s+`,
	`best.*?tutorial.*?for\s+`,
	`good.*?video.*?for\s+`,
	`help me with\s+`,
	`how to\s+`,
	`learn\s+`,
	`tutorial.*?on\s+`,
	`course.*?on\s+`,
	`video.*?about\s+`,
	`please\s+`,
	`could you\s+`,
	`would you\s+`,
}

var (
	fillerRes    = compileAll(fillerPhrases)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	determinerRe = regexp.MustCompile(`^(a|an|the|some|any)\s+`)
)

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// ExtractTopic recovers the subject of a free-text learning request:
// "I want to learn Python basics" → "python basics".
// When nothing is left after stripping, the raw query is returned unchanged.
func ExtractTopic(rawQuery string) string {
	s := strings.ToLower(rawQuery)
	for _, re := range fillerRes {
		s = re.ReplaceAllString(s, "")
	}
	s = strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
	s = determinerRe.ReplaceAllString(s, "")
	if s == "" {
		return rawQuery
	}
	return s
}
