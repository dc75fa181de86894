// Package toolutil provides shared helper functions for go_tutor MCP tools
// and CLI commands: input normalisation and session lookup.
package toolutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
)

// NormLang normalises a language field: empty string → configured default ("en").
func NormLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang != "" {
		return lang
	}
	if engine.Cfg.DefaultLanguage != "" {
		return engine.Cfg.DefaultLanguage
	}
	return "en"
}

// NormTopN maps non-positive counts to the configured default.
func NormTopN(n int) int {
	if n > 0 {
		return n
	}
	if engine.Cfg.DefaultTopN > 0 {
		return engine.Cfg.DefaultTopN
	}
	return learn.DefaultTopN
}

// NormLevel lower-cases a skill level; empty → beginner.
func NormLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return learn.LevelBeginner
	}
	return level
}

// OpenSession loads the session with the given ID, or starts a fresh one.
// An unknown or expired ID starts a fresh session under the same ID.
func OpenSession(ctx context.Context, id string) engine.SessionState {
	if id == "" {
		return engine.SessionState{ID: engine.NewSessionID()}
	}
	if st, ok := engine.SessionLoad(ctx, id); ok {
		return st
	}
	return engine.SessionState{ID: id}
}

// RequireSession loads an existing session or fails with engine.ErrSessionNotFound.
func RequireSession(ctx context.Context, id string) (engine.SessionState, error) {
	if id == "" {
		return engine.SessionState{}, fmt.Errorf("session_id is required")
	}
	st, ok := engine.SessionLoad(ctx, id)
	if !ok {
		return engine.SessionState{}, fmt.Errorf("%s: %w", id, engine.ErrSessionNotFound)
	}
	return st, nil
}
