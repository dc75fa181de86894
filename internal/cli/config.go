package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/engine/sources"
)

const defaultYouTubeBase = "https://youtube.googleapis.com/"

// loadConfig reads the engine configuration from the environment.
func loadConfig() engine.Config {
	return engine.Config{
		YouTubeAPIKey:          env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIBase:         env.Str("YOUTUBE_API_BASE", defaultYouTubeBase),
		DefaultLanguage:        env.Str("DEFAULT_LANGUAGE", "en"),
		DefaultTopN:            env.Int("DEFAULT_TOP_N", learn.DefaultTopN),
		SessionTTL:             env.Duration("SESSION_TTL", time.Hour),
		SessionMaxEntries:      env.Int("SESSION_MAX_ENTRIES", 1000),
		SessionCleanupInterval: env.Duration("SESSION_CLEANUP_INTERVAL", 5*time.Minute),
		RedisURL:               env.Str("REDIS_URL", ""),
		HTTPClient: &http.Client{
			Timeout: env.Duration("HTTP_TIMEOUT", 15*time.Second),
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
}

// initEngine applies the environment config and starts the session store.
func initEngine() engine.Config {
	c := loadConfig()
	engine.Init(c)
	engine.InitSessions(c.RedisURL, c.SessionTTL, c.SessionMaxEntries, c.SessionCleanupInterval)
	return c
}

// newRanker builds the tutorial ranker over the configured YouTube client.
// Replaced in tests.
var newRanker = func(ctx context.Context) (*learn.Ranker, error) {
	yt, err := sources.NewYouTubeFromConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("youtube client: %w", err)
	}
	return learn.NewRanker(yt), nil
}
