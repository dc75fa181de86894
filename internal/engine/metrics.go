package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TutorialSearches       atomic.Int64
	YouTubeSearchRequests  atomic.Int64
	YouTubeDetailsRequests atomic.Int64
	YouTubeErrors          atomic.Int64
	RoadmapRequests        atomic.Int64
	ChatMessages           atomic.Int64
}

// metricKeys fixes the output order of FormatMetrics.
var metricKeys = []string{
	"tutorial_searches",
	"youtube_search_requests", "youtube_details_requests", "youtube_errors",
	"roadmap_requests", "chat_messages",
	"session_hits", "session_misses",
}

// GetMetrics returns a snapshot of all metrics including session store stats.
func GetMetrics() map[string]int64 {
	hits, misses := SessionStats()
	return map[string]int64{
		"tutorial_searches":        metrics.TutorialSearches.Load(),
		"youtube_search_requests":  metrics.YouTubeSearchRequests.Load(),
		"youtube_details_requests": metrics.YouTubeDetailsRequests.Load(),
		"youtube_errors":           metrics.YouTubeErrors.Load(),
		"roadmap_requests":         metrics.RoadmapRequests.Load(),
		"chat_messages":            metrics.ChatMessages.Load(),
		"session_hits":             hits,
		"session_misses":           misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for learn/ and sources/ sub-packages.
func IncrTutorialSearch()  { metrics.TutorialSearches.Add(1) }
func IncrYouTubeSearch()   { metrics.YouTubeSearchRequests.Add(1) }
func IncrYouTubeDetails()  { metrics.YouTubeDetailsRequests.Add(1) }
func IncrYouTubeError()    { metrics.YouTubeErrors.Add(1) }
func IncrRoadmapRequest()  { metrics.RoadmapRequests.Add(1) }
func IncrChatMessage()     { metrics.ChatMessages.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
