package learn

import (
	"context"
	"log/slog"
	"sort"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/sources"
)

const (
	// DefaultTopN is used when a caller asks for zero or fewer tutorials.
	DefaultTopN = 5

	// searchCandidates is the fixed search.list page size, independent of topN.
	searchCandidates = 20
	searchSuffix     = " tutorial complete course guide"
	snippetRunes     = 200
	snippetSuffix    = "..."
)

// VideoSource is the YouTube surface the ranker needs.
type VideoSource interface {
	Search(ctx context.Context, query string, so sources.SearchOptions) ([]engine.SearchResult, error)
	Details(ctx context.Context, ids []string) (map[string]engine.VideoStatistics, error)
}

// Ranker finds and orders tutorial videos for a learning request.
type Ranker struct {
	src VideoSource
}

func NewRanker(src VideoSource) *Ranker {
	return &Ranker{src: src}
}

// TutorialSearchOptions returns the search constraints for a language code.
func TutorialSearchOptions(language string) sources.SearchOptions {
	return sources.SearchOptions{
		Type:       "video",
		Duration:   "medium",
		Definition: "high",
		Language:   language,
		Order:      "relevance",
		MaxResults: searchCandidates,
	}
}

// FindBestTutorials extracts the topic from rawQuery, searches YouTube, joins
// the results with their statistics and returns at most topN tutorials by
// descending quality score. Equal scores keep API order.
//
// A failed search or details call yields an empty slice and a *TransportError.
// Search results without statistics are dropped.
func (r *Ranker) FindBestTutorials(ctx context.Context, rawQuery, language string, topN int) ([]engine.RankedTutorial, error) {
	engine.IncrTutorialSearch()
	if topN <= 0 {
		topN = DefaultTopN
	}
	topic := ExtractTopic(rawQuery)

	results, err := r.src.Search(ctx, topic+searchSuffix, TutorialSearchOptions(language))
	if err != nil {
		slog.Warn("tutorials: search failed", slog.String("topic", topic), slog.Any("error", err))
		return []engine.RankedTutorial{}, &TransportError{Op: "search", Err: err}
	}
	if len(results) == 0 {
		return []engine.RankedTutorial{}, nil
	}

	ids := make([]string, len(results))
	for i, res := range results {
		ids[i] = res.VideoID
	}
	stats, err := r.src.Details(ctx, ids)
	if err != nil {
		slog.Warn("tutorials: details failed", slog.Int("ids", len(ids)), slog.Any("error", err))
		return []engine.RankedTutorial{}, &TransportError{Op: "details", Err: err}
	}

	ranked := make([]engine.RankedTutorial, 0, len(results))
	for _, res := range results {
		st, ok := stats[res.VideoID]
		if !ok {
			slog.Debug("tutorials: no statistics, dropped", slog.String("id", res.VideoID))
			continue
		}
		ranked = append(ranked, buildTutorial(res, st, topic))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QualityScore > ranked[j].QualityScore
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	slog.Info("tutorials: ranked",
		slog.String("topic", topic),
		slog.Int("candidates", len(results)),
		slog.Int("returned", len(ranked)),
	)
	return ranked, nil
}

func buildTutorial(res engine.SearchResult, st engine.VideoStatistics, topic string) engine.RankedTutorial {
	return engine.RankedTutorial{
		VideoID:         res.VideoID,
		Title:           res.Title,
		ChannelName:     res.ChannelName,
		Description:     descriptionSnippet(res.Description),
		ThumbnailURL:    res.ThumbnailURL,
		PublishedAt:     res.PublishedAt,
		URL:             engine.YouTubeWatchURL + res.VideoID,
		ViewCount:       st.ViewCount,
		LikeCount:       st.LikeCount,
		CommentCount:    st.CommentCount,
		Duration:        st.Duration,
		DurationSeconds: ParseDuration(st.Duration),
		QualityScore:    QualityScore(st),
		SourceTopic:     topic,
	}
}

// descriptionSnippet keeps the first 200 runes and always appends "...",
// whether or not anything was cut.
func descriptionSnippet(desc string) string {
	return engine.TruncateRunes(desc, snippetRunes, "") + snippetSuffix
}
