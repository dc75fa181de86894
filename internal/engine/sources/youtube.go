package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTube Data API v3 access: search.list for candidates, videos.list for
// statistics. The key travels as the "key" query parameter on every call.

var (
	searchParts  = []string{"snippet"}
	detailsParts = []string{"statistics", "contentDetails", "snippet"}
)

var errNoAPIKey = errors.New("YOUTUBE_API_KEY is not configured")

// SearchOptions are the fixed constraints of a tutorial search.
type SearchOptions struct {
	Type       string // "video"
	Duration   string // videoDuration: any, short, medium, long
	Definition string // videoDefinition: any, high, standard
	Language   string // relevanceLanguage; "" = not sent
	Order      string // relevance, date, rating, viewCount, title
	MaxResults int64
}

// YouTube is a thin client over the generated youtube/v3 service.
type YouTube struct {
	svc    *youtube.Service
	apiKey string
}

// NewYouTube builds a client. baseURL overrides the API endpoint ("" = default);
// hc may be nil to use http.DefaultClient.
func NewYouTube(ctx context.Context, apiKey, baseURL string, hc *http.Client) (*YouTube, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	opts := []option.ClientOption{option.WithHTTPClient(hc)}
	if baseURL != "" {
		opts = append(opts, option.WithEndpoint(baseURL))
	}
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &YouTube{svc: svc, apiKey: apiKey}, nil
}

// NewYouTubeFromConfig builds a client from engine.Cfg.
func NewYouTubeFromConfig(ctx context.Context) (*YouTube, error) {
	return NewYouTube(ctx, engine.Cfg.YouTubeAPIKey, engine.Cfg.YouTubeAPIBase, engine.Cfg.HTTPClient)
}

// Search runs search.list and returns the items in API order.
// Items without a video ID (channels, playlists) are skipped.
func (y *YouTube) Search(ctx context.Context, query string, so SearchOptions) ([]engine.SearchResult, error) {
	engine.IncrYouTubeSearch()
	if y.apiKey == "" {
		engine.IncrYouTubeError()
		return nil, errNoAPIKey
	}

	call := y.svc.Search.List(searchParts).
		Q(query).
		Type(so.Type).
		VideoDuration(so.Duration).
		VideoDefinition(so.Definition).
		Order(so.Order).
		MaxResults(so.MaxResults).
		Context(ctx)
	if so.Language != "" {
		call = call.RelevanceLanguage(so.Language)
	}

	resp, err := call.Do(googleapi.QueryParameter("key", y.apiKey))
	if err != nil {
		engine.IncrYouTubeError()
		return nil, fmt.Errorf("youtube search: %w", describeAPIError(err))
	}

	results := make([]engine.SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		r := engine.SearchResult{VideoID: item.Id.VideoId}
		if sn := item.Snippet; sn != nil {
			r.Title = sn.Title
			r.ChannelName = sn.ChannelTitle
			r.Description = sn.Description
			r.PublishedAt = sn.PublishedAt
			if sn.Thumbnails != nil && sn.Thumbnails.High != nil {
				r.ThumbnailURL = sn.Thumbnails.High.Url
			}
		}
		results = append(results, r)
	}
	slog.Debug("youtube: search done", slog.String("query", query), slog.Int("items", len(results)))
	return results, nil
}

// Details fetches statistics and content details for all ids in one batch
// (comma-joined id parameter).
// Videos missing from the response are simply absent from the map.
func (y *YouTube) Details(ctx context.Context, ids []string) (map[string]engine.VideoStatistics, error) {
	if len(ids) == 0 {
		return map[string]engine.VideoStatistics{}, nil
	}
	engine.IncrYouTubeDetails()
	if y.apiKey == "" {
		engine.IncrYouTubeError()
		return nil, errNoAPIKey
	}

	resp, err := y.svc.Videos.List(detailsParts).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do(googleapi.QueryParameter("key", y.apiKey))
	if err != nil {
		engine.IncrYouTubeError()
		return nil, fmt.Errorf("youtube videos: %w", describeAPIError(err))
	}

	stats := make(map[string]engine.VideoStatistics, len(resp.Items))
	for _, v := range resp.Items {
		if v == nil || v.Id == "" {
			continue
		}
		var vs engine.VideoStatistics
		if v.Statistics != nil {
			vs.ViewCount = v.Statistics.ViewCount
			vs.LikeCount = v.Statistics.LikeCount
			vs.CommentCount = v.Statistics.CommentCount
		}
		if v.ContentDetails != nil {
			vs.Duration = v.ContentDetails.Duration
		}
		stats[v.Id] = vs
	}
	return stats, nil
}

// describeAPIError keeps the status code and API message of a googleapi.Error
// and passes anything else through.
func describeAPIError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = http.StatusText(gerr.Code)
		}
		return fmt.Errorf("status %d: %s: %w", gerr.Code, msg, err)
	}
	return err
}
